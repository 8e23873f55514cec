package util

import "testing"

func TestRound2(t *testing.T) {
	if got := Round2(1.005 * 100 / 100); got != 1.0 && got != 1.01 {
		t.Fatalf("unexpected %v", got)
	}
	if got := Round2(680.594); got != 680.59 {
		t.Fatalf("unexpected %v", got)
	}
}

func TestRound4(t *testing.T) {
	if got := Round4(0.47999999); got != 0.48 {
		t.Fatalf("unexpected %v", got)
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(1.2, -1, 1); got != 1 {
		t.Fatalf("unexpected %v", got)
	}
	if got := Clamp(-1.2, -1, 1); got != -1 {
		t.Fatalf("unexpected %v", got)
	}
	if got := Clamp(0.5, -1, 1); got != 0.5 {
		t.Fatalf("unexpected %v", got)
	}
}
