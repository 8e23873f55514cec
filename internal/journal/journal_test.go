package journal

import (
	"fmt"
	"testing"

	"MarketPulse/internal/domain/models"
)

func anomaly(id string) models.DataAnomaly {
	return models.DataAnomaly{ID: id, Symbol: "SPY", Type: models.AnomalyPriceSpike}
}

func TestJournal_NewestFirst(t *testing.T) {
	j := New(10)
	j.Append(anomaly("a"), anomaly("b"))
	j.Append(anomaly("c"))

	snap := j.Snapshot()
	if len(snap) != 3 {
		t.Fatalf("want 3, got %d", len(snap))
	}
	if snap[0].ID != "c" || snap[2].ID != "a" {
		t.Fatalf("unexpected order: %+v", snap)
	}
}

func TestJournal_CapsAtCapacity(t *testing.T) {
	j := New(50)
	for i := 0; i < 75; i++ {
		j.Append(anomaly(fmt.Sprintf("a%d", i)))
	}
	if j.Len() != 50 {
		t.Fatalf("want 50 retained, got %d", j.Len())
	}
	snap := j.Snapshot()
	if snap[0].ID != "a74" {
		t.Fatalf("newest entry missing: %+v", snap[0])
	}
	if snap[len(snap)-1].ID != "a25" {
		t.Fatalf("oldest surviving entry wrong: %+v", snap[len(snap)-1])
	}
}

func TestJournal_Clear(t *testing.T) {
	j := New(0) // default capacity
	j.Append(anomaly("a"))
	j.Clear()
	if j.Len() != 0 {
		t.Fatalf("want empty after clear, got %d", j.Len())
	}
	if len(j.Snapshot()) != 0 {
		t.Fatalf("snapshot not empty after clear")
	}
}

func TestJournal_EmptyAppendNoop(t *testing.T) {
	j := New(5)
	j.Append()
	if j.Len() != 0 {
		t.Fatalf("empty append must not grow the journal")
	}
}
