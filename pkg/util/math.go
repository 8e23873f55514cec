package util

import "math"

// Round2 rounds to 2 decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Round4 rounds to 4 decimal places.
func Round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
