package common

import "math"

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Round rounds half away from zero, matching what the art pipeline expects
// when scaling sprite regions.
func Round(v float64) int {
	return int(math.Round(v))
}

// MsToTicks converts a millisecond interval to whole 60 TPS update ticks.
// Intervals shorter than one tick still take one tick.
func MsToTicks(ms int) uint64 {
	t := ms * 60 / 1000
	if t < 1 {
		t = 1
	}
	return uint64(t)
}
