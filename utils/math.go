package utils

import "math"

// Round6 rounds to 6 decimal digits. Applied only at presentation; internal
// pipeline arithmetic keeps full float precision.
func Round6(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}

// Finite reports whether v is a usable quote figure.
func Finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
