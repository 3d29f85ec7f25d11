// Package utils provides small shared helpers used across modules.
package utils

import "math"

// Clamp constrains v to the inclusive range [min, max].
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// ClampInt constrains v to the inclusive range [min, max].
func ClampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// RoundToInt rounds half away from zero and returns an int.
func RoundToInt(v float64) int {
	return int(math.Round(v))
}
