// Package conv provides safe integer conversion helpers for the matching engine.
//
// These functions perform bounds checking before narrowing integer conversions
// to prevent silent overflow. They panic on overflow since this indicates a
// programming error (e.g. a block score computed larger than the engine can
// represent), never a caller-reachable condition.
package conv

import "math"

// IntToInt32 safely converts an int to int32.
// Panics if n is outside the int32 range.
//
//go:inline
func IntToInt32(n int) int32 {
	if n < math.MinInt32 || n > math.MaxInt32 {
		panic("conv: int value out of int32 range")
	}
	return int32(n)
}
