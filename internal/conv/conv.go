// Package conv provides safe integer conversion helpers.
//
// These functions perform bounds checking before narrowing integer conversions
// to prevent silent overflow. They panic on overflow since this indicates a
// programming error (e.g., a line index or buffer size outside the supported
// range), not a recoverable condition.
package conv

import "math"

// IntToInt32 safely converts an int to int32.
// Panics if n is outside the int32 range.
//
//go:inline
func IntToInt32(n int) int32 {
	if n < math.MinInt32 || n > math.MaxInt32 {
		panic("integer overflow: int value out of int32 range")
	}
	return int32(n)
}

// Int64ToInt safely converts an int64 to int.
// Panics if n does not fit in int (only possible on 32-bit platforms).
//
//go:inline
func Int64ToInt(n int64) int {
	if n < math.MinInt || n > math.MaxInt {
		panic("integer overflow: int64 value out of int range")
	}
	return int(n)
}

// Uint64ToInt safely converts a uint64 to int.
// Panics if n exceeds the int range.
//
//go:inline
func Uint64ToInt(n uint64) int {
	if n > math.MaxInt {
		panic("integer overflow: uint64 value out of int range")
	}
	return int(n)
}
