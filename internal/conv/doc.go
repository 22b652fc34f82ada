// Package conv provides checked integer conversions and arithmetic for
// memory sizes.
//
// These functions perform bounds checking to prevent overflow/underflow
// when converting between Go's int, int64 and uintptr, and when multiplying
// element counts by element sizes.
//
// For conversions that are provably safe by domain constraints (e.g. a
// length already validated by a layout), use direct type casts instead.
package conv
