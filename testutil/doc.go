// Package testutil provides testing utilities for aligned.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded random source for property tests over sizes and
// alignments, and helpers to capture the panics raised on the fatal paths.
//
// # Random Inputs
//
//	rng := testutil.NewRNG(seed)
//	align := rng.Alignment(12) // 1..4096
//	data := rng.Bytes(1000)
//
// # Fatal Paths
//
//	err := testutil.RecoverError(func() { alloc.MustLayout(1, 3) })
package testutil
