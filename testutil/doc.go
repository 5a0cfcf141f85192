// Package testutil provides testing utilities for arenago.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, thread-safe random source plus generators for the
// inputs arena tests care about: distinct sparse keys and value streams.
//
// # Deterministic Randomness
//
//	rng := testutil.NewRNG(4711)
//	keys := rng.Keys(64, 1_000_000) // 64 distinct keys in [0, 1e6]
//	vals := rng.Values(64)          // uniform [0, 1)
//	rng.Reset()                     // replay the same sequence
package testutil
