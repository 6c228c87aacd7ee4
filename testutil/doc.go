// Package testutil provides testing utilities for fuzzgo.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, thread-safe random source for generating byte
// strings over chosen alphabets.
//
// # Random String Generation
//
//	rng := testutil.NewRNG(seed)
//	b := rng.Bytes(100)                          // arbitrary byte values
//	s := rng.Alphabet(100, []byte("abcdefgh"))   // small alphabet
package testutil
