// Package bitvec builds per-symbol position masks for bit-parallel string matching.
//
// For a pattern of n code units, each of the 256 byte values gets a bitmask with
// bit i set at every position i where the value occurs in the pattern. Patterns of
// up to 64 units fit a single uint64 word (Pattern); longer patterns are packed
// into ceil(n/64) words per symbol (BlockPattern).
//
// Both structures are immutable after construction and safe for concurrent reads.
package bitvec
