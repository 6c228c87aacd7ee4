// Package indel computes the insert/delete edit distance between byte strings.
//
// The indel distance counts insertions and deletions only; a substitution costs 2
// (one delete plus one insert). It relates to the longest common subsequence by
//
//	dist(a, b) = len(a) + len(b) - 2*lcs(a, b)
//
// so the maximum possible distance of a pair is len(a)+len(b).
//
// The LCS length is computed with the bit-parallel recurrence
//
//	u = S & M
//	S = (S + u) | (S - u)
//
// which processes one candidate symbol per iteration in O(1) word operations per
// pattern block, using the position masks from package bitvec. Multi-word state
// chains the addition carry across blocks; the subtraction never borrows because
// u is a subset of S.
package indel

import (
	"math/bits"

	"github.com/hupe1980/fuzzgo/internal/bitvec"
)

// Distance returns the indel distance between the pattern behind pm and candidate.
func Distance(pm *bitvec.Pattern, candidate []byte) int {
	m, n := pm.Len(), len(candidate)
	if m == 0 || n == 0 {
		return m + n
	}

	// Bits at positions >= m start set and stay set: match masks are zero there
	// and S-u cannot borrow, so the final popcount of ^S counts only live rows.
	s := ^uint64(0)
	for _, c := range candidate {
		u := s & pm.Mask(c)
		s = (s + u) | (s - u)
	}

	lcs := bits.OnesCount64(^s)

	return m + n - 2*lcs
}

// DistanceBlock is Distance for patterns longer than one mask word.
func DistanceBlock(pm *bitvec.BlockPattern, candidate []byte) int {
	m, n := pm.Len(), len(candidate)
	if m == 0 || n == 0 {
		return m + n
	}

	words := pm.Words()
	s := make([]uint64, words)
	for w := range s {
		s[w] = ^uint64(0)
	}

	for _, c := range candidate {
		row := pm.Row(c)
		carry := uint64(0)
		for w := 0; w < words; w++ {
			u := s[w] & row[w]
			sum, carryOut := bits.Add64(s[w], u, carry)
			s[w] = sum | (s[w] - u)
			carry = carryOut
		}
	}

	lcs := 0
	for _, w := range s {
		lcs += bits.OnesCount64(^w)
	}

	return m + n - 2*lcs
}
