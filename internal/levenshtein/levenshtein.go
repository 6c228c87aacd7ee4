// Package levenshtein computes the uniform-cost Levenshtein distance between
// byte strings with Myers' bit-parallel algorithm: O(1) word operations per text
// symbol for patterns up to 64 units, blocked with horizontal delta carries
// beyond that.
package levenshtein

import (
	"bytes"

	"github.com/hupe1980/fuzzgo/internal/bitvec"
)

// Distance returns the Levenshtein distance between a and b.
// Insertions, deletions and substitutions all cost 1.
func Distance(a, b []byte) int {
	if bytes.Equal(a, b) {
		return 0
	}
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	// The shorter string becomes the vertical pattern so its blocks fit the
	// fewest words.
	if len(a) < len(b) {
		a, b = b, a
	}
	if len(b) <= bitvec.WordBits {
		return distance64(a, b)
	}
	return distanceBlock(a, b)
}

// distance64 runs the single-word recurrence. pattern must be 1..64 units.
func distance64(text, pattern []byte) int {
	var peq [256]uint64
	for i, c := range pattern {
		peq[c] |= uint64(1) << i
	}

	m := len(pattern)
	last := uint64(1) << (m - 1)
	pv := ^uint64(0)
	mv := uint64(0)
	score := m

	for _, c := range text {
		eq := peq[c]
		xv := eq | mv
		xh := (((eq & pv) + pv) ^ pv) | eq
		ph := mv | ^(xh | pv)
		mh := pv & xh
		if ph&last != 0 {
			score++
		}
		if mh&last != 0 {
			score--
		}
		ph = ph<<1 | 1
		mh <<= 1
		pv = mh | ^(xv | ph)
		mv = ph & xv
	}

	return score
}

// distanceBlock runs the recurrence over ceil(m/64) vertical blocks, carrying
// the horizontal deltas between blocks one bit per text position.
func distanceBlock(text, pattern []byte) int {
	n, m := len(text), len(pattern)
	hwords := 1 + (n-1)/bitvec.WordBits
	vwords := 1 + (m-1)/bitvec.WordBits

	phc := make([]uint64, hwords)
	mhc := make([]uint64, hwords)
	for w := range phc {
		phc[w] = ^uint64(0)
	}

	var peq [256]uint64
	lastBit := uint(m-1) % bitvec.WordBits
	score := m

	for j := 0; j < vwords; j++ {
		start := j * bitvec.WordBits
		end := min(start+bitvec.WordBits, m)
		for k := start; k < end; k++ {
			peq[pattern[k]] |= uint64(1) << (k % bitvec.WordBits)
		}
		lastBlock := j == vwords-1

		pv := ^uint64(0)
		mv := uint64(0)
		for i := 0; i < n; i++ {
			w := i / bitvec.WordBits
			bit := uint(i) % bitvec.WordBits
			pb := (phc[w] >> bit) & 1
			mb := (mhc[w] >> bit) & 1

			eq := peq[text[i]]
			xv := eq | mv
			xh := ((((eq | mb) & pv) + pv) ^ pv) | eq | mb
			ph := mv | ^(xh | pv)
			mh := pv & xh

			if lastBlock {
				score += int((ph >> lastBit) & 1)
				score -= int((mh >> lastBit) & 1)
			}

			if (ph>>63)&1 != pb {
				phc[w] ^= uint64(1) << bit
			}
			if (mh>>63)&1 != mb {
				mhc[w] ^= uint64(1) << bit
			}

			ph = ph<<1 | pb
			mh = mh<<1 | mb
			pv = mh | ^(xv | ph)
			mv = ph & xv
		}

		for k := start; k < end; k++ {
			peq[pattern[k]] = 0
		}
	}

	return score
}
