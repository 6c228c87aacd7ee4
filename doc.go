// Package fuzzgo provides cached-pattern approximate string matching for Go.
//
// Fuzzgo is built for the "one pattern, many candidates" workload: the pattern
// is preprocessed once into a bit-parallel matching structure, and every
// subsequent comparison runs in O(len(candidate)) word operations per pattern
// block instead of re-running a full quadratic edit-distance computation.
//
// # Quick Start
//
//	cr := fuzzgo.NewCachedRatioString("introduction to algorithms")
//	defer cr.Close()
//
//	for _, title := range titles {
//	    score, _ := cr.RatioString(title)
//	    if score < 0.25 {
//	        // close match
//	    }
//	}
//
// # Scoring
//
// Ratio returns the normalized indel distance between the cached pattern and
// the candidate: 0.0 for a perfect match, approaching 1.0 for completely
// dissimilar strings. Lower is more similar. The underlying metric counts
// insertions and deletions at cost 1 each (a substitution is a delete plus an
// insert, cost 2) and is normalized by len(pattern)+len(candidate).
//
// One-shot comparisons without a cached pattern live in the distance
// subpackage.
//
// # Inputs
//
// The core operates on []byte with explicit lengths; content is never
// interpreted, so embedded zero bytes and arbitrary binary data are valid.
// The String variants are thin adapters over the byte API. Inputs are treated
// as sequences of fixed-width code units; Unicode segmentation is the
// caller's concern.
//
// # Concurrency
//
// A fully constructed CachedRatio is immutable. Concurrent Ratio calls from
// multiple goroutines are safe once the usual Go publication rules establish
// a happens-before edge between construction and use (goroutine start,
// channel send, mutex). Close must be ordered after the last Ratio call by
// the caller; fuzzgo adds no internal locking.
package fuzzgo
