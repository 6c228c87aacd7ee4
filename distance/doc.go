// Package distance provides bit-parallel string edit-distance calculations.
//
// # Supported Metrics
//
//   - MetricIndel: insert/delete distance (substitution = 2), the metric behind
//     fuzzgo.CachedRatio
//   - MetricLevenshtein: uniform-cost Levenshtein distance
//
// # Usage
//
//	d := distance.Indel(a, b)
//	norm := distance.IndelNormalized(a, b) // 0 identical .. 1 dissimilar
//	lev := distance.LevenshteinString("kitten", "sitting")
//
// All functions are one-shot: they preprocess the shorter input on every call.
// When one string is compared against many candidates, use fuzzgo.CachedRatio
// instead so the preprocessing is paid once.
package distance
