// Package distance provides public API for string edit-distance calculations.
// All functions use bit-parallel implementations from internal/indel and
// internal/levenshtein, giving near-linear time in the longer input instead of
// the quadratic cell-by-cell dynamic program.
package distance

import (
	"fmt"

	"github.com/hupe1980/fuzzgo/internal/bitvec"
	"github.com/hupe1980/fuzzgo/internal/indel"
	"github.com/hupe1980/fuzzgo/internal/levenshtein"
)

// Indel calculates the insert/delete edit distance between a and b.
// Insertions and deletions cost 1; a substitution counts as delete plus insert
// and therefore costs 2. This is the raw metric behind fuzzgo.CachedRatio.
func Indel(a, b []byte) int {
	// The shorter side becomes the preprocessed pattern.
	if len(a) < len(b) {
		a, b = b, a
	}
	if len(b) <= bitvec.WordBits {
		return indel.Distance(bitvec.NewPattern(b), a)
	}
	return indel.DistanceBlock(bitvec.NewBlockPattern(b), a)
}

// IndelNormalized calculates the indel distance normalized into [0, 1]:
// 0 for identical strings, 1 for strings with no common subsequence.
// Two empty strings are identical and yield 0.
func IndelNormalized(a, b []byte) float64 {
	total := len(a) + len(b)
	if total == 0 {
		return 0
	}
	return float64(Indel(a, b)) / float64(total)
}

// Levenshtein calculates the uniform-cost Levenshtein distance between a and b.
// Insertions, deletions and substitutions all cost 1.
func Levenshtein(a, b []byte) int {
	return levenshtein.Distance(a, b)
}

// LevenshteinNormalized calculates the Levenshtein distance normalized into
// [0, 1] by the longer length: 0 for identical strings, 1 for maximally
// dissimilar ones. Two empty strings yield 0.
func LevenshteinNormalized(a, b []byte) float64 {
	longer := max(len(a), len(b))
	if longer == 0 {
		return 0
	}
	return float64(Levenshtein(a, b)) / float64(longer)
}

// IndelString is Indel for strings.
func IndelString(a, b string) int {
	return Indel([]byte(a), []byte(b))
}

// IndelNormalizedString is IndelNormalized for strings.
func IndelNormalizedString(a, b string) float64 {
	return IndelNormalized([]byte(a), []byte(b))
}

// LevenshteinString is Levenshtein for strings.
func LevenshteinString(a, b string) int {
	return Levenshtein([]byte(a), []byte(b))
}

// LevenshteinNormalizedString is LevenshteinNormalized for strings.
func LevenshteinNormalizedString(a, b string) float64 {
	return LevenshteinNormalized([]byte(a), []byte(b))
}

// Metric represents the edit-distance metric used for string comparison.
type Metric int

const (
	MetricIndel Metric = iota
	MetricLevenshtein
)

func (m Metric) String() string {
	switch m {
	case MetricIndel:
		return "Indel"
	case MetricLevenshtein:
		return "Levenshtein"
	default:
		return fmt.Sprintf("Unknown(%d)", m)
	}
}

// Func is a function type for raw distance calculation.
type Func func(a, b []byte) int

// NormalizedFunc is a function type for normalized distance calculation.
type NormalizedFunc func(a, b []byte) float64

// Provider returns the raw distance function for the given metric.
func Provider(m Metric) (Func, error) {
	switch m {
	case MetricIndel:
		return Indel, nil
	case MetricLevenshtein:
		return Levenshtein, nil
	default:
		return nil, fmt.Errorf("unsupported metric: %v", m)
	}
}

// ProviderNormalized returns the normalized distance function for the given metric.
func ProviderNormalized(m Metric) (NormalizedFunc, error) {
	switch m {
	case MetricIndel:
		return IndelNormalized, nil
	case MetricLevenshtein:
		return LevenshteinNormalized, nil
	default:
		return nil, fmt.Errorf("unsupported metric: %v", m)
	}
}
