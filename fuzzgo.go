package fuzzgo

import (
	"slices"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/fuzzgo/internal/bitvec"
	"github.com/hupe1980/fuzzgo/internal/indel"
)

// CachedRatio holds a pattern preprocessed for repeated similarity scoring.
//
// Construction copies the pattern and builds, per symbol value, a bitmask of
// the positions where the symbol occurs; Ratio consumes that structure with
// the bit-parallel indel recurrence. All fields are immutable after
// construction, so a single CachedRatio may be read by any number of
// concurrent Ratio calls. Close releases the cache and must be ordered after
// its last use.
type CachedRatio struct {
	pattern []byte
	pm      *bitvec.Pattern      // patterns up to one mask word
	blocks  *bitvec.BlockPattern // longer patterns
	symbols *roaring.Bitmap      // distinct pattern symbols; nil if disabled
	closed  bool
}

// NewCachedRatio preprocesses pattern for repeated scoring.
//
// The pattern is copied, never aliased: the cache stays valid even if the
// caller's slice is mutated afterwards. An empty pattern yields a valid,
// usable cache.
func NewCachedRatio(pattern []byte, optFns ...Option) *CachedRatio {
	opts := options{symbolFilter: true}
	for _, fn := range optFns {
		fn(&opts)
	}

	c := &CachedRatio{pattern: slices.Clone(pattern)}
	if len(c.pattern) <= bitvec.WordBits {
		c.pm = bitvec.NewPattern(c.pattern)
	} else {
		c.blocks = bitvec.NewBlockPattern(c.pattern)
	}

	if opts.symbolFilter && len(c.pattern) > 0 {
		c.symbols = roaring.New()
		for _, b := range c.pattern {
			c.symbols.Add(uint32(b))
		}
	}

	return c
}

// NewCachedRatioString is NewCachedRatio for strings.
func NewCachedRatioString(pattern string, optFns ...Option) *CachedRatio {
	return NewCachedRatio([]byte(pattern), optFns...)
}

// Ratio scores candidate against the cached pattern.
//
// The result is the normalized indel distance in [0, 1]: 0.0 for a perfect
// match, approaching 1.0 for completely dissimilar strings. An empty pattern
// against an empty candidate is a perfect match (0.0); empty against
// non-empty, in either direction, is maximal dissimilarity (1.0).
//
// Ratio is a pure function of the cache and the candidate; it mutates
// neither. Returns ErrClosed after Close.
func (c *CachedRatio) Ratio(candidate []byte) (float64, error) {
	if c == nil || c.closed {
		return 0, ErrClosed
	}

	total := len(c.pattern) + len(candidate)
	if total == 0 {
		return 0, nil
	}

	d := total
	switch {
	case len(c.pattern) == 0 || len(candidate) == 0:
		// d stays maximal.
	case c.symbols != nil && !c.sharesSymbol(candidate):
		// No symbol in common means no common subsequence; the distance is
		// known without running the recurrence.
	case c.blocks != nil:
		d = indel.DistanceBlock(c.blocks, candidate)
	default:
		d = indel.Distance(c.pm, candidate)
	}

	// Raw similarity percentage first, then the inverted public polarity:
	// downstream consumers depend on "lower is more similar".
	score := 100 * (1 - float64(d)/float64(total))

	return 1 - score/100, nil
}

// RatioString is Ratio for strings.
func (c *CachedRatio) RatioString(candidate string) (float64, error) {
	return c.Ratio([]byte(candidate))
}

// Pattern returns a copy of the cached pattern. Nil after Close.
func (c *CachedRatio) Pattern() []byte {
	if c == nil {
		return nil
	}
	return slices.Clone(c.pattern)
}

// Len returns the cached pattern length in code units. Zero after Close.
func (c *CachedRatio) Len() int {
	if c == nil {
		return 0
	}
	return len(c.pattern)
}

// Close releases the pattern copy and the matching structure.
//
// The cache reverts to an empty sentinel state: further Ratio calls return
// ErrClosed and a second Close is a safe no-op. Close must not run
// concurrently with an in-flight Ratio on the same cache; that ordering is
// the caller's responsibility.
func (c *CachedRatio) Close() error {
	if c == nil || c.closed {
		return nil
	}
	c.closed = true
	c.pattern = nil
	c.pm = nil
	c.blocks = nil
	c.symbols = nil
	return nil
}

func (c *CachedRatio) sharesSymbol(candidate []byte) bool {
	for _, b := range candidate {
		if c.symbols.Contains(uint32(b)) {
			return true
		}
	}
	return false
}
