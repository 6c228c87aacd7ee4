package bitvec

// WordBits is the number of pattern positions packed into one mask word.
const WordBits = 64

// Pattern holds single-word position masks for a pattern of at most 64 code units.
type Pattern struct {
	masks [256]uint64
	n     int
}

// NewPattern builds the position masks for pattern.
// The pattern must not exceed WordBits code units.
func NewPattern(pattern []byte) *Pattern {
	if len(pattern) > WordBits {
		panic("bitvec: pattern exceeds single-word capacity")
	}
	p := &Pattern{n: len(pattern)}
	for i, c := range pattern {
		p.masks[c] |= uint64(1) << i
	}
	return p
}

// Mask returns the position mask for symbol c.
func (p *Pattern) Mask(c byte) uint64 { return p.masks[c] }

// Len returns the pattern length in code units.
func (p *Pattern) Len() int { return p.n }

// BlockPattern holds multi-word position masks for patterns of arbitrary length.
// Masks are stored flat, words per symbol contiguous, so a symbol's full row can
// be sliced without allocation.
type BlockPattern struct {
	masks []uint64 // 256 * words entries
	words int
	n     int
}

// NewBlockPattern builds the blocked position masks for pattern.
func NewBlockPattern(pattern []byte) *BlockPattern {
	words := (len(pattern) + WordBits - 1) / WordBits
	p := &BlockPattern{
		masks: make([]uint64, 256*words),
		words: words,
		n:     len(pattern),
	}
	for i, c := range pattern {
		p.masks[int(c)*words+i/WordBits] |= uint64(1) << (i % WordBits)
	}
	return p
}

// Row returns the mask words for symbol c, lowest positions first.
// The returned slice aliases internal storage and must not be modified.
func (p *BlockPattern) Row(c byte) []uint64 {
	return p.masks[int(c)*p.words : (int(c)+1)*p.words]
}

// Words returns the number of mask words per symbol.
func (p *BlockPattern) Words() int { return p.words }

// Len returns the pattern length in code units.
func (p *BlockPattern) Len() int { return p.n }
