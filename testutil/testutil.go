package testutil

import (
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Bytes returns n pseudo-random bytes covering the full value range,
// including zero bytes.
// Locks only once per call (preferred over calling Intn in a loop).
func (r *RNG) Bytes(n int) []byte {
	r.mu.Lock()
	defer r.mu.Unlock()

	b := make([]byte, n)
	r.rand.Read(b)

	return b
}

// Alphabet returns a pseudo-random string of n bytes drawn from alphabet.
// Small alphabets produce strings with high symbol overlap, which exercises
// the matching recurrence harder than uniform bytes.
func (r *RNG) Alphabet(n int, alphabet []byte) []byte {
	r.mu.Lock()
	defer r.mu.Unlock()

	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[r.rand.Intn(len(alphabet))]
	}

	return b
}
