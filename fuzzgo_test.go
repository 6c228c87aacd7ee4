package fuzzgo

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/fuzzgo/distance"
	"github.com/hupe1980/fuzzgo/testutil"
)

func TestRatioIdentity(t *testing.T) {
	patterns := [][]byte{
		nil,
		[]byte(""),
		[]byte("a"),
		[]byte("kitten"),
		[]byte("the quick brown fox jumps over the lazy dog"),
		bytes.Repeat([]byte("abcd"), 50), // multi-word path
		{0, 1, 2, 0, 255},                // binary content with zero bytes
	}

	for _, p := range patterns {
		cr := NewCachedRatio(p)

		score, err := cr.Ratio(p)
		require.NoError(t, err)
		assert.Equal(t, 0.0, score, "pattern=%q", p)

		require.NoError(t, cr.Close())
	}
}

func TestRatioEmptyCases(t *testing.T) {
	tests := []struct {
		name     string
		pattern  string
		cand     string
		expected float64
	}{
		{"EmptyEmpty", "", "", 0.0},
		{"EmptyPattern", "", "abc", 1.0},
		{"EmptyCandidate", "abc", "", 1.0},
		{"Identical", "abc", "abc", 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cr := NewCachedRatioString(tt.pattern)
			defer cr.Close()

			score, err := cr.RatioString(tt.cand)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, score)
		})
	}
}

func TestRatioKittenSitting(t *testing.T) {
	cr := NewCachedRatioString("kitten")
	defer cr.Close()

	score, err := cr.RatioString("sitting")
	require.NoError(t, err)

	// indel distance 5 over total length 13.
	assert.InDelta(t, 5.0/13.0, score, 1e-9)
	assert.Greater(t, score, 0.0)
	assert.Less(t, score, 1.0)

	again, err := cr.RatioString("sitting")
	require.NoError(t, err)
	assert.Equal(t, score, again)
}

func TestRatioBounded(t *testing.T) {
	rng := testutil.NewRNG(4711)
	alphabet := []byte("abcdefgh")

	for i := 0; i < 200; i++ {
		cr := NewCachedRatio(rng.Alphabet(rng.Intn(150), alphabet))
		cand := rng.Alphabet(rng.Intn(150), alphabet)

		score, err := cr.Ratio(cand)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, score, 0.0)
		assert.LessOrEqual(t, score, 1.0)

		require.NoError(t, cr.Close())
	}
}

func TestRatioDeterminism(t *testing.T) {
	rng := testutil.NewRNG(1)
	cr := NewCachedRatio(rng.Bytes(333))
	defer cr.Close()

	cand := rng.Bytes(512)

	first, err := cr.Ratio(cand)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		score, err := cr.Ratio(cand)
		require.NoError(t, err)
		assert.Equal(t, first, score)
	}
}

func TestRatioCacheReuseIndependence(t *testing.T) {
	pattern := []byte("reusable pattern")
	a := []byte("first candidate")
	b := []byte("second candidate")

	shared := NewCachedRatio(pattern)
	defer shared.Close()

	_, err := shared.Ratio(a)
	require.NoError(t, err)
	afterA, err := shared.Ratio(b)
	require.NoError(t, err)

	fresh := NewCachedRatio(pattern)
	defer fresh.Close()
	direct, err := fresh.Ratio(b)
	require.NoError(t, err)

	assert.Equal(t, direct, afterA)
}

func TestRatioMonotonicDissimilarity(t *testing.T) {
	cr := NewCachedRatioString("abcdef")
	defer cr.Close()

	cand := []byte("abc")
	prev, err := cr.Ratio(cand)
	require.NoError(t, err)

	// Symbols absent from the pattern make each appended unit pure noise.
	for _, c := range []byte("zqxwvy") {
		cand = append(cand, c)
		score, err := cr.Ratio(cand)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, score, prev, "candidate=%q", cand)
		prev = score
	}
}

func TestRatioMatchesOneShotDistance(t *testing.T) {
	rng := testutil.NewRNG(99)
	alphabet := []byte("abcdefghij")

	for _, patLen := range []int{0, 1, 7, 63, 64, 65, 200, 1000} {
		pattern := rng.Alphabet(patLen, alphabet)
		cr := NewCachedRatio(pattern)

		for i := 0; i < 20; i++ {
			cand := rng.Alphabet(rng.Intn(300), alphabet)
			score, err := cr.Ratio(cand)
			require.NoError(t, err)
			assert.InDelta(t, distance.IndelNormalized(pattern, cand), score, 1e-12,
				"patLen=%d candidate=%q", patLen, cand)
		}

		require.NoError(t, cr.Close())
	}
}

func TestRatioSymbolFilterEquivalence(t *testing.T) {
	pattern := []byte("abcdefabcdef")
	candidates := [][]byte{
		[]byte("abcdef"),
		[]byte("xyzxyz"), // disjoint alphabet, filter fast path
		[]byte("axbycz"),
		{},
	}

	filtered := NewCachedRatio(pattern)
	plain := NewCachedRatio(pattern, WithoutSymbolFilter())
	defer filtered.Close()
	defer plain.Close()

	for _, cand := range candidates {
		want, err := plain.Ratio(cand)
		require.NoError(t, err)
		got, err := filtered.Ratio(cand)
		require.NoError(t, err)
		assert.Equal(t, want, got, "candidate=%q", cand)
	}
}

func TestRatioDisjointAlphabet(t *testing.T) {
	cr := NewCachedRatioString("aaaa")
	defer cr.Close()

	score, err := cr.RatioString("bbbb")
	require.NoError(t, err)
	assert.Equal(t, 1.0, score)
}

func TestPatternDoesNotAliasInput(t *testing.T) {
	input := []byte("stable pattern")
	cr := NewCachedRatio(input)
	defer cr.Close()

	// Clobbering the caller's buffer must not affect the cache.
	for i := range input {
		input[i] = 'x'
	}

	score, err := cr.RatioString("stable pattern")
	require.NoError(t, err)
	assert.Equal(t, 0.0, score)
}

func TestPatternAccessors(t *testing.T) {
	cr := NewCachedRatioString("abc")

	assert.Equal(t, 3, cr.Len())
	p := cr.Pattern()
	assert.Equal(t, []byte("abc"), p)

	// Returned slice is a copy.
	p[0] = 'x'
	assert.Equal(t, []byte("abc"), cr.Pattern())

	require.NoError(t, cr.Close())
	assert.Equal(t, 0, cr.Len())
	assert.Nil(t, cr.Pattern())
}

func TestClose(t *testing.T) {
	cr := NewCachedRatioString("abc")

	require.NoError(t, cr.Close())

	_, err := cr.Ratio([]byte("abc"))
	assert.ErrorIs(t, err, ErrClosed)

	// Second close is a safe no-op.
	require.NoError(t, cr.Close())

	var nilCR *CachedRatio
	require.NoError(t, nilCR.Close())
	_, err = nilCR.Ratio(nil)
	assert.ErrorIs(t, err, ErrClosed)
}

func TestLifecycle(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping lifecycle stress test in short mode")
	}

	rng := testutil.NewRNG(2024)
	cand := []byte("lifecycle candidate")

	for i := 0; i < 10_000; i++ {
		cr := NewCachedRatio(rng.Bytes(rng.Intn(1001)))

		score, err := cr.Ratio(cand)
		require.NoError(t, err)
		require.GreaterOrEqual(t, score, 0.0)
		require.LessOrEqual(t, score, 1.0)

		require.NoError(t, cr.Close())
	}
}

func TestRatioConcurrent(t *testing.T) {
	pattern := []byte(strings.Repeat("concurrent pattern ", 10))
	cr := NewCachedRatio(pattern)
	defer cr.Close()

	rng := testutil.NewRNG(7)
	candidates := make([][]byte, 64)
	expected := make([]float64, len(candidates))
	for i := range candidates {
		candidates[i] = rng.Alphabet(rng.Intn(250), []byte("concurents pa"))
		var err error
		expected[i], err = cr.Ratio(candidates[i])
		require.NoError(t, err)
	}

	var g errgroup.Group
	for w := 0; w < 8; w++ {
		g.Go(func() error {
			for i, cand := range candidates {
				score, err := cr.Ratio(cand)
				if err != nil {
					return err
				}
				if score != expected[i] {
					t.Errorf("candidate %d: got %v, want %v", i, score, expected[i])
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}
