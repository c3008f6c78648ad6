package minhash_test

import (
	"testing"

	"github.com/katalvlaran/minsketch/minhash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// toks builds a token multiset from string literals.
func toks(ss ...string) [][]byte {
	out := make([][]byte, len(ss))
	for i, s := range ss {
		out[i] = []byte(s)
	}
	return out
}

// TestFromTokens_BadPermutations verifies that a non-positive
// permutation count is rejected before any hashing happens.
func TestFromTokens_BadPermutations(t *testing.T) {
	_, err := minhash.FromTokens(toks("a"), 0)
	assert.ErrorIs(t, err, minhash.ErrBadPermutations, "numPerm=0 must error")

	_, err = minhash.FromTokens(toks("a"), -3)
	assert.ErrorIs(t, err, minhash.ErrBadPermutations, "negative numPerm must error")
}

// TestSketch_IdenticalInputs verifies that equal token multisets
// produce identical signatures, hence an exact 1.0 estimate.
func TestSketch_IdenticalInputs(t *testing.T) {
	a, err := minhash.FromTokens(toks("x", "y", "z"), 256)
	require.NoError(t, err)
	b, err := minhash.FromTokens(toks("x", "y", "z"), 256)
	require.NoError(t, err)

	j, err := a.Jaccard(b)
	require.NoError(t, err)
	assert.Equal(t, 1.0, j, "identical multisets must estimate exactly 1.0")
}

// TestSketch_DuplicatesDoNotChangeSignature verifies multiset
// semantics: repeating a token leaves the minimum per permutation,
// and therefore the signature, unchanged.
func TestSketch_DuplicatesDoNotChangeSignature(t *testing.T) {
	a, err := minhash.FromTokens(toks("x", "x", "y"), 256)
	require.NoError(t, err)
	b, err := minhash.FromTokens(toks("x", "y"), 256)
	require.NoError(t, err)

	j, err := a.Jaccard(b)
	require.NoError(t, err)
	assert.Equal(t, 1.0, j, "duplicate tokens must not perturb the signature")
}

// TestSketch_DisjointInputs verifies that disjoint multisets estimate
// close to zero at 1024 permutations.
func TestSketch_DisjointInputs(t *testing.T) {
	a, err := minhash.FromTokens(toks("a", "b", "c"), 1024)
	require.NoError(t, err)
	b, err := minhash.FromTokens(toks("d", "e", "f"), 1024)
	require.NoError(t, err)

	j, err := a.Jaccard(b)
	require.NoError(t, err)
	assert.Less(t, j, 0.1, "disjoint multisets must estimate near zero")
}

// TestSketch_OverlapEstimate verifies the estimator against a known
// Jaccard value: |{c,d}| / |{a..f}| = 1/3, within ~6 standard errors
// at 1024 permutations.
func TestSketch_OverlapEstimate(t *testing.T) {
	a, err := minhash.FromTokens(toks("a", "b", "c", "d"), 1024)
	require.NoError(t, err)
	b, err := minhash.FromTokens(toks("c", "d", "e", "f"), 1024)
	require.NoError(t, err)

	j, err := a.Jaccard(b)
	require.NoError(t, err)
	assert.InDelta(t, 1.0/3.0, j, 0.1, "estimate should track true Jaccard 1/3")
}

// TestSketch_EmptyMultisets verifies that an empty multiset is a
// valid input and that two empty signatures compare equal.
func TestSketch_EmptyMultisets(t *testing.T) {
	a, err := minhash.FromTokens(nil, 64)
	require.NoError(t, err)
	b, err := minhash.FromTokens([][]byte{}, 64)
	require.NoError(t, err)

	j, err := a.Jaccard(b)
	require.NoError(t, err)
	assert.Equal(t, 1.0, j, "two empty multisets share the sentinel signature")
}

// TestSketch_SignatureMismatch verifies that sketches of different
// permutation counts refuse to compare.
func TestSketch_SignatureMismatch(t *testing.T) {
	a, err := minhash.FromTokens(toks("a"), 128)
	require.NoError(t, err)
	b, err := minhash.FromTokens(toks("a"), 256)
	require.NoError(t, err)

	_, err = a.Jaccard(b)
	assert.ErrorIs(t, err, minhash.ErrSignatureMismatch, "length mismatch must error")

	_, err = a.Jaccard(nil)
	assert.ErrorIs(t, err, minhash.ErrSignatureMismatch, "nil other must error")
}

// TestSketch_NumPermutations verifies the accessor.
func TestSketch_NumPermutations(t *testing.T) {
	s, err := minhash.FromTokens(toks("a"), 77)
	require.NoError(t, err)
	assert.Equal(t, 77, s.NumPermutations())
}
