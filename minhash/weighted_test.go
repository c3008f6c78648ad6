package minhash_test

import (
	"testing"

	"github.com/katalvlaran/minsketch/minhash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// vec16 builds a dense 16-dim vector from sparse index→weight pairs.
func vec16(weights map[int]float64) []float64 {
	v := make([]float64, 16)
	for i, w := range weights {
		v[i] = w
	}
	return v
}

// TestNewGenerator_Validation verifies parameter validation at
// construction, before any vector is seen.
func TestNewGenerator_Validation(t *testing.T) {
	_, err := minhash.NewGenerator(0, 64)
	assert.ErrorIs(t, err, minhash.ErrBadDimension, "dim=0 must error")

	_, err = minhash.NewGenerator(16, 0)
	assert.ErrorIs(t, err, minhash.ErrBadSampleSize, "sampleSize=0 must error")

	g, err := minhash.NewGenerator(16, 64)
	require.NoError(t, err)
	assert.Equal(t, 16, g.Dim())
	assert.Equal(t, 64, g.SampleSize())
}

// TestGenerator_Sketch_InputValidation verifies the per-call vector
// checks: length, sign, and non-empty support.
func TestGenerator_Sketch_InputValidation(t *testing.T) {
	g, err := minhash.NewGenerator(16, 64)
	require.NoError(t, err)

	_, err = g.Sketch(make([]float64, 8))
	assert.ErrorIs(t, err, minhash.ErrDimensionMismatch, "short vector must error")

	_, err = g.Sketch(vec16(map[int]float64{3: -1}))
	assert.ErrorIs(t, err, minhash.ErrNegativeWeight, "negative weight must error")

	_, err = g.Sketch(vec16(nil))
	assert.ErrorIs(t, err, minhash.ErrEmptyVector, "all-zero vector must error")
}

// TestWeightedSketch_SelfSimilarity verifies the deterministic case:
// one generator, one vector, sketched twice, estimates exactly 1.0.
func TestWeightedSketch_SelfSimilarity(t *testing.T) {
	g, err := minhash.NewGenerator(16, 64)
	require.NoError(t, err)

	v := vec16(map[int]float64{1: 1, 2: 2, 4: 3})
	a, err := g.Sketch(v)
	require.NoError(t, err)
	b, err := g.Sketch(v)
	require.NoError(t, err)

	j, err := a.Jaccard(b)
	require.NoError(t, err)
	assert.Equal(t, 1.0, j, "same generator and vector must sketch identically")
}

// TestGenerator_Determinism verifies that two independently built
// generators with equal (dim, sampleSize, seed) are interchangeable.
func TestGenerator_Determinism(t *testing.T) {
	g1, err := minhash.NewGenerator(16, 128, minhash.WithSeed(42))
	require.NoError(t, err)
	g2, err := minhash.NewGenerator(16, 128, minhash.WithSeed(42))
	require.NoError(t, err)

	v := vec16(map[int]float64{0: 0.5, 7: 2.5, 15: 1})
	a, err := g1.Sketch(v)
	require.NoError(t, err)
	b, err := g2.Sketch(v)
	require.NoError(t, err)

	j, err := a.Jaccard(b)
	require.NoError(t, err)
	assert.Equal(t, 1.0, j, "equal parameters must yield identical sketches")
}

// TestWeightedSketch_PartialOverlap verifies the estimator against
// the generalized weighted Jaccard Σmin/Σmax = 3/8 for
// {1:1, 2:2, 4:3} vs {1:2, 2:2, 3:1}, at 512 samples.
func TestWeightedSketch_PartialOverlap(t *testing.T) {
	g, err := minhash.NewGenerator(16, 512)
	require.NoError(t, err)

	a, err := g.Sketch(vec16(map[int]float64{1: 1, 2: 2, 4: 3}))
	require.NoError(t, err)
	b, err := g.Sketch(vec16(map[int]float64{1: 2, 2: 2, 3: 1}))
	require.NoError(t, err)

	j, err := a.Jaccard(b)
	require.NoError(t, err)
	assert.Greater(t, j, 0.0, "one shared index must give positive similarity")
	assert.Less(t, j, 1.0, "differing vectors must not estimate 1.0")
	assert.InDelta(t, 0.375, j, 0.12, "estimate should track Σmin/Σmax")
}

// TestWeightedSketch_DisjointSupport verifies that vectors with
// disjoint supports never agree on a sample.
func TestWeightedSketch_DisjointSupport(t *testing.T) {
	g, err := minhash.NewGenerator(16, 128)
	require.NoError(t, err)

	a, err := g.Sketch(vec16(map[int]float64{0: 1, 1: 2}))
	require.NoError(t, err)
	b, err := g.Sketch(vec16(map[int]float64{8: 1, 9: 2}))
	require.NoError(t, err)

	j, err := a.Jaccard(b)
	require.NoError(t, err)
	assert.Equal(t, 0.0, j, "disjoint supports cannot share an argmin index")
}

// TestWeightedSketch_SampleMismatch verifies that sketches of
// different (dim, sampleSize) refuse to compare.
func TestWeightedSketch_SampleMismatch(t *testing.T) {
	g16, err := minhash.NewGenerator(16, 64)
	require.NoError(t, err)
	g16b, err := minhash.NewGenerator(16, 32)
	require.NoError(t, err)

	v := vec16(map[int]float64{1: 1})
	a, err := g16.Sketch(v)
	require.NoError(t, err)
	b, err := g16b.Sketch(v)
	require.NoError(t, err)

	_, err = a.Jaccard(b)
	assert.ErrorIs(t, err, minhash.ErrSampleMismatch, "sampleSize mismatch must error")

	_, err = a.Jaccard(nil)
	assert.ErrorIs(t, err, minhash.ErrSampleMismatch, "nil other must error")
}
