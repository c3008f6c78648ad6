package minhash

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/spaolacci/murmur3"
)

// Sentinel errors for weighted sketching.
var (
	// ErrBadDimension indicates a non-positive generator dimension.
	ErrBadDimension = errors.New("minhash: dimension must be positive")

	// ErrBadSampleSize indicates a non-positive generator sample size.
	ErrBadSampleSize = errors.New("minhash: sample size must be positive")

	// ErrDimensionMismatch indicates a vector whose length differs from
	// the dimension the generator was bound to.
	ErrDimensionMismatch = errors.New("minhash: vector length differs from generator dimension")

	// ErrNegativeWeight indicates a vector entry below zero.
	ErrNegativeWeight = errors.New("minhash: negative weight")

	// ErrEmptyVector indicates a vector with no positive entries.
	ErrEmptyVector = errors.New("minhash: vector has no positive weights")

	// ErrSampleMismatch indicates a Jaccard call over weighted sketches
	// built with different (dimension, sampleSize) parameters.
	ErrSampleMismatch = errors.New("minhash: weighted sketches built with different parameters")
)

// DefaultSeed seeds generators unless WithSeed overrides it.
const DefaultSeed uint64 = 1

// GeneratorOption customizes a Generator before it is first used.
type GeneratorOption func(*Generator)

// WithSeed fixes the generator's sampling seed. Two generators with
// equal (dimension, sampleSize, seed) are interchangeable: they
// produce identical sketches for identical vectors.
func WithSeed(seed uint64) GeneratorOption {
	return func(g *Generator) { g.seed = seed }
}

// Generator draws consistent weighted samples (Ioffe's CWS scheme)
// from dense vectors of one fixed dimension. It is bound to its
// (dimension, sampleSize) pair at construction and is immutable
// afterwards: every random draw is a pure function of
// (seed, sample, index), so Sketch calls share no state.
type Generator struct {
	dim        int
	sampleSize int
	seed       uint64
}

// NewGenerator binds a Generator to dim-length vectors producing
// sampleSize samples per sketch.
func NewGenerator(dim, sampleSize int, opts ...GeneratorOption) (*Generator, error) {
	if dim < 1 {
		return nil, ErrBadDimension
	}
	if sampleSize < 1 {
		return nil, ErrBadSampleSize
	}
	g := &Generator{dim: dim, sampleSize: sampleSize, seed: DefaultSeed}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Dim reports the vector dimension the generator is bound to.
func (g *Generator) Dim() int { return g.dim }

// SampleSize reports the number of samples per sketch.
func (g *Generator) SampleSize() int { return g.sampleSize }

// wsample is one consistent weighted sample: the argmin index and its
// quantized log-weight level. Two vectors agree on a sample exactly
// when both fields match, which happens with probability equal to
// their weighted Jaccard similarity.
type wsample struct {
	index int
	t     int64
}

// WeightedSketch is an immutable weighted-minhash sketch.
type WeightedSketch struct {
	dim     int
	samples []wsample
}

// Sketch draws the generator's samples from vec.
//
// vec must have exactly Dim entries, none negative, at least one
// positive. The result is deterministic: equal vectors under equal
// generator parameters (seed included) sketch identically.
func (g *Generator) Sketch(vec []float64) (*WeightedSketch, error) {
	if len(vec) != g.dim {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrDimensionMismatch, len(vec), g.dim)
	}
	support := make([]int, 0, 16)
	for i, w := range vec {
		if w < 0 {
			return nil, fmt.Errorf("%w: vector[%d] = %v", ErrNegativeWeight, i, w)
		}
		if w > 0 {
			support = append(support, i)
		}
	}
	if len(support) == 0 {
		return nil, ErrEmptyVector
	}

	samples := make([]wsample, g.sampleSize)
	for k := 0; k < g.sampleSize; k++ {
		best := math.Inf(1)
		for _, i := range support {
			r := g.gamma(k, i, 0)
			c := g.gamma(k, i, 1)
			beta := g.uniform(k, i, 4)
			t := math.Floor(math.Log(vec[i])/r + beta)
			lnY := r * (t - beta)
			lnA := math.Log(c) - lnY - r
			if lnA < best {
				best = lnA
				samples[k] = wsample{index: i, t: int64(t)}
			}
		}
	}
	return &WeightedSketch{dim: g.dim, samples: samples}, nil
}

// gamma draws a Gamma(2,1) variate for one (sample, index) cell.
// Shape-2 gamma is the sum of two unit exponentials, so -ln(u1·u2)
// over two independent uniforms is an exact draw.
func (g *Generator) gamma(k, i, slot int) float64 {
	return -math.Log(g.uniform(k, i, 2*slot) * g.uniform(k, i, 2*slot+1))
}

// uniform maps (seed, sample, index, slot) to a draw in (0, 1],
// using murmur3 as a counter-based stream. The +1 shift keeps the
// draw away from zero so logarithms stay finite.
func (g *Generator) uniform(k, i, slot int) float64 {
	var buf [32]byte
	binary.LittleEndian.PutUint64(buf[0:], g.seed)
	binary.LittleEndian.PutUint64(buf[8:], uint64(k))
	binary.LittleEndian.PutUint64(buf[16:], uint64(i))
	binary.LittleEndian.PutUint64(buf[24:], uint64(slot))
	h, _ := murmur3.Sum128(buf[:])
	return (float64(h>>11) + 1) / (1 << 53)
}

// SampleSize reports the number of samples in the sketch.
func (s *WeightedSketch) SampleSize() int { return len(s.samples) }

// Jaccard estimates weighted Jaccard similarity as the fraction of
// agreeing samples, in [0, 1].
//
// Returns ErrSampleMismatch when other was built with a different
// (dimension, sampleSize). Sketches from generators with different
// seeds pass this check but estimate nothing; interchangeable
// generators are the caller's obligation.
func (s *WeightedSketch) Jaccard(other *WeightedSketch) (float64, error) {
	if other == nil || s.dim != other.dim || len(s.samples) != len(other.samples) {
		return 0, ErrSampleMismatch
	}
	match := 0
	for k := range s.samples {
		if s.samples[k] == other.samples[k] {
			match++
		}
	}
	return float64(match) / float64(len(s.samples)), nil
}
