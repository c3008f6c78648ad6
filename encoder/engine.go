package encoder

import "github.com/katalvlaran/minsketch/minhash"

// minhashEngine is the default Engine, backed by package minhash.
// For WeightedSet encoders it carries a generator pre-bound to the
// configured (dimension, sampleSize); the generator is read-only
// after construction, so the engine is safe for concurrent use.
type minhashEngine struct {
	gen *minhash.Generator
}

func newMinhashEngine(e *Encoder) (Engine, error) {
	eng := &minhashEngine{}
	if e.kind == WeightedSet {
		gen, err := minhash.NewGenerator(e.dim, e.sampleSize, minhash.WithSeed(e.seed))
		if err != nil {
			return nil, err
		}
		eng.gen = gen
	}
	return eng, nil
}

func (m *minhashEngine) BuildSketch(tokens [][]byte, numPerm int) (Sketch, error) {
	s, err := minhash.FromTokens(tokens, numPerm)
	if err != nil {
		return nil, err
	}
	return tokenSketch{s}, nil
}

func (m *minhashEngine) BuildWeightedSketch(vec []float64) (Sketch, error) {
	s, err := m.gen.Sketch(vec)
	if err != nil {
		return nil, err
	}
	return weightedSketch{s}, nil
}

// tokenSketch adapts *minhash.Sketch to the Sketch interface.
type tokenSketch struct{ s *minhash.Sketch }

func (a tokenSketch) Jaccard(other Sketch) (float64, error) {
	b, ok := other.(tokenSketch)
	if !ok {
		return 0, ErrSketchMismatch
	}
	return a.s.Jaccard(b.s)
}

// weightedSketch adapts *minhash.WeightedSketch to the Sketch interface.
type weightedSketch struct{ s *minhash.WeightedSketch }

func (a weightedSketch) Jaccard(other Sketch) (float64, error) {
	b, ok := other.(weightedSketch)
	if !ok {
		return 0, ErrSketchMismatch
	}
	return a.s.Jaccard(b.s)
}
