package encoder

import (
	"fmt"

	"github.com/katalvlaran/minsketch/minhash"
)

// Option customizes an Encoder before validation completes.
//
// Option constructors validate and panic on meaningless inputs to
// surface programmer error early; New itself never panics.
type Option func(*Encoder)

// WithWeightedOption selects the weight-vector dimension preset.
// Required for WeightedSet encoders, ignored by the other kinds.
func WithWeightedOption(o WeightedOption) Option {
	return func(e *Encoder) { e.weighted = o }
}

// WithSampleSize decouples the weighted sample count from numPerm
// (they default to the same value). Panics on non-positive n.
func WithSampleSize(n int) Option {
	if n < 1 {
		panic("encoder: WithSampleSize: non-positive sample size")
	}
	return func(e *Encoder) { e.sampleSize = n }
}

// WithSeed fixes the weighted generator's sampling seed. Encoders
// must share a seed for their weighted sketches to be comparable.
func WithSeed(seed uint64) Option {
	return func(e *Encoder) { e.seed = seed }
}

// WithEngine substitutes the sketch backend. Panics on nil; the
// caller owns any pre-binding the engine needs.
func WithEngine(eng Engine) Option {
	if eng == nil {
		panic("encoder: WithEngine(nil)")
	}
	return func(e *Encoder) { e.engine = eng }
}

// Encoder is the structural-encoding facade. It is read-only after
// New and safe for concurrent use; each Encode call is an independent
// pure transformation.
type Encoder struct {
	kind       Kind
	numPerm    int
	sampleSize int
	weighted   WeightedOption
	dim        int
	seed       uint64
	engine     Engine
}

// New constructs an Encoder for one structure kind, validating the
// whole configuration before any data is seen.
//
// Errors: ErrUnknownKind, ErrBadPermutations, and — for WeightedSet
// without a recognized WithWeightedOption — ErrUnknownWeightedOption.
func New(kind Kind, numPerm int, opts ...Option) (*Encoder, error) {
	switch kind {
	case Set, Sequence, Tree, WeightedSet:
	default:
		return nil, fmt.Errorf("%w: Kind(%d)", ErrUnknownKind, int(kind))
	}
	if numPerm < 1 {
		return nil, ErrBadPermutations
	}

	e := &Encoder{kind: kind, numPerm: numPerm, seed: minhash.DefaultSeed}
	for _, opt := range opts {
		opt(e)
	}
	if e.sampleSize == 0 {
		e.sampleSize = numPerm
	}

	if kind == WeightedSet {
		dim, ok := e.weighted.Dimension()
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownWeightedOption, string(e.weighted))
		}
		e.dim = dim
	}

	if e.engine == nil {
		eng, err := newMinhashEngine(e)
		if err != nil {
			return nil, err
		}
		e.engine = eng
	}
	return e, nil
}

// Kind reports the structure kind the encoder was built for.
func (e *Encoder) Kind() Kind { return e.kind }

// Encode converts data into the kind's canonical token population or
// weight vector and returns its sketch.
//
// Expected input shapes: []any for Set and Sequence, map[string]any
// for Tree, map[string]float64 for WeightedSet; anything else is
// ErrBadInput. An empty Tree yields (nil, nil) — a defined empty
// result, neither a sketch nor an error. All failures abort the call;
// no partial sketch is ever returned.
func (e *Encoder) Encode(data any) (Sketch, error) {
	switch e.kind {
	case Set:
		items, ok := data.([]any)
		if !ok {
			return nil, fmt.Errorf("%w: set expects []any, got %T", ErrBadInput, data)
		}
		return e.encodeSet(items)
	case Sequence:
		items, ok := data.([]any)
		if !ok {
			return nil, fmt.Errorf("%w: sequence expects []any, got %T", ErrBadInput, data)
		}
		return e.encodePairs(orderedPairs(items))
	case Tree:
		root, ok := data.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: tree expects map[string]any, got %T", ErrBadInput, data)
		}
		return e.encodeTree(root)
	case WeightedSet:
		weights, ok := data.(map[string]float64)
		if !ok {
			return nil, fmt.Errorf("%w: weighted set expects map[string]float64, got %T", ErrBadInput, data)
		}
		vec, err := buildWeightVector(weights, e.dim)
		if err != nil {
			return nil, err
		}
		return e.engine.BuildWeightedSketch(vec)
	}
	// Unreachable: New rejects every other Kind.
	return nil, ErrUnknownKind
}

// encodeSet sketches the canonical tokens of items, duplicates kept.
func (e *Encoder) encodeSet(items []any) (Sketch, error) {
	tokens := make([][]byte, 0, len(items))
	for _, v := range items {
		tok, err := tokenBytes(v)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}
	return e.engine.BuildSketch(tokens, e.numPerm)
}

// encodePairs serializes each ordered pair as one token and sketches
// the pooled multiset.
func (e *Encoder) encodePairs(pairs [][2]any) (Sketch, error) {
	tokens := make([][]byte, 0, len(pairs))
	for _, p := range pairs {
		tok, err := pairToken(p[0], p[1])
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}
	return e.engine.BuildSketch(tokens, e.numPerm)
}

// encodeTree flattens the single-rooted mapping into branches, pools
// every branch's in-order pairs, and sketches the result.
func (e *Encoder) encodeTree(root map[string]any) (Sketch, error) {
	if len(root) == 0 {
		return nil, nil // defined empty result
	}
	if len(root) > 1 {
		return nil, fmt.Errorf("%w: got %d top-level keys", ErrMultipleRoots, len(root))
	}
	var pairs [][2]any
	for _, branch := range flattenTree(root, nil) {
		pairs = append(pairs, orderedPairs(branch)...)
	}
	return e.encodePairs(pairs)
}
