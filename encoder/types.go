package encoder

// Kind selects which structural encoding an Encoder applies.
type Kind int

const (
	// Set encodes a finite collection; only presence/multiplicity of
	// elements matters.
	Set Kind = iota

	// Sequence encodes an ordered collection via its order-preserving
	// element pairs.
	Sequence

	// Tree encodes a single-rooted nested mapping via branch pairs.
	Tree

	// WeightedSet encodes an index→weight mapping via weighted minhash.
	WeightedSet
)

// String returns the kind's name, or "unknown" outside the enum.
func (k Kind) String() string {
	switch k {
	case Set:
		return "set"
	case Sequence:
		return "sequence"
	case Tree:
		return "tree"
	case WeightedSet:
		return "weighted_set"
	default:
		return "unknown"
	}
}

// WeightedOption names a preset weight-vector dimension for
// WeightedSet encoders.
type WeightedOption string

const (
	// Ports sizes the vector for the TCP/UDP port space (65536).
	Ports WeightedOption = "ports"

	// English sizes the vector for percentage-style frequencies (100).
	English WeightedOption = "english"

	// Sfc sizes the vector for small fixed categories (10).
	Sfc WeightedOption = "sfc"
)

// weightedDims is the read-only option table, initialized once at
// process start and never mutated.
var weightedDims = map[WeightedOption]int{
	Ports:   65536,
	English: 100,
	Sfc:     10,
}

// Dimension returns the vector dimension configured for the option
// and whether the option is recognized.
func (o WeightedOption) Dimension() (int, bool) {
	dim, ok := weightedDims[o]
	return dim, ok
}

// Sketch is an immutable, fixed-size probabilistic summary supporting
// approximate Jaccard similarity estimation against another Sketch
// produced by the same engine with identical parameters.
type Sketch interface {
	// Jaccard estimates similarity in [0, 1]. Implementations return
	// ErrSketchMismatch (or an engine-level mismatch error) when other
	// belongs to a different sketch family.
	Jaccard(other Sketch) (float64, error)
}

// Engine abstracts the sketch backend behind the two build
// operations the encoding pipeline needs. Any conforming minhash /
// weighted-minhash implementation can be substituted via WithEngine
// without touching the encoding logic.
type Engine interface {
	// BuildSketch sketches a token multiset with numPerm permutations.
	BuildSketch(tokens [][]byte, numPerm int) (Sketch, error)

	// BuildWeightedSketch sketches a dense non-negative vector. The
	// engine is pre-bound to its (dimension, sampleSize) pair; vec must
	// have exactly that dimension.
	BuildWeightedSketch(vec []float64) (Sketch, error)
}
