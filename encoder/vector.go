package encoder

import (
	"fmt"
	"strconv"
)

// buildWeightVector expands a sparse key→weight mapping into a dense
// vector of length dim, indexed by the integer value of each key.
// Unmentioned indices stay zero. Go map keys are unique, so the
// "last write wins" rule for duplicate indices is vacuously satisfied.
//
// Errors: ErrBadKey for a key that does not parse as an integer,
// ErrIndexRange for an index outside [0, dim).
func buildWeightVector(weights map[string]float64, dim int) ([]float64, error) {
	vec := make([]float64, dim)
	for key, w := range weights {
		idx, err := strconv.Atoi(key)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadKey, key)
		}
		if idx < 0 || idx >= dim {
			return nil, fmt.Errorf("%w: key %q maps to index %d, want [0, %d)", ErrIndexRange, key, idx, dim)
		}
		vec[idx] = w
	}
	return vec, nil
}
