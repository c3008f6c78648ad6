package minhash

import (
	"errors"
	"math"

	"github.com/spaolacci/murmur3"
)

// Sentinel errors for unweighted sketching.
var (
	// ErrBadPermutations indicates a non-positive permutation count.
	ErrBadPermutations = errors.New("minhash: permutation count must be positive")

	// ErrSignatureMismatch indicates a Jaccard call over sketches built
	// with different permutation counts.
	ErrSignatureMismatch = errors.New("minhash: sketches built with different permutation counts")
)

// Sketch is an immutable minwise signature of a token multiset.
//
// Equal token multisets always produce identical signatures, so the
// Jaccard estimate of a sketch against a same-input sketch is exactly 1.
type Sketch struct {
	sig []uint64
}

// FromTokens builds a Sketch of numPerm permutations over tokens.
//
// Each token is hashed once; the i-th permutation value is h1 + i·h2
// (mod 2^64), and the signature keeps the minimum seen per
// permutation. Duplicate tokens are permitted and do not change the
// signature. An empty multiset is valid: its signature holds only
// sentinels and compares equal to any other empty-multiset signature.
func FromTokens(tokens [][]byte, numPerm int) (*Sketch, error) {
	if numPerm < 1 {
		return nil, ErrBadPermutations
	}
	sig := make([]uint64, numPerm)
	for i := range sig {
		sig[i] = math.MaxUint64
	}
	for _, tok := range tokens {
		h1, h2 := murmur3.Sum128(tok)
		hv := h1
		for i := 0; i < numPerm; i++ {
			if hv < sig[i] {
				sig[i] = hv
			}
			hv += h2 // advances to h1 + (i+1)·h2, wrapping mod 2^64
		}
	}
	return &Sketch{sig: sig}, nil
}

// NumPermutations reports the permutation count the sketch was built with.
func (s *Sketch) NumPermutations() int { return len(s.sig) }

// Jaccard estimates the Jaccard similarity between the two sketched
// multisets as the fraction of matching signature slots, in [0, 1].
//
// Returns ErrSignatureMismatch when other was built with a different
// permutation count.
func (s *Sketch) Jaccard(other *Sketch) (float64, error) {
	if other == nil || len(s.sig) != len(other.sig) {
		return 0, ErrSignatureMismatch
	}
	match := 0
	for i := range s.sig {
		if s.sig[i] == other.sig[i] {
			match++
		}
	}
	return float64(match) / float64(len(s.sig)), nil
}
