// Package minhash provides the default sketch engine for minsketch:
// minwise-hashing signatures over token multisets, and a weighted
// minhash generator over dense non-negative vectors.
//
// Overview:
//
//   - FromTokens builds a fixed-size Sketch from a multiset of byte
//     tokens; Sketch.Jaccard estimates plain Jaccard similarity.
//   - NewGenerator binds a Generator to a (dimension, sampleSize)
//     pair once; Generator.Sketch then draws consistent weighted
//     samples from a dense vector, and WeightedSketch.Jaccard
//     estimates weighted Jaccard similarity.
//
// How it works:
//
//   - Unweighted: each token is hashed once with 128-bit murmur3 into
//     (h1, h2); the i-th of numPerm permutations is the classic
//     double-hash family h1 + i·h2, and the signature keeps the
//     minimum per permutation. The estimator is the fraction of
//     matching signature slots.
//   - Weighted: Ioffe's consistent weighted sampling. For every
//     (sample, index) cell the required Gamma(2,1) and Uniform(0,1)
//     draws come from counter-based murmur3 streams keyed by
//     (seed, sample, index), so the generator is O(1) memory, fully
//     deterministic per seed, and immutable after construction.
//
// Accuracy:
//
//   - Both estimators are unbiased with standard error
//     ≤ 1/sqrt(numPerm) (resp. 1/sqrt(sampleSize)); pick the count
//     to trade accuracy against sketch size and hashing cost.
//
// Complexity:
//
//	FromTokens:        O(len(tokens) · numPerm) time, O(numPerm) space
//	Generator.Sketch:  O(dim + nnz · sampleSize) time, O(sampleSize) space
//	Jaccard:           O(numPerm) / O(sampleSize) time
//
// Error handling (sentinel errors, use errors.Is):
//
//   - ErrBadPermutations:    numPerm < 1.
//   - ErrSignatureMismatch:  Jaccard over signatures of different length.
//   - ErrBadDimension:       generator dimension < 1.
//   - ErrBadSampleSize:      generator sample size < 1.
//   - ErrDimensionMismatch:  vector length differs from the bound dimension.
//   - ErrNegativeWeight:     a vector entry is negative.
//   - ErrEmptyVector:        no vector entry is positive.
//   - ErrSampleMismatch:     Jaccard over weighted sketches with
//     different (dimension, sampleSize).
//
// Thread safety:
//
//   - Sketches and generators are read-only after construction and
//     safe for concurrent use without synchronization.
//
// Comparability is the caller's obligation: two sketches estimate a
// meaningful similarity only when built with the same numPerm (or the
// same generator parameters, seed included). Length checks catch the
// gross mismatches; equal-length sketches from different seeds are
// not detectable and yield noise.
package minhash
