package encoder

import "errors"

// Sentinel errors for the encoding pipeline.
//
// Error policy (per-package, strict):
//   - Only package-level sentinels are exposed; branch with errors.Is.
//   - Implementations attach context via %w wrapping, never by
//     stringifying parameters into the sentinel itself.
//   - Configuration sentinels are raised by New, before any data is
//     seen; the rest are raised per Encode call.
var (
	// ErrUnknownKind indicates a Kind outside the four supported values.
	ErrUnknownKind = errors.New("encoder: unknown structure kind")

	// ErrBadPermutations indicates a non-positive permutation count.
	ErrBadPermutations = errors.New("encoder: permutation count must be positive")

	// ErrUnknownWeightedOption indicates a WeightedSet encoder constructed
	// without a recognized weighted option.
	ErrUnknownWeightedOption = errors.New("encoder: unknown weighted-set option")

	// ErrBadInput indicates Encode input whose Go shape does not match
	// the configured Kind.
	ErrBadInput = errors.New("encoder: input shape does not match kind")

	// ErrMultipleRoots indicates a Tree input with more than one
	// top-level key.
	ErrMultipleRoots = errors.New("encoder: a tree has exactly one root")

	// ErrBadKey indicates a WeightedSet key that does not parse as an
	// integer index.
	ErrBadKey = errors.New("encoder: weighted-set key is not an integer")

	// ErrIndexRange indicates a WeightedSet index outside the configured
	// vector dimension.
	ErrIndexRange = errors.New("encoder: weighted-set index out of range")

	// ErrTokenEncode indicates a value the canonical serializer cannot
	// represent (e.g. a channel or function leaf).
	ErrTokenEncode = errors.New("encoder: value cannot be canonically serialized")

	// ErrSketchMismatch indicates a Jaccard call across sketch families
	// (e.g. a token sketch against a weighted sketch) or engines.
	ErrSketchMismatch = errors.New("encoder: sketches are not comparable")
)
