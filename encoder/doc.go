// Package encoder converts heterogeneous data structures into
// canonical token populations and sketches them for approximate
// Jaccard similarity estimation.
//
// Overview:
//
//   - One Encoder is constructed per (Kind, parameters) pair via New,
//     validated eagerly, and reused across many Encode calls.
//   - Encode dispatches on the configured Kind:
//     Set       — each element becomes its canonical token.
//     Sequence  — all C(n,2) element pairs in original index order
//     become tokens (a Kendall-tau-like order encoding;
//     most informative on longer sequences).
//     Tree      — a single-rooted nested mapping is flattened into
//     root-to-leaf branches; every branch contributes
//     its in-order element pairs, pooled into one
//     multiset. Shared pair tokens ⇒ shared substructure.
//     WeightedSet — a map of integer-string keys to non-negative
//     weights becomes a dense vector of the configured
//     dimension, sketched by weighted minhash.
//   - The sketch backend sits behind the Engine interface; the default
//     is package minhash, and WithEngine substitutes any conforming
//     implementation without touching the encoding logic.
//
// Kinds and options:
//
//   - Kind: Set | Sequence | Tree | WeightedSet.
//   - WeightedSet requires WithWeightedOption: Ports (dim 65536),
//     English (100) or Sfc (10). The option table is a read-only,
//     process-wide constant.
//   - numPerm is the permutation count for token sketches and, unless
//     WithSampleSize overrides it, also the weighted sample size.
//
// Tokens:
//
//   - A token is the canonical CBOR serialization of a value (or of a
//     2-element pair array), so equality is byte-exact and
//     deterministic across runs; string atoms are NFC-normalized
//     first. Composite values (maps, slices, structs) are canonical
//     too: CBOR canonical mode fixes map-key order.
//
// Complexity:
//
//	Set:         O(n) tokens
//	Sequence:    O(n²) tokens
//	Tree:        O(Σ per-branch C(depth+1, 2)) tokens
//	WeightedSet: O(dim) vector allocation per call (up to 65536)
//
// Error handling (sentinel errors, use errors.Is):
//
//   - ErrUnknownKind:           Kind outside the four supported values (New).
//   - ErrBadPermutations:       numPerm < 1 (New).
//   - ErrUnknownWeightedOption: WeightedSet without a recognized option (New).
//   - ErrBadInput:              Encode input of the wrong Go shape for the Kind.
//   - ErrMultipleRoots:         a Tree input with more than one top-level key.
//   - ErrBadKey:                a WeightedSet key that is not an integer.
//   - ErrIndexRange:            a WeightedSet index outside [0, dimension).
//   - ErrTokenEncode:           a value the canonical serializer cannot encode.
//   - ErrSketchMismatch:        Jaccard across sketch families or engines.
//
// All failures abort the Encode call; no partial sketch is returned.
// The sole non-error "no result" outcome is an empty Tree input,
// which yields (nil, nil).
//
// API reference:
//
//	func New(kind Kind, numPerm int, opts ...Option) (*Encoder, error)
//
//	  - kind:    one of Set, Sequence, Tree, WeightedSet.
//	  - numPerm: permutation count; higher is more accurate, costlier.
//	  - opts:    WithWeightedOption, WithSampleSize, WithSeed, WithEngine.
//
//	func (e *Encoder) Encode(data any) (Sketch, error)
//
//	  - data: []any for Set/Sequence; map[string]any for Tree
//	    (values are nested map[string]any or leaves);
//	    map[string]float64 for WeightedSet.
//	  - returns a Sketch, or (nil, nil) for an empty Tree.
//
//	Sketch.Jaccard(other) estimates similarity in [0, 1]. Estimates
//	are only meaningful between sketches built with identical
//	parameters — a caller obligation, not internally enforced beyond
//	gross shape checks.
//
// Thread safety:
//
//   - An Encoder is read-only after New and safe for concurrent use;
//     encoding is pure, synchronous and CPU-only.
//
// See also:
//
//   - minhash: the default engine, including its accuracy bounds.
package encoder
