// Package minsketch estimates approximate similarity between
// heterogeneous data structures — plain sets, ordered sequences,
// rooted nested trees, and weighted sets — via minwise hashing.
//
// 🚀 What is minsketch?
//
//	A small, pure-Go library that turns a structure into a canonical
//	token population and sketches it for fast Jaccard estimation:
//		• Sets:       elements → canonical tokens, as-is
//		• Sequences:  all order-preserving element pairs (Kendall-tau-like)
//		• Trees:      root-to-leaf branches → ancestry/sibling pairs
//		• Weighted:   sparse index→weight maps → weighted minhash
//
// ✨ Why choose minsketch?
//
//   - One facade — encoder.New(kind, numPerm) then Encode(data)
//   - Deterministic — equal inputs always sketch identically
//   - Pluggable — any engine satisfying encoder.Engine slots in
//   - Pure Go — no cgo, no I/O, safe for concurrent use
//
// Everything is organized under two subpackages:
//
//	encoder/ — structural encoding: kind dispatch, tree flattening,
//	           pair expansion, weight vectors, token canonicalization
//	minhash/ — the default sketch engine: minwise signatures and a
//	           weighted minhash generator (consistent weighted sampling)
//
// Quick ASCII example:
//
//	 {root}                 branches        pair tokens
//	 /    \
//	a      b      ──►   (root,a,1)   ──►  (root,a),(root,1),(a,1)
//	│      │            (root,b,2)        (root,b),(root,2),(b,2)
//	1      2
//
// Two trees sharing substructure share pair tokens, so the sketches'
// Jaccard estimate tracks shared-substructure overlap.
//
//	go get github.com/katalvlaran/minsketch
package minsketch
