package encoder

// orderedPairs returns all C(n,2) two-element combinations of items,
// each pair keeping the original index order of its two positions:
// for [a, b, c] the pairs are (a,b), (a,c), (b,c), never (b,a).
// Fewer than two items yield no pairs.
func orderedPairs(items []any) [][2]any {
	n := len(items)
	if n < 2 {
		return nil
	}
	pairs := make([][2]any, 0, n*(n-1)/2)
	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			pairs = append(pairs, [2]any{items[i], items[j]})
		}
	}
	return pairs
}
