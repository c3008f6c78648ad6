package encoder

import "sort"

// flattenTree walks every root-to-leaf path of node and returns one
// branch per path: the keys along the path followed by the terminal
// leaf value. A value that is itself a map[string]any is an internal
// node; anything else is a leaf. An internal node with no children
// contributes no branches.
//
// The prefix accumulator is copied before every extension, so sibling
// recursive calls never observe each other's partial paths. Sibling
// keys are visited in sorted order: Go map iteration is randomized,
// and a stable branch order keeps encoding reproducible (the pooled
// pair multiset is order-insensitive either way).
func flattenTree(node map[string]any, prefix []any) [][]any {
	keys := make([]string, 0, len(node))
	for k := range node {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	branches := make([][]any, 0, len(keys))
	for _, k := range keys {
		path := make([]any, len(prefix), len(prefix)+2)
		copy(path, prefix)
		path = append(path, k)
		if child, ok := node[k].(map[string]any); ok {
			branches = append(branches, flattenTree(child, path)...)
			continue
		}
		branches = append(branches, append(path, node[k]))
	}
	return branches
}
