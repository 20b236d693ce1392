// SPDX-License-Identifier: MIT

package factor

import (
	"cmp"
	"slices"
)

// CleanFactor returns the sorted distinct labels and, for every observation,
// the position of its label in that sorted list.
//
// Guarantees levels[cleaned[i]] == labels[i], and every index in
// [0, len(levels)) occurs at least once in cleaned.
// NaN labels are not supported.
// Complexity: O(n + M log M) with M distinct labels.
func CleanFactor[T cmp.Ordered](labels []T) (levels []T, cleaned []int) {
	return CleanFactorFunc(labels, cmp.Compare[T])
}

// CleanFactorFunc is CleanFactor for label types ordered by compare, which must
// be a strict weak order consistent with ==.
func CleanFactorFunc[T comparable](labels []T, compare func(a, b T) int) (levels []T, cleaned []int) {
	// Stage 1: provisional index = order of first appearance.
	firstSeen := make(map[T]int)
	cleaned = make([]int, len(labels))
	for i, l := range labels {
		idx, ok := firstSeen[l]
		if !ok {
			idx = len(levels)
			firstSeen[l] = idx
			levels = append(levels, l)
		}
		cleaned[i] = idx
	}

	// Stage 2: sort the distinct labels, remembering where each came from.
	order := make([]int, len(levels))
	for i := range order {
		order[i] = i
	}
	slices.SortFunc(order, func(a, b int) int { return compare(levels[a], levels[b]) })

	remap := make([]int, len(levels))
	sorted := make([]T, len(levels))
	for pos, provisional := range order {
		remap[provisional] = pos
		sorted[pos] = levels[provisional]
	}

	// Stage 3: provisional -> sorted position.
	for i, idx := range cleaned {
		cleaned[i] = remap[idx]
	}
	if sorted == nil {
		sorted = []T{}
	}

	return sorted, cleaned
}
