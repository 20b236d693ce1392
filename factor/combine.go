// SPDX-License-Identifier: MIT

package factor

import (
	"cmp"
	"fmt"
	"slices"
)

// CombineFactors assigns each of the n observations a dense index over the
// distinct K-tuples (factors[0][i], ..., factors[K-1][i]) it carries.
//
// Behavior:
//   - K == 0: every observation gets 0 and the table is empty.
//   - K == 1: same indices and levels as CleanFactor.
//   - K >= 2: observations are stably sorted by the lexicographic key, runs of
//     equal keys collapse into one combination, and combinations are numbered in
//     sorted order.
//
// Errors: ErrLengthMismatch if any factor's length differs from n.
// Complexity: O(K n log n).
func CombineFactors[T cmp.Ordered](n int, factors [][]T) (*Combinations[T], []int, error) {
	for k, f := range factors {
		if len(f) != n {
			return nil, nil, fmt.Errorf("CombineFactors: factor %d has %d labels, want %d: %w", k, len(f), n, ErrLengthMismatch)
		}
	}

	combined := make([]int, n)
	switch len(factors) {
	case 0:
		return &Combinations[T]{Factors: [][]T{}, Counts: []int{}}, combined, nil
	case 1:
		levels, cleaned := CleanFactor(factors[0])
		return &Combinations[T]{Factors: [][]T{levels}, Counts: tally(cleaned, len(levels))}, cleaned, nil
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		for _, f := range factors {
			if c := cmp.Compare(f[a], f[b]); c != 0 {
				return c
			}
		}
		return 0
	})

	out := &Combinations[T]{Factors: make([][]T, len(factors))}
	last := -1
	for _, obs := range order {
		if last < 0 || !sameKey(factors, last, obs) {
			for k, f := range factors {
				out.Factors[k] = append(out.Factors[k], f[obs])
			}
			out.Counts = append(out.Counts, 0)
			last = obs
		}
		m := len(out.Counts) - 1
		combined[obs] = m
		out.Counts[m]++
	}
	if n == 0 {
		for k := range out.Factors {
			out.Factors[k] = []T{}
		}
		out.Counts = []int{}
	}

	return out, combined, nil
}

func sameKey[T cmp.Ordered](factors [][]T, a, b int) bool {
	for _, f := range factors {
		if cmp.Compare(f[a], f[b]) != 0 {
			return false
		}
	}

	return true
}
