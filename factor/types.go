// SPDX-License-Identifier: MIT

package factor

// Combinations is a column-oriented table of label tuples.
//
// Factors[k][m] is the label of factor k in combination m; Counts[m] is the
// number of observations assigned to combination m. Rows are sorted
// lexicographically by (Factors[0][m], Factors[1][m], ...).
type Combinations[T any] struct {
	Factors [][]T
	Counts  []int
}

// Len returns the number of combinations.
func (c *Combinations[T]) Len() int {
	return len(c.Counts)
}

// At returns a fresh copy of combination i as a K-tuple.
// Panics if i is out of range.
func (c *Combinations[T]) At(i int) []T {
	out := make([]T, len(c.Factors))
	for k, f := range c.Factors {
		out[k] = f[i]
	}

	return out
}

// Levelled is an integer-coded factor together with its authoritative number of
// levels, which may exceed the largest observed code.
type Levelled[T any] struct {
	Labels []T
	Levels int
}

// tally counts the occurrences of each index in [0, m).
func tally(indices []int, m int) []int {
	counts := make([]int, m)
	for _, g := range indices {
		counts[g]++
	}

	return counts
}
