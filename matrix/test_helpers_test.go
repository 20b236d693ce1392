// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for extractor and conversion tests.
//   • Keep all data finite and well-formed.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/libscran/scran-aggregate/internal/testutil"
	"github.com/libscran/scran-aggregate/matrix"
)

// smallGrid is a 3×4 row-major grid with zeros, negatives and positives.
var smallGrid = []float64{
	0, 1.5, 0, -2,
	3, 0, 0, 4,
	0, 0, 5, 0,
}

// smallReps builds the four representations of smallGrid.
func smallReps(t *testing.T) testutil.Representations {
	t.Helper()
	return testutil.NewRepresentations(t, 3, 4, smallGrid)
}

// MustAt reads (i,j) or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)
	return v
}

// expectedFetch builds the dense expectation of one Fetch via At.
func expectedFetch(t *testing.T, m matrix.Matrix, row bool, i int, positions []int) []float64 {
	t.Helper()
	out := make([]float64, len(positions))
	for k, j := range positions {
		if row {
			out[k] = MustAt(t, m, i, j)
		} else {
			out[k] = MustAt(t, m, j, i)
		}
	}
	return out
}

// selectionCase pairs a Selection with the absolute positions it covers.
type selectionCase struct {
	name      string
	sel       func(extent int) matrix.Selection
	positions func(extent int) []int
}

func selectionCases() []selectionCase {
	return []selectionCase{
		{
			name: "full",
			sel:  func(int) matrix.Selection { return matrix.Full() },
			positions: func(extent int) []int {
				out := make([]int, extent)
				for k := range out {
					out[k] = k
				}
				return out
			},
		},
		{
			name:      "block",
			sel:       func(extent int) matrix.Selection { return matrix.Block(1, extent-2) },
			positions: func(extent int) []int { return rangeOf(1, extent-2) },
		},
		{
			name:      "indexed",
			sel:       func(extent int) matrix.Selection { return matrix.Indexed([]int{0, extent - 1}) },
			positions: func(extent int) []int { return []int{0, extent - 1} },
		},
	}
}

func rangeOf(start, length int) []int {
	out := make([]int, length)
	for k := range out {
		out[k] = start + k
	}
	return out
}
