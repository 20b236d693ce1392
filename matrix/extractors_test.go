// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/libscran/scran-aggregate/matrix"
)

func TestRepresentations_Traits(t *testing.T) {
	t.Parallel()
	reps := smallReps(t)

	require.True(t, reps.DenseRow.PreferRows())
	require.False(t, reps.DenseRow.Sparse())
	require.False(t, reps.DenseColumn.PreferRows())
	require.False(t, reps.DenseColumn.Sparse())
	require.True(t, reps.SparseRow.PreferRows())
	require.True(t, reps.SparseRow.Sparse())
	require.False(t, reps.SparseColumn.PreferRows())
	require.True(t, reps.SparseColumn.Sparse())

	for _, rep := range reps.All() {
		require.Equal(t, 3, rep.Matrix.Rows(), rep.Name)
		require.Equal(t, 4, rep.Matrix.Cols(), rep.Name)
	}
}

func TestDenseExtractor_AllSelections(t *testing.T) {
	t.Parallel()
	reps := smallReps(t)

	for _, rep := range reps.All() {
		for _, row := range []bool{true, false} {
			target, other := rep.Matrix.Rows(), rep.Matrix.Cols()
			if !row {
				target, other = other, target
			}
			for _, sc := range selectionCases() {
				ext, err := rep.Matrix.DenseExtractor(row, sc.sel(other))
				require.NoError(t, err)
				positions := sc.positions(other)
				buf := make([]float64, 0) // forces growth inside Fetch
				for i := 0; i < target; i++ {
					got := ext.Fetch(i, buf)
					want := expectedFetch(t, reps.DenseRow, row, i, positions)
					require.Equal(t, want, got, "%s row=%v %s target=%d", rep.Name, row, sc.name, i)
				}
			}
		}
	}
}

func TestSparseExtractor_AllSelections(t *testing.T) {
	t.Parallel()
	reps := smallReps(t)

	for _, rep := range reps.All() {
		for _, row := range []bool{true, false} {
			target, other := rep.Matrix.Rows(), rep.Matrix.Cols()
			if !row {
				target, other = other, target
			}
			for _, sc := range selectionCases() {
				ext, err := rep.Matrix.SparseExtractor(row, sc.sel(other))
				require.NoError(t, err)
				positions := sc.positions(other)
				slot := make(map[int]int, len(positions))
				for k, p := range positions {
					slot[p] = k
				}

				for i := 0; i < target; i++ {
					rng := ext.Fetch(i, nil, nil)
					require.Len(t, rng.Value[:rng.Number], rng.Number)
					require.Len(t, rng.Index[:rng.Number], rng.Number)

					// Scatter into the selection and compare with the dense expectation.
					got := make([]float64, len(positions))
					prev := -1
					for k := 0; k < rng.Number; k++ {
						idx := rng.Index[k]
						require.Greater(t, idx, prev, "indices must ascend")
						prev = idx
						pos, ok := slot[idx]
						require.True(t, ok, "index %d outside selection", idx)
						got[pos] = rng.Value[k]
					}
					want := expectedFetch(t, reps.DenseRow, row, i, positions)
					require.Equal(t, want, got, "%s row=%v %s target=%d", rep.Name, row, sc.name, i)

					if rep.Matrix.Sparse() {
						for k := 0; k < rng.Number; k++ {
							require.NotZero(t, rng.Value[k], "sparse storage reports structural non-zeros only")
						}
					} else {
						require.Equal(t, len(positions), rng.Number, "dense storage reports every selected element")
					}
				}
			}
		}
	}
}

func TestExtractor_InvalidSelection(t *testing.T) {
	t.Parallel()
	reps := smallReps(t)

	bad := []matrix.Selection{
		matrix.Block(-1, 2),
		matrix.Block(3, 2),
		matrix.Block(0, -1),
		matrix.Indexed([]int{0, 0}),
		matrix.Indexed([]int{2, 1}),
		matrix.Indexed([]int{4}),
		matrix.Indexed([]int{-1}),
	}
	for _, rep := range reps.All() {
		for _, sel := range bad {
			_, err := rep.Matrix.DenseExtractor(true, sel)
			require.ErrorIs(t, err, matrix.ErrInvalidSelection, "%s %s", rep.Name, sel)
			_, err = rep.Matrix.SparseExtractor(true, sel)
			require.ErrorIs(t, err, matrix.ErrInvalidSelection, "%s %s", rep.Name, sel)
		}
	}
}

func TestSelection_Len(t *testing.T) {
	t.Parallel()
	require.Equal(t, 7, matrix.Full().Len(7))
	require.Equal(t, 3, matrix.Block(2, 3).Len(7))
	require.Equal(t, 2, matrix.Indexed([]int{1, 5}).Len(7))
	require.Equal(t, 7, matrix.Selection{}.Len(7), "zero value selects everything")
	require.NoError(t, matrix.ValidateSelection(matrix.Block(7, 0), 7))
}
