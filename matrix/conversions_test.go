// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/libscran/scran-aggregate/internal/testutil"
	"github.com/libscran/scran-aggregate/matrix"
)

func TestConversions_PreserveEveryElement(t *testing.T) {
	t.Parallel()

	params := testutil.DefaultSimulationParameters()
	params.Density = 0.3
	const nr, nc = 20, 15
	vals := testutil.SimulateVector(nr*nc, params)
	reps := testutil.NewRepresentations(t, nr, nc, vals)

	for _, rep := range reps.All() {
		for i := 0; i < nr; i++ {
			for j := 0; j < nc; j++ {
				require.Equal(t, vals[i*nc+j], MustAt(t, rep.Matrix, i, j), "%s (%d,%d)", rep.Name, i, j)
			}
		}
	}

	// Round trips through every pair of flavours.
	for _, rep := range reps.All() {
		back, err := matrix.ConvertToDense(rep.Matrix, true)
		require.NoError(t, err)
		require.Equal(t, reps.DenseRow.(*matrix.Dense).String(), back.String(), rep.Name)

		sp, err := matrix.ConvertToCompressedSparse(rep.Matrix, false)
		require.NoError(t, err)
		require.Equal(t, reps.SparseColumn.(*matrix.CompressedSparse).NonZeros(), sp.NonZeros(), rep.Name)
	}
}

func TestConversions_DropExplicitZeros(t *testing.T) {
	t.Parallel()

	d, err := matrix.NewDenseRowMajor(2, 2, []float64{0, 1, 0, 0})
	require.NoError(t, err)
	sp, err := matrix.ConvertToCompressedSparse(d, true)
	require.NoError(t, err)
	require.Equal(t, 1, sp.NonZeros())
}

func TestConversions_EmptyAxes(t *testing.T) {
	t.Parallel()

	d, err := matrix.NewDense(3, 0)
	require.NoError(t, err)
	sp, err := matrix.ConvertToCompressedSparse(d, false)
	require.NoError(t, err)
	require.Equal(t, 0, sp.Cols())
	require.Equal(t, 3, sp.Rows())

	back, err := matrix.ConvertToDense(sp, true)
	require.NoError(t, err)
	require.Equal(t, 3, back.Rows())
}

func TestConversions_Nil(t *testing.T) {
	t.Parallel()

	_, err := matrix.ConvertToDense(nil, true)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.ConvertToCompressedSparse(nil, true)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
