// SPDX-License-Identifier: MIT

package aggregate

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLocalBuffer_TransferOwnsWindowOnly(t *testing.T) {
	shared := []int{9, 9, 9, 9, 9}
	b := newLocalBuffer(shared, 1, 3)
	require.Equal(t, []int{0, 0, 0}, b.data)

	b.data[0], b.data[2] = 4, 6
	b.transfer()
	require.Equal(t, []int{9, 4, 0, 6, 9}, shared)
}

func TestLocalBuffers_SkippedStatistic(t *testing.T) {
	require.Nil(t, newLocalBuffers[float64](nil, 0, 10))
	transferAll[float64](nil)
}

func TestChooseStrategy(t *testing.T) {
	require.True(t, denseByRow.byRow())
	require.True(t, sparseByRow.byRow() && sparseByRow.sparse())
	require.False(t, denseByColumn.byRow() || denseByColumn.sparse())
	require.Equal(t, "sparse-by-column", sparseByColumn.String())
}
