// SPDX-License-Identifier: MIT

package dataio_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/libscran/scran-aggregate/internal/dataio"
)

const grid = "1, 0, 2\n0, 3, 0\n"

func TestReadMatrix_Formats(t *testing.T) {
	formats := []dataio.MatrixFormat{
		{RowPreferred: true},
		{RowPreferred: false},
		{RowPreferred: true, Sparse: true},
		{RowPreferred: false, Sparse: true},
	}
	for _, f := range formats {
		m, err := dataio.ReadMatrix(strings.NewReader(grid), f)
		require.NoError(t, err)
		require.Equal(t, 2, m.Rows())
		require.Equal(t, 3, m.Cols())
		require.Equal(t, f.RowPreferred, m.PreferRows())
		require.Equal(t, f.Sparse, m.Sparse())

		v, err := m.At(1, 1)
		require.NoError(t, err)
		require.Equal(t, 3.0, v)
	}
}

func TestReadMatrix_Errors(t *testing.T) {
	_, err := dataio.ReadMatrix(strings.NewReader(""), dataio.MatrixFormat{})
	require.ErrorIs(t, err, dataio.ErrEmptyInput)

	_, err = dataio.ReadMatrix(strings.NewReader("1,x\n"), dataio.MatrixFormat{})
	require.Error(t, err)

	_, err = dataio.ReadMatrix(strings.NewReader("1,2\n3\n"), dataio.MatrixFormat{})
	require.Error(t, err)
}

func TestReadLabels(t *testing.T) {
	factors, err := dataio.ReadLabels(strings.NewReader("a,1\nb,0\na,1\n"))
	require.NoError(t, err)
	require.Equal(t, [][]string{{"a", "b", "a"}, {"1", "0", "1"}}, factors)

	codes, err := dataio.ParseCodes(factors[1])
	require.NoError(t, err)
	require.Equal(t, []int{1, 0, 1}, codes)

	_, err = dataio.ParseCodes(factors[0])
	require.Error(t, err)

	_, err = dataio.ReadLabels(strings.NewReader(""))
	require.ErrorIs(t, err, dataio.ErrEmptyInput)
}

func TestReadGeneSets(t *testing.T) {
	in := `
- name: ribo
  indices: [0, 2]
- name: weighted
  indices: [1]
  weights: [0.5]
`
	named, err := dataio.ReadGeneSets(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, named, 2)
	require.Equal(t, "ribo", named[0].Name)

	sets := dataio.GeneSets(named)
	require.Equal(t, []int{0, 2}, sets[0].Indices)
	require.Nil(t, sets[0].Weights)
	require.Equal(t, []float64{0.5}, sets[1].Weights)

	_, err = dataio.ReadGeneSets(strings.NewReader(""))
	require.ErrorIs(t, err, dataio.ErrEmptyInput)
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, dataio.WriteYAML(&buf, map[string][]int{"counts": {1, 2}}))

	var back map[string][]int
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &back))
	require.Equal(t, []int{1, 2}, back["counts"])
}
