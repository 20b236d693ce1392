// SPDX-License-Identifier: MIT

// Package testutil provides deterministic fixtures shared by the package tests:
// simulated expression vectors, the four matrix representations of one grid,
// cyclic groupings and varying initial fills for caller-owned buffers.
package testutil

import (
	"math/rand"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/libscran/scran-aggregate/matrix"
)

// SimulationParameters controls SimulateVector.
type SimulationParameters struct {
	Density float64 // probability that an element is non-zero
	Lower   float64 // inclusive lower bound of non-zero values
	Upper   float64 // exclusive upper bound of non-zero values
	Seed    int64
}

// DefaultSimulationParameters returns a fully dense U(-10,10) draw with seed 1234.
func DefaultSimulationParameters() SimulationParameters {
	return SimulationParameters{Density: 1, Lower: -10, Upper: 10, Seed: 1234}
}

// SimulateVector returns n values; each is non-zero with probability Density
// and then drawn uniformly from [Lower, Upper).
// Deterministic for a fixed Seed.
func SimulateVector(n int, params SimulationParameters) []float64 {
	rng := rand.New(rand.NewSource(params.Seed))
	out := make([]float64, n)
	width := params.Upper - params.Lower
	for i := range out {
		if rng.Float64() < params.Density {
			out[i] = params.Lower + rng.Float64()*width
		}
	}

	return out
}

// Representations holds one grid in the four storage flavours.
type Representations struct {
	DenseRow     matrix.Matrix
	DenseColumn  matrix.Matrix
	SparseRow    matrix.Matrix
	SparseColumn matrix.Matrix
}

// Named pairs a representation with a subtest name.
type Named struct {
	Name   string
	Matrix matrix.Matrix
}

// All lists the representations in a fixed order, dense-row first.
func (r Representations) All() []Named {
	return []Named{
		{Name: "dense_row", Matrix: r.DenseRow},
		{Name: "dense_column", Matrix: r.DenseColumn},
		{Name: "sparse_row", Matrix: r.SparseRow},
		{Name: "sparse_column", Matrix: r.SparseColumn},
	}
}

// NewRepresentations builds all four flavours from row-major values.
func NewRepresentations(tb testing.TB, rows, cols int, rowMajor []float64) Representations {
	tb.Helper()
	denseRow, err := matrix.NewDenseRowMajor(rows, cols, rowMajor)
	require.NoError(tb, err)
	denseColumn, err := matrix.ConvertToDense(denseRow, false)
	require.NoError(tb, err)
	sparseRow, err := matrix.ConvertToCompressedSparse(denseRow, true)
	require.NoError(tb, err)
	sparseColumn, err := matrix.ConvertToCompressedSparse(denseRow, false)
	require.NoError(tb, err)

	return Representations{
		DenseRow:     denseRow,
		DenseColumn:  denseColumn,
		SparseRow:    sparseRow,
		SparseColumn: sparseColumn,
	}
}

// SimulateRepresentations simulates a rows×cols grid and builds all four flavours.
func SimulateRepresentations(tb testing.TB, rows, cols int, params SimulationParameters) Representations {
	tb.Helper()
	return NewRepresentations(tb, rows, cols, SimulateVector(rows*cols, params))
}

// Groupings assigns observation i to group i % ngroups.
func Groupings(n, ngroups int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i % ngroups
	}
	return out
}

var initialCounter atomic.Int64

// InitialValue returns a different small positive value on each call, cycling
// through [1, 255]. Buffers pre-filled with it catch kernels that rely on
// zero-initialised outputs.
func InitialValue() int {
	return int(initialCounter.Add(1)%255) + 1
}

// FilledFloats returns count buffers of length n filled with InitialValue().
func FilledFloats(count, n int) [][]float64 {
	out := make([][]float64, count)
	for i := range out {
		v := float64(InitialValue())
		out[i] = make([]float64, n)
		for j := range out[i] {
			out[i][j] = v
		}
	}
	return out
}

// FilledInts returns count buffers of length n filled with InitialValue().
func FilledInts(count, n int) [][]int {
	out := make([][]int, count)
	for i := range out {
		v := InitialValue()
		out[i] = make([]int, n)
		for j := range out[i] {
			out[i][j] = v
		}
	}
	return out
}
