// SPDX-License-Identifier: MIT

// Package matrix - conversions between representations.
//
// Purpose:
//   - Materialise any Matrix as Dense (row- or column-major) or as
//     CompressedSparse (CSR or CSC), reading it through its own extractors.
//
// Determinism:
//   - Fixed traversal: primary elements ascending, entries ascending.

package matrix

import "fmt"

const (
	opConvertToDense            = "ConvertToDense"
	opConvertToCompressedSparse = "ConvertToCompressedSparse"
)

// matrixErrorf wraps an underlying error with the given tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ConvertToDense copies m into a new Dense with the requested layout.
//
// Implementation:
//   - Stage 1: validate m.
//   - Stage 2: extract along the layout's storage order and copy each slice.
//
// Complexity:
//   - Time O(r*c) plus extraction cost, Space O(r*c).
func ConvertToDense(m Matrix, rowMajor bool) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opConvertToDense, err)
	}
	r, c := m.Rows(), m.Cols()
	primary, secondary := r, c
	if !rowMajor {
		primary, secondary = c, r
	}

	ext, err := m.DenseExtractor(rowMajor, Full())
	if err != nil {
		return nil, matrixErrorf(opConvertToDense, err)
	}
	data := make([]float64, r*c)
	buf := make([]float64, secondary)
	for p := 0; p < primary; p++ {
		copy(data[p*secondary:(p+1)*secondary], ext.Fetch(p, buf))
	}

	return &Dense{r: r, c: c, data: data, rowMajor: rowMajor}, nil
}

// ConvertToCompressedSparse copies the non-zero entries of m into a new
// CompressedSparse compressed by row (byRow) or by column.
//
// Behavior highlights:
//   - Explicit zeros reported by the source are dropped.
//
// Complexity:
//   - Time O(primary * secondary) for dense sources, O(nnz) for sparse ones
//     extracted along their storage order.
func ConvertToCompressedSparse(m Matrix, byRow bool) (*CompressedSparse, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opConvertToCompressedSparse, err)
	}
	r, c := m.Rows(), m.Cols()
	primary, secondary := r, c
	if !byRow {
		primary, secondary = c, r
	}

	ext, err := m.SparseExtractor(byRow, Full())
	if err != nil {
		return nil, matrixErrorf(opConvertToCompressedSparse, err)
	}

	var (
		values   []float64
		indices  []int
		pointers = make([]int, primary+1)
		vbuf     = make([]float64, secondary)
		ibuf     = make([]int, secondary)
	)
	for p := 0; p < primary; p++ {
		rng := ext.Fetch(p, vbuf, ibuf)
		for k := 0; k < rng.Number; k++ {
			if rng.Value[k] != 0 {
				values = append(values, rng.Value[k])
				indices = append(indices, rng.Index[k])
			}
		}
		pointers[p+1] = len(values)
	}

	return &CompressedSparse{
		r:        r,
		c:        c,
		byRow:    byRow,
		values:   values,
		indices:  indices,
		pointers: pointers,
	}, nil
}
