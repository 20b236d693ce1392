// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major or column-major) & extractors.
//
// Purpose:
//   - Provide a cache-friendly flat buffer with the explicit offset formula
//     i*cols + j (row-major) or j*rows + i (column-major).
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Serve dense and sparse extractors in both orientations over any Selection.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c).
//   - Fetch along the storage order over Full/Block: O(1), aliases storage.
//   - Fetch across the storage order or over Indexed: O(selection length).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete flat-buffer matrix.
//   - r,c hold dimensions (rows, cols); zero is legal (empty feature or
//     observation axis).
//   - data is a flat buffer of length r*c.
//   - rowMajor selects the layout; it also decides PreferRows.
type Dense struct {
	r, c     int       // row and column counts (>= 0)
	data     []float64 // contiguous storage (len == r*c)
	rowMajor bool      // true: offset = i*c + j; false: offset = j*r + i
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}
	// make() zero-fills deterministically.
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols), rowMajor: true}, nil
}

// NewDenseRowMajor wraps data (row-major, len rows*cols) without copying.
//
// Errors:
//   - ErrInvalidDimensions on negative shape.
//   - ErrDimensionMismatch when len(data) != rows*cols.
func NewDenseRowMajor(rows, cols int, data []float64) (*Dense, error) {
	if err := validateShape("NewDenseRowMajor", rows, cols, len(data)); err != nil {
		return nil, err
	}
	return &Dense{r: rows, c: cols, data: data, rowMajor: true}, nil
}

// NewDenseColumnMajor wraps data (column-major, len rows*cols) without copying.
//
// Errors:
//   - ErrInvalidDimensions on negative shape.
//   - ErrDimensionMismatch when len(data) != rows*cols.
func NewDenseColumnMajor(rows, cols int, data []float64) (*Dense, error) {
	if err := validateShape("NewDenseColumnMajor", rows, cols, len(data)); err != nil {
		return nil, err
	}
	return &Dense{r: rows, c: cols, data: data, rowMajor: false}, nil
}

// Rows returns the row count. No side effects.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// PreferRows reports whether the storage is row-major.
func (m *Dense) PreferRows() bool { return m.rowMajor }

// Sparse is always false for Dense.
func (m *Dense) Sparse() bool { return false }

// offset returns the flat offset of (row, col) without bounds checks.
func (m *Dense) offset(row, col int) int {
	if m.rowMajor {
		return row*m.c + col
	}
	return col*m.r + row
}

// indexOf computes the flat offset or returns ErrOutOfRange wrapped with the
// caller's method context.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}
	return m.offset(row, col), nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		return 0, err
	}
	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy with the same layout.
// Complexity: O(r*c) time and memory.
func (m *Dense) Clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp, rowMajor: m.rowMajor}
}

// String implements fmt.Stringer for easy debugging; rows are printed in
// order regardless of layout.
// Complexity: O(r*c).
func (m *Dense) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j = 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprintf(&sb, "%g", m.data[m.offset(i, j)])
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}

// targetExtent returns (target, non-target) sizes for an orientation.
func (m *Dense) targetExtent(row bool) (int, int) {
	if row {
		return m.r, m.c
	}
	return m.c, m.r
}

// DenseExtractor returns an extractor over rows (row==true) or columns.
//
// Behavior highlights:
//   - Along the storage order with Full/Block, Fetch returns a sub-slice of the
//     backing buffer (no copy).
//   - Otherwise values are gathered into the caller's buffer.
//
// Errors:
//   - ErrInvalidSelection (wrapped) when sel does not fit the non-target extent.
func (m *Dense) DenseExtractor(row bool, sel Selection) (DenseExtractor, error) {
	_, other := m.targetExtent(row)
	res, err := sel.resolve(other)
	if err != nil {
		return nil, fmt.Errorf("Dense.DenseExtractor(%s): %w", sel, err)
	}
	return &denseDenseExtractor{m: m, row: row, sel: res}, nil
}

// SparseExtractor returns an extractor reporting every selected element,
// zeros included, as (index, value) pairs in ascending index order.
func (m *Dense) SparseExtractor(row bool, sel Selection) (SparseExtractor, error) {
	_, other := m.targetExtent(row)
	res, err := sel.resolve(other)
	if err != nil {
		return nil, fmt.Errorf("Dense.SparseExtractor(%s): %w", sel, err)
	}
	return &denseSparseExtractor{inner: denseDenseExtractor{m: m, row: row, sel: res}}, nil
}

type denseDenseExtractor struct {
	m   *Dense
	row bool
	sel resolved
}

func (e *denseDenseExtractor) Fetch(i int, buf []float64) []float64 {
	m, sel := e.m, e.sel
	if e.row == m.rowMajor && sel.indices == nil {
		// Contiguous in storage: hand out the window directly.
		var base int
		if m.rowMajor {
			base = i * m.c
		} else {
			base = i * m.r
		}
		return m.data[base+sel.start : base+sel.start+sel.length]
	}

	buf = grow(buf, sel.length)
	var k int
	if e.row {
		for k = 0; k < sel.length; k++ {
			buf[k] = m.data[m.offset(i, sel.at(k))]
		}
	} else {
		for k = 0; k < sel.length; k++ {
			buf[k] = m.data[m.offset(sel.at(k), i)]
		}
	}

	return buf
}

type denseSparseExtractor struct {
	inner denseDenseExtractor
}

func (e *denseSparseExtractor) Fetch(i int, vbuf []float64, ibuf []int) SparseRange {
	sel := e.inner.sel
	vals := e.inner.Fetch(i, vbuf)
	ibuf = grow(ibuf, sel.length)
	for k := 0; k < sel.length; k++ {
		ibuf[k] = sel.at(k)
	}

	return SparseRange{Number: sel.length, Value: vals, Index: ibuf}
}
