// SPDX-License-Identifier: MIT

// Package matrix: the read-only Matrix surface and extractor contracts.
// This file intentionally contains ONLY interfaces and plain value types;
// implementations live in impl_dense.go and impl_sparse.go.
package matrix

// Matrix is a read-only two-dimensional grid of float64 values.
//
// Orientation vocabulary used by extractors:
//   - the "target" dimension is the one iterated by Fetch (rows when row==true);
//   - the "non-target" dimension is the one returned by each Fetch and restricted
//     by a Selection.
//
// Complexity notes: shape and trait methods are O(1); extractor construction is
// O(1) apart from Selection validation (O(len(indices)) for Indexed).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// PreferRows reports whether row-wise extraction is the efficient access
	// pattern for the underlying storage.
	PreferRows() bool

	// Sparse reports whether the storage only materialises structural non-zeros.
	Sparse() bool

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// DenseExtractor returns an extractor yielding dense slices of the selected
	// non-target elements for each target element.
	DenseExtractor(row bool, sel Selection) (DenseExtractor, error)

	// SparseExtractor returns an extractor yielding (index, value) pairs of the
	// selected non-target elements for each target element.
	SparseExtractor(row bool, sel Selection) (SparseExtractor, error)
}

// DenseExtractor fetches the selected values of one target element at a time.
type DenseExtractor interface {
	// Fetch returns the selected values of target element i, in selection order.
	// buf is used as scratch when a copy is needed and is grown if too small;
	// the result may alias matrix storage and must not be modified.
	Fetch(i int, buf []float64) []float64
}

// SparseExtractor fetches the selected structural non-zeros of one target
// element at a time.
type SparseExtractor interface {
	// Fetch returns the selected entries of target element i. vbuf and ibuf are
	// scratch buffers, grown if too small; the result may alias matrix storage.
	Fetch(i int, vbuf []float64, ibuf []int) SparseRange
}

// SparseRange holds Number parallel (Index, Value) entries of one target element.
// Index values are absolute positions in the non-target dimension, ascending.
type SparseRange struct {
	Number int
	Value  []float64
	Index  []int
}
