// SPDX-License-Identifier: MIT

// Package matrix provides the read-only feature-by-observation matrices consumed
// by the aggregation kernels, together with their extractors.
//
// The matrix package provides:
//
//   - Matrix, a minimal read-only surface: shape, preferred traversal orientation
//     (PreferRows), storage kind (Sparse) and extractor constructors.
//   - Dense, a flat buffer stored either row-major or column-major.
//   - CompressedSparse, a CSR (by-row) or CSC (by-column) buffer.
//   - Selection, which restricts an extractor to the full non-target dimension,
//     a contiguous block of it, or an explicit sorted subset of indices.
//   - ConvertToDense / ConvertToCompressedSparse to move between representations.
//
// Extractors are cheap to build and NOT safe for concurrent use: parallel
// workers build one extractor each. Slices returned by Fetch may alias the
// matrix storage and must be treated as read-only.
//
// Rows are features (genes) and columns are observations (cells) by convention,
// but nothing in this package depends on that reading.
package matrix
