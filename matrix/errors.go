// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Constructors and At return these sentinels (possibly wrapped with
// coordinates) and tests check them via errors.Is. Extractor Fetch calls do not
// validate their target index; out-of-range targets are programmer errors.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Wrap with fmt.Errorf("ctx: %w", ErrX) when adding
// context; callers still match with errors.Is.

var (
	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrInvalidDimensions indicates that requested matrix dimensions are negative.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates that a backing buffer does not match the
	// requested shape (e.g., len(data) != rows*cols).
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrInvalidSelection signals a Block outside the extent or an Indexed
	// subset that is not strictly increasing.
	ErrInvalidSelection = errors.New("matrix: invalid selection")

	// ErrMalformedSparse signals inconsistent compressed sparse buffers
	// (pointer array, index ordering or index bounds).
	ErrMalformedSparse = errors.New("matrix: malformed compressed sparse buffers")
)
