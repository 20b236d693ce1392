// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep constructors and extractors minimal by delegating nil/shape/selection
//    checks here.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil, including typed nil pointers of the
// package's own implementations.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	switch v := m.(type) {
	case nil:
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	case *Dense:
		if v == nil {
			return validatorErrorf("ValidateNotNil", ErrNilMatrix)
		}
	case *CompressedSparse:
		if v == nil {
			return validatorErrorf("ValidateNotNil", ErrNilMatrix)
		}
	}

	return nil
}

// ValidateSelection checks that sel fits a dimension of size extent.
//
// Rules:
//   - Full: always valid.
//   - Block: 0 <= start, 0 <= length, start+length <= extent.
//   - Indexed: every index in [0, extent) and strictly increasing.
//
// Errors: ErrInvalidSelection wrapped with the offending values.
// Complexity: O(1) for Full/Block, O(len(indices)) for Indexed.
func ValidateSelection(sel Selection, extent int) error {
	switch sel.kind {
	case selectBlock:
		if sel.start < 0 || sel.length < 0 || sel.start > extent-sel.length {
			return validatorErrorf(
				fmt.Sprintf("ValidateSelection: block [%d,%d) outside [0,%d)", sel.start, sel.start+sel.length, extent),
				ErrInvalidSelection)
		}
	case selectIndexed:
		prev := -1
		for k, idx := range sel.indices {
			if idx < 0 || idx >= extent {
				return validatorErrorf(
					fmt.Sprintf("ValidateSelection: index %d at position %d outside [0,%d)", idx, k, extent),
					ErrInvalidSelection)
			}
			if idx <= prev {
				return validatorErrorf(
					fmt.Sprintf("ValidateSelection: indices not strictly increasing at position %d", k),
					ErrInvalidSelection)
			}
			prev = idx
		}
	}

	return nil
}

// validateShape rejects negative dimensions and buffers of the wrong length.
func validateShape(tag string, rows, cols, n int) error {
	if rows < 0 || cols < 0 {
		return validatorErrorf(tag, ErrInvalidDimensions)
	}
	if n != rows*cols {
		return validatorErrorf(fmt.Sprintf("%s: want %d values, got %d", tag, rows*cols, n), ErrDimensionMismatch)
	}

	return nil
}

// grow returns buf resliced to n, reallocating only when its capacity is short.
func grow[T any](buf []T, n int) []T {
	if cap(buf) < n {
		return make([]T, n)
	}
	return buf[:n]
}
