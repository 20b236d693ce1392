// SPDX-License-Identifier: MIT
// Package aggregate: sentinel error set.
// All errors are returned before any output buffer is touched.

package aggregate

import "errors"

var (
	// ErrLengthMismatch indicates that the group array does not have one entry
	// per column, or that a gene set's weights do not parallel its indices.
	ErrLengthMismatch = errors.New("aggregate: length mismatch")

	// ErrInvalidGroup indicates a group index that is negative or has no buffer.
	ErrInvalidGroup = errors.New("aggregate: invalid group index")

	// ErrBufferCount indicates a wrong number of output buffers.
	ErrBufferCount = errors.New("aggregate: wrong number of buffers")

	// ErrBufferLength indicates an output buffer of the wrong length.
	ErrBufferLength = errors.New("aggregate: wrong buffer length")

	// ErrOutOfRange indicates a gene-set feature index outside [0, Rows()).
	ErrOutOfRange = errors.New("aggregate: gene index out of range")
)
