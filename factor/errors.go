// SPDX-License-Identifier: MIT
// Package factor: sentinel error set.

package factor

import "errors"

var (
	// ErrLengthMismatch indicates that a label array does not hold exactly n labels.
	ErrLengthMismatch = errors.New("factor: label array length mismatch")

	// ErrOutOfRange indicates an integer code outside [0, Levels), or a negative
	// level count.
	ErrOutOfRange = errors.New("factor: label out of range")

	// ErrOverflow indicates that the number of possible combinations does not fit
	// the combined index type or the label type.
	ErrOverflow = errors.New("factor: combination count overflows")
)
