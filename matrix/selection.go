// SPDX-License-Identifier: MIT

// Package matrix - Selection of the non-target dimension.
//
// Purpose:
//   - Describe which part of the non-target dimension an extractor returns.
//   - Keep the three shapes (full, contiguous block, sorted subset) behind one
//     value type so extractors resolve them once, at construction time.

package matrix

import "fmt"

type selectionKind uint8

const (
	selectFull selectionKind = iota
	selectBlock
	selectIndexed
)

// Selection restricts the non-target dimension of an extractor.
// The zero value selects the full extent.
type Selection struct {
	kind    selectionKind
	start   int
	length  int
	indices []int
}

// Full selects the whole non-target dimension.
func Full() Selection { return Selection{kind: selectFull} }

// Block selects the contiguous range [start, start+length).
func Block(start, length int) Selection {
	return Selection{kind: selectBlock, start: start, length: length}
}

// Indexed selects an explicit subset. indices must be strictly increasing;
// the slice is retained, not copied.
func Indexed(indices []int) Selection {
	return Selection{kind: selectIndexed, indices: indices}
}

// Len returns the number of selected elements for a dimension of size extent.
// Complexity: O(1).
func (s Selection) Len(extent int) int {
	switch s.kind {
	case selectBlock:
		return s.length
	case selectIndexed:
		return len(s.indices)
	default:
		return extent
	}
}

// String implements fmt.Stringer for diagnostics.
func (s Selection) String() string {
	switch s.kind {
	case selectBlock:
		return fmt.Sprintf("Block(%d,%d)", s.start, s.length)
	case selectIndexed:
		return fmt.Sprintf("Indexed(n=%d)", len(s.indices))
	default:
		return "Full()"
	}
}

// resolved is the flattened form used by extractor loops: element k of the
// selection is indices[k] when indices != nil, and start+k otherwise.
type resolved struct {
	start   int
	length  int
	indices []int
}

// at maps selection position k to the absolute non-target index.
func (r resolved) at(k int) int {
	if r.indices != nil {
		return r.indices[k]
	}
	return r.start + k
}

// resolve validates s against extent and flattens it.
func (s Selection) resolve(extent int) (resolved, error) {
	if err := ValidateSelection(s, extent); err != nil {
		return resolved{}, err
	}
	switch s.kind {
	case selectBlock:
		return resolved{start: s.start, length: s.length}, nil
	case selectIndexed:
		return resolved{length: len(s.indices), indices: s.indices}, nil
	default:
		return resolved{start: 0, length: extent}, nil
	}
}
