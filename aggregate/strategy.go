// SPDX-License-Identifier: MIT

package aggregate

import "github.com/libscran/scran-aggregate/matrix"

// strategy is the traversal chosen once per call from the matrix traits.
type strategy uint8

const (
	denseByRow strategy = iota
	sparseByRow
	denseByColumn
	sparseByColumn
)

func chooseStrategy(m matrix.Matrix) strategy {
	switch {
	case m.PreferRows() && m.Sparse():
		return sparseByRow
	case m.PreferRows():
		return denseByRow
	case m.Sparse():
		return sparseByColumn
	default:
		return denseByColumn
	}
}

func (s strategy) byRow() bool  { return s == denseByRow || s == sparseByRow }
func (s strategy) sparse() bool { return s == sparseByRow || s == sparseByColumn }

func (s strategy) String() string {
	switch s {
	case denseByRow:
		return "dense-by-row"
	case sparseByRow:
		return "sparse-by-row"
	case denseByColumn:
		return "dense-by-column"
	default:
		return "sparse-by-column"
	}
}
