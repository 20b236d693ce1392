// SPDX-License-Identifier: MIT

package aggregate

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/libscran/scran-aggregate/matrix"
	"github.com/libscran/scran-aggregate/parallel"
)

// CellBuffers are caller-owned outputs of AcrossCellsInto.
// Sums[g] and Detected[g] hold one entry per row; either slice may be empty
// to skip that statistic. When both are non-empty they must have equal length.
type CellBuffers struct {
	Sums     [][]float64
	Detected [][]int
}

// CellResults are the outputs allocated by AcrossCells.
// A skipped statistic is an empty (non-nil) slice.
type CellResults struct {
	Sums     [][]float64
	Detected [][]int
}

// AcrossCells computes, for every row r and group g in [0, max(groups)+1),
//
//	Sums[g][r]     = sum of m[r][c] over columns c with groups[c] == g
//	Detected[g][r] = number of such columns with m[r][c] > 0
//
// WithComputeSums(false) / WithComputeDetected(false) skip a statistic.
// Errors: see AcrossCellsInto; additionally ErrInvalidGroup for a negative group.
func AcrossCells(m matrix.Matrix, groups []int, opts ...Option) (*CellResults, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("AcrossCells: %w", err)
	}
	if len(groups) != m.Cols() {
		return nil, fmt.Errorf("AcrossCells: %d groups for %d columns: %w", len(groups), m.Cols(), ErrLengthMismatch)
	}
	ngroups := 0
	for c, g := range groups {
		if g < 0 {
			return nil, fmt.Errorf("AcrossCells: column %d has group %d: %w", c, g, ErrInvalidGroup)
		}
		ngroups = max(ngroups, g+1)
	}

	o := gatherOptions(opts...)
	res := &CellResults{Sums: [][]float64{}, Detected: [][]int{}}
	if o.computeSums {
		res.Sums = make([][]float64, ngroups)
		for g := range res.Sums {
			res.Sums[g] = make([]float64, m.Rows())
		}
	}
	if o.computeDetected {
		res.Detected = make([][]int, ngroups)
		for g := range res.Detected {
			res.Detected[g] = make([]int, m.Rows())
		}
	}

	if err := AcrossCellsInto(m, groups, CellBuffers{Sums: res.Sums, Detected: res.Detected}, opts...); err != nil {
		return nil, err
	}

	return res, nil
}

// AcrossCellsInto is AcrossCells writing into caller buffers.
// The number of groups is the buffer count.
//
// Errors:
//   - matrix.ErrNilMatrix for a nil matrix.
//   - ErrLengthMismatch if len(groups) != m.Cols().
//   - ErrBufferCount if Sums and Detected are both non-empty with different lengths.
//   - ErrInvalidGroup for a group outside [0, buffer count).
//   - ErrBufferLength for a buffer whose length is not m.Rows().
func AcrossCellsInto(m matrix.Matrix, groups []int, buf CellBuffers, opts ...Option) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return fmt.Errorf("AcrossCellsInto: %w", err)
	}
	if len(groups) != m.Cols() {
		return fmt.Errorf("AcrossCellsInto: %d groups for %d columns: %w", len(groups), m.Cols(), ErrLengthMismatch)
	}

	wantSums, wantDetected := len(buf.Sums) > 0, len(buf.Detected) > 0
	if !wantSums && !wantDetected {
		return nil
	}
	if wantSums && wantDetected && len(buf.Sums) != len(buf.Detected) {
		return fmt.Errorf("AcrossCellsInto: %d sum buffers, %d detected buffers: %w", len(buf.Sums), len(buf.Detected), ErrBufferCount)
	}
	ngroups := max(len(buf.Sums), len(buf.Detected))
	for c, g := range groups {
		if g < 0 || g >= ngroups {
			return fmt.Errorf("AcrossCellsInto: column %d has group %d, buffers for %d: %w", c, g, ngroups, ErrInvalidGroup)
		}
	}
	for g, s := range buf.Sums {
		if len(s) != m.Rows() {
			return fmt.Errorf("AcrossCellsInto: sum buffer %d has length %d, want %d: %w", g, len(s), m.Rows(), ErrBufferLength)
		}
	}
	for g, d := range buf.Detected {
		if len(d) != m.Rows() {
			return fmt.Errorf("AcrossCellsInto: detected buffer %d has length %d, want %d: %w", g, len(d), m.Rows(), ErrBufferLength)
		}
	}

	o := gatherOptions(opts...)
	st := chooseStrategy(m)
	o.logger.Debug("aggregating across cells",
		zap.Stringer("strategy", st),
		zap.Int("rows", m.Rows()),
		zap.Int("cols", m.Cols()),
		zap.Int("groups", ngroups),
		zap.Bool("sums", wantSums),
		zap.Bool("detected", wantDetected),
		zap.Int("threads", o.numThreads),
	)

	k := cellKernel{m: m, groups: groups, ngroups: ngroups, buf: buf, st: st}
	worker := k.byColumn
	if st.byRow() {
		worker = k.byRow
	}
	if err := parallel.Parallelize(worker, m.Rows(), o.numThreads); err != nil {
		return fmt.Errorf("AcrossCellsInto: %w", err)
	}

	return nil
}

// cellKernel carries the validated inputs of one AcrossCellsInto call.
// Both workers split the row axis.
type cellKernel struct {
	m       matrix.Matrix
	groups  []int
	ngroups int
	buf     CellBuffers
	st      strategy
}

// byRow owns rows [start, start+length) outright: each row is reduced into a
// scratch vector of length ngroups, then written to every group's buffer.
func (k *cellKernel) byRow(_, start, length int) error {
	var sums []float64
	var detected []int
	if len(k.buf.Sums) > 0 {
		sums = make([]float64, k.ngroups)
	}
	if len(k.buf.Detected) > 0 {
		detected = make([]int, k.ngroups)
	}

	ncols := k.m.Cols()
	if k.st.sparse() {
		ext, err := k.m.SparseExtractor(true, matrix.Full())
		if err != nil {
			return err
		}
		vbuf, ibuf := make([]float64, ncols), make([]int, ncols)
		for r := start; r < start+length; r++ {
			clear(sums)
			clear(detected)
			rng := ext.Fetch(r, vbuf, ibuf)
			for x := 0; x < rng.Number; x++ {
				k.accumulate(sums, detected, k.groups[rng.Index[x]], rng.Value[x])
			}
			k.store(r, sums, detected)
		}

		return nil
	}

	ext, err := k.m.DenseExtractor(true, matrix.Full())
	if err != nil {
		return err
	}
	vbuf := make([]float64, ncols)
	for r := start; r < start+length; r++ {
		clear(sums)
		clear(detected)
		for c, v := range ext.Fetch(r, vbuf) {
			k.accumulate(sums, detected, k.groups[c], v)
		}
		k.store(r, sums, detected)
	}

	return nil
}

func (k *cellKernel) accumulate(sums []float64, detected []int, g int, v float64) {
	if sums != nil {
		sums[g] += v
	}
	if detected != nil && v > 0 {
		detected[g]++
	}
}

func (k *cellKernel) store(r int, sums []float64, detected []int) {
	for g, s := range sums {
		k.buf.Sums[g][r] = s
	}
	for g, d := range detected {
		k.buf.Detected[g][r] = d
	}
}

// byColumn owns the row window [start, start+length) of every group's buffer.
// It walks all columns in order, accumulating into worker-private windows
// keyed by the column's group, and transfers them once at the end.
func (k *cellKernel) byColumn(_, start, length int) error {
	sums := newLocalBuffers(k.buf.Sums, start, length)
	detected := newLocalBuffers(k.buf.Detected, start, length)
	sel := matrix.Block(start, length)

	if k.st.sparse() {
		ext, err := k.m.SparseExtractor(false, sel)
		if err != nil {
			return err
		}
		vbuf, ibuf := make([]float64, length), make([]int, length)
		for c, g := range k.groups {
			rng := ext.Fetch(c, vbuf, ibuf)
			for x := 0; x < rng.Number; x++ {
				v, off := rng.Value[x], rng.Index[x]-start
				if sums != nil {
					sums[g].data[off] += v
				}
				if detected != nil && v > 0 {
					detected[g].data[off]++
				}
			}
		}
	} else {
		ext, err := k.m.DenseExtractor(false, sel)
		if err != nil {
			return err
		}
		vbuf := make([]float64, length)
		for c, g := range k.groups {
			for off, v := range ext.Fetch(c, vbuf) {
				if sums != nil {
					sums[g].data[off] += v
				}
				if detected != nil && v > 0 {
					detected[g].data[off]++
				}
			}
		}
	}

	transferAll(sums)
	transferAll(detected)

	return nil
}
