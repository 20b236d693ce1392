// SPDX-License-Identifier: MIT

package aggregate

import (
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/libscran/scran-aggregate/matrix"
	"github.com/libscran/scran-aggregate/parallel"
)

// GeneSet is a list of row indices with optional parallel weights.
// A nil Weights slice weights every member by 1. Repeated indices contribute
// once per occurrence.
type GeneSet struct {
	Indices []int
	Weights []float64
}

// GeneBuffers are caller-owned outputs of AcrossGenesInto: one vector of
// length Cols() per gene set.
type GeneBuffers struct {
	Sum [][]float64
}

// GeneResults are the outputs allocated by AcrossGenes.
type GeneResults struct {
	Sum [][]float64
}

// AcrossGenes computes, for every gene set s and column c,
//
//	Sum[s][c] = sum over k of Weights[k] * m[Indices[k]][c]
//
// With WithAverage(true) each Sum[s] is divided by the sum of the set's weights
// (its size when unweighted); an empty set then yields NaN.
// Errors: see AcrossGenesInto.
func AcrossGenes(m matrix.Matrix, sets []GeneSet, opts ...Option) (*GeneResults, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("AcrossGenes: %w", err)
	}
	res := &GeneResults{Sum: make([][]float64, len(sets))}
	for s := range res.Sum {
		res.Sum[s] = make([]float64, m.Cols())
	}
	if err := AcrossGenesInto(m, sets, GeneBuffers{Sum: res.Sum}, opts...); err != nil {
		return nil, err
	}

	return res, nil
}

// AcrossGenesInto is AcrossGenes writing into caller buffers.
//
// Errors (all reported before any buffer is written):
//   - matrix.ErrNilMatrix for a nil matrix.
//   - ErrBufferCount if len(buf.Sum) != len(sets).
//   - ErrBufferLength for a buffer whose length is not m.Cols().
//   - ErrLengthMismatch for non-nil weights not parallel to the indices.
//   - ErrOutOfRange for an index < 0 or >= m.Rows().
func AcrossGenesInto(m matrix.Matrix, sets []GeneSet, buf GeneBuffers, opts ...Option) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return fmt.Errorf("AcrossGenesInto: %w", err)
	}
	if len(buf.Sum) != len(sets) {
		return fmt.Errorf("AcrossGenesInto: %d buffers for %d gene sets: %w", len(buf.Sum), len(sets), ErrBufferCount)
	}
	for s, b := range buf.Sum {
		if len(b) != m.Cols() {
			return fmt.Errorf("AcrossGenesInto: buffer %d has length %d, want %d: %w", s, len(b), m.Cols(), ErrBufferLength)
		}
	}
	for s, set := range sets {
		if set.Weights != nil && len(set.Weights) != len(set.Indices) {
			return fmt.Errorf("AcrossGenesInto: gene set %d has %d weights for %d indices: %w", s, len(set.Weights), len(set.Indices), ErrLengthMismatch)
		}
		for _, idx := range set.Indices {
			if idx < 0 || idx >= m.Rows() {
				return fmt.Errorf("AcrossGenesInto: gene set %d index %d not in [0,%d): %w", s, idx, m.Rows(), ErrOutOfRange)
			}
		}
	}

	o := gatherOptions(opts...)
	st := chooseStrategy(m)
	k := newGeneKernel(m, sets, buf, st)
	o.logger.Debug("aggregating across genes",
		zap.Stringer("strategy", st),
		zap.Int("rows", m.Rows()),
		zap.Int("cols", m.Cols()),
		zap.Int("sets", len(sets)),
		zap.Int("subset", len(k.subset)),
		zap.Bool("average", o.average),
		zap.Int("threads", o.numThreads),
	)

	worker := k.byColumn
	if st.byRow() {
		worker = k.byRow
	}
	if err := parallel.Parallelize(worker, m.Cols(), o.numThreads); err != nil {
		return fmt.Errorf("AcrossGenesInto: %w", err)
	}

	if o.average {
		err := parallel.Parallelize(func(_, start, length int) error {
			for s := start; s < start+length; s++ {
				denom := setTotalWeight(sets[s])
				for c := range buf.Sum[s] {
					buf.Sum[s][c] /= denom
				}
			}
			return nil
		}, len(sets), o.numThreads)
		if err != nil {
			return fmt.Errorf("AcrossGenesInto: %w", err)
		}
	}

	return nil
}

func setTotalWeight(set GeneSet) float64 {
	if set.Weights == nil {
		return float64(len(set.Indices))
	}
	total := 0.0
	for _, w := range set.Weights {
		total += w
	}

	return total
}

// member is one (set, weight) reference to a subset row.
type member struct {
	set    int
	pos    int // position in the subset
	weight float64
}

// geneKernel carries the validated inputs of one AcrossGenesInto call.
// Both workers split the column axis.
//
// subset is the sorted union of every set's rows; byPosition[p] lists the
// references to subset[p] and bySet[s] lists set s's references ordered by
// position. Both orders visit each set's rows ascending, with repeats in
// their original order, so every strategy sums in the same order.
type geneKernel struct {
	m          matrix.Matrix
	buf        GeneBuffers
	st         strategy
	subset     []int
	byPosition [][]member
	bySet      [][]member
}

func newGeneKernel(m matrix.Matrix, sets []GeneSet, buf GeneBuffers, st strategy) *geneKernel {
	subset := []int{}
	for _, set := range sets {
		subset = append(subset, set.Indices...)
	}
	slices.Sort(subset)
	subset = slices.Compact(subset)

	k := &geneKernel{
		m:          m,
		buf:        buf,
		st:         st,
		subset:     subset,
		byPosition: make([][]member, len(subset)),
		bySet:      make([][]member, len(sets)),
	}
	for s, set := range sets {
		refs := make([]member, len(set.Indices))
		for i, idx := range set.Indices {
			pos, _ := slices.BinarySearch(subset, idx)
			w := 1.0
			if set.Weights != nil {
				w = set.Weights[i]
			}
			refs[i] = member{set: s, pos: pos, weight: w}
			k.byPosition[pos] = append(k.byPosition[pos], refs[i])
		}
		slices.SortStableFunc(refs, func(a, b member) int { return a.pos - b.pos })
		k.bySet[s] = refs
	}

	return k
}

// byRow owns columns [start, start+length): it streams every subset row
// restricted to that block and scatters value*weight into worker-private
// windows of each referencing set, transferring them once at the end.
func (k *geneKernel) byRow(_, start, length int) error {
	local := newLocalBuffers(k.buf.Sum, start, length)
	sel := matrix.Block(start, length)

	if k.st.sparse() {
		ext, err := k.m.SparseExtractor(true, sel)
		if err != nil {
			return err
		}
		vbuf, ibuf := make([]float64, length), make([]int, length)
		for p, row := range k.subset {
			rng := ext.Fetch(row, vbuf, ibuf)
			for _, ref := range k.byPosition[p] {
				out := local[ref.set].data
				for x := 0; x < rng.Number; x++ {
					out[rng.Index[x]-start] += float64(rng.Value[x] * ref.weight)
				}
			}
		}
	} else {
		ext, err := k.m.DenseExtractor(true, sel)
		if err != nil {
			return err
		}
		vbuf := make([]float64, length)
		for p, row := range k.subset {
			vals := ext.Fetch(row, vbuf)
			for _, ref := range k.byPosition[p] {
				out := local[ref.set].data
				for off, v := range vals {
					out[off] += float64(v * ref.weight)
				}
			}
		}
	}

	transferAll(local)

	return nil
}

// byColumn owns columns [start, start+length) and writes them directly: each
// column's subset rows are fetched once and reduced per set.
func (k *geneKernel) byColumn(_, start, length int) error {
	sel := matrix.Indexed(k.subset)
	vals := make([]float64, len(k.subset))

	var fetch func(c int) []float64
	if k.st.sparse() {
		ext, err := k.m.SparseExtractor(false, sel)
		if err != nil {
			return err
		}
		vbuf, ibuf := make([]float64, len(k.subset)), make([]int, len(k.subset))
		fetch = func(c int) []float64 {
			clear(vals)
			rng := ext.Fetch(c, vbuf, ibuf)
			p := 0
			for x := 0; x < rng.Number; x++ {
				for k.subset[p] != rng.Index[x] {
					p++
				}
				vals[p] = rng.Value[x]
			}
			return vals
		}
	} else {
		ext, err := k.m.DenseExtractor(false, sel)
		if err != nil {
			return err
		}
		fetch = func(c int) []float64 { return ext.Fetch(c, vals) }
	}

	for c := start; c < start+length; c++ {
		col := fetch(c)
		for s, refs := range k.bySet {
			sum := 0.0
			for _, ref := range refs {
				sum += float64(col[ref.pos] * ref.weight)
			}
			k.buf.Sum[s][c] = sum
		}
	}

	return nil
}
