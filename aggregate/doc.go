// SPDX-License-Identifier: MIT

// Package aggregate computes group-level summaries of a feature-by-observation
// matrix.
//
// Two kernels are provided:
//
//   - AcrossCells sums each feature's values within every group of
//     observations and counts the observations where the value is strictly
//     positive ("detected").
//   - AcrossGenes computes, for every observation, a weighted sum (or weighted
//     mean) of the values of each gene set.
//
// Both kernels pick one of four traversal strategies per call from the
// matrix's traits (row- or column-preferred, dense or sparse) and split the
// work across WithNumThreads workers. Each output element is accumulated by
// exactly one worker in a fixed order, so results are bit-identical whatever
// the strategy or thread count.
//
// The *Into variants write into caller-owned buffers; prior contents are
// ignored. Inputs are validated in full before any buffer is written.
package aggregate
