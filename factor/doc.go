// SPDX-License-Identifier: MIT

// Package factor reduces per-observation categorical labels to dense group
// indices.
//
// Three entry points are provided:
//
//   - CleanFactor maps one label array onto [0, M), where M is the number of
//     distinct labels and index m is the m-th smallest label.
//   - CombineFactors does the same for the tuple of K label arrays, ordering
//     combinations lexicographically (array 0 first, then array 1, ...).
//   - CombineFactorsUnused treats each array as integer codes in [0, Levels)
//     and encodes the tuple in mixed radix, array 0 being the slowest digit.
//     Its table enumerates every combination, observed or not.
//
// When every possible combination is observed, CombineFactors and
// CombineFactorsUnused return the same indices and the same table.
package factor
