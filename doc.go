// Package scranaggregate computes group-level summaries of large
// feature-by-observation matrices (genes by cells), together with the label
// bookkeeping needed to define the groups.
//
// What is in the box?
//
//	• Factor combination: one or more label arrays → dense group indices,
//	  with the sorted table of realised (or all possible) combinations
//	• Per-group aggregation: sums and detected (> 0) counts for every feature
//	• Gene-set aggregation: weighted per-observation sums or means
//	• Dense and compressed sparse matrices, row- or column-preferred
//
// Results do not depend on the storage flavour or the number of threads: every
// output element is accumulated by one worker, in one fixed order.
//
// Everything is organised under four packages:
//
//	factor/    — CleanFactor, CombineFactors, CombineFactorsUnused
//	aggregate/ — AcrossCells, AcrossGenes and their *Into variants
//	matrix/    — Matrix, Dense, CompressedSparse, extractors, conversions
//	parallel/  — Partition and Parallelize, the worker dispatcher
//
// plus the scranagg command (cmd/scranagg) that runs the kernels over CSV
// inputs and prints YAML.
//
//	go get github.com/libscran/scran-aggregate/aggregate
package scranaggregate
