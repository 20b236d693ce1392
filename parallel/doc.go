// SPDX-License-Identifier: MIT

// Package parallel splits a count of work units into contiguous ranges and runs
// one worker per range, each on its own goroutine, joining all of them before
// returning.
//
// The partition is deterministic for a given (units, threads) pair, so callers
// that give each range exclusive ownership of an output region get results that
// do not depend on scheduling. There is no cancellation and no timeout: a call
// runs every worker to completion.
package parallel
