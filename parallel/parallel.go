// SPDX-License-Identifier: MIT

package parallel

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Range is one contiguous slice [Start, Start+Length) of the unit axis,
// owned by worker Thread.
type Range struct {
	Thread int
	Start  int
	Length int
}

// Worker processes the units [start, start+length) as worker thread.
type Worker func(thread, start, length int) error

// Partition splits [0, units) into at most threads contiguous ranges.
//
// Implementation:
//   - Stage 1: clamp threads to >= 1; zero or negative units yield no ranges.
//   - Stage 2: per-worker size is ceil(units/threads); the last range takes the
//     remainder, so the worker count is ceil(units/perWorker).
//
// Complexity: O(threads).
func Partition(units, threads int) []Range {
	if units <= 0 {
		return nil
	}
	if threads < 1 {
		threads = 1
	}

	per := units / threads
	if units%threads != 0 {
		per++
	}
	out := make([]Range, 0, (units+per-1)/per)
	for start, t := 0, 0; start < units; start, t = start+per, t+1 {
		out = append(out, Range{Thread: t, Start: start, Length: min(per, units-start)})
	}

	return out
}

// Parallelize runs fn once per range of Partition(units, threads).
//
// Behavior highlights:
//   - A single range runs inline on the caller's goroutine.
//   - Otherwise every range gets its own goroutine; all are joined before
//     returning, and the first non-nil worker error is returned.
//   - A panicking worker is converted into an error rather than crashing the
//     process from a goroutine the caller cannot recover.
func Parallelize(fn Worker, units, threads int) error {
	ranges := Partition(units, threads)
	switch len(ranges) {
	case 0:
		return nil
	case 1:
		r := ranges[0]
		return fn(r.Thread, r.Start, r.Length)
	}

	var g errgroup.Group
	for _, r := range ranges {
		r := r // per-iteration copy; go directive is 1.21 (pre-1.22 loop semantics)
		g.Go(func() (err error) {
			defer func() {
				if p := recover(); p != nil {
					err = fmt.Errorf("parallel: worker %d [%d,%d) panicked: %v", r.Thread, r.Start, r.Start+r.Length, p)
				}
			}()
			return fn(r.Thread, r.Start, r.Length)
		})
	}

	return g.Wait()
}
