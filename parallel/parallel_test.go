// SPDX-License-Identifier: MIT

package parallel_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/libscran/scran-aggregate/parallel"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestPartition_CoversUnitsOnce(t *testing.T) {
	cases := []struct{ units, threads, wantRanges int }{
		{0, 4, 0},
		{1, 4, 1},
		{10, 1, 1},
		{10, 3, 3},  // 4,4,2
		{10, 4, 4},  // 3,3,3,1
		{9, 4, 3},   // 3,3,3
		{3, 8, 3},   // 1,1,1
		{100, 0, 1}, // threads clamped
	}
	for _, tc := range cases {
		ranges := parallel.Partition(tc.units, tc.threads)
		require.Len(t, ranges, tc.wantRanges, "units=%d threads=%d", tc.units, tc.threads)

		next := 0
		for k, r := range ranges {
			require.Equal(t, k, r.Thread)
			require.Equal(t, next, r.Start, "ranges must be contiguous")
			require.Positive(t, r.Length)
			next += r.Length
		}
		require.Equal(t, tc.units, next)
	}
}

func TestParallelize_VisitsEveryUnit(t *testing.T) {
	for _, threads := range []int{1, 2, 3, 7} {
		const units = 53
		seen := make([]int, units)
		threadsSeen := make(map[int]bool)
		var mu sync.Mutex

		err := parallel.Parallelize(func(thread, start, length int) error {
			for i := start; i < start+length; i++ {
				seen[i]++ // disjoint ranges: no lock needed
			}
			mu.Lock()
			threadsSeen[thread] = true
			mu.Unlock()
			return nil
		}, units, threads)
		require.NoError(t, err)

		for i, n := range seen {
			require.Equal(t, 1, n, "unit %d with %d threads", i, threads)
		}
		require.Len(t, threadsSeen, len(parallel.Partition(units, threads)))
	}
}

func TestParallelize_ZeroUnits(t *testing.T) {
	called := false
	err := parallel.Parallelize(func(int, int, int) error {
		called = true
		return nil
	}, 0, 4)
	require.NoError(t, err)
	require.False(t, called)
}

func TestParallelize_PropagatesError(t *testing.T) {
	boom := errors.New("boom")
	err := parallel.Parallelize(func(thread, _, _ int) error {
		if thread == 1 {
			return boom
		}
		return nil
	}, 10, 3)
	require.ErrorIs(t, err, boom)

	err = parallel.Parallelize(func(int, int, int) error { return boom }, 10, 1)
	require.ErrorIs(t, err, boom)
}

func TestParallelize_RecoversPanics(t *testing.T) {
	err := parallel.Parallelize(func(thread, _, _ int) error {
		if thread == 2 {
			panic("bad worker")
		}
		return nil
	}, 9, 3)
	require.Error(t, err)
	require.Contains(t, err.Error(), "panicked")
}
