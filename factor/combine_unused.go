// SPDX-License-Identifier: MIT

package factor

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// CombineFactorsUnused encodes each observation's integer codes in mixed radix:
//
//	combined[i] = ((l0[i]*L1 + l1[i])*L2 + l2[i]) ...
//
// and returns a table of all L0*L1*...*L(K-1) combinations in that order,
// including those never observed (their Counts entry is 0).
//
// Behavior:
//   - K == 0: every observation gets 0 and the table is empty.
//   - K == 1: combined is a copy of the codes; the table is [0, L0).
//
// Errors:
//   - ErrLengthMismatch if a factor's length differs from n.
//   - ErrOutOfRange for a negative level count or a code outside [0, Levels).
//   - ErrOverflow if the product of level counts exceeds int, or a level does
//     not fit T.
//
// Complexity: O(K n + K L) with L the product of level counts.
func CombineFactorsUnused[T constraints.Integer](n int, factors []Levelled[T]) (*Combinations[T], []int, error) {
	total := 1
	for k, f := range factors {
		if len(f.Labels) != n {
			return nil, nil, fmt.Errorf("CombineFactorsUnused: factor %d has %d labels, want %d: %w", k, len(f.Labels), n, ErrLengthMismatch)
		}
		if f.Levels < 0 {
			return nil, nil, fmt.Errorf("CombineFactorsUnused: factor %d has %d levels: %w", k, f.Levels, ErrOutOfRange)
		}
		if f.Levels > 0 && int(T(f.Levels-1)) != f.Levels-1 {
			return nil, nil, fmt.Errorf("CombineFactorsUnused: factor %d level %d does not fit the label type: %w", k, f.Levels-1, ErrOverflow)
		}
		for i, l := range f.Labels {
			if l < 0 || uint64(l) >= uint64(f.Levels) {
				return nil, nil, fmt.Errorf("CombineFactorsUnused: factor %d observation %d has code %d, levels %d: %w", k, i, l, f.Levels, ErrOutOfRange)
			}
		}
		var ok bool
		if total, ok = mulInt(total, f.Levels); !ok {
			return nil, nil, fmt.Errorf("CombineFactorsUnused: product of level counts up to factor %d: %w", k, ErrOverflow)
		}
	}

	combined := make([]int, n)
	if len(factors) == 0 {
		return &Combinations[T]{Factors: [][]T{}, Counts: []int{}}, combined, nil
	}

	// Codes are validated and total fits int, so no partial sum can overflow.
	for _, f := range factors {
		for i, l := range f.Labels {
			combined[i] = combined[i]*f.Levels + int(l)
		}
	}

	// Factor k cycles through its levels, each held for stride = L(k+1)*...*L(K-1).
	out := &Combinations[T]{Factors: make([][]T, len(factors)), Counts: tally(combined, total)}
	stride := total
	for k, f := range factors {
		col := make([]T, total)
		if f.Levels > 0 {
			stride /= f.Levels
			for m := range col {
				col[m] = T((m / stride) % f.Levels)
			}
		}
		out.Factors[k] = col
	}

	return out, combined, nil
}
