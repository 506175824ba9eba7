// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/lvlinalg/internal/rng"
)

const opSample = "Sample"

// Sample draws n rows of m into a new n×Cols() matrix and returns the source
// row index of every drawn row (idx[i] is the row copied into result row i).
//
// With replace == true each draw is independent and rows may repeat.
// With replace == false a partial Fisher–Yates shuffle over 0..Rows()-1 picks
// n distinct rows, so no retry loop or "already drawn" scan is needed.
//
// Options:
//   - WithRand / WithSeed choose the random stream (default: process-global).
//
// Errors:
//   - ErrNilMatrix / ErrReleased.
//   - ErrInvalidDimensions when n <= 0.
//   - ErrSampleSize when replace == false and n > Rows().
//
// Complexity:
//   - Time O(n*c + r) without replacement, O(n*c) with; Space O(n*c + r).
func (m *Matrix) Sample(n int, replace bool, opts ...Option) (*Matrix, []int, error) {
	if err := ValidateUsable(m); err != nil {
		return nil, nil, matrixErrorf(opSample, err)
	}
	if n <= 0 {
		return nil, nil, matrixErrorf(opSample, ErrInvalidDimensions)
	}
	if !replace && n > m.rows {
		return nil, nil, matrixErrorf(opSample,
			errors.Wrapf(ErrSampleSize, "%d samples from %d rows", n, m.rows))
	}
	o := gatherOptions(opts...)

	idx := make([]int, n)
	if replace {
		for i := range idx {
			idx[i] = rng.Intn(o.rnd, m.rows)
		}
	} else {
		perm := make([]int, m.rows)
		for i := range perm {
			perm[i] = i
		}
		// Partial Fisher–Yates: after step i, perm[:i+1] is a uniform draw.
		for i := 0; i < n; i++ {
			j := i + rng.Intn(o.rnd, m.rows-i)
			perm[i], perm[j] = perm[j], perm[i]
		}
		copy(idx, perm[:n])
	}

	res, err := New(n, m.cols)
	if err != nil {
		return nil, nil, matrixErrorf(opSample, err)
	}
	for i, src := range idx {
		base := m.offset(src, 0)
		copy(res.data[i*m.cols:(i+1)*m.cols], m.data[base:base+m.cols])
	}

	return res, idx, nil
}
