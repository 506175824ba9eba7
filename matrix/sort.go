// SPDX-License-Identifier: MIT

package matrix

import (
	"cmp"
	"slices"
)

const opSortRows = "SortRows"

// SortRows reorders whole rows by the values in column col, ascending unless
// descending is set. The sort is stable: rows with equal keys keep their
// relative order. NaN keys sort first when ascending and last when descending.
//
// Errors:
//   - ErrNilMatrix / ErrReleased; ErrOutOfRange for an invalid column.
//
// Complexity:
//   - Time O(r log r + r*c), Space O(r*c) pooled.
func (m *Matrix) SortRows(col int, descending bool) error {
	if err := ValidateUsable(m); err != nil {
		return matrixErrorf(opSortRows, err)
	}
	if col < 0 || col >= m.cols {
		return denseErrorf(opSortRows, 0, col, ErrOutOfRange)
	}

	order := make([]int, m.rows)
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(i, j int) int {
		c := cmp.Compare(m.data[m.offset(i, col)], m.data[m.offset(j, col)])
		if descending {
			return -c
		}
		return c
	})

	buf := getScratch(len(m.data))
	defer putScratch(buf)
	copy(*buf, m.data)
	for dst, src := range order {
		copy(m.data[dst*m.cols:(dst+1)*m.cols], (*buf)[src*m.cols:(src+1)*m.cols])
	}

	return nil
}
