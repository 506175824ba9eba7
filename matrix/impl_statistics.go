// SPDX-License-Identifier: MIT

// Package matrix - summary statistics.
//
// Exposed API:
//   - Sum, Mean, Min, Max over all elements.
//   - ColumnMeans: per-column means as a Vector.
//
// Determinism & Performance:
//   - Flat row-major traversal; float32 accumulation (not widened).
//   - ColumnMeans walks rows outer, columns inner, so reads stay contiguous.
package matrix

import "github.com/katalvlaran/lvlinalg/vector"

// Operation name constants for unified error wrapping.
const (
	opSum         = "Sum"
	opMean        = "Mean"
	opMin         = "Min"
	opMax         = "Max"
	opColumnMeans = "ColumnMeans"
)

// Sum returns the sum of all elements.
// Complexity: O(r*c).
func (m *Matrix) Sum() (float32, error) {
	if err := ValidateUsable(m); err != nil {
		return 0, matrixErrorf(opSum, err)
	}
	var acc float32
	for _, x := range m.data {
		acc += x
	}

	return acc, nil
}

// Mean returns Sum() divided by Rows()*Cols().
func (m *Matrix) Mean() (float32, error) {
	s, err := m.Sum()
	if err != nil {
		return 0, matrixErrorf(opMean, err)
	}

	return s / float32(len(m.data)), nil
}

// Min returns the smallest element.
func (m *Matrix) Min() (float32, error) {
	if err := ValidateUsable(m); err != nil {
		return 0, matrixErrorf(opMin, err)
	}
	best := m.data[0]
	for _, x := range m.data[1:] {
		if x < best {
			best = x
		}
	}

	return best, nil
}

// Max returns the largest element.
func (m *Matrix) Max() (float32, error) {
	if err := ValidateUsable(m); err != nil {
		return 0, matrixErrorf(opMax, err)
	}
	best := m.data[0]
	for _, x := range m.data[1:] {
		if x > best {
			best = x
		}
	}

	return best, nil
}

// ColumnMeans returns a vector of length Cols() whose entry c is the mean of column c.
//
// Implementation:
//   - Stage 1: accumulate every row into the result (contiguous reads).
//   - Stage 2: divide by Rows().
//
// Complexity:
//   - Time O(r*c), Space O(c).
func (m *Matrix) ColumnMeans() (*vector.Vector, error) {
	if err := ValidateUsable(m); err != nil {
		return nil, matrixErrorf(opColumnMeans, err)
	}
	res, err := vector.New(m.cols)
	if err != nil {
		return nil, matrixErrorf(opColumnMeans, err)
	}
	acc := res.RawData()
	var r, c, base int
	for r = 0; r < m.rows; r++ {
		base = r * m.cols
		for c = 0; c < m.cols; c++ {
			acc[c] += m.data[base+c]
		}
	}
	if err = res.DivScalar(float32(m.rows)); err != nil {
		return nil, matrixErrorf(opColumnMeans, err)
	}

	return res, nil
}
