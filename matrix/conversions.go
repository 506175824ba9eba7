// SPDX-License-Identifier: MIT

// Package matrix provides converters between Matrix and gonum's float64
// mat.Dense, for callers that need routines outside this package's scope.
package matrix

import (
	"gonum.org/v1/gonum/mat"
)

const (
	opToGonum   = "ToGonum"
	opFromGonum = "FromGonum"
)

// ToGonum returns a float64 copy of m as a *mat.Dense.
// Returns nil if m is nil or released.
//
// Complexity: O(r*c).
func (m *Matrix) ToGonum() *mat.Dense {
	if ValidateUsable(m) != nil {
		return nil
	}
	buf := make([]float64, len(m.data))
	for i, x := range m.data {
		buf[i] = float64(x)
	}

	return mat.NewDense(m.rows, m.cols, buf)
}

// FromGonum copies any gonum matrix into a new Matrix, narrowing each element
// to float32.
//
// Errors:
//   - ErrNilMatrix for a nil src; ErrInvalidDimensions for an empty one.
func FromGonum(src mat.Matrix) (*Matrix, error) {
	if src == nil {
		return nil, matrixErrorf(opFromGonum, ErrNilMatrix)
	}
	rows, cols := src.Dims()
	res, err := New(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opFromGonum, err)
	}
	var r, c int
	for r = 0; r < rows; r++ {
		for c = 0; c < cols; c++ {
			res.data[res.offset(r, c)] = float32(src.At(r, c))
		}
	}

	return res, nil
}
