// SPDX-License-Identifier: MIT

// Package matrix - transposition.
//
// Three shapes of the same operation:
//   - Transpose: allocate a new cols×rows matrix.
//   - TransposeInto: reuse a caller-owned buffer of the same element count.
//   - TransposeInPlace: reuse m's own buffer; dimensions swap on every call,
//     so two calls restore the original orientation and values.
package matrix

import "github.com/cockroachdb/errors"

const (
	opTranspose        = "Transpose"
	opTransposeInto    = "TransposeInto"
	opTransposeInPlace = "TransposeInPlace"
)

// transposeData writes srcᵀ into dst. src is rows×cols row-major; dst
// receives cols×rows. dst and src must not overlap.
func transposeData(dst, src []float32, rows, cols int) {
	var r, c, base int
	for r = 0; r < rows; r++ {
		base = r * cols
		for c = 0; c < cols; c++ {
			dst[c*rows+r] = src[base+c]
		}
	}
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the result.
func (m *Matrix) Transpose() (*Matrix, error) {
	if err := ValidateUsable(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	res, err := New(m.cols, m.rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	transposeData(res.data, m.data, m.rows, m.cols)

	return res, nil
}

// TransposeInto stores mᵀ into dst, reusing dst's buffer. dst must hold the
// same number of elements as m; its dimensions become m.Cols()×m.Rows().
// dst == m is allowed and behaves like TransposeInPlace.
//
// Errors:
//   - ErrNilMatrix / ErrReleased for either operand.
//   - ErrDimensionMismatch when element counts differ.
func (m *Matrix) TransposeInto(dst *Matrix) error {
	if err := ValidateUsable(m); err != nil {
		return matrixErrorf(opTransposeInto, err)
	}
	if err := ValidateUsable(dst); err != nil {
		return matrixErrorf(opTransposeInto, err)
	}
	if dst == m {
		return m.TransposeInPlace()
	}
	if len(dst.data) != len(m.data) {
		return matrixErrorf(opTransposeInto,
			errors.Wrapf(ErrDimensionMismatch, "%d elements, want %d", len(dst.data), len(m.data)))
	}
	dst.rows, dst.cols = m.cols, m.rows
	transposeData(dst.data, m.data, m.rows, m.cols)

	return nil
}

// TransposeInPlace transposes m within its own buffer and swaps its
// dimensions. Square matrices swap across the diagonal; other shapes go
// through a pooled scratch copy.
//
// Complexity:
//   - Time O(r*c); Space O(1) for square, pooled O(r*c) otherwise.
func (m *Matrix) TransposeInPlace() error {
	if err := ValidateUsable(m); err != nil {
		return matrixErrorf(opTransposeInPlace, err)
	}
	rows, cols := m.rows, m.cols
	if rows == cols {
		var i, j int
		for i = 0; i < rows; i++ {
			for j = i + 1; j < cols; j++ {
				m.data[i*cols+j], m.data[j*cols+i] = m.data[j*cols+i], m.data[i*cols+j]
			}
		}

		return nil
	}

	buf := getScratch(len(m.data))
	copy(*buf, m.data)
	transposeData(m.data, *buf, rows, cols)
	putScratch(buf)
	m.rows, m.cols = cols, rows

	return nil
}
