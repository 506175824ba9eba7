// SPDX-License-Identifier: MIT

// Package matrix - scalar and element-wise arithmetic.
//
// All operations mutate the receiver in place with a single flat loop over
// the backing buffer (row-major order, deterministic). Element-wise ops
// require identical shapes; on ErrDimensionMismatch the receiver is untouched.
package matrix

const (
	opScalar = "Scalar"
	opElem   = "Elementwise"
)

// scalar applies f to every element after the usability check.
func (m *Matrix) scalar(f func(x float32) float32) error {
	if err := ValidateUsable(m); err != nil {
		return matrixErrorf(opScalar, err)
	}
	for i, x := range m.data {
		m.data[i] = f(x)
	}

	return nil
}

// AddScalar adds s to every element.
func (m *Matrix) AddScalar(s float32) error {
	return m.scalar(func(x float32) float32 { return x + s })
}

// SubScalar subtracts s from every element.
func (m *Matrix) SubScalar(s float32) error {
	return m.scalar(func(x float32) float32 { return x - s })
}

// MulScalar multiplies every element by s.
func (m *Matrix) MulScalar(s float32) error {
	return m.scalar(func(x float32) float32 { return x * s })
}

// DivScalar divides every element by s. Division by zero follows IEEE-754.
func (m *Matrix) DivScalar(s float32) error {
	return m.scalar(func(x float32) float32 { return x / s })
}

// elementwise sets m[i] = f(m[i], other[i]) after the shared shape check.
//
// Errors:
//   - ErrNilMatrix / ErrReleased for either operand.
//   - ErrDimensionMismatch when rows or columns differ.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Matrix) elementwise(other *Matrix, f func(x, y float32) float32) error {
	if err := ValidateSameShape(m, other); err != nil {
		return matrixErrorf(opElem, err)
	}
	src := other.data[:len(m.data)]
	for i, x := range m.data {
		m.data[i] = f(x, src[i])
	}

	return nil
}

// Add sets m[r][c] += other[r][c].
func (m *Matrix) Add(other *Matrix) error {
	return m.elementwise(other, func(x, y float32) float32 { return x + y })
}

// Sub sets m[r][c] -= other[r][c].
func (m *Matrix) Sub(other *Matrix) error {
	return m.elementwise(other, func(x, y float32) float32 { return x - y })
}

// MulElem sets m[r][c] *= other[r][c] (Hadamard product, not matrix multiplication).
func (m *Matrix) MulElem(other *Matrix) error {
	return m.elementwise(other, func(x, y float32) float32 { return x * y })
}

// Div sets m[r][c] /= other[r][c].
func (m *Matrix) Div(other *Matrix) error {
	return m.elementwise(other, func(x, y float32) float32 { return x / y })
}
