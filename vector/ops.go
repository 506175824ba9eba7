// SPDX-License-Identifier: MIT

// Package vector - arithmetic, fills and reductions.
//
// All mutating operations work in place on the receiver. Accumulation is
// done in float32 throughout; results are not widened to float64.
package vector

import "github.com/katalvlaran/lvlinalg/internal/rng"

// Dot returns Σ a[i]*b[i].
//
// Errors:
//   - ErrNilVector / ErrReleased for unusable operands.
//   - ErrDimensionMismatch when a.Len() != b.Len().
//
// Complexity:
//   - Time O(n), Space O(1).
func Dot(a, b *Vector) (float32, error) {
	if err := a.check(); err != nil {
		return 0, vectorErrorf(opDot, err)
	}
	if err := b.check(); err != nil {
		return 0, vectorErrorf(opDot, err)
	}
	if len(a.data) != len(b.data) {
		return 0, vectorErrorf(opDot, ErrDimensionMismatch)
	}

	return dot(a.data, b.data), nil
}

// dot assumes len(x) == len(y).
func dot(x, y []float32) float32 {
	var acc float32
	y = y[:len(x)] // hoist bounds check
	for i, xv := range x {
		acc += xv * y[i]
	}

	return acc
}

// Random fills v with uniform values in [lo, hi).
// Without options the process-global, wall-clock-seeded stream is used.
func (v *Vector) Random(lo, hi float32, opts ...Option) error {
	if err := v.check(); err != nil {
		return vectorErrorf(opRandom, err)
	}
	o := gatherOptions(opts...)
	for i := range v.data {
		v.data[i] = rng.Between(o.rnd, lo, hi)
	}

	return nil
}

// Fill sets every element to x.
func (v *Vector) Fill(x float32) error {
	if err := v.check(); err != nil {
		return vectorErrorf(opFill, err)
	}
	for i := range v.data {
		v.data[i] = x
	}

	return nil
}

// Apply replaces each element with f(element). Parameters f needs are
// captured by the closure.
func (v *Vector) Apply(f func(x float32) float32) error {
	if err := v.check(); err != nil {
		return vectorErrorf(opApply, err)
	}
	for i, x := range v.data {
		v.data[i] = f(x)
	}

	return nil
}

// ---------- scalar ops ----------

func (v *Vector) scalar(f func(x float32) float32) error {
	if err := v.check(); err != nil {
		return vectorErrorf(opScalar, err)
	}
	for i, x := range v.data {
		v.data[i] = f(x)
	}

	return nil
}

// AddScalar adds s to every element.
func (v *Vector) AddScalar(s float32) error {
	return v.scalar(func(x float32) float32 { return x + s })
}

// SubScalar subtracts s from every element.
func (v *Vector) SubScalar(s float32) error {
	return v.scalar(func(x float32) float32 { return x - s })
}

// MulScalar multiplies every element by s.
func (v *Vector) MulScalar(s float32) error {
	return v.scalar(func(x float32) float32 { return x * s })
}

// DivScalar divides every element by s. Division by zero follows IEEE-754.
func (v *Vector) DivScalar(s float32) error {
	return v.scalar(func(x float32) float32 { return x / s })
}

// ---------- element-wise ops ----------

// elementwise applies v[i] = f(v[i], w[i]) after the shared length check.
func (v *Vector) elementwise(w *Vector, f func(x, y float32) float32) error {
	if err := v.check(); err != nil {
		return vectorErrorf(opElem, err)
	}
	if err := w.check(); err != nil {
		return vectorErrorf(opElem, err)
	}
	if len(v.data) != len(w.data) {
		return vectorErrorf(opElem, ErrDimensionMismatch)
	}
	src := w.data
	for i, x := range v.data {
		v.data[i] = f(x, src[i])
	}

	return nil
}

// Add sets v[i] += w[i].
func (v *Vector) Add(w *Vector) error {
	return v.elementwise(w, func(x, y float32) float32 { return x + y })
}

// Sub sets v[i] -= w[i].
func (v *Vector) Sub(w *Vector) error {
	return v.elementwise(w, func(x, y float32) float32 { return x - y })
}

// Mul sets v[i] *= w[i].
func (v *Vector) Mul(w *Vector) error {
	return v.elementwise(w, func(x, y float32) float32 { return x * y })
}

// Div sets v[i] /= w[i].
func (v *Vector) Div(w *Vector) error {
	return v.elementwise(w, func(x, y float32) float32 { return x / y })
}

// ---------- reductions ----------

// Sum returns Σ v[i].
func (v *Vector) Sum() (float32, error) {
	if err := v.check(); err != nil {
		return 0, vectorErrorf(opSum, err)
	}
	var acc float32
	for _, x := range v.data {
		acc += x
	}

	return acc, nil
}

// Mean returns Sum()/Len().
func (v *Vector) Mean() (float32, error) {
	s, err := v.Sum()
	if err != nil {
		return 0, vectorErrorf(opMean, err)
	}

	return s / float32(len(v.data)), nil
}
