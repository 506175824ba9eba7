// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin entry points for common construction tasks.
//   - Avoid logic duplication: each facade delegates to the canonical implementation.

package matrix

// NewZeros returns a new zero-initialized rows×cols matrix.
// It is a thin alias of New with an intention-revealing name.
func NewZeros(rows, cols int) (*Matrix, error) {
	return New(rows, cols)
}

// NewIdentity returns I_n (ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity(n int) (*Matrix, error) {
	I, err := New(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[I.offset(i, i)] = 1
	}

	return I, nil
}

// NewRandom returns a rows×cols matrix filled with uniform values in [lo, hi).
// Accepts WithRand / WithSeed.
func NewRandom(rows, cols int, lo, hi float32, opts ...Option) (*Matrix, error) {
	m, err := New(rows, cols)
	if err != nil {
		return nil, err
	}
	if err = m.Random(lo, hi, opts...); err != nil {
		return nil, err
	}

	return m, nil
}
