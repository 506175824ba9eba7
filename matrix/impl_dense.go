// SPDX-License-Identifier: MIT

// Package matrix - safe accessors, row/column extraction and subsetting.
//
// Purpose:
//   - At/Set bounds-check every index and return ErrOutOfRange instead of panicking.
//   - Row extraction is one bulk copy (rows are contiguous in row-major layout);
//     column extraction must stride by cols and cannot.
//   - The *Into variants fill a caller-supplied vector to avoid allocation in loops.
package matrix

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/lvlinalg/internal/rng"
	"github.com/katalvlaran/lvlinalg/vector"
)

// ---------- error context tags ----------

const (
	ctxAt     = "At"
	ctxSet    = "Set"
	ctxRow    = "Row"
	ctxCol    = "Col"
	ctxSubset = "Subset"
	ctxApply  = "Apply"
	ctxFill   = "Fill"
	ctxRandom = "Random"
)

// denseErrorf wraps an error with method context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return errors.Wrapf(err, "Matrix.%s(%d,%d)", method, row, col)
}

// indexOf computes the row-major offset or returns ErrOutOfRange.
func (m *Matrix) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.rows {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.cols {
		return 0, ErrOutOfRange
	}

	return m.offset(row, col), nil
}

// At returns the value at (row, col).
//
// Errors:
//   - ErrNilMatrix / ErrReleased; ErrOutOfRange for invalid indices.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Matrix) At(row, col int) (float32, error) {
	if err := ValidateUsable(m); err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col).
func (m *Matrix) Set(row, col int, v float32) error {
	if err := ValidateUsable(m); err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Row returns a new vector holding a copy of row r.
// Complexity: O(cols), one bulk copy.
func (m *Matrix) Row(r int) (*vector.Vector, error) {
	if err := ValidateUsable(m); err != nil {
		return nil, matrixErrorf(ctxRow, err)
	}
	v, err := vector.New(m.cols)
	if err != nil {
		return nil, matrixErrorf(ctxRow, err)
	}
	if err = m.RowInto(r, v); err != nil {
		return nil, err
	}

	return v, nil
}

// RowInto copies row r into dst, which must have Len() == Cols().
func (m *Matrix) RowInto(r int, dst *vector.Vector) error {
	if err := ValidateUsable(m); err != nil {
		return matrixErrorf(ctxRow, err)
	}
	if r < 0 || r >= m.rows {
		return denseErrorf(ctxRow, r, 0, ErrOutOfRange)
	}
	out, err := vectorBuffer(dst)
	if err != nil {
		return matrixErrorf(ctxRow, err)
	}
	if err = ValidateVecLen(len(out), m.cols); err != nil {
		return matrixErrorf(ctxRow, err)
	}
	base := m.offset(r, 0)
	copy(out, m.data[base:base+m.cols]) // contiguous

	return nil
}

// vectorBuffer exposes v's backing slice after checking v is usable.
func vectorBuffer(v *vector.Vector) ([]float32, error) {
	if v == nil {
		return nil, vector.ErrNilVector
	}
	if v.Released() {
		return nil, vector.ErrReleased
	}

	return v.RawData(), nil
}

// Col returns a new vector holding a copy of column c.
// Complexity: O(rows), strided reads.
func (m *Matrix) Col(c int) (*vector.Vector, error) {
	if err := ValidateUsable(m); err != nil {
		return nil, matrixErrorf(ctxCol, err)
	}
	v, err := vector.New(m.rows)
	if err != nil {
		return nil, matrixErrorf(ctxCol, err)
	}
	if err = m.ColInto(c, v); err != nil {
		return nil, err
	}

	return v, nil
}

// ColInto copies column c into dst, which must have Len() == Rows().
func (m *Matrix) ColInto(c int, dst *vector.Vector) error {
	if err := ValidateUsable(m); err != nil {
		return matrixErrorf(ctxCol, err)
	}
	if c < 0 || c >= m.cols {
		return denseErrorf(ctxCol, 0, c, ErrOutOfRange)
	}
	out, err := vectorBuffer(dst)
	if err != nil {
		return matrixErrorf(ctxCol, err)
	}
	if err = ValidateVecLen(len(out), m.rows); err != nil {
		return matrixErrorf(ctxCol, err)
	}
	// Strided walk: stride == cols.
	for r := range out {
		out[r] = m.data[m.offset(r, c)]
	}

	return nil
}

// Subset returns a new matrix holding rows [rLo, rHi] and columns [cLo, cHi],
// both ends inclusive. The result is (rHi-rLo+1)×(cHi-cLo+1).
//
// Errors:
//   - ErrOutOfRange when a bound lies outside the matrix or lo > hi.
//
// Complexity:
//   - Time O(r'*c'), one bulk copy per result row.
func (m *Matrix) Subset(rLo, rHi, cLo, cHi int) (*Matrix, error) {
	if err := ValidateUsable(m); err != nil {
		return nil, matrixErrorf(ctxSubset, err)
	}
	if rLo < 0 || rHi >= m.rows || rLo > rHi || cLo < 0 || cHi >= m.cols || cLo > cHi {
		return nil, errors.Wrapf(ErrOutOfRange, "Matrix.%s(%d,%d,%d,%d)", ctxSubset, rLo, rHi, cLo, cHi)
	}
	res, err := New(rHi-rLo+1, cHi-cLo+1)
	if err != nil {
		return nil, matrixErrorf(ctxSubset, err)
	}
	var i, src int
	for i = 0; i < res.rows; i++ {
		src = m.offset(rLo+i, cLo)
		copy(res.data[i*res.cols:(i+1)*res.cols], m.data[src:src+res.cols])
	}

	return res, nil
}

// Apply replaces each element with f(element) in place, in row-major order.
// Parameters f needs are captured by the closure.
func (m *Matrix) Apply(f func(x float32) float32) error {
	if err := ValidateUsable(m); err != nil {
		return matrixErrorf(ctxApply, err)
	}
	for i, x := range m.data {
		m.data[i] = f(x)
	}

	return nil
}

// Fill sets every element to v.
func (m *Matrix) Fill(v float32) error {
	if err := ValidateUsable(m); err != nil {
		return matrixErrorf(ctxFill, err)
	}
	for i := range m.data {
		m.data[i] = v
	}

	return nil
}

// Random fills m with uniform values in [lo, hi).
// Without WithRand/WithSeed the process-global, wall-clock-seeded stream is used.
func (m *Matrix) Random(lo, hi float32, opts ...Option) error {
	if err := ValidateUsable(m); err != nil {
		return matrixErrorf(ctxRandom, err)
	}
	o := gatherOptions(opts...)
	for i := range m.data {
		m.data[i] = rng.Between(o.rnd, lo, hi)
	}

	return nil
}
