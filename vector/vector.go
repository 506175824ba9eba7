// SPDX-License-Identifier: MIT

// Package vector - dense float32 vector over a contiguous owned buffer.
//
// Purpose:
//   - Own exactly one flat []float32; no two Vectors share storage.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Make reuse-after-release observable (ErrReleased) rather than silently corrupting data.
//
// Complexity quicksheet:
//   - New/FromSlice/Clone: O(n); At/Set: O(1); Release: O(1).
package vector

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

// ---------- Formatting literals ----------
const (
	_fmtOpen  = "["
	_fmtClose = "]"
	_fmtSep   = ", "
)

// Vector is a fixed-length sequence of float32 values.
// A live Vector always has len(data) > 0; data == nil marks a released Vector.
type Vector struct {
	data []float32 // contiguous storage, len == element count
}

var _ fmt.Stringer = (*Vector)(nil)

// New creates a zero-filled vector of n elements.
//
// Errors:
//   - ErrInvalidLength when n <= 0.
//
// Complexity:
//   - Time O(n), Space O(n).
func New(n int) (*Vector, error) {
	if n <= 0 {
		return nil, ErrInvalidLength
	}

	return &Vector{data: make([]float32, n)}, nil
}

// FromSlice creates a vector holding a copy of data.
// Later changes to data do not affect the vector.
func FromSlice(data []float32) (*Vector, error) {
	if len(data) == 0 {
		return nil, vectorErrorf(opFromRaw, ErrInvalidLength)
	}
	buf := make([]float32, len(data))
	copy(buf, data)

	return &Vector{data: buf}, nil
}

// check is the common guard for every operation on v.
func (v *Vector) check() error {
	if v == nil {
		return ErrNilVector
	}
	if v.data == nil {
		return ErrReleased
	}

	return nil
}

// Len returns the number of elements (0 after Release).
func (v *Vector) Len() int {
	if v == nil {
		return 0
	}

	return len(v.data)
}

// RawData returns the backing slice without copying.
// Writes through the returned slice mutate v. Returns nil after Release.
func (v *Vector) RawData() []float32 {
	if v == nil {
		return nil
	}

	return v.data
}

// Values returns a copy of the elements.
func (v *Vector) Values() []float32 {
	if v.check() != nil {
		return nil
	}
	out := make([]float32, len(v.data))
	copy(out, v.data)

	return out
}

// Clone returns a deep copy of v, or nil if v is nil or released.
func (v *Vector) Clone() *Vector {
	if v.check() != nil {
		return nil
	}
	cp := make([]float32, len(v.data))
	copy(cp, v.data)

	return &Vector{data: cp}
}

// At returns the element at i.
func (v *Vector) At(i int) (float32, error) {
	if err := v.check(); err != nil {
		return 0, vectorErrorf(opAt, err)
	}
	if i < 0 || i >= len(v.data) {
		return 0, errors.Wrapf(ErrOutOfRange, "Vector.%s(%d)", opAt, i)
	}

	return v.data[i], nil
}

// Set stores x at i.
func (v *Vector) Set(i int, x float32) error {
	if err := v.check(); err != nil {
		return vectorErrorf(opSet, err)
	}
	if i < 0 || i >= len(v.data) {
		return errors.Wrapf(ErrOutOfRange, "Vector.%s(%d)", opSet, i)
	}
	v.data[i] = x

	return nil
}

// Release drops the backing buffer. Every later operation on v returns
// ErrReleased; calling Release again is a no-op.
func (v *Vector) Release() {
	if v == nil {
		return
	}
	v.data = nil
}

// Released reports whether Release has been called on v.
func (v *Vector) Released() bool {
	return v != nil && v.data == nil
}

// String renders "[v0, v1, ...]" with %g formatting.
func (v *Vector) String() string {
	if v.check() != nil {
		return _fmtOpen + _fmtClose
	}
	var b strings.Builder
	b.WriteString(_fmtOpen)
	for i, x := range v.data {
		if i > 0 {
			b.WriteString(_fmtSep)
		}
		fmt.Fprintf(&b, "%g", x)
	}
	b.WriteString(_fmtClose)

	return b.String()
}
