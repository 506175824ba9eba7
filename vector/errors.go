// SPDX-License-Identifier: MIT
// Package vector: sentinel error set.
// All operations return these sentinels (possibly wrapped with an operation
// tag); callers match them with errors.Is. Nothing in this package panics on
// user-triggered conditions or terminates the process.

package vector

import "github.com/cockroachdb/errors"

var (
	// ErrInvalidLength is returned when a requested length is non-positive.
	ErrInvalidLength = errors.New("vector: length must be > 0")

	// ErrOutOfRange indicates an index outside [0, Len()).
	ErrOutOfRange = errors.New("vector: index out of range")

	// ErrDimensionMismatch indicates operands of different lengths, e.g. Dot or Add.
	ErrDimensionMismatch = errors.New("vector: dimension mismatch")

	// ErrNilVector indicates a nil *Vector receiver or argument.
	ErrNilVector = errors.New("vector: nil vector")

	// ErrReleased indicates use of a vector after Release.
	ErrReleased = errors.New("vector: use after release")
)

// Operation tags for error wrapping.
const (
	opAt      = "At"
	opSet     = "Set"
	opDot     = "Dot"
	opRandom  = "Random"
	opFill    = "Fill"
	opApply   = "Apply"
	opScalar  = "Scalar"
	opElem    = "Elementwise"
	opSum     = "Sum"
	opMean    = "Mean"
	opFromRaw = "FromSlice"
)

// vectorErrorf wraps err with an operation tag, preserving errors.Is.
// Call only with a non-nil err.
func vectorErrorf(tag string, err error) error {
	return errors.Wrapf(err, "%s", tag)
}
