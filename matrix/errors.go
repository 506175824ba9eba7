// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels and tests MUST check them
// via errors.Is. No operation panics or exits the process on user-triggered
// error conditions.

package matrix

import "github.com/cockroachdb/errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Operations wrap these sentinels with an operation
// tag via matrixErrorf; callers still match them with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil/released -> shape/index -> dimension mismatch -> aliasing -> sampling size.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) or an index range
	// is outside valid bounds. At/Set/Row/Col/Subset return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add with different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil *Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrReleased indicates use of a matrix after Release.
	ErrReleased = errors.New("matrix: use after release")

	// ErrAliased signals that a destination shares storage with an operand in
	// a kernel that requires distinct buffers (MulInto).
	ErrAliased = errors.New("matrix: destination aliases an operand")

	// ErrSampleSize signals a without-replacement sample larger than the population.
	ErrSampleSize = errors.New("matrix: sample size exceeds row count")

	// ErrUnknownKernel is returned by ParseKernel for unrecognized names.
	ErrUnknownKernel = errors.New("matrix: unknown multiplication kernel")
)
