// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating nil/released/shape checks here.
//  - Return sentinel errors tagged with the validator name so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic, O(1) and allocate nothing on success.

package matrix

import "github.com/cockroachdb/errors"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return errors.Wrapf(err, "%s", tag)
}

// ValidateUsable – Ensures m is non-nil and not released.
//
// Errors: ErrNilMatrix, ErrReleased.
// Complexity: O(1).
func ValidateUsable(m *Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateUsable", ErrNilMatrix)
	}
	if m.data == nil {
		return validatorErrorf("ValidateUsable", ErrReleased)
	}

	return nil
}

// ValidateSameShape – Composite: Usable(a) → Usable(b) → equal rows and columns.
//
// Errors: ErrNilMatrix, ErrReleased, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameShape(a, b *Matrix) error {
	if err := ValidateUsable(a); err != nil {
		return err
	}
	if err := ValidateUsable(b); err != nil {
		return err
	}
	if a.rows != b.rows {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.cols != b.cols {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulCompatible – Ensures a.Cols == b.Rows, inputs usable.
//
// Errors: ErrNilMatrix, ErrReleased, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMulCompatible(a, b *Matrix) error {
	if err := ValidateUsable(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateUsable(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.cols != b.rows {
		return validatorErrorf("ValidateMulCompatible",
			errors.Wrapf(ErrDimensionMismatch, "%dx%d * %dx%d", a.rows, a.cols, b.rows, b.cols))
	}

	return nil
}

// ValidateVecLen ensures a vector-like length n matches want.
func ValidateVecLen(n, want int) error {
	if n != want {
		return validatorErrorf("ValidateVecLen",
			errors.Wrapf(ErrDimensionMismatch, "len %d, want %d", n, want))
	}

	return nil
}
