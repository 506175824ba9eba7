// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlinalg/matrix"
)

func TestValidateUsable(t *testing.T) {
	require.ErrorIs(t, matrix.ValidateUsable(nil), matrix.ErrNilMatrix)
	m := MustMatrix(t, 1, 1)
	require.NoError(t, matrix.ValidateUsable(m))
	m.Release()
	require.ErrorIs(t, matrix.ValidateUsable(m), matrix.ErrReleased)
}

func TestValidateSameShape(t *testing.T) {
	a := MustMatrix(t, 2, 3)
	require.NoError(t, matrix.ValidateSameShape(a, MustMatrix(t, 2, 3)))
	require.ErrorIs(t, matrix.ValidateSameShape(a, MustMatrix(t, 3, 3)), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateSameShape(a, MustMatrix(t, 2, 2)), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateSameShape(nil, a), matrix.ErrNilMatrix)
}

func TestValidateMulCompatible(t *testing.T) {
	require.NoError(t, matrix.ValidateMulCompatible(MustMatrix(t, 2, 3), MustMatrix(t, 3, 4)))

	err := matrix.ValidateMulCompatible(MustMatrix(t, 2, 3), MustMatrix(t, 4, 2))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.Contains(t, err.Error(), "2x3 * 4x2")
}

// TestErrorPriority: nil/released is reported before shape problems.
func TestErrorPriority(t *testing.T) {
	r := MustMatrix(t, 5, 5)
	r.Release()
	err := matrix.ValidateMulCompatible(MustMatrix(t, 2, 3), r)
	require.ErrorIs(t, err, matrix.ErrReleased)
	require.NotErrorIs(t, err, matrix.ErrDimensionMismatch)
}
