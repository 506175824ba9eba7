// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite and well-formed so kernel comparisons stay within tolerance.

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlinalg/matrix"
)

// tol is the absolute/relative tolerance used when comparing kernels whose
// summation order (or FMA fusion) may differ.
const tol = 1e-4

// MustMatrix ALLOCATES an r×c zero matrix or fails the test.
func MustMatrix(t testing.TB, r, c int) *matrix.Matrix {
	t.Helper()
	m, err := matrix.New(r, c)
	require.NoError(t, err)

	return m
}

// MustFromRows builds a matrix from literal rows or fails the test.
func MustFromRows(t testing.TB, rows ...[]float32) *matrix.Matrix {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt(t testing.TB, m *matrix.Matrix, i, j int) float32 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// sequential returns an r×c matrix whose element (i,j) is i*c + j.
func sequential(t testing.TB, r, c int) *matrix.Matrix {
	t.Helper()
	m := MustMatrix(t, r, c)
	raw := m.RawData()
	for i := range raw {
		raw[i] = float32(i)
	}

	return m
}

// randomMatrix returns a deterministic r×c matrix with values in [-1, 1).
func randomMatrix(t testing.TB, r, c int, seed uint64) *matrix.Matrix {
	t.Helper()
	m, err := matrix.NewRandom(r, c, -1, 1, matrix.WithSeed(seed))
	require.NoError(t, err)

	return m
}

// requireClose asserts equal shapes and element-wise |a-b| <= tol*(1+|a|).
func requireClose(t testing.TB, want, got *matrix.Matrix) {
	t.Helper()
	wr, wc := want.Shape()
	gr, gc := got.Shape()
	require.Equal(t, wr, gr, "rows")
	require.Equal(t, wc, gc, "cols")
	w, g := want.RawData(), got.RawData()
	for i := range w {
		d := math.Abs(float64(w[i]) - float64(g[i]))
		require.LessOrEqualf(t, d, tol*(1+math.Abs(float64(w[i]))),
			"cell %d: want %v, got %v", i, w[i], g[i])
	}
}
