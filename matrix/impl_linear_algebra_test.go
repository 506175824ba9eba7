// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the multiplication kernels.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlinalg/matrix"
)

// reference computes A×B with the textbook triple loop on float64 and narrows
// the result, giving an order-independent oracle for every kernel.
func reference(t *testing.T, a, b *matrix.Matrix) *matrix.Matrix {
	t.Helper()
	n, k := a.Shape()
	_, m := b.Shape()
	res := MustMatrix(t, n, m)
	ad, bd, out := a.RawData(), b.RawData(), res.RawData()
	var i, j, p int
	for i = 0; i < n; i++ {
		for j = 0; j < m; j++ {
			var s float64
			for p = 0; p < k; p++ {
				s += float64(ad[i*k+p]) * float64(bd[p*m+j])
			}
			out[i*m+j] = float32(s)
		}
	}

	return res
}

// kernels enumerates every public multiplication entry point.
var kernels = []struct {
	name string
	mul  func(a, b *matrix.Matrix) (*matrix.Matrix, error)
}{
	{"naive", matrix.MulNaive},
	{"transposed", matrix.Mul},
	{"parallel", func(a, b *matrix.Matrix) (*matrix.Matrix, error) { return matrix.MulParallel(a, b, matrix.WithWorkers(3)) }},
	{"blas", matrix.MulBLAS},
	{"into", func(a, b *matrix.Matrix) (*matrix.Matrix, error) {
		if err := matrix.ValidateMulCompatible(a, b); err != nil {
			// let MulInto report the operand error itself
			return nil, matrix.MulInto(a, b, &matrix.Matrix{})
		}
		dst, err := matrix.New(a.Rows(), b.Cols())
		if err != nil {
			return nil, err
		}
		return dst, matrix.MulInto(a, b, dst)
	}},
}

func TestMul_SmallKnown(t *testing.T) {
	a := MustFromRows(t, []float32{1, 2, 3}, []float32{4, 5, 6})
	b := MustFromRows(t, []float32{7, 8}, []float32{9, 10}, []float32{11, 12})
	want := MustFromRows(t, []float32{58, 64}, []float32{139, 154})

	for _, k := range kernels {
		t.Run(k.name, func(t *testing.T) {
			got, err := k.mul(a, b)
			require.NoError(t, err)
			require.Equal(t, want.RawData(), got.RawData())
		})
	}
}

func TestMul_KernelsAgreeWithReference(t *testing.T) {
	for _, sh := range []struct{ n, k, m int }{
		{1, 1, 1},
		{1, 7, 1},
		{5, 1, 4},
		{7, 3, 9},
		{16, 16, 16},
		{33, 17, 5},
	} {
		a := randomMatrix(t, sh.n, sh.k, 11)
		b := randomMatrix(t, sh.k, sh.m, 29)
		want := reference(t, a, b)
		for _, k := range kernels {
			t.Run(fmt.Sprintf("%s/%dx%dx%d", k.name, sh.n, sh.k, sh.m), func(t *testing.T) {
				got, err := k.mul(a, b)
				require.NoError(t, err)
				requireClose(t, want, got)
			})
		}
	}
}

func TestMul_OperandsUntouched(t *testing.T) {
	a := randomMatrix(t, 4, 6, 1)
	b := randomMatrix(t, 6, 3, 2)
	a0, b0 := a.Clone(), b.Clone()

	for _, k := range kernels {
		_, err := k.mul(a, b)
		require.NoError(t, err, k.name)
	}
	require.Equal(t, a0.RawData(), a.RawData())
	require.Equal(t, b0.RawData(), b.RawData())
	require.Equal(t, 6, b.Rows())
	require.Equal(t, 3, b.Cols())
}

func TestMul_DimensionMismatch(t *testing.T) {
	a := MustMatrix(t, 2, 3)
	b := MustMatrix(t, 4, 2)
	for _, k := range kernels {
		t.Run(k.name, func(t *testing.T) {
			got, err := k.mul(a, b)
			require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
			require.Nil(t, got)
		})
	}
}

func TestMul_NilAndReleased(t *testing.T) {
	a := MustMatrix(t, 2, 2)
	r := MustMatrix(t, 2, 2)
	r.Release()
	for _, k := range kernels {
		t.Run(k.name, func(t *testing.T) {
			_, err := k.mul(nil, a)
			require.ErrorIs(t, err, matrix.ErrNilMatrix)
			_, err = k.mul(a, r)
			require.ErrorIs(t, err, matrix.ErrReleased)
		})
	}
}

func TestMulParallel_MatchesSequential64(t *testing.T) {
	a := randomMatrix(t, 64, 64, 7)
	b := randomMatrix(t, 64, 64, 8)
	seq, err := matrix.Mul(a, b)
	require.NoError(t, err)

	for _, w := range []int{1, 2, 3, 8, 64, 5000} {
		t.Run(fmt.Sprintf("workers=%d", w), func(t *testing.T) {
			par, err := matrix.MulParallel(a, b, matrix.WithWorkers(w))
			require.NoError(t, err)
			requireClose(t, seq, par)
		})
	}
	par, err := matrix.MulParallel(a, b)
	require.NoError(t, err)
	requireClose(t, seq, par)
}

func TestMulInto_ReuseIsIdempotent(t *testing.T) {
	a := randomMatrix(t, 5, 4, 3)
	b := randomMatrix(t, 4, 6, 4)
	dst := MustMatrix(t, 5, 6)
	require.NoError(t, dst.Fill(42))

	require.NoError(t, matrix.MulInto(a, b, dst))
	first := dst.Clone()
	require.NoError(t, matrix.MulInto(a, b, dst))
	require.Equal(t, first.RawData(), dst.RawData())
	requireClose(t, reference(t, a, b), dst)
}

func TestMulInto_Errors(t *testing.T) {
	sq := randomMatrix(t, 3, 3, 5)
	other := randomMatrix(t, 3, 3, 6)

	require.ErrorIs(t, matrix.MulInto(sq, other, sq), matrix.ErrAliased)
	require.ErrorIs(t, matrix.MulInto(sq, other, other), matrix.ErrAliased)

	wrong := MustMatrix(t, 3, 4)
	require.ErrorIs(t, matrix.MulInto(sq, other, wrong), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.MulInto(sq, other, nil), matrix.ErrNilMatrix)
}

func TestMultiply_Dispatch(t *testing.T) {
	a := randomMatrix(t, 6, 5, 9)
	b := randomMatrix(t, 5, 7, 10)
	want := reference(t, a, b)

	got, err := matrix.Multiply(a, b)
	require.NoError(t, err)
	requireClose(t, want, got)

	for _, k := range []matrix.Kernel{matrix.KernelNaive, matrix.KernelTransposed, matrix.KernelParallel, matrix.KernelBLAS} {
		t.Run(k.String(), func(t *testing.T) {
			got, err := matrix.Multiply(a, b, matrix.WithKernel(k), matrix.WithWorkers(2))
			require.NoError(t, err)
			requireClose(t, want, got)
		})
	}

	_, err = matrix.Multiply(a, a, matrix.WithKernel(matrix.KernelParallel))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestMulCells_PartialRanges(t *testing.T) {
	// a is 2x3, b is 3x2 given as bᵀ (2x3).
	a := []float32{1, 2, 3, 4, 5, 6}
	bt := []float32{7, 9, 11, 8, 10, 12}
	out := make([]float32, 4)

	matrix.ExportedMulCells(out, a, bt, 3, 2, 0, 2)
	require.Equal(t, []float32{58, 64, 0, 0}, out)
	matrix.ExportedMulCells(out, a, bt, 3, 2, 2, 4)
	require.Equal(t, []float32{58, 64, 139, 154}, out)
}
