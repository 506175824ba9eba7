// SPDX-License-Identifier: MIT
// Package matrix provides the multiplication kernels. All kernels perform
// strict fail-fast validation (a.Cols == b.Rows) and return ErrDimensionMismatch
// instead of producing a partial result.
//
// Purpose:
//   - MulNaive: the reference design, one row/column extraction plus a dot product per cell.
//   - Mul/MulInto: the transpose trick. bᵀ is materialized once so that both
//     operands are read contiguously in the k-loop.
//   - MulParallel: the same cell computation with disjoint cell ranges per goroutine.
//   - MulBLAS: gonum's blas32.Gemm over the same row-major buffers.
//
// Notes:
//   - Accumulation is float32 throughout; for a given cell the k-order is 0..K-1
//     in MulNaive, Mul, MulInto and MulParallel.

package matrix

import (
	"github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas32"

	"github.com/katalvlaran/lvlinalg/vector"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMulNaive    = "MulNaive"
	opMul         = "Mul"
	opMulInto     = "MulInto"
	opMulParallel = "MulParallel"
	opMulBLAS     = "MulBLAS"
	opMultiply    = "Multiply"
)

// MulNaive computes C = A × B by extracting row r of A once per r and column c
// of B once per (r,c), then taking their dot product.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b); allocate C (a.Rows × b.Cols).
//   - Stage 2: two reusable vectors (row of A, column of B); RowInto/ColInto + vector.Dot.
//
// Behavior highlights:
//   - Column extraction strides through B; this is the cache-unfriendly baseline
//     the other kernels are measured against.
//
// Errors:
//   - ErrNilMatrix, ErrReleased, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(n*k*m), Space O(n*m + n + k).
func MulNaive(a, b *Matrix) (*Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMulNaive, err)
	}
	res, err := New(a.rows, b.cols)
	if err != nil {
		return nil, matrixErrorf(opMulNaive, err)
	}
	rowVec, err := vector.New(a.cols)
	if err != nil {
		return nil, matrixErrorf(opMulNaive, err)
	}
	defer rowVec.Release()
	colVec, err := vector.New(b.rows)
	if err != nil {
		return nil, matrixErrorf(opMulNaive, err)
	}
	defer colVec.Release()

	var r, c int
	var d float32
	for r = 0; r < a.rows; r++ {
		if err = a.RowInto(r, rowVec); err != nil {
			return nil, matrixErrorf(opMulNaive, err)
		}
		for c = 0; c < b.cols; c++ {
			if err = b.ColInto(c, colVec); err != nil {
				return nil, matrixErrorf(opMulNaive, err)
			}
			if d, err = vector.Dot(rowVec, colVec); err != nil {
				return nil, matrixErrorf(opMulNaive, err)
			}
			res.data[res.offset(r, c)] = d
		}
	}

	return res, nil
}

// mulCells accumulates output cells [lo, hi) of the flat n×m result.
//   - a is n×k row-major, bt is m×k row-major (the transposed right operand).
//   - out must be zero in [lo, hi): each cell adds its k-sum onto the stored value.
//
// The k reduction runs in a private accumulator, so a cell is written exactly
// once by whoever owns it.
func mulCells(out, a, bt []float32, k, m, lo, hi int) {
	var idx, r, c, p int
	var acc float32
	var arow, brow []float32
	for idx = lo; idx < hi; idx++ {
		r, c = idx/m, idx%m
		arow = a[r*k : (r+1)*k]
		brow = bt[c*k : (c+1)*k]
		acc = 0
		for p = range arow {
			acc += arow[p] * brow[p]
		}
		out[idx] += acc
	}
}

// transposedScratch materializes bᵀ into a pooled buffer.
// Callers must putScratch the result.
func transposedScratch(b *Matrix) *[]float32 {
	bt := getScratch(len(b.data))
	transposeData(*bt, b.data, b.rows, b.cols)

	return bt
}

// Mul computes C = A × B with the transpose trick and returns a fresh matrix.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b); allocate zeroed C.
//   - Stage 2: bt = bᵀ (pooled scratch).
//   - Stage 3: C[r][c] += Σk A[r][k]*bt[c][k]; both reads contiguous.
//
// Behavior highlights:
//   - The O(k*m) transpose is amortized against the O(n*k*m) multiply.
//   - Operands are never mutated.
//
// Errors:
//   - ErrNilMatrix, ErrReleased, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(n*k*m), Space O(n*m) result + pooled O(k*m).
func Mul(a, b *Matrix) (*Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	res, err := New(a.rows, b.cols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	bt := transposedScratch(b)
	mulCells(res.data, a.data, *bt, a.cols, b.cols, 0, len(res.data))
	putScratch(bt)

	return res, nil
}

// MulInto computes dst = A × B with the transpose trick, reusing dst's buffer.
// dst is zeroed before accumulation, so calling MulInto repeatedly on the same
// dst yields the same result every time.
//
// Errors:
//   - ErrNilMatrix, ErrReleased, ErrDimensionMismatch (incompatible operands or
//     dst not a.Rows×b.Cols), ErrAliased (dst is a or b).
//
// Complexity:
//   - Time O(n*k*m), no allocation besides pooled scratch.
func MulInto(a, b, dst *Matrix) error {
	if err := ValidateMulCompatible(a, b); err != nil {
		return matrixErrorf(opMulInto, err)
	}
	if err := ValidateUsable(dst); err != nil {
		return matrixErrorf(opMulInto, err)
	}
	if dst.rows != a.rows || dst.cols != b.cols {
		return matrixErrorf(opMulInto, errors.Wrapf(ErrDimensionMismatch,
			"dst %dx%d, want %dx%d", dst.rows, dst.cols, a.rows, b.cols))
	}
	if dst == a || dst == b {
		return matrixErrorf(opMulInto, ErrAliased)
	}

	clear(dst.data)
	bt := transposedScratch(b)
	mulCells(dst.data, a.data, *bt, a.cols, b.cols, 0, len(dst.data))
	putScratch(bt)

	return nil
}

// MulParallel computes C = A × B with the transpose trick across goroutines.
//
// Implementation:
//   - Stage 1: validate; allocate C; bt = bᵀ.
//   - Stage 2: the collapsed (r,c) cell index range [0, n*m) is split into one
//     contiguous chunk per worker (static partition, no work stealing).
//   - Stage 3: errgroup with SetLimit(workers); each goroutine runs mulCells on
//     its chunk. The k reduction is private per cell, so every output cell is
//     owned by exactly one goroutine and no locking is needed.
//
// Options:
//   - WithWorkers(n): goroutine count (default runtime.NumCPU()).
//
// Errors:
//   - ErrNilMatrix, ErrReleased, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(n*k*m / workers) wall-clock, Space as Mul.
func MulParallel(a, b *Matrix, opts ...Option) (*Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMulParallel, err)
	}
	o := gatherOptions(opts...)
	res, err := New(a.rows, b.cols)
	if err != nil {
		return nil, matrixErrorf(opMulParallel, err)
	}
	bt := transposedScratch(b)
	defer putScratch(bt)

	cells := len(res.data)
	workers := o.workers
	if workers > cells {
		workers = cells
	}
	chunk := (cells + workers - 1) / workers

	var g errgroup.Group
	g.SetLimit(workers)
	out, ad, btd := res.data, a.data, *bt
	k, m := a.cols, b.cols
	for lo := 0; lo < cells; lo += chunk {
		lo, hi := lo, min(lo+chunk, cells)
		g.Go(func() error {
			mulCells(out, ad, btd, k, m, lo, hi)
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, matrixErrorf(opMulParallel, err)
	}

	return res, nil
}

// MulBLAS computes C = A × B with gonum's blas32.Gemm over the row-major
// buffers (Stride == Cols). Summation order is BLAS-defined, so results match
// the other kernels only within floating-point tolerance.
func MulBLAS(a, b *Matrix) (*Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMulBLAS, err)
	}
	res, err := New(a.rows, b.cols)
	if err != nil {
		return nil, matrixErrorf(opMulBLAS, err)
	}
	blas32.Gemm(blas.NoTrans, blas.NoTrans, 1,
		asGeneral(a), asGeneral(b), 0, asGeneral(res))

	return res, nil
}

// asGeneral views m as a blas32.General without copying.
func asGeneral(m *Matrix) blas32.General {
	return blas32.General{Rows: m.rows, Cols: m.cols, Stride: m.cols, Data: m.data}
}

// Multiply dispatches to the kernel chosen by WithKernel (DefaultKernel otherwise).
// Remaining options (e.g. WithWorkers) are forwarded to the kernel.
func Multiply(a, b *Matrix, opts ...Option) (*Matrix, error) {
	o := gatherOptions(opts...)
	var (
		res *Matrix
		err error
	)
	switch o.kernel {
	case KernelNaive:
		res, err = MulNaive(a, b)
	case KernelTransposed:
		res, err = Mul(a, b)
	case KernelParallel:
		res, err = MulParallel(a, b, opts...)
	case KernelBLAS:
		res, err = MulBLAS(a, b)
	default:
		err = errors.Wrapf(ErrUnknownKernel, "%d", int(o.kernel))
	}
	if err != nil {
		return nil, matrixErrorf(opMultiply, err)
	}

	return res, nil
}
