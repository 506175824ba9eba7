// Package matrix offers a dense, row-major float32 Matrix and its kernels.
//
// The matrix package provides:
//
//   - Matrix: an owned contiguous buffer of rows*cols float32 values, element
//     (r,c) at offset c + r*cols, with checked At/Set and explicit Release.
//   - Multiplication kernels: MulNaive (row/column dot products), Mul and
//     MulInto (transpose the right operand, then read both operands
//     contiguously), MulParallel (the same kernel over disjoint output cells on
//     a bounded goroutine pool) and MulBLAS (gonum blas32).
//   - Transposition (copy, into a caller buffer, in place), row/column
//     extraction into vector.Vector, subsetting, scalar and element-wise
//     arithmetic, summary statistics, row sampling and row sorting.
//
// Failures never terminate the process: every detected violation (dimension
// mismatch, bad index, oversized sample, use after release) is returned as an
// error wrapping one of the sentinels in errors.go.
//
// See the examples in this package for usage patterns.
package matrix
