// Package lvlinalg is a small dense linear-algebra toolkit built around one
// idea: multiply matrices fast by transposing the right operand first.
//
// What is inside?
//
//	• vector/        fixed-length float32 Vector: dot product, scalar and
//	                 element-wise arithmetic, random fill, sum and mean
//	• matrix/        row-major float32 Matrix: checked access, row/column
//	                 extraction, subsetting, transposition, statistics,
//	                 row sampling, row sorting and the multiplication
//	                 kernels (naive, transposed, parallel, BLAS)
//	• cmd/linbench/  command-line driver timing the kernels
//
// Errors, never exits:
//
//	Every violated precondition (dimension mismatch, bad index, oversized
//	sample, use after Release) is returned as an error wrapping a package
//	sentinel; match it with errors.Is.
//
// Quick start:
//
//	a, _ := matrix.NewRandom(512, 256, 1, 5)
//	b, _ := matrix.NewRandom(256, 128, 1, 5)
//	c, err := matrix.MulParallel(a, b, matrix.WithWorkers(8))
package lvlinalg
