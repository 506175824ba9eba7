// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the kernels and options.
package matrix

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// Kernel selects a multiplication algorithm for Multiply.
type Kernel int

const (
	// KernelNaive extracts a row and a column per output cell and takes their dot product.
	KernelNaive Kernel = iota
	// KernelTransposed transposes the right operand first so every inner access is contiguous.
	KernelTransposed
	// KernelParallel is KernelTransposed with output cells split across goroutines.
	KernelParallel
	// KernelBLAS delegates to gonum's blas32.Gemm.
	KernelBLAS

	kernelCount // sentinel; keep last
)

var kernelNames = [kernelCount]string{
	KernelNaive:      "naive",
	KernelTransposed: "transposed",
	KernelParallel:   "parallel",
	KernelBLAS:       "blas",
}

func (k Kernel) valid() bool { return k >= 0 && k < kernelCount }

// String returns the kernel's flag name.
func (k Kernel) String() string {
	if !k.valid() {
		return "unknown"
	}

	return kernelNames[k]
}

// ParseKernel maps a flag name (case-insensitive) to a Kernel.
// "transpose" is accepted as an alias of "transposed".
func ParseKernel(name string) (Kernel, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "transpose" {
		return KernelTransposed, nil
	}
	for k, s := range kernelNames {
		if s == n {
			return Kernel(k), nil
		}
	}

	return 0, errors.Wrapf(ErrUnknownKernel, "%q", name)
}
