// SPDX-License-Identifier: MIT

package matrix

// Test bridge (white-box) for private kernels and the options snapshot.
// Compiled only with the package's tests, so the production API stays narrow.

// OptionsSnapshot is a read-only view of the effective options.
type OptionsSnapshot struct {
	Workers int
	Kernel  Kernel
	HasRand bool
}

// GatherOptionsSnapshot_TestOnly applies opts over the defaults.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{Workers: o.workers, Kernel: o.kernel, HasRand: o.rnd != nil}
}

var (
	// ExportedMulCells exposes the cell-range kernel shared by Mul and MulParallel.
	ExportedMulCells = mulCells
	// ExportedTransposeData exposes the raw buffer transpose.
	ExportedTransposeData = transposeData
)
