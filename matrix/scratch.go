// SPDX-License-Identifier: MIT

package matrix

import "sync"

// scratchPool recycles float32 buffers for transposed operands, in-place
// transposition and row sorting.
var scratchPool = sync.Pool{
	New: func() any { return new([]float32) },
}

// getScratch returns a buffer of length n. Contents are undefined.
func getScratch(n int) *[]float32 {
	p := scratchPool.Get().(*[]float32)
	if cap(*p) < n {
		*p = make([]float32, n)
	}
	*p = (*p)[:n]

	return p
}

// putScratch hands p back to the pool. p must not be used afterwards.
func putScratch(p *[]float32) {
	scratchPool.Put(p)
}
