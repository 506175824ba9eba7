// SPDX-License-Identifier: MIT

// Package rng centralizes random number generation for random fills and row sampling.
//
// Two kinds of streams exist:
//   - the process-global stream (golang.org/x/exp/rand top-level functions), seeded once
//     from wall-clock time on first use and safe for concurrent callers;
//   - explicit *rand.Rand streams from New, deterministic for a non-zero seed.
//
// Concurrency:
//   - A *rand.Rand is NOT goroutine-safe. Do not share one across goroutines.
package rng

import (
	"math"
	"sync"
	"time"

	"golang.org/x/exp/rand"
)

var seedOnce sync.Once

// global seeds the package-level generator from wall-clock time exactly once.
func global() {
	seedOnce.Do(func() {
		rand.Seed(clockSeed())
	})
}

// clockSeed never returns 0, so it is always distinguishable from "no seed".
func clockSeed() uint64 {
	s := uint64(time.Now().UnixNano())
	if s == 0 {
		s = 1
	}

	return s
}

// New returns an independent stream.
// Policy: seed==0 ⇒ wall-clock seed; otherwise the seed is used verbatim.
//
// Complexity: O(1).
func New(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = clockSeed()
	}

	return rand.New(rand.NewSource(seed))
}

// Between returns lo + u*(hi-lo) with u uniform in [0,1).
// A nil r draws from the process-global stream.
func Between(r *rand.Rand, lo, hi float32) float32 {
	var u float32
	if r == nil {
		global()
		u = rand.Float32()
	} else {
		u = r.Float32()
	}

	v := lo + u*(hi-lo)
	if v >= hi && hi > lo {
		// float32 rounding can land on hi; keep the interval half-open.
		v = math.Nextafter32(hi, lo)
	}

	return v
}

// Intn returns a uniform int in [0,n). It panics if n <= 0, like rand.Intn.
func Intn(r *rand.Rand, n int) int {
	if r == nil {
		global()
		return rand.Intn(n)
	}

	return r.Intn(n)
}
