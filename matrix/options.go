// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for kernels and randomized
// operations. This file defines:
//   - Option / options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.
package matrix

import (
	"runtime"

	"golang.org/x/exp/rand"

	"github.com/katalvlaran/lvlinalg/internal/rng"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultWorkers selects runtime.NumCPU() goroutines for MulParallel.
	DefaultWorkers = 0

	// DefaultKernel is the kernel used by Multiply when WithKernel is absent.
	DefaultKernel = KernelTransposed
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicWorkersInvalid = "matrix: WithWorkers: workers must be >= 0"
	panicKernelInvalid  = "matrix: WithKernel: unknown kernel"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors panic only on nonsensical values (programmer error).
type Option func(*options)

// options stores the effective configuration after applying Option setters.
type options struct {
	workers int        // >= 1 after finalizeOptions
	kernel  Kernel     // DefaultKernel
	rnd     *rand.Rand // nil ⇒ process-global stream
}

// WithWorkers sets the goroutine count for MulParallel.
// 0 means runtime.NumCPU(); negative values panic.
func WithWorkers(n int) Option {
	if n < 0 {
		panic(panicWorkersInvalid)
	}

	return func(o *options) { o.workers = n }
}

// WithKernel selects the multiplication kernel used by Multiply.
func WithKernel(k Kernel) Option {
	if !k.valid() {
		panic(panicKernelInvalid)
	}

	return func(o *options) { o.kernel = k }
}

// WithRand draws random values (Random, Sample) from r instead of the
// process-global stream. r must not be shared across goroutines.
func WithRand(r *rand.Rand) Option {
	return func(o *options) { o.rnd = r }
}

// WithSeed draws random values from a fresh deterministic stream.
// seed==0 selects a wall-clock seed.
func WithSeed(seed uint64) Option {
	return func(o *options) { o.rnd = rng.New(seed) }
}

// gatherOptions applies user-provided setters on top of defaults and
// finalizes derived invariants.
func gatherOptions(user ...Option) options {
	o := options{
		workers: DefaultWorkers,
		kernel:  DefaultKernel,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}
	finalizeOptions(&o)

	return o
}

// finalizeOptions enforces derived invariants in exactly one place.
func finalizeOptions(o *options) {
	if o.workers == 0 {
		o.workers = runtime.NumCPU()
	}
}
