// SPDX-License-Identifier: MIT

package vector

import (
	"golang.org/x/exp/rand"

	"github.com/katalvlaran/lvlinalg/internal/rng"
)

// Option configures randomized operations (Random).
type Option func(*options)

type options struct {
	rnd *rand.Rand // nil ⇒ process-global stream
}

// WithRand draws from r instead of the process-global stream.
// r must not be shared across goroutines.
func WithRand(r *rand.Rand) Option {
	return func(o *options) { o.rnd = r }
}

// WithSeed draws from a fresh deterministic stream seeded with seed.
// seed==0 selects a wall-clock seed.
func WithSeed(seed uint64) Option {
	return func(o *options) { o.rnd = rng.New(seed) }
}

func gatherOptions(user ...Option) options {
	var o options
	for _, set := range user {
		set(&o) // last-writer-wins
	}

	return o
}
