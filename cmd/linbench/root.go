// SPDX-License-Identifier: MIT

package main

import (
	"io"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/exp/rand"

	"github.com/katalvlaran/lvlinalg/internal/rng"
)

// app holds state shared by all subcommands after flag parsing.
type app struct {
	seed     uint64
	logLevel string
	log      zerolog.Logger
}

// stream returns a random stream for one subcommand run. seed 0 selects wall-clock seeding.
func (a *app) stream() *rand.Rand { return rng.New(a.seed) }

func newLogger(w io.Writer, lvl zerolog.Level) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).
		Level(lvl).
		With().Timestamp().Logger()
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "linbench",
		Short:         "exercise the dense float32 matrix kernels",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			lvl, err := zerolog.ParseLevel(a.logLevel)
			if err != nil {
				return errors.Wrapf(err, "--log-level %q", a.logLevel)
			}
			a.log = newLogger(cmd.ErrOrStderr(), lvl)
			a.log.Debug().Uint64("seed", a.seed).Msg("configured")
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.Uint64Var(&a.seed, "seed", 0, "random seed (0 = wall clock)")
	pf.StringVar(&a.logLevel, "log-level", "info", "zerolog level: debug, info, warn, error")

	root.AddCommand(
		newMultiplyCmd(a),
		newMeansCmd(a),
		newSortCmd(a),
	)

	return root
}

// addRangeFlags registers --lo/--hi bounds for random fills.
func addRangeFlags(fs *pflag.FlagSet, lo, hi *float32) {
	fs.Float32Var(lo, "lo", 1, "lower bound of random values")
	fs.Float32Var(hi, "hi", 5, "upper bound of random values")
}
