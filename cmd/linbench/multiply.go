// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlinalg/matrix"
)

type multiplyFlags struct {
	rows, inner, cols int
	kernel            string
	workers           int
	lo, hi            float32
}

func newMultiplyCmd(a *app) *cobra.Command {
	var f multiplyFlags
	cmd := &cobra.Command{
		Use:   "multiply",
		Short: "multiply two random matrices and report timing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMultiply(cmd, a, f)
		},
	}

	fl := cmd.Flags()
	fl.IntVar(&f.rows, "rows", 512, "rows of the left operand")
	fl.IntVar(&f.inner, "inner", 512, "shared dimension")
	fl.IntVar(&f.cols, "cols", 512, "columns of the right operand")
	fl.StringVar(&f.kernel, "kernel", matrix.KernelParallel.String(), "naive, transposed, parallel or blas")
	fl.IntVar(&f.workers, "workers", matrix.DefaultWorkers, "goroutines for the parallel kernel (0 = NumCPU)")
	addRangeFlags(fl, &f.lo, &f.hi)

	return cmd
}

func runMultiply(cmd *cobra.Command, a *app, f multiplyFlags) error {
	kernel, err := matrix.ParseKernel(f.kernel)
	if err != nil {
		return err
	}
	if f.workers < 0 {
		return errors.Newf("--workers must be >= 0, got %d", f.workers)
	}
	r := a.stream()
	lhs, err := matrix.NewRandom(f.rows, f.inner, f.lo, f.hi, matrix.WithRand(r))
	if err != nil {
		return err
	}
	defer lhs.Release()
	rhs, err := matrix.NewRandom(f.inner, f.cols, f.lo, f.hi, matrix.WithRand(r))
	if err != nil {
		return err
	}
	defer rhs.Release()

	start := time.Now()
	res, err := matrix.Multiply(lhs, rhs, matrix.WithKernel(kernel), matrix.WithWorkers(f.workers))
	if err != nil {
		return err
	}
	elapsed := time.Since(start)
	defer res.Release()

	mean, err := res.Mean()
	if err != nil {
		return err
	}
	flops := 2 * float64(f.rows) * float64(f.inner) * float64(f.cols)
	rate := "n/a"
	if elapsed > 0 {
		rate = humanize.SI(flops/elapsed.Seconds(), "FLOP/s")
	}
	a.log.Info().
		Str("kernel", kernel.String()).
		Str("shape", fmt.Sprintf("%dx%d * %dx%d", f.rows, f.inner, f.inner, f.cols)).
		Dur("elapsed", elapsed).
		Str("rate", rate).
		Str("result", humanize.IBytes(uint64(len(res.RawData())*4))).
		Float32("mean", mean).
		Msg("multiply done")

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s %s cells, mean %g, %s\n",
		kernel, humanize.Comma(int64(f.rows*f.cols)), mean, elapsed.Round(time.Microsecond))

	return err
}
