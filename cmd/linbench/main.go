// SPDX-License-Identifier: MIT

// Command linbench drives the matrix kernels from the command line.
//
// Usage:
//
//	linbench multiply --rows 1024 --inner 1024 --cols 1024 --kernel parallel
//	linbench means --rows 100 --cols 4
//	linbench sort --rows 6 --cols 3 --column 1 --desc
//
// Every failure is logged and the process exits with status 1.
package main

import (
	"os"

	"github.com/rs/zerolog"
)

func main() {
	a := &app{log: newLogger(os.Stderr, zerolog.InfoLevel)}
	if err := newRootCmd(a).Execute(); err != nil {
		a.log.Error().Err(err).Msg("linbench failed")
		os.Exit(1)
	}
}
