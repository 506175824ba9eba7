// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlinalg/matrix"
)

func newSortCmd(a *app) *cobra.Command {
	var rows, cols, column int
	var desc bool
	cmd := &cobra.Command{
		Use:   "sort",
		Short: "print a random matrix before and after sorting its rows by one column",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := matrix.NewRandom(rows, cols, 0, 10, matrix.WithRand(a.stream()))
			if err != nil {
				return err
			}
			defer m.Release()

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "before:")
			if err = m.Print(out); err != nil {
				return err
			}
			if err = m.SortRows(column, desc); err != nil {
				return err
			}
			fmt.Fprintln(out, "after:")
			return m.Print(out)
		},
	}

	fl := cmd.Flags()
	fl.IntVar(&rows, "rows", 6, "row count")
	fl.IntVar(&cols, "cols", 3, "column count")
	fl.IntVar(&column, "column", 0, "sort key column")
	fl.BoolVar(&desc, "desc", false, "sort descending")

	return cmd
}
