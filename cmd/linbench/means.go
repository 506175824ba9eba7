// SPDX-License-Identifier: MIT

package main

import (
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlinalg/matrix"
)

func newMeansCmd(a *app) *cobra.Command {
	var rows, cols int
	var lo, hi float32
	cmd := &cobra.Command{
		Use:   "means",
		Short: "print the column means of a random matrix",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := matrix.NewRandom(rows, cols, lo, hi, matrix.WithRand(a.stream()))
			if err != nil {
				return err
			}
			defer m.Release()
			means, err := m.ColumnMeans()
			if err != nil {
				return err
			}
			defer means.Release()
			total, err := m.Mean()
			if err != nil {
				return err
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"column", "mean"})
			table.SetAlignment(tablewriter.ALIGN_RIGHT)
			for c, v := range means.Values() {
				table.Append([]string{strconv.Itoa(c), strconv.FormatFloat(float64(v), 'f', 4, 32)})
			}
			table.SetFooter([]string{"all", strconv.FormatFloat(float64(total), 'f', 4, 32)})
			table.Render()

			a.log.Debug().Int("rows", rows).Int("cols", cols).Msg("means printed")
			return nil
		},
	}

	fl := cmd.Flags()
	fl.IntVar(&rows, "rows", 100, "row count")
	fl.IntVar(&cols, "cols", 4, "column count")
	addRangeFlags(fl, &lo, &hi)

	return cmd
}
