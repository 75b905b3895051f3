package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gosketch/internal/plan"
)

var (
	planOut      string
	planSize     int
	planNoLabels bool
)

var planCmd = &cobra.Command{
	Use:   "plan <project.json>",
	Short: "Render the footprints of a saved project as a PNG plan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openProject(args[0])
		if err != nil {
			return err
		}
		opts := planOptions()
		opts.Size = planSize
		opts.Labels = !planNoLabels
		if err := plan.SavePNG(planOut, e.Solids(), nil, opts); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), okStyle.Render("Wrote "+planOut))
		return nil
	},
}

func init() {
	planCmd.Flags().StringVarP(&planOut, "out", "o", "plan.png", "Output PNG file")
	planCmd.Flags().IntVar(&planSize, "size", 1024, "Longest image side in pixels")
	planCmd.Flags().BoolVar(&planNoLabels, "no-labels", false, "Omit solid names")
	rootCmd.AddCommand(planCmd)
}
