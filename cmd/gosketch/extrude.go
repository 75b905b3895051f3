package main

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gosketch/pkg/extrude"
	"github.com/philipparndt/gosketch/pkg/geometry"
	"github.com/philipparndt/gosketch/pkg/stl"
)

var (
	extrudeHeight float64
	extrudeOut    string
	extrudeASCII  bool
)

var extrudeCmd = &cobra.Command{
	Use:     "extrude <x,z> <x,z> <x,z>...",
	Short:   "Extrude an outline given on the command line into an STL file",
	Example: `  gosketch extrude 0,0 4,0 4,2 0,2 --height 1.5 --out box.stl`,
	Args:    cobra.MinimumNArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		outline, err := parsePoints(args)
		if err != nil {
			return err
		}
		name := strings.TrimSuffix(filepath.Base(extrudeOut), filepath.Ext(extrudeOut))
		model, err := extrude.Extrude(name, outline, extrudeHeight)
		if err != nil {
			return err
		}

		format := stl.FormatBinary
		if extrudeASCII {
			format = stl.FormatASCII
		}
		if err := stl.Save(model, extrudeOut, format); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		printTitle(out, "Extruded "+extrudeOut)
		printField(out, "Points:", "%d", len(outline))
		printField(out, "Height:", "%.3f", extrudeHeight)
		printField(out, "Triangles:", "%d", model.TriangleCount())
		printField(out, "Volume:", "%.3f", model.Volume())
		return nil
	},
}

func init() {
	extrudeCmd.Flags().Float64Var(&extrudeHeight, "height", 1, "Extrusion height")
	extrudeCmd.Flags().StringVarP(&extrudeOut, "out", "o", "extruded.stl", "Output STL file")
	extrudeCmd.Flags().BoolVar(&extrudeASCII, "ascii", false, "Write ASCII instead of binary STL")
	rootCmd.AddCommand(extrudeCmd)
}

// parsePoints reads "x,z" ground plane coordinates
func parsePoints(args []string) ([]geometry.Vector3, error) {
	points := make([]geometry.Vector3, 0, len(args))
	for _, arg := range args {
		xs, zs, ok := strings.Cut(arg, ",")
		if !ok {
			return nil, fmt.Errorf("invalid point %q: expected x,z", arg)
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid x in %q: %w", arg, err)
		}
		z, err := strconv.ParseFloat(strings.TrimSpace(zs), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid z in %q: %w", arg, err)
		}
		points = append(points, geometry.GroundPoint(x, z))
	}
	return points, nil
}
