package main

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gosketch/internal/project"
	"github.com/philipparndt/gosketch/pkg/analysis"
	"github.com/philipparndt/gosketch/pkg/stl"
)

var infoEdges int

var infoCmd = &cobra.Command{
	Use:   "info <file.stl|project.json>",
	Short: "Print measurements of an STL file or a saved project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		out := cmd.OutOrStdout()

		if strings.EqualFold(filepath.Ext(path), ".json") {
			e, err := openProject(path)
			if err != nil {
				return err
			}
			solids := e.Solids()
			printTitle(out, "Project: "+path)
			printField(out, "Solids:", "%d", len(solids))
			for _, s := range solids {
				printSection(out, fmt.Sprintf("%s (%s)", s.Name, s.ID.Short()))
				printField(out, "Height:", "%.3f", s.Height)
				printField(out, "Position:", "%s", analysis.FormatVector(s.Position))
				printReport(out, analysis.Analyze(s.Mesh), 0)
			}
			if len(solids) > 0 {
				printSection(out, "Combined")
				printReport(out, analysis.Analyze(project.Merge("combined", solids)), infoEdges)
			}
			return nil
		}

		model, err := stl.Parse(path)
		if err != nil {
			return fmt.Errorf("failed to parse STL file: %w", err)
		}
		printTitle(out, "STL: "+path)
		printReport(out, analysis.Analyze(model), infoEdges)
		return nil
	},
}

func init() {
	infoCmd.Flags().IntVar(&infoEdges, "edges", 0, "List the n longest edges")
	rootCmd.AddCommand(infoCmd)
}

// printReport writes the measurements of one mesh
func printReport(w io.Writer, r *analysis.Report, edges int) {
	printField(w, "Triangles:", "%d", r.TriangleCount)
	printField(w, "Dimensions:", "%.3f × %.3f × %.3f", r.Dimensions.X, r.Dimensions.Y, r.Dimensions.Z)
	printField(w, "Volume:", "%s", analysis.FormatMeasurement(r.Volume, "units³"))
	printField(w, "Surface area:", "%s", analysis.FormatMeasurement(r.SurfaceArea, "units²"))
	printField(w, "Edges:", "%d (min %.3f, max %.3f)", r.EdgeCount, r.MinEdgeLength, r.MaxEdgeLength)
	if r.Watertight() {
		fmt.Fprintln(w, "  "+labelStyle.Render("Watertight:")+okStyle.Render("yes"))
	} else {
		fmt.Fprintln(w, "  "+labelStyle.Render("Watertight:")+errStyle.Render(fmt.Sprintf("no, %d open edges", r.OpenEdges)))
	}

	if edges <= 0 {
		return
	}
	printSection(w, "Longest edges")
	for i, edge := range r.LongestEdges(edges) {
		fmt.Fprintf(w, "  %2d. %s  %s → %s\n", i+1,
			valueStyle.Render(fmt.Sprintf("%.3f", edge.Length)),
			analysis.FormatVector(edge.Start), analysis.FormatVector(edge.End))
	}
}
