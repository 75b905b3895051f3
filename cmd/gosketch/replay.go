package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gosketch/internal/plan"
	"github.com/philipparndt/gosketch/internal/project"
	"github.com/philipparndt/gosketch/internal/script"
	"github.com/philipparndt/gosketch/pkg/stl"
)

var (
	replaySTL     string
	replayASCII   bool
	replayPNG     string
	replayProject string
	replayExtent  float64
	replayStrict  bool
)

var replayCmd = &cobra.Command{
	Use:   "replay <script>",
	Short: "Replay an editor session without a window",
	Long: `Replay an editor session written as one command per line and write
the resulting solids.

Commands: draw, click x z, undo, redo, close, extrude, height h, cancel,
move, select x z, drag x1 z1 x2 z2, deselect, delete, clear.
Coordinates are world x and z on the ground plane.`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().StringVar(&replaySTL, "stl", "", "Write all solids to this STL file")
	replayCmd.Flags().BoolVar(&replayASCII, "ascii", false, "Write ASCII instead of binary STL")
	replayCmd.Flags().StringVar(&replayPNG, "png", "", "Write a top-down plan to this PNG file")
	replayCmd.Flags().StringVarP(&replayProject, "project", "p", "", "Write the solids to this project file")
	replayCmd.Flags().Float64Var(&replayExtent, "extent", 40, "Visible ground extent of the virtual camera")
	replayCmd.Flags().BoolVar(&replayStrict, "strict", false, "Fail when any command is rejected")
	rootCmd.AddCommand(replayCmd)
}

func runReplay(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open script: %w", err)
	}
	defer f.Close()

	cmds, err := script.Parse(f)
	if err != nil {
		return err
	}

	def, highlight := materials()
	runner := script.NewRunner(replayExtent, editorOptions(def, highlight))
	runner.Run(cmds)

	out := cmd.OutOrStdout()
	printTitle(out, "Replay: "+args[0])
	printField(out, "Commands:", "%d", len(cmds))
	printField(out, "Mode:", "%s", runner.Editor.Mode())
	printField(out, "Solids:", "%d", len(runner.Editor.Solids()))
	if n := len(runner.Editor.Points()); n > 0 {
		printField(out, "Open sketch:", "%d points", n)
	}

	if len(runner.Failures) > 0 {
		printSection(out, "Rejected commands")
		for _, failure := range runner.Failures {
			fmt.Fprintln(out, "  "+warnStyle.Render(failure.Error()))
		}
	}

	solids := runner.Editor.Solids()
	if replaySTL != "" {
		format := stl.FormatBinary
		if replayASCII {
			format = stl.FormatASCII
		}
		if err := project.ExportSTL(replaySTL, solids, format); err != nil {
			return err
		}
		printField(out, "STL:", "%s", replaySTL)
	}
	if replayProject != "" {
		if err := project.Save(replayProject, solids); err != nil {
			return err
		}
		printField(out, "Project:", "%s", replayProject)
	}
	if replayPNG != "" {
		if err := plan.SavePNG(replayPNG, solids, runner.Editor.Points(), planOptions()); err != nil {
			return err
		}
		printField(out, "Plan:", "%s", replayPNG)
	}

	if replayStrict && len(runner.Failures) > 0 {
		return fmt.Errorf("%d commands were rejected", len(runner.Failures))
	}
	return nil
}
