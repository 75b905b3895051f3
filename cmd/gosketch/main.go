package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gosketch/internal/app"
	"github.com/philipparndt/gosketch/internal/config"
	"github.com/philipparndt/gosketch/internal/logx"
	"github.com/philipparndt/gosketch/version"
)

var (
	configPath  string
	debug       bool
	width       int
	height      int
	projectPath string

	cfg config.Config
)

var rootCmd = &cobra.Command{
	Use:   "gosketch",
	Short: "Sketch outlines on a ground plane and extrude them into solids",
	Long: `gosketch is a small 3D editor: click points on the ground to sketch a
polygon, extrude it to a given height and move the resulting solids around.
Without a subcommand it opens the editor window.`,
	Version:       version.GetFullVersion(),
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := loadConfig()
		if err != nil {
			return err
		}
		cfg = loaded
		logx.Setup(os.Stderr, debug || cfg.Debug)
		return nil
	},
	RunE: runEditor,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath(), "Path to the TOML config file")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	rootCmd.Flags().IntVar(&width, "width", 0, "Window width (overrides config)")
	rootCmd.Flags().IntVar(&height, "height", 0, "Window height (overrides config)")
	rootCmd.Flags().StringVarP(&projectPath, "project", "p", "", "Project file to open and save to")
}

// loadConfig reads the config file and applies the command line overrides
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, err
	}
	if width > 0 {
		cfg.Window.Width = width
	}
	if height > 0 {
		cfg.Window.Height = height
	}
	return cfg, nil
}

func runEditor(cmd *cobra.Command, args []string) error {
	return app.Run(app.Options{
		Config:     cfg,
		ConfigPath: configPath,
		Project:    projectPath,
	})
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
