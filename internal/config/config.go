// Package config loads the editor settings from a TOML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/philipparndt/gosketch/internal/logx"
	"github.com/philipparndt/gosketch/pkg/watcher"
)

// FileName is the name of the config file inside the user config directory
const FileName = "gosketch.toml"

// Config holds all editor settings
type Config struct {
	Debug   bool          `toml:"debug"`
	Window  WindowConfig  `toml:"window"`
	Extrude ExtrudeConfig `toml:"extrude"`
	Grid    GridConfig    `toml:"grid"`
	Colors  ColorConfig   `toml:"colors"`
	Project ProjectConfig `toml:"project"`
}

// WindowConfig is the initial window geometry
type WindowConfig struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
}

// ExtrudeConfig controls the height prompt
type ExtrudeConfig struct {
	DefaultHeight float64 `toml:"default_height"`
	Step          float64 `toml:"step"`
}

// GridConfig controls the ground grid
type GridConfig struct {
	Size    int     `toml:"size"`
	Spacing float64 `toml:"spacing"`
}

// ColorConfig holds colours as #rrggbb or #rrggbbaa strings
type ColorConfig struct {
	Background string `toml:"background"`
	Ground     string `toml:"ground"`
	Grid       string `toml:"grid"`
	Segment    string `toml:"segment"`
	Vertex     string `toml:"vertex"`
	Solid      string `toml:"solid"`
	Highlight  string `toml:"highlight"`
}

// ProjectConfig controls project persistence
type ProjectConfig struct {
	// Autosave is written whenever a solid is created, moved or deleted. Empty disables it.
	Autosave string `toml:"autosave"`
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		Window: WindowConfig{Width: 1280, Height: 800, Title: "GoSketch"},
		Extrude: ExtrudeConfig{
			DefaultHeight: 1.0,
			Step:          0.1,
		},
		Grid: GridConfig{Size: 20, Spacing: 1.0},
		Colors: ColorConfig{
			Background: "#1e1e23",
			Ground:     "#2d2d34",
			Grid:       "#50505a",
			Segment:    "#ffd700",
			Vertex:     "#ff5050",
			Solid:      "#4682b4",
			Highlight:  "#ffa500",
		},
	}
}

// DefaultPath returns the config file location in the user config directory
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return FileName
	}
	return filepath.Join(dir, "gosketch", FileName)
}

// Load reads the config file. A missing file yields the defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		logx.Logger().Debug("no config file, using defaults", "path", path)
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	cfg, err := Decode(bytes.NewReader(data))
	if err != nil {
		return Config{}, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return cfg, nil
}

// Decode parses TOML on top of the defaults and validates the result
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Save writes the config as TOML
func Save(path string, cfg Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Validate checks value ranges and colour syntax
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Extrude.DefaultHeight <= 0 {
		return fmt.Errorf("extrude.default_height must be positive, got %v", c.Extrude.DefaultHeight)
	}
	if c.Extrude.Step <= 0 {
		return fmt.Errorf("extrude.step must be positive, got %v", c.Extrude.Step)
	}
	if c.Grid.Size < 0 || c.Grid.Spacing <= 0 {
		return fmt.Errorf("invalid grid %d x %v", c.Grid.Size, c.Grid.Spacing)
	}

	for name, value := range c.Colors.all() {
		if _, err := ParseColor(value); err != nil {
			return fmt.Errorf("colors.%s: %w", name, err)
		}
	}
	return nil
}

func (c ColorConfig) all() map[string]string {
	return map[string]string{
		"background": c.Background,
		"ground":     c.Ground,
		"grid":       c.Grid,
		"segment":    c.Segment,
		"vertex":     c.Vertex,
		"solid":      c.Solid,
		"highlight":  c.Highlight,
	}
}

// RGBA parses a validated colour, falling back to magenta so mistakes stay visible
func RGBA(s string) color.RGBA {
	c, err := ParseColor(s)
	if err != nil {
		return color.RGBA{R: 255, B: 255, A: 255}
	}
	return c
}

// ParseColor parses #rgb, #rrggbb or #rrggbbaa
func ParseColor(s string) (color.RGBA, error) {
	var c color.RGBA
	c.A = 255

	var err error
	switch len(s) {
	case 4:
		_, err = fmt.Sscanf(s, "#%1x%1x%1x", &c.R, &c.G, &c.B)
		c.R *= 17
		c.G *= 17
		c.B *= 17
	case 7:
		_, err = fmt.Sscanf(s, "#%2x%2x%2x", &c.R, &c.G, &c.B)
	case 9:
		_, err = fmt.Sscanf(s, "#%2x%2x%2x%2x", &c.R, &c.G, &c.B, &c.A)
	default:
		err = fmt.Errorf("expected #rgb, #rrggbb or #rrggbbaa")
	}
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	return c, nil
}

// Watch calls onChange with the reloaded config whenever the file changes.
// Files that fail to load are logged and ignored. Close the returned
// watcher to stop.
func Watch(path string, onChange func(Config)) (*watcher.FileWatcher, error) {
	fw, err := watcher.NewFileWatcher(200 * time.Millisecond)
	if err != nil {
		return nil, err
	}
	err = fw.Watch([]string{path}, func(string) {
		cfg, err := Load(path)
		if err != nil {
			logx.Logger().Warn("config reload failed", "path", path, "err", err)
			return
		}
		logx.Logger().Info("config reloaded", "path", path)
		onChange(cfg)
	})
	if err != nil {
		fw.Close()
		return nil, err
	}
	fw.Start()
	return fw, nil
}
