package config

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestDecodeOverridesDefaults(t *testing.T) {
	cfg, err := Decode(strings.NewReader(`
debug = true

[window]
width = 640

[extrude]
default_height = 2.5

[colors]
highlight = "#f00"
`))
	require.NoError(t, err)

	assert.True(t, cfg.Debug)
	assert.Equal(t, 640, cfg.Window.Width)
	assert.Equal(t, 800, cfg.Window.Height)
	assert.Equal(t, 2.5, cfg.Extrude.DefaultHeight)
	assert.Equal(t, 0.1, cfg.Extrude.Step)
	assert.Equal(t, color.RGBA{R: 255, A: 255}, RGBA(cfg.Colors.Highlight))
}

func TestDecodeRejectsBadInput(t *testing.T) {
	tests := map[string]string{
		"unknown key":  "colour = 1",
		"bad height":   "[extrude]\ndefault_height = -1",
		"bad colour":   "[colors]\nsolid = \"blue\"",
		"bad syntax":   "[window",
		"zero spacing": "[grid]\nspacing = 0",
	}
	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(input))
			assert.Error(t, err)
		})
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", FileName)
	cfg := Default()
	cfg.Grid.Size = 42
	cfg.Project.Autosave = "/tmp/autosave.json"

	require.NoError(t, Save(path, cfg))
	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#4682b4")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0x46, G: 0x82, B: 0xb4, A: 255}, c)

	c, err = ParseColor("#11223380")
	require.NoError(t, err)
	assert.Equal(t, uint8(0x80), c.A)

	_, err = ParseColor("4682b4")
	assert.Error(t, err)
	assert.Equal(t, color.RGBA{R: 255, B: 255, A: 255}, RGBA("nope"))
}

func TestWatchReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, Save(path, Default()))

	reloaded := make(chan Config, 4)
	fw, err := Watch(path, func(cfg Config) { reloaded <- cfg })
	require.NoError(t, err)
	t.Cleanup(func() { fw.Close() })

	require.NoError(t, os.WriteFile(path, []byte("[grid]\nsize = 7\n"), 0o644))

	select {
	case cfg := <-reloaded:
		assert.Equal(t, 7, cfg.Grid.Size)
	case <-time.After(5 * time.Second):
		t.Fatal("config was not reloaded")
	}
}
