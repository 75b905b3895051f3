package app

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/philipparndt/gosketch/internal/config"
	"github.com/philipparndt/gosketch/internal/editor"
	"github.com/philipparndt/gosketch/internal/logx"
	"github.com/philipparndt/gosketch/internal/project"
	"github.com/philipparndt/gosketch/pkg/stl"
)

// loadProject restores the solids of a saved project
func (app *App) loadProject(path string) error {
	f, err := project.Load(path)
	if err != nil {
		return err
	}
	solids, err := f.Restore(app.editor)
	if err != nil {
		return err
	}
	logx.Logger().Info("project loaded", "path", path, "solids", len(solids))
	app.Project.savedRevision = app.scene.revision
	return nil
}

// saveProject writes the session to the project path
func (app *App) saveProject() {
	if err := project.Save(app.Project.path, app.editor.Solids()); err != nil {
		app.notify(err.Error())
		return
	}
	app.notify(fmt.Sprintf("Saved %s", app.Project.path))
}

// exportSTL writes all solids next to the project file
func (app *App) exportSTL() {
	path := strings.TrimSuffix(app.Project.path, filepath.Ext(app.Project.path)) + ".stl"
	if err := project.ExportSTL(path, app.editor.Solids(), stl.FormatBinary); err != nil {
		app.notify(err.Error())
		return
	}
	app.notify(fmt.Sprintf("Exported %s", path))
}

// autosave writes the project after solids changed, but not mid-drag
func (app *App) autosave() {
	if app.Project.autosave == "" || app.scene.revision == app.Project.savedRevision || app.editor.Dragging() {
		return
	}
	if err := project.Save(app.Project.autosave, app.editor.Solids()); err != nil {
		logx.Logger().Warn("autosave failed", "path", app.Project.autosave, "err", err)
	}
	app.Project.savedRevision = app.scene.revision
}

// setupConfigWatcher reloads the config file when it changes. The new
// settings are applied on the main thread by applyPendingConfig.
func (app *App) setupConfigWatcher() error {
	fw, err := config.Watch(app.Config.path, func(cfg config.Config) {
		app.Config.mu.Lock()
		app.Config.pending = &cfg
		app.Config.mu.Unlock()
	})
	if err != nil {
		return fmt.Errorf("failed to watch config: %w", err)
	}
	app.Config.watcher = fw
	return nil
}

// applyPendingConfig applies a reloaded config (must be on main thread)
func (app *App) applyPendingConfig() {
	app.Config.mu.Lock()
	pending := app.Config.pending
	app.Config.pending = nil
	app.Config.mu.Unlock()

	if pending != nil {
		app.applyConfig(*pending)
		app.notify("Settings reloaded")
	}
}

// applyConfig copies colours and grid settings into the view and editor
func (app *App) applyConfig(cfg config.Config) {
	app.Config.cfg = cfg
	c := cfg.Colors
	app.View = ViewSettings{
		background:  toColor(c.Background),
		grid:        toColor(c.Grid),
		segment:     toColor(c.Segment),
		vertex:      toColor(c.Vertex),
		gridSize:    cfg.Grid.Size,
		gridSpacing: float32(cfg.Grid.Spacing),
	}
	if app.editor != nil {
		app.editor.SetMaterials(materials(cfg))
	}
}

func toColor(s string) rl.Color {
	return rl.Color(config.RGBA(s))
}

// materials returns the default and highlight materials of a config
func materials(cfg config.Config) (editor.Material, editor.Material) {
	return editor.Material{Name: "default", Color: config.RGBA(cfg.Colors.Solid)},
		editor.Material{Name: "highlight", Color: config.RGBA(cfg.Colors.Highlight)}
}

// startExtrusion opens the height prompt with the configured default
func (app *App) startExtrusion() {
	if err := app.editor.Initiate(); err != nil {
		app.report(err)
		return
	}
	app.UI.heightText = strconv.FormatFloat(app.Config.cfg.Extrude.DefaultHeight, 'f', -1, 64)
}

// confirmHeight submits the height prompt
func (app *App) confirmHeight() {
	height, err := strconv.ParseFloat(strings.TrimSpace(app.UI.heightText), 64)
	if err != nil {
		app.notify(fmt.Sprintf("Invalid height %q", app.UI.heightText))
		return
	}
	_, err = app.editor.Confirm(height)
	app.report(err)
}

// report shows errors the editor did not already announce through the notifier
func (app *App) report(err error) {
	if err == nil {
		return
	}
	if errors.Is(err, editor.ErrTooFewPoints) || errors.Is(err, editor.ErrInvalidHeight) ||
		errors.Is(err, editor.ErrDegenerateOutline) {
		return
	}
	app.notify(err.Error())
}
