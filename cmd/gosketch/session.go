package main

import (
	"github.com/philipparndt/gosketch/internal/config"
	"github.com/philipparndt/gosketch/internal/editor"
	"github.com/philipparndt/gosketch/internal/headless"
	"github.com/philipparndt/gosketch/internal/logx"
	"github.com/philipparndt/gosketch/internal/plan"
	"github.com/philipparndt/gosketch/internal/project"
)

// materials returns the solid materials of the loaded config
func materials() (editor.Material, editor.Material) {
	return editor.Material{Name: "default", Color: config.RGBA(cfg.Colors.Solid)},
		editor.Material{Name: "highlight", Color: config.RGBA(cfg.Colors.Highlight)}
}

func editorOptions(def, highlight editor.Material) editor.Options {
	return editor.Options{
		Notifier: func(msg string) {
			logx.Logger().Debug("editor notice", "message", msg)
		},
		DefaultMaterial:   def,
		HighlightMaterial: highlight,
	}
}

// planOptions returns the plan style with the configured grid spacing
func planOptions() plan.Options {
	opts := plan.DefaultOptions()
	if cfg.Grid.Spacing > 0 {
		opts.Grid = cfg.Grid.Spacing
	}
	return opts
}

// openProject restores a project file into an editor without a window
func openProject(path string) (*editor.Editor, error) {
	f, err := project.Load(path)
	if err != nil {
		return nil, err
	}
	def, highlight := materials()
	e := editor.New(headless.New(40), editorOptions(def, highlight))
	if _, err := f.Restore(e); err != nil {
		return nil, err
	}
	return e, nil
}
