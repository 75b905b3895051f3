package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/philipparndt/gosketch/internal/config"
	"github.com/philipparndt/gosketch/internal/editor"
	"github.com/philipparndt/gosketch/internal/logx"
	"github.com/philipparndt/gosketch/internal/project"
	"github.com/philipparndt/gosketch/pkg/stl"
	"github.com/philipparndt/gosketch/pkg/viewer"
	"github.com/philipparndt/gosketch/pkg/watcher"
	"github.com/philipparndt/gosketch/version"
)

type App struct {
	window fyne.Window
	cfg    config.Config
	view   *viewer.SketchView
	editor *editor.Editor

	drawButton    *widget.Button
	closeButton   *widget.Button
	extrudeButton *widget.Button
	moveButton    *widget.Button
	undoButton    *widget.Button
	redoButton    *widget.Button
	deleteButton  *widget.Button

	heightPanel *fyne.Container
	heightEntry *widget.Entry
	statusLabel *widget.Label
	solidsLabel *widget.Label

	configWatcher *watcher.FileWatcher
}

func main() {
	cfgPath := config.DefaultPath()
	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		cfg = config.Default()
	}
	logx.Setup(os.Stderr, cfg.Debug)

	a := app.New()
	w := a.NewWindow(cfg.Window.Title + " " + version.GetVersion())

	appInstance := &App{window: w, cfg: cfg}
	appInstance.setupMainUI()

	// Optional project file to open
	if len(os.Args) > 1 {
		appInstance.openProject(os.Args[1])
	}

	if fw, err := config.Watch(cfgPath, func(c config.Config) {
		fyne.Do(func() { appInstance.applyConfig(c) })
	}); err != nil {
		logx.Logger().Warn("config hot reload unavailable", "err", err)
	} else {
		appInstance.configWatcher = fw
		defer fw.Close()
	}

	w.Resize(fyne.NewSize(float32(cfg.Window.Width), float32(cfg.Window.Height)))
	w.ShowAndRun()
}

func (a *App) setupMainUI() {
	a.view = viewer.NewSketchView(float64(a.cfg.Grid.Size) * a.cfg.Grid.Spacing)
	a.editor = editor.New(a.view, editor.Options{
		Notifier: func(msg string) {
			a.statusLabel.SetText(msg)
			dialog.ShowInformation("GoSketch", msg, a.window)
		},
	})
	a.view.SetEditor(a.editor)
	a.view.SetOnChanged(a.refresh)

	a.statusLabel = widget.NewLabel("")
	a.statusLabel.Wrapping = fyne.TextWrapWord
	a.solidsLabel = widget.NewLabel("")

	a.drawButton = widget.NewButton("Draw", func() { a.run(a.editor.ToggleDrawing()) })
	a.closeButton = widget.NewButton("Close Shape", func() {
		a.editor.CloseShape()
		a.refresh()
	})
	a.extrudeButton = widget.NewButton("Extrude", func() {
		a.run(a.editor.Initiate())
		a.heightEntry.SetText(strconv.FormatFloat(a.cfg.Extrude.DefaultHeight, 'f', -1, 64))
	})
	a.moveButton = widget.NewButton("Move", func() { a.run(a.editor.ToggleTransform()) })
	a.undoButton = widget.NewButton("Undo", func() {
		a.editor.Undo()
		a.refresh()
	})
	a.redoButton = widget.NewButton("Redo", func() {
		a.editor.Redo()
		a.refresh()
	})
	a.deleteButton = widget.NewButton("Delete", func() { a.run(a.editor.Delete()) })

	exportButton := widget.NewButton("Export STL", a.showExportDialog)
	saveButton := widget.NewButton("Save Project", a.showSaveDialog)
	openButton := widget.NewButton("Open Project", a.showOpenDialog)

	// Height prompt shown while extruding
	a.heightEntry = widget.NewEntry()
	a.heightEntry.OnSubmitted = func(string) { a.confirmHeight() }
	a.heightPanel = container.NewVBox(
		widget.NewLabel("Extrusion height:"),
		a.heightEntry,
		container.NewGridWithColumns(2,
			widget.NewButton("Confirm", a.confirmHeight),
			widget.NewButton("Cancel", func() {
				a.editor.Cancel()
				a.refresh()
			}),
		),
	)

	toolbar := container.NewHBox(
		a.drawButton, a.closeButton, a.extrudeButton, a.moveButton,
		widget.NewSeparator(),
		a.undoButton, a.redoButton, a.deleteButton,
		widget.NewSeparator(),
		openButton, saveButton, exportButton,
	)

	instructions := widget.NewLabel(
		"Instructions:\n" +
			"• Draw, then click the ground to add points\n" +
			"• Close Shape and Extrude to create a solid\n" +
			"• Click a solid to select it, Move and drag to place it\n" +
			"• Drag to orbit, scroll to zoom\n" +
			"• Ctrl+Z / Ctrl+Y undo and redo, Esc cancels",
	)
	instructions.Wrapping = fyne.TextWrapWord

	infoPanel := container.NewVBox(
		widget.NewLabel("Solids:"),
		widget.NewSeparator(),
		a.solidsLabel,
		widget.NewSeparator(),
		a.heightPanel,
		widget.NewSeparator(),
		a.statusLabel,
		widget.NewSeparator(),
		instructions,
	)
	infoScroll := container.NewVScroll(infoPanel)
	infoScroll.SetMinSize(fyne.NewSize(280, 0))

	a.window.SetContent(container.NewBorder(toolbar, nil, nil, infoScroll, a.view))
	a.bindKeys()
	a.applyConfig(a.cfg)
	a.refresh()
}

func (a *App) bindKeys() {
	c := a.window.Canvas()
	chord := func(name fyne.KeyName, key string) {
		c.AddShortcut(&desktop.CustomShortcut{KeyName: name, Modifier: fyne.KeyModifierShortcutDefault}, func(fyne.Shortcut) {
			a.editor.HandleKey(editor.KeyEvent{Key: key, Mod: true})
			a.refresh()
		})
	}
	chord(fyne.KeyZ, "z")
	chord(fyne.KeyY, "y")

	c.SetOnTypedKey(func(ev *fyne.KeyEvent) {
		switch ev.Name {
		case fyne.KeyEscape:
			a.editor.HandleKey(editor.KeyEvent{Key: "escape"})
		case fyne.KeyDelete, fyne.KeyBackspace:
			a.editor.HandleKey(editor.KeyEvent{Key: "delete"})
		default:
			return
		}
		a.refresh()
	})
}

func (a *App) confirmHeight() {
	height, err := strconv.ParseFloat(a.heightEntry.Text, 64)
	if err != nil {
		a.statusLabel.SetText(fmt.Sprintf("Invalid height %q", a.heightEntry.Text))
		return
	}
	solid, err := a.editor.Confirm(height)
	if err == nil {
		a.statusLabel.SetText(fmt.Sprintf("Created %s", solid.Name))
	}
	a.run(err)
}

// run shows errors that the editor did not already report through the notifier
func (a *App) run(err error) {
	if err != nil && !errors.Is(err, editor.ErrTooFewPoints) && !errors.Is(err, editor.ErrInvalidHeight) &&
		!errors.Is(err, editor.ErrDegenerateOutline) {
		a.statusLabel.SetText(err.Error())
	}
	a.refresh()
}

// refresh updates button enablement and the solid list from the editor state
func (a *App) refresh() {
	e := a.editor
	flags := e.Flags()

	setEnabled(a.closeButton, e.CanCloseShape())
	setEnabled(a.extrudeButton, e.CanExtrude())
	setEnabled(a.moveButton, e.CanToggleMove())
	setEnabled(a.undoButton, e.CanUndo())
	setEnabled(a.redoButton, e.CanRedo())
	setEnabled(a.deleteButton, e.HasSelection())

	a.drawButton.Importance = widget.MediumImportance
	if flags.DrawingActive {
		a.drawButton.Importance = widget.HighImportance
	}
	a.drawButton.Refresh()
	a.moveButton.Importance = widget.MediumImportance
	if flags.TransformActive {
		a.moveButton.Importance = widget.HighImportance
	}
	a.moveButton.Refresh()

	if e.HeightInputVisible() {
		a.heightPanel.Show()
	} else {
		a.heightPanel.Hide()
	}

	text := ""
	for _, s := range e.Solids() {
		marker := " "
		if sel, ok := e.Selected(); ok && sel.ID == s.ID {
			marker = "*"
		}
		text += fmt.Sprintf("%s %s  h=%.2f  at (%.2f, %.2f)\n", marker, s.Name, s.Height, s.Position.X, s.Position.Z)
	}
	if text == "" {
		text = "none"
	}
	a.solidsLabel.SetText(text)

	a.autosave()
}

func (a *App) autosave() {
	if a.cfg.Project.Autosave == "" || a.editor.Dragging() {
		return
	}
	if err := project.Save(a.cfg.Project.Autosave, a.editor.Solids()); err != nil {
		logx.Logger().Warn("autosave failed", "path", a.cfg.Project.Autosave, "err", err)
	}
}

func (a *App) applyConfig(c config.Config) {
	a.cfg = c
	a.editor.SetMaterials(
		editor.Material{Name: "default", Color: config.RGBA(c.Colors.Solid)},
		editor.Material{Name: "highlight", Color: config.RGBA(c.Colors.Highlight)},
	)
	a.view.SetColors(viewer.Colors{
		Background: config.RGBA(c.Colors.Background),
		Grid:       config.RGBA(c.Colors.Grid),
		Segment:    config.RGBA(c.Colors.Segment),
		Vertex:     config.RGBA(c.Colors.Vertex),
	})
	a.view.SetGrid(c.Grid.Size, c.Grid.Spacing)
}

func (a *App) openProject(path string) {
	f, err := project.Load(path)
	if err != nil {
		dialog.ShowError(err, a.window)
		return
	}
	if _, err := f.Restore(a.editor); err != nil {
		dialog.ShowError(err, a.window)
	}
	a.refresh()
}

func (a *App) showOpenDialog() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		if reader == nil {
			return
		}
		defer reader.Close()
		a.openProject(reader.URI().Path())
	}, a.window)
}

func (a *App) showSaveDialog() {
	dialog.ShowFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		if writer == nil {
			return
		}
		path := writer.URI().Path()
		writer.Close()
		if err := project.Save(path, a.editor.Solids()); err != nil {
			dialog.ShowError(err, a.window)
		}
	}, a.window)
}

func (a *App) showExportDialog() {
	dialog.ShowFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		if writer == nil {
			return
		}
		path := writer.URI().Path()
		writer.Close()
		if err := project.ExportSTL(path, a.editor.Solids(), stl.FormatBinary); err != nil {
			dialog.ShowError(err, a.window)
		}
	}, a.window)
}

func setEnabled(b *widget.Button, enabled bool) {
	if enabled {
		b.Enable()
	} else {
		b.Disable()
	}
}
