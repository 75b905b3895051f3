// Package app is the raylib front end of the editor: it owns the window,
// the orbit camera and the GPU meshes, and feeds mouse and keyboard input
// to the editor.
package app

import (
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/philipparndt/gosketch/internal/config"
	"github.com/philipparndt/gosketch/internal/editor"
	"github.com/philipparndt/gosketch/internal/logx"
)

// DefaultProjectFile is used when no project path is given
const DefaultProjectFile = "sketch.gosketch.json"

// Options configure the editor window
type Options struct {
	Config     config.Config
	ConfigPath string // watched for changes when set
	Project    string // loaded at startup when it exists, target of Save
}

type App struct {
	Camera      CameraState
	View        ViewSettings
	Interaction InteractionState
	UI          UIState
	Config      ConfigState
	Project     ProjectState

	scene    *scene
	editor   *editor.Editor
	material rl.Material
}

// Run opens the editor window and blocks until it is closed
func Run(opts Options) error {
	cfg := opts.Config

	app := &App{
		Config:  ConfigState{path: opts.ConfigPath},
		Project: ProjectState{path: opts.Project, autosave: cfg.Project.Autosave},
	}
	if app.Project.path == "" {
		app.Project.path = DefaultProjectFile
	}
	app.applyConfig(cfg)

	// Initialize window
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagWindowHighdpi | rl.FlagMsaa4xHint) // Must be before InitWindow
	rl.InitWindow(int32(cfg.Window.Width), int32(cfg.Window.Height), cfg.Window.Title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)
	rl.SetExitKey(0) // Escape belongs to the editor

	// Go Regular at a high base size for crisp text when scaled down
	charsToLoad := []rune("0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz!@#$%^&*()_+-=[]{}|;:',.<>?/\\`~\"\t\n ×·↑↓")
	app.UI.font = rl.LoadFontFromMemory(".ttf", goregular.TTF, 96, charsToLoad)
	defer rl.UnloadFont(app.UI.font)

	app.material = rl.LoadMaterialDefault()

	extent := float32(cfg.Grid.Size) * float32(cfg.Grid.Spacing)
	if extent <= 0 {
		extent = 20
	}
	app.setupCamera(extent)

	app.scene = newScene(&app.Camera)
	defer app.scene.unloadAll()

	def, highlight := materials(cfg)
	app.editor = editor.New(app.scene, editor.Options{
		Notifier:          app.notify,
		DefaultMaterial:   def,
		HighlightMaterial: highlight,
	})
	app.bindKeys()

	if _, err := os.Stat(opts.Project); opts.Project != "" && err == nil {
		if err := app.loadProject(opts.Project); err != nil {
			logx.Logger().Warn("project not loaded", "path", opts.Project, "err", err)
			app.notify(fmt.Sprintf("Could not open %s", opts.Project))
		}
	}

	// Set up config hot reload
	if opts.ConfigPath != "" {
		if err := app.setupConfigWatcher(); err != nil {
			logx.Logger().Warn("config hot reload unavailable", "err", err)
		} else {
			defer app.Config.watcher.Close()
		}
	}

	// Main loop
	for !rl.WindowShouldClose() {
		// Check for Ctrl+Q to exit
		ctrlPressed := rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl)
		if ctrlPressed && rl.IsKeyPressed(rl.KeyQ) {
			break
		}

		app.applyPendingConfig()

		// Update
		app.layoutToolbar()
		app.handleInput()
		app.updateCamera()
		app.autosave()

		// Draw
		rl.BeginDrawing()
		rl.ClearBackground(app.View.background)

		rl.BeginMode3D(app.Camera.camera)
		app.drawGrid()
		app.drawSolids()
		app.drawSketch()
		rl.EndMode3D()

		app.drawUI()

		rl.EndDrawing()
	}
	return nil
}

// bindKeys adds the window's own shortcuts to the editor's key router
func (app *App) bindKeys() {
	r := app.editor.Router()
	r.Bind(editor.KeyChord{Key: "d"}, func() { app.report(app.editor.ToggleDrawing()) })
	r.Bind(editor.KeyChord{Key: "c"}, func() { app.editor.CloseShape() })
	r.Bind(editor.KeyChord{Key: "e"}, app.startExtrusion)
	r.Bind(editor.KeyChord{Key: "m"}, func() { app.report(app.editor.ToggleTransform()) })
	r.Bind(editor.KeyChord{Key: "s", Mod: true}, app.saveProject)
	r.Bind(editor.KeyChord{Key: "e", Mod: true}, app.exportSTL)
}
