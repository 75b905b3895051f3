package app

import (
	"strconv"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/philipparndt/gosketch/internal/editor"
)

// clickThreshold is the distance in pixels below which a press and release count as a click
const clickThreshold = 5.0

// keyNames maps the raylib keys forwarded to the editor's key router
var keyNames = map[int32]string{
	rl.KeyZ:         "z",
	rl.KeyY:         "y",
	rl.KeyD:         "d",
	rl.KeyC:         "c",
	rl.KeyE:         "e",
	rl.KeyM:         "m",
	rl.KeyS:         "s",
	rl.KeyEscape:    "escape",
	rl.KeyDelete:    "delete",
	rl.KeyBackspace: "delete",
}

// handleInput processes user input
func (app *App) handleInput() {
	if app.editor.HeightInputVisible() {
		app.handleHeightInput()
		app.handleKeys(true)
	} else {
		app.handleKeys(false)
	}

	// Camera view preset shortcuts
	if rl.IsKeyPressed(rl.KeyHome) {
		app.resetCameraView()
	}
	if rl.IsKeyPressed(rl.KeyT) && !app.editor.HeightInputVisible() {
		app.setCameraTopView()
	}

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		app.zoomCamera(wheel)
	}

	app.handleMouse()
}

// handleKeys forwards key presses to the editor's router. With chordsOnly
// set, plain keys belong to the height prompt and only modifier chords such
// as undo and redo are forwarded.
func (app *App) handleKeys(chordsOnly bool) {
	mod := rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl) ||
		rl.IsKeyDown(rl.KeyLeftSuper) || rl.IsKeyDown(rl.KeyRightSuper)
	if !forwardKeys(chordsOnly, mod) {
		return
	}
	shift := rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift)

	for key, name := range keyNames {
		if rl.IsKeyPressed(key) {
			app.editor.HandleKey(editor.KeyEvent{Key: name, Mod: mod, Shift: shift})
		}
	}
}

// handleHeightInput edits the height prompt while extruding
func (app *App) handleHeightInput() {
	for ch := rl.GetCharPressed(); ch > 0; ch = rl.GetCharPressed() {
		r := rune(ch)
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			app.UI.heightText += string(r)
		}
	}
	if rl.IsKeyPressed(rl.KeyBackspace) && len(app.UI.heightText) > 0 {
		app.UI.heightText = app.UI.heightText[:len(app.UI.heightText)-1]
	}

	step := app.Config.cfg.Extrude.Step
	if rl.IsKeyPressed(rl.KeyUp) {
		app.stepHeight(step)
	}
	if rl.IsKeyPressed(rl.KeyDown) {
		app.stepHeight(-step)
	}

	if rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter) {
		app.confirmHeight()
	}
	if rl.IsKeyPressed(rl.KeyEscape) {
		app.editor.HandleKey(editor.KeyEvent{Key: "escape"})
	}
}

// forwardKeys reports whether key presses go to the router this frame
func forwardKeys(chordsOnly, mod bool) bool {
	return mod || !chordsOnly
}

func (app *App) stepHeight(delta float64) {
	h, err := strconv.ParseFloat(strings.TrimSpace(app.UI.heightText), 64)
	if err != nil {
		h = app.Config.cfg.Extrude.DefaultHeight
	}
	app.UI.heightText = strconv.FormatFloat(h+delta, 'f', 2, 64)
}

// handleMouse turns mouse polling into editor pointer events. Presses on UI
// controls are consumed; shift or middle drags pan; other drags orbit the
// camera unless it is detached, in which case they go to the editor.
func (app *App) handleMouse() {
	mouse := rl.GetMousePosition()

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		app.Interaction.mouseDownPos = mouse
		app.Interaction.mouseMoved = false
		app.Interaction.pointerDown = false
		app.Interaction.consumed = app.clickButton(mouse)
		app.Interaction.isPanning = rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift)

		if !app.Interaction.consumed && !app.Interaction.isPanning && !app.scene.CameraAttached() {
			app.pointer(editor.PointerDown, mouse)
			app.Interaction.pointerDown = true
		}
	}

	// Camera panning with middle mouse button drag (works in any mode)
	if rl.IsMouseButtonDown(rl.MouseMiddleButton) {
		app.doPan(rl.GetMouseDelta())
	}

	if rl.IsMouseButtonDown(rl.MouseLeftButton) && !app.Interaction.consumed {
		delta := rl.GetMouseDelta()
		if rl.Vector2Distance(app.Interaction.mouseDownPos, mouse) >= clickThreshold {
			app.Interaction.mouseMoved = true
		}
		switch {
		case app.Interaction.isPanning:
			app.doPan(delta)
		case app.Interaction.pointerDown:
			if delta.X != 0 || delta.Y != 0 {
				app.pointer(editor.PointerMove, mouse)
			}
		case app.Interaction.mouseMoved:
			app.rotateCamera(delta)
		}
	}

	if rl.IsMouseButtonReleased(rl.MouseLeftButton) {
		if app.Interaction.consumed {
			app.Interaction.consumed = false
			return
		}
		if app.Interaction.pointerDown {
			app.pointer(editor.PointerUp, mouse)
			app.Interaction.pointerDown = false
		}
		// Less than clickThreshold pixels moved = click
		if !app.Interaction.mouseMoved && !app.Interaction.isPanning {
			app.pointer(editor.PointerClick, mouse)
		}
		app.Interaction.isPanning = false
	}
}

func (app *App) pointer(kind editor.PointerKind, pos rl.Vector2) {
	app.editor.HandlePointer(editor.PointerEvent{Kind: kind, X: float64(pos.X), Y: float64(pos.Y)})
}
