package app

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/philipparndt/gosketch/internal/editor"
	"github.com/philipparndt/gosketch/pkg/analysis"
	"github.com/philipparndt/gosketch/pkg/stl"
	"github.com/philipparndt/gosketch/version"
)

const noticeDuration = 4 * time.Second

// button is a toolbar control laid out every frame
type button struct {
	label   string
	bounds  rl.Rectangle
	enabled bool
	active  bool
	action  func()
}

// layoutToolbar rebuilds the toolbar from the editor state
func (app *App) layoutToolbar() {
	e := app.editor
	flags := e.Flags()
	specs := []button{
		{label: "Draw [D]", enabled: true, active: flags.DrawingActive, action: func() { app.report(e.ToggleDrawing()) }},
		{label: "Close [C]", enabled: e.CanCloseShape(), action: func() { e.CloseShape() }},
		{label: "Extrude [E]", enabled: e.CanExtrude(), action: app.startExtrusion},
		{label: "Move [M]", enabled: e.CanToggleMove(), active: flags.TransformActive, action: func() { app.report(e.ToggleTransform()) }},
		{label: "Undo", enabled: e.CanUndo(), action: func() { e.Undo() }},
		{label: "Redo", enabled: e.CanRedo(), action: func() { e.Redo() }},
		{label: "Delete", enabled: e.HasSelection(), action: func() { app.report(e.Delete()) }},
		{label: "Save", enabled: true, action: app.saveProject},
		{label: "Export STL", enabled: len(e.Solids()) > 0, action: app.exportSTL},
	}

	x := float32(10)
	for i := range specs {
		size := rl.MeasureTextEx(app.UI.font, specs[i].label, 16, 1)
		specs[i].bounds = rl.Rectangle{X: x, Y: 10, Width: size.X + 20, Height: 30}
		x += specs[i].bounds.Width + 6
	}
	app.UI.buttons = specs
}

// clickButton runs the action of the enabled button under pos
func (app *App) clickButton(pos rl.Vector2) bool {
	for _, b := range app.UI.buttons {
		if rl.CheckCollisionPointRec(pos, b.bounds) {
			if b.enabled {
				b.action()
			}
			return true
		}
	}
	return rl.CheckCollisionPointRec(pos, app.heightPromptBounds()) && app.editor.HeightInputVisible()
}

// notify shows a message for a few seconds
func (app *App) notify(msg string) {
	app.UI.notice = msg
	app.UI.noticeAt = time.Now()
}

// drawUI draws the user interface
func (app *App) drawUI() {
	fontSize16 := float32(16)
	fontSize14 := float32(14)
	fontSize12 := float32(12)
	lineHeight := float32(20)

	screenWidth := float32(rl.GetScreenWidth())
	screenHeight := float32(rl.GetScreenHeight())
	mouse := rl.GetMousePosition()

	// Toolbar
	for _, b := range app.UI.buttons {
		bg := rl.NewColor(40, 44, 56, 230)
		fg := rl.White
		switch {
		case !b.enabled:
			fg = rl.NewColor(110, 110, 120, 255)
		case b.active:
			bg = rl.NewColor(60, 100, 170, 240)
		case rl.CheckCollisionPointRec(mouse, b.bounds):
			bg = rl.NewColor(60, 66, 84, 240)
		}
		rl.DrawRectangleRounded(b.bounds, 0.3, 8, bg)
		rl.DrawRectangleRoundedLines(b.bounds, 0.3, 8, rl.NewColor(80, 90, 120, 255))
		rl.DrawTextEx(app.UI.font, b.label, rl.Vector2{X: b.bounds.X + 10, Y: b.bounds.Y + 7}, fontSize16, 1, fg)
	}

	// === MODE ===
	y := float32(55)
	rl.DrawTextEx(app.UI.font, fmt.Sprintf("Mode: %s", app.editor.Mode()), rl.Vector2{X: 10, Y: y}, fontSize16, 1, rl.Yellow)
	y += lineHeight
	if n := len(app.editor.Points()); n > 0 {
		closed := ""
		if app.editor.ShapeClosed() {
			closed = " (closed)"
		}
		rl.DrawTextEx(app.UI.font, fmt.Sprintf("  Sketch: %d points%s", n, closed), rl.Vector2{X: 10, Y: y}, fontSize14, 1, rl.White)
		y += lineHeight
	}

	// === SOLIDS ===
	y += lineHeight / 2
	rl.DrawTextEx(app.UI.font, "Solids:", rl.Vector2{X: 10, Y: y}, fontSize16, 1, rl.Yellow)
	y += lineHeight
	selected, hasSelection := app.editor.Selected()
	for _, s := range app.editor.Solids() {
		col := rl.White
		if hasSelection && s.ID == selected.ID {
			col = rl.Orange
		}
		text := fmt.Sprintf("  %s  h=%.2f  (%.2f, %.2f)", s.Name, s.Height, s.Position.X, s.Position.Z)
		rl.DrawTextEx(app.UI.font, text, rl.Vector2{X: 10, Y: y}, fontSize14, 1, col)
		y += lineHeight
	}

	// === SELECTION ===
	if hasSelection {
		report := app.selectionReport(selected.ID, selected.Mesh)
		y += lineHeight / 2
		rl.DrawTextEx(app.UI.font, "Selection:", rl.Vector2{X: 10, Y: y}, fontSize16, 1, rl.Yellow)
		y += lineHeight
		lines := []string{
			fmt.Sprintf("  %s (%s)", selected.Name, selected.ID.Short()),
			fmt.Sprintf("  Size: %.2f × %.2f × %.2f", report.Dimensions.X, report.Dimensions.Y, report.Dimensions.Z),
			fmt.Sprintf("  Volume: %.2f", report.Volume),
			fmt.Sprintf("  Surface Area: %.2f", report.SurfaceArea),
			fmt.Sprintf("  Triangles: %d", report.TriangleCount),
		}
		for _, line := range lines {
			rl.DrawTextEx(app.UI.font, line, rl.Vector2{X: 10, Y: y}, fontSize14, 1, rl.White)
			y += lineHeight
		}
	}

	// Height prompt
	if app.editor.HeightInputVisible() {
		box := app.heightPromptBounds()
		rl.DrawRectangleRounded(box, 0.15, 8, rl.NewColor(0, 0, 0, 210))
		rl.DrawRectangleRoundedLines(box, 0.15, 8, rl.Yellow)
		rl.DrawTextEx(app.UI.font, "Extrusion height:", rl.Vector2{X: box.X + 12, Y: box.Y + 10}, fontSize16, 1, rl.Yellow)
		cursor := ""
		if int(rl.GetTime()*2)%2 == 0 {
			cursor = "_"
		}
		rl.DrawTextEx(app.UI.font, app.UI.heightText+cursor, rl.Vector2{X: box.X + 12, Y: box.Y + 34}, fontSize16, 1, rl.White)
		rl.DrawTextEx(app.UI.font, "Enter confirm · Esc cancel · ↑/↓ step", rl.Vector2{X: box.X + 12, Y: box.Y + 60}, fontSize12, 1, rl.LightGray)
	}

	// Notice (bottom center)
	if app.UI.notice != "" && time.Since(app.UI.noticeAt) < noticeDuration {
		size := rl.MeasureTextEx(app.UI.font, app.UI.notice, fontSize16, 1)
		box := rl.Rectangle{X: (screenWidth-size.X)/2 - 12, Y: screenHeight - size.Y - 50, Width: size.X + 24, Height: size.Y + 16}
		rl.DrawRectangleRounded(box, 0.3, 8, rl.NewColor(120, 30, 30, 220))
		rl.DrawTextEx(app.UI.font, app.UI.notice, rl.Vector2{X: box.X + 12, Y: box.Y + 8}, fontSize16, 1, rl.White)
	}

	// Help and version (bottom)
	help := "Left drag: orbit · Shift/middle drag: pan · Wheel: zoom · T: top view · Home: reset · Ctrl+Z/Y: undo/redo · Ctrl+S: save"
	rl.DrawTextEx(app.UI.font, help, rl.Vector2{X: 10, Y: screenHeight - 24}, fontSize12, 1, rl.Gray)
	versionText := version.GetVersion()
	versionWidth := rl.MeasureTextEx(app.UI.font, versionText, fontSize12, 1).X
	rl.DrawTextEx(app.UI.font, versionText, rl.Vector2{X: screenWidth - versionWidth - 10, Y: screenHeight - 24}, fontSize12, 1, rl.Gray)
}

func (app *App) heightPromptBounds() rl.Rectangle {
	screenWidth := float32(rl.GetScreenWidth())
	return rl.Rectangle{X: screenWidth - 300, Y: 55, Width: 290, Height: 84}
}

// selectionReport caches the analysis of the selected solid's mesh. Meshes
// never change after extrusion, so the id is a sufficient key.
func (app *App) selectionReport(id editor.SolidID, mesh *stl.Model) *analysis.Report {
	if app.UI.reportID != id || app.UI.report == nil {
		app.UI.reportID = id
		app.UI.report = analysis.Analyze(mesh)
	}
	return app.UI.report
}
