// Package editor is the interaction core of the sketch-and-extrude editor.
// It owns the sketch, the mode and the solid registry, and drives a Scene
// implemented by a rendering front end. All methods are meant to be called
// from a single goroutine, the front end's event loop.
package editor

import (
	"github.com/philipparndt/gosketch/internal/logx"
	"github.com/philipparndt/gosketch/pkg/sketch"
)

// Options configure an Editor
type Options struct {
	Notifier          Notifier
	DefaultMaterial   Material
	HighlightMaterial Material
}

// Flags is the boolean view of the editor state used by toolbar UIs
type Flags struct {
	DrawingActive   bool
	TransformActive bool
	ShapeClosed     bool
}

// Editor ties the sketch, extrusion and selection handlers to a Scene
type Editor struct {
	scene    Scene
	notify   Notifier
	modes    *ModeController
	router   *Router
	registry *Registry

	ledger   sketch.Ledger
	segments sketch.Tracker
	closed   bool

	defaultMaterial   Material
	highlightMaterial Material

	selected SolidID
	drag     dragSession
	created  int
}

// New creates an editor in ModeIdle bound to scene
func New(scene Scene, opts Options) *Editor {
	e := &Editor{
		scene:             scene,
		notify:            opts.Notifier,
		router:            NewRouter(),
		registry:          NewRegistry(),
		defaultMaterial:   opts.DefaultMaterial,
		highlightMaterial: opts.HighlightMaterial,
	}
	if e.defaultMaterial == (Material{}) {
		e.defaultMaterial = DefaultMaterial
	}
	if e.highlightMaterial == (Material{}) {
		e.highlightMaterial = HighlightMaterial
	}
	if e.notify == nil {
		e.notify = func(string) {}
	}

	e.modes = NewModeController(scene, e.HasSelection)
	e.modes.OnChange(e.modeChanged)

	e.router.Register(ModeIdle, PointerHandlerFunc(e.handleIdlePointer))
	e.router.Register(ModeDrawing, PointerHandlerFunc(e.handleDrawingPointer))
	e.router.Register(ModeMoving, PointerHandlerFunc(e.handleMovingPointer))

	e.router.Bind(KeyChord{Key: "z", Mod: true}, func() { e.Undo() })
	e.router.Bind(KeyChord{Key: "y", Mod: true}, func() { e.Redo() })
	e.router.Bind(KeyChord{Key: "escape"}, e.escape)
	e.router.Bind(KeyChord{Key: "delete"}, func() { _ = e.Delete() })

	return e
}

// Router returns the input router front ends forward events to
func (e *Editor) Router() *Router {
	return e.router
}

// HandlePointer forwards a pointer event to the active mode's handler
func (e *Editor) HandlePointer(ev PointerEvent) bool {
	return e.router.Dispatch(ev)
}

// HandleKey runs the key binding for ev
func (e *Editor) HandleKey(ev KeyEvent) KeyResult {
	return e.router.DispatchKey(ev)
}

// Mode returns the current interaction mode
func (e *Editor) Mode() Mode {
	return e.modes.Mode()
}

// ToggleDrawing enters drawing mode, or leaves it when drawing or extruding
func (e *Editor) ToggleDrawing() error {
	switch e.modes.Mode() {
	case ModeDrawing, ModeExtruding:
		return e.modes.Transition(ModeIdle)
	default:
		return e.modes.Transition(ModeDrawing)
	}
}

// ToggleTransform enters move mode, or leaves it when already moving
func (e *Editor) ToggleTransform() error {
	if e.modes.Mode() == ModeMoving {
		return e.modes.Transition(ModeIdle)
	}
	return e.modes.Transition(ModeMoving)
}

// Flags reports the editor state as toolbar booleans
func (e *Editor) Flags() Flags {
	mode := e.modes.Mode()
	return Flags{
		DrawingActive:   mode == ModeDrawing || mode == ModeExtruding,
		TransformActive: mode == ModeMoving,
		ShapeClosed:     e.closed,
	}
}

// CanToggleMove reports whether the move toggle is enabled
func (e *Editor) CanToggleMove() bool {
	return e.modes.Mode() == ModeMoving || e.modes.CanTransition(ModeMoving)
}

// CanExtrude reports whether the extrude button is enabled
func (e *Editor) CanExtrude() bool {
	return e.modes.Mode() == ModeDrawing
}

// CanCloseShape reports whether the close button is enabled
func (e *Editor) CanCloseShape() bool {
	return !e.closed && e.ledger.Len() >= 3
}

// CanUndo reports whether undo would change the sketch
func (e *Editor) CanUndo() bool {
	return e.closed || e.ledger.CanUndo()
}

// CanRedo reports whether redo would change the sketch
func (e *Editor) CanRedo() bool {
	return !e.closed && e.ledger.CanRedo()
}

// HeightInputVisible reports whether the extrusion height prompt is shown
func (e *Editor) HeightInputVisible() bool {
	return e.modes.Mode() == ModeExtruding
}

// Solids returns all solids in creation order
func (e *Editor) Solids() []*Solid {
	return e.registry.All()
}

// Solid looks up a solid by id
func (e *Editor) Solid(id SolidID) (*Solid, bool) {
	return e.registry.Get(id)
}

// SetMaterials changes the default and highlight materials and reapplies
// them to every solid
func (e *Editor) SetMaterials(def, highlight Material) {
	e.defaultMaterial = def
	e.highlightMaterial = highlight
	for _, s := range e.registry.All() {
		s.DefaultMaterial = def
		if s.ID == e.selected {
			s.Material = highlight
		} else {
			s.Material = def
		}
		e.scene.UpdateSolid(s)
	}
}

func (e *Editor) modeChanged(from, to Mode) {
	e.router.SetMode(to)
	if from == ModeMoving {
		e.DragEnd()
	}
}

func (e *Editor) escape() {
	switch e.modes.Mode() {
	case ModeExtruding:
		e.Cancel()
	default:
		e.Deselect()
	}
}

func (e *Editor) handleIdlePointer(ev PointerEvent) {
	if ev.Kind != PointerClick {
		return
	}
	e.SelectOnClick(e.scene.Pick(ev.X, ev.Y, PickAny))
}

func (e *Editor) handleDrawingPointer(ev PointerEvent) {
	if ev.Kind != PointerClick {
		return
	}
	pick := e.scene.Pick(ev.X, ev.Y, PickGround)
	if !pick.Hit || !pick.Ground {
		logx.Logger().Debug("click missed the ground", "x", ev.X, "y", ev.Y)
		return
	}
	e.OnGroundClick(pick.Point)
}

func (e *Editor) handleMovingPointer(ev PointerEvent) {
	switch ev.Kind {
	case PointerDown:
		e.DragStart(ev.X, ev.Y, e.scene.Pick(ev.X, ev.Y, PickAny))
	case PointerMove:
		e.DragMove(ev.X, ev.Y)
	case PointerUp:
		e.DragEnd()
	}
}
