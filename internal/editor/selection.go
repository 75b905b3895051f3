package editor

import (
	"fmt"

	"github.com/philipparndt/gosketch/internal/logx"
	"github.com/philipparndt/gosketch/pkg/geometry"
)

// dragSession is the transient state of a move gesture
type dragSession struct {
	active bool
	offset geometry.Vector3 // solid position minus ground point at drag start
}

// Selected returns the selected solid, if any
func (e *Editor) Selected() (*Solid, bool) {
	if e.selected == "" {
		return nil, false
	}
	return e.registry.Get(e.selected)
}

// HasSelection reports whether a solid is selected
func (e *Editor) HasSelection() bool {
	_, ok := e.Selected()
	return ok
}

// Dragging reports whether a move gesture is in progress
func (e *Editor) Dragging() bool {
	return e.drag.active
}

// SelectOnClick selects the solid under the pointer. Misses and ground hits
// keep the current selection.
func (e *Editor) SelectOnClick(pick PickResult) bool {
	if !pick.Hit || pick.Ground || pick.Solid == "" {
		return false
	}
	if pick.Solid == e.selected {
		return false
	}
	return e.ApplyHighlight(pick.Solid) == nil
}

// ApplyHighlight restores the default material of the previous selection,
// highlights the solid and makes it the selection
func (e *Editor) ApplyHighlight(id SolidID) error {
	solid, ok := e.registry.Get(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownSolid, id)
	}

	if prev, ok := e.Selected(); ok && prev.ID != id {
		prev.Material = prev.DefaultMaterial
		e.scene.UpdateSolid(prev)
	}

	solid.Material = e.highlightMaterial
	e.scene.UpdateSolid(solid)
	e.selected = id
	logx.Logger().Debug("solid selected", "id", id.Short(), "name", solid.Name)
	return nil
}

// DragStart begins moving the selected solid. It needs ModeMoving, a
// selection and a pick on a solid; picking another solid selects it first.
func (e *Editor) DragStart(x, y float64, pick PickResult) bool {
	if e.modes.Mode() != ModeMoving || !e.HasSelection() {
		return false
	}
	if !pick.Hit || pick.Ground {
		return false
	}
	if pick.Solid != "" && pick.Solid != e.selected {
		if err := e.ApplyHighlight(pick.Solid); err != nil {
			return false
		}
	}

	ground, ok := e.scene.GroundPoint(x, y)
	if !ok {
		return false
	}
	solid, _ := e.Selected()
	e.drag = dragSession{
		active: true,
		offset: solid.Position.Sub(ground),
	}
	return true
}

// DragMove places the selected solid at the ground point under the pointer
// plus the grab offset, keeping its height
func (e *Editor) DragMove(x, y float64) bool {
	if !e.drag.active {
		return false
	}
	solid, ok := e.Selected()
	if !ok {
		e.drag = dragSession{}
		return false
	}
	ground, ok := e.scene.GroundPoint(x, y)
	if !ok {
		return false
	}

	target := ground.Add(e.drag.offset)
	solid.Position = geometry.NewVector3(target.X, solid.Position.Y, target.Z)
	e.scene.UpdateSolid(solid)
	return true
}

// DragEnd finishes the move gesture
func (e *Editor) DragEnd() {
	if !e.drag.active {
		return
	}
	if solid, ok := e.Selected(); ok {
		logx.Logger().Debug("solid moved", "id", solid.ID.Short(),
			"x", solid.Position.X, "z", solid.Position.Z)
	}
	e.drag = dragSession{}
}

// Deselect clears the selection and leaves move mode
func (e *Editor) Deselect() bool {
	solid, ok := e.Selected()
	if !ok {
		return false
	}

	solid.Material = solid.DefaultMaterial
	e.scene.UpdateSolid(solid)
	e.selected = ""
	if e.modes.Mode() == ModeMoving {
		_ = e.modes.Transition(ModeIdle)
	}
	return true
}

// Delete removes the selected solid from the scene
func (e *Editor) Delete() error {
	solid, ok := e.Selected()
	if !ok {
		return ErrNoSelection
	}

	if e.modes.Mode() == ModeMoving {
		_ = e.modes.Transition(ModeIdle)
	}
	e.selected = ""
	e.registry.Remove(solid.ID)
	e.scene.RemoveSolid(solid.ID)
	logx.Logger().Info("solid deleted", "id", solid.ID.Short(), "name", solid.Name)
	return nil
}
