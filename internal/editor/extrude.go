package editor

import (
	"errors"
	"fmt"

	"github.com/philipparndt/gosketch/internal/logx"
	"github.com/philipparndt/gosketch/pkg/extrude"
	"github.com/philipparndt/gosketch/pkg/geometry"
)

// Initiate starts an extrusion of the current sketch. With fewer than three
// vertices the user is told so and the sketch is cleared.
func (e *Editor) Initiate() error {
	if e.ledger.Len() < 3 {
		e.notify("At least 3 points are needed to extrude a shape")
		logx.Logger().Warn("extrusion rejected", "points", e.ledger.Len())
		e.Clear()
		return ErrTooFewPoints
	}
	if err := e.modes.Transition(ModeExtruding); err != nil {
		return fmt.Errorf("failed to start extrusion: %w", err)
	}
	return nil
}

// Confirm extrudes the sketch to height and adds the solid to the scene.
// An invalid height is rejected and the editor stays in ModeExtruding so the
// user can enter another value. Every other outcome clears the sketch and
// returns to ModeIdle.
func (e *Editor) Confirm(height float64) (*Solid, error) {
	if e.modes.Mode() != ModeExtruding {
		return nil, fmt.Errorf("%w: not extruding", ErrIllegalTransition)
	}
	if err := extrude.ValidateHeight(height); err != nil {
		e.notify("Height must be a number greater than 0")
		logx.Logger().Warn("extrusion height rejected", "height", height)
		return nil, err
	}

	outline := e.ledger.Points()
	defer e.finishExtrusion()

	if len(outline) < 3 {
		e.notify("At least 3 points are needed to extrude a shape")
		return nil, ErrTooFewPoints
	}

	solid, err := e.AddSolid(outline, height, geometry.NewVector3(0, height, 0))
	if err != nil {
		switch {
		case errors.Is(err, ErrDegenerateOutline):
			e.notify("The outline cannot be extruded: it has no area or crosses itself")
		case errors.Is(err, ErrTooFewPoints):
			e.notify("At least 3 points are needed to extrude a shape")
		}
		return nil, err
	}
	return solid, nil
}

// Cancel leaves the height prompt and returns to drawing with the sketch intact
func (e *Editor) Cancel() bool {
	if e.modes.Mode() != ModeExtruding {
		return false
	}
	return e.modes.Transition(ModeDrawing) == nil
}

// AddSolid extrudes outline to height, places it at position and registers it.
// It is used by Confirm and when loading projects.
func (e *Editor) AddSolid(outline []geometry.Vector3, height float64, position geometry.Vector3) (*Solid, error) {
	name := fmt.Sprintf("solid-%d", e.created+1)

	flat := extrude.Clean(extrude.Flatten(outline))
	mesh, err := extrude.Extrude(name, flat, height)
	if err != nil {
		return nil, fmt.Errorf("failed to extrude outline: %w", err)
	}
	e.created++

	solid := &Solid{
		ID:              NewSolidID(),
		Name:            name,
		Outline:         flat,
		Height:          height,
		Mesh:            mesh,
		Position:        position,
		Material:        e.defaultMaterial,
		DefaultMaterial: e.defaultMaterial,
	}
	e.registry.Add(solid)
	e.scene.AddSolid(solid)

	logx.Logger().Info("solid created", "id", solid.ID.Short(), "name", name,
		"vertices", len(flat), "height", height, "triangles", mesh.TriangleCount())
	return solid, nil
}

func (e *Editor) finishExtrusion() {
	e.Clear()
	if e.modes.Mode() == ModeExtruding {
		_ = e.modes.Transition(ModeIdle)
	}
}
