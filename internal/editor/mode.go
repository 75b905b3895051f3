package editor

import (
	"fmt"

	"github.com/philipparndt/gosketch/internal/logx"
)

// Mode is the interaction mode of the editor
type Mode int

const (
	ModeIdle Mode = iota
	ModeDrawing
	ModeExtruding
	ModeMoving
)

func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeDrawing:
		return "drawing"
	case ModeExtruding:
		return "extruding"
	case ModeMoving:
		return "moving"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// transitions lists the legal target modes for every mode
var transitions = map[Mode][]Mode{
	ModeIdle:      {ModeDrawing, ModeMoving},
	ModeDrawing:   {ModeIdle, ModeExtruding, ModeMoving},
	ModeExtruding: {ModeIdle, ModeDrawing},
	ModeMoving:    {ModeIdle, ModeDrawing},
}

// CameraControl attaches and detaches the orbit camera from pointer input
type CameraControl interface {
	AttachCameraControl()
	DetachCameraControl()
}

// ModeController owns the current mode and enforces the transition table.
// Entering ModeMoving detaches camera control, leaving it attaches it again.
type ModeController struct {
	mode      Mode
	camera    CameraControl
	canMove   func() bool
	listeners []func(from, to Mode)
}

// NewModeController starts in ModeIdle. canMove guards entering ModeMoving
// and may be nil.
func NewModeController(camera CameraControl, canMove func() bool) *ModeController {
	return &ModeController{
		mode:    ModeIdle,
		camera:  camera,
		canMove: canMove,
	}
}

// Mode returns the current mode
func (c *ModeController) Mode() Mode {
	return c.mode
}

// OnChange registers fn to be called after every successful transition
func (c *ModeController) OnChange(fn func(from, to Mode)) {
	c.listeners = append(c.listeners, fn)
}

// CanTransition reports whether Transition(to) would succeed
func (c *ModeController) CanTransition(to Mode) bool {
	if to == c.mode {
		return true
	}
	if to == ModeMoving && c.canMove != nil && !c.canMove() {
		return false
	}
	for _, m := range transitions[c.mode] {
		if m == to {
			return true
		}
	}
	return false
}

// Transition switches to the given mode. Switching to the current mode is a no-op.
func (c *ModeController) Transition(to Mode) error {
	from := c.mode
	if to == from {
		return nil
	}
	if !c.CanTransition(to) {
		logx.Logger().Debug("mode transition rejected", "from", from, "to", to)
		return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, from, to)
	}

	c.mode = to
	if c.camera != nil {
		if to == ModeMoving {
			c.camera.DetachCameraControl()
		} else if from == ModeMoving {
			c.camera.AttachCameraControl()
		}
	}

	logx.Logger().Debug("mode changed", "from", from, "to", to)
	for _, fn := range c.listeners {
		fn(from, to)
	}
	return nil
}
