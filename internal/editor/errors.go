package editor

import (
	"errors"

	"github.com/philipparndt/gosketch/pkg/extrude"
)

var (
	// ErrIllegalTransition is returned when a mode change is not allowed from the current mode
	ErrIllegalTransition = errors.New("illegal mode transition")
	// ErrNoSelection is returned by operations that need a selected solid
	ErrNoSelection = errors.New("no solid selected")
	// ErrUnknownSolid is returned for ids that are not in the registry
	ErrUnknownSolid = errors.New("unknown solid")

	// Extrusion precondition failures, shared with pkg/extrude
	ErrTooFewPoints      = extrude.ErrTooFewPoints
	ErrInvalidHeight     = extrude.ErrInvalidHeight
	ErrDegenerateOutline = extrude.ErrDegenerateOutline
)
