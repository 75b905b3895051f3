package editor

import "strings"

// PointerKind distinguishes the pointer events a front end forwards
type PointerKind int

const (
	PointerDown PointerKind = iota
	PointerMove
	PointerUp
	// PointerClick is a press and release without dragging
	PointerClick
)

func (k PointerKind) String() string {
	switch k {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	case PointerClick:
		return "click"
	default:
		return "unknown"
	}
}

// PointerEvent is a pointer event in screen coordinates
type PointerEvent struct {
	Kind PointerKind
	X, Y float64
}

// KeyEvent is a key press. Mod is the platform modifier (Ctrl or Cmd).
type KeyEvent struct {
	Key   string
	Mod   bool
	Shift bool
}

// KeyChord is the normalized form of a key binding
type KeyChord struct {
	Key string
	Mod bool
}

func (e KeyEvent) chord() KeyChord {
	return KeyChord{Key: strings.ToLower(e.Key), Mod: e.Mod}
}

// KeyResult tells the front end whether a key was consumed and the
// platform default should be suppressed
type KeyResult struct {
	Handled bool
}
