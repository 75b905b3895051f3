package script

import (
	"fmt"

	"github.com/philipparndt/gosketch/internal/editor"
	"github.com/philipparndt/gosketch/internal/headless"
	"github.com/philipparndt/gosketch/internal/logx"
	"github.com/philipparndt/gosketch/pkg/geometry"
)

// Failure records a command that the editor rejected
type Failure struct {
	Command Command
	Err     error
}

func (f Failure) Error() string {
	return fmt.Sprintf("line %d (%s): %v", f.Command.Line, f.Command, f.Err)
}

// Runner replays commands against an editor bound to a headless scene
type Runner struct {
	Scene    *headless.Scene
	Editor   *editor.Editor
	Messages []string
	Failures []Failure
}

// NewRunner creates a headless scene and editor for replaying scripts
func NewRunner(extent float64, opts editor.Options) *Runner {
	r := &Runner{Scene: headless.New(extent)}
	notify := opts.Notifier
	opts.Notifier = func(msg string) {
		r.Messages = append(r.Messages, msg)
		if notify != nil {
			notify(msg)
		}
	}
	r.Editor = editor.New(r.Scene, opts)
	return r
}

// Run executes the commands in order. Commands rejected by the editor are
// collected in Failures and do not stop the replay, the same way a user
// keeps working after an error notice.
func (r *Runner) Run(cmds []Command) {
	for _, cmd := range cmds {
		if err := r.exec(cmd); err != nil {
			logx.Logger().Warn("script command failed", "line", cmd.Line, "command", cmd.String(), "err", err)
			r.Failures = append(r.Failures, Failure{Command: cmd, Err: err})
		}
	}
}

func (r *Runner) exec(cmd Command) error {
	e := r.Editor
	switch cmd.Name {
	case "draw":
		return e.ToggleDrawing()
	case "click", "select":
		return r.pointer(editor.PointerClick, cmd.Args[0], cmd.Args[1])
	case "undo":
		e.HandleKey(editor.KeyEvent{Key: "z", Mod: true})
	case "redo":
		e.HandleKey(editor.KeyEvent{Key: "y", Mod: true})
	case "close":
		if !e.CloseShape() {
			return fmt.Errorf("shape cannot be closed")
		}
	case "extrude":
		return e.Initiate()
	case "height":
		_, err := e.Confirm(cmd.Args[0])
		return err
	case "cancel":
		e.Cancel()
	case "move":
		return e.ToggleTransform()
	case "drag":
		if err := r.pointer(editor.PointerDown, cmd.Args[0], cmd.Args[1]); err != nil {
			return err
		}
		if err := r.pointer(editor.PointerMove, cmd.Args[2], cmd.Args[3]); err != nil {
			return err
		}
		return r.pointer(editor.PointerUp, cmd.Args[2], cmd.Args[3])
	case "deselect":
		e.Deselect()
	case "delete":
		return e.Delete()
	case "clear":
		e.Clear()
	default:
		return fmt.Errorf("unknown command %q", cmd.Name)
	}
	return nil
}

func (r *Runner) pointer(kind editor.PointerKind, x, z float64) error {
	sx, sy, ok := r.Scene.ScreenPoint(geometry.GroundPoint(x, z))
	if !ok {
		return fmt.Errorf("point %v, %v is not visible", x, z)
	}
	r.Editor.HandlePointer(editor.PointerEvent{Kind: kind, X: sx, Y: sy})
	return nil
}
