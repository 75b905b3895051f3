package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouterDispatchesToActiveModeOnly(t *testing.T) {
	r := NewRouter()
	var idle, drawing int
	r.Register(ModeIdle, PointerHandlerFunc(func(PointerEvent) { idle++ }))
	r.Register(ModeDrawing, PointerHandlerFunc(func(PointerEvent) { drawing++ }))

	assert.True(t, r.Dispatch(PointerEvent{Kind: PointerClick}))
	r.SetMode(ModeDrawing)
	assert.True(t, r.Dispatch(PointerEvent{Kind: PointerClick}))
	assert.True(t, r.Dispatch(PointerEvent{Kind: PointerClick}))

	assert.Equal(t, 1, idle)
	assert.Equal(t, 2, drawing)

	r.SetMode(ModeExtruding)
	assert.False(t, r.Dispatch(PointerEvent{Kind: PointerClick}))
}

func TestRouterHandlerMaySwitchMode(t *testing.T) {
	r := NewRouter()
	r.Register(ModeIdle, PointerHandlerFunc(func(PointerEvent) { r.SetMode(ModeDrawing) }))

	r.Dispatch(PointerEvent{})
	assert.Equal(t, ModeDrawing, r.ActiveMode())
}

func TestRouterRegisterReplaces(t *testing.T) {
	r := NewRouter()
	var first, second int
	r.Register(ModeIdle, PointerHandlerFunc(func(PointerEvent) { first++ }))
	r.Register(ModeIdle, PointerHandlerFunc(func(PointerEvent) { second++ }))
	r.Dispatch(PointerEvent{})

	assert.Equal(t, 0, first)
	assert.Equal(t, 1, second)

	r.Register(ModeIdle, nil)
	assert.False(t, r.Dispatch(PointerEvent{}))
}

func TestRouterKeyBindings(t *testing.T) {
	r := NewRouter()
	calls := 0
	r.Bind(KeyChord{Key: "z", Mod: true}, func() { calls++ })

	assert.True(t, r.DispatchKey(KeyEvent{Key: "Z", Mod: true}).Handled)
	assert.False(t, r.DispatchKey(KeyEvent{Key: "z"}).Handled)
	assert.False(t, r.DispatchKey(KeyEvent{Key: "x", Mod: true}).Handled)
	assert.Equal(t, 1, calls)
}

func TestEditorUndoRedoKeysInAnyMode(t *testing.T) {
	e, _, _ := newTestEditor()
	drawSquare(e, 1)
	a := assert.New(t)

	a.NoError(e.ToggleDrawing())
	a.Equal(ModeIdle, e.Mode())

	a.True(e.HandleKey(KeyEvent{Key: "z", Mod: true}).Handled)
	a.Len(e.Points(), 3)
	a.True(e.HandleKey(KeyEvent{Key: "y", Mod: true}).Handled)
	a.Len(e.Points(), 4)
}

func TestEditorUndoRedoKeysWhileExtruding(t *testing.T) {
	e, _, _ := newTestEditor()
	drawSquare(e, 1)
	require.NoError(t, e.Initiate())

	assert.True(t, e.HandleKey(KeyEvent{Key: "z", Mod: true}).Handled)
	assert.Len(t, e.Points(), 3)
	assert.True(t, e.HandleKey(KeyEvent{Key: "y", Mod: true}).Handled)
	assert.Len(t, e.Points(), 4)
	assert.Equal(t, ModeExtruding, e.Mode())
}
