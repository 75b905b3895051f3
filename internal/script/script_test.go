package script

import (
	"strings"
	"testing"

	"github.com/philipparndt/gosketch/internal/editor"
	"github.com/philipparndt/gosketch/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const session = `
# draw a 2 x 2 square and extrude it
draw
click 0 0
click 2 0
click 2 2
click 5 5   # mistake
undo
click 0 2
close
extrude
height 0    # rejected, prompt stays open
height 1.5

# pick it up and move it
select 1 0.5
move
drag 1 0.5 4 3.5
`

func TestParse(t *testing.T) {
	cmds, err := Parse(strings.NewReader(session))
	require.NoError(t, err)
	require.Len(t, cmds, 14)

	assert.Equal(t, Command{Line: 3, Name: "draw", Args: []float64{}}, cmds[0])
	assert.Equal(t, []float64{5, 5}, cmds[4].Args)
	assert.Equal(t, "drag 1 0.5 4 3.5", cmds[13].String())
}

func TestParseErrors(t *testing.T) {
	tests := map[string]string{
		"unknown":   "jump",
		"arity":     "click 1",
		"not float": "height tall",
	}
	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(strings.NewReader("draw\n" + input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "line 2")
		})
	}
}

func TestReplaySession(t *testing.T) {
	cmds, err := Parse(strings.NewReader(session))
	require.NoError(t, err)

	r := NewRunner(40, editor.Options{})
	r.Run(cmds)

	require.Len(t, r.Failures, 1)
	assert.ErrorIs(t, r.Failures[0].Err, editor.ErrInvalidHeight)
	assert.Len(t, r.Messages, 1)

	solids := r.Editor.Solids()
	require.Len(t, solids, 1)
	s := solids[0]
	assert.InDelta(t, 6.0, s.Mesh.Volume(), 1e-9)
	assert.True(t, s.Position.ApproxEqual(geometry.NewVector3(3, 1.5, 3), 1e-9), "position %v", s.Position)

	assert.Equal(t, editor.ModeMoving, r.Editor.Mode())
	assert.Empty(t, r.Editor.Points())
	assert.Empty(t, r.Scene.Segments())
}

func TestReplayTooFewPoints(t *testing.T) {
	cmds, err := Parse(strings.NewReader("draw\nclick 0 0\nclick 1 0\nextrude\ndelete"))
	require.NoError(t, err)

	r := NewRunner(40, editor.Options{})
	r.Run(cmds)

	require.Len(t, r.Failures, 2)
	assert.ErrorIs(t, r.Failures[0].Err, editor.ErrTooFewPoints)
	assert.ErrorIs(t, r.Failures[1].Err, editor.ErrNoSelection)
	assert.Contains(t, r.Failures[0].Error(), "line 4")
	assert.Empty(t, r.Editor.Points())
}
