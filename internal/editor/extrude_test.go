package editor

import (
	"bytes"
	"log/slog"
	"math"
	"strings"
	"testing"

	"github.com/philipparndt/gosketch/internal/logx"
	"github.com/philipparndt/gosketch/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitiateWithTooFewPoints(t *testing.T) {
	e, scene, messages := newTestEditor()
	click(e, 0, 0)
	click(e, 1, 0)

	err := e.Initiate()
	assert.ErrorIs(t, err, ErrTooFewPoints)
	assert.Empty(t, e.Points())
	assert.Empty(t, scene.live)
	assert.Empty(t, scene.solids)
	assert.Len(t, *messages, 1)
	assert.Equal(t, ModeDrawing, e.Mode())
	assert.False(t, e.HeightInputVisible())
}

func TestConfirmCreatesSolid(t *testing.T) {
	e, scene, _ := newTestEditor()
	drawSquare(e, 2)
	require.True(t, e.CloseShape())

	require.NoError(t, e.Initiate())
	assert.True(t, e.HeightInputVisible())
	assert.Equal(t, ModeExtruding, e.Mode())

	solid, err := e.Confirm(2)
	require.NoError(t, err)

	assert.Len(t, scene.solids, 1)
	assert.Same(t, solid, scene.solids[solid.ID])
	assert.Len(t, e.Solids(), 1)

	// Sketch fully reset
	assert.Empty(t, e.Points())
	assert.Empty(t, e.Segments())
	assert.Empty(t, scene.live)
	assert.Len(t, scene.destroyed, 4)
	assert.False(t, e.ShapeClosed())
	assert.Equal(t, ModeIdle, e.Mode())

	// Base on the ground, top at the height
	assert.Equal(t, geometry.NewVector3(0, 2, 0), solid.Position)
	bounds := solid.Bounds()
	assert.InDelta(t, 0.0, bounds.Min.Y, 1e-12)
	assert.InDelta(t, 2.0, bounds.Max.Y, 1e-12)
	assert.InDelta(t, 8.0, solid.Mesh.Volume(), 1e-9)

	assert.Equal(t, DefaultMaterial, solid.Material)
	assert.Equal(t, DefaultMaterial, solid.DefaultMaterial)
}

func TestConfirmRejectsInvalidHeight(t *testing.T) {
	for _, h := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		e, scene, messages := newTestEditor()
		drawSquare(e, 1)
		require.NoError(t, e.Initiate())

		_, err := e.Confirm(h)
		assert.ErrorIs(t, err, ErrInvalidHeight, "height %v", h)
		assert.Equal(t, ModeExtruding, e.Mode())
		assert.Len(t, e.Points(), 4)
		assert.Empty(t, scene.solids)
		assert.Len(t, *messages, 1)

		_, err = e.Confirm(1.5)
		assert.NoError(t, err)
	}
}

func TestConfirmDegenerateOutlineResets(t *testing.T) {
	e, scene, messages := newTestEditor()
	click(e, 0, 0)
	click(e, 1, 0)
	click(e, 2, 0)
	require.NoError(t, e.Initiate())

	_, err := e.Confirm(1)
	assert.ErrorIs(t, err, ErrDegenerateOutline)
	assert.Empty(t, scene.solids)
	assert.Empty(t, e.Points())
	assert.Empty(t, scene.live)
	assert.Equal(t, ModeIdle, e.Mode())
	assert.NotEmpty(t, *messages)
}

func TestConfirmOutsideExtruding(t *testing.T) {
	e, _, _ := newTestEditor()
	drawSquare(e, 1)

	_, err := e.Confirm(1)
	assert.ErrorIs(t, err, ErrIllegalTransition)
	assert.Len(t, e.Points(), 4)
}

func TestCancelKeepsSketch(t *testing.T) {
	e, _, _ := newTestEditor()
	drawSquare(e, 1)
	require.NoError(t, e.Initiate())

	assert.True(t, e.HandleKey(KeyEvent{Key: "Escape"}).Handled)
	assert.Equal(t, ModeDrawing, e.Mode())
	assert.Len(t, e.Points(), 4)
	assert.False(t, e.Cancel())
}

func TestExtrudeOnlyWhileDrawing(t *testing.T) {
	e, _, _ := newTestEditor()
	drawSquare(e, 1)
	require.NoError(t, e.ToggleDrawing())

	assert.False(t, e.CanExtrude())
	assert.ErrorIs(t, e.Initiate(), ErrIllegalTransition)
	assert.Len(t, e.Points(), 4)
}

func TestClicksIgnoredWhileExtruding(t *testing.T) {
	e, _, _ := newTestEditor()
	drawSquare(e, 1)
	require.NoError(t, e.Initiate())

	assert.False(t, e.HandlePointer(PointerEvent{Kind: PointerClick, X: 9, Y: 9}))
	assert.Len(t, e.Points(), 4)
}

func TestConfirmWithRepeatedVertices(t *testing.T) {
	tests := map[string][][2]float64{
		"double click":       {{0, 0}, {2, 0}, {2, 0}, {2, 2}, {0, 2}},
		"last repeats first": {{0, 0}, {2, 0}, {2, 2}, {0, 2}, {0, 0}},
	}
	for name, clicks := range tests {
		t.Run(name, func(t *testing.T) {
			e, scene, messages := newTestEditor()
			for _, c := range clicks {
				click(e, c[0], c[1])
			}
			require.NoError(t, e.Initiate())

			solid, err := e.Confirm(2)
			require.NoError(t, err)
			assert.Len(t, scene.solids, 1)
			assert.Len(t, solid.Outline, 4)
			assert.InDelta(t, 8.0, solid.Mesh.Volume(), 1e-9)
			assert.Empty(t, *messages)
			assert.Equal(t, ModeIdle, e.Mode())
		})
	}
}

func TestFailedExtrusionKeepsNameSequence(t *testing.T) {
	e, _, _ := newTestEditor()
	click(e, 0, 0)
	click(e, 1, 0)
	click(e, 2, 0)
	require.NoError(t, e.Initiate())
	_, err := e.Confirm(1)
	require.ErrorIs(t, err, ErrDegenerateOutline)

	require.NoError(t, e.ToggleDrawing())
	drawSquare(e, 1)
	require.NoError(t, e.Initiate())
	solid, err := e.Confirm(1)
	require.NoError(t, err)
	assert.Equal(t, "solid-1", solid.Name)
}

func TestConfirmLogsSolidOnce(t *testing.T) {
	var buf bytes.Buffer
	logx.SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { logx.SetLogger(nil) })

	e, _, _ := newTestEditor()
	drawSquare(e, 1)
	require.NoError(t, e.Initiate())
	_, err := e.Confirm(1)
	require.NoError(t, err)

	assert.Equal(t, 1, strings.Count(buf.String(), "solid created"))
	assert.Contains(t, buf.String(), "triangles=12")
}
