package viewer

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/gosketch/internal/editor"
	"github.com/philipparndt/gosketch/pkg/geometry"
)

const viewSize = 400

func newTestView(t *testing.T) (*SketchView, *editor.Editor) {
	t.Helper()
	test.NewTempApp(t)

	v := NewSketchView(20)
	v.Resize(fyne.NewSize(viewSize, viewSize))
	e := editor.New(v, editor.Options{})
	v.SetEditor(e)
	return v, e
}

func screenPos(t *testing.T, v *SketchView, p geometry.Vector3) fyne.Position {
	t.Helper()
	x, y, _, ok := v.Camera().Project(p, viewSize, viewSize)
	require.True(t, ok)
	return fyne.NewPos(float32(x), float32(y))
}

func extrudeSquare(t *testing.T, v *SketchView, e *editor.Editor) *editor.Solid {
	t.Helper()
	require.NoError(t, e.ToggleDrawing())
	for _, p := range []geometry.Vector3{
		geometry.GroundPoint(-2, -2),
		geometry.GroundPoint(2, -2),
		geometry.GroundPoint(2, 2),
		geometry.GroundPoint(-2, 2),
	} {
		v.Tapped(&fyne.PointEvent{Position: screenPos(t, v, p)})
	}
	require.Len(t, e.Points(), 4)
	require.True(t, e.CloseShape())
	require.NoError(t, e.Initiate())
	solid, err := e.Confirm(1)
	require.NoError(t, err)
	return solid
}

func TestTapsDrawOnGround(t *testing.T) {
	v, e := newTestView(t)
	changed := 0
	v.SetOnChanged(func() { changed++ })

	require.NoError(t, e.ToggleDrawing())
	target := geometry.GroundPoint(1.5, -3)
	v.Tapped(&fyne.PointEvent{Position: screenPos(t, v, target)})

	require.Len(t, e.Points(), 1)
	assert.InDelta(t, target.X, e.Points()[0].X, 0.05)
	assert.InDelta(t, target.Z, e.Points()[0].Z, 0.05)
	assert.Equal(t, 1, changed)
}

func TestRenderShowsSolid(t *testing.T) {
	v, e := newTestView(t)
	extrudeSquare(t, v, e)

	img := v.Render(viewSize, viewSize)
	centre := screenPos(t, v, geometry.NewVector3(0, 1, 0))
	got := img.At(int(centre.X), int(centre.Y))
	assert.NotEqual(t, color.Color(DefaultColors.Background), got)

	corner := img.At(1, 1)
	assert.Equal(t, color.Color(DefaultColors.Background), corner)
}

func TestDragOrbitsCamera(t *testing.T) {
	v, _ := newTestView(t)
	yaw := v.Camera().Yaw

	v.Dragged(&fyne.DragEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(220, 200)},
		Dragged:    fyne.NewDelta(20, 0),
	})
	v.DragEnd()

	assert.NotEqual(t, yaw, v.Camera().Yaw)
}

func TestDragMovesSelectedSolid(t *testing.T) {
	v, e := newTestView(t)
	solid := extrudeSquare(t, v, e)

	top := screenPos(t, v, geometry.NewVector3(0, 1, 0))
	v.Tapped(&fyne.PointEvent{Position: top})
	require.True(t, e.HasSelection())
	require.NoError(t, e.ToggleTransform())

	yaw := v.Camera().Yaw
	before := solid.Position
	end := top.Add(fyne.NewDelta(30, 10))
	v.Dragged(&fyne.DragEvent{
		PointEvent: fyne.PointEvent{Position: end},
		Dragged:    fyne.NewDelta(30, 10),
	})
	v.DragEnd()

	assert.Equal(t, yaw, v.Camera().Yaw)
	assert.False(t, solid.Position.ApproxEqual(before, 1e-6))
	assert.InDelta(t, 1.0, solid.Position.Y, 1e-12)
	assert.False(t, e.Dragging())
}
