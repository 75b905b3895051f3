package headless

import (
	"testing"

	"github.com/philipparndt/gosketch/internal/editor"
	"github.com/philipparndt/gosketch/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clickAt(t *testing.T, s *Scene, e *editor.Editor, x, z float64) {
	t.Helper()
	sx, sy, ok := s.ScreenPoint(geometry.GroundPoint(x, z))
	require.True(t, ok)
	e.HandlePointer(editor.PointerEvent{Kind: editor.PointerClick, X: sx, Y: sy})
}

func TestDrawThroughScreenCoordinates(t *testing.T) {
	s := New(40)
	e := editor.New(s, editor.Options{})
	require.NoError(t, e.ToggleDrawing())

	clickAt(t, s, e, 1, 2)
	clickAt(t, s, e, -3, 4.5)

	points := e.Points()
	require.Len(t, points, 2)
	assert.True(t, points[0].ApproxEqual(geometry.GroundPoint(1, 2), 1e-9))
	assert.True(t, points[1].ApproxEqual(geometry.GroundPoint(-3, 4.5), 1e-9))
	assert.Len(t, s.Segments(), 1)
}

func TestPickPrefersSolidOverGround(t *testing.T) {
	s := New(40)
	e := editor.New(s, editor.Options{})
	solid, err := e.AddSolid([]geometry.Vector3{
		geometry.GroundPoint(0, 0),
		geometry.GroundPoint(2, 0),
		geometry.GroundPoint(2, 2),
		geometry.GroundPoint(0, 2),
	}, 3, geometry.NewVector3(0, 3, 0))
	require.NoError(t, err)

	x, y, _ := s.ScreenPoint(geometry.GroundPoint(0.5, 0.7))
	pick := s.Pick(x, y, editor.PickAny)
	assert.True(t, pick.Hit)
	assert.False(t, pick.Ground)
	assert.Equal(t, solid.ID, pick.Solid)
	assert.InDelta(t, 3.0, pick.Point.Y, 1e-9)

	ground := s.Pick(x, y, editor.PickGround)
	assert.True(t, ground.Ground)
	assert.InDelta(t, 0.0, ground.Point.Y, 1e-12)

	x, y, _ = s.ScreenPoint(geometry.GroundPoint(5, 5))
	assert.False(t, s.Pick(x, y, editor.PickSolids).Hit)
}

func TestRemoveSolid(t *testing.T) {
	s := New(40)
	e := editor.New(s, editor.Options{})
	solid, err := e.AddSolid([]geometry.Vector3{
		geometry.GroundPoint(0, 0),
		geometry.GroundPoint(1, 0),
		geometry.GroundPoint(0, 1),
	}, 1, geometry.NewVector3(0, 1, 0))
	require.NoError(t, err)
	require.Equal(t, 1, s.SolidCount())

	require.NoError(t, e.ApplyHighlight(solid.ID))
	require.NoError(t, e.ToggleTransform())
	assert.False(t, s.CameraAttached())

	require.NoError(t, e.Delete())
	assert.Equal(t, 0, s.SolidCount())
	assert.True(t, s.CameraAttached())
}

func TestPickRayFromOutsideCamera(t *testing.T) {
	s := New(40)
	e := editor.New(s, editor.Options{})
	solid, err := e.AddSolid([]geometry.Vector3{
		geometry.GroundPoint(0, 0),
		geometry.GroundPoint(2, 0),
		geometry.GroundPoint(0, 2),
	}, 1, geometry.NewVector3(5, 1, 0))
	require.NoError(t, err)
	require.Equal(t, []*editor.Solid{solid}, s.Solids())

	// Looking along -X at the solid's side from far away
	ray := geometry.NewRay(geometry.NewVector3(20, 0.5, 0.5), geometry.NewVector3(-1, 0, 0))
	pick := s.PickRay(ray, editor.PickSolids)
	require.True(t, pick.Hit)
	assert.Equal(t, solid.ID, pick.Solid)
	assert.InDelta(t, 6.5, pick.Point.X, 1e-9)

	// Parallel to the ground and missing the solid: nothing to hit
	miss := geometry.NewRay(geometry.NewVector3(20, 0.5, 10), geometry.NewVector3(-1, 0, 0))
	assert.False(t, s.PickRay(miss, editor.PickAny).Hit)
}
