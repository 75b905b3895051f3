// Package headless implements the editor scene without a window. Picking
// uses a top-down camera over a fixed viewport, so screen positions map
// linearly onto the ground plane.
package headless

import (
	"math"

	"github.com/philipparndt/gosketch/internal/editor"
	"github.com/philipparndt/gosketch/internal/logx"
	"github.com/philipparndt/gosketch/pkg/camera"
	"github.com/philipparndt/gosketch/pkg/geometry"
	"github.com/philipparndt/gosketch/pkg/sketch"
)

// Segment is a line drawn by the sketch
type Segment struct {
	A, B geometry.Vector3
}

// Scene keeps segments and solids in memory
type Scene struct {
	Camera        *camera.Camera
	Width, Height float64

	nextHandle sketch.SegmentHandle
	segments   map[sketch.SegmentHandle]Segment
	solids     map[editor.SolidID]*editor.Solid
	order      []editor.SolidID

	cameraAttached bool
}

// New creates a scene whose viewport shows extent world units around the origin
func New(extent float64) *Scene {
	return &Scene{
		Camera:         camera.NewTopDown(geometry.GroundPoint(0, 0), extent),
		Width:          1000,
		Height:         1000,
		segments:       make(map[sketch.SegmentHandle]Segment),
		solids:         make(map[editor.SolidID]*editor.Solid),
		cameraAttached: true,
	}
}

// ScreenPoint returns the viewport position above a world point
func (s *Scene) ScreenPoint(p geometry.Vector3) (x, y float64, ok bool) {
	x, y, _, ok = s.Camera.Project(p, s.Width, s.Height)
	return x, y, ok
}

// Pick casts the pointer ray against the solids and the ground plane
func (s *Scene) Pick(x, y float64, filter editor.PickFilter) editor.PickResult {
	return s.PickRay(s.Camera.Ray(x, y, s.Width, s.Height), filter)
}

// PickRay returns the nearest hit of ray. Front ends with their own camera
// use it with the ray under the mouse.
func (s *Scene) PickRay(ray geometry.Ray, filter editor.PickFilter) editor.PickResult {
	best := math.Inf(1)
	var result editor.PickResult

	if filter != editor.PickGround {
		for _, id := range s.order {
			solid := s.solids[id]
			for _, tri := range solid.WorldMesh().Triangles {
				if t, hit := ray.IntersectTriangle(tri); hit && t < best {
					best = t
					result = editor.PickResult{Hit: true, Point: ray.At(t), Solid: id}
				}
			}
		}
	}

	if filter != editor.PickSolids {
		if t, hit := ray.IntersectPlane(geometry.Vector3{}, geometry.NewVector3(0, 1, 0)); hit && t < best {
			p := ray.At(t)
			p.Y = 0
			result = editor.PickResult{Hit: true, Ground: true, Point: p}
		}
	}
	return result
}

// GroundPoint intersects the pointer ray with the ground plane
func (s *Scene) GroundPoint(x, y float64) (geometry.Vector3, bool) {
	return s.Camera.Ray(x, y, s.Width, s.Height).IntersectGround()
}

// CreateLineSegment stores a segment and returns its handle
func (s *Scene) CreateLineSegment(a, b geometry.Vector3) sketch.SegmentHandle {
	s.nextHandle++
	s.segments[s.nextHandle] = Segment{A: a, B: b}
	return s.nextHandle
}

// DestroySegment removes a segment
func (s *Scene) DestroySegment(h sketch.SegmentHandle) {
	delete(s.segments, h)
}

// Segments returns the live segments
func (s *Scene) Segments() []Segment {
	out := make([]Segment, 0, len(s.segments))
	for h := sketch.SegmentHandle(1); h <= s.nextHandle; h++ {
		if seg, ok := s.segments[h]; ok {
			out = append(out, seg)
		}
	}
	return out
}

// AddSolid adds a solid to the scene
func (s *Scene) AddSolid(solid *editor.Solid) {
	if _, exists := s.solids[solid.ID]; !exists {
		s.order = append(s.order, solid.ID)
	}
	s.solids[solid.ID] = solid
}

// RemoveSolid removes a solid from the scene
func (s *Scene) RemoveSolid(id editor.SolidID) {
	delete(s.solids, id)
	for i, other := range s.order {
		if other == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// UpdateSolid is a no-op; solids are read directly when picking
func (s *Scene) UpdateSolid(solid *editor.Solid) {
	logx.Logger().Debug("solid updated", "id", solid.ID.Short(), "material", solid.Material.Name)
}

// AttachCameraControl lets pointer drags orbit the camera
func (s *Scene) AttachCameraControl() { s.cameraAttached = true }

// DetachCameraControl keeps the camera still while solids are moved
func (s *Scene) DetachCameraControl() { s.cameraAttached = false }

// CameraAttached reports whether the camera follows pointer drags
func (s *Scene) CameraAttached() bool {
	return s.cameraAttached
}

// Solids returns the solids in insertion order
func (s *Scene) Solids() []*editor.Solid {
	out := make([]*editor.Solid, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.solids[id])
	}
	return out
}

// SolidCount returns the number of solids in the scene
func (s *Scene) SolidCount() int {
	return len(s.order)
}
