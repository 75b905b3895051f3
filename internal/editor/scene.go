package editor

import (
	"image/color"

	"github.com/philipparndt/gosketch/pkg/geometry"
	"github.com/philipparndt/gosketch/pkg/sketch"
)

// PickFilter restricts what a pick may hit
type PickFilter int

const (
	PickAny PickFilter = iota
	PickGround
	PickSolids
)

// PickResult describes what lies under the pointer
type PickResult struct {
	Hit    bool
	Point  geometry.Vector3
	Ground bool    // the hit is the ground plane
	Solid  SolidID // set when a solid was hit
}

// Scene is the rendering collaborator: it draws segments and solids,
// resolves screen positions and owns the orbit camera.
type Scene interface {
	CameraControl

	// Pick casts a ray through the screen position
	Pick(x, y float64, filter PickFilter) PickResult
	// GroundPoint intersects the pointer ray with the ground plane
	GroundPoint(x, y float64) (geometry.Vector3, bool)

	CreateLineSegment(a, b geometry.Vector3) sketch.SegmentHandle
	DestroySegment(h sketch.SegmentHandle)

	AddSolid(s *Solid)
	RemoveSolid(id SolidID)
	// UpdateSolid is called after a solid's position or material changed
	UpdateSolid(s *Solid)
}

// Notifier shows a message to the user
type Notifier func(msg string)

// Material is the visual appearance of a solid
type Material struct {
	Name  string
	Color color.RGBA
}

var (
	// DefaultMaterial is applied to freshly extruded solids
	DefaultMaterial = Material{Name: "default", Color: color.RGBA{R: 70, G: 130, B: 180, A: 255}}
	// HighlightMaterial marks the selected solid
	HighlightMaterial = Material{Name: "highlight", Color: color.RGBA{R: 255, G: 165, B: 0, A: 255}}
)
