package editor

import (
	"github.com/google/uuid"

	"github.com/philipparndt/gosketch/pkg/geometry"
	"github.com/philipparndt/gosketch/pkg/stl"
)

// SolidID is the registry key of a solid
type SolidID string

// NewSolidID returns a fresh random id
func NewSolidID() SolidID {
	return SolidID(uuid.NewString())
}

// Short returns the first eight characters of the id for display
func (id SolidID) Short() string {
	if len(id) > 8 {
		return string(id[:8])
	}
	return string(id)
}

// Solid is an extruded outline placed in the scene
type Solid struct {
	ID      SolidID
	Name    string
	Outline []geometry.Vector3 // on the ground plane
	Height  float64
	// Mesh is in local coordinates, spanning y in [-Height, 0]
	Mesh     *stl.Model
	Position geometry.Vector3

	Material        Material
	DefaultMaterial Material
}

// WorldMesh returns the mesh translated to the solid's position
func (s *Solid) WorldMesh() *stl.Model {
	return s.Mesh.Translated(s.Position)
}

// Bounds returns the world-space bounding box
func (s *Solid) Bounds() geometry.BoundingBox {
	local := s.Mesh.BoundingBox()
	return geometry.BoundingBox{
		Min: local.Min.Add(s.Position),
		Max: local.Max.Add(s.Position),
	}
}

// Footprint returns the outline moved to the solid's ground position
func (s *Solid) Footprint() []geometry.Vector3 {
	offset := s.Position.Flatten()
	out := make([]geometry.Vector3, len(s.Outline))
	for i, p := range s.Outline {
		out[i] = p.Add(offset)
	}
	return out
}

// Registry holds the solids of a scene in creation order
type Registry struct {
	solids map[SolidID]*Solid
	order  []SolidID
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{solids: make(map[SolidID]*Solid)}
}

// Add stores the solid, replacing any solid with the same id
func (r *Registry) Add(s *Solid) {
	if _, exists := r.solids[s.ID]; !exists {
		r.order = append(r.order, s.ID)
	}
	r.solids[s.ID] = s
}

// Get looks up a solid by id
func (r *Registry) Get(id SolidID) (*Solid, bool) {
	s, ok := r.solids[id]
	return s, ok
}

// Remove deletes a solid and reports whether it existed
func (r *Registry) Remove(id SolidID) bool {
	if _, ok := r.solids[id]; !ok {
		return false
	}
	delete(r.solids, id)
	for i, other := range r.order {
		if other == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true
}

// All returns the solids in creation order
func (r *Registry) All() []*Solid {
	out := make([]*Solid, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.solids[id])
	}
	return out
}

// Len returns the number of solids
func (r *Registry) Len() int {
	return len(r.order)
}
