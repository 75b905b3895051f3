// Package extrude sweeps a ground-plane outline into a closed solid mesh.
package extrude

import (
	"errors"
	"fmt"
	"math"

	"github.com/philipparndt/gosketch/pkg/geometry"
	"github.com/philipparndt/gosketch/pkg/stl"
)

var (
	// ErrTooFewPoints is returned for outlines with fewer than three points
	ErrTooFewPoints = errors.New("outline needs at least 3 points")
	// ErrInvalidHeight is returned for non-positive or non-finite heights
	ErrInvalidHeight = errors.New("extrusion height must be a positive number")
	// ErrDegenerateOutline is returned when the outline has no area or crosses itself
	ErrDegenerateOutline = geometry.ErrDegenerateOutline
)

// ValidateHeight checks that h can be used as an extrusion height
func ValidateHeight(h float64) error {
	if math.IsNaN(h) || math.IsInf(h, 0) || h <= 0 {
		return fmt.Errorf("%w: got %v", ErrInvalidHeight, h)
	}
	return nil
}

// Flatten snapshots an outline onto the ground plane, keeping only x and z
func Flatten(points []geometry.Vector3) []geometry.Vector3 {
	out := make([]geometry.Vector3, len(points))
	for i, p := range points {
		out[i] = p.Flatten()
	}
	return out
}

// vertexEpsilon is the distance below which neighbouring outline vertices are merged
const vertexEpsilon = 1e-9

// Clean drops vertices that repeat their predecessor, including a last vertex
// that repeats the first, as produced by double clicks or clicking the start
// point again.
func Clean(points []geometry.Vector3) []geometry.Vector3 {
	out := make([]geometry.Vector3, 0, len(points))
	for _, p := range points {
		if n := len(out); n > 0 && out[n-1].ApproxEqual(p, vertexEpsilon) {
			continue
		}
		out = append(out, p)
	}
	for len(out) > 1 && out[len(out)-1].ApproxEqual(out[0], vertexEpsilon) {
		out = out[:len(out)-1]
	}
	return out
}

// Extrude sweeps the outline downward from y = 0 to y = -height and returns
// the closed mesh in local coordinates. Repeated vertices are dropped first. Placing the solid at y = height puts
// its base on the ground. Facets face outward whatever the outline winding.
func Extrude(name string, outline []geometry.Vector3, height float64) (*stl.Model, error) {
	flat := Clean(Flatten(outline))
	if len(flat) < 3 {
		return nil, fmt.Errorf("%w: %d distinct points", ErrTooFewPoints, len(flat))
	}
	if err := ValidateHeight(height); err != nil {
		return nil, err
	}

	if geometry.SelfIntersectsXZ(flat) {
		return nil, fmt.Errorf("%w: outline crosses itself", ErrDegenerateOutline)
	}

	tris, err := geometry.TriangulateXZ(flat)
	if err != nil {
		return nil, fmt.Errorf("failed to triangulate outline: %w", err)
	}

	model := stl.NewModel(name)
	bottom := func(p geometry.Vector3) geometry.Vector3 { return p.WithY(-height) }

	// Triangles with positive XZ area face -Y, so the top cap flips them
	for _, tri := range tris {
		a, b, c := flat[tri[0]], flat[tri[1]], flat[tri[2]]
		model.AddTriangle(geometry.NewFacet(a, c, b))
		model.AddTriangle(geometry.NewFacet(bottom(a), bottom(b), bottom(c)))
	}

	// Walk the ring in positive orientation so wall normals point outward
	ring := flat
	if geometry.SignedAreaXZ(flat) < 0 {
		ring = make([]geometry.Vector3, len(flat))
		for i, p := range flat {
			ring[len(flat)-1-i] = p
		}
	}
	for i := range ring {
		p := ring[i]
		q := ring[(i+1)%len(ring)]
		model.AddTriangle(geometry.NewFacet(p, q, bottom(q)))
		model.AddTriangle(geometry.NewFacet(p, bottom(q), bottom(p)))
	}

	return model, nil
}
