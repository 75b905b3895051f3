package geometry

import "math"

const rayEpsilon = 1e-9

// Ray is a half-line used for picking
type Ray struct {
	Origin    Vector3
	Direction Vector3
}

// NewRay creates a ray with a normalized direction
func NewRay(origin, direction Vector3) Ray {
	return Ray{Origin: origin, Direction: direction.Normalize()}
}

// At returns the point at distance t along the ray
func (r Ray) At(t float64) Vector3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// IntersectPlane intersects the ray with the plane through point with the given normal.
// Returns the distance along the ray and whether the plane is hit in front of the origin.
func (r Ray) IntersectPlane(point, normal Vector3) (float64, bool) {
	denom := normal.Dot(r.Direction)
	if math.Abs(denom) < rayEpsilon {
		return 0, false
	}
	t := point.Sub(r.Origin).Dot(normal) / denom
	if t < 0 {
		return 0, false
	}
	return t, true
}

// IntersectGround returns the point where the ray meets the ground plane (y = 0)
func (r Ray) IntersectGround() (Vector3, bool) {
	t, ok := r.IntersectPlane(Vector3{}, Vector3{Y: 1})
	if !ok {
		return Vector3{}, false
	}
	// Snap to exactly zero so recorded sketch points stay on the plane
	return r.At(t).WithY(0), true
}

// IntersectTriangle implements the Möller–Trumbore test. It returns the distance
// along the ray of the hit, ignoring back-face orientation.
func (r Ray) IntersectTriangle(tri Triangle) (float64, bool) {
	edge1 := tri.V2.Sub(tri.V1)
	edge2 := tri.V3.Sub(tri.V1)
	h := r.Direction.Cross(edge2)
	a := edge1.Dot(h)
	if math.Abs(a) < rayEpsilon {
		return 0, false // parallel
	}

	f := 1.0 / a
	s := r.Origin.Sub(tri.V1)
	u := f * s.Dot(h)
	if u < 0 || u > 1 {
		return 0, false
	}

	q := s.Cross(edge1)
	v := f * r.Direction.Dot(q)
	if v < 0 || u+v > 1 {
		return 0, false
	}

	t := f * edge2.Dot(q)
	if t < rayEpsilon {
		return 0, false
	}
	return t, true
}
