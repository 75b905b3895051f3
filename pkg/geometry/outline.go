package geometry

import (
	"errors"
	"math"
)

// ErrDegenerateOutline is returned when an outline cannot be triangulated
var ErrDegenerateOutline = errors.New("degenerate outline")

const outlineEpsilon = 1e-12

// SignedAreaXZ returns the signed area of a closed outline projected onto the
// ground plane. Positive when the points run from +X towards +Z.
func SignedAreaXZ(points []Vector3) float64 {
	n := len(points)
	if n < 3 {
		return 0
	}
	sum := 0.0
	for i := 0; i < n; i++ {
		a := points[i]
		b := points[(i+1)%n]
		sum += a.X*b.Z - b.X*a.Z
	}
	return sum / 2.0
}

// OrientationXZ returns the 2D cross product of (b-a) and (c-b) on the ground plane
func OrientationXZ(a, b, c Vector3) float64 {
	return (b.X-a.X)*(c.Z-b.Z) - (b.Z-a.Z)*(c.X-b.X)
}

// SelfIntersectsXZ reports whether any two non-adjacent edges of the closed
// outline cross each other on the ground plane
func SelfIntersectsXZ(points []Vector3) bool {
	n := len(points)
	if n < 4 {
		return false
	}
	for i := 0; i < n; i++ {
		a1 := points[i]
		a2 := points[(i+1)%n]
		for j := i + 1; j < n; j++ {
			// Skip edges sharing a vertex
			if j == i || (j+1)%n == i || (i+1)%n == j {
				continue
			}
			b1 := points[j]
			b2 := points[(j+1)%n]
			if segmentsCrossXZ(a1, a2, b1, b2) {
				return true
			}
		}
	}
	return false
}

func segmentsCrossXZ(p1, p2, q1, q2 Vector3) bool {
	d1 := cross2(q1, q2, p1)
	d2 := cross2(q1, q2, p2)
	d3 := cross2(p1, p2, q1)
	d4 := cross2(p1, p2, q2)

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}

	// Touching counts as an intersection for outlines
	return (d1 == 0 && onSegmentXZ(q1, q2, p1)) ||
		(d2 == 0 && onSegmentXZ(q1, q2, p2)) ||
		(d3 == 0 && onSegmentXZ(p1, p2, q1)) ||
		(d4 == 0 && onSegmentXZ(p1, p2, q2))
}

// cross2 is the 2D cross product of (b-a) and (c-a) on the ground plane
func cross2(a, b, c Vector3) float64 {
	return (b.X-a.X)*(c.Z-a.Z) - (b.Z-a.Z)*(c.X-a.X)
}

func onSegmentXZ(a, b, p Vector3) bool {
	return p.X >= math.Min(a.X, b.X) && p.X <= math.Max(a.X, b.X) &&
		p.Z >= math.Min(a.Z, b.Z) && p.Z <= math.Max(a.Z, b.Z)
}

// TriangulateXZ splits a simple outline into triangles by ear clipping.
// The returned index triples refer to points and are ordered so that each
// triangle has positive signed area on the ground plane. Collinear vertices
// are skipped.
func TriangulateXZ(points []Vector3) ([][3]int, error) {
	n := len(points)
	if n < 3 {
		return nil, ErrDegenerateOutline
	}
	area := SignedAreaXZ(points)
	if math.Abs(area) < outlineEpsilon {
		return nil, ErrDegenerateOutline
	}

	// Work on a positively oriented index ring
	ring := make([]int, n)
	for i := range ring {
		if area > 0 {
			ring[i] = i
		} else {
			ring[i] = n - 1 - i
		}
	}

	triangles := make([][3]int, 0, n-2)
	for len(ring) > 3 {
		clipped := false
		for i := 0; i < len(ring); i++ {
			prev := ring[(i+len(ring)-1)%len(ring)]
			cur := ring[i]
			next := ring[(i+1)%len(ring)]

			turn := OrientationXZ(points[prev], points[cur], points[next])
			if math.Abs(turn) < outlineEpsilon {
				// Collinear vertex contributes nothing
				ring = append(ring[:i], ring[i+1:]...)
				clipped = true
				break
			}
			if turn < 0 {
				continue // reflex
			}
			if containsOtherVertex(points, ring, prev, cur, next) {
				continue
			}

			triangles = append(triangles, [3]int{prev, cur, next})
			ring = append(ring[:i], ring[i+1:]...)
			clipped = true
			break
		}

		if !clipped {
			// No ear left: the outline is not simple
			return nil, ErrDegenerateOutline
		}
	}

	if OrientationXZ(points[ring[0]], points[ring[1]], points[ring[2]]) > outlineEpsilon {
		triangles = append(triangles, [3]int{ring[0], ring[1], ring[2]})
	}
	if len(triangles) == 0 {
		return nil, ErrDegenerateOutline
	}
	return triangles, nil
}

func containsOtherVertex(points []Vector3, ring []int, a, b, c int) bool {
	pa, pb, pc := points[a], points[b], points[c]
	for _, idx := range ring {
		if idx == a || idx == b || idx == c {
			continue
		}
		p := points[idx]
		if p == pa || p == pb || p == pc {
			continue
		}
		if pointInTriangleXZ(p, pa, pb, pc) {
			return true
		}
	}
	return false
}

func pointInTriangleXZ(p, a, b, c Vector3) bool {
	d1 := cross2(a, b, p)
	d2 := cross2(b, c, p)
	d3 := cross2(c, a, p)
	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}
