// Package camera implements an orbit camera with perspective and top-down
// orthographic projections, screen projection and pointer rays.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/philipparndt/gosketch/pkg/geometry"
)

const (
	maxPitch    = math.Pi/2 - 0.05
	minDistance = 0.1
)

// Camera orbits around Target at Distance. Pitch is the elevation above the
// ground plane, Yaw the rotation around the Y axis.
type Camera struct {
	Target   geometry.Vector3
	Distance float64
	Pitch    float64
	Yaw      float64
	FOV      float64 // vertical field of view in radians
	Near     float64
	Far      float64

	// TopDown looks straight down with an orthographic projection. Screen x
	// follows world +X and screen y follows world +Z.
	TopDown bool
}

// NewOrbit creates a perspective camera looking at the ground from above
func NewOrbit(target geometry.Vector3, distance float64) *Camera {
	return &Camera{
		Target:   target,
		Distance: distance,
		Pitch:    math.Pi / 4,
		Yaw:      math.Pi / 4,
		FOV:      math.Pi / 4,
		Near:     0.1,
		Far:      10000,
	}
}

// NewTopDown creates an orthographic camera showing a square of the given
// extent around target
func NewTopDown(target geometry.Vector3, extent float64) *Camera {
	c := NewOrbit(target, extent)
	c.TopDown = true
	c.Pitch = math.Pi / 2
	c.Yaw = 0
	return c
}

// Frame positions the camera so the bounding box is fully visible
func (c *Camera) Frame(bbox geometry.BoundingBox) {
	if bbox.IsEmpty() {
		return
	}
	size := bbox.Size()
	c.Target = bbox.Center()
	c.Distance = math.Max(math.Max(size.X, size.Y), math.Max(size.Z, 1)) * 2.0
}

// Position returns the eye position in world space
func (c *Camera) Position() geometry.Vector3 {
	if c.TopDown {
		return c.Target.Add(geometry.NewVector3(0, c.Distance, 0))
	}
	x := c.Distance * math.Cos(c.Pitch) * math.Sin(c.Yaw)
	y := c.Distance * math.Sin(c.Pitch)
	z := c.Distance * math.Cos(c.Pitch) * math.Cos(c.Yaw)
	return c.Target.Add(geometry.NewVector3(x, y, z))
}

// Rotate changes pitch and yaw. Pitch is clamped so the camera never flips
// over the pole. Top-down cameras do not rotate.
func (c *Camera) Rotate(deltaPitch, deltaYaw float64) {
	if c.TopDown {
		return
	}
	c.Pitch = mgl64.Clamp(c.Pitch+deltaPitch, -maxPitch, maxPitch)
	c.Yaw += deltaYaw
}

// Zoom scales the distance by (1 + delta)
func (c *Camera) Zoom(delta float64) {
	c.Distance *= 1.0 + delta
	if c.Distance < minDistance {
		c.Distance = minDistance
	}
}

// View returns the world-to-camera matrix
func (c *Camera) View() mgl64.Mat4 {
	up := mgl64.Vec3{0, 1, 0}
	if c.TopDown {
		up = mgl64.Vec3{0, 0, -1}
	}
	return mgl64.LookAtV(toVec(c.Position()), toVec(c.Target), up)
}

// Projection returns the camera-to-clip matrix for a viewport
func (c *Camera) Projection(width, height float64) mgl64.Mat4 {
	aspect := 1.0
	if height > 0 {
		aspect = width / height
	}
	if c.TopDown {
		halfH := c.Distance * math.Tan(c.FOV/2)
		halfW := halfH * aspect
		return mgl64.Ortho(-halfW, halfW, -halfH, halfH, c.Near, c.Far+c.Distance)
	}
	return mgl64.Perspective(c.FOV, aspect, c.Near, c.Far)
}

// Project maps a world point to screen coordinates (origin top left). The
// returned depth is the distance along the view axis; ok is false for points
// behind the camera.
func (c *Camera) Project(p geometry.Vector3, width, height float64) (x, y, depth float64, ok bool) {
	eye := c.View().Mul4x1(toVec(p).Vec4(1))
	clip := c.Projection(width, height).Mul4x1(eye)
	if clip.W() <= 1e-9 {
		return 0, 0, 0, false
	}

	ndc := clip.Vec3().Mul(1.0 / clip.W())
	x = (ndc.X()*0.5 + 0.5) * width
	y = (1.0 - (ndc.Y()*0.5 + 0.5)) * height
	return x, y, -eye.Z(), true
}

// Ray returns the pointer ray through a screen position
func (c *Camera) Ray(x, y, width, height float64) geometry.Ray {
	inv := c.Projection(width, height).Mul4(c.View()).Inv()

	ndcX := 2.0*x/width - 1.0
	ndcY := 1.0 - 2.0*y/height
	near := unproject(inv, ndcX, ndcY, -1)
	far := unproject(inv, ndcX, ndcY, 1)

	return geometry.NewRay(near, far.Sub(near))
}

func unproject(inv mgl64.Mat4, x, y, z float64) geometry.Vector3 {
	v := inv.Mul4x1(mgl64.Vec4{x, y, z, 1})
	if v.W() != 0 {
		v = v.Mul(1.0 / v.W())
	}
	return geometry.NewVector3(v.X(), v.Y(), v.Z())
}

func toVec(v geometry.Vector3) mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}
