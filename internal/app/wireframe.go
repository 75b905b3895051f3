package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/philipparndt/gosketch/pkg/stl"
)

// drawSolidEdges outlines a mesh with thin cylinders. Triangulation
// diagonals are skipped: only edges between faces that are not coplanar are
// drawn, so an extruded solid shows its outline and vertical edges.
func (app *App) drawSolidEdges(model *stl.Model, col rl.Color) {
	thickness := app.Camera.distance * 0.0008 // Scale with camera distance for constant screen thickness
	cylinderSegments := int32(6)

	normals := make(map[[2]rl.Vector3][]rl.Vector3)
	for _, triangle := range model.Triangles {
		n := toRL(triangle.CalculateNormal())
		vertices := [3]rl.Vector3{toRL(triangle.V1), toRL(triangle.V2), toRL(triangle.V3)}
		for i := 0; i < 3; i++ {
			key := edgeKey(vertices[i], vertices[(i+1)%3])
			normals[key] = append(normals[key], n)
		}
	}

	for key, ns := range normals {
		if len(ns) == 2 && rl.Vector3DotProduct(ns[0], ns[1]) > 0.999 {
			continue
		}
		rl.DrawCylinderEx(key[0], key[1], thickness, thickness, cylinderSegments, col)
	}
}

// edgeKey orders the endpoints so both directions map to the same edge
func edgeKey(a, b rl.Vector3) [2]rl.Vector3 {
	if a.X < b.X || (a.X == b.X && (a.Y < b.Y || (a.Y == b.Y && a.Z < b.Z))) {
		return [2]rl.Vector3{a, b}
	}
	return [2]rl.Vector3{b, a}
}
