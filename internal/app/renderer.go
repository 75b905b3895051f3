package app

import (
	"image/color"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/philipparndt/gosketch/pkg/geometry"
	"github.com/philipparndt/gosketch/pkg/stl"
)

// lightDir is the direction of the baked light
var lightDir = geometry.NewVector3(-0.5, -1.0, -0.5).Normalize()

// stlToRaylibMesh converts a model to a raylib mesh with lighting baked into
// the vertex colours
func stlToRaylibMesh(model *stl.Model, base color.RGBA) rl.Mesh {
	triangleCount := len(model.Triangles)
	vertexCount := triangleCount * 3

	mesh := rl.Mesh{
		VertexCount:   int32(vertexCount),
		TriangleCount: int32(triangleCount),
	}

	vertices := make([]float32, 0, vertexCount*3)
	normals := make([]float32, 0, vertexCount*3)
	texcoords := make([]float32, vertexCount*2)
	colors := make([]uint8, 0, vertexCount*4)

	for _, triangle := range model.Triangles {
		normal := triangle.CalculateNormal()

		// Min 35% ambient, max 100% diffuse
		intensity := math.Max(0.35, -normal.Dot(lightDir))
		r := uint8(float64(base.R) * intensity)
		g := uint8(float64(base.G) * intensity)
		b := uint8(float64(base.B) * intensity)

		for _, v := range [3]geometry.Vector3{triangle.V1, triangle.V2, triangle.V3} {
			vertices = append(vertices, float32(v.X), float32(v.Y), float32(v.Z))
			normals = append(normals, float32(normal.X), float32(normal.Y), float32(normal.Z))
			colors = append(colors, r, g, b, base.A)
		}
	}

	if len(vertices) > 0 {
		mesh.Vertices = &vertices[0]
		mesh.Normals = &normals[0]
		mesh.Texcoords = &texcoords[0]
		mesh.Colors = &colors[0]
	}

	// Upload mesh data to GPU
	rl.UploadMesh(&mesh, false)

	return mesh
}

func toRL(v geometry.Vector3) rl.Vector3 {
	return rl.Vector3{X: float32(v.X), Y: float32(v.Y), Z: float32(v.Z)}
}

// drawGrid draws the ground grid around the origin
func (app *App) drawGrid() {
	n := app.View.gridSize
	spacing := app.View.gridSpacing
	half := float32(n) / 2 * spacing
	for i := 0; i <= n; i++ {
		o := -half + float32(i)*spacing
		col := app.View.grid
		if math.Abs(float64(o)) < 1e-6 {
			col = brighten(col)
		}
		rl.DrawLine3D(rl.Vector3{X: o, Z: -half}, rl.Vector3{X: o, Z: half}, col)
		rl.DrawLine3D(rl.Vector3{X: -half, Z: o}, rl.Vector3{X: half, Z: o}, col)
	}
}

// brighten marks the axis lines of the grid
func brighten(c rl.Color) rl.Color {
	lift := func(v uint8) uint8 {
		return uint8(math.Min(255, float64(v)+60))
	}
	return rl.NewColor(lift(c.R), lift(c.G), lift(c.B), 255)
}

// drawSolids draws every solid's mesh at its position
func (app *App) drawSolids() {
	for _, solid := range app.scene.Solids() {
		m, ok := app.scene.meshes[solid.ID]
		if !ok {
			continue
		}
		p := solid.Position
		rl.DrawMesh(m.mesh, app.material, rl.MatrixTranslate(float32(p.X), float32(p.Y), float32(p.Z)))
	}
	if solid, ok := app.editor.Selected(); ok {
		app.drawSolidEdges(solid.WorldMesh(), rl.White)
	}
}

// drawSketch draws the sketch segments and vertices slightly above the ground
func (app *App) drawSketch() {
	lift := rl.Vector3{Y: 0.01}
	for _, seg := range app.scene.Segments() {
		rl.DrawLine3D(rl.Vector3Add(toRL(seg.A), lift), rl.Vector3Add(toRL(seg.B), lift), app.View.segment)
	}
	size := app.Camera.distance * 0.006
	for _, p := range app.editor.Points() {
		rl.DrawSphere(toRL(p), size, app.View.vertex)
	}
}
