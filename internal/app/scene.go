package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/philipparndt/gosketch/internal/editor"
	"github.com/philipparndt/gosketch/internal/headless"
	"github.com/philipparndt/gosketch/pkg/geometry"
)

// solidMesh is the GPU copy of a solid, baked with its material colour
type solidMesh struct {
	mesh     rl.Mesh
	material editor.Material
}

// scene implements editor.Scene on top of raylib. Segment and solid
// bookkeeping and ray picking come from the headless scene; this type adds
// the raylib camera ray and GPU meshes.
type scene struct {
	*headless.Scene
	camera *CameraState
	meshes map[editor.SolidID]solidMesh

	// revision counts solid changes for autosave
	revision int
}

func newScene(camera *CameraState) *scene {
	return &scene{
		Scene:  headless.New(1),
		camera: camera,
		meshes: make(map[editor.SolidID]solidMesh),
	}
}

// mouseRay converts the raylib pick ray under a screen position
func (s *scene) mouseRay(x, y float64) geometry.Ray {
	ray := rl.GetMouseRay(rl.Vector2{X: float32(x), Y: float32(y)}, s.camera.camera)
	return geometry.NewRay(
		geometry.NewVector3(float64(ray.Position.X), float64(ray.Position.Y), float64(ray.Position.Z)),
		geometry.NewVector3(float64(ray.Direction.X), float64(ray.Direction.Y), float64(ray.Direction.Z)),
	)
}

// Pick casts the mouse ray against solids and the ground
func (s *scene) Pick(x, y float64, filter editor.PickFilter) editor.PickResult {
	return s.PickRay(s.mouseRay(x, y), filter)
}

// GroundPoint intersects the mouse ray with the ground plane
func (s *scene) GroundPoint(x, y float64) (geometry.Vector3, bool) {
	return s.mouseRay(x, y).IntersectGround()
}

// AddSolid uploads the solid's mesh
func (s *scene) AddSolid(solid *editor.Solid) {
	s.Scene.AddSolid(solid)
	s.upload(solid)
	s.revision++
}

// RemoveSolid frees the solid's mesh
func (s *scene) RemoveSolid(id editor.SolidID) {
	s.Scene.RemoveSolid(id)
	if m, ok := s.meshes[id]; ok {
		rl.UnloadMesh(&m.mesh)
		delete(s.meshes, id)
	}
	s.revision++
}

// UpdateSolid rebakes the mesh when the material changed. Positions are
// applied as a transform when drawing.
func (s *scene) UpdateSolid(solid *editor.Solid) {
	s.Scene.UpdateSolid(solid)
	if m, ok := s.meshes[solid.ID]; ok && m.material != solid.Material {
		rl.UnloadMesh(&m.mesh)
		s.upload(solid)
	}
	s.revision++
}

func (s *scene) upload(solid *editor.Solid) {
	s.meshes[solid.ID] = solidMesh{
		mesh:     stlToRaylibMesh(solid.Mesh, solid.Material.Color),
		material: solid.Material,
	}
}

// unloadAll frees every GPU mesh
func (s *scene) unloadAll() {
	for id, m := range s.meshes {
		rl.UnloadMesh(&m.mesh)
		delete(s.meshes, id)
	}
}
