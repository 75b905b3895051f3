// Package viewer provides a fyne widget that renders the editor scene with a
// software rasterizer and forwards pointer input to the editor.
package viewer

import (
	"image"
	"image/color"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/philipparndt/gosketch/internal/editor"
	"github.com/philipparndt/gosketch/internal/headless"
	"github.com/philipparndt/gosketch/pkg/camera"
	"github.com/philipparndt/gosketch/pkg/geometry"
	"github.com/philipparndt/gosketch/pkg/sketch"
)

// Colors used when drawing the scene
type Colors struct {
	Background color.RGBA
	Grid       color.RGBA
	Segment    color.RGBA
	Vertex     color.RGBA
}

// DefaultColors matches the editor's dark theme
var DefaultColors = Colors{
	Background: color.RGBA{30, 30, 35, 255},
	Grid:       color.RGBA{80, 80, 90, 255},
	Segment:    color.RGBA{255, 215, 0, 255},
	Vertex:     color.RGBA{255, 80, 80, 255},
}

// lightDir is the direction light travels in for the baked diffuse shading
var lightDir = geometry.NewVector3(-0.5, -1.0, -0.3).Normalize()

// SketchView is a fyne widget implementing editor.Scene. Segment and solid
// bookkeeping and picking are delegated to a headless scene sharing the
// widget's camera; the widget adds drawing and input.
type SketchView struct {
	widget.BaseWidget

	scene  *headless.Scene
	editor *editor.Editor
	raster *canvas.Raster

	colors      Colors
	gridSize    int
	gridSpacing float64

	// drag gesture state
	dragging  bool
	orbiting  bool
	lastDrag  fyne.Position
	onChanged func()
}

// NewSketchView creates the widget with an orbit camera looking at the origin
func NewSketchView(extent float64) *SketchView {
	scene := headless.New(extent)
	scene.Camera = camera.NewOrbit(geometry.GroundPoint(0, 0), extent)
	v := &SketchView{
		scene:       scene,
		colors:      DefaultColors,
		gridSize:    20,
		gridSpacing: 1,
	}
	v.raster = canvas.NewRaster(v.Render)
	v.ExtendBaseWidget(v)
	return v
}

// SetEditor connects the widget to the editor it forwards input to
func (v *SketchView) SetEditor(e *editor.Editor) {
	v.editor = e
}

// SetOnChanged sets a callback run after input changed the editor state
func (v *SketchView) SetOnChanged(fn func()) {
	v.onChanged = fn
}

// SetColors changes the theme and redraws
func (v *SketchView) SetColors(c Colors) {
	v.colors = c
	v.Refresh()
}

// SetGrid changes the ground grid and redraws
func (v *SketchView) SetGrid(size int, spacing float64) {
	v.gridSize = size
	v.gridSpacing = spacing
	v.Refresh()
}

// Camera returns the view camera
func (v *SketchView) Camera() *camera.Camera {
	return v.scene.Camera
}

// CreateRenderer creates the renderer for the widget
func (v *SketchView) CreateRenderer() fyne.WidgetRenderer {
	return &sketchViewRenderer{view: v, objects: []fyne.CanvasObject{v.raster}}
}

// Resize keeps the picking viewport in sync with the widget size
func (v *SketchView) Resize(size fyne.Size) {
	v.scene.Width = float64(size.Width)
	v.scene.Height = float64(size.Height)
	v.BaseWidget.Resize(size)
}

// Pick casts the pointer ray against solids and the ground
func (v *SketchView) Pick(x, y float64, filter editor.PickFilter) editor.PickResult {
	return v.scene.Pick(x, y, filter)
}

// GroundPoint intersects the pointer ray with the ground plane
func (v *SketchView) GroundPoint(x, y float64) (geometry.Vector3, bool) {
	return v.scene.GroundPoint(x, y)
}

// CreateLineSegment adds a sketch segment and redraws
func (v *SketchView) CreateLineSegment(a, b geometry.Vector3) sketch.SegmentHandle {
	h := v.scene.CreateLineSegment(a, b)
	v.Refresh()
	return h
}

// DestroySegment removes a sketch segment and redraws
func (v *SketchView) DestroySegment(h sketch.SegmentHandle) {
	v.scene.DestroySegment(h)
	v.Refresh()
}

// AddSolid adds a solid and redraws
func (v *SketchView) AddSolid(s *editor.Solid) {
	v.scene.AddSolid(s)
	v.Refresh()
}

// RemoveSolid removes a solid and redraws
func (v *SketchView) RemoveSolid(id editor.SolidID) {
	v.scene.RemoveSolid(id)
	v.Refresh()
}

// UpdateSolid redraws after a solid moved or changed material
func (v *SketchView) UpdateSolid(s *editor.Solid) {
	v.scene.UpdateSolid(s)
	v.Refresh()
}

// AttachCameraControl lets drags orbit the camera
func (v *SketchView) AttachCameraControl() { v.scene.AttachCameraControl() }

// DetachCameraControl routes drags to the editor instead of the camera
func (v *SketchView) DetachCameraControl() { v.scene.DetachCameraControl() }

// Tapped forwards a click to the editor
func (v *SketchView) Tapped(ev *fyne.PointEvent) {
	v.pointer(editor.PointerClick, ev.Position)
}

// Dragged orbits the camera or, while camera control is detached, forwards
// the gesture to the editor as down and move events
func (v *SketchView) Dragged(ev *fyne.DragEvent) {
	if !v.dragging {
		v.dragging = true
		v.orbiting = v.scene.CameraAttached()
		if !v.orbiting {
			start := ev.Position.Subtract(ev.Dragged)
			v.pointer(editor.PointerDown, start)
		}
	}
	v.lastDrag = ev.Position

	if v.orbiting {
		v.scene.Camera.Rotate(float64(ev.Dragged.DY)*0.01, float64(-ev.Dragged.DX)*0.01)
		v.Refresh()
		return
	}
	v.pointer(editor.PointerMove, ev.Position)
}

// DragEnd finishes the current drag gesture
func (v *SketchView) DragEnd() {
	if v.dragging && !v.orbiting {
		v.pointer(editor.PointerUp, v.lastDrag)
	}
	v.dragging = false
	v.orbiting = false
}

// Scrolled zooms the camera
func (v *SketchView) Scrolled(ev *fyne.ScrollEvent) {
	v.scene.Camera.Zoom(-float64(ev.Scrolled.DY) * 0.001)
	v.Refresh()
}

func (v *SketchView) pointer(kind editor.PointerKind, pos fyne.Position) {
	if v.editor == nil {
		return
	}
	if v.editor.HandlePointer(editor.PointerEvent{Kind: kind, X: float64(pos.X), Y: float64(pos.Y)}) && v.onChanged != nil {
		v.onChanged()
	}
}

// Render draws the scene into an image of w x h pixels
func (v *SketchView) Render(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i+0] = v.colors.Background.R
		img.Pix[i+1] = v.colors.Background.G
		img.Pix[i+2] = v.colors.Background.B
		img.Pix[i+3] = v.colors.Background.A
	}
	if w == 0 || h == 0 {
		return img
	}

	project := func(p geometry.Vector3) (screenVertex, bool) {
		x, y, depth, ok := v.scene.Camera.Project(p, float64(w), float64(h))
		return screenVertex{x: x, y: y, z: depth}, ok && depth > 0
	}
	line := func(a, b geometry.Vector3, col color.RGBA, thick bool) {
		pa, okA := project(a)
		pb, okB := project(b)
		if !okA || !okB {
			return
		}
		if thick {
			drawThickLine(img, int(pa.x), int(pa.y), int(pb.x), int(pb.y), col)
			return
		}
		drawLine(img, int(pa.x), int(pa.y), int(pb.x), int(pb.y), col)
	}

	// Ground grid
	half := float64(v.gridSize) / 2 * v.gridSpacing
	for i := 0; i <= v.gridSize; i++ {
		o := -half + float64(i)*v.gridSpacing
		line(geometry.GroundPoint(o, -half), geometry.GroundPoint(o, half), v.colors.Grid, false)
		line(geometry.GroundPoint(-half, o), geometry.GroundPoint(half, o), v.colors.Grid, false)
	}

	// Solids with depth testing
	zbuffer := make([]float64, w*h)
	for i := range zbuffer {
		zbuffer[i] = math.Inf(1)
	}
	for _, solid := range v.scene.Solids() {
		for _, tri := range solid.WorldMesh().Triangles {
			var sv [3]screenVertex
			visible := true
			for i, p := range [3]geometry.Vector3{tri.V1, tri.V2, tri.V3} {
				var ok bool
				if sv[i], ok = project(p); !ok {
					visible = false
					break
				}
			}
			if !visible {
				continue
			}
			intensity := -tri.CalculateNormal().Dot(lightDir)
			fillTriangle(img, zbuffer, sv, shade(solid.Material.Color, intensity))
		}
	}

	// Sketch segments and vertices on top
	for _, seg := range v.scene.Segments() {
		line(seg.A, seg.B, v.colors.Segment, true)
	}
	if v.editor != nil {
		for _, p := range v.editor.Points() {
			if sp, ok := project(p); ok {
				fillSquare(img, int(sp.x), int(sp.y), 3, v.colors.Vertex)
			}
		}
	}
	return img
}

// sketchViewRenderer implements fyne.WidgetRenderer
type sketchViewRenderer struct {
	view    *SketchView
	objects []fyne.CanvasObject
}

func (r *sketchViewRenderer) Layout(size fyne.Size) {
	r.view.raster.Resize(size)
}

func (r *sketchViewRenderer) MinSize() fyne.Size {
	return fyne.NewSize(400, 400)
}

func (r *sketchViewRenderer) Refresh() {
	r.view.raster.Refresh()
}

func (r *sketchViewRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *sketchViewRenderer) Destroy() {}
