package editor

import (
	"github.com/philipparndt/gosketch/pkg/geometry"
	"github.com/philipparndt/gosketch/pkg/sketch"
)

// fakeScene maps screen coordinates 1:1 onto the ground plane (x -> x, y -> z)
// and records every call the editor makes
type fakeScene struct {
	nextHandle sketch.SegmentHandle
	live       map[sketch.SegmentHandle][2]geometry.Vector3
	destroyed  []sketch.SegmentHandle

	solids  map[SolidID]*Solid
	updates int

	// pickSolid is returned by Pick when set, otherwise the ground is hit
	pickSolid SolidID
	// offGround makes every ray miss the ground
	offGround bool

	attached bool
	attaches int
	detaches int
}

func newFakeScene() *fakeScene {
	return &fakeScene{
		live:     make(map[sketch.SegmentHandle][2]geometry.Vector3),
		solids:   make(map[SolidID]*Solid),
		attached: true,
	}
}

func (s *fakeScene) Pick(x, y float64, filter PickFilter) PickResult {
	if s.pickSolid != "" && filter != PickGround {
		return PickResult{Hit: true, Point: geometry.NewVector3(x, 1, y), Solid: s.pickSolid}
	}
	if s.offGround || filter == PickSolids {
		return PickResult{}
	}
	return PickResult{Hit: true, Ground: true, Point: geometry.GroundPoint(x, y)}
}

func (s *fakeScene) GroundPoint(x, y float64) (geometry.Vector3, bool) {
	if s.offGround {
		return geometry.Vector3{}, false
	}
	return geometry.GroundPoint(x, y), true
}

func (s *fakeScene) CreateLineSegment(a, b geometry.Vector3) sketch.SegmentHandle {
	s.nextHandle++
	s.live[s.nextHandle] = [2]geometry.Vector3{a, b}
	return s.nextHandle
}

func (s *fakeScene) DestroySegment(h sketch.SegmentHandle) {
	delete(s.live, h)
	s.destroyed = append(s.destroyed, h)
}

func (s *fakeScene) AddSolid(solid *Solid)  { s.solids[solid.ID] = solid }
func (s *fakeScene) RemoveSolid(id SolidID) { delete(s.solids, id) }
func (s *fakeScene) UpdateSolid(*Solid)     { s.updates++ }

func (s *fakeScene) AttachCameraControl() {
	s.attached = true
	s.attaches++
}

func (s *fakeScene) DetachCameraControl() {
	s.attached = false
	s.detaches++
}

// newTestEditor returns an editor in drawing mode and the messages it shows
func newTestEditor() (*Editor, *fakeScene, *[]string) {
	scene := newFakeScene()
	var messages []string
	e := New(scene, Options{Notifier: func(msg string) { messages = append(messages, msg) }})
	if err := e.ToggleDrawing(); err != nil {
		panic(err)
	}
	return e, scene, &messages
}

func click(e *Editor, x, z float64) {
	e.HandlePointer(PointerEvent{Kind: PointerClick, X: x, Y: z})
}

func drawSquare(e *Editor, size float64) {
	click(e, 0, 0)
	click(e, size, 0)
	click(e, size, size)
	click(e, 0, size)
}
