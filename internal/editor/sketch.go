package editor

import (
	"github.com/philipparndt/gosketch/internal/logx"
	"github.com/philipparndt/gosketch/pkg/geometry"
	"github.com/philipparndt/gosketch/pkg/sketch"
)

// OnGroundClick adds a vertex to the sketch. It is ignored unless the editor
// is drawing and the shape is still open. Every vertex after the first is
// connected to its predecessor by a new segment.
func (e *Editor) OnGroundClick(point geometry.Vector3) bool {
	if e.modes.Mode() != ModeDrawing {
		return false
	}
	if e.closed {
		logx.Logger().Debug("click ignored, shape is closed")
		return false
	}

	e.ledger.Add(point)
	e.connectLast()
	logx.Logger().Debug("vertex added", "x", point.X, "z", point.Z, "count", e.ledger.Len())
	return true
}

// Undo removes the last vertex and its segment. When the shape is closed the
// first undo only removes the closing segment and reopens it.
func (e *Editor) Undo() bool {
	if e.closed {
		if seg, ok := e.segments.PopLast(); ok {
			e.scene.DestroySegment(seg.Handle)
		}
		e.closed = false
		logx.Logger().Debug("shape reopened")
		return true
	}

	if _, ok := e.ledger.Undo(); !ok {
		return false
	}
	removed := e.ledger.Len()
	if e.segments.Len() > 0 {
		segs := e.segments.Segments()
		if segs[len(segs)-1].Edge.To == removed {
			seg, _ := e.segments.PopLast()
			e.scene.DestroySegment(seg.Handle)
		}
	}
	logx.Logger().Debug("vertex undone", "count", e.ledger.Len())
	return true
}

// Redo restores the most recently undone vertex and draws a new segment to it
func (e *Editor) Redo() bool {
	if e.closed {
		return false
	}
	if _, ok := e.ledger.Redo(); !ok {
		return false
	}
	e.connectLast()
	logx.Logger().Debug("vertex redone", "count", e.ledger.Len())
	return true
}

// CloseShape draws the segment from the last vertex back to the first.
// It needs at least three vertices and an open shape.
func (e *Editor) CloseShape() bool {
	n := e.ledger.Len()
	if e.closed || n < 3 {
		return false
	}

	first, _ := e.ledger.First()
	last, _ := e.ledger.Last()
	h := e.scene.CreateLineSegment(last, first)
	e.segments.Push(sketch.Edge{From: n - 1, To: 0}, h)
	e.closed = true
	logx.Logger().Debug("shape closed", "vertices", n)
	return true
}

// Clear destroys all segments and empties the ledger
func (e *Editor) Clear() {
	for _, seg := range e.segments.Drain() {
		e.scene.DestroySegment(seg.Handle)
	}
	e.ledger.Clear()
	e.closed = false
}

// Points returns a copy of the sketch vertices
func (e *Editor) Points() []geometry.Vector3 {
	return e.ledger.Points()
}

// Segments returns the live sketch segments
func (e *Editor) Segments() []sketch.Segment {
	return e.segments.Segments()
}

// ShapeClosed reports whether the closing segment is drawn
func (e *Editor) ShapeClosed() bool {
	return e.closed
}

func (e *Editor) connectLast() {
	n := e.ledger.Len()
	if n < 2 {
		return
	}
	h := e.scene.CreateLineSegment(e.ledger.At(n-2), e.ledger.At(n-1))
	e.segments.Push(sketch.Edge{From: n - 2, To: n - 1}, h)
}
