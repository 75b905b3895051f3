package sketch

import "fmt"

// SegmentHandle identifies a line segment created by a rendering front end
type SegmentHandle uint64

// Edge names the two ledger indices a segment connects
type Edge struct {
	From, To int
}

// IsClosing reports whether the edge runs from the last vertex back to the first
func (e Edge) IsClosing() bool {
	return e.To == 0 && e.From > 0
}

func (e Edge) String() string {
	return fmt.Sprintf("%d->%d", e.From, e.To)
}

// Segment pairs a rendered handle with the edge it draws
type Segment struct {
	Edge   Edge
	Handle SegmentHandle
}

// Tracker keeps the rendered segments of the sketch in creation order
type Tracker struct {
	segments []Segment
}

// Push records a newly created segment
func (t *Tracker) Push(edge Edge, handle SegmentHandle) {
	t.segments = append(t.segments, Segment{Edge: edge, Handle: handle})
}

// PopLast removes and returns the most recently created segment
func (t *Tracker) PopLast() (Segment, bool) {
	if len(t.segments) == 0 {
		return Segment{}, false
	}
	s := t.segments[len(t.segments)-1]
	t.segments = t.segments[:len(t.segments)-1]
	return s, true
}

// Drain removes and returns every segment, oldest first
func (t *Tracker) Drain() []Segment {
	out := t.segments
	t.segments = nil
	return out
}

// Len returns the number of live segments
func (t *Tracker) Len() int {
	return len(t.segments)
}

// Segments returns a copy of the live segments
func (t *Tracker) Segments() []Segment {
	out := make([]Segment, len(t.segments))
	copy(out, t.segments)
	return out
}

// Closing reports whether the most recent segment closes the outline
func (t *Tracker) Closing() bool {
	if len(t.segments) == 0 {
		return false
	}
	return t.segments[len(t.segments)-1].Edge.IsClosing()
}
