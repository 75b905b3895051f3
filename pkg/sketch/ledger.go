// Package sketch holds the in-progress outline of the editor: the ordered
// vertex ledger with its undo/redo history and the rendered edge segments.
package sketch

import "github.com/philipparndt/gosketch/pkg/geometry"

// Ledger is the ordered list of sketch vertices plus undo and redo stacks.
// The undo stack holds the indices of the points in the order they were
// added, so its top is always the last point. The zero value is an empty
// ledger ready to use.
type Ledger struct {
	points []geometry.Vector3
	undo   []int
	redo   []geometry.Vector3 // top of stack is the last element
}

// Add appends a point, records it for undo and discards the redo history
func (l *Ledger) Add(p geometry.Vector3) {
	l.undo = append(l.undo, len(l.points))
	l.points = append(l.points, p)
	l.redo = l.redo[:0]
}

// Undo removes the last point and pushes it onto the redo stack.
// It reports false when there is nothing to undo.
func (l *Ledger) Undo() (geometry.Vector3, bool) {
	if len(l.undo) == 0 {
		return geometry.Vector3{}, false
	}

	i := l.undo[len(l.undo)-1]
	l.undo = l.undo[:len(l.undo)-1]
	last := l.points[i]
	l.points = l.points[:i]
	l.redo = append(l.redo, last)
	return last, true
}

// Redo moves the most recently undone point back onto the end of the ledger.
// It reports false when the redo stack is empty.
func (l *Ledger) Redo() (geometry.Vector3, bool) {
	if len(l.redo) == 0 {
		return geometry.Vector3{}, false
	}

	p := l.redo[len(l.redo)-1]
	l.redo = l.redo[:len(l.redo)-1]
	l.undo = append(l.undo, len(l.points))
	l.points = append(l.points, p)
	return p, true
}

// Clear empties the ledger and both history stacks
func (l *Ledger) Clear() {
	l.points = nil
	l.undo = nil
	l.redo = nil
}

// Len returns the number of points in the ledger
func (l *Ledger) Len() int {
	return len(l.points)
}

// Points returns a copy of the ledger points in insertion order
func (l *Ledger) Points() []geometry.Vector3 {
	out := make([]geometry.Vector3, len(l.points))
	copy(out, l.points)
	return out
}

// At returns the i-th point
func (l *Ledger) At(i int) geometry.Vector3 {
	return l.points[i]
}

// Last returns the most recently added point
func (l *Ledger) Last() (geometry.Vector3, bool) {
	if len(l.points) == 0 {
		return geometry.Vector3{}, false
	}
	return l.points[len(l.points)-1], true
}

// First returns the first point of the outline
func (l *Ledger) First() (geometry.Vector3, bool) {
	if len(l.points) == 0 {
		return geometry.Vector3{}, false
	}
	return l.points[0], true
}

// CanUndo reports whether Undo would remove a point
func (l *Ledger) CanUndo() bool {
	return len(l.undo) > 0
}

// UndoLen returns the depth of the undo stack
func (l *Ledger) UndoLen() int {
	return len(l.undo)
}

// CanRedo reports whether Redo would restore a point
func (l *Ledger) CanRedo() bool {
	return len(l.redo) > 0
}

// RedoLen returns the depth of the redo stack
func (l *Ledger) RedoLen() int {
	return len(l.redo)
}
