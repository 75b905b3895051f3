package sketch

import (
	"testing"

	"github.com/philipparndt/gosketch/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pt(x, z float64) geometry.Vector3 {
	return geometry.GroundPoint(x, z)
}

func TestLedgerAddUndoRedo(t *testing.T) {
	var l Ledger
	l.Add(pt(0, 0))
	l.Add(pt(1, 0))
	l.Add(pt(1, 1))
	require.Equal(t, 3, l.Len())

	p, ok := l.Undo()
	require.True(t, ok)
	assert.Equal(t, pt(1, 1), p)
	assert.Equal(t, 2, l.Len())
	assert.True(t, l.CanRedo())

	p, ok = l.Redo()
	require.True(t, ok)
	assert.Equal(t, pt(1, 1), p)
	assert.Equal(t, []geometry.Vector3{pt(0, 0), pt(1, 0), pt(1, 1)}, l.Points())
	assert.False(t, l.CanRedo())
}

func TestLedgerRedoOrder(t *testing.T) {
	var l Ledger
	l.Add(pt(0, 0))
	l.Add(pt(1, 0))
	l.Add(pt(2, 0))
	l.Undo()
	l.Undo()

	p, _ := l.Redo()
	assert.Equal(t, pt(1, 0), p)
	p, _ = l.Redo()
	assert.Equal(t, pt(2, 0), p)
}

func TestLedgerAddClearsRedo(t *testing.T) {
	var l Ledger
	l.Add(pt(0, 0))
	l.Add(pt(1, 0))
	l.Undo()
	l.Add(pt(5, 5))

	_, ok := l.Redo()
	assert.False(t, ok)
	assert.Equal(t, []geometry.Vector3{pt(0, 0), pt(5, 5)}, l.Points())
}

func TestLedgerNoOps(t *testing.T) {
	var l Ledger
	_, ok := l.Undo()
	assert.False(t, ok)
	_, ok = l.Redo()
	assert.False(t, ok)
	_, ok = l.Last()
	assert.False(t, ok)
	assert.Equal(t, 0, l.Len())
}

// Length always equals clicks - applied undos + applied redos
func TestLedgerLengthProperty(t *testing.T) {
	ops := []string{"add", "add", "undo", "redo", "redo", "undo", "undo", "undo", "add", "redo", "add", "undo", "redo"}

	var l Ledger
	adds, undos, redos := 0, 0, 0
	for i, op := range ops {
		switch op {
		case "add":
			l.Add(pt(float64(i), 0))
			adds++
		case "undo":
			if _, ok := l.Undo(); ok {
				undos++
			}
		case "redo":
			if _, ok := l.Redo(); ok {
				redos++
			}
		}
		assert.Equal(t, adds-undos+redos, l.Len(), "after op %d (%s)", i, op)
		assert.Equal(t, l.Len(), l.UndoLen(), "after op %d (%s)", i, op)
		assert.Equal(t, l.Len() > 0, l.CanUndo())
		assert.LessOrEqual(t, redos, undos)
	}
}

func TestLedgerClear(t *testing.T) {
	var l Ledger
	l.Add(pt(0, 0))
	l.Add(pt(1, 0))
	l.Undo()
	l.Clear()

	assert.Equal(t, 0, l.Len())
	assert.False(t, l.CanUndo())
	assert.False(t, l.CanRedo())
}

func TestLedgerPointsIsCopy(t *testing.T) {
	var l Ledger
	l.Add(pt(0, 0))
	points := l.Points()
	points[0] = pt(9, 9)

	first, _ := l.First()
	assert.Equal(t, pt(0, 0), first)
}

func TestTracker(t *testing.T) {
	var tr Tracker
	tr.Push(Edge{0, 1}, 10)
	tr.Push(Edge{1, 2}, 11)
	assert.False(t, tr.Closing())

	tr.Push(Edge{2, 0}, 12)
	assert.True(t, tr.Closing())
	assert.Equal(t, 3, tr.Len())

	s, ok := tr.PopLast()
	require.True(t, ok)
	assert.Equal(t, SegmentHandle(12), s.Handle)
	assert.Equal(t, "2->0", s.Edge.String())

	drained := tr.Drain()
	assert.Len(t, drained, 2)
	assert.Equal(t, SegmentHandle(10), drained[0].Handle)
	assert.Equal(t, 0, tr.Len())

	_, ok = tr.PopLast()
	assert.False(t, ok)
}
