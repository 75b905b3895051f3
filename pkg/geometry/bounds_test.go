package geometry

import (
	"math"
	"testing"
)

func TestBoundingBoxExtend(t *testing.T) {
	bbox := NewBoundingBox()
	if !bbox.IsEmpty() {
		t.Fatalf("new bounding box should be empty")
	}

	bbox.Extend(NewVector3(1, 2, 3))
	bbox.Extend(NewVector3(-1, 0, 5))

	if bbox.Min != NewVector3(-1, 0, 3) {
		t.Errorf("Min failed: got %v", bbox.Min)
	}
	if bbox.Max != NewVector3(1, 2, 5) {
		t.Errorf("Max failed: got %v", bbox.Max)
	}
	if bbox.Center() != NewVector3(0, 1, 4) {
		t.Errorf("Center failed: got %v", bbox.Center())
	}
}

func TestBoundingBoxVolume(t *testing.T) {
	bbox := NewBoundingBox()
	bbox.Extend(NewVector3(0, 0, 0))
	bbox.Extend(NewVector3(2, 3, 4))

	if math.Abs(bbox.Volume()-24) > 1e-10 {
		t.Errorf("Volume failed: expected 24, got %v", bbox.Volume())
	}
}

func TestEmptyBoundingBoxSize(t *testing.T) {
	bbox := NewBoundingBox()
	if bbox.Size() != (Vector3{}) {
		t.Errorf("Size of empty box should be zero, got %v", bbox.Size())
	}
}
