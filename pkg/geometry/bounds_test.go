package geometry

import (
	"math"
	"testing"
)

func TestBoundingBoxExtend(t *testing.T) {
	bbox := NewBoundingBox()

	bbox.Extend(NewVector3(1, 2, 3))
	bbox.Extend(NewVector3(4, 5, 6))
	bbox.Extend(NewVector3(-1, 0, 2))

	expectedMin := NewVector3(-1, 0, 2)
	expectedMax := NewVector3(4, 5, 6)

	if bbox.Min != expectedMin {
		t.Errorf("Min failed: expected %v, got %v", expectedMin, bbox.Min)
	}
	if bbox.Max != expectedMax {
		t.Errorf("Max failed: expected %v, got %v", expectedMax, bbox.Max)
	}
}

func TestBoundingBoxEmpty(t *testing.T) {
	bbox := NewBoundingBox()

	if !bbox.IsEmpty() {
		t.Error("new bounding box should be empty")
	}
	if bbox.Size() != (Vector3{}) {
		t.Errorf("empty box should have zero size, got %v", bbox.Size())
	}

	var other BoundingBox = NewBoundingBox()
	other.Extend(NewVector3(1, 1, 1))
	bbox.Union(other)
	if bbox.IsEmpty() {
		t.Error("union with non-empty box should not be empty")
	}
}

func TestBoundingBoxCenterAndDimension(t *testing.T) {
	bbox := NewBoundingBox()
	bbox.Extend(NewVector3(0, 0, 0))
	bbox.Extend(NewVector3(10, 20, 30))

	if center := bbox.Center(); center != NewVector3(5, 10, 15) {
		t.Errorf("Center failed: got %v", center)
	}
	if dim := bbox.MaxDimension(); dim != 30 {
		t.Errorf("MaxDimension failed: expected 30, got %v", dim)
	}
	if math.Abs(bbox.Diagonal()-math.Sqrt(1400)) > 1e-10 {
		t.Errorf("Diagonal failed: got %v", bbox.Diagonal())
	}
}
