package analysis

import (
	"math"
	"testing"

	"github.com/philipparndt/stlpick/pkg/geometry"
	"github.com/philipparndt/stlpick/pkg/mesh/meshtest"
)

func TestAnalyzeCube(t *testing.T) {
	result := Analyze(meshtest.CubePolyData())

	if result.VertexCount != 8 || result.TriangleCount != 12 {
		t.Errorf("expected 8 vertices / 12 triangles, got %d / %d", result.VertexCount, result.TriangleCount)
	}
	if result.FaceLength != 48 {
		t.Errorf("expected face length 48, got %d", result.FaceLength)
	}
	// 12 cube edges plus one diagonal per side
	if result.EdgeCount != 18 {
		t.Errorf("expected 18 unique edges, got %d", result.EdgeCount)
	}
	if result.Dimensions != geometry.NewVector3(2, 2, 2) {
		t.Errorf("expected 2x2x2 dimensions, got %v", result.Dimensions)
	}
	if math.Abs(result.SurfaceArea-24) > 1e-9 {
		t.Errorf("expected surface area 24, got %v", result.SurfaceArea)
	}
	if result.MinEdgeLength != 2 || math.Abs(result.MaxEdgeLength-2*math.Sqrt2) > 1e-9 {
		t.Errorf("unexpected edge range %v..%v", result.MinEdgeLength, result.MaxEdgeLength)
	}
}

func TestFace(t *testing.T) {
	// Cell 2 is the first +Z triangle
	info := Face(meshtest.CubePolyData(), 2)

	if info.Cell != 2 {
		t.Errorf("expected cell 2, got %d", info.Cell)
	}
	if info.Normal != geometry.NewVector3(0, 0, 1) {
		t.Errorf("expected +Z normal, got %v", info.Normal)
	}
	if math.Abs(info.Area-2) > 1e-9 {
		t.Errorf("expected area 2, got %v", info.Area)
	}
	if math.Abs(info.Center.Z-1) > 1e-9 {
		t.Errorf("expected centre on z=1, got %v", info.Center)
	}
}

func TestFormatVector(t *testing.T) {
	got := FormatVector(geometry.NewVector3(1, -2.5, 0))
	want := "(1.000000, -2.500000, 0.000000)"
	if got != want {
		t.Errorf("FormatVector() = %q, want %q", got, want)
	}
}
