// Package analysis computes statistics of normalized meshes.
package analysis

import (
	"fmt"
	"math"

	"github.com/philipparndt/stlpick/pkg/geometry"
	"github.com/philipparndt/stlpick/pkg/mesh"
)

// Result contains measurements of a normalized mesh
type Result struct {
	VertexCount   int
	TriangleCount int
	FaceLength    int // length of the padded face array
	EdgeCount     int // unique edges
	BoundingBox   geometry.BoundingBox
	Dimensions    geometry.Vector3
	SurfaceArea   float64
	MinEdgeLength float64
	MaxEdgeLength float64
	AvgEdgeLength float64
}

// FaceInfo describes a single cell
type FaceInfo struct {
	Cell   int
	Normal geometry.Vector3
	Center geometry.Vector3
	Area   float64
}

type edgeKey struct{ a, b int }

func newEdgeKey(a, b int) edgeKey {
	if a > b {
		a, b = b, a
	}
	return edgeKey{a, b}
}

// Analyze measures poly
func Analyze(poly *mesh.PolyData) *Result {
	result := &Result{
		VertexCount:   poly.NumPoints(),
		TriangleCount: poly.NumCells(),
		FaceLength:    len(poly.Faces),
		BoundingBox:   poly.BoundingBox(),
		SurfaceArea:   poly.SurfaceArea(),
	}
	if !result.BoundingBox.IsEmpty() {
		result.Dimensions = result.BoundingBox.Size()
	}

	// Shared edges are counted once
	seen := make(map[edgeKey]bool)
	minLength := math.MaxFloat64
	maxLength := 0.0
	totalLength := 0.0

	for i := 0; i < poly.NumCells(); i++ {
		idx := poly.Cell(i)
		for k := range idx {
			key := newEdgeKey(idx[k], idx[(k+1)%len(idx)])
			if seen[key] {
				continue
			}
			seen[key] = true

			length := poly.Points[key.a].Distance(poly.Points[key.b])
			totalLength += length
			minLength = math.Min(minLength, length)
			maxLength = math.Max(maxLength, length)
		}
	}

	result.EdgeCount = len(seen)
	if result.EdgeCount > 0 {
		result.MinEdgeLength = minLength
		result.MaxEdgeLength = maxLength
		result.AvgEdgeLength = totalLength / float64(result.EdgeCount)
	}

	return result
}

// Face measures a single cell of poly. Polygonal cells are fanned into
// triangles; the normal is that of the first triangle.
func Face(poly *mesh.PolyData, cell int) FaceInfo {
	info := FaceInfo{Cell: cell}

	cellPoly := poly.ExtractCell(cell)
	first := true
	cellPoly.Triangulate(func(_ int, tri geometry.Triangle) {
		if first {
			info.Normal = tri.Normal
			first = false
		}
		info.Area += tri.Area()
	})

	for _, p := range cellPoly.Points {
		info.Center = info.Center.Add(p)
	}
	if n := len(cellPoly.Points); n > 0 {
		info.Center = info.Center.Mul(1 / float64(n))
	}
	return info
}

// FormatVector formats a 3D vector
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}
