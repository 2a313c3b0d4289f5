package mesh

import (
	"fmt"

	"github.com/philipparndt/stlpick/pkg/geometry"
)

// triangleCellSize is the vertex count written in front of every triangle
const triangleCellSize = 3

// PolyData is a polygon mesh in the flat face-record layout
// [n, i0, ..., in-1, n, ...] where n is the vertex count of each cell.
type PolyData struct {
	Points []geometry.Vector3
	Faces  []int

	offsets []int // start of every cell record in Faces
}

// NewPolyData pads the triangles of m with their vertex count.
func NewPolyData(m *Mesh) (*PolyData, error) {
	if m == nil || m.TriangleCount() == 0 {
		return nil, fmt.Errorf("%w: mesh has no triangles", ErrFormatConversion)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}

	faces := make([]int, 0, m.TriangleCount()*(triangleCellSize+1))
	offsets := make([]int, 0, m.TriangleCount())
	for _, tri := range m.Triangles {
		offsets = append(offsets, len(faces))
		faces = append(faces, triangleCellSize, tri[0], tri[1], tri[2])
	}

	return &PolyData{
		Points:  m.Vertices,
		Faces:   faces,
		offsets: offsets,
	}, nil
}

// NewPolyDataFromFaces wraps an existing face-record array, validating its
// layout. Cells may have any vertex count of at least three.
func NewPolyDataFromFaces(points []geometry.Vector3, faces []int) (*PolyData, error) {
	var offsets []int
	for pos := 0; pos < len(faces); {
		n := faces[pos]
		if n < 3 || pos+1+n > len(faces) {
			return nil, fmt.Errorf("%w: malformed cell at offset %d", ErrFormatConversion, pos)
		}
		for _, idx := range faces[pos+1 : pos+1+n] {
			if idx < 0 || idx >= len(points) {
				return nil, fmt.Errorf("%w: cell at offset %d references vertex %d of %d",
					ErrFormatConversion, pos, idx, len(points))
			}
		}
		offsets = append(offsets, pos)
		pos += 1 + n
	}
	if len(offsets) == 0 {
		return nil, fmt.Errorf("%w: no cells", ErrFormatConversion)
	}

	return &PolyData{Points: points, Faces: faces, offsets: offsets}, nil
}

// NumPoints returns the number of points
func (p *PolyData) NumPoints() int {
	return len(p.Points)
}

// NumCells returns the number of face records
func (p *PolyData) NumCells() int {
	return len(p.offsets)
}

// Cell returns the vertex indices of the i-th cell
func (p *PolyData) Cell(i int) []int {
	start := p.offsets[i]
	n := p.Faces[start]
	return p.Faces[start+1 : start+1+n]
}

// Triangulate calls fn for every triangle of every cell. Cells with more
// than three vertices are split as a fan around their first vertex.
func (p *PolyData) Triangulate(fn func(cell int, tri geometry.Triangle)) {
	for i := range p.offsets {
		idx := p.Cell(i)
		for k := 1; k+1 < len(idx); k++ {
			tri := geometry.Triangle{
				V1: p.Points[idx[0]],
				V2: p.Points[idx[k]],
				V3: p.Points[idx[k+1]],
			}
			tri.Normal = tri.CalculateNormal()
			fn(i, tri)
		}
	}
}

// ExtractCell returns the i-th cell as a standalone PolyData with its own
// compact point list.
func (p *PolyData) ExtractCell(i int) *PolyData {
	idx := p.Cell(i)
	points := make([]geometry.Vector3, len(idx))
	faces := make([]int, 0, len(idx)+1)
	faces = append(faces, len(idx))
	for k, vi := range idx {
		points[k] = p.Points[vi]
		faces = append(faces, k)
	}
	return &PolyData{Points: points, Faces: faces, offsets: []int{0}}
}

// BoundingBox returns the bounds of all points
func (p *PolyData) BoundingBox() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for _, v := range p.Points {
		bbox.Extend(v)
	}
	return bbox
}

// SurfaceArea sums the area of all cells
func (p *PolyData) SurfaceArea() float64 {
	total := 0.0
	p.Triangulate(func(_ int, tri geometry.Triangle) {
		total += tri.Area()
	})
	return total
}
