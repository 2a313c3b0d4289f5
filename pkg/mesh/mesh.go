package mesh

import (
	"fmt"

	"github.com/philipparndt/stlpick/pkg/geometry"
)

// Model is the result of loading a file: a *Mesh or a *Scene.
type Model interface {
	model()
}

// Mesh is an indexed triangle mesh
type Mesh struct {
	Vertices  []geometry.Vector3
	Triangles [][3]int
}

func (*Mesh) model() {}

// VertexCount returns the number of vertices
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// TriangleCount returns the number of triangles
func (m *Mesh) TriangleCount() int {
	return len(m.Triangles)
}

// Triangle returns the i-th triangle with resolved vertex positions
func (m *Mesh) Triangle(i int) geometry.Triangle {
	idx := m.Triangles[i]
	tri := geometry.Triangle{
		V1: m.Vertices[idx[0]],
		V2: m.Vertices[idx[1]],
		V3: m.Vertices[idx[2]],
	}
	tri.Normal = tri.CalculateNormal()
	return tri
}

// Validate checks that every triangle index refers to an existing vertex.
func (m *Mesh) Validate() error {
	for i, tri := range m.Triangles {
		for _, idx := range tri {
			if idx < 0 || idx >= len(m.Vertices) {
				return fmt.Errorf("%w: triangle %d references vertex %d of %d",
					ErrFormatConversion, i, idx, len(m.Vertices))
			}
		}
	}
	return nil
}

// BoundingBox returns the bounds of all vertices
func (m *Mesh) BoundingBox() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for _, v := range m.Vertices {
		bbox.Extend(v)
	}
	return bbox
}

// FromTriangles builds an indexed mesh from a triangle soup. Corners at the
// exact same position are merged into one vertex, in first-seen order.
func FromTriangles(triangles []geometry.Triangle) *Mesh {
	m := &Mesh{
		Vertices:  make([]geometry.Vector3, 0, len(triangles)),
		Triangles: make([][3]int, 0, len(triangles)),
	}

	index := make(map[geometry.Vector3]int, len(triangles))
	for _, tri := range triangles {
		var face [3]int
		for i, v := range tri.Vertices() {
			idx, ok := index[v]
			if !ok {
				idx = len(m.Vertices)
				index[v] = idx
				m.Vertices = append(m.Vertices, v)
			}
			face[i] = idx
		}
		m.Triangles = append(m.Triangles, face)
	}

	return m
}
