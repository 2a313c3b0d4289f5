package mesh

import "github.com/go-gl/mathgl/mgl64"

// Geometry is one named mesh of a scene with its local-to-scene transform
type Geometry struct {
	Name      string
	Mesh      *Mesh
	Transform mgl64.Mat4
}

// Scene is an ordered collection of geometries
type Scene struct {
	Geometries []Geometry
}

func (*Scene) model() {}

// Add appends a geometry to the scene
func (s *Scene) Add(name string, m *Mesh, transform mgl64.Mat4) {
	s.Geometries = append(s.Geometries, Geometry{Name: name, Mesh: m, Transform: transform})
}

// Len returns the number of geometries
func (s *Scene) Len() int {
	return len(s.Geometries)
}
