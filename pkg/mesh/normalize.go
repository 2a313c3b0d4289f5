package mesh

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/stlpick/pkg/geometry"
)

// Normalize flattens a loaded model into a single mesh. A single mesh is
// returned as is; the geometries of a scene are transformed into the scene
// frame and concatenated.
func Normalize(model Model) (*Mesh, error) {
	switch m := model.(type) {
	case *Mesh:
		if m == nil {
			return nil, fmt.Errorf("%w: no mesh", ErrFormatConversion)
		}
		return m, nil
	case *Scene:
		return concatenate(m)
	default:
		return nil, fmt.Errorf("%w: unsupported model type %T", ErrLoader, model)
	}
}

func concatenate(scene *Scene) (*Mesh, error) {
	if scene == nil || scene.Len() == 0 {
		return nil, ErrEmptyModel
	}

	vertexTotal, triangleTotal := 0, 0
	for _, g := range scene.Geometries {
		if g.Mesh == nil {
			continue
		}
		vertexTotal += g.Mesh.VertexCount()
		triangleTotal += g.Mesh.TriangleCount()
	}

	combined := &Mesh{
		Vertices:  make([]geometry.Vector3, 0, vertexTotal),
		Triangles: make([][3]int, 0, triangleTotal),
	}

	for _, g := range scene.Geometries {
		if g.Mesh == nil {
			continue
		}
		if err := g.Mesh.Validate(); err != nil {
			return nil, fmt.Errorf("geometry %q: %w", g.Name, err)
		}

		transform := g.Transform
		if transform == (mgl64.Mat4{}) {
			transform = mgl64.Ident4()
		}

		offset := len(combined.Vertices)
		for _, v := range g.Mesh.Vertices {
			combined.Vertices = append(combined.Vertices, v.Transform(transform))
		}
		for _, tri := range g.Mesh.Triangles {
			combined.Triangles = append(combined.Triangles, [3]int{
				tri[0] + offset,
				tri[1] + offset,
				tri[2] + offset,
			})
		}
	}

	return combined, nil
}

// Prepare normalizes a model and pads its faces for rendering.
func Prepare(model Model) (*PolyData, error) {
	m, err := Normalize(model)
	if err != nil {
		return nil, err
	}
	return NewPolyData(m)
}
