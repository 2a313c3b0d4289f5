// Package threemf reads 3MF packages into mesh scenes using go3mf.
package threemf

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hpinc/go3mf"
	"github.com/philipparndt/stlpick/pkg/geometry"
	"github.com/philipparndt/stlpick/pkg/mesh"
)

// maxComponentDepth bounds component nesting, which also stops reference cycles
const maxComponentDepth = 32

// Load opens a 3MF package and resolves its build items into a scene.
func Load(path string) (*mesh.Scene, error) {
	r, err := go3mf.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open 3MF package: %w", err)
	}
	defer r.Close()

	var model go3mf.Model
	if err := r.Decode(&model); err != nil {
		return nil, fmt.Errorf("failed to decode 3MF model: %w", err)
	}

	return FromModel(&model)
}

// FromModel converts a decoded 3MF model. Every build item that resolves to
// mesh data becomes one geometry per mesh object, carrying the composed
// item and component transforms. Items without mesh data are skipped.
func FromModel(model *go3mf.Model) (*mesh.Scene, error) {
	b := &sceneBuilder{
		objects: make(map[uint32]*go3mf.Object, len(model.Resources.Objects)),
		meshes:  make(map[uint32]*mesh.Mesh),
		names:   make(map[string]int),
		scene:   &mesh.Scene{},
	}
	for _, obj := range model.Resources.Objects {
		b.objects[obj.ID] = obj
	}

	for _, item := range model.Build.Items {
		if err := b.addObject(item.ObjectID, ToMat4(item.Transform), 0); err != nil {
			return nil, err
		}
	}

	return b.scene, nil
}

type sceneBuilder struct {
	objects map[uint32]*go3mf.Object
	meshes  map[uint32]*mesh.Mesh
	names   map[string]int
	scene   *mesh.Scene
}

func (b *sceneBuilder) addObject(id uint32, transform mgl64.Mat4, depth int) error {
	if depth > maxComponentDepth {
		return fmt.Errorf("object %d: components nested deeper than %d", id, maxComponentDepth)
	}

	obj, ok := b.objects[id]
	if !ok {
		return fmt.Errorf("build references unknown object %d", id)
	}

	if obj.Mesh != nil {
		m, err := b.convertMesh(obj)
		if err != nil {
			return err
		}
		if m.TriangleCount() > 0 {
			b.scene.Add(b.uniqueName(obj), m, transform)
		}
	}

	if obj.Components != nil {
		for _, c := range obj.Components.Component {
			// Component transforms apply before the parent transform
			if err := b.addObject(c.ObjectID, transform.Mul4(ToMat4(c.Transform)), depth+1); err != nil {
				return err
			}
		}
	}

	return nil
}

// convertMesh converts an object's mesh once; instances share the result.
func (b *sceneBuilder) convertMesh(obj *go3mf.Object) (*mesh.Mesh, error) {
	if m, ok := b.meshes[obj.ID]; ok {
		return m, nil
	}

	src := obj.Mesh
	m := &mesh.Mesh{
		Vertices:  make([]geometry.Vector3, 0, len(src.Vertices.Vertex)),
		Triangles: make([][3]int, 0, len(src.Triangles.Triangle)),
	}
	for _, v := range src.Vertices.Vertex {
		m.Vertices = append(m.Vertices, geometry.NewVector3(float64(v[0]), float64(v[1]), float64(v[2])))
	}
	for _, t := range src.Triangles.Triangle {
		m.Triangles = append(m.Triangles, [3]int{int(t.V1), int(t.V2), int(t.V3)})
	}

	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("object %d: %w", obj.ID, err)
	}

	b.meshes[obj.ID] = m
	return m, nil
}

func (b *sceneBuilder) uniqueName(obj *go3mf.Object) string {
	name := obj.Name
	if name == "" {
		name = fmt.Sprintf("object_%d", obj.ID)
	}
	n := b.names[name]
	b.names[name] = n + 1
	if n == 0 {
		return name
	}
	return fmt.Sprintf("%s_%d", name, n)
}

// ToMat4 converts a 3MF transform to a column-vector matrix. 3MF stores
// row-vector matrices row by row with the translation in the last row, which
// is the same memory layout as the column-major transpose mgl64 expects. An
// unset transform is the identity.
func ToMat4(m go3mf.Matrix) mgl64.Mat4 {
	if m == (go3mf.Matrix{}) {
		return mgl64.Ident4()
	}

	var out mgl64.Mat4
	for i, v := range m {
		out[i] = float64(v)
	}
	return out
}
