package threemf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hpinc/go3mf"
	"github.com/philipparndt/stlpick/pkg/geometry"
	"github.com/philipparndt/stlpick/pkg/mesh"
	"github.com/philipparndt/stlpick/pkg/mesh/meshtest"
)

func triangleObject(id uint32, name string) *go3mf.Object {
	return &go3mf.Object{
		ID:   id,
		Name: name,
		Mesh: &go3mf.Mesh{
			Vertices: go3mf.Vertices{Vertex: []go3mf.Point3D{
				{0, 0, 0}, {1, 0, 0}, {0, 1, 0},
			}},
			Triangles: go3mf.Triangles{Triangle: []go3mf.Triangle{
				{V1: 0, V2: 1, V3: 2},
			}},
		},
	}
}

func translation(x, y, z float32) go3mf.Matrix {
	return go3mf.Matrix{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		x, y, z, 1,
	}
}

func TestToMat4(t *testing.T) {
	m := ToMat4(translation(5, 6, 7))
	p := geometry.NewVector3(1, 1, 1).Transform(m)

	if p != geometry.NewVector3(6, 7, 8) {
		t.Errorf("expected translated point (6,7,8), got %v", p)
	}

	if ToMat4(go3mf.Matrix{}) != ToMat4(translation(0, 0, 0)) {
		t.Error("unset transform should be the identity")
	}
}

func TestFromModelResolvesItemsAndComponents(t *testing.T) {
	model := &go3mf.Model{}
	model.Resources.Objects = []*go3mf.Object{
		triangleObject(1, "part"),
		{
			ID: 2,
			Components: &go3mf.Components{Component: []*go3mf.Component{
				{ObjectID: 1, Transform: translation(0, 0, 1)},
				{ObjectID: 1, Transform: translation(0, 0, 2)},
			}},
		},
	}
	model.Build.Items = []*go3mf.Item{
		{ObjectID: 1},
		{ObjectID: 2, Transform: translation(10, 0, 0)},
	}

	scene, err := FromModel(model)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if scene.Len() != 3 {
		t.Fatalf("expected 3 geometries, got %d", scene.Len())
	}

	names := []string{"part", "part_1", "part_2"}
	for i, g := range scene.Geometries {
		if g.Name != names[i] {
			t.Errorf("geometry %d: expected name %q, got %q", i, names[i], g.Name)
		}
	}

	combined, err := mesh.Normalize(scene)
	if err != nil {
		t.Fatalf("normalize failed: %v", err)
	}
	if combined.VertexCount() != 9 || combined.TriangleCount() != 3 {
		t.Fatalf("expected 9 vertices / 3 triangles, got %d / %d", combined.VertexCount(), combined.TriangleCount())
	}
	if v := combined.Vertices[3]; v != geometry.NewVector3(10, 0, 1) {
		t.Errorf("expected component placed at (10,0,1), got %v", v)
	}
	if v := combined.Vertices[6]; v != geometry.NewVector3(10, 0, 2) {
		t.Errorf("expected component placed at (10,0,2), got %v", v)
	}
}

func TestFromModelErrors(t *testing.T) {
	unknown := &go3mf.Model{}
	unknown.Build.Items = []*go3mf.Item{{ObjectID: 42}}
	if _, err := FromModel(unknown); err == nil {
		t.Error("expected error for unknown object")
	}

	broken := &go3mf.Model{}
	obj := triangleObject(1, "")
	obj.Mesh.Triangles.Triangle[0].V3 = 7
	broken.Resources.Objects = []*go3mf.Object{obj}
	broken.Build.Items = []*go3mf.Item{{ObjectID: 1}}
	if _, err := FromModel(broken); err == nil {
		t.Error("expected error for out of range vertex index")
	}

	cyclic := &go3mf.Model{}
	cyclic.Resources.Objects = []*go3mf.Object{{
		ID:         1,
		Components: &go3mf.Components{Component: []*go3mf.Component{{ObjectID: 1}}},
	}}
	cyclic.Build.Items = []*go3mf.Item{{ObjectID: 1}}
	if _, err := FromModel(cyclic); err == nil {
		t.Error("expected error for cyclic components")
	}
}

func writePackage(t *testing.T, items string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "model.3mf")
	if err := meshtest.Write3MF(path, meshtest.WedgeModel(items)); err != nil {
		t.Fatalf("failed to write package: %v", err)
	}
	return path
}

func TestLoadPackage(t *testing.T) {
	path := writePackage(t, `<item objectid="1"/><item objectid="1" transform="1 0 0 0 1 0 0 0 1 20 0 0"/>`)

	scene, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if scene.Len() != 2 {
		t.Fatalf("expected 2 geometries, got %d", scene.Len())
	}

	combined, err := mesh.Normalize(scene)
	if err != nil {
		t.Fatalf("normalize failed: %v", err)
	}
	if combined.VertexCount() != 8 || combined.TriangleCount() != 8 {
		t.Errorf("expected 8 vertices / 8 triangles, got %d / %d", combined.VertexCount(), combined.TriangleCount())
	}
	if v := combined.Vertices[5]; v != geometry.NewVector3(30, 0, 0) {
		t.Errorf("expected second instance translated, got %v", v)
	}
}

func TestLoadEmptyPackage(t *testing.T) {
	scene, err := Load(writePackage(t, ""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if scene.Len() != 0 {
		t.Errorf("expected no geometries, got %d", scene.Len())
	}
}

func TestLoadCorruptPackage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.3mf")
	if err := os.WriteFile(path, []byte("not a zip archive"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for corrupt package")
	}
}
