// Package loader reads STL and 3MF files into mesh models.
package loader

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/philipparndt/stlpick/pkg/mesh"
	"github.com/philipparndt/stlpick/pkg/stl"
	"github.com/philipparndt/stlpick/pkg/threemf"
)

// FilterGroup is a named set of file extensions offered by open dialogs
type FilterGroup struct {
	Name       string
	Extensions []string
}

// Extensions lists every supported file extension
var Extensions = []string{".stl", ".3mf"}

// FilterGroups lists the open dialog filters: all supported files first,
// then one group per format.
var FilterGroups = []FilterGroup{
	{Name: "3D Files", Extensions: Extensions},
	{Name: "STL Files", Extensions: []string{".stl"}},
	{Name: "3MF Files", Extensions: []string{".3mf"}},
}

// Supported reports whether the file extension can be loaded
func Supported(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Extensions {
		if e == ext {
			return true
		}
	}
	return false
}

// Load reads a model file. STL files always yield a single *mesh.Mesh with
// shared corners merged; 3MF files yield a *mesh.Scene. All failures match
// mesh.ErrLoader and keep the underlying message.
func Load(path string) (mesh.Model, error) {
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".stl":
		model, err := stl.Parse(path)
		if err != nil {
			return nil, loadError(path, err)
		}
		return mesh.FromTriangles(model.Triangles), nil
	case ".3mf":
		scene, err := threemf.Load(path)
		if err != nil {
			return nil, loadError(path, err)
		}
		return scene, nil
	default:
		return nil, fmt.Errorf("%w: unsupported file type %q (expected .stl or .3mf)", mesh.ErrLoader, ext)
	}
}

func loadError(path string, err error) error {
	return fmt.Errorf("%w: %s: %w", mesh.ErrLoader, filepath.Base(path), err)
}
