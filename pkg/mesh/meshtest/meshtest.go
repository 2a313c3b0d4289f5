// Package meshtest provides fixture meshes and files for tests.
package meshtest

import (
	"fmt"
	"os"
	"strings"

	"github.com/philipparndt/stlpick/pkg/geometry"
	"github.com/philipparndt/stlpick/pkg/mesh"
)

// cubeFaces lists the two triangles of every cube side over the corner
// indices of cubeCorners, counter-clockwise seen from outside.
var cubeFaces = [12][3]int{
	{0, 2, 1}, {0, 3, 2}, // -Z
	{4, 5, 6}, {4, 6, 7}, // +Z
	{0, 1, 5}, {0, 5, 4}, // -Y
	{3, 7, 6}, {3, 6, 2}, // +Y
	{0, 4, 7}, {0, 7, 3}, // -X
	{1, 2, 6}, {1, 6, 5}, // +X
}

func cubeCorners(min, max float64) [8]geometry.Vector3 {
	return [8]geometry.Vector3{
		{X: min, Y: min, Z: min},
		{X: max, Y: min, Z: min},
		{X: max, Y: max, Z: min},
		{X: min, Y: max, Z: min},
		{X: min, Y: min, Z: max},
		{X: max, Y: min, Z: max},
		{X: max, Y: max, Z: max},
		{X: min, Y: max, Z: max},
	}
}

// CubeTriangles returns the 12 triangles of an axis-aligned cube spanning
// [min, max] on every axis, as an STL file would store them.
func CubeTriangles(min, max float64) []geometry.Triangle {
	corners := cubeCorners(min, max)
	triangles := make([]geometry.Triangle, 0, len(cubeFaces))
	for _, f := range cubeFaces {
		tri := geometry.Triangle{V1: corners[f[0]], V2: corners[f[1]], V3: corners[f[2]]}
		tri.Normal = tri.CalculateNormal()
		triangles = append(triangles, tri)
	}
	return triangles
}

// Cube returns an indexed cube with 8 vertices and 12 triangles.
func Cube(min, max float64) *mesh.Mesh {
	corners := cubeCorners(min, max)
	m := &mesh.Mesh{Vertices: corners[:]}
	m.Triangles = append(m.Triangles, cubeFaces[:]...)
	return m
}

// CubePolyData returns the padded unit cube centred on the origin.
func CubePolyData() *mesh.PolyData {
	poly, err := mesh.NewPolyData(Cube(-1, 1))
	if err != nil {
		panic(err)
	}
	return poly
}

// WriteASCIISTL writes triangles as an ASCII STL file.
func WriteASCIISTL(path, name string, triangles []geometry.Triangle) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "solid %s\n", name)
	for _, tri := range triangles {
		fmt.Fprintf(&sb, "  facet normal %g %g %g\n", tri.Normal.X, tri.Normal.Y, tri.Normal.Z)
		sb.WriteString("    outer loop\n")
		for _, v := range tri.Vertices() {
			fmt.Fprintf(&sb, "      vertex %g %g %g\n", v.X, v.Y, v.Z)
		}
		sb.WriteString("    endloop\n  endfacet\n")
	}
	fmt.Fprintf(&sb, "endsolid %s\n", name)
	return os.WriteFile(path, []byte(sb.String()), 0644)
}
