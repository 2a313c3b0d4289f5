// Package mesh holds the indexed triangle meshes produced by the loaders and
// flattens them into the count-prefixed face layout consumed by the viewport.
//
// A loaded file is a Model: either a single *Mesh (STL) or a *Scene of
// transformed geometries (3MF). Normalize concatenates a scene into one mesh
// in a common frame, NewPolyData pads every triangle with its vertex count.
package mesh
