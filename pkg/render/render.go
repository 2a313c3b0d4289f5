// Package render defines the contract between the selection core and the
// viewport that draws meshes and resolves clicks.
package render

import (
	"image/color"

	"github.com/philipparndt/stlpick/pkg/mesh"
)

// Actor is a displayed mesh owned by the renderer
type Actor interface {
	Mesh() *mesh.PolyData
	Color() color.Color
	SetColor(c color.Color)
	Pickable() bool
}

// ActorOptions configures a new actor
type ActorOptions struct {
	Color     color.Color
	Pickable  bool
	ShowEdges bool
	// Overlay actors are drawn in front of coplanar geometry
	Overlay bool
}

// FaceHit is the result of a face pick: the clicked cell of the target actor
// and that cell extracted as its own mesh.
type FaceHit struct {
	Actor Actor
	Cell  int
	Face  *mesh.PolyData
}

// Renderer is the viewport driven by the selection core. Only one picking
// mode is enabled at a time; enabling one replaces the other.
type Renderer interface {
	AddActor(poly *mesh.PolyData, opts ActorOptions) Actor
	RemoveActor(a Actor)
	Clear()
	ResetCamera()
	SetBackground(c color.Color)
	ShowAxes(show bool)

	EnableModelPicking(fn func(Actor))
	EnableFacePicking(target Actor, fn func(FaceHit))
	DisablePicking()

	// Render redraws the viewport immediately
	Render()
}
