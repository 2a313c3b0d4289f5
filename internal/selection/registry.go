package selection

import (
	"github.com/philipparndt/stlpick/pkg/mesh"
	"github.com/philipparndt/stlpick/pkg/render"
)

// Registry owns the single displayed mesh and its actor
type Registry struct {
	renderer render.Renderer
	style    *Style

	poly  *mesh.PolyData
	actor render.Actor
}

// NewRegistry creates an empty registry drawing into renderer
func NewRegistry(renderer render.Renderer, style *Style) *Registry {
	return &Registry{renderer: renderer, style: style}
}

// Load replaces the displayed mesh. The renderer is cleared first, so the
// previous actor never coexists with the new one.
func (r *Registry) Load(poly *mesh.PolyData) render.Actor {
	r.renderer.Clear()
	r.actor = nil

	r.renderer.SetBackground(r.style.Background)
	r.renderer.ShowAxes(r.style.ShowAxes)

	r.poly = poly
	r.actor = r.renderer.AddActor(poly, render.ActorOptions{
		Color:     r.style.Neutral,
		Pickable:  true,
		ShowEdges: r.style.ShowEdges,
	})
	r.renderer.ResetCamera()
	return r.actor
}

// Current returns the displayed actor, or nil when nothing is loaded
func (r *Registry) Current() render.Actor {
	return r.actor
}

// Mesh returns the displayed mesh, or nil when nothing is loaded
func (r *Registry) Mesh() *mesh.PolyData {
	return r.poly
}
