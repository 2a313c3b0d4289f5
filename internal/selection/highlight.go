package selection

import (
	"github.com/philipparndt/stlpick/pkg/mesh"
	"github.com/philipparndt/stlpick/pkg/render"
)

// Highlighter tracks the highlighted model and the face overlay. The
// selected actor is borrowed from the registry; the overlay is owned here.
type Highlighter struct {
	renderer render.Renderer
	style    *Style

	selected render.Actor
	overlay  render.Actor
}

// NewHighlighter creates a highlighter with nothing selected
func NewHighlighter(renderer render.Renderer, style *Style) *Highlighter {
	return &Highlighter{renderer: renderer, style: style}
}

// OnModelPicked highlights actor, restoring the previously highlighted one
func (h *Highlighter) OnModelPicked(actor render.Actor) {
	if h.selected != nil && h.selected != actor {
		h.selected.SetColor(h.style.Neutral)
	}
	actor.SetColor(h.style.Highlight)
	h.selected = actor
	h.renderer.Render()
}

// OnFacePicked replaces the face overlay with one drawn over face
func (h *Highlighter) OnFacePicked(face *mesh.PolyData) {
	if h.overlay != nil {
		h.renderer.RemoveActor(h.overlay)
	}
	h.overlay = h.renderer.AddActor(face, render.ActorOptions{
		Color:   h.style.FaceHighlight,
		Overlay: true,
	})
	h.renderer.Render()
}

// ClearModel restores the highlighted actor to the neutral color
func (h *Highlighter) ClearModel() {
	if h.selected == nil {
		return
	}
	h.selected.SetColor(h.style.Neutral)
	h.selected = nil
	h.renderer.Render()
}

// ClearFace removes the face overlay
func (h *Highlighter) ClearFace() {
	if h.overlay == nil {
		return
	}
	h.renderer.RemoveActor(h.overlay)
	h.overlay = nil
	h.renderer.Render()
}

// Reset forgets all handles without touching the renderer. Used after the
// renderer was cleared.
func (h *Highlighter) Reset() {
	h.selected = nil
	h.overlay = nil
}

// Selected returns the highlighted actor, if any
func (h *Highlighter) Selected() render.Actor {
	return h.selected
}

// Overlay returns the face overlay actor, if any
func (h *Highlighter) Overlay() render.Actor {
	return h.overlay
}
