package selection

import (
	"image/color"

	"github.com/philipparndt/stlpick/pkg/mesh"
	"github.com/philipparndt/stlpick/pkg/render"
)

type fakeActor struct {
	poly    *mesh.PolyData
	opts    render.ActorOptions
	color   color.Color
	history []color.Color
}

func (a *fakeActor) Mesh() *mesh.PolyData { return a.poly }
func (a *fakeActor) Color() color.Color   { return a.color }
func (a *fakeActor) Pickable() bool       { return a.opts.Pickable }

func (a *fakeActor) SetColor(c color.Color) {
	a.color = c
	a.history = append(a.history, c)
}

// fakeRenderer records what the selection core asks of the viewport
type fakeRenderer struct {
	actors     []*fakeActor
	background color.Color
	axes       bool

	modelPick  func(render.Actor)
	facePick   func(render.FaceHit)
	faceTarget render.Actor

	renders      int
	clears       int
	cameraResets int
}

func (r *fakeRenderer) AddActor(poly *mesh.PolyData, opts render.ActorOptions) render.Actor {
	a := &fakeActor{poly: poly, opts: opts, color: opts.Color}
	r.actors = append(r.actors, a)
	return a
}

func (r *fakeRenderer) RemoveActor(actor render.Actor) {
	for i, a := range r.actors {
		if a == actor {
			r.actors = append(r.actors[:i], r.actors[i+1:]...)
			return
		}
	}
}

func (r *fakeRenderer) Clear() {
	r.actors = nil
	r.clears++
}

func (r *fakeRenderer) ResetCamera()                { r.cameraResets++ }
func (r *fakeRenderer) SetBackground(c color.Color) { r.background = c }
func (r *fakeRenderer) ShowAxes(show bool)          { r.axes = show }
func (r *fakeRenderer) Render()                     { r.renders++ }

func (r *fakeRenderer) EnableModelPicking(fn func(render.Actor)) {
	r.DisablePicking()
	r.modelPick = fn
}

func (r *fakeRenderer) EnableFacePicking(target render.Actor, fn func(render.FaceHit)) {
	r.DisablePicking()
	r.facePick = fn
	r.faceTarget = target
}

func (r *fakeRenderer) DisablePicking() {
	r.modelPick = nil
	r.facePick = nil
	r.faceTarget = nil
}

func (r *fakeRenderer) overlays() []*fakeActor {
	var out []*fakeActor
	for _, a := range r.actors {
		if a.opts.Overlay {
			out = append(out, a)
		}
	}
	return out
}

// clickModel simulates a successful model hit on the first pickable actor
func (r *fakeRenderer) clickModel() bool {
	if r.modelPick == nil {
		return false
	}
	for _, a := range r.actors {
		if a.Pickable() {
			r.modelPick(a)
			return true
		}
	}
	return false
}

// clickFace simulates a face hit on cell of the bound actor
func (r *fakeRenderer) clickFace(cell int) bool {
	if r.facePick == nil || r.faceTarget == nil {
		return false
	}
	poly := r.faceTarget.Mesh()
	r.facePick(render.FaceHit{Actor: r.faceTarget, Cell: cell, Face: poly.ExtractCell(cell)})
	return true
}
