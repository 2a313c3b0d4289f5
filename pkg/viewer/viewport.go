// Package viewer provides a software-rendered 3D viewport widget for Fyne
// that implements render.Renderer.
package viewer

import (
	"image"
	"image/color"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/stlpick/pkg/geometry"
	"github.com/philipparndt/stlpick/pkg/mesh"
	"github.com/philipparndt/stlpick/pkg/render"
)

const nearPlane = 0.01

type pickMode int

const (
	pickNone pickMode = iota
	pickModel
	pickFace
)

// actor is a mesh displayed by the viewport
type actor struct {
	poly   *mesh.PolyData
	opts   render.ActorOptions
	color  color.Color
	bounds geometry.BoundingBox
}

func (a *actor) Mesh() *mesh.PolyData   { return a.poly }
func (a *actor) Color() color.Color     { return a.color }
func (a *actor) SetColor(c color.Color) { a.color = c }
func (a *actor) Pickable() bool         { return a.opts.Pickable }

// Viewport renders actors and resolves taps to model or face picks
type Viewport struct {
	widget.BaseWidget

	camera     *Camera
	actors     []*actor
	background color.Color
	showAxes   bool

	picking    pickMode
	faceTarget *actor
	onModel    func(render.Actor)
	onFace     func(render.FaceHit)

	raster    *canvas.Raster
	dragStart *fyne.Position
}

var (
	_ render.Renderer = (*Viewport)(nil)
	_ fyne.Tappable   = (*Viewport)(nil)
	_ fyne.Draggable  = (*Viewport)(nil)
	_ fyne.Scrollable = (*Viewport)(nil)
	_ fyne.Widget     = (*Viewport)(nil)
	_ render.Actor    = (*actor)(nil)
)

// NewViewport creates an empty viewport with a white background
func NewViewport() *Viewport {
	v := &Viewport{
		camera:     NewCamera(geometry.NewBoundingBox()),
		background: color.White,
	}
	v.raster = canvas.NewRaster(v.draw)
	v.ExtendBaseWidget(v)
	return v
}

// Camera returns the viewport camera
func (v *Viewport) Camera() *Camera {
	return v.camera
}

// Actors returns the number of displayed actors, overlays included
func (v *Viewport) Actors() int {
	return len(v.actors)
}

// AddActor displays poly with the given options
func (v *Viewport) AddActor(poly *mesh.PolyData, opts render.ActorOptions) render.Actor {
	col := opts.Color
	if col == nil {
		col = color.Gray{Y: 200}
	}
	a := &actor{
		poly:   poly,
		opts:   opts,
		color:  col,
		bounds: poly.BoundingBox(),
	}
	v.actors = append(v.actors, a)
	return a
}

// RemoveActor removes an actor. Unknown actors are ignored.
func (v *Viewport) RemoveActor(ra render.Actor) {
	for i, a := range v.actors {
		if render.Actor(a) == ra {
			v.actors = append(v.actors[:i], v.actors[i+1:]...)
			if v.faceTarget == a {
				v.DisablePicking()
			}
			return
		}
	}
}

// Clear removes all actors
func (v *Viewport) Clear() {
	v.actors = nil
	if v.picking == pickFace {
		v.DisablePicking()
	}
}

// ResetCamera frames all non-overlay actors
func (v *Viewport) ResetCamera() {
	bbox := geometry.NewBoundingBox()
	for _, a := range v.actors {
		if !a.opts.Overlay {
			bbox.Union(a.bounds)
		}
	}
	v.camera.Frame(bbox)
}

// SetBackground sets the background color
func (v *Viewport) SetBackground(c color.Color) {
	v.background = c
}

// ShowAxes toggles the orientation indicator
func (v *Viewport) ShowAxes(show bool) {
	v.showAxes = show
}

// EnableModelPicking makes taps report the nearest pickable actor
func (v *Viewport) EnableModelPicking(fn func(render.Actor)) {
	v.DisablePicking()
	v.picking = pickModel
	v.onModel = fn
}

// EnableFacePicking makes taps report the nearest cell of target
func (v *Viewport) EnableFacePicking(target render.Actor, fn func(render.FaceHit)) {
	v.DisablePicking()
	a, ok := target.(*actor)
	if !ok {
		return
	}
	v.picking = pickFace
	v.faceTarget = a
	v.onFace = fn
}

// DisablePicking turns off any hit-testing
func (v *Viewport) DisablePicking() {
	v.picking = pickNone
	v.faceTarget = nil
	v.onModel = nil
	v.onFace = nil
}

// Render redraws the viewport
func (v *Viewport) Render() {
	v.Refresh()
}

// Tapped resolves a tap according to the active picking mode
func (v *Viewport) Tapped(event *fyne.PointEvent) {
	size := v.Size()
	if size.Width <= 0 || size.Height <= 0 {
		return
	}
	ray := v.camera.Ray(float64(event.Position.X), float64(event.Position.Y),
		float64(size.Width), float64(size.Height))

	switch v.picking {
	case pickModel:
		var best *actor
		bestT := math.MaxFloat64
		for _, a := range v.actors {
			if !a.Pickable() {
				continue
			}
			if _, t, ok := intersectActor(ray, a); ok && t < bestT {
				best, bestT = a, t
			}
		}
		if best != nil && v.onModel != nil {
			v.onModel(best)
		}

	case pickFace:
		a := v.faceTarget
		if cell, _, ok := intersectActor(ray, a); ok && v.onFace != nil {
			v.onFace(render.FaceHit{
				Actor: a,
				Cell:  cell,
				Face:  a.poly.ExtractCell(cell),
			})
		}
	}
}

// intersectActor returns the nearest cell of a hit by ray
func intersectActor(ray geometry.Ray, a *actor) (cell int, t float64, hit bool) {
	if _, ok := ray.IntersectBox(a.bounds); !ok {
		return -1, 0, false
	}

	cell, t = -1, math.MaxFloat64
	a.poly.Triangulate(func(i int, tri geometry.Triangle) {
		if d, ok := ray.IntersectTriangle(tri.V1, tri.V2, tri.V3); ok && d < t {
			cell, t = i, d
		}
	})
	return cell, t, cell >= 0
}

// Dragged handles mouse drag events for rotation
func (v *Viewport) Dragged(event *fyne.DragEvent) {
	if v.dragStart != nil {
		deltaX := event.Position.X - v.dragStart.X
		deltaY := event.Position.Y - v.dragStart.Y

		v.camera.Rotate(float64(-deltaY)*0.01, float64(deltaX)*0.01)
		v.Refresh()
	}
	pos := event.Position
	v.dragStart = &pos
}

// DragEnd handles the end of a drag event
func (v *Viewport) DragEnd() {
	v.dragStart = nil
}

// Scrolled handles scroll events for zooming
func (v *Viewport) Scrolled(event *fyne.ScrollEvent) {
	v.camera.Zoom(-float64(event.Scrolled.DY) * 0.001)
	v.Refresh()
}

// CreateRenderer creates the renderer for the widget
func (v *Viewport) CreateRenderer() fyne.WidgetRenderer {
	return &viewportRenderer{viewport: v}
}

// draw rasterizes all actors into an image of the given pixel size
func (v *Viewport) draw(width, height int) image.Image {
	if width <= 0 || height <= 0 {
		return image.NewRGBA(image.Rect(0, 0, 1, 1))
	}
	f := newFrame(width, height, v.background)
	w, h := float64(width), float64(height)
	forward, _, _ := v.camera.basis()

	// Overlays are drawn last and pulled towards the camera so they win
	// against the coplanar cell they cover.
	bias := v.camera.Distance * 1e-3
	for _, overlay := range []bool{false, true} {
		for _, a := range v.actors {
			if a.opts.Overlay != overlay {
				continue
			}
			depthBias := 0.0
			if overlay {
				depthBias = bias
			}
			v.drawActor(f, a, forward, w, h, depthBias, bias/2)
		}
	}

	if v.showAxes {
		v.drawAxes(f)
	}
	return f.img
}

func (v *Viewport) drawActor(f *frame, a *actor, forward geometry.Vector3, w, h, depthBias, edgeBias float64) {
	edgeColor := shade(a.color, 0.35)

	a.poly.Triangulate(func(_ int, tri geometry.Triangle) {
		var pts [3]screenPoint
		for i, p := range tri.Vertices() {
			if v.camera.Depth(p) <= nearPlane {
				return
			}
			x, y, z := v.camera.Project(p, w, h)
			pts[i] = screenPoint{x: x, y: y, z: z - depthBias}
		}

		// Headlight shading, lit from both sides
		intensity := 0.35 + 0.65*math.Abs(tri.Normal.Dot(forward))
		f.fillTriangle(pts[0], pts[1], pts[2], shade(a.color, intensity))

		if a.opts.ShowEdges {
			for i := 0; i < 3; i++ {
				f.drawLine(pts[i], pts[(i+1)%3], edgeBias, edgeColor)
			}
		}
	})
}

// drawAxes draws a small X/Y/Z orientation indicator in the lower-left
// corner, on top of everything else.
func (v *Viewport) drawAxes(f *frame) {
	forward, right, up := v.camera.basis()

	length := math.Min(float64(f.width), float64(f.height)) * 0.08
	origin := screenPoint{x: length * 1.5, y: float64(f.height) - length*1.5, z: -1}

	axes := []struct {
		dir geometry.Vector3
		col color.RGBA
	}{
		{geometry.NewVector3(1, 0, 0), color.RGBA{R: 220, G: 40, B: 40, A: 255}},
		{geometry.NewVector3(0, 1, 0), color.RGBA{R: 40, G: 180, B: 40, A: 255}},
		{geometry.NewVector3(0, 0, 1), color.RGBA{R: 40, G: 80, B: 220, A: 255}},
	}
	for _, axis := range axes {
		end := screenPoint{
			x: origin.x + axis.dir.Dot(right)*length,
			y: origin.y - axis.dir.Dot(up)*length,
			// Axes pointing at the viewer are drawn on top
			z: -1 + axis.dir.Dot(forward),
		}
		f.drawLine(origin, end, 0, axis.col)
	}
}

// viewportRenderer implements fyne.WidgetRenderer
type viewportRenderer struct {
	viewport *Viewport
}

func (r *viewportRenderer) Layout(size fyne.Size) {
	r.viewport.raster.Resize(size)
}

func (r *viewportRenderer) MinSize() fyne.Size {
	return fyne.NewSize(400, 400)
}

func (r *viewportRenderer) Refresh() {
	canvas.Refresh(r.viewport.raster)
}

func (r *viewportRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.viewport.raster}
}

func (r *viewportRenderer) Destroy() {}
