package viewer

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/philipparndt/stlpick/pkg/mesh/meshtest"
	"github.com/philipparndt/stlpick/pkg/render"
)

// newCubeViewport returns a 400x400 viewport showing the cube -1..1 framed
// from +Z.
func newCubeViewport(t *testing.T) (*Viewport, render.Actor) {
	t.Helper()
	test.NewTempApp(t)

	v := NewViewport()
	v.Resize(fyne.NewSize(400, 400))
	a := v.AddActor(meshtest.CubePolyData(), render.ActorOptions{
		Color:     color.NRGBA{R: 173, G: 216, B: 230, A: 255},
		Pickable:  true,
		ShowEdges: true,
	})
	v.ResetCamera()
	return v, a
}

// Right of and below the centre lands inside the +Z triangle {4,5,6},
// which is cell 2 of the cube.
var frontTap = &fyne.PointEvent{Position: fyne.NewPos(220, 220)}

func TestModelPicking(t *testing.T) {
	v, a := newCubeViewport(t)

	var picked render.Actor
	v.EnableModelPicking(func(hit render.Actor) { picked = hit })

	v.Tapped(frontTap)
	if picked != a {
		t.Fatalf("expected the cube to be picked, got %v", picked)
	}

	picked = nil
	v.Tapped(&fyne.PointEvent{Position: fyne.NewPos(2, 2)})
	if picked != nil {
		t.Error("expected a miss in the corner to be ignored")
	}
}

func TestFacePicking(t *testing.T) {
	v, a := newCubeViewport(t)

	var hit render.FaceHit
	calls := 0
	v.EnableFacePicking(a, func(h render.FaceHit) {
		hit = h
		calls++
	})

	v.Tapped(frontTap)
	if calls != 1 {
		t.Fatalf("expected 1 face pick, got %d", calls)
	}
	if hit.Actor != a || hit.Cell != 2 {
		t.Errorf("expected cell 2 of the cube, got cell %d", hit.Cell)
	}
	if hit.Face.NumCells() != 1 || hit.Face.NumPoints() != 3 {
		t.Fatalf("expected a single triangle, got %d cells / %d points", hit.Face.NumCells(), hit.Face.NumPoints())
	}
	for _, p := range hit.Face.Points {
		if p.Z != 1 {
			t.Errorf("expected front face at z=1, got %v", p)
		}
	}
}

func TestPickingIsExclusive(t *testing.T) {
	v, a := newCubeViewport(t)

	models, faces := 0, 0
	v.EnableModelPicking(func(render.Actor) { models++ })
	v.EnableFacePicking(a, func(render.FaceHit) { faces++ })

	v.Tapped(frontTap)
	if models != 0 || faces != 1 {
		t.Errorf("expected only face picking active, got models=%d faces=%d", models, faces)
	}

	v.DisablePicking()
	v.Tapped(frontTap)
	if models != 0 || faces != 1 {
		t.Error("expected no picks after DisablePicking")
	}
}

func TestOverlayIsNotPickable(t *testing.T) {
	v, a := newCubeViewport(t)
	face := a.Mesh().ExtractCell(2)
	v.AddActor(face, render.ActorOptions{Color: color.NRGBA{R: 255, A: 255}, Overlay: true})

	var picked render.Actor
	v.EnableModelPicking(func(hit render.Actor) { picked = hit })
	v.Tapped(frontTap)
	if picked != a {
		t.Error("expected the overlay to be skipped in favour of the cube")
	}
}

func TestRemoveAndClear(t *testing.T) {
	v, a := newCubeViewport(t)
	overlay := v.AddActor(a.Mesh().ExtractCell(0), render.ActorOptions{Overlay: true})
	if v.Actors() != 2 {
		t.Fatalf("expected 2 actors, got %d", v.Actors())
	}

	v.RemoveActor(overlay)
	if v.Actors() != 1 {
		t.Errorf("expected 1 actor after remove, got %d", v.Actors())
	}

	faces := 0
	v.EnableFacePicking(a, func(render.FaceHit) { faces++ })
	v.Clear()
	if v.Actors() != 0 {
		t.Errorf("expected no actors after clear, got %d", v.Actors())
	}
	v.Tapped(frontTap)
	if faces != 0 {
		t.Error("expected face picking dropped with its target")
	}
}

func TestDraw(t *testing.T) {
	v, _ := newCubeViewport(t)
	v.SetBackground(color.White)
	v.ShowAxes(true)

	img := v.draw(200, 200)
	if img.Bounds().Dx() != 200 || img.Bounds().Dy() != 200 {
		t.Fatalf("unexpected image size %v", img.Bounds())
	}

	white := color.RGBAModel.Convert(color.White)
	if got := color.RGBAModel.Convert(img.At(199, 0)); got != white {
		t.Errorf("expected background in the corner, got %v", got)
	}
	if got := color.RGBAModel.Convert(img.At(110, 110)); got == white {
		t.Error("expected the cube to cover the centre")
	}
}

func TestActorColor(t *testing.T) {
	_, a := newCubeViewport(t)
	red := color.NRGBA{R: 255, A: 255}

	a.SetColor(red)
	if a.Color() != red {
		t.Errorf("expected color to be updated, got %v", a.Color())
	}
	if !a.Pickable() {
		t.Error("expected actor to be pickable")
	}
}
