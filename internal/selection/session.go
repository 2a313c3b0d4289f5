package selection

import (
	"fmt"
	"path/filepath"

	"github.com/philipparndt/stlpick/internal/logger"
	"github.com/philipparndt/stlpick/pkg/loader"
	"github.com/philipparndt/stlpick/pkg/mesh"
	"github.com/philipparndt/stlpick/pkg/render"
)

// Options configures a Session
type Options struct {
	Style Style
}

// DefaultOptions returns options using DefaultStyle
func DefaultOptions() Options {
	return Options{Style: DefaultStyle()}
}

// Session is the selection state of one viewport: the registry, the mode
// machine and the highlighter, with a single dispatch point for picks.
type Session struct {
	renderer  render.Renderer
	style     Style
	registry  *Registry
	highlight *Highlighter
	machine   *Machine

	source    string
	face      int
	listeners []func()
}

// NewSession creates a session with nothing loaded in Idle mode
func NewSession(renderer render.Renderer, opts Options) *Session {
	s := &Session{
		renderer: renderer,
		style:    opts.Style,
		face:     -1,
	}
	s.registry = NewRegistry(renderer, &s.style)
	s.highlight = NewHighlighter(renderer, &s.style)
	s.machine = NewMachine(renderer, s.registry, s.highlight,
		func(a render.Actor) {
			s.Dispatch(Pick{Kind: PickModel, Actor: a})
		},
		func(hit render.FaceHit) {
			s.Dispatch(Pick{Kind: PickFace, Actor: hit.Actor, Cell: hit.Cell, Face: hit.Face})
		},
	)
	s.machine.OnModeChange(func(Mode) {
		s.face = -1
		s.changed()
	})

	renderer.SetBackground(s.style.Background)
	renderer.ShowAxes(s.style.ShowAxes)
	return s
}

// Load displays poly, replacing the current mesh. The mode returns to Idle
// and any selection is dropped before the swap.
func (s *Session) Load(poly *mesh.PolyData) {
	s.machine.Reset()
	s.highlight.ClearFace()
	s.highlight.Reset()
	s.face = -1

	s.registry.Load(poly)
	s.renderer.Render()
	s.changed()
}

// LoadModel normalizes model and displays it. On error the current mesh is
// left untouched.
func (s *Session) LoadModel(model mesh.Model) error {
	poly, err := mesh.Prepare(model)
	if err != nil {
		return err
	}
	s.source = ""
	s.Load(poly)
	return nil
}

// LoadFile loads, normalizes and displays the file at path
func (s *Session) LoadFile(path string) error {
	model, err := loader.Load(path)
	if err != nil {
		logger.Sugar.Warnw("load failed", "file", path, "error", err)
		return err
	}

	poly, err := mesh.Prepare(model)
	if err != nil {
		err = fmt.Errorf("%s: %w", filepath.Base(path), err)
		logger.Sugar.Warnw("load failed", "file", path, "error", err)
		return err
	}

	s.source = path
	s.Load(poly)
	logger.Sugar.Infow("model loaded",
		"file", path,
		"vertices", poly.NumPoints(),
		"triangles", poly.NumCells())
	return nil
}

// Dispatch applies a pick reported by the renderer
func (s *Session) Dispatch(pick Pick) {
	switch resolve(s.machine.Mode(), pick, s.registry.Current()) {
	case ActionHighlightModel:
		s.highlight.OnModelPicked(pick.Actor)
		logger.Sugar.Debugw("model picked")
	case ActionHighlightFace:
		s.highlight.OnFacePicked(pick.Face)
		s.face = pick.Cell
		logger.Sugar.Debugw("face picked", "cell", pick.Cell)
	default:
		return
	}
	s.changed()
}

// RequestModelSelect turns model picking on or off
func (s *Session) RequestModelSelect(on bool) {
	s.machine.RequestModelSelect(on)
}

// RequestFaceSelect turns face picking on or off
func (s *Session) RequestFaceSelect(on bool) {
	s.machine.RequestFaceSelect(on)
}

// Mode returns the active picking mode
func (s *Session) Mode() Mode {
	return s.machine.Mode()
}

// OnModeChange registers fn to be called after every mode change, so
// toggles can be resynced without calling back into the session.
func (s *Session) OnModeChange(fn func(Mode)) {
	s.machine.OnModeChange(fn)
}

// OnChange registers fn to be called whenever Status may have changed
func (s *Session) OnChange(fn func()) {
	s.listeners = append(s.listeners, fn)
}

// Current returns the displayed actor, or nil
func (s *Session) Current() render.Actor {
	return s.registry.Current()
}

// Mesh returns the displayed mesh, or nil
func (s *Session) Mesh() *mesh.PolyData {
	return s.registry.Mesh()
}

// Source returns the path of the loaded file, empty if the mesh did not come
// from a file.
func (s *Session) Source() string {
	return s.source
}

// SelectedFace returns the index of the highlighted face, or -1
func (s *Session) SelectedFace() int {
	return s.face
}

// Status returns a one-line description for the status bar
func (s *Session) Status() string {
	poly := s.registry.Mesh()
	if poly == nil {
		return "No model loaded"
	}

	name := "model"
	if s.source != "" {
		name = filepath.Base(s.source)
	}
	status := fmt.Sprintf("%s: %d vertices, %d triangles | Mode: %s",
		name, poly.NumPoints(), poly.NumCells(), s.machine.Mode())
	if s.face >= 0 {
		status += fmt.Sprintf(" | Face #%d", s.face)
	}
	return status
}

func (s *Session) changed() {
	for _, fn := range s.listeners {
		fn()
	}
}
