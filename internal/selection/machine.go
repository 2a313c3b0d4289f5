package selection

import (
	"github.com/philipparndt/stlpick/pkg/render"
)

// Machine is the picking mode state machine. It is the only component that
// enables or disables hit-testing on the renderer.
type Machine struct {
	renderer  render.Renderer
	registry  *Registry
	highlight *Highlighter

	onModel func(render.Actor)
	onFace  func(render.FaceHit)

	mode      Mode
	listeners []func(Mode)
}

// NewMachine creates a machine in Idle. onModel and onFace receive the
// renderer's hit-test callbacks.
func NewMachine(renderer render.Renderer, registry *Registry, highlight *Highlighter,
	onModel func(render.Actor), onFace func(render.FaceHit)) *Machine {
	return &Machine{
		renderer:  renderer,
		registry:  registry,
		highlight: highlight,
		onModel:   onModel,
		onFace:    onFace,
		mode:      Idle,
	}
}

// Mode returns the active mode
func (m *Machine) Mode() Mode {
	return m.mode
}

// OnModeChange registers fn to be called after every mode change
func (m *Machine) OnModeChange(fn func(Mode)) {
	m.listeners = append(m.listeners, fn)
}

// RequestModelSelect turns model picking on or off
func (m *Machine) RequestModelSelect(on bool) {
	if on {
		if m.mode == ModelSelect {
			return
		}
		m.renderer.DisablePicking()
		m.highlight.ClearFace()
		m.renderer.EnableModelPicking(m.onModel)
		m.setMode(ModelSelect)
		return
	}

	if m.mode != ModelSelect {
		return
	}
	m.renderer.DisablePicking()
	m.highlight.ClearModel()
	m.setMode(Idle)
}

// RequestFaceSelect turns face picking on or off. Without a loaded mesh the
// mode is entered but hit-testing stays off; the next load returns to Idle.
func (m *Machine) RequestFaceSelect(on bool) {
	if on {
		if m.mode == FaceSelect {
			return
		}
		m.highlight.ClearModel()
		m.renderer.DisablePicking()
		m.armFacePicking()
		m.setMode(FaceSelect)
		return
	}

	if m.mode != FaceSelect {
		return
	}
	m.renderer.DisablePicking()
	m.highlight.ClearFace()
	m.setMode(Idle)
}

// Reset disables hit-testing and returns to Idle
func (m *Machine) Reset() {
	m.renderer.DisablePicking()
	m.setMode(Idle)
}

func (m *Machine) armFacePicking() {
	if actor := m.registry.Current(); actor != nil {
		m.renderer.EnableFacePicking(actor, m.onFace)
	}
}

func (m *Machine) setMode(mode Mode) {
	if m.mode == mode {
		return
	}
	m.mode = mode
	for _, fn := range m.listeners {
		fn(mode)
	}
}
