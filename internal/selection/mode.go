// Package selection implements model and face picking on top of a
// render.Renderer: the scene registry, the picking mode state machine, the
// highlight manager and the session that ties them together.
//
// All methods must be called from the UI goroutine.
package selection

// Mode is the active picking mode
type Mode int

const (
	Idle Mode = iota
	ModelSelect
	FaceSelect
)

func (m Mode) String() string {
	switch m {
	case Idle:
		return "idle"
	case ModelSelect:
		return "model select"
	case FaceSelect:
		return "face select"
	default:
		return "unknown"
	}
}
