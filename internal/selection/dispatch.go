package selection

import (
	"github.com/philipparndt/stlpick/pkg/mesh"
	"github.com/philipparndt/stlpick/pkg/render"
)

// PickKind tells which hit-test produced a pick
type PickKind int

const (
	PickModel PickKind = iota + 1
	PickFace
)

// Pick is a hit reported by the renderer
type Pick struct {
	Kind  PickKind
	Actor render.Actor
	// Face pick only
	Cell int
	Face *mesh.PolyData
}

// Action is what a pick does to the selection
type Action int

const (
	ActionNone Action = iota
	ActionHighlightModel
	ActionHighlightFace
)

// resolve decides the action for pick given the active mode and the
// registry's current actor. Picks that do not match the mode are ignored,
// as are picks of anything but the current actor.
func resolve(mode Mode, pick Pick, current render.Actor) Action {
	if current == nil || pick.Actor != current {
		return ActionNone
	}

	switch {
	case mode == ModelSelect && pick.Kind == PickModel:
		return ActionHighlightModel
	case mode == FaceSelect && pick.Kind == PickFace && pick.Face != nil:
		return ActionHighlightFace
	}
	return ActionNone
}
