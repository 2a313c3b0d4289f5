package selection

import (
	"testing"

	"github.com/philipparndt/stlpick/pkg/mesh/meshtest"
	"github.com/philipparndt/stlpick/pkg/render"
)

func TestResolve(t *testing.T) {
	current := &fakeActor{}
	other := &fakeActor{}
	face := meshtest.CubePolyData().ExtractCell(0)

	tests := []struct {
		name    string
		mode    Mode
		pick    Pick
		current render.Actor
		want    Action
	}{
		{"model pick in model mode", ModelSelect, Pick{Kind: PickModel, Actor: current}, current, ActionHighlightModel},
		{"face pick in face mode", FaceSelect, Pick{Kind: PickFace, Actor: current, Face: face}, current, ActionHighlightFace},
		{"model pick in idle", Idle, Pick{Kind: PickModel, Actor: current}, current, ActionNone},
		{"face pick in idle", Idle, Pick{Kind: PickFace, Actor: current, Face: face}, current, ActionNone},
		{"model pick in face mode", FaceSelect, Pick{Kind: PickModel, Actor: current}, current, ActionNone},
		{"face pick in model mode", ModelSelect, Pick{Kind: PickFace, Actor: current, Face: face}, current, ActionNone},
		{"face pick without face", FaceSelect, Pick{Kind: PickFace, Actor: current}, current, ActionNone},
		{"stale actor", ModelSelect, Pick{Kind: PickModel, Actor: other}, current, ActionNone},
		{"nothing loaded", ModelSelect, Pick{Kind: PickModel, Actor: current}, nil, ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolve(tt.mode, tt.pick, tt.current); got != tt.want {
				t.Errorf("resolve() = %v, want %v", got, tt.want)
			}
		})
	}
}
