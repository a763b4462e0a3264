package action

import (
	"strings"
	"testing"
)

func TestParseRoundTrip(t *testing.T) {
	for a := Exit; a < numActions; a++ {
		got, err := Parse(a.String())
		if err != nil {
			t.Fatalf("Parse(%q): %v", a.String(), err)
		}
		if got != a {
			t.Errorf("Parse(%q) = %v, want %v", a.String(), got, a)
		}
	}
	if _, err := Parse("jump"); err == nil {
		t.Error("expected error for unknown action")
	}
}

func TestSet(t *testing.T) {
	var s Set
	if s.Has(Exit) {
		t.Error("empty set should not contain Exit")
	}

	s = s.With(MoveForward).With(StrafeLeft)
	if !s.Has(MoveForward) || !s.Has(StrafeLeft) || s.Has(MoveBack) {
		t.Errorf("unexpected set contents %b", s)
	}

	if got := s.Axis(MoveForward, MoveBack); got != 1 {
		t.Errorf("forward axis = %v, want 1", got)
	}
	if got := s.Axis(StrafeRight, StrafeLeft); got != -1 {
		t.Errorf("strafe axis = %v, want -1", got)
	}
	if got := s.With(MoveBack).Axis(MoveForward, MoveBack); got != 0 {
		t.Errorf("opposing actions should cancel, got %v", got)
	}
}

func TestEdgeTriggered(t *testing.T) {
	if !ToggleCamera.EdgeTriggered() || !Screenshot.EdgeTriggered() {
		t.Error("toggle and screenshot should be edge triggered")
	}
	if RateIncrease.EdgeTriggered() || ResetAnimation.EdgeTriggered() {
		t.Error("rate and reset keys act every frame they are held")
	}
}

func TestParseBindings(t *testing.T) {
	keys := map[string]int32{"Escape": 41, "W": 26, "R": 21}
	resolve := func(name string) (int32, bool) {
		code, ok := keys[name]
		return code, ok
	}

	b, err := ParseBindings(map[string]string{"exit": "Escape", "forward": "W", "reset": "R"}, resolve)
	if err != nil {
		t.Fatalf("ParseBindings: %v", err)
	}
	if b[41] != Exit || b[26] != MoveForward || b[21] != ResetAnimation {
		t.Errorf("unexpected bindings %v", b)
	}

	tests := []struct {
		name    string
		byName  map[string]string
		wantErr string
	}{
		{"unknown action", map[string]string{"fly": "W"}, "unknown action"},
		{"unknown key", map[string]string{"exit": "Hyper"}, "unknown key"},
		{"duplicate key", map[string]string{"exit": "W", "forward": "W"}, "bound to both"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseBindings(tt.byName, resolve)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want %q", err, tt.wantErr)
			}
		})
	}
}
