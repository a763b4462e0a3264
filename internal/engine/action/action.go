// Package action defines the viewer's named input actions and the binding
// table from key codes to actions.
package action

import (
	"fmt"
	"sort"
)

// Action is a named input action.
type Action int

const (
	Exit Action = iota
	MoveForward
	MoveBack
	StrafeLeft
	StrafeRight
	MoveUp
	MoveDown
	RateIncrease
	RateDecrease
	ResetAnimation
	ToggleCamera
	Screenshot

	numActions
)

var names = [numActions]string{
	Exit:           "exit",
	MoveForward:    "forward",
	MoveBack:       "back",
	StrafeLeft:     "strafe_left",
	StrafeRight:    "strafe_right",
	MoveUp:         "up",
	MoveDown:       "down",
	RateIncrease:   "rate_increase",
	RateDecrease:   "rate_decrease",
	ResetAnimation: "reset",
	ToggleCamera:   "toggle_camera",
	Screenshot:     "screenshot",
}

func (a Action) String() string {
	if a < 0 || a >= numActions {
		return fmt.Sprintf("Action(%d)", int(a))
	}
	return names[a]
}

// Parse returns the action with the given config name.
func Parse(name string) (Action, error) {
	for a, n := range names {
		if n == name {
			return Action(a), nil
		}
	}
	return 0, fmt.Errorf("unknown action %q", name)
}

// EdgeTriggered reports whether the action fires once per key press
// rather than on every frame the key is held.
func (a Action) EdgeTriggered() bool {
	return a == ToggleCamera || a == Screenshot
}

// Set is a bit set of actions active in one frame.
type Set uint32

// With returns the set with a added.
func (s Set) With(a Action) Set {
	return s | 1<<uint(a)
}

// Has reports whether a is in the set.
func (s Set) Has(a Action) bool {
	return s&(1<<uint(a)) != 0
}

// Axis returns +1, -1 or 0 for a pair of opposing actions.
func (s Set) Axis(positive, negative Action) float32 {
	var v float32
	if s.Has(positive) {
		v++
	}
	if s.Has(negative) {
		v--
	}
	return v
}

// Bindings maps key codes to actions.
type Bindings map[int32]Action

// ParseBindings builds a binding table from action name to key name.
// resolve turns a key name into a key code.
func ParseBindings(byName map[string]string, resolve func(key string) (int32, bool)) (Bindings, error) {
	actionNames := make([]string, 0, len(byName))
	for name := range byName {
		actionNames = append(actionNames, name)
	}
	sort.Strings(actionNames)

	b := make(Bindings, len(byName))
	for _, name := range actionNames {
		a, err := Parse(name)
		if err != nil {
			return nil, err
		}
		key := byName[name]
		code, ok := resolve(key)
		if !ok {
			return nil, fmt.Errorf("action %s: unknown key %q", name, key)
		}
		if prev, dup := b[code]; dup {
			return nil, fmt.Errorf("key %q bound to both %s and %s", key, prev, a)
		}
		b[code] = a
	}
	return b, nil
}
