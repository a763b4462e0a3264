// Package sim advances the hiking simulation by one frame.
//
// State is a plain value and Step is a pure function of the previous state
// and one frame of input, so a recorded input sequence replays exactly.
package sim

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/hikesim/internal/engine/action"
	"github.com/Faultbox/hikesim/internal/engine/camera"
	"github.com/Faultbox/hikesim/internal/engine/waypath"
)

// Settings are the per-run tunables consumed by Step.
type Settings struct {
	Camera     camera.Settings
	RateFactor float32 // Multiplier applied by the rate actions
}

// FrameInput is one frame of user input.
type FrameInput struct {
	Actions action.Set
	Pointer *camera.PointerSample // nil when the pointer did not move
	Elapsed time.Duration
}

// State is the simulation at one frame.
type State struct {
	Frame     uint64
	Elapsed   time.Duration
	Animation waypath.AnimationState
	Camera    camera.State
	Marker    mgl32.Vec3
}

// New returns the state before the first frame. The marker starts on the
// first waypoint.
func New(anim waypath.AnimationState, cam camera.State, path waypath.Waypath) State {
	return State{
		Animation: anim,
		Camera:    cam,
		Marker:    path.PositionAt(anim.Progress),
	}
}

// Step advances s by one frame.
//
// Rate and reset actions apply before the animation advances, so a reset
// frame ends one rate step past the start. The camera is updated last and
// frames the marker position of this frame.
func Step(s State, in FrameInput, path waypath.Waypath, set Settings) State {
	if in.Actions.Has(action.RateIncrease) {
		s.Animation = s.Animation.ScaleRate(set.RateFactor)
	}
	if in.Actions.Has(action.RateDecrease) {
		s.Animation = s.Animation.ScaleRate(set.RateFactor)
	}
	if in.Actions.Has(action.ResetAnimation) {
		s.Animation = s.Animation.Reset()
	}

	s.Animation = s.Animation.Advance()
	s.Marker = path.PositionAt(s.Animation.Progress)

	s.Camera = s.Camera.Update(cameraInput(in), s.Marker, set.Camera)

	s.Frame++
	s.Elapsed += in.Elapsed
	return s
}

func cameraInput(in FrameInput) camera.Input {
	return camera.Input{
		Pointer: in.Pointer,
		Movement: camera.Movement{
			Forward: in.Actions.Axis(action.MoveForward, action.MoveBack),
			Right:   in.Actions.Axis(action.StrafeRight, action.StrafeLeft),
			Up:      in.Actions.Axis(action.MoveUp, action.MoveDown),
		},
		ToggleMode: in.Actions.Has(action.ToggleCamera),
	}
}
