// Package camera implements the free-look and marker-follow cameras.
//
// Camera state is a plain value: every update returns a new State so a
// frame can be replayed from the previous state and its input.
package camera

import (
	"fmt"
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"
)

// MaxPitch bounds pitch in degrees, short of the poles where the view
// basis flips.
const MaxPitch float32 = 89.0

// WorldUp is the fixed camera up vector.
var WorldUp = mgl32.Vec3{0, 1, 0}

// Mode selects which controller drives the camera.
type Mode int

const (
	// ModeFollow locks the camera to the marker plus a fixed offset.
	ModeFollow Mode = iota
	// ModeFreeLook orients the camera from pointer yaw/pitch.
	ModeFreeLook
)

func (m Mode) String() string {
	switch m {
	case ModeFollow:
		return "follow"
	case ModeFreeLook:
		return "free"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode converts a config name into a Mode.
func ParseMode(name string) (Mode, error) {
	switch name {
	case "follow":
		return ModeFollow, nil
	case "free", "free-look", "freelook":
		return ModeFreeLook, nil
	}
	return ModeFollow, fmt.Errorf("unknown camera mode %q", name)
}

// Settings holds the tunables shared by both modes.
type Settings struct {
	Sensitivity  float32 // Degrees per pointer unit
	MoveSpeed    float32 // World units per frame while a move action is held
	FollowOffset mgl32.Vec3
	FOVDegrees   float32
	Near         float32
	Far          float32
}

// DefaultSettings returns the stock camera settings.
func DefaultSettings() Settings {
	return Settings{
		Sensitivity:  0.1,
		MoveSpeed:    0,
		FollowOffset: mgl32.Vec3{50, 50, 50},
		FOVDegrees:   45,
		Near:         0.1,
		Far:          2000,
	}
}

// Movement is the per-frame movement intent, each axis in [-1, 1].
type Movement struct {
	Forward float32
	Right   float32
	Up      float32
}

// Input is what the camera consumes from one frame of user input.
type Input struct {
	Pointer    *PointerSample // nil when the pointer did not move
	Movement   Movement
	ToggleMode bool
}

// PointerSample is an absolute pointer position.
type PointerSample struct {
	X, Y float64
}

// State is the camera at one frame.
type State struct {
	Mode     Mode
	Position mgl32.Vec3
	Front    mgl32.Vec3
	Up       mgl32.Vec3
	Target   mgl32.Vec3 // Look-at point in follow mode
	Yaw      float32    // Degrees
	Pitch    float32    // Degrees
	Look     LookTracker
}

// New creates a camera at position looking along yaw/pitch (degrees).
func New(mode Mode, position mgl32.Vec3, yaw, pitch float32) State {
	pitch = mgl32.Clamp(pitch, -MaxPitch, MaxPitch)
	return State{
		Mode:     mode,
		Position: position,
		Front:    Direction(yaw, pitch),
		Up:       WorldUp,
		Yaw:      yaw,
		Pitch:    pitch,
	}
}

// Direction converts yaw/pitch in degrees into a unit forward vector.
func Direction(yaw, pitch float32) mgl32.Vec3 {
	y := float64(mgl32.DegToRad(yaw))
	p := float64(mgl32.DegToRad(pitch))
	return mgl32.Vec3{
		float32(gomath.Cos(y) * gomath.Cos(p)),
		float32(gomath.Sin(p)),
		float32(gomath.Sin(y) * gomath.Cos(p)),
	}.Normalize()
}

// Update advances the camera by one frame.
//
// Pointer samples always update yaw/pitch, as in free-look; in follow
// mode the follow framing then overrides position and front, so pointer
// look has no visible effect until free-look is selected.
func (s State) Update(in Input, marker mgl32.Vec3, set Settings) State {
	if in.ToggleMode {
		s = s.SetMode(s.Mode.other())
	}

	if in.Pointer != nil {
		var dx, dy float32
		s.Look, dx, dy = s.Look.Sample(in.Pointer.X, in.Pointer.Y)
		s = s.Rotate(dx*set.Sensitivity, dy*set.Sensitivity)
	}

	switch s.Mode {
	case ModeFreeLook:
		s = s.Move(in.Movement, set.MoveSpeed)
	case ModeFollow:
		s = s.Follow(marker, set.FollowOffset)
	}
	return s
}

// SetMode switches modes. Entering free-look re-arms the look tracker so
// the first pointer sample after the switch is a reference, not a jump.
func (s State) SetMode(mode Mode) State {
	if mode == s.Mode {
		return s
	}
	s.Mode = mode
	if mode == ModeFreeLook {
		s.Look = s.Look.Reset()
		s.Front = Direction(s.Yaw, s.Pitch)
	}
	return s
}

func (m Mode) other() Mode {
	if m == ModeFollow {
		return ModeFreeLook
	}
	return ModeFollow
}

// Rotate adds yaw/pitch deltas in degrees and rebuilds the front vector.
func (s State) Rotate(dYaw, dPitch float32) State {
	s.Yaw += dYaw
	s.Pitch = mgl32.Clamp(s.Pitch+dPitch, -MaxPitch, MaxPitch)
	s.Front = Direction(s.Yaw, s.Pitch)
	return s
}

// Move translates the camera along front, right and up by speed.
func (s State) Move(m Movement, speed float32) State {
	if speed == 0 || m == (Movement{}) {
		return s
	}
	right := s.Front.Cross(s.Up).Normalize()
	s.Position = s.Position.
		Add(s.Front.Mul(m.Forward * speed)).
		Add(right.Mul(m.Right * speed)).
		Add(s.Up.Mul(m.Up * speed))
	return s
}

// Follow frames the marker from marker+offset.
func (s State) Follow(marker, offset mgl32.Vec3) State {
	s.Position = marker.Add(offset)
	s.Front = marker.Sub(s.Position).Normalize()
	s.Target = marker
	s.Up = WorldUp
	return s
}

// ViewMatrix returns the view matrix for the current mode.
func (s State) ViewMatrix() mgl32.Mat4 {
	target := s.Position.Add(s.Front)
	if s.Mode == ModeFollow {
		target = s.Target
	}
	return mgl32.LookAtV(s.Position, target, s.Up)
}

// Projection returns a perspective projection for the given aspect ratio.
func (set Settings) Projection(aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(set.FOVDegrees), aspect, set.Near, set.Far)
}
