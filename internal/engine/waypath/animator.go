package waypath

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Fallback is returned for paths with no interior (fewer than two points).
var Fallback = mgl32.Vec3{0, 0, 0}

// PositionAt maps progress in [0, 1] to a point on the path.
//
// The parametrisation is by segment index, not arc length: each segment
// gets an equal share of progress regardless of its length. Progress at or
// past 1 clamps to the last point; progress below 0 clamps to the first.
func (p Waypath) PositionAt(progress float32) mgl32.Vec3 {
	if len(p) < 2 {
		return Fallback
	}
	if math.IsNaN(float64(progress)) || progress < 0 {
		return p[0]
	}

	segments := len(p) - 1
	if progress >= 1 {
		return p[segments]
	}
	scaled := progress * float32(segments)
	index := int(math.Floor(float64(scaled)))
	if index >= segments {
		return p[segments]
	}

	t := scaled - float32(index)
	return p[index].Mul(1 - t).Add(p[index+1].Mul(t))
}

// AnimationState is the marker's progress along the path.
type AnimationState struct {
	Progress float32
	Rate     float32 // Progress added per frame
}

// Advance returns the state one frame later. Progress that passes 1
// restarts at exactly 0; the overshoot is discarded.
func (s AnimationState) Advance() AnimationState {
	s.Progress += s.Rate
	if s.Progress > 1.0 {
		s.Progress = 0.0
	}
	return s
}

// Reset returns the state with progress back at the start.
func (s AnimationState) Reset() AnimationState {
	s.Progress = 0
	return s
}

// ScaleRate returns the state with its rate multiplied by factor.
func (s AnimationState) ScaleRate(factor float32) AnimationState {
	s.Rate *= factor
	return s
}
