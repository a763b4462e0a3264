package camera

// LookPhase is the state of the pointer look tracker.
type LookPhase int

const (
	// LookUninitialized waits for a reference sample.
	LookUninitialized LookPhase = iota
	// LookTracking turns samples into deltas from the previous one.
	LookTracking
)

// LookTracker converts absolute pointer positions into look deltas.
type LookTracker struct {
	Phase LookPhase
	LastX float64
	LastY float64
}

// Sample consumes a pointer position. The first sample after a reset only
// records the reference point and yields zero deltas. dy grows when the
// pointer moves up (screen Y decreases).
func (l LookTracker) Sample(x, y float64) (next LookTracker, dx, dy float32) {
	if l.Phase == LookUninitialized {
		return LookTracker{Phase: LookTracking, LastX: x, LastY: y}, 0, 0
	}

	dx = float32(x - l.LastX)
	dy = float32(l.LastY - y)
	return LookTracker{Phase: LookTracking, LastX: x, LastY: y}, dx, dy
}

// Reset returns the tracker to its uninitialized phase.
func (l LookTracker) Reset() LookTracker {
	return LookTracker{}
}
