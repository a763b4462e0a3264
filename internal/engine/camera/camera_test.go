package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-4
}

func vecNear(a, b mgl32.Vec3) bool {
	return near(a[0], b[0]) && near(a[1], b[1]) && near(a[2], b[2])
}

func TestLookTracker_FirstSampleIsReference(t *testing.T) {
	var l LookTracker

	l, dx, dy := l.Sample(400, 300)
	if dx != 0 || dy != 0 {
		t.Errorf("first sample should yield zero delta, got (%v, %v)", dx, dy)
	}
	if l.Phase != LookTracking {
		t.Errorf("phase after first sample = %v, want tracking", l.Phase)
	}

	l, dx, dy = l.Sample(410, 290)
	if dx != 10 || dy != 10 {
		t.Errorf("delta = (%v, %v), want (10, 10)", dx, dy)
	}

	l = l.Reset()
	if _, dx, dy = l.Sample(0, 0); dx != 0 || dy != 0 {
		t.Errorf("sample after reset should yield zero delta, got (%v, %v)", dx, dy)
	}
}

func TestDirection(t *testing.T) {
	tests := []struct {
		yaw, pitch float32
		want       mgl32.Vec3
	}{
		{0, 0, mgl32.Vec3{1, 0, 0}},
		{90, 0, mgl32.Vec3{0, 0, 1}},
		{-90, 0, mgl32.Vec3{0, 0, -1}},
		{0, 89, mgl32.Vec3{float32(math.Cos(89 * math.Pi / 180)), float32(math.Sin(89 * math.Pi / 180)), 0}},
	}

	for _, tt := range tests {
		got := Direction(tt.yaw, tt.pitch)
		if !vecNear(got, tt.want) {
			t.Errorf("Direction(%v, %v) = %v, want %v", tt.yaw, tt.pitch, got, tt.want)
		}
		if !near(got.Len(), 1) {
			t.Errorf("Direction(%v, %v) is not unit length", tt.yaw, tt.pitch)
		}
	}
}

func TestPitchClamp(t *testing.T) {
	set := DefaultSettings()
	s := New(ModeFreeLook, mgl32.Vec3{}, -45, -35)

	y := 10000.0
	for range 500 {
		y -= 37
		s = s.Update(Input{Pointer: &PointerSample{X: 0, Y: y}}, mgl32.Vec3{}, set)
		if s.Pitch > MaxPitch {
			t.Fatalf("pitch %v exceeded %v", s.Pitch, MaxPitch)
		}
	}
	if s.Pitch != MaxPitch {
		t.Errorf("pitch = %v, want %v", s.Pitch, MaxPitch)
	}

	for range 500 {
		y += 37
		s = s.Update(Input{Pointer: &PointerSample{X: 0, Y: y}}, mgl32.Vec3{}, set)
	}
	if s.Pitch != -MaxPitch {
		t.Errorf("pitch = %v, want %v", s.Pitch, -MaxPitch)
	}
}

func TestFreeLook_Sensitivity(t *testing.T) {
	set := DefaultSettings()
	s := New(ModeFreeLook, mgl32.Vec3{0, 150, 150}, -45, -35)

	s = s.Update(Input{Pointer: &PointerSample{X: 500, Y: 500}}, mgl32.Vec3{}, set)
	if s.Yaw != -45 || s.Pitch != -35 {
		t.Fatalf("first sample moved the camera: yaw %v pitch %v", s.Yaw, s.Pitch)
	}

	s = s.Update(Input{Pointer: &PointerSample{X: 600, Y: 450}}, mgl32.Vec3{}, set)
	if !near(s.Yaw, -35) || !near(s.Pitch, -30) {
		t.Errorf("yaw/pitch = %v/%v, want -35/-30", s.Yaw, s.Pitch)
	}
	if !vecNear(s.Front, Direction(s.Yaw, s.Pitch)) {
		t.Error("front should be rebuilt from yaw/pitch")
	}
	if s.Position != (mgl32.Vec3{0, 150, 150}) {
		t.Errorf("free-look must not move the camera, got %v", s.Position)
	}
}

func TestFollow(t *testing.T) {
	set := DefaultSettings()
	marker := mgl32.Vec3{5, 10, -3}
	s := New(ModeFollow, mgl32.Vec3{0, 150, 150}, -45, -35)

	s = s.Update(Input{}, marker, set)

	if want := marker.Add(set.FollowOffset); s.Position != want {
		t.Errorf("position = %v, want %v", s.Position, want)
	}
	wantFront := mgl32.Vec3{-1, -1, -1}.Normalize()
	if !vecNear(s.Front, wantFront) {
		t.Errorf("front = %v, want %v", s.Front, wantFront)
	}
	if s.Target != marker {
		t.Errorf("target = %v, want %v", s.Target, marker)
	}
	if s.Up != WorldUp {
		t.Errorf("up = %v, want world up", s.Up)
	}
}

func TestFollow_OverridesPointerLook(t *testing.T) {
	set := DefaultSettings()
	marker := mgl32.Vec3{1, 2, 3}
	s := New(ModeFollow, mgl32.Vec3{}, 0, 0)

	s = s.Update(Input{Pointer: &PointerSample{X: 0, Y: 0}}, marker, set)
	s = s.Update(Input{Pointer: &PointerSample{X: 300, Y: -200}}, marker, set)

	if want := marker.Add(set.FollowOffset); s.Position != want {
		t.Errorf("follow position changed by pointer: %v", s.Position)
	}
	if !vecNear(s.Front, mgl32.Vec3{-1, -1, -1}.Normalize()) {
		t.Errorf("follow front changed by pointer: %v", s.Front)
	}
	if !near(s.Yaw, 30) || !near(s.Pitch, 20) {
		t.Errorf("yaw/pitch should still accumulate, got %v/%v", s.Yaw, s.Pitch)
	}
}

func TestToggleMode(t *testing.T) {
	set := DefaultSettings()
	marker := mgl32.Vec3{10, 0, 10}
	s := New(ModeFollow, mgl32.Vec3{}, -45, -35)

	s = s.Update(Input{Pointer: &PointerSample{X: 0, Y: 0}}, marker, set)
	s = s.Update(Input{ToggleMode: true}, marker, set)
	if s.Mode != ModeFreeLook {
		t.Fatalf("mode = %v, want free", s.Mode)
	}
	if s.Look.Phase != LookUninitialized {
		t.Error("entering free-look should re-arm the look tracker")
	}

	pos := s.Position
	s = s.Update(Input{Pointer: &PointerSample{X: 900, Y: 900}}, mgl32.Vec3{99, 99, 99}, set)
	if s.Yaw != -45 || s.Pitch != -35 {
		t.Errorf("first sample after toggle should not jump: yaw %v pitch %v", s.Yaw, s.Pitch)
	}
	if s.Position != pos {
		t.Error("free-look camera should stay where follow left it")
	}

	s = s.Update(Input{ToggleMode: true}, marker, set)
	if s.Mode != ModeFollow || s.Position != marker.Add(set.FollowOffset) {
		t.Errorf("toggling back should resume follow, got %v at %v", s.Mode, s.Position)
	}
}

func TestMove(t *testing.T) {
	s := New(ModeFreeLook, mgl32.Vec3{}, 0, 0) // facing +X

	if got := s.Move(Movement{Forward: 1}, 0); got.Position != s.Position {
		t.Error("zero speed must be inert")
	}

	moved := s.Move(Movement{Forward: 1, Right: 1, Up: -1}, 2)
	want := mgl32.Vec3{2, -2, 2} // right of +X with Y up is +Z
	if !vecNear(moved.Position, want) {
		t.Errorf("position = %v, want %v", moved.Position, want)
	}
}

func TestViewMatrix(t *testing.T) {
	marker := mgl32.Vec3{3, 4, 5}
	s := New(ModeFollow, mgl32.Vec3{}, 0, 0).Follow(marker, mgl32.Vec3{0, 0, 10})

	// The marker sits straight ahead: view space (0, 0, -10).
	p := s.ViewMatrix().Mul4x1(marker.Vec4(1))
	if !vecNear(p.Vec3(), mgl32.Vec3{0, 0, -10}) {
		t.Errorf("marker in view space = %v, want (0,0,-10)", p)
	}

	free := New(ModeFreeLook, mgl32.Vec3{}, 0, 0)
	q := free.ViewMatrix().Mul4x1(mgl32.Vec4{1, 0, 0, 1})
	if !vecNear(q.Vec3(), mgl32.Vec3{0, 0, -1}) {
		t.Errorf("point ahead in free-look view space = %v, want (0,0,-1)", q)
	}
}

func TestProjection(t *testing.T) {
	set := DefaultSettings()
	got := set.Projection(1024.0 / 768.0)
	want := mgl32.Perspective(mgl32.DegToRad(45), 1024.0/768.0, 0.1, 2000)
	if got != want {
		t.Errorf("Projection() = %v, want %v", got, want)
	}
}

func TestParseMode(t *testing.T) {
	for name, want := range map[string]Mode{"follow": ModeFollow, "free": ModeFreeLook, "free-look": ModeFreeLook} {
		got, err := ParseMode(name)
		if err != nil || got != want {
			t.Errorf("ParseMode(%q) = %v, %v", name, got, err)
		}
	}
	if _, err := ParseMode("orbit"); err == nil {
		t.Error("expected error for unknown mode")
	}
	if ModeFreeLook.String() != "free" {
		t.Errorf("String() = %q", ModeFreeLook.String())
	}
}
