package starfield

import (
	"math"
	"testing"
)

func TestShootingStarResetAttributes(t *testing.T) {
	rng := testRNG(5)
	var s ShootingStar
	for i := range 2000 {
		s.Reset(rng, testViewport)
		if s.Y != 0 {
			t.Fatalf("reset %d: Y = %v, want 0", i, s.Y)
		}
		if s.X < 0 || s.X >= testViewport.Width {
			t.Fatalf("reset %d: X = %v, outside [0, %v)", i, s.X, testViewport.Width)
		}
		if !shootingLengthRange.Contains(s.Length) {
			t.Fatalf("reset %d: Length = %v", i, s.Length)
		}
		if s.Speed < shootingBaseSpeed || s.Speed >= shootingBaseSpeed+shootingSpeedJitter.Max {
			t.Fatalf("reset %d: Speed = %v", i, s.Speed)
		}
		if !shootingAngleRange.Contains(s.Angle) {
			t.Fatalf("reset %d: Angle = %v", i, s.Angle)
		}
		if !shootingRadiusRange.Contains(s.Radius) {
			t.Fatalf("reset %d: Radius = %v", i, s.Radius)
		}
		if s.VX <= 0 || s.VY <= 0 {
			t.Fatalf("reset %d: velocity (%v, %v) not down-right", i, s.VX, s.VY)
		}
		assertNear(t, "speed", math.Hypot(s.VX, s.VY), s.Speed)
	}
	if s.Resets() != 2000 {
		t.Errorf("Resets() = %d, want 2000", s.Resets())
	}
}

func TestNewShootingStarStartsOnTopEdge(t *testing.T) {
	s := newShootingStar(testRNG(6), testViewport)
	if s.Y != 0 {
		t.Errorf("Y = %v, want 0", s.Y)
	}
	if s.Resets() != 0 {
		t.Errorf("Resets() = %d, want 0 for a new star", s.Resets())
	}
}

func TestShootingStarUpdateMoves(t *testing.T) {
	s := ShootingStar{X: 100, Y: 50, VX: 3, VY: 4, Length: 50}
	s.Update(testViewport, fixedRNG(0.5))
	assertNear(t, "X", s.X, 103)
	assertNear(t, "Y", s.Y, 54)
	if s.Resets() != 0 {
		t.Errorf("Resets() = %d, want 0 inside the viewport", s.Resets())
	}
}

func TestShootingStarResetsPastEdges(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
	}{
		{"right", 1000 + 50 - 3 + 0.5, 400},
		{"bottom", 500, 800 + 50 - 4 + 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := ShootingStar{X: tt.x, Y: tt.y, VX: 3, VY: 4, Length: 50}
			s.Update(testViewport, fixedRNG(0.5))
			if s.Resets() != 1 {
				t.Fatalf("Resets() = %d, want 1", s.Resets())
			}
			assertNear(t, "X", s.X, 500)
			assertNear(t, "Y", s.Y, 0)
		})
	}
}

func TestShootingStarOnTheEdgeDoesNotReset(t *testing.T) {
	// Exactly Length past the edge is still in flight; only beyond resets.
	s := ShootingStar{X: 1000 + 50 - 3, Y: 400, VX: 3, VY: 4, Length: 50}
	s.Update(testViewport, fixedRNG(0.5))
	if s.Resets() != 0 {
		t.Errorf("Resets() = %d, want 0 at exactly Length past the edge", s.Resets())
	}
}

func TestShootingStarStaysInFlight(t *testing.T) {
	rng := testRNG(7)
	s := newShootingStar(rng, testViewport)
	for frame := range 10000 {
		s.Update(testViewport, rng)
		if s.X > testViewport.Width+s.Length || s.Y > testViewport.Height+s.Length {
			t.Fatalf("frame %d: star at (%v, %v) past the reset line", frame, s.X, s.Y)
		}
	}
	if s.Resets() == 0 {
		t.Error("star never respawned in 10000 frames")
	}
}

func TestShootingStarTail(t *testing.T) {
	s := ShootingStar{X: 100, Y: 100, Length: 20, Angle: math.Pi / 4}
	tx, ty := s.Tail()
	d := 20 / math.Sqrt2
	assertNear(t, "tail x", tx, 100-d)
	assertNear(t, "tail y", ty, 100-d)
}

func TestShootingStarDraw(t *testing.T) {
	var dst captureSurface
	s := ShootingStar{X: 100, Y: 100, Length: 20, Angle: math.Pi / 4, Radius: 1.6}
	s.Draw(&dst, 0.5)

	if dst.gradients != 1 || dst.circles != 1 || dst.lines != 0 {
		t.Fatalf("calls = %d gradients, %d circles, %d lines; want 1, 1, 0",
			dst.gradients, dst.circles, dst.lines)
	}
	tx, ty := s.Tail()
	assertNear(t, "x0", dst.gradient[0], 100)
	assertNear(t, "y0", dst.gradient[1], 100)
	assertNear(t, "x1", dst.gradient[2], tx)
	assertNear(t, "y1", dst.gradient[3], ty)
	assertNear(t, "width", dst.gradient[4], 1.6)
	assertNear(t, "head alpha", dst.gradFrom.A, 0.8*0.5)
	assertNear(t, "tail alpha", dst.gradTo.A, 0)
	assertNear(t, "core alpha", dst.circleC.A, shootingCoreAlpha*0.5)
	assertNear(t, "core radius", dst.circle[2], 1.6)
}
