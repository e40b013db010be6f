package starfield

import "math"

// ShootingStar is a streaking particle that travels down and to the right in
// a straight line. It is never destroyed: once past the bottom or right edge
// it is re-parameterized in place and starts again from the top edge.
type ShootingStar struct {
	X, Y   float64
	VX, VY float64

	Length float64
	Speed  float64
	Angle  float64 // radians below the horizontal, in [π/6, π/3)
	Radius float64

	resets int
}

// newShootingStar creates a star already positioned on the top edge.
func newShootingStar(rng RandomField, vp Viewport) ShootingStar {
	var s ShootingStar
	s.Reset(rng, vp)
	s.resets = 0
	return s
}

// Reset re-randomizes every attribute and puts the star back on the top edge.
func (s *ShootingStar) Reset(rng RandomField, vp Viewport) {
	s.X = rng.Float64() * vp.Width
	s.Y = 0
	s.Length = shootingLengthRange.Random(rng)
	s.Speed = shootingBaseSpeed + shootingSpeedJitter.Random(rng)
	s.Angle = shootingAngleRange.Random(rng)
	s.VX = math.Cos(s.Angle) * s.Speed
	s.VY = math.Sin(s.Angle) * s.Speed
	s.Radius = shootingRadiusRange.Random(rng)
	s.resets++
}

// Resets returns how many times the star has respawned since creation.
func (s *ShootingStar) Resets() int {
	return s.resets
}

// Update moves the star one frame along its heading and respawns it once
// the whole trail has left the viewport.
func (s *ShootingStar) Update(vp Viewport, rng RandomField) {
	s.X += s.VX
	s.Y += s.VY
	if s.X > vp.Width+s.Length || s.Y > vp.Height+s.Length {
		s.Reset(rng, vp)
	}
}

// Tail returns the trailing end of the streak.
func (s *ShootingStar) Tail() (x, y float64) {
	return s.X - s.Length*math.Cos(s.Angle), s.Y - s.Length*math.Sin(s.Angle)
}

// Draw renders the trail as a gradient from the head to a transparent tail,
// then a small bright core at the head.
func (s *ShootingStar) Draw(dst Surface, opacity float64) {
	tx, ty := s.Tail()
	head := ColorWhite.WithAlpha(s.Radius / 2 * opacity)
	dst.StrokeGradient(s.X, s.Y, tx, ty, s.Radius, head, ColorWhite.WithAlpha(0))
	dst.FillCircle(s.X, s.Y, s.Radius, ColorWhite.WithAlpha(shootingCoreAlpha*opacity))
}
