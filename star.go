package starfield

import "math"

// StaticStar is one twinkling background point. It drifts under scroll
// parallax, is pushed away by the pointer and wraps around the viewport edges.
type StaticStar struct {
	X, Y   float64
	VX, VY float64

	// Depth in [0.3, 1.0]. Larger is closer: bigger, brighter, more parallax.
	Depth  float64
	Radius float64

	Alpha        float64
	MinAlpha     float64 // unscaled; the live band is [MinAlpha*Depth, MaxAlpha*Depth]
	MaxAlpha     float64
	TwinkleSpeed float64 // magnitude fixed at creation, sign flips at band edges
}

// newStaticStar seeds a star uniformly across the viewport.
func newStaticStar(rng RandomField, vp Viewport) StaticStar {
	s := StaticStar{
		X:     rng.Float64() * vp.Width,
		Y:     rng.Float64() * vp.Height,
		Depth: depthRange.Random(rng),
	}
	s.Radius = rng.Float64() * maxStaticStarSize * s.Depth
	s.MinAlpha = minAlphaRange.Random(rng)
	s.MaxAlpha = maxAlphaRange.Random(rng)
	s.Alpha = Range{s.MinAlpha, s.MaxAlpha}.Random(rng) * s.Depth
	s.TwinkleSpeed = twinkleSpeedRange.Random(rng)
	return s
}

// AlphaBand returns the depth-scaled opacity band the star oscillates in.
func (s *StaticStar) AlphaBand() Range {
	return Range{s.MinAlpha * s.Depth, s.MaxAlpha * s.Depth}
}

// Update advances the star by one frame: parallax, pointer repulsion,
// friction, integration and wraparound.
func (s *StaticStar) Update(scrollVelocity float64, pointer Vec2, vp Viewport, rng RandomField) {
	s.Y -= scrollVelocity * s.Depth

	s.repel(pointer)

	s.VX *= starFriction
	s.VY *= starFriction
	s.X += s.VX
	s.Y += s.VY

	s.wrap(vp, rng)
}

// repel adds an impulse directed away from the pointer, falling off linearly
// to zero at repulsionRadius. A pointer exactly on the star is ignored.
func (s *StaticStar) repel(pointer Vec2) {
	dx := s.X - pointer.X
	dy := s.Y - pointer.Y
	dist := math.Sqrt(dx*dx + dy*dy)
	if dist >= repulsionRadius || dist == 0 {
		return
	}
	force := (repulsionRadius - dist) / repulsionRadius
	s.VX += dx / dist * force * repulsionGain
	s.VY += dy / dist * force * repulsionGain
}

// wrap moves a star that left the viewport to the opposite edge. Vertical
// exits re-randomize X so re-entering stars do not line up in columns.
func (s *StaticStar) wrap(vp Viewport, rng RandomField) {
	r := s.Radius
	if s.Y < -r {
		s.Y = vp.Height + r
		s.X = rng.Float64() * vp.Width
	} else if s.Y > vp.Height+r {
		s.Y = -r
		s.X = rng.Float64() * vp.Width
	}
	if s.X < -r {
		s.X = vp.Width + r
	} else if s.X > vp.Width+r {
		s.X = -r
	}
}

// twinkle steps Alpha toward the current band edge and reverses at the edges.
func (s *StaticStar) twinkle() {
	band := s.AlphaBand()
	s.Alpha += s.TwinkleSpeed
	if s.Alpha > band.Max {
		s.Alpha = band.Max
		s.TwinkleSpeed = -math.Abs(s.TwinkleSpeed)
	} else if s.Alpha < band.Min {
		s.Alpha = band.Min
		s.TwinkleSpeed = math.Abs(s.TwinkleSpeed)
	}
}

// StreakLength returns the motion-blur length for the given scroll velocity.
func (s *StaticStar) StreakLength(scrollVelocity float64) float64 {
	return math.Min(math.Abs(scrollVelocity)*streakGain*s.Depth, streakCap)
}

// Draw advances the twinkle and issues exactly one draw call: a vertical
// streak pointing along the scroll direction while scrolling fast, otherwise
// a dot. opacity scales the final alpha (layer fade).
func (s *StaticStar) Draw(dst Surface, scrollVelocity, opacity float64) {
	s.twinkle()

	streak := s.StreakLength(scrollVelocity)
	if streak > streakThreshold {
		dir := math.Copysign(1, scrollVelocity)
		dst.StrokeLine(s.X, s.Y, s.X, s.Y+streak*dir,
			s.Radius*streakWidthScale,
			ColorWhite.WithAlpha(s.Alpha*streakAlphaScale*opacity))
		return
	}
	dst.FillCircle(s.X, s.Y, s.Radius, ColorWhite.WithAlpha(s.Alpha*opacity))
}
