package starfield

import (
	"image/color"
	"math"
)

// Color is a straight-alpha color with unit components. Surfaces premultiply
// when they submit it.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the star tint.
var ColorWhite = Color{1, 1, 1, 1}

// ColorBackground is the opaque backdrop painted at the start of every frame (#0d1117).
var ColorBackground = Color{R: 13.0 / 255, G: 17.0 / 255, B: 23.0 / 255, A: 1}

// WithAlpha returns c with its alpha replaced by a, clamped to [0, 1].
func (c Color) WithAlpha(a float64) Color {
	c.A = clamp01(a)
	return c
}

// premultiplied returns c as the premultiplied 8-bit color ebiten expects
// for Fill and vector drawing.
func (c Color) premultiplied() color.RGBA {
	a := clamp01(c.A)
	return color.RGBA{
		R: channel8(c.R * a),
		G: channel8(c.G * a),
		B: channel8(c.B * a),
		A: channel8(a),
	}
}

// channel8 truncates a unit channel to 0..255.
func channel8(v float64) uint8 {
	return uint8(clamp01(v) * 255)
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// Vec2 is a point or velocity in surface units.
type Vec2 struct {
	X, Y float64
}

// Viewport is the size of the drawing surface in surface units.
type Viewport struct {
	Width, Height float64
}

// Contains reports whether (x, y) lies in the viewport grown by margin on
// every side, edges included. A static star of radius r always satisfies
// Contains(x, y, r).
func (v Viewport) Contains(x, y, margin float64) bool {
	return x >= -margin && x <= v.Width+margin &&
		y >= -margin && y <= v.Height+margin
}

// Empty reports whether the viewport has no drawable area.
func (v Viewport) Empty() bool {
	return v.Width <= 0 || v.Height <= 0
}

// RandomField is the uniform source used to seed particle attributes.
// *rand.Rand from math/rand/v2 satisfies it.
type RandomField interface {
	Float64() float64
}

// Range is a general-purpose min/max range.
type Range struct {
	Min, Max float64
}

// Random returns a value in [Min, Max) drawn from rng.
func (r Range) Random(rng RandomField) float64 {
	if r.Min == r.Max {
		return r.Min
	}
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

// Contains reports whether v lies in [Min, Max].
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Fixed tuning. The component exposes none of these; they shape the look.
const (
	staticStarCount   = 800
	shootingStarCount = 3

	maxStaticStarSize = 1.5

	repulsionRadius = 200.0
	repulsionGain   = 0.25
	starFriction    = 0.95

	scrollFriction = 0.95
	scrollGain     = 0.02

	streakGain       = 0.8
	streakCap        = 30.0
	streakThreshold  = 2.0
	streakWidthScale = 1.2
	streakAlphaScale = 0.8

	shootingBaseSpeed = 10.0
	shootingCoreAlpha = 0.8

	fadeInDuration = 1.2      // seconds
	frameDuration  = 1.0 / 60 // seconds per display frame
)

var (
	depthRange        = Range{0.3, 1.0}
	minAlphaRange     = Range{0.1, 0.3}
	maxAlphaRange     = Range{0.5, 0.9}
	twinkleSpeedRange = Range{0.003, 0.015}

	shootingLengthRange = Range{40, 120}
	shootingSpeedJitter = Range{0, 8}
	shootingAngleRange  = Range{math.Pi / 6, math.Pi / 3}
	shootingRadiusRange = Range{0.5, 2.0}
)
