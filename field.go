package starfield

import (
	"math/rand/v2"
	"time"
)

// Field is the simulation loop. It owns both particle collections and
// advances and draws them once per Tick. Stars never interact with each
// other, so each one is updated and drawn in the same pass.
type Field struct {
	Static   []StaticStar
	Shooting []ShootingStar

	rng      RandomField
	viewport Viewport
}

// NewField creates an empty field. A nil rng uses a clock-seeded PCG source.
func NewField(rng RandomField) *Field {
	if rng == nil {
		now := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(now, now>>17|1))
	}
	return &Field{rng: rng}
}

// Viewport returns the bounds the current collections were created for.
func (f *Field) Viewport() Viewport {
	return f.viewport
}

// CreateStars discards both collections and seeds new ones for vp.
// Old instances are dropped, never resized in place.
func (f *Field) CreateStars(vp Viewport, staticCount, shootingCount int) {
	f.viewport = vp

	static := make([]StaticStar, max(staticCount, 0))
	for i := range static {
		static[i] = newStaticStar(f.rng, vp)
	}
	shooting := make([]ShootingStar, max(shootingCount, 0))
	for i := range shooting {
		shooting[i] = newShootingStar(f.rng, vp)
	}
	f.Static = static
	f.Shooting = shooting
}

// Tick runs one frame: decay the scroll velocity, paint the backdrop, then
// update and draw every static star followed by every shooting star.
// opacity scales every star's alpha; the backdrop is always opaque.
func (f *Field) Tick(in *InputState, dst Surface, opacity float64) {
	in.decay()
	velocity := in.ScrollVelocity()
	pointer := in.Pointer
	vp := f.viewport

	dst.Fill(ColorBackground)

	for i := range f.Static {
		s := &f.Static[i]
		s.Update(velocity, pointer, vp, f.rng)
		s.Draw(dst, velocity, opacity)
	}

	for i := range f.Shooting {
		s := &f.Shooting[i]
		s.Update(vp, f.rng)
		s.Draw(dst, opacity)
	}
}
