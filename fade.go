package starfield

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// fadeIn eases the layer opacity from 0 to 1 after mount so the field does
// not pop in over the page. There is no global animation manager; the
// component advances it once per frame.
type fadeIn struct {
	tween *gween.Tween
	value float64
	done  bool
}

func newFadeIn(duration float32) *fadeIn {
	return &fadeIn{tween: gween.New(0, 1, duration, ease.OutQuad)}
}

// Update advances the tween by dt seconds and returns the current opacity.
func (f *fadeIn) Update(dt float32) float64 {
	if f.done {
		return 1
	}
	val, finished := f.tween.Update(dt)
	f.value = clamp01(float64(val))
	if finished {
		f.done = true
		f.value = 1
	}
	return f.value
}

// Value returns the opacity reached by the last Update.
func (f *fadeIn) Value() float64 {
	if f.done {
		return 1
	}
	return f.value
}
