package starfield

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsWidget displays FPS, TPS and the live particle counts in the top-left
// corner. The text is redrawn every ~0.5 seconds.
type fpsWidget struct {
	img     *ebiten.Image
	elapsed float64
	op      ebiten.DrawImageOptions
}

func newFPSWidget() *fpsWidget {
	// 140x48 fits three lines of DebugPrint text.
	w := &fpsWidget{img: ebiten.NewImage(140, 48)}
	w.op.GeoM.Translate(4, 4)
	return w
}

func (w *fpsWidget) update(dt float64, sf *Starfield) {
	w.elapsed += dt
	if w.elapsed < 0.5 {
		return
	}
	w.elapsed = 0

	w.img.Clear()
	// Semi-transparent background for readability.
	w.img.Fill(color.RGBA{0, 0, 0, 128})

	static, shooting := 0, 0
	if sf != nil && sf.Field() != nil {
		static = len(sf.Field().Static)
		shooting = len(sf.Field().Shooting)
	}
	ebitenutil.DebugPrint(w.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nStars: %d+%d",
		ebiten.ActualFPS(), ebiten.ActualTPS(), static, shooting))
}

func (w *fpsWidget) draw(screen *ebiten.Image) {
	screen.DrawImage(w.img, &w.op)
}
