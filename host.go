package starfield

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	defaultWheelStep = 40.0 // page units per wheel notch
	pageKeyFraction  = 0.9  // PageUp/PageDown scroll by this share of the viewport
)

// RunConfig configures the window opened by Run. None of it reaches the
// starfield itself, which has fixed tuning.
type RunConfig struct {
	Title      string
	Width      int
	Height     int
	TPS        int
	Fullscreen bool
	ShowFPS    bool
	Debug      bool

	// ScreenshotDir receives PNGs captured with F12.
	ScreenshotDir string
	// WheelStep is the page scroll per wheel notch. Zero uses 40.
	WheelStep float64
	// PageHeight bounds the virtual page scroll to [0, PageHeight-Height].
	// Zero leaves the page unbounded below.
	PageHeight float64

	// OnUpdate runs every tick before input is polled. Returning
	// ebiten.Termination closes the window.
	OnUpdate func() error
	// Overlay draws the page content on top of the starfield.
	Overlay func(screen *ebiten.Image, scrollY float64)
}

// EbitenHost runs a Starfield inside an Ebitengine window. It implements
// ebiten.Game and Host: Update polls the cursor, wheel and paging keys into
// window events and then runs the frame queue; Draw composites the owned
// surface, the page overlay and the FPS widget.
type EbitenHost struct {
	Dispatcher
	FrameQueue

	// ScreenshotDir receives PNGs queued with Screenshot.
	ScreenshotDir string

	width, height   int
	resizeW         int
	resizeH         int
	scrollY         float64
	pageHeight      float64
	wheelStep       float64
	pointerInside   bool
	lastX, lastY    int
	surface         *ImageSurface
	fps             *fpsWidget
	screenshotQueue []string
	starfield       *Starfield

	onUpdate func() error
	overlay  func(screen *ebiten.Image, scrollY float64)
}

// NewEbitenHost creates a host for a window of the given size.
func NewEbitenHost(width, height int) *EbitenHost {
	return &EbitenHost{
		width:         width,
		height:        height,
		wheelStep:     defaultWheelStep,
		ScreenshotDir: "screenshots",
	}
}

// Size returns the current window size in logical pixels.
func (h *EbitenHost) Size() (int, int) {
	return h.width, h.height
}

// ScrollY returns the virtual page scroll offset.
func (h *EbitenHost) ScrollY() float64 {
	return h.scrollY
}

// NewSurface allocates an offscreen image surface.
func (h *EbitenHost) NewSurface(width, height int) (Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("surface %dx%d: %w", width, height, ErrNoSurface)
	}
	h.surface = NewImageSurface(width, height)
	return h.surface, nil
}

// Update implements ebiten.Game.
func (h *EbitenHost) Update() error {
	if h.onUpdate != nil {
		if err := h.onUpdate(); err != nil {
			return err
		}
	}

	if h.resizeW > 0 && h.resizeH > 0 {
		h.width, h.height = h.resizeW, h.resizeH
		h.resizeW, h.resizeH = 0, 0
		h.Emit(Event{Type: EventResize, Width: h.width, Height: h.height})
	}

	h.pollPointer()
	h.pollScroll()

	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		h.Screenshot("manual")
	}

	h.RunFrame()

	if h.fps != nil {
		h.fps.update(frameDuration, h.starfield)
	}
	return nil
}

// Draw implements ebiten.Game.
func (h *EbitenHost) Draw(screen *ebiten.Image) {
	if h.surface != nil && h.surface.Image() != nil {
		screen.DrawImage(h.surface.Image(), nil)
	} else {
		screen.Fill(ColorBackground.premultiplied())
	}
	if h.overlay != nil {
		h.overlay(screen, h.scrollY)
	}
	if h.fps != nil {
		h.fps.draw(screen)
	}
	h.flushScreenshots(screen)
}

// Layout implements ebiten.Game. The logical screen always matches the
// window; a size change is delivered as a resize event on the next Update.
func (h *EbitenHost) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != h.width || outsideHeight != h.height {
		h.resizeW, h.resizeH = outsideWidth, outsideHeight
	}
	return outsideWidth, outsideHeight
}

// pollPointer emits a move whenever the cursor moves inside the window and
// a single leave when it exits or the window loses focus.
func (h *EbitenHost) pollPointer() {
	x, y := ebiten.CursorPosition()
	inside := ebiten.IsFocused() && x >= 0 && y >= 0 && x < h.width && y < h.height
	switch {
	case inside && (!h.pointerInside || x != h.lastX || y != h.lastY):
		h.Emit(Event{Type: EventPointerMove, X: float64(x), Y: float64(y)})
	case !inside && h.pointerInside:
		h.Emit(Event{Type: EventPointerLeave})
	}
	h.pointerInside = inside
	h.lastX, h.lastY = x, y
}

// pollScroll turns wheel and paging keys into a page scroll offset.
func (h *EbitenHost) pollScroll() {
	_, wy := ebiten.Wheel()
	next := h.scrollY - wy*h.wheelStep

	page := float64(h.height) * pageKeyFraction
	if inpututil.IsKeyJustPressed(ebiten.KeyPageDown) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		next += page
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPageUp) {
		next -= page
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyHome) {
		next = 0
	}

	next = h.clampScroll(next)
	if next != h.scrollY {
		h.scrollY = next
		h.Emit(Event{Type: EventScroll, ScrollY: next})
	}
}

func (h *EbitenHost) clampScroll(y float64) float64 {
	if h.pageHeight > 0 {
		y = min(y, max(h.pageHeight-float64(h.height), 0))
	}
	return max(y, 0)
}

// Run opens a window and animates a Starfield in it until the window is
// closed or cfg.OnUpdate returns ebiten.Termination.
func Run(cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 1280
	}
	if cfg.Height <= 0 {
		cfg.Height = 720
	}
	if cfg.TPS <= 0 {
		cfg.TPS = 60
	}

	host := NewEbitenHost(cfg.Width, cfg.Height)
	if cfg.WheelStep > 0 {
		host.wheelStep = cfg.WheelStep
	}
	if cfg.ScreenshotDir != "" {
		host.ScreenshotDir = cfg.ScreenshotDir
	}
	host.pageHeight = cfg.PageHeight
	host.onUpdate = cfg.OnUpdate
	host.overlay = cfg.Overlay
	if cfg.ShowFPS {
		host.fps = newFPSWidget()
	}

	sf := New()
	sf.SetDebugMode(cfg.Debug)
	if err := sf.Mount(host); err != nil {
		return fmt.Errorf("mount starfield: %w", err)
	}
	defer sf.Unmount()
	host.starfield = sf

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(cfg.Fullscreen)
	ebiten.SetTPS(cfg.TPS)

	if err := ebiten.RunGame(host); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
