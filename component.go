package starfield

import (
	"errors"
	"time"
)

// ErrMounted is returned when Mount is called on a component that is already running.
var ErrMounted = errors.New("starfield: already mounted")

// Window is the host's view of the browser-like window the field sits behind.
type Window interface {
	// Size returns the viewport dimensions in surface units.
	Size() (width, height int)
	// ScrollY returns the current page scroll offset.
	ScrollY() float64
	// On registers a window-level listener.
	On(t EventType, fn func(Event)) CallbackHandle
}

// SurfaceProvider creates the drawing surface the component owns.
type SurfaceProvider interface {
	// NewSurface returns a surface of the given size, or an error when no
	// drawing context is available.
	NewSurface(width, height int) (Surface, error)
}

// Host is everything the component consumes from its environment.
type Host interface {
	Window
	Scheduler
	SurfaceProvider
}

// Starfield is the mountable background layer. It takes no configuration:
// star counts, colors, radii, speeds and gains are fixed.
//
// Mount binds window listeners, seeds the stars and starts the frame loop;
// Unmount removes the listeners and cancels the pending frame. Listeners only
// touch InputState and the viewport; the particle collections are owned by
// the Field and changed only inside a frame.
type Starfield struct {
	host    Host
	field   *Field
	input   *InputState
	surface Surface
	fade    *fadeIn
	rng     RandomField

	viewport  Viewport
	listeners []CallbackHandle

	frameID      FrameID
	framePending bool
	mounted      bool
	reseed       bool
	frames       uint64

	debug bool
	stats debugStats
}

// New returns an unmounted starfield.
func New() *Starfield {
	return &Starfield{}
}

// Mount attaches the component to host and starts animating. If the host
// cannot provide a drawing surface the component stays inert and Mount
// returns nil: a decorative layer must never block the page it decorates.
func (sf *Starfield) Mount(host Host) error {
	if sf.mounted {
		return ErrMounted
	}

	w, h := host.Size()
	surface, err := host.NewSurface(w, h)
	if err != nil || surface == nil {
		logger.Debug("no drawing surface, animation disabled", "err", err)
		return nil
	}

	sf.host = host
	sf.surface = surface
	sf.viewport = Viewport{Width: float64(w), Height: float64(h)}
	sf.input = NewInputState(host.ScrollY())
	sf.field = NewField(sf.rng)
	sf.field.CreateStars(sf.viewport, staticStarCount, shootingStarCount)
	sf.fade = newFadeIn(fadeInDuration)
	sf.reseed = false
	sf.frames = 0

	sf.listeners = append(sf.listeners[:0],
		host.On(EventResize, sf.handleResize),
		host.On(EventScroll, sf.handleScroll),
		host.On(EventPointerMove, sf.handlePointerMove),
		host.On(EventPointerLeave, sf.handlePointerLeave),
	)
	sf.mounted = true
	sf.stats.reset(time.Now())
	sf.schedule()
	return nil
}

// Unmount detaches every listener, cancels the pending frame and releases
// the surface. It is idempotent and safe to defer.
func (sf *Starfield) Unmount() {
	if !sf.mounted {
		return
	}
	sf.mounted = false

	for _, h := range sf.listeners {
		h.Remove()
	}
	sf.listeners = sf.listeners[:0]

	if sf.framePending {
		sf.host.CancelFrame(sf.frameID)
		sf.framePending = false
	}
	if sf.surface != nil {
		sf.surface.Dispose()
		sf.surface = nil
	}
}

func (sf *Starfield) schedule() {
	sf.frameID = sf.host.RequestFrame(sf.frame)
	sf.framePending = true
}

// frame is the per-frame callback. It reschedules itself while mounted. A
// panic inside the frame tears the component down before propagating.
func (sf *Starfield) frame() {
	sf.framePending = false
	if !sf.mounted {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			sf.Unmount()
			panic(r)
		}
	}()

	var t0 time.Time
	if sf.debug {
		t0 = time.Now()
	}

	if sf.reseed {
		sf.field.CreateStars(sf.viewport, staticStarCount, shootingStarCount)
		sf.reseed = false
		sf.stats.reseeds++
	}
	opacity := sf.fade.Update(frameDuration)
	sf.field.Tick(sf.input, sf.surface, opacity)
	sf.frames++

	if sf.debug {
		sf.stats.record(time.Since(t0))
		if sf.stats.frames >= debugLogInterval {
			sf.debugLog()
		}
	}

	sf.schedule()
}

// --- Listeners ---

func (sf *Starfield) handleResize(ev Event) {
	w, h := ev.Width, ev.Height
	if w <= 0 || h <= 0 {
		w, h = sf.host.Size()
	}
	sf.viewport = Viewport{Width: float64(w), Height: float64(h)}
	sf.surface.Resize(w, h)
	sf.reseed = true
}

func (sf *Starfield) handleScroll(ev Event) {
	sf.input.ScrollTo(ev.ScrollY)
}

func (sf *Starfield) handlePointerMove(ev Event) {
	sf.input.MovePointer(ev.X, ev.Y)
}

func (sf *Starfield) handlePointerLeave(Event) {
	sf.input.LeavePointer()
}

// --- Accessors ---

// Mounted reports whether the component is animating.
func (sf *Starfield) Mounted() bool {
	return sf.mounted
}

// Field returns the simulation, or nil if the component never mounted.
func (sf *Starfield) Field() *Field {
	return sf.field
}

// Input returns the pointer and scroll state, or nil if never mounted.
func (sf *Starfield) Input() *InputState {
	return sf.input
}

// Viewport returns the current viewport.
func (sf *Starfield) Viewport() Viewport {
	return sf.viewport
}

// Surface returns the owned drawing surface, or nil when not mounted.
func (sf *Starfield) Surface() Surface {
	return sf.surface
}

// Opacity returns the current layer opacity (0 right after mount, 1 once faded in).
func (sf *Starfield) Opacity() float64 {
	if sf.fade == nil {
		return 0
	}
	return sf.fade.Value()
}

// Frames returns the number of frames drawn since the last Mount.
func (sf *Starfield) Frames() uint64 {
	return sf.frames
}
