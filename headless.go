package starfield

import "math"

// Headless is a Host with no window and no display. Frames advance only when
// Advance is called, which makes it the harness for automated tests and for
// offline benchmarking. Window events can be dispatched immediately
// (Resize, ScrollTo, MovePointer, LeavePointer) or queued one per frame
// (InjectScroll, InjectMove), mimicking a user acting between frames.
type Headless struct {
	Dispatcher
	FrameQueue

	// FailSurface makes NewSurface report that no drawing context exists.
	FailSurface bool

	width, height int
	scrollY       float64
	injectQueue   []Event
	surface       *RecordingSurface
	runner        *ScriptRunner
}

// NewHeadless creates a headless host with the given viewport size.
func NewHeadless(width, height int) *Headless {
	return &Headless{width: width, height: height}
}

// Size returns the viewport dimensions.
func (h *Headless) Size() (int, int) {
	return h.width, h.height
}

// ScrollY returns the simulated page scroll offset.
func (h *Headless) ScrollY() float64 {
	return h.scrollY
}

// NewSurface returns a RecordingSurface, or ErrNoSurface when FailSurface is set.
func (h *Headless) NewSurface(width, height int) (Surface, error) {
	if h.FailSurface {
		return nil, ErrNoSurface
	}
	h.surface = NewRecordingSurface(width, height)
	return h.surface, nil
}

// Surface returns the most recently created surface.
func (h *Headless) Surface() *RecordingSurface {
	return h.surface
}

// Resize changes the viewport and dispatches a resize event.
func (h *Headless) Resize(width, height int) {
	h.dispatch(Event{Type: EventResize, Width: width, Height: height})
}

// ScrollTo sets the page scroll offset and dispatches a scroll event.
func (h *Headless) ScrollTo(y float64) {
	h.dispatch(Event{Type: EventScroll, ScrollY: y})
}

// ScrollBy moves the page scroll offset by dy.
func (h *Headless) ScrollBy(dy float64) {
	h.ScrollTo(h.scrollY + dy)
}

// MovePointer dispatches a pointer move to viewport coordinates (x, y).
func (h *Headless) MovePointer(x, y float64) {
	h.dispatch(Event{Type: EventPointerMove, X: x, Y: y})
}

// LeavePointer dispatches a pointer leave event.
func (h *Headless) LeavePointer() {
	h.dispatch(Event{Type: EventPointerLeave})
}

// InjectMove queues a pointer move consumed on the next frame.
func (h *Headless) InjectMove(x, y float64) {
	h.injectQueue = append(h.injectQueue, Event{Type: EventPointerMove, X: x, Y: y})
}

// InjectScroll queues a scroll from offset `from` to `to` spread linearly
// over frames frames, one scroll event per frame. Minimum frames is 1.
func (h *Headless) InjectScroll(from, to float64, frames int) {
	if frames < 1 {
		frames = 1
	}
	for i := 1; i <= frames; i++ {
		t := float64(i) / float64(frames)
		h.injectQueue = append(h.injectQueue, Event{Type: EventScroll, ScrollY: from + (to-from)*t})
	}
}

// Queued returns the number of injected events not yet delivered.
func (h *Headless) Queued() int {
	return len(h.injectQueue)
}

// Advance runs n display frames. Each frame first steps an attached script,
// then delivers at most one injected event, then runs the frame callbacks.
func (h *Headless) Advance(n int) {
	for i := 0; i < n; i++ {
		h.step()
	}
}

func (h *Headless) step() {
	if h.runner != nil {
		h.runner.step(h)
	}
	if len(h.injectQueue) > 0 {
		ev := h.injectQueue[0]
		copy(h.injectQueue, h.injectQueue[1:])
		h.injectQueue = h.injectQueue[:len(h.injectQueue)-1]
		h.dispatch(ev)
	}
	h.RunFrame()
}

// dispatch applies an event to the host's own state, then emits it.
func (h *Headless) dispatch(ev Event) {
	switch ev.Type {
	case EventResize:
		if ev.Width > 0 && ev.Height > 0 {
			h.width, h.height = ev.Width, ev.Height
		}
	case EventScroll:
		h.scrollY = ev.ScrollY
	}
	h.Emit(ev)
}

// --- Recording surface ---

// DrawOp identifies a Surface call.
type DrawOp uint8

const (
	OpFill DrawOp = iota
	OpFillCircle
	OpStrokeLine
	OpStrokeGradient
	drawOpCount
)

// RecordingSurface is a Surface that draws nothing and counts calls. It
// keeps no per-call history, so recording never allocates.
type RecordingSurface struct {
	width, height int

	counts      [drawOpCount]int
	frameCounts [drawOpCount]int // since the last Fill
	lastFill    Color
	maxAlpha    float64 // highest alpha seen since the last Fill
	nonFinite   int
	resizes     int
	disposed    bool
}

// NewRecordingSurface creates a recording surface of the given size.
func NewRecordingSurface(width, height int) *RecordingSurface {
	return &RecordingSurface{width: width, height: height}
}

// Size returns the surface dimensions.
func (r *RecordingSurface) Size() (int, int) {
	return r.width, r.height
}

// Resize records the new dimensions.
func (r *RecordingSurface) Resize(width, height int) {
	r.width, r.height = width, height
	r.resizes++
}

// Fill starts a new frame of counts.
func (r *RecordingSurface) Fill(c Color) {
	r.counts[OpFill]++
	r.frameCounts = [drawOpCount]int{}
	r.frameCounts[OpFill] = 1
	r.lastFill = c
	r.maxAlpha = 0
}

// FillCircle counts a circle.
func (r *RecordingSurface) FillCircle(cx, cy, radius float64, c Color) {
	r.record(OpFillCircle, c, cx, cy, radius)
}

// StrokeLine counts a line.
func (r *RecordingSurface) StrokeLine(x0, y0, x1, y1, width float64, c Color) {
	r.record(OpStrokeLine, c, x0, y0, x1, y1, width)
}

// StrokeGradient counts a gradient line.
func (r *RecordingSurface) StrokeGradient(x0, y0, x1, y1, width float64, from, to Color) {
	r.record(OpStrokeGradient, from, x0, y0, x1, y1, width, to.A)
}

// Dispose marks the surface released.
func (r *RecordingSurface) Dispose() {
	r.disposed = true
}

func (r *RecordingSurface) record(op DrawOp, c Color, vals ...float64) {
	r.counts[op]++
	r.frameCounts[op]++
	if c.A > r.maxAlpha {
		r.maxAlpha = c.A
	}
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			r.nonFinite++
			return
		}
	}
}

// Count returns how many times op was issued since creation.
func (r *RecordingSurface) Count(op DrawOp) int {
	return r.counts[op]
}

// FrameCount returns how many times op was issued since the last Fill.
func (r *RecordingSurface) FrameCount(op DrawOp) int {
	return r.frameCounts[op]
}

// LastFill returns the color of the most recent Fill.
func (r *RecordingSurface) LastFill() Color {
	return r.lastFill
}

// MaxAlpha returns the highest draw alpha since the last Fill.
func (r *RecordingSurface) MaxAlpha() float64 {
	return r.maxAlpha
}

// NonFinite returns how many draw calls carried a NaN or infinite value.
func (r *RecordingSurface) NonFinite() int {
	return r.nonFinite
}

// Resizes returns how many times Resize was called.
func (r *RecordingSurface) Resizes() int {
	return r.resizes
}

// Disposed reports whether Dispose was called.
func (r *RecordingSurface) Disposed() bool {
	return r.disposed
}
