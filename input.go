package starfield

// EventType identifies a kind of host window event.
type EventType uint8

const (
	EventResize       EventType = iota // the viewport changed size
	EventScroll                        // the page scroll offset changed
	EventPointerMove                   // the pointer moved inside the viewport
	EventPointerLeave                  // the pointer left the viewport
	eventTypeCount
)

// String returns a short event name for logs.
func (t EventType) String() string {
	switch t {
	case EventResize:
		return "resize"
	case EventScroll:
		return "scroll"
	case EventPointerMove:
		return "pointermove"
	case EventPointerLeave:
		return "pointerleave"
	default:
		return "unknown"
	}
}

// Event carries host window event data. Which fields are meaningful depends
// on Type: X/Y for pointer moves, ScrollY for scrolls, Width/Height for resizes.
type Event struct {
	Type    EventType
	X, Y    float64
	ScrollY float64
	Width   int
	Height  int
}

// --- Handler registry ---

type handler struct {
	id      uint32
	fn      func(Event)
	removed bool
}

// Dispatcher holds window-level listeners and delivers events to them
// synchronously, in registration order. Hosts own one and call Emit from the
// same goroutine that runs frames.
type Dispatcher struct {
	handlers [eventTypeCount][]*handler
	nextID   uint32
}

// CallbackHandle allows removing a registered listener.
type CallbackHandle struct {
	id    uint32
	d     *Dispatcher
	event EventType
}

// On registers fn for events of type t.
func (d *Dispatcher) On(t EventType, fn func(Event)) CallbackHandle {
	if t >= eventTypeCount {
		return CallbackHandle{}
	}
	d.nextID++
	id := d.nextID
	d.handlers[t] = append(d.handlers[t], &handler{id: id, fn: fn})
	return CallbackHandle{id: id, d: d, event: t}
}

// Emit delivers ev to every listener registered for ev.Type. Listeners
// removed during delivery, including ones not yet reached, do not fire;
// listeners added during delivery fire from the next Emit.
func (d *Dispatcher) Emit(ev Event) {
	if ev.Type >= eventTypeCount {
		return
	}
	// Remove never mutates a published slice, so hs is stable.
	hs := d.handlers[ev.Type]
	for _, h := range hs {
		if h.removed {
			continue
		}
		h.fn(ev)
	}
}

// Count returns the number of listeners registered for t.
func (d *Dispatcher) Count(t EventType) int {
	if t >= eventTypeCount {
		return 0
	}
	return len(d.handlers[t])
}

// Remove unregisters this listener so it no longer fires, even from an Emit
// already in progress. Removing twice is a no-op.
func (h CallbackHandle) Remove() {
	if h.d == nil || h.event >= eventTypeCount {
		return
	}
	h.d.handlers[h.event] = removeHandler(h.d.handlers[h.event], h.id)
}

// removeHandler returns a fresh slice without id, leaving s untouched for any
// Emit still ranging over it.
func removeHandler(s []*handler, id uint32) []*handler {
	for i, h := range s {
		if h.id != id {
			continue
		}
		h.removed = true
		out := make([]*handler, 0, len(s)-1)
		out = append(out, s[:i]...)
		return append(out, s[i+1:]...)
	}
	return s
}

// --- Input state ---

// offscreenPointer is where the pointer "is" before the first move and after
// it leaves: far enough outside that no star can be within repulsion range.
var offscreenPointer = Vec2{X: -repulsionRadius, Y: -repulsionRadius}

// InputState tracks the pointer and the page-scroll velocity accumulator.
// Each field has a single writer: pointer events own Pointer, scroll events
// add to the velocity, and the frame tick decays it.
type InputState struct {
	Pointer        Vec2
	scrollVelocity float64
	lastScrollY    float64
}

// NewInputState returns input with the pointer parked off-screen and the
// scroll baseline at scrollY.
func NewInputState(scrollY float64) *InputState {
	return &InputState{
		Pointer:     offscreenPointer,
		lastScrollY: scrollY,
	}
}

// ScrollVelocity returns the current signed scroll velocity.
func (in *InputState) ScrollVelocity() float64 {
	return in.scrollVelocity
}

// MovePointer records the latest pointer position in viewport space.
func (in *InputState) MovePointer(x, y float64) {
	in.Pointer = Vec2{X: x, Y: y}
}

// LeavePointer parks the pointer off-screen so it repels nothing.
func (in *InputState) LeavePointer() {
	in.Pointer = offscreenPointer
}

// PointerActive reports whether the pointer is inside the viewport.
func (in *InputState) PointerActive() bool {
	return in.Pointer != offscreenPointer
}

// ScrollTo feeds a new page scroll offset. The delta against the previous
// offset, scaled by scrollGain, is added to the velocity.
func (in *InputState) ScrollTo(scrollY float64) {
	in.scrollVelocity += (scrollY - in.lastScrollY) * scrollGain
	in.lastScrollY = scrollY
}

// decay applies one frame of friction to the scroll velocity.
func (in *InputState) decay() {
	in.scrollVelocity *= scrollFriction
}
