package term

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/starfield"
)

// FrameInterval is the tick between frames, about 60 per second.
const FrameInterval = 16 * time.Millisecond

// ErrScreenClosed is returned by Run once the screen has been finalized.
var ErrScreenClosed = errors.New("term: screen finalized")

// Host drives a starfield on a tcell screen. Terminal events and frames are
// handled on the goroutine that calls Run, so listeners never race a frame.
type Host struct {
	starfield.Dispatcher
	starfield.FrameQueue

	screen    tcell.Screen
	surface   *CellSurface
	cols      int
	rows      int
	scrollY   float64
	wheelStep float64
	pointerIn bool

	pollOnce sync.Once
	events   chan tcell.Event
}

// NewHost wraps an initialized screen.
func NewHost(screen tcell.Screen) *Host {
	cols, rows := screen.Size()
	return &Host{
		screen:    screen,
		cols:      cols,
		rows:      rows,
		wheelStep: 3 * CellHeight,
	}
}

// Size returns the screen size in surface units.
func (h *Host) Size() (int, int) {
	return h.cols * CellWidth, h.rows * CellHeight
}

// ScrollY returns the virtual page scroll offset.
func (h *Host) ScrollY() float64 {
	return h.scrollY
}

// NewSurface allocates a cell surface covering the screen.
func (h *Host) NewSurface(width, height int) (starfield.Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("terminal surface %dx%d: %w", width, height, starfield.ErrNoSurface)
	}
	h.surface = NewCellSurface(width, height)
	return h.surface, nil
}

// Surface returns the surface handed to the starfield, or nil.
func (h *Host) Surface() *CellSurface {
	return h.surface
}

// Run enables mouse reporting and pumps events and frames until ctx is
// cancelled or a quit key (Esc, q, Ctrl-C) arrives. It does not call Fini.
//
// Events are read by one poller per Host that outlives Run, so a later Run
// sees every event. The poller exits when the caller finalizes the screen;
// Run reports ErrScreenClosed if that happens while it is running.
func (h *Host) Run(ctx context.Context) error {
	h.screen.EnableMouse(tcell.MouseMotionEvents)
	h.screen.EnableFocus()
	defer h.screen.DisableMouse()

	h.pollOnce.Do(h.startPoller)

	ticker := time.NewTicker(FrameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-h.events:
			if !ok {
				return ErrScreenClosed
			}
			if !h.HandleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			h.Frame()
		}
	}
}

func (h *Host) startPoller() {
	h.events = make(chan tcell.Event, 100)
	go func() {
		defer close(h.events)
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return
			}
			h.events <- ev
		}
	}()
}

// Frame runs the pending frame callbacks and shows the result.
func (h *Host) Frame() {
	h.RunFrame()
	if h.surface != nil && !h.surface.Disposed() {
		h.surface.Flush(h.screen)
	}
	h.screen.Show()
}

// HandleEvent translates one terminal event into window events. It returns
// false when the event asks to quit.
func (h *Host) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.handleKey(ev)

	case *tcell.EventResize:
		cols, rows := ev.Size()
		if cols == h.cols && rows == h.rows {
			return true
		}
		h.cols, h.rows = cols, rows
		w, hgt := h.Size()
		h.Emit(starfield.Event{Type: starfield.EventResize, Width: w, Height: hgt})
		h.screen.Sync()

	case *tcell.EventMouse:
		x, y := ev.Position()
		btn := ev.Buttons()
		if btn&tcell.WheelUp != 0 {
			h.scrollBy(-h.wheelStep)
		}
		if btn&tcell.WheelDown != 0 {
			h.scrollBy(h.wheelStep)
		}
		h.pointerIn = true
		h.Emit(starfield.Event{
			Type: starfield.EventPointerMove,
			X:    float64(x*CellWidth + CellWidth/2),
			Y:    float64(y*CellHeight + CellHeight/2),
		})

	case *tcell.EventFocus:
		if !ev.Focused && h.pointerIn {
			h.pointerIn = false
			h.Emit(starfield.Event{Type: starfield.EventPointerLeave})
		}
	}
	return true
}

func (h *Host) handleKey(ev *tcell.EventKey) bool {
	page := float64(h.rows*CellHeight) * 0.9
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case ' ', 'j':
			h.scrollBy(CellHeight)
		case 'k':
			h.scrollBy(-CellHeight)
		}
	case tcell.KeyDown:
		h.scrollBy(CellHeight)
	case tcell.KeyUp:
		h.scrollBy(-CellHeight)
	case tcell.KeyPgDn:
		h.scrollBy(page)
	case tcell.KeyPgUp:
		h.scrollBy(-page)
	case tcell.KeyHome:
		h.scrollBy(-h.scrollY)
	}
	return true
}

func (h *Host) scrollBy(dy float64) {
	next := max(h.scrollY+dy, 0)
	if next == h.scrollY {
		return
	}
	h.scrollY = next
	h.Emit(starfield.Event{Type: starfield.EventScroll, ScrollY: next})
}
