package starfield

// FrameID identifies a pending frame request.
type FrameID uint64

// Scheduler is the per-frame scheduling primitive a host provides, in the
// shape of requestAnimationFrame / cancelAnimationFrame.
type Scheduler interface {
	// RequestFrame schedules fn to run once on the next display frame.
	RequestFrame(fn func()) FrameID
	// CancelFrame drops a pending request. Unknown or already-run IDs are ignored.
	CancelFrame(id FrameID)
}

type frameRequest struct {
	id FrameID
	fn func()
}

// FrameQueue is a Scheduler driven by explicit RunFrame calls. Hosts call
// RunFrame once per display frame: from ebiten's Update, from a ticker, or by
// hand in tests. Callbacks requested while a frame runs are deferred to the
// next frame, so a self-rescheduling loop advances exactly once per frame.
type FrameQueue struct {
	pending []frameRequest
	running []frameRequest
	nextID  FrameID
	frames  uint64
}

// RequestFrame schedules fn for the next RunFrame.
func (q *FrameQueue) RequestFrame(fn func()) FrameID {
	q.nextID++
	q.pending = append(q.pending, frameRequest{id: q.nextID, fn: fn})
	return q.nextID
}

// CancelFrame removes a pending request. If the request belongs to the frame
// currently running and has not been called yet, it is skipped.
func (q *FrameQueue) CancelFrame(id FrameID) {
	for i := range q.pending {
		if q.pending[i].id == id {
			copy(q.pending[i:], q.pending[i+1:])
			q.pending[len(q.pending)-1] = frameRequest{}
			q.pending = q.pending[:len(q.pending)-1]
			return
		}
	}
	for i := range q.running {
		if q.running[i].id == id {
			q.running[i].fn = nil
			return
		}
	}
}

// RunFrame runs every callback that was pending when it was called and
// returns how many ran.
func (q *FrameQueue) RunFrame() int {
	q.frames++
	q.pending, q.running = q.running[:0], q.pending
	ran := 0
	for i := 0; i < len(q.running); i++ {
		fn := q.running[i].fn
		if fn == nil {
			continue
		}
		q.running[i].fn = nil
		fn()
		ran++
	}
	q.running = q.running[:0]
	return ran
}

// Pending returns the number of callbacks waiting for the next frame.
func (q *FrameQueue) Pending() int {
	return len(q.pending)
}

// Frames returns how many times RunFrame has been called.
func (q *FrameQueue) Frames() uint64 {
	return q.frames
}
