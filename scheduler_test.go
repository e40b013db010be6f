package starfield

import "testing"

func TestFrameQueueRunsOnce(t *testing.T) {
	var q FrameQueue
	calls := 0
	q.RequestFrame(func() { calls++ })
	if q.Pending() != 1 {
		t.Fatalf("Pending = %d, want 1", q.Pending())
	}

	if ran := q.RunFrame(); ran != 1 {
		t.Errorf("RunFrame = %d, want 1", ran)
	}
	q.RunFrame()
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
	if q.Frames() != 2 {
		t.Errorf("Frames = %d, want 2", q.Frames())
	}
}

func TestFrameQueueRequestDuringFrameDefers(t *testing.T) {
	var q FrameQueue
	calls := 0
	var loop func()
	loop = func() {
		calls++
		q.RequestFrame(loop)
	}
	q.RequestFrame(loop)

	for i := 1; i <= 5; i++ {
		q.RunFrame()
		if calls != i {
			t.Fatalf("after frame %d calls = %d, want %d", i, calls, i)
		}
	}
}

func TestFrameQueueCancelPending(t *testing.T) {
	var q FrameQueue
	a, b := 0, 0
	id := q.RequestFrame(func() { a++ })
	q.RequestFrame(func() { b++ })

	q.CancelFrame(id)
	q.CancelFrame(id)   // already gone
	q.CancelFrame(9999) // unknown
	q.RunFrame()

	if a != 0 || b != 1 {
		t.Errorf("a=%d b=%d, want 0 and 1", a, b)
	}
}

func TestFrameQueueCancelWithinFrame(t *testing.T) {
	var q FrameQueue
	ran := false
	var second FrameID
	q.RequestFrame(func() { q.CancelFrame(second) })
	second = q.RequestFrame(func() { ran = true })

	if n := q.RunFrame(); n != 1 {
		t.Errorf("RunFrame = %d, want 1", n)
	}
	if ran {
		t.Error("callback cancelled earlier in the same frame still ran")
	}
}

func TestFrameQueueIDsUnique(t *testing.T) {
	var q FrameQueue
	seen := map[FrameID]bool{}
	for range 100 {
		id := q.RequestFrame(func() {})
		if seen[id] {
			t.Fatalf("duplicate id %d", id)
		}
		seen[id] = true
		q.RunFrame()
	}
}
