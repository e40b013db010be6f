package starfield

import (
	"encoding/json"
	"fmt"
)

// scriptStep is a single action in an input script.
type scriptStep struct {
	Action string  `json:"action"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	From   float64 `json:"from,omitempty"`
	To     float64 `json:"to,omitempty"`
	Width  int     `json:"width,omitempty"`
	Height int     `json:"height,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// script is the top-level JSON structure for an input script.
type script struct {
	Steps []scriptStep `json:"steps"`
}

var knownActions = map[string]bool{
	"move": true, "leave": true, "scroll": true, "scrollBy": true,
	"smoothScroll": true, "resize": true, "wait": true,
}

// ScriptRunner sequences window events across frames of a Headless host.
//
// Actions:
//
//	{"action": "move", "x": 10, "y": 20}
//	{"action": "leave"}
//	{"action": "scroll", "y": 400}             absolute page offset
//	{"action": "scrollBy", "y": -120}          relative page offset
//	{"action": "smoothScroll", "from": 0, "to": 900, "frames": 30}
//	{"action": "resize", "width": 1600, "height": 1200}
//	{"action": "wait", "frames": 60}
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON input script.
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var s script
	if err := json.Unmarshal(jsonData, &s); err != nil {
		return nil, fmt.Errorf("parse input script: %w", err)
	}
	if len(s.Steps) == 0 {
		return nil, fmt.Errorf("parse input script: no steps")
	}
	for i, st := range s.Steps {
		if !knownActions[st.Action] {
			return nil, fmt.Errorf("parse input script: step %d: unknown action %q", i, st.Action)
		}
		if st.Action == "resize" && (st.Width <= 0 || st.Height <= 0) {
			return nil, fmt.Errorf("parse input script: step %d: resize needs positive width and height", i)
		}
	}
	return &ScriptRunner{steps: s.Steps}, nil
}

// Done reports whether every step has been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// RunScript attaches runner to the host and advances frames until the
// script finishes, at most maxFrames. It returns the number of frames run.
func (h *Headless) RunScript(runner *ScriptRunner, maxFrames int) (int, error) {
	h.runner = runner
	defer func() { h.runner = nil }()

	frames := 0
	for !runner.Done() {
		if frames >= maxFrames {
			return frames, fmt.Errorf("input script not finished after %d frames", maxFrames)
		}
		h.step()
		frames++
	}
	return frames, nil
}

// step advances the runner by one frame. Called from Headless.step.
func (r *ScriptRunner) step(h *Headless) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(h.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
	} else if r.cursor < len(r.steps) {
		r.exec(h, r.steps[r.cursor])
		r.cursor++
	}
	r.done = r.cursor >= len(r.steps) && r.waitCount == 0 && len(h.injectQueue) == 0
}

func (r *ScriptRunner) exec(h *Headless, st scriptStep) {
	switch st.Action {
	case "move":
		h.MovePointer(st.X, st.Y)
	case "leave":
		h.LeavePointer()
	case "scroll":
		h.ScrollTo(st.Y)
	case "scrollBy":
		h.ScrollBy(st.Y)
	case "smoothScroll":
		h.InjectScroll(st.From, st.To, st.Frames)
	case "resize":
		h.Resize(st.Width, st.Height)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}
}
