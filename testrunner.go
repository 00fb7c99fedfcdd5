package ratingbar

import (
	"encoding/json"
	"fmt"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
	Widget int     `json:"widget,omitempty"`
	Rating float64 `json:"rating,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

var knownActions = map[string]bool{
	"screenshot": true,
	"click":      true,
	"drag":       true,
	"wait":       true,
	"set":        true,
	"rate":       true,
}

// TestRunner sequences injected input, external rating writes, and
// screenshots across frames for automated visual testing. Attach it to a
// Host via SetTestRunner. "set" writes the widget's binding directly, while
// "rate" taps the widget where the rating would be shown.
//
// Script actions:
//
//	{"action": "click", "x": 100, "y": 40}
//	{"action": "drag", "fromX": 10, "fromY": 40, "toX": 200, "toY": 40, "frames": 10}
//	{"action": "set", "widget": 0, "rating": 3.5}
//	{"action": "rate", "widget": 0, "rating": 2}
//	{"action": "wait", "frames": 30}
//	{"action": "screenshot", "label": "after-drag"}
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a JSON test script and returns a TestRunner ready
// to be attached to a Host via SetTestRunner.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		if !knownActions[st.Action] {
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a TestRunner to the host. The runner advances one
// step per frame from Host.Update, before input is processed.
func (h *Host) SetTestRunner(runner *TestRunner) {
	h.testRunner = runner
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the test runner by one frame.
func (r *TestRunner) step(h *Host) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(h.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "screenshot":
		h.Screenshot(st.Label)
	case "click":
		h.InjectClick(st.X, st.Y)
	case "drag":
		frames := st.Frames
		if frames < 2 {
			frames = 2
		}
		h.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, frames)
	case "set", "rate":
		if st.Widget < 0 || st.Widget >= len(h.widgets) {
			if h.debug {
				debugf("test script: %s: no widget %d", st.Action, st.Widget)
			}
			break
		}
		w := h.widgets[st.Widget]
		if st.Action == "set" {
			w.Bar.Binding().Set(st.Rating)
		} else {
			h.InjectRating(w, st.Rating)
		}
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(h.injectQueue) == 0 {
		r.done = true
	}
}
