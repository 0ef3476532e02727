package chartcore

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in a gesture script.
type scriptStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	// Pinch finger distances and direction in degrees.
	FromDist float64 `json:"fromDist,omitempty"`
	ToDist   float64 `json:"toDist,omitempty"`
	Angle    float64 `json:"angle,omitempty"`
	Frames   int     `json:"frames,omitempty"`
}

// gestureScript is the top-level JSON structure for a gesture script.
type gestureScript struct {
	Steps []scriptStep `json:"steps"`
}

// GestureRunner sequences injected input across frames so chart
// interactions can be replayed without a real pointer. Attach it to a
// recognizer with SetScriptRunner.
//
// Supported actions: "tap", "doubletap", "drag", "pinch", "wait" and
// "snapshot".
type GestureRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool

	snapshots []string
	// OnSnapshot is called for every "snapshot" step with its label.
	OnSnapshot func(label string)
}

// LoadGestureScript parses a JSON gesture script.
func LoadGestureScript(jsonData []byte) (*GestureRunner, error) {
	var script gestureScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse gesture script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse gesture script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "tap", "doubletap", "drag", "pinch", "wait", "snapshot":
		default:
			return nil, fmt.Errorf("parse gesture script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &GestureRunner{steps: script.Steps}, nil
}

// SetScriptRunner attaches a runner. It is stepped from Update before
// injected input is consumed. Pass nil to detach.
func (g *GestureRecognizer) SetScriptRunner(r *GestureRunner) {
	g.runner = r
}

// Done reports whether every step has been executed.
func (r *GestureRunner) Done() bool {
	return r.done
}

// Snapshots returns the labels of the snapshot steps executed so far.
func (r *GestureRunner) Snapshots() []string {
	return r.snapshots
}

// step advances the runner by one frame.
func (r *GestureRunner) step(g *GestureRecognizer) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if g.Pending() {
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
	case "snapshot":
		r.snapshots = append(r.snapshots, st.Label)
		if r.OnSnapshot != nil {
			r.OnSnapshot(st.Label)
		}
	case "tap":
		g.InjectClick(st.X, st.Y)
	case "doubletap":
		g.InjectClick(st.X, st.Y)
		g.InjectClick(st.X, st.Y)
	case "drag":
		g.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, max(st.Frames, 2))
	case "pinch":
		g.InjectPinch(st.X, st.Y, st.FromDist, st.ToDist, st.Angle, max(st.Frames, 3))
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && !g.Pending() {
		r.done = true
	}
}
