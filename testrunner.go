package gesture

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrInvalidScript is returned by LoadTestScript for malformed scripts.
var ErrInvalidScript = errors.New("gesture: invalid test script")

// testStep represents a single action in a test script.
type testStep struct {
	Action string  `yaml:"action"`
	X      float64 `yaml:"x,omitempty"`
	Y      float64 `yaml:"y,omitempty"`
	FromX  float64 `yaml:"fromX,omitempty"`
	FromY  float64 `yaml:"fromY,omitempty"`
	ToX    float64 `yaml:"toX,omitempty"`
	ToY    float64 `yaml:"toY,omitempty"`
	Frames int     `yaml:"frames,omitempty"`
}

// testScript is the top-level structure for a test script.
type testScript struct {
	Steps []testStep `yaml:"steps"`
}

var knownActions = map[string]bool{
	"press": true, "move": true, "release": true,
	"click": true, "drag": true, "wait": true,
}

// TestRunner sequences injected samples across frames for scripted input
// tests. Scripts are YAML (or JSON, which YAML accepts):
//
//	steps:
//	  - {action: press, x: 0, y: 0}
//	  - {action: move, x: 10, y: 0}
//	  - {action: wait, frames: 3}
//	  - {action: release, x: 10, y: 0}
//	  - {action: drag, fromX: 0, fromY: 0, toX: 50, toY: 0, frames: 6}
//	  - {action: click, x: 5, y: 5}
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a test script and returns a TestRunner.
func LoadTestScript(data []byte) (*TestRunner, error) {
	var script testScript
	if err := yaml.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: %w: no steps", ErrInvalidScript)
	}
	for i, st := range script.Steps {
		if !knownActions[st.Action] {
			return nil, fmt.Errorf("parse test script: %w: step %d has unknown action %q", ErrInvalidScript, i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// Done reports whether all steps have been executed and their samples
// consumed.
func (r *TestRunner) Done() bool {
	return r.done
}

// Step advances the runner by one frame, queueing samples on in. Call it
// once per frame before the Driver polls in.
func (r *TestRunner) Step(in *Injector) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if in.Pending() > 0 {
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
	case "press":
		in.InjectPress(st.X, st.Y)
	case "move":
		in.InjectMove(st.X, st.Y)
	case "release":
		in.InjectRelease(st.X, st.Y)
	case "click":
		in.InjectClick(st.X, st.Y)
	case "drag":
		in.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}
}

// Run plays the whole script through d, one frame per Driver.Update, and
// returns the number of frames used. It stops with an error after maxFrames.
func (r *TestRunner) Run(d *Driver, in *Injector, maxFrames int) (int, error) {
	for frame := 0; frame < maxFrames; frame++ {
		r.Step(in)
		if r.done {
			return frame, nil
		}
		d.Update(in)
	}
	return maxFrames, fmt.Errorf("test script still running after %d frames", maxFrames)
}
