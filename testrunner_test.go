package gesture

import (
	"errors"
	"testing"
)

func TestLoadTestScript(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr error
	}{
		{"yaml", "steps:\n  - {action: click, x: 1, y: 2}\n  - {action: wait, frames: 2}\n", nil},
		{"json", `{"steps":[{"action":"drag","fromX":0,"fromY":0,"toX":5,"toY":5,"frames":3}]}`, nil},
		{"no steps", "steps: []\n", ErrInvalidScript},
		{"unknown action", "steps:\n  - {action: hover, x: 1, y: 2}\n", ErrInvalidScript},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := LoadTestScript([]byte(tt.data))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadTestScript: %v", err)
			}
			if r.Done() {
				t.Error("fresh runner should not be done")
			}
		})
	}
}

func TestLoadTestScript_Malformed(t *testing.T) {
	if _, err := LoadTestScript([]byte("steps: [")); err == nil {
		t.Error("expected parse error")
	}
}

func TestTestRunner_ClickThenDrag(t *testing.T) {
	script := `
steps:
  - {action: click, x: 5, y: 5}
  - {action: drag, fromX: 0, fromY: 0, toX: 50, toY: 0, frames: 4}
`
	r, err := LoadTestScript([]byte(script))
	if err != nil {
		t.Fatalf("LoadTestScript: %v", err)
	}
	in := NewInjector()
	rec := newTestRecognizer(t, Config{DragThreshold: 10})
	log := record(rec)

	frames, err := r.Run(NewDriver(in, rec), in, 100)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	// click: 2 frames, drag: 4 frames.
	if frames != 6 {
		t.Errorf("frames = %d, want 6", frames)
	}
	assertTypes(t, *log,
		EventPointerDown, EventPress, EventPointerUp,
		EventPointerDown, EventDragStart, EventDrag, EventDragEnd, EventPointerUp)
	if !r.Done() {
		t.Error("runner should be done")
	}
}

func TestTestRunner_Wait(t *testing.T) {
	script := `
steps:
  - {action: press, x: 0, y: 0}
  - {action: wait, frames: 3}
  - {action: release, x: 0, y: 0}
`
	r, err := LoadTestScript([]byte(script))
	if err != nil {
		t.Fatalf("LoadTestScript: %v", err)
	}
	in := NewInjector()
	rec := newTestRecognizer(t, DefaultConfig())
	log := record(rec)

	frames, err := r.Run(NewDriver(in, rec), in, 100)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	// press, three idle frames, release.
	if frames != 5 {
		t.Errorf("frames = %d, want 5", frames)
	}
	assertTypes(t, *log, EventPointerDown, EventPress, EventPointerUp)
}

func TestTestRunner_MaxFrames(t *testing.T) {
	r, err := LoadTestScript([]byte("steps:\n  - {action: wait, frames: 100}\n"))
	if err != nil {
		t.Fatalf("LoadTestScript: %v", err)
	}
	in := NewInjector()
	rec := newTestRecognizer(t, DefaultConfig())

	frames, err := r.Run(NewDriver(in, rec), in, 10)
	if err == nil {
		t.Fatal("expected error when script outlives maxFrames")
	}
	if frames != 10 {
		t.Errorf("frames = %d, want 10", frames)
	}
}
