package gesture

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
)

// ErrInvalidConfig is returned for configuration values outside their domain.
var ErrInvalidConfig = errors.New("gesture: invalid config")

// Config holds the recognizer's tunables.
type Config struct {
	// DragThreshold is the distance from the down position a span must
	// strictly exceed to become a drag. Zero means any movement drags.
	DragThreshold float64 `toml:"drag_threshold"`
	// ContinuousDragOnTick re-emits drag from OnTick while dragging, so drag
	// feedback keeps flowing when the device reports no intermediate moves.
	ContinuousDragOnTick bool `toml:"continuous_drag_on_tick"`
	// DedupeTickDrag skips the OnTick re-emission when a move sample already
	// produced a drag event since the previous tick.
	DedupeTickDrag bool `toml:"dedupe_tick_drag"`
}

// DefaultConfig returns the default configuration: zero threshold and
// continuous drag on tick.
func DefaultConfig() Config {
	return Config{
		DragThreshold:        0,
		ContinuousDragOnTick: true,
	}
}

// Validate reports whether c can be used to build a Recognizer.
func (c Config) Validate() error {
	if math.IsNaN(c.DragThreshold) || c.DragThreshold < 0 {
		return fmt.Errorf("%w: drag threshold %v must be a non-negative number", ErrInvalidConfig, c.DragThreshold)
	}
	return nil
}

// Recognizer turns phase-tagged pointer samples from a single pointer stream
// into press and drag gestures. It is not safe for concurrent use; drive it
// from the goroutine running the host's update loop, and create one
// Recognizer per pointer stream.
type Recognizer struct {
	cfg    Config
	state  State
	motion MotionState

	handlers handlerRegistry
	sink     EventSink
	logger   *slog.Logger

	// dragSinceTick is set when a move sample emitted dragStart or drag and
	// cleared by OnTick. Only consulted when cfg.DedupeTickDrag is set.
	dragSinceTick bool
}

// NewRecognizer creates an idle Recognizer.
func NewRecognizer(cfg Config) (*Recognizer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Recognizer{cfg: cfg}, nil
}

// Config returns the recognizer's current configuration.
func (r *Recognizer) Config() Config {
	return r.cfg
}

// SetDragThreshold sets the drag threshold. Negative or NaN values are
// treated as zero. The new value applies to the next threshold check.
func (r *Recognizer) SetDragThreshold(d float64) {
	if math.IsNaN(d) || d < 0 {
		d = 0
	}
	r.cfg.DragThreshold = d
}

// SetContinuousDragOnTick toggles drag re-emission from OnTick.
func (r *Recognizer) SetContinuousDragOnTick(enabled bool) {
	r.cfg.ContinuousDragOnTick = enabled
}

// SetLogger sets the logger used for per-transition debug output.
// A nil logger disables it.
func (r *Recognizer) SetLogger(l *slog.Logger) {
	r.logger = l
}

// State returns the current lifecycle state.
func (r *Recognizer) State() State {
	return r.state
}

// Motion returns a snapshot of the current motion state.
func (r *Recognizer) Motion() MotionState {
	return r.motion
}

// OnSampleStart begins a span at pos. Calls made while a span is already
// active are ignored.
func (r *Recognizer) OnSampleStart(pos Vec2) {
	if r.state != StateIdle {
		r.debug("duplicate start ignored", pos)
		return
	}
	r.motion.start(pos)
	r.state = StatePressing
	r.dragSinceTick = false
	r.debug("pointer down", pos)
	r.firePointer(EventPointerDown, pos)
}

// OnSampleMove records a move to pos. It is a no-op while idle.
func (r *Recognizer) OnSampleMove(pos Vec2) {
	if r.state == StateIdle {
		return
	}
	r.motion.advance(pos)

	switch r.state {
	case StatePressing:
		total := r.motion.TotalDelta().Len()
		if total <= r.cfg.DragThreshold {
			return
		}
		r.state = StateDragging
		r.motion.DragTriggered = true
		r.dragSinceTick = true
		ctx := r.dragContext(false)
		r.debug("drag start", pos, slog.Float64("total", total))
		r.fireDrag(EventDragStart, ctx)
	case StateDragging:
		r.dragSinceTick = true
		r.fireDrag(EventDrag, r.dragContext(false))
	}
}

// OnSampleEnd closes the span at pos, emitting dragEnd or press followed by
// pointerUp. It is a no-op while idle.
func (r *Recognizer) OnSampleEnd(pos Vec2) {
	if r.state == StateIdle {
		return
	}
	r.motion.advance(pos)

	if r.state == StateDragging {
		r.debug("drag end", pos)
		r.fireDrag(EventDragEnd, r.dragContext(false))
	} else {
		r.debug("press", pos)
		r.firePointer(EventPress, pos)
	}
	r.firePointer(EventPointerUp, pos)
	r.finish()
}

// OnTick re-emits drag from the stored motion state when continuous drag is
// enabled and a drag is in progress. Call it once per update.
func (r *Recognizer) OnTick() {
	dedupe := r.cfg.DedupeTickDrag && r.dragSinceTick
	r.dragSinceTick = false
	if !r.cfg.ContinuousDragOnTick || r.state != StateDragging || dedupe {
		return
	}
	r.fireDrag(EventDrag, r.dragContext(true))
}

// Reset abandons the active span, if any, without emitting events.
func (r *Recognizer) Reset() {
	if r.state == StateIdle {
		return
	}
	r.debug("span reset", r.motion.Current)
	r.finish()
}

func (r *Recognizer) finish() {
	r.motion.stop()
	r.state = StateIdle
	r.dragSinceTick = false
}

func (r *Recognizer) dragContext(repeat bool) DragContext {
	m := &r.motion
	return DragContext{
		Position:      m.Current,
		Previous:      m.Previous,
		Start:         m.Down,
		Delta:         m.CurrentDelta(),
		TotalDistance: m.TotalDelta().Len(),
		Repeat:        repeat,
	}
}

func (r *Recognizer) debug(msg string, pos Vec2, attrs ...slog.Attr) {
	if r.logger == nil {
		return
	}
	args := make([]any, 0, 3+len(attrs))
	args = append(args, slog.Float64("x", pos.X), slog.Float64("y", pos.Y), slog.String("state", r.state.String()))
	for _, a := range attrs {
		args = append(args, a)
	}
	r.logger.Debug(msg, args...)
}
