package gesture

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// syntheticSample is a single injected pointer sample.
type syntheticSample struct {
	phase Phase
	pos   Vec2
}

// Injector is a SampleSource and Poller fed by queued synthetic samples.
// Each Poll releases one sample, so a queued sequence plays back one
// sample per frame, the way a real device reports at most one transition
// per update.
type Injector struct {
	queue []syntheticSample
	cur   Vec2
}

// NewInjector creates an empty Injector.
func NewInjector() *Injector {
	return &Injector{}
}

// Pending returns the number of queued samples.
func (in *Injector) Pending() int {
	return len(in.queue)
}

// InjectPress queues a start sample at (x, y).
func (in *Injector) InjectPress(x, y float64) {
	in.queue = append(in.queue, syntheticSample{phase: PhaseStart, pos: Vec2{x, y}})
}

// InjectMove queues a move sample at (x, y). Use this between InjectPress
// and InjectRelease to simulate a drag.
func (in *Injector) InjectMove(x, y float64) {
	in.queue = append(in.queue, syntheticSample{phase: PhaseMove, pos: Vec2{x, y}})
}

// InjectRelease queues an end sample at (x, y).
func (in *Injector) InjectRelease(x, y float64) {
	in.queue = append(in.queue, syntheticSample{phase: PhaseEnd, pos: Vec2{x, y}})
}

// InjectClick queues a press followed by a release at the same position.
// Consumes two frames.
func (in *Injector) InjectClick(x, y float64) {
	in.InjectPress(x, y)
	in.InjectRelease(x, y)
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY),
// linearly interpolated moves over frames-2 intermediate frames, and
// release at (toX, toY). The total sequence consumes `frames` frames.
// Minimum frames is 2 (press + release).
func (in *Injector) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	in.InjectDragEased(fromX, fromY, toX, toY, frames, ease.Linear)
}

// InjectDragEased is InjectDrag with the intermediate moves spaced by the
// given easing function.
func (in *Injector) InjectDragEased(fromX, fromY, toX, toY float64, frames int, fn ease.TweenFunc) {
	if frames < 2 {
		frames = 2
	}
	in.InjectPress(fromX, fromY)
	steps := frames - 2
	duration := float32(steps + 1)
	tx := gween.New(float32(fromX), float32(toX), duration, fn)
	ty := gween.New(float32(fromY), float32(toY), duration, fn)
	for i := 0; i < steps; i++ {
		x, _ := tx.Update(1)
		y, _ := ty.Update(1)
		in.InjectMove(float64(x), float64(y))
	}
	in.InjectRelease(toX, toY)
}

// IsPointerLikeDevice implements SampleSource. Only the synthetic device is
// accepted.
func (in *Injector) IsPointerLikeDevice(d Device) bool {
	return d.Kind == DeviceSynthetic
}

// ReadPosition implements SampleSource.
func (in *Injector) ReadPosition(d Device) (Vec2, error) {
	if d.Kind != DeviceSynthetic {
		return Vec2{}, &UnsupportedDeviceError{Device: d}
	}
	return in.cur, nil
}

// Poll implements Poller. It pops at most one queued sample.
func (in *Injector) Poll(buf []RawEvent) []RawEvent {
	if len(in.queue) == 0 {
		return buf
	}
	s := in.queue[0]
	copy(in.queue, in.queue[1:])
	in.queue = in.queue[:len(in.queue)-1]

	in.cur = s.pos
	return append(buf, RawEvent{Phase: s.phase, Device: Device{Kind: DeviceSynthetic}})
}
