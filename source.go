package gesture

import (
	"errors"
	"fmt"
	"log/slog"
)

// DeviceKind classifies an input device.
type DeviceKind uint8

const (
	DeviceMouse     DeviceKind = iota // system mouse or trackpad
	DeviceTouch                       // one finger on a touch screen
	DevicePen                         // stylus
	DeviceSynthetic                   // injected samples (tests, scripted input)
	DeviceKeyboard                    // key bound to a pointer action; has no position
	DeviceGamepad                     // gamepad button bound to a pointer action; has no position
)

func (k DeviceKind) String() string {
	switch k {
	case DeviceMouse:
		return "mouse"
	case DeviceTouch:
		return "touch"
	case DevicePen:
		return "pen"
	case DeviceSynthetic:
		return "synthetic"
	case DeviceKeyboard:
		return "keyboard"
	case DeviceGamepad:
		return "gamepad"
	default:
		return "unknown"
	}
}

// Device is a handle to the device that produced a raw event.
type Device struct {
	Kind DeviceKind
	// ID distinguishes devices of the same kind, e.g. the platform touch ID.
	ID int
}

// PointerLike reports whether devices of this kind can yield a position.
func (d Device) PointerLike() bool {
	switch d.Kind {
	case DeviceMouse, DeviceTouch, DevicePen, DeviceSynthetic:
		return true
	}
	return false
}

func (d Device) String() string {
	return fmt.Sprintf("%s#%d", d.Kind, d.ID)
}

// ErrUnsupportedDevice matches every *UnsupportedDeviceError via errors.Is.
var ErrUnsupportedDevice = errors.New("gesture: unsupported device")

// UnsupportedDeviceError is returned when a device cannot yield a position.
type UnsupportedDeviceError struct {
	Device Device
}

func (e *UnsupportedDeviceError) Error() string {
	return fmt.Sprintf("gesture: cannot read a position from %s device %d; check that the control device is a pointer",
		e.Device.Kind, e.Device.ID)
}

func (e *UnsupportedDeviceError) Unwrap() error {
	return ErrUnsupportedDevice
}

// SampleSource resolves raw events to positions.
type SampleSource interface {
	// IsPointerLikeDevice reports whether d can yield a position.
	IsPointerLikeDevice(d Device) bool
	// ReadPosition returns the position of d, or an *UnsupportedDeviceError.
	ReadPosition(d Device) (Vec2, error)
}

// RawEvent is a phase transition reported by a device, before its position
// has been read.
type RawEvent struct {
	Phase  Phase
	Device Device
}

// Poller produces the raw events observed since the previous poll.
type Poller interface {
	// Poll appends this frame's events to buf and returns it.
	Poll(buf []RawEvent) []RawEvent
}

// Driver validates raw events against a SampleSource and forwards them to a
// Recognizer. Events that fail validation are dropped and reported; the
// Driver never retries them.
type Driver struct {
	source  SampleSource
	rec     *Recognizer
	logger  *slog.Logger
	onDrop  func(RawEvent, error)
	buf     []RawEvent
	dropped int
}

// NewDriver creates a Driver feeding rec from source.
func NewDriver(source SampleSource, rec *Recognizer) *Driver {
	return &Driver{source: source, rec: rec}
}

// Recognizer returns the recognizer this driver feeds.
func (d *Driver) Recognizer() *Recognizer {
	return d.rec
}

// SetLogger sets the logger that receives dropped-sample warnings.
// A nil logger disables them.
func (d *Driver) SetLogger(l *slog.Logger) {
	d.logger = l
}

// OnDrop sets a callback invoked for every dropped event, after logging.
func (d *Driver) OnDrop(fn func(RawEvent, error)) {
	d.onDrop = fn
}

// Dropped returns the number of events dropped so far.
func (d *Driver) Dropped() int {
	return d.dropped
}

// Dispatch validates ev, reads its position and forwards it to the
// recognizer. A failing event is dropped, reported, and its error returned.
// A failed end event from a pointer-like device still closes the active
// span, without emitting events.
func (d *Driver) Dispatch(ev RawEvent) error {
	pos, err := d.read(ev.Device)
	if err != nil {
		if ev.Phase == PhaseEnd && d.source.IsPointerLikeDevice(ev.Device) {
			d.rec.Reset()
		}
		d.drop(ev, err)
		return err
	}

	switch ev.Phase {
	case PhaseStart:
		d.rec.OnSampleStart(pos)
	case PhaseMove:
		d.rec.OnSampleMove(pos)
	case PhaseEnd:
		d.rec.OnSampleEnd(pos)
	}
	return nil
}

func (d *Driver) read(dev Device) (Vec2, error) {
	if !d.source.IsPointerLikeDevice(dev) {
		return Vec2{}, &UnsupportedDeviceError{Device: dev}
	}
	return d.source.ReadPosition(dev)
}

// Update runs one frame: it dispatches every event p reports, in order, and
// then calls OnTick on the recognizer.
func (d *Driver) Update(p Poller) {
	d.buf = p.Poll(d.buf[:0])
	for _, ev := range d.buf {
		_ = d.Dispatch(ev)
	}
	d.rec.OnTick()
}

func (d *Driver) drop(ev RawEvent, err error) {
	d.dropped++
	if d.logger != nil {
		d.logger.Warn("sample dropped",
			slog.String("phase", ev.Phase.String()),
			slog.String("device", ev.Device.String()),
			slog.Any("error", err))
	}
	if d.onDrop != nil {
		d.onDrop(ev, err)
	}
}
