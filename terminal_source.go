package gesture

import "github.com/gdamore/tcell/v2"

// TerminalSource translates tcell events into raw pointer events. Positions
// are terminal cells. Enable mouse reporting on the screen before use
// (screen.EnableMouse()).
//
// Unlike EbitenSource, tcell pushes events, so call Translate for every
// event returned by PollEvent and hand the result to Driver.Dispatch.
type TerminalSource struct {
	// Buttons selects which mouse buttons drive the stream. Defaults to
	// tcell.Button1 (primary).
	Buttons tcell.ButtonMask
	// ActionKeys are keys bound to the pointer action. They report
	// keyboard-device start events, which the Driver rejects.
	ActionKeys []tcell.Key

	down    bool
	lastPos Vec2
	known   bool
}

// NewTerminalSource creates a TerminalSource driven by the primary button.
func NewTerminalSource() *TerminalSource {
	return &TerminalSource{Buttons: tcell.Button1}
}

// Translate converts ev into a raw event. The second result is false when
// ev carries no pointer transition (hover moves, unbound keys, resizes).
func (s *TerminalSource) Translate(ev tcell.Event) (RawEvent, bool) {
	switch ev := ev.(type) {
	case *tcell.EventMouse:
		x, y := ev.Position()
		pos := Vec2{float64(x), float64(y)}
		pressed := ev.Buttons()&s.Buttons != 0
		moved := !s.known || pos != s.lastPos
		s.lastPos = pos
		s.known = true

		mouse := Device{Kind: DeviceMouse}
		switch {
		case pressed && !s.down:
			s.down = true
			return RawEvent{Phase: PhaseStart, Device: mouse}, true
		case !pressed && s.down:
			s.down = false
			return RawEvent{Phase: PhaseEnd, Device: mouse}, true
		case pressed && moved:
			return RawEvent{Phase: PhaseMove, Device: mouse}, true
		}
	case *tcell.EventKey:
		for _, k := range s.ActionKeys {
			if ev.Key() == k {
				return RawEvent{Phase: PhaseStart, Device: Device{Kind: DeviceKeyboard, ID: int(k)}}, true
			}
		}
	}
	return RawEvent{}, false
}

// IsPointerLikeDevice implements SampleSource.
func (s *TerminalSource) IsPointerLikeDevice(d Device) bool {
	return d.Kind == DeviceMouse
}

// ReadPosition implements SampleSource. It reports the cell of the most
// recent mouse event.
func (s *TerminalSource) ReadPosition(d Device) (Vec2, error) {
	if d.Kind != DeviceMouse || !s.known {
		return Vec2{}, &UnsupportedDeviceError{Device: d}
	}
	return s.lastPos, nil
}
