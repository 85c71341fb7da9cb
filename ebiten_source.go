package gesture

import "github.com/hajimehoshi/ebiten/v2"

// ebitenInput is the slice of the ebiten input API the source polls.
type ebitenInput interface {
	CursorPosition() (int, int)
	IsMouseButtonPressed(ebiten.MouseButton) bool
	AppendTouchIDs([]ebiten.TouchID) []ebiten.TouchID
	TouchPosition(ebiten.TouchID) (int, int)
	IsKeyPressed(ebiten.Key) bool
}

type ebitenPlatform struct{}

func (ebitenPlatform) CursorPosition() (int, int) { return ebiten.CursorPosition() }
func (ebitenPlatform) IsMouseButtonPressed(b ebiten.MouseButton) bool {
	return ebiten.IsMouseButtonPressed(b)
}
func (ebitenPlatform) AppendTouchIDs(ids []ebiten.TouchID) []ebiten.TouchID {
	return ebiten.AppendTouchIDs(ids)
}
func (ebitenPlatform) TouchPosition(id ebiten.TouchID) (int, int) { return ebiten.TouchPosition(id) }
func (ebitenPlatform) IsKeyPressed(k ebiten.Key) bool            { return ebiten.IsKeyPressed(k) }

// EbitenSource polls Ebitengine's mouse, touch and keyboard state and
// reports one pointer stream. The first device to go down owns the stream
// until it is released; other devices are ignored meanwhile.
//
// Poll must be called from ebiten.Game.Update.
type EbitenSource struct {
	// Button is the mouse button that drives the stream. Defaults to left.
	Button ebiten.MouseButton
	// ActionKeys are keys bound to the pointer action. They report
	// keyboard-device events, which cannot yield a position and are
	// rejected by the Driver.
	ActionKeys []ebiten.Key

	in ebitenInput

	owner   Device
	owned   bool
	lastPos Vec2

	mouseDown bool
	touchIDs  []ebiten.TouchID
	touchPos  map[ebiten.TouchID]Vec2
	keysDown  []bool
}

// NewEbitenSource creates a source backed by the live ebiten input state.
func NewEbitenSource() *EbitenSource {
	return newEbitenSource(ebitenPlatform{})
}

func newEbitenSource(in ebitenInput) *EbitenSource {
	return &EbitenSource{
		Button:   ebiten.MouseButtonLeft,
		in:       in,
		touchPos: make(map[ebiten.TouchID]Vec2),
	}
}

// IsPointerLikeDevice implements SampleSource.
func (s *EbitenSource) IsPointerLikeDevice(d Device) bool {
	return d.Kind == DeviceMouse || d.Kind == DeviceTouch
}

// ReadPosition implements SampleSource. A touch that owned the stream keeps
// reporting its last known position after release.
func (s *EbitenSource) ReadPosition(d Device) (Vec2, error) {
	switch d.Kind {
	case DeviceMouse:
		x, y := s.in.CursorPosition()
		return Vec2{float64(x), float64(y)}, nil
	case DeviceTouch:
		if p, ok := s.touchPos[ebiten.TouchID(d.ID)]; ok {
			return p, nil
		}
		if s.owner == d {
			return s.lastPos, nil
		}
	}
	return Vec2{}, &UnsupportedDeviceError{Device: d}
}

// Poll implements Poller.
func (s *EbitenSource) Poll(buf []RawEvent) []RawEvent {
	buf = s.pollKeys(buf)
	buf = s.pollMouse(buf)
	buf = s.pollTouches(buf)
	return buf
}

func (s *EbitenSource) pollMouse(buf []RawEvent) []RawEvent {
	mouse := Device{Kind: DeviceMouse}
	x, y := s.in.CursorPosition()
	pos := Vec2{float64(x), float64(y)}
	pressed := s.in.IsMouseButtonPressed(s.Button)

	switch {
	case pressed && !s.mouseDown:
		s.mouseDown = true
		if !s.owned {
			s.claim(mouse, pos)
			buf = append(buf, RawEvent{Phase: PhaseStart, Device: mouse})
		}
	case !pressed && s.mouseDown:
		s.mouseDown = false
		if s.owned && s.owner == mouse {
			s.owned = false
			s.lastPos = pos
			buf = append(buf, RawEvent{Phase: PhaseEnd, Device: mouse})
		}
	case pressed && s.owned && s.owner == mouse && pos != s.lastPos:
		s.lastPos = pos
		buf = append(buf, RawEvent{Phase: PhaseMove, Device: mouse})
	}
	return buf
}

func (s *EbitenSource) pollTouches(buf []RawEvent) []RawEvent {
	prev := s.touchIDs
	s.touchIDs = s.in.AppendTouchIDs(nil)

	for _, tid := range s.touchIDs {
		tx, ty := s.in.TouchPosition(tid)
		pos := Vec2{float64(tx), float64(ty)}
		dev := Device{Kind: DeviceTouch, ID: int(tid)}
		old, seen := s.touchPos[tid]
		s.touchPos[tid] = pos

		switch {
		case !seen && !s.owned:
			s.claim(dev, pos)
			buf = append(buf, RawEvent{Phase: PhaseStart, Device: dev})
		case seen && s.owned && s.owner == dev && pos != old:
			s.lastPos = pos
			buf = append(buf, RawEvent{Phase: PhaseMove, Device: dev})
		}
	}

	// Release touches that disappeared this frame.
	for _, tid := range prev {
		if containsTouch(s.touchIDs, tid) {
			continue
		}
		dev := Device{Kind: DeviceTouch, ID: int(tid)}
		if s.owned && s.owner == dev {
			s.owned = false
			s.lastPos = s.touchPos[tid]
			buf = append(buf, RawEvent{Phase: PhaseEnd, Device: dev})
		}
		delete(s.touchPos, tid)
	}
	return buf
}

func (s *EbitenSource) pollKeys(buf []RawEvent) []RawEvent {
	for len(s.keysDown) < len(s.ActionKeys) {
		s.keysDown = append(s.keysDown, false)
	}
	for i, k := range s.ActionKeys {
		dev := Device{Kind: DeviceKeyboard, ID: int(k)}
		pressed := s.in.IsKeyPressed(k)
		if pressed && !s.keysDown[i] {
			buf = append(buf, RawEvent{Phase: PhaseStart, Device: dev})
		} else if !pressed && s.keysDown[i] {
			buf = append(buf, RawEvent{Phase: PhaseEnd, Device: dev})
		}
		s.keysDown[i] = pressed
	}
	return buf
}

func (s *EbitenSource) claim(d Device, pos Vec2) {
	s.owner = d
	s.owned = true
	s.lastPos = pos
}

func containsTouch(ids []ebiten.TouchID, id ebiten.TouchID) bool {
	for _, t := range ids {
		if t == id {
			return true
		}
	}
	return false
}
