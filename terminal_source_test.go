package gesture

import (
	"errors"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestTerminalSource_Translate(t *testing.T) {
	src := NewTerminalSource()

	steps := []struct {
		name  string
		ev    tcell.Event
		ok    bool
		phase Phase
	}{
		{"hover", tcell.NewEventMouse(1, 1, tcell.ButtonNone, tcell.ModNone), false, 0},
		{"press", tcell.NewEventMouse(2, 3, tcell.Button1, tcell.ModNone), true, PhaseStart},
		{"held in place", tcell.NewEventMouse(2, 3, tcell.Button1, tcell.ModNone), false, 0},
		{"drag", tcell.NewEventMouse(6, 3, tcell.Button1, tcell.ModNone), true, PhaseMove},
		{"secondary button only", tcell.NewEventMouse(6, 3, tcell.Button2, tcell.ModNone), true, PhaseEnd},
		{"resize", tcell.NewEventResize(80, 24), false, 0},
	}
	for _, st := range steps {
		ev, ok := src.Translate(st.ev)
		if ok != st.ok {
			t.Fatalf("%s: ok = %v, want %v", st.name, ok, st.ok)
		}
		if ok && ev.Phase != st.phase {
			t.Fatalf("%s: phase = %v, want %v", st.name, ev.Phase, st.phase)
		}
		if ok && ev.Device.Kind != DeviceMouse {
			t.Fatalf("%s: device = %v, want mouse", st.name, ev.Device)
		}
	}

	pos, err := src.ReadPosition(Device{Kind: DeviceMouse})
	if err != nil || pos != (Vec2{6, 3}) {
		t.Errorf("ReadPosition = %v, %v", pos, err)
	}
}

func TestTerminalSource_ReadBeforeAnyMouseEvent(t *testing.T) {
	src := NewTerminalSource()
	_, err := src.ReadPosition(Device{Kind: DeviceMouse})
	if !errors.Is(err, ErrUnsupportedDevice) {
		t.Errorf("err = %v, want ErrUnsupportedDevice", err)
	}
}

func TestTerminalSource_ActionKeyDropped(t *testing.T) {
	src := NewTerminalSource()
	src.ActionKeys = []tcell.Key{tcell.KeyEnter}
	rec := newTestRecognizer(t, DefaultConfig())
	log := record(rec)
	drv := NewDriver(src, rec)

	if _, ok := src.Translate(tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone)); ok {
		t.Error("unbound key should not translate")
	}

	ev, ok := src.Translate(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	if !ok || ev.Device.Kind != DeviceKeyboard {
		t.Fatalf("bound key = %+v, %v", ev, ok)
	}
	if err := drv.Dispatch(ev); !errors.Is(err, ErrUnsupportedDevice) {
		t.Errorf("Dispatch err = %v, want ErrUnsupportedDevice", err)
	}
	if len(*log) != 0 {
		t.Errorf("keyboard event reached the recognizer: %v", eventTypes(*log))
	}
}

func TestTerminalSource_DrivesRecognizer(t *testing.T) {
	src := NewTerminalSource()
	rec := newTestRecognizer(t, Config{DragThreshold: 2})
	log := record(rec)
	drv := NewDriver(src, rec)

	feed := func(ev tcell.Event) {
		if raw, ok := src.Translate(ev); ok {
			if err := drv.Dispatch(raw); err != nil {
				t.Fatalf("Dispatch: %v", err)
			}
		}
	}

	feed(tcell.NewEventMouse(10, 10, tcell.Button1, tcell.ModNone))
	feed(tcell.NewEventMouse(11, 10, tcell.Button1, tcell.ModNone))
	feed(tcell.NewEventMouse(11, 10, tcell.ButtonNone, tcell.ModNone))
	assertTypes(t, *log, EventPointerDown, EventPress, EventPointerUp)

	*log = nil
	feed(tcell.NewEventMouse(0, 0, tcell.Button1, tcell.ModNone))
	feed(tcell.NewEventMouse(5, 0, tcell.Button1, tcell.ModNone))
	feed(tcell.NewEventMouse(6, 0, tcell.Button1, tcell.ModNone))
	feed(tcell.NewEventMouse(6, 0, tcell.ButtonNone, tcell.ModNone))
	assertTypes(t, *log, EventPointerDown, EventDragStart, EventDrag, EventDragEnd, EventPointerUp)
}
