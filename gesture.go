package gesture

import "math"

// Vec2 is a 2D vector used for positions and deltas throughout the API.
type Vec2 struct {
	X, Y float64
}

// Add returns v+o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v-o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// EventType identifies a kind of gesture event.
type EventType uint8

const (
	EventPointerDown EventType = iota // fires on an accepted start sample
	EventPointerUp                    // fires on every end sample, after press/drag end
	EventPress                        // fires on release while still inside the drag threshold
	EventDragStart                    // fires on the first move past the drag threshold
	EventDrag                         // fires on later moves while dragging, and optionally every tick
	EventDragEnd                      // fires on release after dragging
)

var eventTypeNames = [...]string{
	EventPointerDown: "pointerDown",
	EventPointerUp:   "pointerUp",
	EventPress:       "press",
	EventDragStart:   "dragStart",
	EventDrag:        "drag",
	EventDragEnd:     "dragEnd",
}

func (e EventType) String() string {
	if int(e) < len(eventTypeNames) {
		return eventTypeNames[e]
	}
	return "unknown"
}

// State is the recognizer's position in the press/drag lifecycle.
type State uint8

const (
	StateIdle     State = iota // no active span
	StatePressing              // active, still inside the drag threshold
	StateDragging              // active, past the drag threshold
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePressing:
		return "pressing"
	case StateDragging:
		return "dragging"
	default:
		return "unknown"
	}
}

// Phase tags a raw sample as the start, continuation, or end of a span.
type Phase uint8

const (
	PhaseStart Phase = iota // pointer went down
	PhaseMove               // pointer moved
	PhaseEnd                // pointer released or cancelled
)

func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhaseMove:
		return "move"
	case PhaseEnd:
		return "end"
	default:
		return "unknown"
	}
}
