package gesture

// MotionState is the motion history of one pointer span. The Recognizer owns
// the only mutable copy; listeners and callers receive value snapshots.
type MotionState struct {
	// Active is true between an accepted start sample and its end sample.
	Active bool
	// DragTriggered is true once the span has crossed the drag threshold.
	// It is never true while Active is false.
	DragTriggered bool

	// Down is the position at activation, fixed for the life of the span.
	Down Vec2
	// Current is the most recent accepted position.
	Current Vec2
	// Previous is the position immediately before Current.
	Previous Vec2
}

// CurrentDelta returns the displacement of the latest sample.
func (m MotionState) CurrentDelta() Vec2 {
	return m.Current.Sub(m.Previous)
}

// TotalDelta returns the displacement from the down position.
func (m MotionState) TotalDelta() Vec2 {
	return m.Current.Sub(m.Down)
}

// start begins a fresh span at pos.
func (m *MotionState) start(pos Vec2) {
	m.Active = true
	m.DragTriggered = false
	m.Down = pos
	m.Current = pos
	m.Previous = pos
}

// advance records pos as the newest position.
func (m *MotionState) advance(pos Vec2) {
	m.Previous = m.Current
	m.Current = pos
}

// stop ends the span. Positions are left in place so the last span can still
// be inspected.
func (m *MotionState) stop() {
	m.Active = false
	m.DragTriggered = false
}
