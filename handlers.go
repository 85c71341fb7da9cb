package gesture

// PointerContext carries the payload of pointerDown, pointerUp and press.
type PointerContext struct {
	Position Vec2
}

// DragContext carries the payload of dragStart, drag and dragEnd.
type DragContext struct {
	// Position is the pointer position the event refers to.
	Position Vec2
	// Previous is the position before Position.
	Previous Vec2
	// Start is the position where the span began.
	Start Vec2
	// Delta is Position - Previous.
	Delta Vec2
	// TotalDistance is |Position - Start|.
	TotalDistance float64
	// Repeat is true when the event re-reports stored state from OnTick
	// rather than a new move sample.
	Repeat bool
}

// Event is the flat record forwarded to an EventSink.
type Event struct {
	Type          EventType
	Position      Vec2
	Previous      Vec2
	Start         Vec2
	Delta         Vec2
	TotalDistance float64
	Repeat        bool
}

// EventSink is the interface for optional ECS integration.
// When set on a Recognizer, every emitted event is forwarded after the
// registered callbacks have run.
type EventSink interface {
	EmitEvent(event Event)
}

// --- Handler registry ---

type handler[C any] struct {
	id uint32
	fn func(C)
}

type handlerRegistry struct {
	pointerDown []handler[PointerContext]
	pointerUp   []handler[PointerContext]
	press       []handler[PointerContext]
	dragStart   []handler[DragContext]
	drag        []handler[DragContext]
	dragEnd     []handler[DragContext]
	nextID      uint32
}

// CallbackHandle allows removing a registered callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this callback so it no longer fires. Calling Remove
// more than once, or on the zero handle, is a no-op. Removing from inside a
// callback takes effect from the next dispatch.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.event {
	case EventPointerDown:
		h.reg.pointerDown = removeHandler(h.reg.pointerDown, h.id)
	case EventPointerUp:
		h.reg.pointerUp = removeHandler(h.reg.pointerUp, h.id)
	case EventPress:
		h.reg.press = removeHandler(h.reg.press, h.id)
	case EventDragStart:
		h.reg.dragStart = removeHandler(h.reg.dragStart, h.id)
	case EventDrag:
		h.reg.drag = removeHandler(h.reg.drag, h.id)
	case EventDragEnd:
		h.reg.dragEnd = removeHandler(h.reg.dragEnd, h.id)
	}
}

// removeHandler returns s without the entry for id. The result never shares
// a backing array with s, so a dispatch loop ranging over s is unaffected.
func removeHandler[C any](s []handler[C], id uint32) []handler[C] {
	for i := range s {
		if s[i].id == id {
			out := make([]handler[C], 0, len(s)-1)
			out = append(out, s[:i]...)
			return append(out, s[i+1:]...)
		}
	}
	return s
}

func (r *handlerRegistry) add(event EventType) (uint32, CallbackHandle) {
	r.nextID++
	return r.nextID, CallbackHandle{id: r.nextID, reg: r, event: event}
}

func (r *handlerRegistry) count() int {
	return len(r.pointerDown) + len(r.pointerUp) + len(r.press) +
		len(r.dragStart) + len(r.drag) + len(r.dragEnd)
}

// --- Registration ---

// OnPointerDown registers a callback for accepted start samples.
func (r *Recognizer) OnPointerDown(fn func(PointerContext)) CallbackHandle {
	id, h := r.handlers.add(EventPointerDown)
	r.handlers.pointerDown = append(r.handlers.pointerDown, handler[PointerContext]{id: id, fn: fn})
	return h
}

// OnPointerUp registers a callback that fires once per span, after press or drag end.
func (r *Recognizer) OnPointerUp(fn func(PointerContext)) CallbackHandle {
	id, h := r.handlers.add(EventPointerUp)
	r.handlers.pointerUp = append(r.handlers.pointerUp, handler[PointerContext]{id: id, fn: fn})
	return h
}

// OnPress registers a callback for spans released inside the drag threshold.
func (r *Recognizer) OnPress(fn func(PointerContext)) CallbackHandle {
	id, h := r.handlers.add(EventPress)
	r.handlers.press = append(r.handlers.press, handler[PointerContext]{id: id, fn: fn})
	return h
}

// OnDragStart registers a callback for the first move past the drag threshold.
func (r *Recognizer) OnDragStart(fn func(DragContext)) CallbackHandle {
	id, h := r.handlers.add(EventDragStart)
	r.handlers.dragStart = append(r.handlers.dragStart, handler[DragContext]{id: id, fn: fn})
	return h
}

// OnDrag registers a callback for drag continuation. It fires on every move
// while dragging and, when ContinuousDragOnTick is set, on every OnTick.
func (r *Recognizer) OnDrag(fn func(DragContext)) CallbackHandle {
	id, h := r.handlers.add(EventDrag)
	r.handlers.drag = append(r.handlers.drag, handler[DragContext]{id: id, fn: fn})
	return h
}

// OnDragEnd registers a callback for release after dragging.
func (r *Recognizer) OnDragEnd(fn func(DragContext)) CallbackHandle {
	id, h := r.handlers.add(EventDragEnd)
	r.handlers.dragEnd = append(r.handlers.dragEnd, handler[DragContext]{id: id, fn: fn})
	return h
}

// HandlerCount returns the number of registered callbacks across all events.
func (r *Recognizer) HandlerCount() int {
	return r.handlers.count()
}

// SetEventSink sets the optional ECS bridge. Pass nil to detach it.
func (r *Recognizer) SetEventSink(sink EventSink) {
	r.sink = sink
}

// --- Event dispatch ---

func (r *Recognizer) firePointer(event EventType, pos Vec2) {
	ctx := PointerContext{Position: pos}
	var hs []handler[PointerContext]
	switch event {
	case EventPointerDown:
		hs = r.handlers.pointerDown
	case EventPointerUp:
		hs = r.handlers.pointerUp
	case EventPress:
		hs = r.handlers.press
	}
	for _, h := range hs {
		h.fn(ctx)
	}
	if r.sink != nil {
		r.sink.EmitEvent(Event{Type: event, Position: pos, Previous: r.motion.Previous, Start: r.motion.Down})
	}
}

func (r *Recognizer) fireDrag(event EventType, ctx DragContext) {
	var hs []handler[DragContext]
	switch event {
	case EventDragStart:
		hs = r.handlers.dragStart
	case EventDrag:
		hs = r.handlers.drag
	case EventDragEnd:
		hs = r.handlers.dragEnd
	}
	for _, h := range hs {
		h.fn(ctx)
	}
	if r.sink != nil {
		r.sink.EmitEvent(Event{
			Type:          event,
			Position:      ctx.Position,
			Previous:      ctx.Previous,
			Start:         ctx.Start,
			Delta:         ctx.Delta,
			TotalDistance: ctx.TotalDistance,
			Repeat:        ctx.Repeat,
		})
	}
}
