package gesture

import "sort"

// InteractionObject is something a pick can resolve a position to.
type InteractionObject struct {
	ID       uint32
	Name     string
	UserData any
}

// Camera is a pick collaborator: it resolves a screen position to the
// objects under it, nearest first. Implementations must be comparable
// (typically pointer types) so the Picker can deduplicate them.
type Camera interface {
	// Depth orders cameras; lower depths are traced first.
	Depth() float64
	// Pick returns the objects under pos.
	Pick(pos Vec2) []InteractionObject
}

// UIOccluder reports whether a position is covered by UI that should swallow
// the pointer before any scene picking.
type UIOccluder interface {
	IsOverUI(pos Vec2) bool
}

// OccluderFunc adapts a function to UIOccluder.
type OccluderFunc func(pos Vec2) bool

// IsOverUI implements UIOccluder.
func (f OccluderFunc) IsOverUI(pos Vec2) bool { return f(pos) }

// Picker traces positions through a set of cameras ordered by depth.
type Picker struct {
	cameras []Camera
}

// RegisterCamera adds c if it is not already registered and keeps the
// camera list sorted by ascending depth. Cameras with equal depth keep
// registration order.
func (p *Picker) RegisterCamera(c Camera) {
	for _, existing := range p.cameras {
		if existing == c {
			return
		}
	}
	p.cameras = append(p.cameras, c)
	p.sortCameras()
}

// UnregisterCamera removes c. No-op if c is not registered.
func (p *Picker) UnregisterCamera(c Camera) {
	for i, existing := range p.cameras {
		if existing == c {
			p.cameras = append(p.cameras[:i], p.cameras[i+1:]...)
			return
		}
	}
}

// Cameras returns the registered cameras in trace order. The returned slice
// MUST NOT be mutated.
func (p *Picker) Cameras() []Camera {
	return p.cameras
}

// Trace returns every object under pos, camera by camera in ascending depth,
// each camera's objects in the order it reports them.
func (p *Picker) Trace(pos Vec2) []InteractionObject {
	var out []InteractionObject
	for _, c := range p.cameras {
		out = append(out, c.Pick(pos)...)
	}
	return out
}

// Resort re-sorts the cameras after a camera's depth changed.
func (p *Picker) Resort() {
	p.sortCameras()
}

func (p *Picker) sortCameras() {
	sort.SliceStable(p.cameras, func(i, j int) bool {
		return p.cameras[i].Depth() < p.cameras[j].Depth()
	})
}

// PickContext is delivered by an Interaction for each gesture it observes.
type PickContext struct {
	Event    EventType
	Position Vec2
	// Drag holds the drag payload for EventDragStart, EventDrag and
	// EventDragEnd.
	Drag DragContext
	// OverUI is true when the occluder claimed the position; Objects is
	// then empty.
	OverUI bool
	// Objects are the traced objects, ordered by ascending camera depth.
	Objects []InteractionObject
}

// Interaction resolves a Recognizer's press and drag gestures against a
// Picker and an optional UIOccluder.
type Interaction struct {
	picker   *Picker
	occluder UIOccluder
	fn       func(PickContext)
	handles  []CallbackHandle
}

// Attach subscribes to rec's press, dragStart, drag and dragEnd events and
// delivers a PickContext for each one to fn. occluder may be nil.
func Attach(rec *Recognizer, picker *Picker, occluder UIOccluder, fn func(PickContext)) *Interaction {
	it := &Interaction{picker: picker, occluder: occluder, fn: fn}
	it.handles = append(it.handles,
		rec.OnPress(func(ctx PointerContext) {
			it.deliver(EventPress, ctx.Position, DragContext{})
		}),
		rec.OnDragStart(func(ctx DragContext) {
			it.deliver(EventDragStart, ctx.Position, ctx)
		}),
		rec.OnDrag(func(ctx DragContext) {
			it.deliver(EventDrag, ctx.Position, ctx)
		}),
		rec.OnDragEnd(func(ctx DragContext) {
			it.deliver(EventDragEnd, ctx.Position, ctx)
		}),
	)
	return it
}

// Detach removes every callback Attach registered. Safe to call twice.
func (it *Interaction) Detach() {
	for _, h := range it.handles {
		h.Remove()
	}
	it.handles = nil
}

func (it *Interaction) deliver(event EventType, pos Vec2, drag DragContext) {
	ctx := PickContext{Event: event, Position: pos, Drag: drag}
	if it.occluder != nil && it.occluder.IsOverUI(pos) {
		ctx.OverUI = true
	} else if it.picker != nil {
		ctx.Objects = it.picker.Trace(pos)
	}
	it.fn(ctx)
}
