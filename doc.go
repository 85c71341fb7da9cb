// Package gesture turns raw pointer samples into press and drag gestures
// for game and tool input loops.
//
// A [Recognizer] owns the motion state of one pointer stream. Feed it
// phase-tagged samples and it emits pointerDown, dragStart, drag, press,
// dragEnd and pointerUp to registered callbacks:
//
//	rec, err := gesture.NewRecognizer(gesture.Config{
//		DragThreshold:        4,
//		ContinuousDragOnTick: true,
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	h := rec.OnDrag(func(ctx gesture.DragContext) {
//		box.X += ctx.Delta.X
//		box.Y += ctx.Delta.Y
//	})
//	defer h.Remove()
//
// A span that ends within DragThreshold of where it started is a press;
// anything farther is a drag. The comparison is strict, so a span ending
// exactly on the threshold is still a press.
//
// # Sources and the Driver
//
// Platform input reaches the recognizer through a [SampleSource], which
// checks that a device is pointer-like and reads its position, and a
// [Driver], which forwards validated samples and drops (and logs) the rest.
// Built-in sources cover [Ebitengine] ([EbitenSource]), terminals via
// [tcell] ([TerminalSource]) and synthetic input ([Injector]):
//
//	src := gesture.NewEbitenSource()
//	drv := gesture.NewDriver(src, rec)
//
//	func (g *Game) Update() error {
//		g.drv.Update(g.src) // dispatch this frame's samples, then OnTick
//		return nil
//	}
//
// Driver.Update calls [Recognizer.OnTick] after the frame's samples, so with
// ContinuousDragOnTick a drag keeps reporting every frame even when the
// device reports no movement. Set DedupeTickDrag to suppress the tick
// report on frames where a move already produced one.
//
// # Picking
//
// [Picker] and [Interaction] resolve gesture positions against depth-ordered
// cameras (see [Layer]) after an optional UI occlusion check. ECS users can
// forward every event into a Donburi world with the gesture/ecs adapter.
//
// [Ebitengine]: https://ebitengine.org
// [tcell]: https://github.com/gdamore/tcell
package gesture
