package gesture

import "math"

// --- Built-in HitShape types ---

// HitShape defines a hit-testable region in layer (world) coordinates.
type HitShape interface {
	Contains(x, y float64) bool
}

// HitRect is an axis-aligned rectangular hit area.
type HitRect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r HitRect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// HitCircle is a circular hit area.
type HitCircle struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c HitCircle) Contains(x, y float64) bool {
	dx := x - c.CenterX
	dy := y - c.CenterY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// HitPolygon is a convex polygon hit area.
// Points must define a convex polygon in either winding order.
type HitPolygon struct {
	Points []Vec2
}

// Contains reports whether (x, y) lies inside the polygon: the point must be
// on the same side of every edge.
func (p HitPolygon) Contains(x, y float64) bool {
	n := len(p.Points)
	if n < 3 {
		return false
	}

	var positive, negative bool
	for i := 0; i < n; i++ {
		a := p.Points[i]
		b := p.Points[(i+1)%n]
		cross := (b.X-a.X)*(y-a.Y) - (b.Y-a.Y)*(x-a.X)
		if cross > 0 {
			positive = true
		} else if cross < 0 {
			negative = true
		}
		if positive && negative {
			return false
		}
	}
	return true
}

// --- Layer ---

type layerTarget struct {
	obj   InteractionObject
	shape HitShape
}

// Layer is a 2D Camera over a flat set of hit targets. It maps screen
// positions inside its viewport into layer space using its position, zoom
// and rotation, then tests targets topmost first (last added wins).
type Layer struct {
	// X and Y are the layer-space position shown at the viewport center.
	X, Y float64
	// Zoom is the scale factor (1.0 = no zoom). Zero is treated as 1.
	Zoom float64
	// Rotation is the view rotation in radians (clockwise).
	Rotation float64
	// Viewport is the screen-space rectangle this layer covers.
	Viewport Rect

	depth   float64
	targets []layerTarget
}

// NewLayer creates a layer with the given depth and viewport, centered so
// that layer space equals screen space.
func NewLayer(depth float64, viewport Rect) *Layer {
	return &Layer{
		X:        viewport.X + viewport.Width/2,
		Y:        viewport.Y + viewport.Height/2,
		Zoom:     1,
		Viewport: viewport,
		depth:    depth,
	}
}

// Depth implements Camera.
func (l *Layer) Depth() float64 {
	return l.depth
}

// SetDepth changes the layer depth. Call Picker.Resort afterwards.
func (l *Layer) SetDepth(d float64) {
	l.depth = d
}

// Add registers obj with the given hit shape on top of existing targets.
func (l *Layer) Add(obj InteractionObject, shape HitShape) {
	l.targets = append(l.targets, layerTarget{obj: obj, shape: shape})
}

// Remove unregisters every target with the given object ID.
func (l *Layer) Remove(id uint32) {
	out := l.targets[:0]
	for _, t := range l.targets {
		if t.obj.ID != id {
			out = append(out, t)
		}
	}
	for i := len(out); i < len(l.targets); i++ {
		l.targets[i] = layerTarget{}
	}
	l.targets = out
}

// ScreenToLayer converts screen coordinates to layer coordinates.
func (l *Layer) ScreenToLayer(sx, sy float64) (float64, float64) {
	zoom := l.Zoom
	if zoom == 0 {
		zoom = 1
	}
	cx := l.Viewport.X + l.Viewport.Width/2
	cy := l.Viewport.Y + l.Viewport.Height/2

	// Inverse of Translate(cx,cy) * Scale(zoom) * Rotate(-rot) * Translate(-X,-Y).
	dx := (sx - cx) / zoom
	dy := (sy - cy) / zoom
	cos := math.Cos(l.Rotation)
	sin := math.Sin(l.Rotation)
	return l.X + cos*dx - sin*dy, l.Y + sin*dx + cos*dy
}

// Pick implements Camera.
func (l *Layer) Pick(pos Vec2) []InteractionObject {
	if !l.Viewport.Contains(pos.X, pos.Y) {
		return nil
	}
	lx, ly := l.ScreenToLayer(pos.X, pos.Y)
	var out []InteractionObject
	for i := len(l.targets) - 1; i >= 0; i-- {
		if l.targets[i].shape.Contains(lx, ly) {
			out = append(out, l.targets[i].obj)
		}
	}
	return out
}
