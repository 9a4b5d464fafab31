package svgfx

import "math"

// Rect is an axis-aligned rectangle in float64 coordinates.
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// NewRect creates a rectangle from two corner points.
func NewRect(minX, minY, maxX, maxY float64) Rect {
	return Rect{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}
}

// RectFromSize creates a rectangle anchored at the origin.
func RectFromSize(width, height float64) Rect {
	return Rect{MaxX: width, MaxY: height}
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 { return r.MaxX - r.MinX }

// Height returns the height of the rectangle.
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// IsEmpty returns true if the rectangle has no area.
func (r Rect) IsEmpty() bool { return r.MaxX <= r.MinX || r.MaxY <= r.MinY }

// Intersect returns the intersection of two rectangles. The second return
// value is false when the rectangles do not overlap.
func (r Rect) Intersect(o Rect) (Rect, bool) {
	out := Rect{
		MinX: math.Max(r.MinX, o.MinX),
		MinY: math.Max(r.MinY, o.MinY),
		MaxX: math.Min(r.MaxX, o.MaxX),
		MaxY: math.Min(r.MaxY, o.MaxY),
	}
	if out.IsEmpty() {
		return Rect{}, false
	}
	return out, true
}

// Union returns the smallest rectangle containing both rectangles.
func (r Rect) Union(o Rect) Rect {
	if r.IsEmpty() {
		return o
	}
	if o.IsEmpty() {
		return r
	}
	return Rect{
		MinX: math.Min(r.MinX, o.MinX),
		MinY: math.Min(r.MinY, o.MinY),
		MaxX: math.Max(r.MaxX, o.MaxX),
		MaxY: math.Max(r.MaxY, o.MaxY),
	}
}

// Outer returns the smallest integer rectangle that contains r.
// The low edges are floored and the high edges are ceiled, so the result
// never under-covers the exact region.
func (r Rect) Outer() IntRect {
	return IntRect{
		MinX: int(math.Floor(r.MinX)),
		MinY: int(math.Floor(r.MinY)),
		MaxX: int(math.Ceil(r.MaxX)),
		MaxY: int(math.Ceil(r.MaxY)),
	}
}

// IntRect is an axis-aligned rectangle in integer device pixels.
// MaxX and MaxY are exclusive.
type IntRect struct {
	MinX, MinY int
	MaxX, MaxY int
}

// NewIntRect creates an integer rectangle from its edges.
func NewIntRect(minX, minY, maxX, maxY int) IntRect {
	return IntRect{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}
}

// IntRectFromSize creates an integer rectangle anchored at the origin.
func IntRectFromSize(width, height int) IntRect {
	return IntRect{MaxX: width, MaxY: height}
}

// Width returns the width of the rectangle.
func (r IntRect) Width() int { return r.MaxX - r.MinX }

// Height returns the height of the rectangle.
func (r IntRect) Height() int { return r.MaxY - r.MinY }

// IsEmpty returns true if the rectangle has no area.
func (r IntRect) IsEmpty() bool { return r.MaxX <= r.MinX || r.MaxY <= r.MinY }

// Intersect returns the intersection of two rectangles. The second return
// value is false when the rectangles do not overlap.
func (r IntRect) Intersect(o IntRect) (IntRect, bool) {
	out := IntRect{
		MinX: max(r.MinX, o.MinX),
		MinY: max(r.MinY, o.MinY),
		MaxX: min(r.MaxX, o.MaxX),
		MaxY: min(r.MaxY, o.MaxY),
	}
	if out.IsEmpty() {
		return IntRect{}, false
	}
	return out, true
}

// Translate returns the rectangle shifted by (dx, dy).
func (r IntRect) Translate(dx, dy int) IntRect {
	return IntRect{
		MinX: r.MinX + dx,
		MinY: r.MinY + dy,
		MaxX: r.MaxX + dx,
		MaxY: r.MaxY + dy,
	}
}

// Contains reports whether (x, y) lies within the rectangle.
func (r IntRect) Contains(x, y int) bool {
	return x >= r.MinX && x < r.MaxX && y >= r.MinY && y < r.MaxY
}

// ContainsRect reports whether o lies entirely within r.
func (r IntRect) ContainsRect(o IntRect) bool {
	if o.IsEmpty() {
		return true
	}
	return o.MinX >= r.MinX && o.MinY >= r.MinY && o.MaxX <= r.MaxX && o.MaxY <= r.MaxY
}

// Scale returns the rectangle scaled by (sx, sy), rounded outward.
func (r IntRect) Scale(sx, sy float64) IntRect {
	return IntRect{
		MinX: int(math.Floor(float64(r.MinX) * sx)),
		MinY: int(math.Floor(float64(r.MinY) * sy)),
		MaxX: int(math.Ceil(float64(r.MaxX) * sx)),
		MaxY: int(math.Ceil(float64(r.MaxY) * sy)),
	}
}

// Rect converts the integer rectangle back to float coordinates.
func (r IntRect) Rect() Rect {
	return Rect{
		MinX: float64(r.MinX),
		MinY: float64(r.MinY),
		MaxX: float64(r.MaxX),
		MaxY: float64(r.MaxY),
	}
}
