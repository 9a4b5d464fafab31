package svgfx

// Filter models the filter element's own geometry: the units both region
// and primitives are resolved in, and the filter region rectangle.
type Filter struct {
	Units          Units
	PrimitiveUnits Units
	X, Y           float64
	Width, Height  float64
}

// DefaultFilter returns a filter with the SVG defaults: filterUnits
// objectBoundingBox, primitiveUnits userSpaceOnUse, and the region at
// x/y -10% with width/height 120%, which pads the element's bounding box
// so blurred edges are not clipped.
func DefaultFilter() Filter {
	return Filter{
		Units:          UnitsObjectBoundingBox,
		PrimitiveUnits: UnitsUserSpace,
		X:              -0.1,
		Y:              -0.1,
		Width:          1.2,
		Height:         1.2,
	}
}

// ToUserSpace resolves the filter region against the referencing
// element's bounding box, producing a user-space rectangle.
func (f Filter) ToUserSpace(bbox Rect) UserSpaceFilter {
	x, y, w, h := f.X, f.Y, f.Width, f.Height
	if f.Units == UnitsObjectBoundingBox {
		x = bbox.MinX + x*bbox.Width()
		y = bbox.MinY + y*bbox.Height()
		w *= bbox.Width()
		h *= bbox.Height()
	}
	return UserSpaceFilter{
		Rect:           NewRect(x, y, x+w, y+h),
		PrimitiveUnits: f.PrimitiveUnits,
	}
}

// UserSpaceFilter is the filter region resolved to user space, plus the
// unit mode its primitives use. It is never converted back to a Filter.
type UserSpaceFilter struct {
	Rect           Rect
	PrimitiveUnits Units
}

// FilterSpec is one fully resolved filter: a name for diagnostics, the
// user-space region, and the primitive chain in document order.
type FilterSpec struct {
	Name       string
	Filter     UserSpaceFilter
	Primitives []UserSpacePrimitive
}
