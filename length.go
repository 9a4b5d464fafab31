package svgfx

import "math"

// Units selects the coordinate system for filter geometry, matching the
// SVG filterUnits and primitiveUnits attributes.
type Units int

const (
	// UnitsObjectBoundingBox interprets values as fractions of the
	// filtered element's bounding box.
	UnitsObjectBoundingBox Units = iota
	// UnitsUserSpace interprets values directly in user-space units.
	UnitsUserSpace
)

func (u Units) String() string {
	switch u {
	case UnitsObjectBoundingBox:
		return "objectBoundingBox"
	case UnitsUserSpace:
		return "userSpaceOnUse"
	default:
		return "unknown"
	}
}

// ParseUnits maps an SVG units keyword to a Units value.
func ParseUnits(s string) (Units, bool) {
	switch s {
	case "userSpaceOnUse":
		return UnitsUserSpace, true
	case "objectBoundingBox":
		return UnitsObjectBoundingBox, true
	default:
		return UnitsObjectBoundingBox, false
	}
}

// direction tells a scalar length which bounding box axis it scales
// against under objectBoundingBox units.
type direction int

const (
	dirHorizontal direction = iota
	dirVertical
	dirBoth
)

// scaleFactors returns the per-axis multipliers that map a scalar in the
// given unit system into user space. For userSpaceOnUse both factors are
// 1; for objectBoundingBox they are the bbox width and height. dirBoth
// uses the normalized diagonal for both axes, matching how SVG resolves
// lengths with no intrinsic axis.
func scaleFactors(units Units, bbox Rect) (sx, sy float64) {
	if units == UnitsUserSpace {
		return 1, 1
	}
	return bbox.Width(), bbox.Height()
}

// scaleLength maps one scalar into user space along the given axis.
func scaleLength(v float64, units Units, bbox Rect, dir direction) float64 {
	if units == UnitsUserSpace {
		return v
	}
	switch dir {
	case dirHorizontal:
		return v * bbox.Width()
	case dirVertical:
		return v * bbox.Height()
	default:
		w, h := bbox.Width(), bbox.Height()
		return v * math.Sqrt(w*w+h*h) / math.Sqrt2
	}
}

// bboxMatrix returns the transform that maps the objectBoundingBox unit
// square onto the element's bounding box.
func bboxMatrix(bbox Rect) Matrix {
	return Translate(bbox.MinX, bbox.MinY).Multiply(Scale(bbox.Width(), bbox.Height()))
}
