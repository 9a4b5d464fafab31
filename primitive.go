package svgfx

// FilterOutput is one primitive's produced surface plus the device-pixel
// rectangle it is valid within.
type FilterOutput struct {
	Surface *Pixmap
	Bounds  IntRect
}

// ColorInterpolation selects the color space a primitive's pixel math runs
// in, per the color-interpolation-filters property.
type ColorInterpolation int

const (
	// ColorInterpolationLinearRGB runs the primitive on linear-light
	// pixels. This is the SVG default for filter primitives.
	ColorInterpolationLinearRGB ColorInterpolation = iota
	// ColorInterpolationSRGB runs the primitive on sRGB-encoded pixels.
	ColorInterpolationSRGB
)

func (c ColorInterpolation) kind() SurfaceKind {
	if c == ColorInterpolationSRGB {
		return KindSRGB
	}
	return KindLinearRGB
}

func (c ColorInterpolation) String() string {
	if c == ColorInterpolationSRGB {
		return "sRGB"
	}
	return "linearRGB"
}

// Primitive holds the geometry attributes shared by every filter
// primitive: the optional x/y/width/height subregion overrides and the
// optional result label. Nil pointers mean the attribute was not given.
type Primitive struct {
	X, Y          *float64
	Width, Height *float64
	Result        string
}

// ResolvedPrimitive pairs the shared geometry with kind-specific
// parameters whose defaults have been applied.
type ResolvedPrimitive struct {
	Primitive
	Params PrimitiveParams
}

// IntoUserSpace finalizes the primitive for execution, capturing the
// color-interpolation-filters value the style cascade computed for it.
// Geometry stays in primitive-unit space; the execution context's
// primitive transform maps it to device pixels.
func (r ResolvedPrimitive) IntoUserSpace(interp ColorInterpolation) UserSpacePrimitive {
	return UserSpacePrimitive{
		X:      r.X,
		Y:      r.Y,
		Width:  r.Width,
		Height: r.Height,
		Result: r.Result,
		Interp: interp,
		Params: r.Params,
	}
}

// UserSpacePrimitive is the execution-ready form of a primitive. The
// pipeline driver consumes these; they are never converted back to
// earlier forms.
type UserSpacePrimitive struct {
	X, Y          *float64
	Width, Height *float64
	Result        string
	Interp        ColorInterpolation
	Params        PrimitiveParams
}

// PrimitiveParams is the kind-specific half of a filter primitive. The
// variant set is closed: every implementation lives in this package,
// one per fe* element.
type PrimitiveParams interface {
	// Kind returns the SVG element name, for example "feGaussianBlur".
	Kind() string

	// inputList reports the inputs the primitive reads. Requirement
	// analysis and bounds building both consult it.
	inputList() []Input

	// render runs the primitive's pixel transform. Recoverable problems
	// return a primitive-level error; allocation failures surface as
	// AllocError and abort the pipeline.
	render(prim *UserSpacePrimitive, ctx *FilterContext) (FilterOutput, error)
}

// F is a convenience for building optional geometry attributes.
func F(v float64) *float64 { return &v }
