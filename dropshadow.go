package svgfx

// DropShadow describes an feDropShadow shorthand. It is not itself a
// pipeline primitive: Resolve expands it into the equivalent
// blur/offset/flood/composite/merge sequence before the chain reaches
// the driver, matching how the shorthand is defined.
type DropShadow struct {
	In            Input
	Dx, Dy        float64
	StdDeviationX float64
	StdDeviationY float64
	Color         RGBA
	Opacity       float64
}

// NewDropShadow returns a drop shadow with the SVG defaults: offset
// (2, 2), standard deviation 2, opaque black.
func NewDropShadow() *DropShadow {
	return &DropShadow{
		Dx:            2,
		Dy:            2,
		StdDeviationX: 2,
		StdDeviationY: 2,
		Color:         RGB(0, 0, 0),
		Opacity:       1,
	}
}

// Resolve expands the shorthand into five primitives. The shadow shape
// comes from the input's alpha, blurred and offset; the flood supplies
// the shadow color, masked by the blurred alpha through an "in"
// composite; the final merge puts the original content on top.
func (d *DropShadow) Resolve(result string, interp ColorInterpolation) []UserSpacePrimitive {
	blurIn := d.In
	if blurIn.IsUnspecified() || blurIn.kind == inputSourceGraphic {
		blurIn = SourceAlpha()
	}

	prims := []ResolvedPrimitive{
		{Params: &GaussianBlur{
			In:            blurIn,
			StdDeviationX: d.StdDeviationX,
			StdDeviationY: d.StdDeviationY,
		}},
		{Primitive: Primitive{Result: "offsetblur"}, Params: &Offset{
			Dx: d.Dx,
			Dy: d.Dy,
		}},
		{Params: &Flood{Color: d.Color, Opacity: d.Opacity}},
		{Params: &Composite{
			In:       Unspecified(),
			In2:      Named("offsetblur"),
			Operator: CompositeIn,
		}},
		{Primitive: Primitive{Result: result}, Params: &Merge{
			Nodes: []Input{Unspecified(), SourceGraphic()},
		}},
	}

	out := make([]UserSpacePrimitive, len(prims))
	for i, p := range prims {
		out[i] = p.IntoUserSpace(interp)
	}
	return out
}
