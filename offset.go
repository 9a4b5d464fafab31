package svgfx

import "math"

// Offset shifts its input by (Dx, Dy) user-space units. The stored
// bounds are the input bounds translated by the device-space offset, so
// later primitives referencing the result see where the content actually
// landed.
type Offset struct {
	In     Input
	Dx, Dy float64
}

func (o *Offset) Kind() string { return "feOffset" }

func (o *Offset) inputList() []Input { return []Input{o.In} }

func (o *Offset) render(prim *UserSpacePrimitive, ctx *FilterContext) (FilterOutput, error) {
	fi, err := ctx.getInput(o.In, prim.Interp)
	if err != nil {
		return FilterOutput{}, err
	}

	bb := newBoundsBuilder(ctx)
	bb.addInput(fi)
	bounds := bb.compute(prim)

	dxf, dyf := ctx.paffine.TransformDistance(o.Dx, o.Dy)
	dx := int(math.Round(dxf))
	dy := int(math.Round(dyf))

	outBounds := bounds.clipped.Translate(dx, dy)
	outBounds, ok := outBounds.Intersect(ctx.effectsRegion)
	if !ok {
		outBounds = IntRect{}
	}

	surface, err := fi.surface.Offset(bounds.clipped, dx, dy, ctx.effectsRegion, ctx.alloc)
	if err != nil {
		return FilterOutput{}, err
	}
	return FilterOutput{Surface: surface, Bounds: outBounds}, nil
}
