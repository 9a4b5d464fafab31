package svgfx

// Blend mixes two inputs with one of the CSS blend modes, the first
// input acting as the source and the second as the backdrop.
type Blend struct {
	In   Input
	In2  Input
	Mode BlendMode
}

func (b *Blend) Kind() string { return "feBlend" }

func (b *Blend) inputList() []Input { return []Input{b.In, b.In2} }

func (b *Blend) render(prim *UserSpacePrimitive, ctx *FilterContext) (FilterOutput, error) {
	fi1, err := ctx.getInput(b.In, prim.Interp)
	if err != nil {
		return FilterOutput{}, err
	}
	fi2, err := ctx.getInput(b.In2, prim.Interp)
	if err != nil {
		return FilterOutput{}, err
	}

	bb := newBoundsBuilder(ctx)
	bb.addInput(fi1)
	bb.addInput(fi2)
	bounds := bb.compute(prim)

	surface, err := blendPixmaps(b.Mode, fi1.surface, fi2.surface, bounds.clipped, ctx.alloc)
	if err != nil {
		return FilterOutput{}, err
	}
	return FilterOutput{Surface: surface, Bounds: bounds.clipped}, nil
}
