package svgfx

// Merge layers any number of inputs on top of each other with simple
// alpha compositing, first node at the bottom.
type Merge struct {
	Nodes []Input
}

func (m *Merge) Kind() string { return "feMerge" }

func (m *Merge) inputList() []Input { return m.Nodes }

func (m *Merge) render(prim *UserSpacePrimitive, ctx *FilterContext) (FilterOutput, error) {
	inputs := make([]filterInput, 0, len(m.Nodes))
	bb := newBoundsBuilder(ctx)
	for _, node := range m.Nodes {
		fi, err := ctx.getInput(node, prim.Interp)
		if err != nil {
			return FilterOutput{}, err
		}
		bb.addInput(fi)
		inputs = append(inputs, fi)
	}
	bounds := bb.compute(prim)

	surface, err := ctx.newSurface(prim.Interp.kind())
	if err != nil {
		return FilterOutput{}, err
	}
	for _, fi := range inputs {
		surface, err = compositePixmaps(fi.surface, surface, CompositeOver, bounds.clipped, ctx.alloc)
		if err != nil {
			return FilterOutput{}, err
		}
	}
	return FilterOutput{Surface: surface, Bounds: bounds.clipped}, nil
}
