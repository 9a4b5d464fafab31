package svgfx

// Composite combines two inputs with a Porter-Duff operator or, for the
// arithmetic operator, the k1*i1*i2 + k2*i1 + k3*i2 + k4 polynomial.
type Composite struct {
	In       Input
	In2      Input
	Operator CompositeOperator

	// K1..K4 apply only to CompositeArithmetic.
	K1, K2, K3, K4 float64
}

func (c *Composite) Kind() string { return "feComposite" }

func (c *Composite) inputList() []Input { return []Input{c.In, c.In2} }

func (c *Composite) render(prim *UserSpacePrimitive, ctx *FilterContext) (FilterOutput, error) {
	fi1, err := ctx.getInput(c.In, prim.Interp)
	if err != nil {
		return FilterOutput{}, err
	}
	fi2, err := ctx.getInput(c.In2, prim.Interp)
	if err != nil {
		return FilterOutput{}, err
	}

	bb := newBoundsBuilder(ctx)
	bb.addInput(fi1)
	bb.addInput(fi2)
	bounds := bb.compute(prim)

	var surface *Pixmap
	if c.Operator == CompositeArithmetic {
		surface, err = compositeArithmetic(fi1.surface, fi2.surface, c.K1, c.K2, c.K3, c.K4, bounds.clipped, ctx.alloc)
	} else {
		surface, err = compositePixmaps(fi1.surface, fi2.surface, c.Operator, bounds.clipped, ctx.alloc)
	}
	if err != nil {
		return FilterOutput{}, err
	}
	return FilterOutput{Surface: surface, Bounds: bounds.clipped}, nil
}
