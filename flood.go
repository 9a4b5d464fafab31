package svgfx

// Flood fills the primitive subregion with a single color, modulated by
// an opacity. It reads no inputs; its subregion defaults to the whole
// effects region.
type Flood struct {
	Color   RGBA
	Opacity float64
}

// NewFlood returns a flood with full opacity.
func NewFlood(color RGBA) *Flood {
	return &Flood{Color: color, Opacity: 1.0}
}

func (f *Flood) Kind() string { return "feFlood" }

func (f *Flood) inputList() []Input { return nil }

func (f *Flood) render(prim *UserSpacePrimitive, ctx *FilterContext) (FilterOutput, error) {
	bounds := newBoundsBuilder(ctx).compute(prim)

	c := f.Color
	c.A *= clampUnit(f.Opacity)

	// Flood colors are specified in sRGB; the surface is tagged so a
	// downstream primitive working in linear light converts it.
	surface, err := floodPixmap(ctx.source.width, ctx.source.height, bounds.clipped, c, KindSRGB, ctx.alloc)
	if err != nil {
		return FilterOutput{}, err
	}
	return FilterOutput{Surface: surface, Bounds: bounds.clipped}, nil
}
