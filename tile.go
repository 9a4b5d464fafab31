package svgfx

// Tile fills the primitive subregion by repeating its input's bounds
// rectangle as a tile. A standard input already covers the whole effects
// region, so tiling it is the identity and the input passes through.
type Tile struct {
	In Input
}

func (t *Tile) Kind() string { return "feTile" }

func (t *Tile) inputList() []Input { return []Input{t.In} }

func (t *Tile) render(prim *UserSpacePrimitive, ctx *FilterContext) (FilterOutput, error) {
	fi, err := ctx.getInput(t.In, prim.Interp)
	if err != nil {
		return FilterOutput{}, err
	}

	// The tile's own subregion is not influenced by the input bounds.
	bounds := newBoundsBuilder(ctx).compute(prim)

	if fi.standard {
		return FilterOutput{Surface: fi.surface, Bounds: bounds.clipped}, nil
	}

	tileRect := fi.bounds
	if tileRect.IsEmpty() {
		return FilterOutput{}, errInvalidInput
	}
	tileSurface, err := fi.surface.extractTile(tileRect, ctx.alloc)
	if err != nil {
		return FilterOutput{}, err
	}

	surface, err := ctx.newSurface(fi.surface.kind)
	if err != nil {
		return FilterOutput{}, err
	}
	surface.paintTiled(bounds.clipped, tileSurface, tileRect.MinX, tileRect.MinY)
	return FilterOutput{Surface: surface, Bounds: bounds.clipped}, nil
}
