package svgfx

// primitiveBounds is the result of resolving one primitive's subregion.
// clipped is the device-pixel rectangle the primitive may paint, already
// intersected with the effects region; unclipped is the device-space
// rectangle before clipping, which offset and tile use to position
// content that the clip would otherwise distort.
type primitiveBounds struct {
	clipped   IntRect
	unclipped Rect
}

// boundsBuilder accumulates input bounds for one primitive and resolves
// the final subregion. It works in primitive-unit space; the context's
// primitive transform maps the result to device pixels.
type boundsBuilder struct {
	ctx      *FilterContext
	rect     Rect
	hasRect  bool
	standard bool
}

func newBoundsBuilder(ctx *FilterContext) *boundsBuilder {
	return &boundsBuilder{ctx: ctx}
}

// addInput folds one resolved input into the builder. A standard input
// (SourceGraphic and friends) forces the default bounds to the whole
// effects region; primitive outputs union their stored bounds.
func (b *boundsBuilder) addInput(fi filterInput) {
	if fi.standard {
		b.standard = true
		return
	}
	inv, ok := b.ctx.paffine.Invert()
	if !ok {
		return
	}
	r := inv.TransformRect(fi.bounds.Rect())
	if b.hasRect {
		b.rect = b.rect.Union(r)
	} else {
		b.rect = r
		b.hasRect = true
	}
}

// compute resolves the subregion: the unioned input bounds (or the whole
// effects region when a standard input was referenced or no input
// contributed), overridden by the primitive's own x/y/width/height, then
// mapped to device space and clipped to the effects region.
func (b *boundsBuilder) compute(prim *UserSpacePrimitive) primitiveBounds {
	bounds := b.rect
	if !b.hasRect || b.standard {
		if inv, ok := b.ctx.paffine.Invert(); ok {
			bounds = inv.TransformRect(b.ctx.effectsRegion.Rect())
		}
	}

	if prim.X != nil {
		w := bounds.Width()
		bounds.MinX = *prim.X
		bounds.MaxX = *prim.X + w
	}
	if prim.Y != nil {
		h := bounds.Height()
		bounds.MinY = *prim.Y
		bounds.MaxY = *prim.Y + h
	}
	if prim.Width != nil {
		bounds.MaxX = bounds.MinX + *prim.Width
	}
	if prim.Height != nil {
		bounds.MaxY = bounds.MinY + *prim.Height
	}

	unclipped := b.ctx.paffine.TransformRect(bounds)
	clipped, ok := unclipped.Outer().Intersect(b.ctx.effectsRegion)
	if !ok {
		clipped = IntRect{}
	}
	return primitiveBounds{clipped: clipped, unclipped: unclipped}
}
