package svgfx

import "log/slog"

// Render runs the filter chain against the context and returns the final
// surface with its valid bounds.
//
// Failures follow a two-tier policy. A primitive-level problem (an input
// that cannot be resolved, a degenerate parameter) skips that primitive:
// it stores nothing, later primitives looking for its named result see a
// miss, and the chain keeps going. A backend failure such as a raster
// allocation error aborts immediately with the error; no partial surface
// is substituted. When nothing was ever stored, because the chain was
// empty or every primitive failed non-fatally, the unfiltered source is
// returned unchanged.
func Render(spec *FilterSpec, ctx *FilterContext) (FilterOutput, error) {
	for i := range spec.Primitives {
		prim := &spec.Primitives[i]
		kind := prim.Params.Kind()

		out, err := prim.Params.render(prim, ctx)
		if err != nil {
			if isFatal(err) {
				ctx.log.Error("primitive aborted the filter",
					slog.Int("index", i),
					slog.String("kind", kind),
					slog.Any("error", err))
				return FilterOutput{}, err
			}
			ctx.log.Warn("primitive failed, skipping",
				slog.Int("index", i),
				slog.String("kind", kind),
				slog.Any("error", err))
			continue
		}

		ctx.log.Debug("primitive rendered",
			slog.Int("index", i),
			slog.String("kind", kind),
			slog.Any("bounds", out.Bounds))
		ctx.StoreResult(out, prim.Result)
	}
	return ctx.IntoOutput()
}
