// Package svgfx implements the SVG filter-effects pipeline: it takes a
// resolved chain of filter primitives (feGaussianBlur, feComposite,
// feTurbulence, ...) for one element and produces the filtered raster.
//
// The pipeline is a small dataflow interpreter. Primitives form a dependency
// graph over named intermediate rasters: each primitive reads one or two
// inputs (the source graphic, a derived raster such as SourceAlpha, or a
// previous primitive's named result), renders into its own subregion, and
// stores its output for later primitives to reference.
//
// # Usage
//
//	filter := svgfx.DefaultFilter().ToUserSpace(bbox)
//	spec := &svgfx.FilterSpec{Name: "blur", Filter: filter, Primitives: prims}
//
//	ctx, err := svgfx.NewFilterContext(spec, source, bbox, transform)
//	if err != nil {
//		// a side input was missing, or the transform is degenerate
//	}
//	out, err := svgfx.Render(spec, ctx)
//
// Primitive-level problems (an unresolvable input, a degenerate parameter)
// skip that primitive and keep going; only backend failures such as raster
// allocation errors abort the render. A chain whose primitives all fail, or
// an empty chain, yields the unfiltered source.
//
// Side inputs (BackgroundImage, FillPaint, StrokePaint) must be supplied by
// the caller when AnalyzeRequirements reports they are needed; see the
// WithBackgroundSource, WithFillPaint and WithStrokePaint options.
package svgfx
