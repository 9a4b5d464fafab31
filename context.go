package svgfx

import (
	"fmt"
	"log/slog"
)

// ContextOption configures a FilterContext at construction time.
type ContextOption func(*contextConfig)

type contextConfig struct {
	bgSource    func() (*Pixmap, error)
	fillPaint   *Pixmap
	strokePaint *Pixmap
	alloc       Allocator
}

// WithBackgroundSource supplies the function that assembles the canvas
// snapshot under the filtered element. The pipeline calls it at most
// once, on the first BackgroundImage or BackgroundAlpha reference, and
// memoizes the result for the rest of the invocation.
func WithBackgroundSource(fn func() (*Pixmap, error)) ContextOption {
	return func(c *contextConfig) { c.bgSource = fn }
}

// WithFillPaint supplies the element's rendered fill paint for FillPaint
// input references.
func WithFillPaint(p *Pixmap) ContextOption {
	return func(c *contextConfig) { c.fillPaint = p }
}

// WithStrokePaint supplies the element's rendered stroke paint for
// StrokePaint input references.
func WithStrokePaint(p *Pixmap) ContextOption {
	return func(c *contextConfig) { c.strokePaint = p }
}

// WithAllocator overrides the allocator used for every surface the
// pipeline creates.
func WithAllocator(a Allocator) ContextOption {
	return func(c *contextConfig) { c.alloc = a }
}

// backgroundState tracks the lazy background snapshot.
type backgroundState int

const (
	backgroundNotNeeded backgroundState = iota
	backgroundNotComputed
	backgroundReady
)

// FilterContext is the per-invocation state of one filter run: the
// unfiltered source, the side inputs, the stored results, and the two
// coordinate transforms. A context is created fresh per filtered element
// and consumed by IntoOutput; nothing survives across invocations.
type FilterContext struct {
	source *Pixmap

	lastResult      *FilterOutput
	previousResults map[string]FilterOutput

	bgState   backgroundState
	bgSurface *Pixmap
	bgSource  func() (*Pixmap, error)

	fillPaint   *Pixmap
	strokePaint *Pixmap

	filter        UserSpaceFilter
	affine        Matrix
	paffine       Matrix
	effectsRegion IntRect

	alloc Allocator
	log   *slog.Logger
}

// NewFilterContext builds the execution context for one filter
// invocation. The draw transform maps user space to device pixels and
// must be invertible. Side inputs supplied through options must match
// exactly what AnalyzeRequirements reports for the chain; a mismatch is
// a programming error and fails construction.
func NewFilterContext(spec *FilterSpec, source *Pixmap, bbox Rect, transform Matrix, opts ...ContextOption) (*FilterContext, error) {
	var cfg contextConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	if !transform.IsInvertible() {
		return nil, invalidParameter("filter transform is not invertible")
	}

	reqs := AnalyzeRequirements(spec.Primitives)
	if err := checkSideInputContract(reqs, &cfg); err != nil {
		return nil, err
	}

	paffine := transform
	if spec.Filter.PrimitiveUnits == UnitsObjectBoundingBox {
		paffine = transform.Multiply(bboxMatrix(bbox))
	}
	if !paffine.IsInvertible() {
		return nil, invalidParameter("primitive transform is not invertible")
	}

	// The effects region is the user-space filter rectangle mapped to
	// device pixels and clipped to the source extent. The clip is the
	// hard backstop keeping every primitive inside allocated memory.
	region := transform.TransformRect(spec.Filter.Rect).Outer()
	region, _ = region.Intersect(source.Bounds())

	bgState := backgroundNotNeeded
	if reqs.NeedsBackground() {
		bgState = backgroundNotComputed
	}

	ctx := &FilterContext{
		source:          source,
		previousResults: make(map[string]FilterOutput),
		bgState:         bgState,
		bgSource:        cfg.bgSource,
		fillPaint:       cfg.fillPaint,
		strokePaint:     cfg.strokePaint,
		filter:          spec.Filter,
		affine:          transform,
		paffine:         paffine,
		effectsRegion:   region,
		alloc:           cfg.alloc,
		log:             Logger().With(slog.String("filter", spec.Name)),
	}
	ctx.log.Debug("filter context created",
		slog.Int("primitives", len(spec.Primitives)),
		slog.Any("effects_region", region))
	return ctx, nil
}

// checkSideInputContract verifies that supplied side inputs match the
// analyzed requirements exactly, in both directions.
func checkSideInputContract(reqs Requirements, cfg *contextConfig) error {
	check := func(name string, required, supplied bool) error {
		if required && !supplied {
			return fmt.Errorf("svgfx: contract: %s required but not supplied", name)
		}
		if supplied && !required {
			return fmt.Errorf("svgfx: contract: %s supplied but not required", name)
		}
		return nil
	}
	if err := check("background source", reqs.NeedsBackground(), cfg.bgSource != nil); err != nil {
		return err
	}
	if err := check("fill paint", reqs.FillPaint, cfg.fillPaint != nil); err != nil {
		return err
	}
	return check("stroke paint", reqs.StrokePaint, cfg.strokePaint != nil)
}

// EffectsRegion returns the device-pixel rectangle all primitives are
// clipped to.
func (ctx *FilterContext) EffectsRegion() IntRect { return ctx.effectsRegion }

// SourceGraphic returns the unfiltered source surface.
func (ctx *FilterContext) SourceGraphic() *Pixmap { return ctx.source }

// LastResult returns the most recently stored output, or nil before any
// primitive has stored one.
func (ctx *FilterContext) LastResult() *FilterOutput { return ctx.lastResult }

// SourceAlpha derives the alpha-only view of the source graphic inside
// bounds. It is recomputed per call; extraction is cheap and the bounds
// differ between callers.
func (ctx *FilterContext) SourceAlpha(bounds IntRect) (*Pixmap, error) {
	return ctx.source.ExtractAlpha(bounds, ctx.alloc)
}

// BackgroundImage returns the canvas snapshot under the filtered
// element, assembling it on first use and memoizing it for the rest of
// the invocation.
func (ctx *FilterContext) BackgroundImage() (*Pixmap, error) {
	switch ctx.bgState {
	case backgroundReady:
		return ctx.bgSurface, nil
	case backgroundNotComputed:
		surface, err := ctx.bgSource()
		if err != nil {
			return nil, err
		}
		ctx.bgSurface = surface
		ctx.bgState = backgroundReady
		return surface, nil
	default:
		// The requirement analysis did not ask for a background, so no
		// snapshot was captured.
		return nil, errInputNotFound
	}
}

// BackgroundAlpha derives the alpha-only view of the background snapshot
// inside bounds.
func (ctx *FilterContext) BackgroundAlpha(bounds IntRect) (*Pixmap, error) {
	bg, err := ctx.BackgroundImage()
	if err != nil {
		return nil, err
	}
	return bg.ExtractAlpha(bounds, ctx.alloc)
}

// StoreResult records a primitive's output as the new last result and,
// when the primitive carries a result label, under that name. A repeated
// name overwrites the earlier entry.
func (ctx *FilterContext) StoreResult(out FilterOutput, name string) {
	if name != "" {
		ctx.previousResults[name] = out
	}
	ctx.lastResult = &out
}

// IntoOutput consumes the context, returning the final surface. The last
// result is converted back to sRGB when its primitive ran in linear
// light; when nothing was ever stored the unfiltered source is returned
// unchanged.
func (ctx *FilterContext) IntoOutput() (FilterOutput, error) {
	if ctx.lastResult == nil {
		return FilterOutput{Surface: ctx.source, Bounds: ctx.effectsRegion}, nil
	}
	out := *ctx.lastResult
	surface, err := out.Surface.convertKind(KindSRGB, out.Bounds, ctx.alloc)
	if err != nil {
		return FilterOutput{}, err
	}
	out.Surface = surface
	return out, nil
}

// filterInput is a resolved input: the surface to read, the device
// bounds it is meaningful within, and whether it referenced a standard
// input (which forces the full effects region during bounds building).
type filterInput struct {
	surface  *Pixmap
	bounds   IntRect
	standard bool
}

// getInput resolves one input selector to a concrete surface, converting
// it into the color space the requesting primitive operates in. A named
// reference with no stored result resolves to not-found, which the
// driver treats as a primitive-level failure.
func (ctx *FilterContext) getInput(in Input, interp ColorInterpolation) (filterInput, error) {
	fi, err := ctx.getInputRaw(in)
	if err != nil {
		return filterInput{}, err
	}
	surface, err := fi.surface.convertKind(interp.kind(), fi.bounds, ctx.alloc)
	if err != nil {
		return filterInput{}, err
	}
	fi.surface = surface
	return fi, nil
}

func (ctx *FilterContext) getInputRaw(in Input) (filterInput, error) {
	switch in.kind {
	case inputUnspecified:
		if ctx.lastResult != nil {
			return filterInput{surface: ctx.lastResult.Surface, bounds: ctx.lastResult.Bounds}, nil
		}
		return filterInput{surface: ctx.source, bounds: ctx.effectsRegion, standard: true}, nil

	case inputSourceGraphic:
		return filterInput{surface: ctx.source, bounds: ctx.effectsRegion, standard: true}, nil

	case inputSourceAlpha:
		alpha, err := ctx.SourceAlpha(ctx.effectsRegion)
		if err != nil {
			return filterInput{}, err
		}
		return filterInput{surface: alpha, bounds: ctx.effectsRegion, standard: true}, nil

	case inputBackgroundImage:
		bg, err := ctx.BackgroundImage()
		if err != nil {
			return filterInput{}, err
		}
		return filterInput{surface: bg, bounds: ctx.effectsRegion, standard: true}, nil

	case inputBackgroundAlpha:
		alpha, err := ctx.BackgroundAlpha(ctx.effectsRegion)
		if err != nil {
			return filterInput{}, err
		}
		return filterInput{surface: alpha, bounds: ctx.effectsRegion, standard: true}, nil

	case inputFillPaint:
		if ctx.fillPaint == nil {
			return filterInput{}, errInputNotFound
		}
		return filterInput{surface: ctx.fillPaint, bounds: ctx.effectsRegion, standard: true}, nil

	case inputStrokePaint:
		if ctx.strokePaint == nil {
			return filterInput{}, errInputNotFound
		}
		return filterInput{surface: ctx.strokePaint, bounds: ctx.effectsRegion, standard: true}, nil

	case inputNamed:
		out, ok := ctx.previousResults[in.name]
		if !ok {
			return filterInput{}, errInputNotFound
		}
		return filterInput{surface: out.Surface, bounds: out.Bounds}, nil

	default:
		return filterInput{}, errInvalidInput
	}
}

// newSurface allocates a transparent surface matching the source extent,
// in the given color space, through the context's allocator.
func (ctx *FilterContext) newSurface(kind SurfaceKind) (*Pixmap, error) {
	return newPixmap(ctx.source.width, ctx.source.height, kind, ctx.alloc)
}
