package svgfx

// Requirements records which side-input surfaces a primitive chain reads.
// The caller captures exactly the surfaces the analysis asks for before
// constructing the execution context.
type Requirements struct {
	SourceAlpha     bool
	BackgroundImage bool
	BackgroundAlpha bool
	FillPaint       bool
	StrokePaint     bool
}

// or unions two requirement sets.
func (r Requirements) or(o Requirements) Requirements {
	return Requirements{
		SourceAlpha:     r.SourceAlpha || o.SourceAlpha,
		BackgroundImage: r.BackgroundImage || o.BackgroundImage,
		BackgroundAlpha: r.BackgroundAlpha || o.BackgroundAlpha,
		FillPaint:       r.FillPaint || o.FillPaint,
		StrokePaint:     r.StrokePaint || o.StrokePaint,
	}
}

// fromInput returns the requirements implied by one input reference.
func requirementsFromInput(in Input) Requirements {
	switch in.kind {
	case inputSourceAlpha:
		return Requirements{SourceAlpha: true}
	case inputBackgroundImage:
		return Requirements{BackgroundImage: true}
	case inputBackgroundAlpha:
		return Requirements{BackgroundAlpha: true}
	case inputFillPaint:
		return Requirements{FillPaint: true}
	case inputStrokePaint:
		return Requirements{StrokePaint: true}
	default:
		return Requirements{}
	}
}

// NeedsBackground reports whether either background variant is required.
func (r Requirements) NeedsBackground() bool {
	return r.BackgroundImage || r.BackgroundAlpha
}

// AnalyzeRequirements computes the union of every primitive's declared
// input needs. It is pure: calling it twice, or on a permuted chain,
// yields the same result. Run it before capturing side inputs so only
// the surfaces it reports get assembled.
func AnalyzeRequirements(primitives []UserSpacePrimitive) Requirements {
	var reqs Requirements
	for i := range primitives {
		for _, in := range primitives[i].Params.inputList() {
			reqs = reqs.or(requirementsFromInput(in))
		}
	}
	return reqs
}
