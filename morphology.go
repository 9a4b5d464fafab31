package svgfx

import "math"

// MorphologyOperator selects between thinning and thickening.
type MorphologyOperator int

const (
	// MorphologyErode keeps the per-channel minimum over the window.
	MorphologyErode MorphologyOperator = iota
	// MorphologyDilate keeps the per-channel maximum over the window.
	MorphologyDilate
)

func (op MorphologyOperator) String() string {
	if op == MorphologyDilate {
		return "dilate"
	}
	return "erode"
}

// Morphology erodes or dilates its input with a rectangular structuring
// element of the given user-space radii.
type Morphology struct {
	In       Input
	Operator MorphologyOperator
	RadiusX  float64
	RadiusY  float64
}

func (m *Morphology) Kind() string { return "feMorphology" }

func (m *Morphology) inputList() []Input { return []Input{m.In} }

func (m *Morphology) render(prim *UserSpacePrimitive, ctx *FilterContext) (FilterOutput, error) {
	if m.RadiusX < 0 || m.RadiusY < 0 {
		return FilterOutput{}, invalidParameter("negative morphology radius")
	}

	fi, err := ctx.getInput(m.In, prim.Interp)
	if err != nil {
		return FilterOutput{}, err
	}

	bb := newBoundsBuilder(ctx)
	bb.addInput(fi)
	bounds := bb.compute(prim)

	rxf, ryf := ctx.paffine.TransformDistance(m.RadiusX, m.RadiusY)
	rx := int(math.Abs(rxf) + 0.5)
	ry := int(math.Abs(ryf) + 0.5)

	surface, err := ctx.newSurface(fi.surface.kind)
	if err != nil {
		return FilterOutput{}, err
	}

	region := bounds.clipped
	dilate := m.Operator == MorphologyDilate
	for y := region.MinY; y < region.MaxY; y++ {
		for x := region.MinX; x < region.MaxX; x++ {
			var r, g, b, a uint8
			if dilate {
				r, g, b, a = 0, 0, 0, 0
			} else {
				r, g, b, a = 255, 255, 255, 255
			}

			y0, y1 := max(y-ry, region.MinY), min(y+ry, region.MaxY-1)
			x0, x1 := max(x-rx, region.MinX), min(x+rx, region.MaxX-1)
			for oy := y0; oy <= y1; oy++ {
				for ox := x0; ox <= x1; ox++ {
					px := fi.surface.at(ox, oy)
					if dilate {
						r, g, b, a = max(r, px.r), max(g, px.g), max(b, px.b), max(a, px.a)
					} else {
						r, g, b, a = min(r, px.r), min(g, px.g), min(b, px.b), min(a, px.a)
					}
				}
			}
			surface.setPixel(x, y, pixel{r: r, g: g, b: b, a: a})
		}
	}
	return FilterOutput{Surface: surface, Bounds: region}, nil
}
