package svgfx

import "math"

// TransferKind selects one of the SVG component transfer function types.
type TransferKind int

const (
	// TransferIdentity leaves the channel unchanged.
	TransferIdentity TransferKind = iota
	// TransferTable interpolates linearly between table values.
	TransferTable
	// TransferDiscrete steps between table values.
	TransferDiscrete
	// TransferLinear applies slope*c + intercept.
	TransferLinear
	// TransferGamma applies amplitude*c^exponent + offset.
	TransferGamma
)

// Transfer is one channel's transfer function.
type Transfer struct {
	Kind  TransferKind
	Table []float64

	Slope     float64
	Intercept float64

	Amplitude float64
	Exponent  float64
	Offset    float64
}

// eval applies the function to one unpremultiplied channel value in
// [0, 1]. The result is clamped back to [0, 1].
func (t Transfer) eval(c float64) float64 {
	switch t.Kind {
	case TransferTable:
		n := len(t.Table)
		if n == 0 {
			return c
		}
		if n == 1 {
			return clampUnit(t.Table[0])
		}
		pos := c * float64(n-1)
		k := int(pos)
		if k >= n-1 {
			return clampUnit(t.Table[n-1])
		}
		return clampUnit(t.Table[k] + (pos-float64(k))*(t.Table[k+1]-t.Table[k]))
	case TransferDiscrete:
		n := len(t.Table)
		if n == 0 {
			return c
		}
		k := int(c * float64(n))
		if k >= n {
			k = n - 1
		}
		return clampUnit(t.Table[k])
	case TransferLinear:
		return clampUnit(t.Slope*c + t.Intercept)
	case TransferGamma:
		return clampUnit(t.Amplitude*math.Pow(c, t.Exponent) + t.Offset)
	default:
		return c
	}
}

// lut bakes the function into a 256-entry lookup table.
func (t Transfer) lut() [256]uint8 {
	var out [256]uint8
	if t.Kind == TransferIdentity {
		for i := range out {
			out[i] = uint8(i)
		}
		return out
	}
	for i := range out {
		out[i] = uint8(t.eval(float64(i)/255)*255 + 0.5)
	}
	return out
}

// ComponentTransfer remaps each color channel through its own transfer
// function, operating on unpremultiplied values.
type ComponentTransfer struct {
	In Input
	R  Transfer
	G  Transfer
	B  Transfer
	A  Transfer
}

func (c *ComponentTransfer) Kind() string { return "feComponentTransfer" }

func (c *ComponentTransfer) inputList() []Input { return []Input{c.In} }

func (c *ComponentTransfer) render(prim *UserSpacePrimitive, ctx *FilterContext) (FilterOutput, error) {
	fi, err := ctx.getInput(c.In, prim.Interp)
	if err != nil {
		return FilterOutput{}, err
	}

	bb := newBoundsBuilder(ctx)
	bb.addInput(fi)
	bounds := bb.compute(prim)

	surface, err := ctx.newSurface(fi.surface.kind)
	if err != nil {
		return FilterOutput{}, err
	}

	rl, gl, bl, al := c.R.lut(), c.G.lut(), c.B.lut(), c.A.lut()
	for y := bounds.clipped.MinY; y < bounds.clipped.MaxY; y++ {
		for x := bounds.clipped.MinX; x < bounds.clipped.MaxX; x++ {
			px := fi.surface.at(x, y)

			var r, g, b uint8
			if px.a != 0 {
				r = unpremul(px.r, px.a)
				g = unpremul(px.g, px.a)
				b = unpremul(px.b, px.a)
			}
			na := al[px.a]
			surface.setPixel(x, y, pixel{
				r: premul(rl[r], na),
				g: premul(gl[g], na),
				b: premul(bl[b], na),
				a: na,
			})
		}
	}
	return FilterOutput{Surface: surface, Bounds: bounds.clipped}, nil
}
