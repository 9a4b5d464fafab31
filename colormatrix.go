package svgfx

import "math"

// ColorMatrix multiplies each pixel's unpremultiplied [R G B A 1] vector
// by a 4x5 matrix. The saturate, hueRotate and luminanceToAlpha variants
// are constructors that build the corresponding matrix.
type ColorMatrix struct {
	In     Input
	Matrix [20]float64
}

// NewColorMatrix builds the matrix variant from 20 row-major values.
func NewColorMatrix(in Input, values [20]float64) *ColorMatrix {
	return &ColorMatrix{In: in, Matrix: values}
}

// ColorMatrixSaturate builds the saturate variant. s=1 is the identity,
// s=0 grayscale.
func ColorMatrixSaturate(in Input, s float64) *ColorMatrix {
	return &ColorMatrix{In: in, Matrix: [20]float64{
		0.213 + 0.787*s, 0.715 - 0.715*s, 0.072 - 0.072*s, 0, 0,
		0.213 - 0.213*s, 0.715 + 0.285*s, 0.072 - 0.072*s, 0, 0,
		0.213 - 0.213*s, 0.715 - 0.715*s, 0.072 + 0.928*s, 0, 0,
		0, 0, 0, 1, 0,
	}}
}

// ColorMatrixHueRotate builds the hueRotate variant for an angle in
// radians.
func ColorMatrixHueRotate(in Input, angle float64) *ColorMatrix {
	c := math.Cos(angle)
	s := math.Sin(angle)
	return &ColorMatrix{In: in, Matrix: [20]float64{
		0.213 + c*0.787 - s*0.213, 0.715 - c*0.715 - s*0.715, 0.072 - c*0.072 + s*0.928, 0, 0,
		0.213 - c*0.213 + s*0.143, 0.715 + c*0.285 + s*0.140, 0.072 - c*0.072 - s*0.283, 0, 0,
		0.213 - c*0.213 - s*0.787, 0.715 - c*0.715 + s*0.715, 0.072 + c*0.928 + s*0.072, 0, 0,
		0, 0, 0, 1, 0,
	}}
}

// ColorMatrixLuminanceToAlpha builds the luminanceToAlpha variant: the
// output alpha is the input's relative luminance and the color channels
// are zeroed.
func ColorMatrixLuminanceToAlpha(in Input) *ColorMatrix {
	return &ColorMatrix{In: in, Matrix: [20]float64{
		0, 0, 0, 0, 0,
		0, 0, 0, 0, 0,
		0, 0, 0, 0, 0,
		0.2126, 0.7152, 0.0722, 0, 0,
	}}
}

func (c *ColorMatrix) Kind() string { return "feColorMatrix" }

func (c *ColorMatrix) inputList() []Input { return []Input{c.In} }

func (c *ColorMatrix) render(prim *UserSpacePrimitive, ctx *FilterContext) (FilterOutput, error) {
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

	m := &c.Matrix
	for y := bounds.clipped.MinY; y < bounds.clipped.MaxY; y++ {
		for x := bounds.clipped.MinX; x < bounds.clipped.MaxX; x++ {
			px := fi.surface.at(x, y)

			var r, g, b float64
			a := float64(px.a) / 255
			if px.a != 0 {
				r = float64(px.r) / float64(px.a)
				g = float64(px.g) / float64(px.a)
				b = float64(px.b) / float64(px.a)
			}

			nr := clampUnit(m[0]*r + m[1]*g + m[2]*b + m[3]*a + m[4])
			ng := clampUnit(m[5]*r + m[6]*g + m[7]*b + m[8]*a + m[9])
			nb := clampUnit(m[10]*r + m[11]*g + m[12]*b + m[13]*a + m[14])
			na := clampUnit(m[15]*r + m[16]*g + m[17]*b + m[18]*a + m[19])

			surface.setPixel(x, y, pixel{
				r: quantize(nr * na),
				g: quantize(ng * na),
				b: quantize(nb * na),
				a: quantize(na),
			})
		}
	}
	return FilterOutput{Surface: surface, Bounds: bounds.clipped}, nil
}
