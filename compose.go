package svgfx

import "math"

// CompositeOperator selects the Porter-Duff operator for feComposite.
type CompositeOperator int

const (
	// CompositeOver places the first input over the second.
	CompositeOver CompositeOperator = iota
	// CompositeIn keeps the first input where the second is opaque.
	CompositeIn
	// CompositeOut keeps the first input where the second is transparent.
	CompositeOut
	// CompositeAtop keeps the first input inside the second, with the
	// second showing through elsewhere.
	CompositeAtop
	// CompositeXor keeps each input only where the other is transparent.
	CompositeXor
	// CompositeArithmetic combines the inputs with the k1..k4 polynomial.
	CompositeArithmetic
)

func (op CompositeOperator) String() string {
	switch op {
	case CompositeOver:
		return "over"
	case CompositeIn:
		return "in"
	case CompositeOut:
		return "out"
	case CompositeAtop:
		return "atop"
	case CompositeXor:
		return "xor"
	case CompositeArithmetic:
		return "arithmetic"
	default:
		return "unknown"
	}
}

// porterDuff applies op to one premultiplied channel pair in [0, 1].
// cs/as are the source (first input), cd/ad the destination (second input).
func porterDuff(op CompositeOperator, cs, as, cd, ad float64) float64 {
	switch op {
	case CompositeOver:
		return cs + cd*(1-as)
	case CompositeIn:
		return cs * ad
	case CompositeOut:
		return cs * (1 - ad)
	case CompositeAtop:
		return cs*ad + cd*(1-as)
	case CompositeXor:
		return cs*(1-ad) + cd*(1-as)
	default:
		return cs + cd*(1-as)
	}
}

// compositePixmaps composes src over-style onto dst inside region using a
// Porter-Duff operator and returns the result as a new surface. Pixels
// outside the region stay transparent.
func compositePixmaps(src, dst *Pixmap, op CompositeOperator, region IntRect, alloc Allocator) (*Pixmap, error) {
	out, err := newPixmap(src.width, src.height, src.kind, alloc)
	if err != nil {
		return nil, err
	}
	region, ok := region.Intersect(out.Bounds())
	if !ok {
		return out, nil
	}
	for y := region.MinY; y < region.MaxY; y++ {
		for x := region.MinX; x < region.MaxX; x++ {
			s := src.at(x, y)
			d := dst.at(x, y)
			sa := float64(s.a) / 255
			da := float64(d.a) / 255
			out.setPixel(x, y, pixel{
				r: quantize(porterDuff(op, float64(s.r)/255, sa, float64(d.r)/255, da)),
				g: quantize(porterDuff(op, float64(s.g)/255, sa, float64(d.g)/255, da)),
				b: quantize(porterDuff(op, float64(s.b)/255, sa, float64(d.b)/255, da)),
				a: quantize(porterDuff(op, sa, sa, da, da)),
			})
		}
	}
	return out, nil
}

// compositeArithmetic evaluates k1*i1*i2 + k2*i1 + k3*i2 + k4 per channel
// on normalized premultiplied values. The alpha result is clamped to
// [0, 1] and color channels are clamped to [0, alpha] so the output stays
// validly premultiplied.
func compositeArithmetic(src, dst *Pixmap, k1, k2, k3, k4 float64, region IntRect, alloc Allocator) (*Pixmap, error) {
	out, err := newPixmap(src.width, src.height, src.kind, alloc)
	if err != nil {
		return nil, err
	}
	region, ok := region.Intersect(out.Bounds())
	if !ok {
		return out, nil
	}
	compute := func(i1, i2 float64) float64 {
		return k1*i1*i2 + k2*i1 + k3*i2 + k4
	}
	for y := region.MinY; y < region.MaxY; y++ {
		for x := region.MinX; x < region.MaxX; x++ {
			s := src.at(x, y)
			d := dst.at(x, y)
			oa := clampUnit(compute(float64(s.a)/255, float64(d.a)/255))
			channel := func(i1, i2 uint8) uint8 {
				v := compute(float64(i1)/255, float64(i2)/255)
				if v < 0 {
					v = 0
				} else if v > oa {
					v = oa
				}
				return uint8(v*255 + 0.5)
			}
			out.setPixel(x, y, pixel{
				r: channel(s.r, d.r),
				g: channel(s.g, d.g),
				b: channel(s.b, d.b),
				a: uint8(oa*255 + 0.5),
			})
		}
	}
	return out, nil
}

// BlendMode selects the blending function for feBlend.
type BlendMode int

const (
	BlendNormal BlendMode = iota
	BlendMultiply
	BlendScreen
	BlendDarken
	BlendLighten
	BlendOverlay
	BlendColorDodge
	BlendColorBurn
	BlendHardLight
	BlendSoftLight
	BlendDifference
	BlendExclusion
	BlendHue
	BlendSaturation
	BlendColor
	BlendLuminosity
)

var blendModeNames = map[BlendMode]string{
	BlendNormal:     "normal",
	BlendMultiply:   "multiply",
	BlendScreen:     "screen",
	BlendDarken:     "darken",
	BlendLighten:    "lighten",
	BlendOverlay:    "overlay",
	BlendColorDodge: "color-dodge",
	BlendColorBurn:  "color-burn",
	BlendHardLight:  "hard-light",
	BlendSoftLight:  "soft-light",
	BlendDifference: "difference",
	BlendExclusion:  "exclusion",
	BlendHue:        "hue",
	BlendSaturation: "saturation",
	BlendColor:      "color",
	BlendLuminosity: "luminosity",
}

func (m BlendMode) String() string {
	if s, ok := blendModeNames[m]; ok {
		return s
	}
	return "unknown"
}

// ParseBlendMode maps a CSS blend mode keyword to a BlendMode.
func ParseBlendMode(s string) (BlendMode, bool) {
	for m, name := range blendModeNames {
		if name == s {
			return m, true
		}
	}
	return BlendNormal, false
}

// blendSeparable applies a separable blend function to one pair of
// unpremultiplied channels in [0, 1].
func blendSeparable(mode BlendMode, cb, cs float64) float64 {
	switch mode {
	case BlendNormal:
		return cs
	case BlendMultiply:
		return cb * cs
	case BlendScreen:
		return cb + cs - cb*cs
	case BlendDarken:
		return math.Min(cb, cs)
	case BlendLighten:
		return math.Max(cb, cs)
	case BlendOverlay:
		return blendSeparable(BlendHardLight, cs, cb)
	case BlendColorDodge:
		if cb == 0 {
			return 0
		}
		if cs == 1 {
			return 1
		}
		return math.Min(1, cb/(1-cs))
	case BlendColorBurn:
		if cb == 1 {
			return 1
		}
		if cs == 0 {
			return 0
		}
		return 1 - math.Min(1, (1-cb)/cs)
	case BlendHardLight:
		if cs <= 0.5 {
			return cb * 2 * cs
		}
		return blendSeparable(BlendScreen, cb, 2*cs-1)
	case BlendSoftLight:
		if cs <= 0.5 {
			return cb - (1-2*cs)*cb*(1-cb)
		}
		var d float64
		if cb <= 0.25 {
			d = ((16*cb-12)*cb + 4) * cb
		} else {
			d = math.Sqrt(cb)
		}
		return cb + (2*cs-1)*(d-cb)
	case BlendDifference:
		return math.Abs(cb - cs)
	case BlendExclusion:
		return cb + cs - 2*cb*cs
	default:
		return cs
	}
}

type blendColor struct {
	r, g, b float64
}

func lum(c blendColor) float64 {
	return 0.3*c.r + 0.59*c.g + 0.11*c.b
}

func clipColor(c blendColor) blendColor {
	l := lum(c)
	n := math.Min(c.r, math.Min(c.g, c.b))
	x := math.Max(c.r, math.Max(c.g, c.b))
	if n < 0 {
		c.r = l + (c.r-l)*l/(l-n)
		c.g = l + (c.g-l)*l/(l-n)
		c.b = l + (c.b-l)*l/(l-n)
	}
	if x > 1 {
		c.r = l + (c.r-l)*(1-l)/(x-l)
		c.g = l + (c.g-l)*(1-l)/(x-l)
		c.b = l + (c.b-l)*(1-l)/(x-l)
	}
	return c
}

func setLum(c blendColor, l float64) blendColor {
	d := l - lum(c)
	return clipColor(blendColor{r: c.r + d, g: c.g + d, b: c.b + d})
}

func sat(c blendColor) float64 {
	return math.Max(c.r, math.Max(c.g, c.b)) - math.Min(c.r, math.Min(c.g, c.b))
}

func setSat(c blendColor, s float64) blendColor {
	vals := []*float64{&c.r, &c.g, &c.b}
	// Order the channel pointers min, mid, max.
	if *vals[0] > *vals[1] {
		vals[0], vals[1] = vals[1], vals[0]
	}
	if *vals[1] > *vals[2] {
		vals[1], vals[2] = vals[2], vals[1]
	}
	if *vals[0] > *vals[1] {
		vals[0], vals[1] = vals[1], vals[0]
	}
	cmin, cmid, cmax := vals[0], vals[1], vals[2]
	if *cmax > *cmin {
		*cmid = (*cmid - *cmin) * s / (*cmax - *cmin)
		*cmax = s
	} else {
		*cmid = 0
		*cmax = 0
	}
	*cmin = 0
	return c
}

// blendNonSeparable applies hue, saturation, color, or luminosity blending
// to a pair of unpremultiplied colors.
func blendNonSeparable(mode BlendMode, cb, cs blendColor) blendColor {
	switch mode {
	case BlendHue:
		return setLum(setSat(cs, sat(cb)), lum(cb))
	case BlendSaturation:
		return setLum(setSat(cb, sat(cs)), lum(cb))
	case BlendColor:
		return setLum(cs, lum(cb))
	case BlendLuminosity:
		return setLum(cb, lum(cs))
	default:
		return cs
	}
}

// blendPixmaps blends src (the first input) onto dst (the backdrop) inside
// region and returns a new surface. The result is composited source-over
// per the CSS compositing model.
func blendPixmaps(mode BlendMode, src, dst *Pixmap, region IntRect, alloc Allocator) (*Pixmap, error) {
	out, err := newPixmap(src.width, src.height, src.kind, alloc)
	if err != nil {
		return nil, err
	}
	region, ok := region.Intersect(out.Bounds())
	if !ok {
		return out, nil
	}
	nonSep := mode == BlendHue || mode == BlendSaturation || mode == BlendColor || mode == BlendLuminosity
	for y := region.MinY; y < region.MaxY; y++ {
		for x := region.MinX; x < region.MaxX; x++ {
			s := src.at(x, y)
			d := dst.at(x, y)
			as := float64(s.a) / 255
			ab := float64(d.a) / 255

			// Unpremultiply both pixels for the blend function.
			var cs, cb blendColor
			if s.a != 0 {
				cs = blendColor{
					r: float64(s.r) / float64(s.a),
					g: float64(s.g) / float64(s.a),
					b: float64(s.b) / float64(s.a),
				}
			}
			if d.a != 0 {
				cb = blendColor{
					r: float64(d.r) / float64(d.a),
					g: float64(d.g) / float64(d.a),
					b: float64(d.b) / float64(d.a),
				}
			}

			var bl blendColor
			if nonSep {
				bl = blendNonSeparable(mode, cb, cs)
			} else {
				bl = blendColor{
					r: blendSeparable(mode, cb.r, cs.r),
					g: blendSeparable(mode, cb.g, cs.g),
					b: blendSeparable(mode, cb.b, cs.b),
				}
			}

			// Co = as*(1-ab)*Cs + as*ab*B(Cb,Cs) + (1-as)*ab*Cb,
			// already premultiplied by the output alpha.
			co := func(csv, blv, cbv float64) uint8 {
				return quantize(as*(1-ab)*csv + as*ab*blv + (1-as)*ab*cbv)
			}
			out.setPixel(x, y, pixel{
				r: co(cs.r, bl.r, cb.r),
				g: co(cs.g, bl.g, cb.g),
				b: co(cs.b, bl.b, cb.b),
				a: quantize(as + ab*(1-as)),
			})
		}
	}
	return out, nil
}

// quantize converts a [0, 1] value to an 8-bit channel with clamping.
func quantize(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
