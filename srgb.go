package svgfx

import "math"

// Conversion tables between sRGB-encoded and linear-light 8-bit values.
// Built once at startup; both directions are plain 256-entry lookups.
var (
	srgbToLinearTab [256]uint8
	linearToSRGBTab [256]uint8
)

func init() {
	for i := 0; i < 256; i++ {
		c := float64(i) / 255
		srgbToLinearTab[i] = uint8(math.Round(srgbToLinear(c) * 255))
		linearToSRGBTab[i] = uint8(math.Round(linearToSRGB(c) * 255))
	}
}

// srgbToLinear undoes the sRGB transfer function for one channel in [0, 1].
func srgbToLinear(c float64) float64 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// linearToSRGB applies the sRGB transfer function for one channel in [0, 1].
func linearToSRGB(c float64) float64 {
	if c <= 0.0031308 {
		return c * 12.92
	}
	return 1.055*math.Pow(c, 1.0/2.4) - 0.055
}

// convertKind returns a surface whose pixels are encoded in the requested
// color space, converting only inside region. Alpha-only surfaces and
// surfaces already in the requested space are returned unchanged.
//
// The conversion unpremultiplies each pixel, maps the color channels
// through the transfer table, and premultiplies again. Alpha is preserved
// exactly.
func (p *Pixmap) convertKind(kind SurfaceKind, region IntRect, alloc Allocator) (*Pixmap, error) {
	if p.kind == kind || p.kind == KindAlphaOnly || kind == KindAlphaOnly {
		return p, nil
	}

	var tab *[256]uint8
	switch kind {
	case KindLinearRGB:
		tab = &srgbToLinearTab
	case KindSRGB:
		tab = &linearToSRGBTab
	default:
		return p, nil
	}

	out, err := p.clone(alloc)
	if err != nil {
		return nil, err
	}
	out.kind = kind

	region, ok := region.Intersect(p.Bounds())
	if !ok {
		return out, nil
	}
	for y := region.MinY; y < region.MaxY; y++ {
		for x := region.MinX; x < region.MaxX; x++ {
			px := p.at(x, y)
			if px.a == 0 {
				out.setPixel(x, y, pixel{})
				continue
			}
			out.setPixel(x, y, pixel{
				r: premul(tab[unpremul(px.r, px.a)], px.a),
				g: premul(tab[unpremul(px.g, px.a)], px.a),
				b: premul(tab[unpremul(px.b, px.a)], px.a),
				a: px.a,
			})
		}
	}
	return out, nil
}
