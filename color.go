package svgfx

import "image/color"

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1]. Values are not premultiplied.
type RGBA struct {
	R, G, B, A float64
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// RGBA2 creates a color from RGBA components.
func RGBA2(r, g, b, a float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: a}
}

// Transparent is the fully transparent black color.
var Transparent = RGBA{}

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: uint8(clamp255(c.R * 255)),
		G: uint8(clamp255(c.G * 255)),
		B: uint8(clamp255(c.B * 255)),
		A: uint8(clamp255(c.A * 255)),
	}
}

// FromColor converts a standard color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return RGBA{}
	}
	// color.Color returns premultiplied components.
	fa := float64(a) / 65535
	return RGBA{
		R: float64(r) / 65535 / fa,
		G: float64(g) / 65535 / fa,
		B: float64(b) / 65535 / fa,
		A: fa,
	}
}

// premultiplied returns the color's premultiplied 8-bit pixel value.
func (c RGBA) premultiplied() pixel {
	a := clampUnit(c.A)
	return pixel{
		r: uint8(clampUnit(c.R)*a*255 + 0.5),
		g: uint8(clampUnit(c.G)*a*255 + 0.5),
		b: uint8(clampUnit(c.B)*a*255 + 0.5),
		a: uint8(a*255 + 0.5),
	}
}

func clamp255(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
