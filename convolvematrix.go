package svgfx

import (
	"github.com/gogpu/svgfx/internal/kernel"
)

// ConvolveMatrix applies a general 2D convolution to its input. The
// kernel is given in row-major order and, per the filter effects model,
// is applied rotated by 180 degrees around the target cell.
type ConvolveMatrix struct {
	In      Input
	OrderX  int
	OrderY  int
	Kernel  []float64
	Divisor float64 // 0 means derive: kernel sum, or 1 when that is 0
	Bias    float64
	TargetX int // -1 means default floor(OrderX/2)
	TargetY int // -1 means default floor(OrderY/2)
	Edge    kernel.EdgeMode

	// PreserveAlpha convolves unpremultiplied color and passes alpha
	// through untouched.
	PreserveAlpha bool
}

func (c *ConvolveMatrix) Kind() string { return "feConvolveMatrix" }

func (c *ConvolveMatrix) inputList() []Input { return []Input{c.In} }

func (c *ConvolveMatrix) render(prim *UserSpacePrimitive, ctx *FilterContext) (FilterOutput, error) {
	if c.OrderX <= 0 || c.OrderY <= 0 {
		return FilterOutput{}, invalidParameter("convolve matrix order must be positive")
	}
	if len(c.Kernel) != c.OrderX*c.OrderY {
		return FilterOutput{}, invalidParameter("kernel matrix size does not match order")
	}
	targetX := c.TargetX
	if targetX < 0 {
		targetX = c.OrderX / 2
	}
	targetY := c.TargetY
	if targetY < 0 {
		targetY = c.OrderY / 2
	}
	if targetX >= c.OrderX || targetY >= c.OrderY {
		return FilterOutput{}, invalidParameter("convolve matrix target outside kernel")
	}
	divisor := c.Divisor
	if divisor == 0 {
		for _, v := range c.Kernel {
			divisor += v
		}
		if divisor == 0 {
			divisor = 1
		}
	}

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

	region := bounds.clipped
	for y := region.MinY; y < region.MaxY; y++ {
		for x := region.MinX; x < region.MaxX; x++ {
			var sr, sg, sb, sa float64
			for i := 0; i < c.OrderY; i++ {
				for j := 0; j < c.OrderX; j++ {
					sx := x - targetX + j
					sy := y - targetY + i
					px, inside := c.sample(fi.surface, region, sx, sy)
					if !inside {
						continue
					}
					w := c.Kernel[(c.OrderY-i-1)*c.OrderX+(c.OrderX-j-1)]

					if c.PreserveAlpha {
						if px.a != 0 {
							sr += float64(unpremul(px.r, px.a)) * w
							sg += float64(unpremul(px.g, px.a)) * w
							sb += float64(unpremul(px.b, px.a)) * w
						}
					} else {
						sr += float64(px.r) * w
						sg += float64(px.g) * w
						sb += float64(px.b) * w
						sa += float64(px.a) * w
					}
				}
			}

			if c.PreserveAlpha {
				a := fi.surface.at(x, y).a
				surface.setPixel(x, y, pixel{
					r: premul(clampChannel(sr/divisor+c.Bias*255), a),
					g: premul(clampChannel(sg/divisor+c.Bias*255), a),
					b: premul(clampChannel(sb/divisor+c.Bias*255), a),
					a: a,
				})
			} else {
				a := clampChannel(sa/divisor + c.Bias*255)
				surface.setPixel(x, y, pixel{
					r: minu8(clampChannel(sr/divisor+c.Bias*255), a),
					g: minu8(clampChannel(sg/divisor+c.Bias*255), a),
					b: minu8(clampChannel(sb/divisor+c.Bias*255), a),
					a: a,
				})
			}
		}
	}
	return FilterOutput{Surface: surface, Bounds: region}, nil
}

// sample reads one source pixel with the configured edge behavior,
// relative to the primitive's bounds rectangle.
func (c *ConvolveMatrix) sample(p *Pixmap, bounds IntRect, x, y int) (pixel, bool) {
	switch c.Edge {
	case kernel.EdgeDuplicate:
		return p.atClamped(x, y, bounds), true
	case kernel.EdgeWrap:
		w, h := bounds.Width(), bounds.Height()
		return p.at(bounds.MinX+mod(x-bounds.MinX, w), bounds.MinY+mod(y-bounds.MinY, h)), true
	default:
		if !bounds.Contains(x, y) {
			return pixel{}, false
		}
		return p.at(x, y), true
	}
}

func clampChannel(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}

func minu8(a, b uint8) uint8 {
	if a < b {
		return a
	}
	return b
}
