package svgfx

import "math"

// ColorChannel names one channel of a surface, used by the displacement
// map's channel selectors.
type ColorChannel int

const (
	ChannelR ColorChannel = iota
	ChannelG
	ChannelB
	ChannelA
)

func (c ColorChannel) String() string {
	switch c {
	case ChannelR:
		return "R"
	case ChannelG:
		return "G"
	case ChannelB:
		return "B"
	default:
		return "A"
	}
}

// DisplacementMap moves each pixel of its first input by an offset read
// from the second input's selected channels: a channel value of 0.5
// means no displacement, 0 and 1 displace by -Scale/2 and +Scale/2.
type DisplacementMap struct {
	In       Input
	In2      Input
	Scale    float64
	XChannel ColorChannel
	YChannel ColorChannel
}

func (d *DisplacementMap) Kind() string { return "feDisplacementMap" }

func (d *DisplacementMap) inputList() []Input { return []Input{d.In, d.In2} }

func (d *DisplacementMap) render(prim *UserSpacePrimitive, ctx *FilterContext) (FilterOutput, error) {
	fi1, err := ctx.getInput(d.In, prim.Interp)
	if err != nil {
		return FilterOutput{}, err
	}
	fi2, err := ctx.getInput(d.In2, prim.Interp)
	if err != nil {
		return FilterOutput{}, err
	}

	// Only the first input participates in the bounds; the map merely
	// steers the sampling.
	bb := newBoundsBuilder(ctx)
	bb.addInput(fi1)
	bounds := bb.compute(prim)

	sx, sy := ctx.paffine.TransformDistance(d.Scale, d.Scale)

	surface, err := ctx.newSurface(fi1.surface.kind)
	if err != nil {
		return FilterOutput{}, err
	}

	region := bounds.clipped
	for y := region.MinY; y < region.MaxY; y++ {
		for x := region.MinX; x < region.MaxX; x++ {
			mp := fi2.surface.at(x, y)

			dx := channelValue(mp, d.XChannel) - 0.5
			dy := channelValue(mp, d.YChannel) - 0.5
			// Floor keeps the rounding direction uniform for negative
			// displacements instead of truncating toward zero.
			ox := x + int(math.Floor(sx*dx))
			oy := y + int(math.Floor(sy*dy))

			surface.setPixel(x, y, fi1.surface.atOrTransparent(ox, oy, region))
		}
	}
	return FilterOutput{Surface: surface, Bounds: region}, nil
}

// channelValue returns the unpremultiplied channel value in [0, 1].
func channelValue(px pixel, ch ColorChannel) float64 {
	if ch == ChannelA {
		return float64(px.a) / 255
	}
	if px.a == 0 {
		return 0
	}
	var c uint8
	switch ch {
	case ChannelR:
		c = px.r
	case ChannelG:
		c = px.g
	default:
		c = px.b
	}
	return float64(unpremul(c, px.a)) / 255
}
