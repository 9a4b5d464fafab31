package svgfx

import (
	"github.com/gogpu/svgfx/internal/noise"
)

// TurbulenceType selects how noise octaves combine.
type TurbulenceType int

const (
	// TurbulenceTurbulence sums absolute octave values.
	TurbulenceTurbulence TurbulenceType = iota
	// TurbulenceFractalNoise sums signed octave values.
	TurbulenceFractalNoise
)

func (t TurbulenceType) String() string {
	if t == TurbulenceFractalNoise {
		return "fractalNoise"
	}
	return "turbulence"
}

// Turbulence synthesizes Perlin noise over the primitive subregion. It
// reads no inputs; each channel gets its own gradient table so the four
// channels decorrelate.
type Turbulence struct {
	BaseFrequencyX float64
	BaseFrequencyY float64
	NumOctaves     int
	Seed           int32
	StitchTiles    bool
	Type           TurbulenceType
}

func (t *Turbulence) Kind() string { return "feTurbulence" }

func (t *Turbulence) inputList() []Input { return nil }

func (t *Turbulence) render(prim *UserSpacePrimitive, ctx *FilterContext) (FilterOutput, error) {
	if t.BaseFrequencyX < 0 || t.BaseFrequencyY < 0 {
		return FilterOutput{}, invalidParameter("negative baseFrequency")
	}

	bounds := newBoundsBuilder(ctx).compute(prim)
	region := bounds.clipped

	inv, ok := ctx.paffine.Invert()
	if !ok {
		return FilterOutput{}, invalidParameter("primitive transform is not invertible")
	}

	gen := noise.NewGenerator(t.Seed)

	// The stitch tile is the subregion expressed in noise space.
	tile := inv.TransformRect(region.Rect())
	eval := noise.Turbulence{
		Generator:  gen,
		BaseFreqX:  t.BaseFrequencyX,
		BaseFreqY:  t.BaseFrequencyY,
		NumOctaves: t.NumOctaves,
		FractalSum: t.Type == TurbulenceFractalNoise,
		Stitch:     t.StitchTiles,
		TileX:      tile.MinX,
		TileY:      tile.MinY,
		TileWidth:  tile.Width(),
		TileHeight: tile.Height(),
	}

	surface, err := ctx.newSurface(prim.Interp.kind())
	if err != nil {
		return FilterOutput{}, err
	}

	fractal := t.Type == TurbulenceFractalNoise
	for y := region.MinY; y < region.MaxY; y++ {
		for x := region.MinX; x < region.MaxX; x++ {
			px, py := inv.TransformPoint(float64(x), float64(y))

			var ch [4]float64
			for i := 0; i < 4; i++ {
				v := eval.Eval(i, px, py)
				if fractal {
					// fractalNoise ranges over [-1, 1].
					v = (v + 1) / 2
				}
				ch[i] = clampUnit(v)
			}

			a := ch[3]
			surface.setPixel(x, y, pixel{
				r: quantize(ch[0] * a),
				g: quantize(ch[1] * a),
				b: quantize(ch[2] * a),
				a: quantize(a),
			})
		}
	}
	return FilterOutput{Surface: surface, Bounds: region}, nil
}
