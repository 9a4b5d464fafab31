// Package noise implements the Perlin noise generator defined by the SVG
// specification for the feTurbulence primitive, including the lattice
// setup from the spec's pseudo-random number generator and the tile
// stitching adjustments.
package noise

import "math"

// Park-Miller minimal standard generator constants.
const (
	randM = 2147483647 // 2**31 - 1
	randA = 16807      // 7**5, primitive root of m
	randQ = 127773     // m / a
	randR = 2836       // m % a
)

const (
	bSize   = 0x100
	bMask   = 0xff
	perlinN = 0x1000
)

// setupSeed normalizes a seed into the generator's valid range.
func setupSeed(seed int32) int32 {
	if seed <= 0 {
		seed = -(seed % (randM - 1)) + 1
	}
	if seed > randM-1 {
		seed = randM - 1
	}
	return seed
}

// random advances the generator one step.
func random(seed int32) int32 {
	result := randA*(seed%randQ) - randR*(seed/randQ)
	if result <= 0 {
		result += randM
	}
	return result
}

// StitchInfo carries the lattice wrap points used to make noise tiles
// seamless. Values double per octave.
type StitchInfo struct {
	Width, Height int32
	WrapX, WrapY  int32
}

// Generator holds the shuffled lattice and per-channel gradients for one
// seed. It is safe for concurrent reads after construction.
type Generator struct {
	latticeSelector [bSize + bSize + 2]int
	gradient        [4][bSize + bSize + 2][2]float64
}

// NewGenerator builds the lattice for the given seed, following the SVG
// specification's initialization exactly so output matches the reference
// implementation pixel for pixel.
func NewGenerator(seed int32) *Generator {
	g := &Generator{}
	s := setupSeed(seed)

	for k := 0; k < 4; k++ {
		for i := 0; i < bSize; i++ {
			g.latticeSelector[i] = i
			for j := 0; j < 2; j++ {
				s = random(s)
				g.gradient[k][i][j] = float64((s%(bSize+bSize))-bSize) / bSize
			}
			gx, gy := g.gradient[k][i][0], g.gradient[k][i][1]
			norm := math.Sqrt(gx*gx + gy*gy)
			if norm != 0 {
				g.gradient[k][i][0] = gx / norm
				g.gradient[k][i][1] = gy / norm
			}
		}
	}

	for i := bSize - 1; i > 0; i-- {
		k := g.latticeSelector[i]
		s = random(s)
		j := int(s) % bSize
		g.latticeSelector[i] = g.latticeSelector[j]
		g.latticeSelector[j] = k
	}

	for i := 0; i < bSize+2; i++ {
		g.latticeSelector[bSize+i] = g.latticeSelector[i]
		for k := 0; k < 4; k++ {
			g.gradient[k][bSize+i][0] = g.gradient[k][i][0]
			g.gradient[k][bSize+i][1] = g.gradient[k][i][1]
		}
	}
	return g
}

func sCurve(t float64) float64 { return t * t * (3 - 2*t) }

func lerp(t, a, b float64) float64 { return a + t*(b-a) }

// noise2 evaluates one octave of 2D gradient noise for a color channel.
func (g *Generator) noise2(channel int, x, y float64, stitch *StitchInfo) float64 {
	t := x + perlinN
	bx0 := int32(t)
	bx1 := bx0 + 1
	rx0 := t - math.Floor(t)
	rx1 := rx0 - 1

	t = y + perlinN
	by0 := int32(t)
	by1 := by0 + 1
	ry0 := t - math.Floor(t)
	ry1 := ry0 - 1

	if stitch != nil {
		if bx0 >= stitch.WrapX {
			bx0 -= stitch.Width
		}
		if bx1 >= stitch.WrapX {
			bx1 -= stitch.Width
		}
		if by0 >= stitch.WrapY {
			by0 -= stitch.Height
		}
		if by1 >= stitch.WrapY {
			by1 -= stitch.Height
		}
	}

	i := g.latticeSelector[bx0&bMask]
	j := g.latticeSelector[bx1&bMask]
	b00 := g.latticeSelector[i+int(by0&bMask)]
	b10 := g.latticeSelector[j+int(by0&bMask)]
	b01 := g.latticeSelector[i+int(by1&bMask)]
	b11 := g.latticeSelector[j+int(by1&bMask)]

	sx := sCurve(rx0)
	sy := sCurve(ry0)

	q := &g.gradient[channel][b00]
	u := rx0*q[0] + ry0*q[1]
	q = &g.gradient[channel][b10]
	v := rx1*q[0] + ry0*q[1]
	a := lerp(sx, u, v)

	q = &g.gradient[channel][b01]
	u = rx0*q[0] + ry1*q[1]
	q = &g.gradient[channel][b11]
	v = rx1*q[0] + ry1*q[1]
	b := lerp(sx, u, v)

	return lerp(sy, a, b)
}

// Turbulence evaluates the octave sum for one color channel at a point
// in noise space. When fractalSum is true octaves sum signed (the
// fractalNoise type); otherwise absolute values sum (the turbulence
// type). Stitching, when enabled, snaps the base frequency to the tile
// and wraps lattice coordinates so tile edges meet seamlessly.
type Turbulence struct {
	Generator  *Generator
	BaseFreqX  float64
	BaseFreqY  float64
	NumOctaves int
	FractalSum bool
	Stitch     bool
	TileX      float64
	TileY      float64
	TileWidth  float64
	TileHeight float64
}

// Eval computes the turbulence value for channel (0=R, 1=G, 2=B, 3=A) at
// the point (x, y) in the caller's noise coordinate space.
func (t *Turbulence) Eval(channel int, x, y float64) float64 {
	fx, fy := t.BaseFreqX, t.BaseFreqY

	var stitch *StitchInfo
	if t.Stitch {
		// Snap each base frequency to a value that fits a whole number
		// of periods into the tile, picking the closer of floor/ceil.
		if fx != 0 {
			lo := math.Floor(t.TileWidth*fx) / t.TileWidth
			hi := math.Ceil(t.TileWidth*fx) / t.TileWidth
			if fx/lo < hi/fx {
				fx = lo
			} else {
				fx = hi
			}
		}
		if fy != 0 {
			lo := math.Floor(t.TileHeight*fy) / t.TileHeight
			hi := math.Ceil(t.TileHeight*fy) / t.TileHeight
			if fy/lo < hi/fy {
				fy = lo
			} else {
				fy = hi
			}
		}
		stitch = &StitchInfo{
			Width:  int32(t.TileWidth*fx + 0.5),
			WrapX:  int32(t.TileX*fx + perlinN + t.TileWidth*fx),
			Height: int32(t.TileHeight*fy + 0.5),
			WrapY:  int32(t.TileY*fy + perlinN + t.TileHeight*fy),
		}
	}

	sum := 0.0
	vx := x * fx
	vy := y * fy
	ratio := 1.0
	for octave := 0; octave < t.NumOctaves; octave++ {
		n := t.Generator.noise2(channel, vx, vy, stitch)
		if t.FractalSum {
			sum += n / ratio
		} else {
			sum += math.Abs(n) / ratio
		}
		vx *= 2
		vy *= 2
		ratio *= 2
		if stitch != nil {
			stitch.Width *= 2
			stitch.WrapX = 2*stitch.WrapX - perlinN
			stitch.Height *= 2
			stitch.WrapY = 2*stitch.WrapY - perlinN
		}
	}
	return sum
}
