package svgfx

import (
	"math"

	"github.com/chewxy/math32"
)

// LightSource is one of the three light kinds a lighting primitive can
// carry. The variant set is closed.
type LightSource interface {
	// resolve maps the light into device space and returns the
	// per-pixel evaluation functions.
	resolve(ctx *FilterContext) resolvedLight
}

// resolvedLight evaluates a light at a surface point in device space.
type resolvedLight struct {
	// vector returns the unit vector from the surface point to the
	// light.
	vector func(x, y, z float32) (float32, float32, float32)
	// intensity returns the light attenuation in [0, 1] for the given
	// light vector. Only the spot light attenuates.
	intensity func(lx, ly, lz float32) float32
}

// DistantLight shines from an infinitely distant direction given by the
// azimuth and elevation angles in degrees.
type DistantLight struct {
	Azimuth   float64
	Elevation float64
}

func (l *DistantLight) resolve(*FilterContext) resolvedLight {
	az := l.Azimuth * math.Pi / 180
	el := l.Elevation * math.Pi / 180
	dx := float32(math.Cos(az) * math.Cos(el))
	dy := float32(math.Sin(az) * math.Cos(el))
	dz := float32(math.Sin(el))
	return resolvedLight{
		vector:    func(x, y, z float32) (float32, float32, float32) { return dx, dy, dz },
		intensity: func(lx, ly, lz float32) float32 { return 1 },
	}
}

// PointLight radiates from a position in user space.
type PointLight struct {
	X, Y, Z float64
}

func (l *PointLight) resolve(ctx *FilterContext) resolvedLight {
	px, py, pz := transformLightPosition(ctx, l.X, l.Y, l.Z)
	return resolvedLight{
		vector:    pointVector(px, py, pz),
		intensity: func(lx, ly, lz float32) float32 { return 1 },
	}
}

// SpotLight radiates from a position toward a target point, attenuated
// by a specular exponent and an optional limiting cone.
type SpotLight struct {
	X, Y, Z                         float64
	PointsAtX, PointsAtY, PointsAtZ float64
	SpecularExponent                float64
	LimitingConeAngle               *float64 // degrees
}

func (l *SpotLight) resolve(ctx *FilterContext) resolvedLight {
	px, py, pz := transformLightPosition(ctx, l.X, l.Y, l.Z)
	tx, ty, tz := transformLightPosition(ctx, l.PointsAtX, l.PointsAtY, l.PointsAtZ)

	// S points from the light toward its target.
	sx, sy, sz := normalize3(tx-px, ty-py, tz-pz)
	exponent := float32(l.SpecularExponent)
	coneCos := float32(-1)
	if l.LimitingConeAngle != nil {
		coneCos = float32(math.Abs(math.Cos(*l.LimitingConeAngle * math.Pi / 180)))
	}

	return resolvedLight{
		vector: pointVector(px, py, pz),
		intensity: func(lx, ly, lz float32) float32 {
			// -L dot S: how closely the surface point sits on the axis.
			dot := -(lx*sx + ly*sy + lz*sz)
			if dot <= 0 || dot < coneCos {
				return 0
			}
			return math32.Pow(dot, exponent)
		},
	}
}

func pointVector(px, py, pz float32) func(x, y, z float32) (float32, float32, float32) {
	return func(x, y, z float32) (float32, float32, float32) {
		return normalize3(px-x, py-y, pz-z)
	}
}

// transformLightPosition maps a light position into device space: x and
// y through the primitive transform, z by its mean scale factor.
func transformLightPosition(ctx *FilterContext, x, y, z float64) (float32, float32, float32) {
	dx, dy := ctx.paffine.TransformPoint(x, y)
	det := ctx.paffine.A*ctx.paffine.E - ctx.paffine.B*ctx.paffine.D
	dz := z * math.Sqrt(math.Abs(det))
	return float32(dx), float32(dy), float32(dz)
}

func normalize3(x, y, z float32) (float32, float32, float32) {
	n := math32.Sqrt(x*x + y*y + z*z)
	if n == 0 {
		return 0, 0, 0
	}
	return x / n, y / n, z / n
}

// DiffuseLighting lights the input's alpha-defined height map with
// Lambertian reflection. The output is opaque.
type DiffuseLighting struct {
	In              Input
	SurfaceScale    float64
	DiffuseConstant float64
	Light           LightSource
	Color           RGBA
}

func (d *DiffuseLighting) Kind() string { return "feDiffuseLighting" }

func (d *DiffuseLighting) inputList() []Input { return []Input{d.In} }

func (d *DiffuseLighting) render(prim *UserSpacePrimitive, ctx *FilterContext) (FilterOutput, error) {
	kd := float32(d.DiffuseConstant)
	return renderLighting(prim, ctx, d.In, d.SurfaceScale, d.Light, d.Color,
		func(ndotl, ndoth float32, lr, lg, lb float32) pixel {
			if ndotl < 0 {
				ndotl = 0
			}
			f := kd * ndotl
			return pixel{
				r: quantize32(f * lr),
				g: quantize32(f * lg),
				b: quantize32(f * lb),
				a: 255,
			}
		})
}

// SpecularLighting lights the input's alpha-defined height map with
// Phong-style specular reflection. The output alpha is the maximum of
// the color channels.
type SpecularLighting struct {
	In               Input
	SurfaceScale     float64
	SpecularConstant float64
	SpecularExponent float64
	Light            LightSource
	Color            RGBA
}

func (s *SpecularLighting) Kind() string { return "feSpecularLighting" }

func (s *SpecularLighting) inputList() []Input { return []Input{s.In} }

func (s *SpecularLighting) render(prim *UserSpacePrimitive, ctx *FilterContext) (FilterOutput, error) {
	ks := float32(s.SpecularConstant)
	se := float32(s.SpecularExponent)
	return renderLighting(prim, ctx, s.In, s.SurfaceScale, s.Light, s.Color,
		func(ndotl, ndoth float32, lr, lg, lb float32) pixel {
			if ndoth < 0 {
				ndoth = 0
			}
			f := ks * math32.Pow(ndoth, se)
			r := quantize32(f * lr)
			g := quantize32(f * lg)
			b := quantize32(f * lb)
			a := r
			if g > a {
				a = g
			}
			if b > a {
				a = b
			}
			return pixel{r: r, g: g, b: b, a: a}
		})
}

// renderLighting is the shared half of the two lighting primitives. The
// shade callback turns the normal-light products and the attenuated
// light color into one output pixel.
func renderLighting(prim *UserSpacePrimitive, ctx *FilterContext, in Input, surfaceScale float64, light LightSource, color RGBA, shade func(ndotl, ndoth, lr, lg, lb float32) pixel) (FilterOutput, error) {
	if light == nil {
		return FilterOutput{}, errInvalidInput
	}

	fi, err := ctx.getInput(in, prim.Interp)
	if err != nil {
		return FilterOutput{}, err
	}

	bb := newBoundsBuilder(ctx)
	bb.addInput(fi)
	bounds := bb.compute(prim)
	region := bounds.clipped

	// Surface normals need a 2x2 neighborhood.
	if region.Width() < 2 || region.Height() < 2 {
		return FilterOutput{}, errLightingInputTooSmall
	}

	resolved := light.resolve(ctx)
	ss := float32(surfaceScale)
	cr := float32(clampUnit(color.R))
	cg := float32(clampUnit(color.G))
	cb := float32(clampUnit(color.B))

	surface, err := ctx.newSurface(prim.Interp.kind())
	if err != nil {
		return FilterOutput{}, err
	}

	alpha := func(x, y int) float32 {
		return float32(fi.surface.at(x, y).a) / 255
	}

	for y := region.MinY; y < region.MaxY; y++ {
		for x := region.MinX; x < region.MaxX; x++ {
			nx, ny, nz := surfaceNormal(alpha, region, x, y, ss)

			z := ss * alpha(x, y)
			lx, ly, lz := resolved.vector(float32(x), float32(y), z)
			intensity := resolved.intensity(lx, ly, lz)

			ndotl := nx*lx + ny*ly + nz*lz

			// Halfway vector between the light and the eye at (0, 0, 1).
			hx, hy, hz := normalize3(lx, ly, lz+1)
			ndoth := nx*hx + ny*hy + nz*hz

			surface.setPixel(x, y, shade(ndotl, ndoth, intensity*cr, intensity*cg, intensity*cb))
		}
	}
	return FilterOutput{Surface: surface, Bounds: region}, nil
}

// normalKernel is one position variant of the surface normal estimate:
// a pair of 3x3 kernels with their scale factors.
type normalKernel struct {
	fx, fy float32
	kx, ky [9]float32
}

// The nine variants let edge and corner pixels use only taps that stay
// inside the bounds, per the filter effects specification.
var normalKernels = [9]normalKernel{
	// top-left corner
	{2.0 / 3, 2.0 / 3,
		[9]float32{0, 0, 0, 0, -2, 2, 0, -1, 1},
		[9]float32{0, 0, 0, 0, -2, -1, 0, 2, 1}},
	// top row
	{1.0 / 3, 1.0 / 2,
		[9]float32{0, 0, 0, -2, 0, 2, -1, 0, 1},
		[9]float32{0, 0, 0, -1, -2, -1, 1, 2, 1}},
	// top-right corner
	{2.0 / 3, 2.0 / 3,
		[9]float32{0, 0, 0, -2, 2, 0, -1, 1, 0},
		[9]float32{0, 0, 0, -1, -2, 0, 1, 2, 0}},
	// left column
	{1.0 / 2, 1.0 / 3,
		[9]float32{0, -1, 1, 0, -2, 2, 0, -1, 1},
		[9]float32{0, -2, -1, 0, 0, 0, 0, 2, 1}},
	// interior
	{1.0 / 4, 1.0 / 4,
		[9]float32{-1, 0, 1, -2, 0, 2, -1, 0, 1},
		[9]float32{-1, -2, -1, 0, 0, 0, 1, 2, 1}},
	// right column
	{1.0 / 2, 1.0 / 3,
		[9]float32{-1, 1, 0, -2, 2, 0, -1, 1, 0},
		[9]float32{-1, -2, 0, 0, 0, 0, 1, 2, 0}},
	// bottom-left corner
	{2.0 / 3, 2.0 / 3,
		[9]float32{0, -1, 1, 0, -2, 2, 0, 0, 0},
		[9]float32{0, -2, -1, 0, 2, 1, 0, 0, 0}},
	// bottom row
	{1.0 / 3, 1.0 / 2,
		[9]float32{-1, 0, 1, -2, 0, 2, 0, 0, 0},
		[9]float32{-1, -2, -1, 1, 2, 1, 0, 0, 0}},
	// bottom-right corner
	{2.0 / 3, 2.0 / 3,
		[9]float32{-1, 1, 0, -2, 2, 0, 0, 0, 0},
		[9]float32{-1, -2, 0, 1, 2, 0, 0, 0, 0}},
}

// surfaceNormal estimates the unit normal of the alpha height map at
// (x, y) inside bounds.
func surfaceNormal(alpha func(x, y int) float32, bounds IntRect, x, y int, surfaceScale float32) (float32, float32, float32) {
	col := 1
	if x == bounds.MinX {
		col = 0
	} else if x == bounds.MaxX-1 {
		col = 2
	}
	row := 1
	if y == bounds.MinY {
		row = 0
	} else if y == bounds.MaxY-1 {
		row = 2
	}
	k := &normalKernels[row*3+col]

	var gx, gy float32
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			wx := k.kx[i*3+j]
			wy := k.ky[i*3+j]
			if wx == 0 && wy == 0 {
				continue
			}
			a := alpha(x+j-1, y+i-1)
			gx += wx * a
			gy += wy * a
		}
	}
	return normalize3(-surfaceScale*k.fx*gx, -surfaceScale*k.fy*gy, 1)
}

// quantize32 converts a [0, 1] float32 to an 8-bit channel.
func quantize32(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
