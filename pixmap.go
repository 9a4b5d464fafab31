package svgfx

import (
	"errors"
	"image"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// SurfaceKind tracks the color space a surface's pixel data lives in.
// Primitives declare the space they operate in; the pipeline converts
// surfaces lazily at the point of use.
type SurfaceKind int

const (
	// KindSRGB marks pixel data with sRGB-encoded color channels.
	KindSRGB SurfaceKind = iota
	// KindLinearRGB marks pixel data with linear-light color channels.
	KindLinearRGB
	// KindAlphaOnly marks a surface whose color channels are all zero.
	// Alpha-only surfaces are exempt from color space conversion since
	// converting zeros is a no-op.
	KindAlphaOnly
)

func (k SurfaceKind) String() string {
	switch k {
	case KindSRGB:
		return "sRGB"
	case KindLinearRGB:
		return "linearRGB"
	case KindAlphaOnly:
		return "alphaOnly"
	default:
		return "unknown"
	}
}

// pixel is a single premultiplied RGBA8 value.
type pixel struct {
	r, g, b, a uint8
}

// Allocator allocates the backing store for a surface. Implementations
// return an AllocError (or any error, which the pipeline wraps) when the
// buffer cannot be created.
type Allocator func(width, height int) ([]uint8, error)

func defaultAllocator(width, height int) ([]uint8, error) {
	if width <= 0 || height <= 0 || width > maxSurfaceDim || height > maxSurfaceDim {
		return nil, &AllocError{Width: width, Height: height}
	}
	return make([]uint8, width*height*4), nil
}

// maxSurfaceDim bounds surface dimensions so pixel offsets stay well
// inside int32 range.
const maxSurfaceDim = 32767

// Pixmap is a raster surface holding premultiplied RGBA pixels, 8 bits
// per channel. The zero value is not usable; create surfaces with
// NewPixmap or through a FilterContext.
type Pixmap struct {
	width  int
	height int
	stride int
	buf    []uint8
	kind   SurfaceKind
}

// NewPixmap creates a transparent black surface of the given size.
func NewPixmap(width, height int) (*Pixmap, error) {
	return newPixmap(width, height, KindSRGB, defaultAllocator)
}

func newPixmap(width, height int, kind SurfaceKind, alloc Allocator) (*Pixmap, error) {
	if alloc == nil {
		alloc = defaultAllocator
	}
	buf, err := alloc(width, height)
	if err != nil {
		var ae *AllocError
		if !errors.As(err, &ae) {
			err = &AllocError{Width: width, Height: height, Cause: err}
		}
		return nil, err
	}
	return &Pixmap{
		width:  width,
		height: height,
		stride: width * 4,
		buf:    buf,
		kind:   kind,
	}, nil
}

// Width returns the surface width in pixels.
func (p *Pixmap) Width() int { return p.width }

// Height returns the surface height in pixels.
func (p *Pixmap) Height() int { return p.height }

// Kind returns the color space the surface's pixels are encoded in.
func (p *Pixmap) Kind() SurfaceKind { return p.kind }

// Bounds returns the surface rectangle anchored at the origin.
func (p *Pixmap) Bounds() IntRect { return IntRectFromSize(p.width, p.height) }

// at returns the pixel at (x, y). The caller guarantees bounds.
func (p *Pixmap) at(x, y int) pixel {
	i := y*p.stride + x*4
	return pixel{r: p.buf[i], g: p.buf[i+1], b: p.buf[i+2], a: p.buf[i+3]}
}

// setPixel stores the pixel at (x, y). The caller guarantees bounds.
func (p *Pixmap) setPixel(x, y int, px pixel) {
	i := y*p.stride + x*4
	p.buf[i] = px.r
	p.buf[i+1] = px.g
	p.buf[i+2] = px.b
	p.buf[i+3] = px.a
}

// atClamped returns the pixel at (x, y) with coordinates clamped to the
// given rectangle. Used by kernels that extend edge pixels.
func (p *Pixmap) atClamped(x, y int, bounds IntRect) pixel {
	if x < bounds.MinX {
		x = bounds.MinX
	} else if x >= bounds.MaxX {
		x = bounds.MaxX - 1
	}
	if y < bounds.MinY {
		y = bounds.MinY
	} else if y >= bounds.MaxY {
		y = bounds.MaxY - 1
	}
	return p.at(x, y)
}

// atOrTransparent returns the pixel at (x, y), or transparent black when
// the coordinates fall outside the given rectangle.
func (p *Pixmap) atOrTransparent(x, y int, bounds IntRect) pixel {
	if !bounds.Contains(x, y) {
		return pixel{}
	}
	return p.at(x, y)
}

// clone returns a deep copy of the surface.
func (p *Pixmap) clone(alloc Allocator) (*Pixmap, error) {
	out, err := newPixmap(p.width, p.height, p.kind, alloc)
	if err != nil {
		return nil, err
	}
	copy(out.buf, p.buf)
	return out, nil
}

// ExtractAlpha returns a new alpha-only surface carrying p's alpha channel
// with all color channels zeroed.
func (p *Pixmap) ExtractAlpha(region IntRect, alloc Allocator) (*Pixmap, error) {
	out, err := newPixmap(p.width, p.height, KindAlphaOnly, alloc)
	if err != nil {
		return nil, err
	}
	region, ok := region.Intersect(p.Bounds())
	if !ok {
		return out, nil
	}
	for y := region.MinY; y < region.MaxY; y++ {
		for x := region.MinX; x < region.MaxX; x++ {
			out.setPixel(x, y, pixel{a: p.at(x, y).a})
		}
	}
	return out, nil
}

// Flood fills the given region of a new surface with a single color.
func floodPixmap(width, height int, region IntRect, c RGBA, kind SurfaceKind, alloc Allocator) (*Pixmap, error) {
	out, err := newPixmap(width, height, kind, alloc)
	if err != nil {
		return nil, err
	}
	region, ok := region.Intersect(out.Bounds())
	if !ok {
		return out, nil
	}
	px := c.premultiplied()
	for y := region.MinY; y < region.MaxY; y++ {
		for x := region.MinX; x < region.MaxX; x++ {
			out.setPixel(x, y, px)
		}
	}
	return out, nil
}

// Offset returns a new surface with the contents of region shifted by
// (dx, dy) device pixels. Writes land in region translated by (dx, dy)
// and clipped to clip; only pixels whose source position lies inside
// region are copied, everything else stays transparent black.
func (p *Pixmap) Offset(region IntRect, dx, dy int, clip IntRect, alloc Allocator) (*Pixmap, error) {
	out, err := newPixmap(p.width, p.height, p.kind, alloc)
	if err != nil {
		return nil, err
	}
	dst := region.Translate(dx, dy)
	dst, ok := dst.Intersect(clip)
	if !ok {
		return out, nil
	}
	dst, ok = dst.Intersect(p.Bounds())
	if !ok {
		return out, nil
	}
	for y := dst.MinY; y < dst.MaxY; y++ {
		sy := y - dy
		for x := dst.MinX; x < dst.MaxX; x++ {
			sx := x - dx
			if region.Contains(sx, sy) {
				out.setPixel(x, y, p.at(sx, sy))
			}
		}
	}
	return out, nil
}

// CopyRegion returns a new surface of the same size with only the pixels
// inside region copied from p. Everything outside is transparent black.
func (p *Pixmap) CopyRegion(region IntRect, alloc Allocator) (*Pixmap, error) {
	out, err := newPixmap(p.width, p.height, p.kind, alloc)
	if err != nil {
		return nil, err
	}
	region, ok := region.Intersect(p.Bounds())
	if !ok {
		return out, nil
	}
	for y := region.MinY; y < region.MaxY; y++ {
		srcOff := y*p.stride + region.MinX*4
		dstOff := y*out.stride + region.MinX*4
		n := region.Width() * 4
		copy(out.buf[dstOff:dstOff+n], p.buf[srcOff:srcOff+n])
	}
	return out, nil
}

// extractTile copies the tile rectangle out of p into a standalone surface
// of exactly the tile's size.
func (p *Pixmap) extractTile(tile IntRect, alloc Allocator) (*Pixmap, error) {
	out, err := newPixmap(tile.Width(), tile.Height(), p.kind, alloc)
	if err != nil {
		return nil, err
	}
	src, ok := tile.Intersect(p.Bounds())
	if !ok {
		return out, nil
	}
	for y := src.MinY; y < src.MaxY; y++ {
		for x := src.MinX; x < src.MaxX; x++ {
			out.setPixel(x-tile.MinX, y-tile.MinY, p.at(x, y))
		}
	}
	return out, nil
}

// paintTiled fills region by repeating the tile surface, with the tile's
// top-left corner anchored at (originX, originY).
func (p *Pixmap) paintTiled(region IntRect, tile *Pixmap, originX, originY int) {
	if tile.width <= 0 || tile.height <= 0 {
		return
	}
	region, ok := region.Intersect(p.Bounds())
	if !ok {
		return
	}
	for y := region.MinY; y < region.MaxY; y++ {
		ty := mod(y-originY, tile.height)
		for x := region.MinX; x < region.MaxX; x++ {
			tx := mod(x-originX, tile.width)
			p.setPixel(x, y, tile.at(tx, ty))
		}
	}
}

func mod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}

// scaleTo resamples p into a new surface of the given size using bilinear
// interpolation. Used by the blur pipeline's downscale step and by feImage.
func (p *Pixmap) scaleTo(width, height int, alloc Allocator) (*Pixmap, error) {
	out, err := newPixmap(width, height, p.kind, alloc)
	if err != nil {
		return nil, err
	}
	src := p.asRGBA()
	dst := out.asRGBA()
	xdraw.BiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return out, nil
}

// asRGBA wraps the surface buffer as an image.RGBA without copying.
// The standard library treats image.RGBA as premultiplied, matching
// Pixmap's storage, so draw operations compose correctly.
func (p *Pixmap) asRGBA() *image.RGBA {
	return &image.RGBA{
		Pix:    p.buf,
		Stride: p.stride,
		Rect:   image.Rect(0, 0, p.width, p.height),
	}
}

// Image returns the surface as a standard library image. The returned
// image shares the surface's backing buffer.
func (p *Pixmap) Image() *image.RGBA {
	return p.asRGBA()
}

// DrawImage paints src into the surface with the given affine transform,
// resampling bilinearly. Source pixels are assumed premultiplied.
func (p *Pixmap) DrawImage(src image.Image, m Matrix) {
	dst := p.asRGBA()
	t := f64.Aff3{m.A, m.B, m.C, m.D, m.E, m.F}
	xdraw.BiLinear.Transform(dst, t, src, src.Bounds(), xdraw.Over, nil)
}

// readRegion copies region pixels into a float32 RGBA buffer laid out
// region.Width()*region.Height()*4. The region must lie inside the
// surface.
func (p *Pixmap) readRegion(region IntRect, buf []float32) {
	w := region.Width()
	for y := region.MinY; y < region.MaxY; y++ {
		si := y*p.stride + region.MinX*4
		di := (y - region.MinY) * w * 4
		for x := 0; x < w*4; x++ {
			buf[di+x] = float32(p.buf[si+x])
		}
	}
}

// writeRegion copies a float32 RGBA buffer produced by readRegion back
// into region, clamping each channel to [0, 255].
func (p *Pixmap) writeRegion(region IntRect, buf []float32) {
	w := region.Width()
	for y := region.MinY; y < region.MaxY; y++ {
		di := y*p.stride + region.MinX*4
		si := (y - region.MinY) * w * 4
		for x := 0; x < w*4; x++ {
			v := buf[si+x]
			if v < 0 {
				v = 0
			} else if v > 255 {
				v = 255
			}
			p.buf[di+x] = uint8(v + 0.5)
		}
	}
}

// Unpremultiply converts the surface in place from premultiplied to
// straight alpha. Intended for handing pixels to callers who expect
// non-associated alpha; pipeline internals stay premultiplied.
func (p *Pixmap) Unpremultiply() {
	for i := 0; i < len(p.buf); i += 4 {
		a := p.buf[i+3]
		if a == 0 || a == 255 {
			continue
		}
		p.buf[i] = unpremul(p.buf[i], a)
		p.buf[i+1] = unpremul(p.buf[i+1], a)
		p.buf[i+2] = unpremul(p.buf[i+2], a)
	}
}

func unpremul(c, a uint8) uint8 {
	v := (uint32(c)*255 + uint32(a)/2) / uint32(a)
	if v > 255 {
		v = 255
	}
	return uint8(v)
}

func premul(c, a uint8) uint8 {
	return uint8((uint32(c)*uint32(a) + 127) / 255)
}
