package kernel

import "sync"

// EdgeMode selects what a convolution pass reads outside the buffer.
type EdgeMode int

const (
	// EdgeNone treats pixels outside the buffer as transparent black.
	EdgeNone EdgeMode = iota
	// EdgeDuplicate extends the edge pixels outward.
	EdgeDuplicate
	// EdgeWrap tiles the buffer.
	EdgeWrap
)

// ConvolveH convolves each row of src with a 1D kernel and writes the
// result to dst. Both buffers are RGBA float32, width*height*4 long, and
// must not alias.
func ConvolveH(src, dst []float32, width, height int, k []float32, edge EdgeMode) {
	half := len(k) / 2
	for y := 0; y < height; y++ {
		row := y * width * 4
		for x := 0; x < width; x++ {
			var r, g, b, a float32
			for i, w := range k {
				sx := x + i - half
				switch edge {
				case EdgeDuplicate:
					if sx < 0 {
						sx = 0
					} else if sx >= width {
						sx = width - 1
					}
				case EdgeWrap:
					sx = wrap(sx, width)
				default:
					if sx < 0 || sx >= width {
						continue
					}
				}
				si := row + sx*4
				r += src[si] * w
				g += src[si+1] * w
				b += src[si+2] * w
				a += src[si+3] * w
			}
			di := row + x*4
			dst[di] = r
			dst[di+1] = g
			dst[di+2] = b
			dst[di+3] = a
		}
	}
}

// ConvolveV convolves each column of src with a 1D kernel and writes the
// result to dst.
func ConvolveV(src, dst []float32, width, height int, k []float32, edge EdgeMode) {
	half := len(k) / 2
	stride := width * 4
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var r, g, b, a float32
			for i, w := range k {
				sy := y + i - half
				switch edge {
				case EdgeDuplicate:
					if sy < 0 {
						sy = 0
					} else if sy >= height {
						sy = height - 1
					}
				case EdgeWrap:
					sy = wrap(sy, height)
				default:
					if sy < 0 || sy >= height {
						continue
					}
				}
				si := sy*stride + x*4
				r += src[si] * w
				g += src[si+1] * w
				b += src[si+2] * w
				a += src[si+3] * w
			}
			di := y*stride + x*4
			dst[di] = r
			dst[di+1] = g
			dst[di+2] = b
			dst[di+3] = a
		}
	}
}

// BoxBlurH applies one horizontal box blur pass with a rolling sum.
// Pixels outside the buffer count as transparent.
func BoxBlurH(src, dst []float32, width, height int, box Box) {
	size := box.Size
	if size <= 1 {
		copy(dst, src)
		return
	}
	inv := 1.0 / float32(size)
	for y := 0; y < height; y++ {
		row := y * width * 4
		var r, g, b, a float32

		// Prime the window for output pixel 0. The window covers
		// [x-offset, x-offset+size).
		for sx := -box.Offset; sx < -box.Offset+size; sx++ {
			if sx < 0 || sx >= width {
				continue
			}
			si := row + sx*4
			r += src[si]
			g += src[si+1]
			b += src[si+2]
			a += src[si+3]
		}

		for x := 0; x < width; x++ {
			di := row + x*4
			dst[di] = r * inv
			dst[di+1] = g * inv
			dst[di+2] = b * inv
			dst[di+3] = a * inv

			// Slide the window one pixel right.
			if out := x - box.Offset; out >= 0 && out < width {
				si := row + out*4
				r -= src[si]
				g -= src[si+1]
				b -= src[si+2]
				a -= src[si+3]
			}
			if in := x - box.Offset + size; in >= 0 && in < width {
				si := row + in*4
				r += src[si]
				g += src[si+1]
				b += src[si+2]
				a += src[si+3]
			}
		}
	}
}

// BoxBlurV applies one vertical box blur pass with a rolling sum.
func BoxBlurV(src, dst []float32, width, height int, box Box) {
	size := box.Size
	if size <= 1 {
		copy(dst, src)
		return
	}
	inv := 1.0 / float32(size)
	stride := width * 4
	for x := 0; x < width; x++ {
		var r, g, b, a float32
		col := x * 4

		for sy := -box.Offset; sy < -box.Offset+size; sy++ {
			if sy < 0 || sy >= height {
				continue
			}
			si := sy*stride + col
			r += src[si]
			g += src[si+1]
			b += src[si+2]
			a += src[si+3]
		}

		for y := 0; y < height; y++ {
			di := y*stride + col
			dst[di] = r * inv
			dst[di+1] = g * inv
			dst[di+2] = b * inv
			dst[di+3] = a * inv

			if out := y - box.Offset; out >= 0 && out < height {
				si := out*stride + col
				r -= src[si]
				g -= src[si+1]
				b -= src[si+2]
				a -= src[si+3]
			}
			if in := y - box.Offset + size; in >= 0 && in < height {
				si := in*stride + col
				r += src[si]
				g += src[si+1]
				b += src[si+2]
				a += src[si+3]
			}
		}
	}
}

func wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

// floatBuffer wraps a slice for sync.Pool to avoid allocation warnings.
type floatBuffer struct {
	data []float32
}

var bufferPool = sync.Pool{
	New: func() interface{} {
		return &floatBuffer{data: make([]float32, 256*256*4)}
	},
}

// GetBuffer retrieves a zeroed temporary buffer with at least
// width*height*4 elements.
func GetBuffer(width, height int) []float32 {
	size := width * height * 4
	wrapper := bufferPool.Get().(*floatBuffer)
	if len(wrapper.data) < size {
		bufferPool.Put(wrapper)
		return make([]float32, size)
	}
	buf := wrapper.data[:size]
	for i := range buf {
		buf[i] = 0
	}
	return buf
}

// PutBuffer returns a temporary buffer to the pool.
func PutBuffer(buf []float32) {
	if cap(buf) <= 64*1024*1024 {
		bufferPool.Put(&floatBuffer{data: buf[:cap(buf)]})
	}
}
