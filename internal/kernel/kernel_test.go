package kernel

import (
	"math"
	"testing"
)

func kernelSum(k []float32) float64 {
	var sum float64
	for _, v := range k {
		sum += float64(v)
	}
	return sum
}

func TestGaussianNormalized(t *testing.T) {
	for _, stdDev := range []float64{0.3, 0.5, 1.0, 1.9} {
		k := Gaussian(stdDev)
		if len(k)%2 == 0 {
			t.Errorf("stdDev %v: kernel length %d is even", stdDev, len(k))
		}
		if s := kernelSum(k); math.Abs(s-1) > 1e-6 {
			t.Errorf("stdDev %v: kernel sums to %v", stdDev, s)
		}
	}
}

func TestGaussianIdentityForZeroDeviation(t *testing.T) {
	for _, stdDev := range []float64{0, -1} {
		k := Gaussian(stdDev)
		if len(k) != 1 || k[0] != 1 {
			t.Errorf("stdDev %v: kernel = %v, want [1]", stdDev, k)
		}
	}
}

func TestGaussianSymmetric(t *testing.T) {
	k := Gaussian(1.5)
	for i := 0; i < len(k)/2; i++ {
		if k[i] != k[len(k)-1-i] {
			t.Fatalf("kernel asymmetric at %d: %v vs %v", i, k[i], k[len(k)-1-i])
		}
	}
	mid := k[len(k)/2]
	for i, v := range k {
		if v > mid {
			t.Fatalf("tap %d (%v) exceeds the center (%v)", i, v, mid)
		}
	}
}

func TestGaussianCapsKernelSize(t *testing.T) {
	k := Gaussian(1000)
	if len(k) > MaxKernelSize {
		t.Errorf("kernel length %d exceeds the cap", len(k))
	}
	if len(k)%2 == 0 {
		t.Errorf("capped kernel length %d is even", len(k))
	}
}

func TestBoxesForGaussian(t *testing.T) {
	// stdDev 2 gives d = 4, the even case.
	boxes := BoxesForGaussian(2)
	want := [3]Box{{Size: 4, Offset: 2}, {Size: 4, Offset: 1}, {Size: 5, Offset: 2}}
	if boxes != want {
		t.Errorf("even boxes = %+v, want %+v", boxes, want)
	}

	// stdDev 2.66 gives d = 5, the odd case: three identical passes.
	boxes = BoxesForGaussian(2.66)
	if boxes[0] != boxes[1] || boxes[1] != boxes[2] {
		t.Errorf("odd-d passes differ: %+v", boxes)
	}
	if boxes[0].Size != 5 || boxes[0].Offset != 2 {
		t.Errorf("odd box = %+v, want size 5 offset 2", boxes[0])
	}

	// Tiny deviations still blur with at least a unit window.
	if boxes = BoxesForGaussian(0.01); boxes[0].Size < 1 {
		t.Errorf("degenerate box = %+v", boxes[0])
	}
}

func impulse(w, h, x, y int) []float32 {
	buf := make([]float32, w*h*4)
	i := (y*w + x) * 4
	buf[i], buf[i+1], buf[i+2], buf[i+3] = 255, 255, 255, 255
	return buf
}

func bufSum(buf []float32, channel int) float64 {
	var sum float64
	for i := channel; i < len(buf); i += 4 {
		sum += float64(buf[i])
	}
	return sum
}

func TestConvolveIdentityKernel(t *testing.T) {
	const w, h = 7, 5
	src := impulse(w, h, 3, 2)
	dst := make([]float32, len(src))

	ConvolveH(src, dst, w, h, []float32{1}, EdgeNone)
	for i := range src {
		if src[i] != dst[i] {
			t.Fatalf("horizontal identity changed element %d", i)
		}
	}
	ConvolveV(src, dst, w, h, []float32{1}, EdgeNone)
	for i := range src {
		if src[i] != dst[i] {
			t.Fatalf("vertical identity changed element %d", i)
		}
	}
}

func TestConvolvePreservesMassAwayFromEdges(t *testing.T) {
	const w, h = 21, 21
	src := impulse(w, h, 10, 10)
	dst := make([]float32, len(src))

	k := Gaussian(1.5)
	ConvolveH(src, dst, w, h, k, EdgeNone)
	if got, want := bufSum(dst, 3), 255.0; math.Abs(got-want) > 0.01 {
		t.Errorf("alpha mass after blur = %v, want %v", got, want)
	}
}

func TestConvolveEdgeDuplicate(t *testing.T) {
	// A one-pixel-wide column duplicated at the edge keeps full weight.
	const w, h = 4, 1
	src := []float32{
		255, 255, 255, 255,
		0, 0, 0, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
	}
	dst := make([]float32, len(src))
	k := []float32{0.25, 0.5, 0.25}

	ConvolveH(src, dst, w, h, k, EdgeDuplicate)
	// Pixel 0 reads its left neighbor as itself: 0.25*255 + 0.5*255.
	if got := dst[0]; math.Abs(float64(got)-191.25) > 0.01 {
		t.Errorf("duplicated edge value = %v, want 191.25", got)
	}

	ConvolveH(src, dst, w, h, k, EdgeNone)
	if got := dst[0]; math.Abs(float64(got)-127.5) > 0.01 {
		t.Errorf("transparent edge value = %v, want 127.5", got)
	}
}

func TestConvolveEdgeWrap(t *testing.T) {
	const w, h = 4, 1
	src := []float32{
		255, 255, 255, 255,
		0, 0, 0, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
	}
	dst := make([]float32, len(src))
	k := []float32{0.25, 0.5, 0.25}

	ConvolveH(src, dst, w, h, k, EdgeWrap)
	// The last pixel's right neighbor wraps to pixel 0.
	if got := dst[(w-1)*4]; math.Abs(float64(got)-63.75) > 0.01 {
		t.Errorf("wrapped edge value = %v, want 63.75", got)
	}
}

func TestBoxBlurUniformInterior(t *testing.T) {
	const w, h = 16, 4
	src := make([]float32, w*h*4)
	for i := range src {
		src[i] = 100
	}
	dst := make([]float32, len(src))

	BoxBlurH(src, dst, w, h, Box{Size: 5, Offset: 2})
	// Interior pixels of a uniform field are unchanged; edge pixels lose
	// the weight that fell outside.
	mid := dst[(w/2)*4]
	if math.Abs(float64(mid)-100) > 0.01 {
		t.Errorf("interior value = %v, want 100", mid)
	}
	if edge := dst[0]; edge >= mid {
		t.Errorf("edge value %v should fall below the interior %v", edge, mid)
	}
}

func TestBoxBlurMassConservation(t *testing.T) {
	const w, h = 31, 1
	src := impulse(w, h, 15, 0)
	dst := make([]float32, len(src))

	BoxBlurH(src, dst, w, h, Box{Size: 5, Offset: 2})
	if got := bufSum(dst, 3); math.Abs(got-255) > 0.01 {
		t.Errorf("alpha mass = %v, want 255", got)
	}

	// Unit windows copy straight through.
	BoxBlurH(src, dst, w, h, Box{Size: 1})
	for i := range src {
		if src[i] != dst[i] {
			t.Fatalf("unit box changed element %d", i)
		}
	}
}

func TestBoxBlurVerticalMatchesHorizontal(t *testing.T) {
	const n = 9
	hsrc := impulse(n, 1, 4, 0)
	hdst := make([]float32, len(hsrc))
	BoxBlurH(hsrc, hdst, n, 1, Box{Size: 3, Offset: 1})

	vsrc := impulse(1, n, 0, 4)
	vdst := make([]float32, len(vsrc))
	BoxBlurV(vsrc, vdst, 1, n, Box{Size: 3, Offset: 1})

	for i := 0; i < n; i++ {
		if hdst[i*4+3] != vdst[i*4+3] {
			t.Fatalf("row/column blur mismatch at %d: %v vs %v", i, hdst[i*4+3], vdst[i*4+3])
		}
	}
}

func TestBufferPoolZeroes(t *testing.T) {
	buf := GetBuffer(8, 8)
	for i := range buf {
		buf[i] = 42
	}
	PutBuffer(buf)

	buf = GetBuffer(8, 8)
	for i, v := range buf {
		if v != 0 {
			t.Fatalf("reused buffer not zeroed at %d: %v", i, v)
		}
	}
	if len(buf) != 8*8*4 {
		t.Errorf("buffer length = %d, want %d", len(buf), 8*8*4)
	}
}
