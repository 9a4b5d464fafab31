package kernel

import "math"

// MaxKernelSize caps direct-convolution kernels. Standard deviations
// large enough to exceed it are handled by the box blur approximation
// instead, so the cap only guards degenerate inputs.
const MaxKernelSize = 500

// BoxBlurThreshold is the standard deviation at which blur switches from
// direct Gaussian convolution to the three-pass box approximation. Below
// it the true kernel is small and exact; above it three box passes are
// visually equivalent and much cheaper.
const BoxBlurThreshold = 2.0

// Gaussian generates a 1D Gaussian kernel for the given standard
// deviation, normalized so all values sum to 1.0.
//
// Each tap integrates the Gaussian over its pixel's extent using
// Simpson's rule rather than point-sampling the center, which keeps
// small kernels accurate.
//
// For stdDev <= 0, returns a single-element identity kernel.
func Gaussian(stdDev float64) []float32 {
	if stdDev <= 0 {
		return []float32{1.0}
	}

	radius := int(stdDev*3 + 0.5)
	size := radius*2 + 1
	if size > MaxKernelSize {
		size = MaxKernelSize
		if size%2 == 0 {
			size--
		}
		radius = size / 2
	}

	kernel := make([]float32, size)
	sum := 0.0
	for i := 0; i < size; i++ {
		x := float64(i - radius)
		val := integrateGaussian(stdDev, x-0.5, x+0.5)
		kernel[i] = float32(val)
		sum += val
	}

	if sum > 0 {
		invSum := float32(1.0 / sum)
		for i := range kernel {
			kernel[i] *= invSum
		}
	}
	return kernel
}

// integrateGaussian integrates the normal density over [a, b] with
// Simpson's rule. 16 subintervals is more than enough for a one-pixel
// span.
func integrateGaussian(stdDev, a, b float64) float64 {
	const n = 16
	h := (b - a) / n
	sum := gaussian(stdDev, a) + gaussian(stdDev, b)
	for i := 1; i < n; i++ {
		x := a + float64(i)*h
		if i%2 == 1 {
			sum += 4 * gaussian(stdDev, x)
		} else {
			sum += 2 * gaussian(stdDev, x)
		}
	}
	return sum * h / 3
}

func gaussian(stdDev, x float64) float64 {
	return math.Exp(-(x*x)/(2*stdDev*stdDev)) / (stdDev * math.Sqrt(2*math.Pi))
}

// Box describes one box blur pass: the window size and the index of the
// output pixel inside the window.
type Box struct {
	Size   int
	Offset int
}

// BoxesForGaussian returns the three box blur passes that approximate a
// Gaussian of the given standard deviation. The box size is
// d = floor(s * 3 * sqrt(2*pi) / 4 + 0.5); when d is even the first two
// passes straddle the center and the third uses d+1, keeping the overall
// result centered.
func BoxesForGaussian(stdDev float64) [3]Box {
	d := int(math.Floor(stdDev*3.0*math.Sqrt(2*math.Pi)/4.0 + 0.5))
	if d < 1 {
		d = 1
	}
	if d%2 == 1 {
		b := Box{Size: d, Offset: d / 2}
		return [3]Box{b, b, b}
	}
	return [3]Box{
		{Size: d, Offset: d / 2},
		{Size: d, Offset: d/2 - 1},
		{Size: d + 1, Offset: d / 2},
	}
}
