// Package kernel provides the 1D convolution machinery behind Gaussian
// blur and morphology: kernel generation, separable convolution passes,
// and rolling-sum box blur, all operating on float32 RGBA buffers.
package kernel
