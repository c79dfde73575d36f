// Package filter implements the convolution studio: separable blurs plus
// fixed 3×3 enhancement kernels.
package filter

import "math"

// GaussianKernel generates a normalized 1D Gaussian kernel for the given
// radius (used as sigma). Size is 2·ceil(radius·3)+1, covering three
// standard deviations. Radius <= 0 yields the identity kernel [1].
func GaussianKernel(radius float64) []float64 {
	if radius <= 0 {
		return []float64{1}
	}

	half := int(math.Ceil(radius * 3))
	size := half*2 + 1
	kernel := make([]float64, size)

	twoSigmaSq := 2 * radius * radius
	sum := 0.0
	for i := 0; i < size; i++ {
		x := float64(i - half)
		v := math.Exp(-(x * x) / twoSigmaSq)
		kernel[i] = v
		sum += v
	}
	for i := range kernel {
		kernel[i] /= sum
	}
	return kernel
}

// BoxKernel generates a uniform 1D kernel of radius cells per side.
func BoxKernel(radius int) []float64 {
	if radius <= 0 {
		return []float64{1}
	}
	size := radius*2 + 1
	kernel := make([]float64, size)
	v := 1.0 / float64(size)
	for i := range kernel {
		kernel[i] = v
	}
	return kernel
}

// Fixed 3×3 enhancement kernels.
var (
	SharpenKernel = [9]float64{
		0, -1, 0,
		-1, 5, -1,
		0, -1, 0,
	}
	EdgeKernel = [9]float64{
		-1, -1, -1,
		-1, 8, -1,
		-1, -1, -1,
	}
	EmbossKernel = [9]float64{
		-2, -1, 0,
		-1, 1, 1,
		0, 1, 2,
	}
)
