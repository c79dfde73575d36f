package filter

import "github.com/prismfx/prism/internal/buffer"

// Separable applies a 1D kernel horizontally then vertically over a flat
// RGBA buffer, reading src and writing dst. tmp must be a scratch buffer of
// the same length; src, tmp, and dst must not alias. Edge samples clamp to
// the nearest in-bounds pixel.
func Separable(src, tmp, dst []uint8, width, height int, kernel []float64) {
	half := len(kernel) / 2

	// Horizontal pass: src → tmp.
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var r, g, b, a float64
			for k, w := range kernel {
				sx := x + k - half
				if sx < 0 {
					sx = 0
				} else if sx >= width {
					sx = width - 1
				}
				i := buffer.PixelIndex(sx, y, width)
				r += float64(src[i]) * w
				g += float64(src[i+1]) * w
				b += float64(src[i+2]) * w
				a += float64(src[i+3]) * w
			}
			o := buffer.PixelIndex(x, y, width)
			tmp[o] = buffer.Clamp255(r)
			tmp[o+1] = buffer.Clamp255(g)
			tmp[o+2] = buffer.Clamp255(b)
			tmp[o+3] = buffer.Clamp255(a)
		}
	}

	// Vertical pass: tmp → dst.
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var r, g, b, a float64
			for k, w := range kernel {
				sy := y + k - half
				if sy < 0 {
					sy = 0
				} else if sy >= height {
					sy = height - 1
				}
				i := buffer.PixelIndex(x, sy, width)
				r += float64(tmp[i]) * w
				g += float64(tmp[i+1]) * w
				b += float64(tmp[i+2]) * w
				a += float64(tmp[i+3]) * w
			}
			o := buffer.PixelIndex(x, y, width)
			dst[o] = buffer.Clamp255(r)
			dst[o+1] = buffer.Clamp255(g)
			dst[o+2] = buffer.Clamp255(b)
			dst[o+3] = buffer.Clamp255(a)
		}
	}
}
