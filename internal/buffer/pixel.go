package buffer

// PixelIndex returns the byte offset of pixel (x, y) in a flat RGBA buffer
// of the given width.
func PixelIndex(x, y, width int) int {
	return (y*width + x) * 4
}

// ReadPixel returns the RGBA channels at (x, y). ok is false when the
// coordinate lies outside [0,width)×[0,height).
func ReadPixel(buf []uint8, x, y, width, height int) (r, g, b, a uint8, ok bool) {
	if x < 0 || x >= width || y < 0 || y >= height {
		return 0, 0, 0, 0, false
	}
	i := PixelIndex(x, y, width)
	if i+3 >= len(buf) {
		return 0, 0, 0, 0, false
	}
	return buf[i], buf[i+1], buf[i+2], buf[i+3], true
}

// WritePixel sets the RGBA channels at (x, y). Out-of-range coordinates are
// ignored rather than panicking.
func WritePixel(buf []uint8, x, y, width, height int, r, g, b, a uint8) {
	if x < 0 || x >= width || y < 0 || y >= height {
		return
	}
	i := PixelIndex(x, y, width)
	if i+3 >= len(buf) {
		return
	}
	buf[i] = r
	buf[i+1] = g
	buf[i+2] = b
	buf[i+3] = a
}

// Convolve3x3 applies a 3×3 kernel to every pixel of src, writing results
// into dst. Edge pixels clamp sampling to the nearest in-bounds coordinate.
// Alpha is carried over from src unchanged. src and dst must not alias.
func Convolve3x3(src, dst []uint8, width, height int, kernel [9]float64) {
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var sr, sg, sb float64
			k := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					sx := clampInt(x+dx, 0, width-1)
					sy := clampInt(y+dy, 0, height-1)
					i := PixelIndex(sx, sy, width)
					w := kernel[k]
					sr += float64(src[i]) * w
					sg += float64(src[i+1]) * w
					sb += float64(src[i+2]) * w
					k++
				}
			}
			o := PixelIndex(x, y, width)
			dst[o] = Clamp255(sr)
			dst[o+1] = Clamp255(sg)
			dst[o+2] = Clamp255(sb)
			dst[o+3] = src[o+3]
		}
	}
}

// clampInt clamps v to [lo, hi].
func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp255 converts a float channel value to uint8, clamping to [0, 255].
func Clamp255(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}

// Clamp01 clamps v to [0, 1].
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Lerp linearly interpolates between a and b by t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
