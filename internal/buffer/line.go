package buffer

// DrawLine draws a straight segment from (x0, y0) to (x1, y1) into an RGBA
// buffer using integer Bresenham stepping. Every pixel write is bounds
// checked, so segments partially or fully outside the image touch only the
// in-bounds portion (possibly nothing).
//
// alpha scales the contribution in [0, 1]. In additive mode the scaled color
// is added to the existing pixel with saturation at 255; otherwise the pixel
// is alpha-blended toward the line color.
func DrawLine(buf []uint8, width, height int, x0, y0, x1, y1 int, r, g, b uint8, alpha float64, additive bool) {
	alpha = Clamp01(alpha)
	if alpha == 0 {
		return
	}

	dx := absInt(x1 - x0)
	dy := -absInt(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		plot(buf, width, height, x0, y0, r, g, b, alpha, additive)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func plot(buf []uint8, width, height, x, y int, r, g, b uint8, alpha float64, additive bool) {
	if x < 0 || x >= width || y < 0 || y >= height {
		return
	}
	i := PixelIndex(x, y, width)
	if i+3 >= len(buf) {
		return
	}
	if additive {
		buf[i] = addSat(buf[i], uint8(float64(r)*alpha))
		buf[i+1] = addSat(buf[i+1], uint8(float64(g)*alpha))
		buf[i+2] = addSat(buf[i+2], uint8(float64(b)*alpha))
		buf[i+3] = 255
		return
	}
	buf[i] = Clamp255(Lerp(float64(buf[i]), float64(r), alpha))
	buf[i+1] = Clamp255(Lerp(float64(buf[i+1]), float64(g), alpha))
	buf[i+2] = Clamp255(Lerp(float64(buf[i+2]), float64(b), alpha))
	buf[i+3] = 255
}

func addSat(a, b uint8) uint8 {
	sum := uint16(a) + uint16(b)
	if sum > 255 {
		return 255
	}
	return uint8(sum)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
