package fractal

// RegionOptions configures a full-frame escape-time render.
type RegionOptions struct {
	CenterX, CenterY float64
	Zoom             float64
	MaxIter          int
	Palette          Palette

	// JuliaC is the fixed constant for Julia renders; ignored by Mandelbrot.
	JuliaC Complex
}

// RenderMandelbrot fills dst (flat RGBA, width*height*4 bytes) with a
// Mandelbrot set render. Points that never escape are exactly black with
// full alpha; escaping points are colored by the palette from the
// normalized iteration count.
func RenderMandelbrot(dst []uint8, width, height int, opts RegionOptions) {
	renderRegion(dst, width, height, opts, false)
}

// RenderJulia fills dst with a Julia set render for the constant
// opts.JuliaC.
func RenderJulia(dst []uint8, width, height int, opts RegionOptions) {
	renderRegion(dst, width, height, opts, true)
}

func renderRegion(dst []uint8, width, height int, opts RegionOptions, julia bool) {
	if opts.MaxIter < 1 {
		opts.MaxIter = 1
	}
	if opts.Zoom <= 0 {
		opts.Zoom = 1
	}
	pal := opts.Palette
	if pal == nil {
		pal = Rainbow
	}

	// The view spans 4 complex units across the smaller image dimension at
	// zoom 1, halving per doubling of zoom.
	minDim := width
	if height < minDim {
		minDim = height
	}
	if minDim < 1 {
		return
	}
	step := 4.0 / opts.Zoom / float64(minDim)

	halfW := float64(width) / 2
	halfH := float64(height) / 2

	for y := 0; y < height; y++ {
		im := opts.CenterY + (float64(y)-halfH)*step
		for x := 0; x < width; x++ {
			re := opts.CenterX + (float64(x)-halfW)*step

			var z, c Complex
			if julia {
				z = Complex{re, im}
				c = opts.JuliaC
			} else {
				c = Complex{re, im}
			}

			used := -1
			for i := 0; i < opts.MaxIter; i++ {
				z = z.Mul(z).Add(c)
				if z.AbsSq() > escapeRadiusSq {
					used = i + 1
					break
				}
			}

			i := (y*width + x) * 4
			if used < 0 {
				dst[i], dst[i+1], dst[i+2], dst[i+3] = 0, 0, 0, 255
				continue
			}
			r, g, b := pal(float64(used) / float64(opts.MaxIter))
			dst[i], dst[i+1], dst[i+2], dst[i+3] = r, g, b, 255
		}
	}
}
