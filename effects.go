package prism

import (
	"math"

	"github.com/prismfx/prism/internal/blend"
	"github.com/prismfx/prism/internal/buffer"
	"github.com/prismfx/prism/internal/filter"
	"github.com/prismfx/prism/internal/flow"
	"github.com/prismfx/prism/internal/fractal"
	"github.com/prismfx/prism/internal/noise"
	"github.com/prismfx/prism/internal/reaction"
)

// implementations is the immutable table of directly callable effects.
var implementations = map[string]*effectImpl{
	"unifiedBlur": {
		Info: EffectInfo{ID: "unifiedBlur", Name: "Blur & Sharpen Studio", Category: "Enhance"},
		Params: []ParamSpec{
			{ID: "preset", Label: "Preset", Min: 0, Max: 4, Default: 0, Step: 1},
			{ID: "radius", Label: "Radius", Min: 0, Max: 20, Default: 4, Step: 1},
		},
		generator: generateUnifiedBlur,
	},
	"unifiedFractal": {
		Info: EffectInfo{ID: "unifiedFractal", Name: "Fractal Warp Studio", Category: "Distort"},
		Params: []ParamSpec{
			{ID: "preset", Label: "Preset", Min: 0, Max: 3, Default: 0, Step: 1},
			{ID: "scale", Label: "Scale", Min: 0.5, Max: 10, Default: 3, Step: 0.1},
			{ID: "intensity", Label: "Intensity", Min: 0, Max: 100, Default: 20, Step: 1},
			{ID: "maxIterations", Label: "Max Iterations", Min: 1, Max: 64, Default: 16, Step: 1},
			{ID: "phoenixP", Label: "Phoenix P", Min: -1, Max: 1, Default: 0.5626, Step: 0.01},
			{ID: "phoenixQ", Label: "Phoenix Q", Min: -1, Max: 1, Default: -0.5, Step: 0.01},
		},
		generator: generateFractalWarp,
	},
	"kaleidoscope": {
		Info: EffectInfo{ID: "kaleidoscope", Name: "Kaleidoscope", Category: "Distort"},
		Params: []ParamSpec{
			{ID: "segments", Label: "Segments", Min: 2, Max: 16, Default: 6, Step: 1},
			{ID: "rotation", Label: "Rotation", Min: 0, Max: 360, Default: 0, Step: 1},
		},
		generator: generateKaleidoscope,
	},
	"mandelbrot": {
		Info: EffectInfo{ID: "mandelbrot", Name: "Mandelbrot", Category: "Generate"},
		Params: []ParamSpec{
			{ID: "centerX", Label: "Center X", Min: -3, Max: 3, Default: -0.5, Step: 0.01},
			{ID: "centerY", Label: "Center Y", Min: -3, Max: 3, Default: 0, Step: 0.01},
			{ID: "zoom", Label: "Zoom", Min: 0.1, Max: 1000, Default: 1, Step: 0.1},
			{ID: "maxIterations", Label: "Max Iterations", Min: 1, Max: 256, Default: 64, Step: 1},
			{ID: "palette", Label: "Palette", Min: 0, Max: 3, Default: 0, Step: 1},
			{ID: "blendMode", Label: "Blend Mode", Min: 0, Max: 5, Default: 0, Step: 1},
			{ID: "opacity", Label: "Opacity", Min: 0, Max: 1, Default: 1, Step: 0.01},
		},
		generator: generateMandelbrot,
	},
	"julia": {
		Info: EffectInfo{ID: "julia", Name: "Julia", Category: "Generate"},
		Params: []ParamSpec{
			{ID: "centerX", Label: "Center X", Min: -3, Max: 3, Default: 0, Step: 0.01},
			{ID: "centerY", Label: "Center Y", Min: -3, Max: 3, Default: 0, Step: 0.01},
			{ID: "zoom", Label: "Zoom", Min: 0.1, Max: 1000, Default: 1, Step: 0.1},
			{ID: "juliaRe", Label: "Constant Re", Min: -2, Max: 2, Default: -0.7, Step: 0.005},
			{ID: "juliaIm", Label: "Constant Im", Min: -2, Max: 2, Default: 0.27015, Step: 0.005},
			{ID: "maxIterations", Label: "Max Iterations", Min: 1, Max: 256, Default: 64, Step: 1},
			{ID: "palette", Label: "Palette", Min: 0, Max: 3, Default: 0, Step: 1},
			{ID: "blendMode", Label: "Blend Mode", Min: 0, Max: 5, Default: 0, Step: 1},
			{ID: "opacity", Label: "Opacity", Min: 0, Max: 1, Default: 1, Step: 0.01},
		},
		generator: generateJulia,
	},
	"unifiedReaction": {
		Info: EffectInfo{ID: "unifiedReaction", Name: "Reaction Lab", Category: "Organic"},
		Params: []ParamSpec{
			{ID: "preset", Label: "Preset", Min: 0, Max: 7, Default: 0, Step: 1},
			{ID: "iterations", Label: "Iterations", Min: 1, Max: 500, Default: 100, Step: 1},
			{ID: "pattern", Label: "Seed Pattern", Min: 0, Max: 3, Default: 0, Step: 1},
			{ID: "palette", Label: "Palette", Min: 0, Max: 3, Default: 2, Step: 1},
			{ID: "blendMode", Label: "Blend Mode", Min: 0, Max: 5, Default: 5, Step: 1},
			{ID: "opacity", Label: "Opacity", Min: 0, Max: 1, Default: 0.8, Step: 0.01},
			{ID: "seed", Label: "Seed", Min: 0, Max: 1 << 30, Default: 7, Step: 1},
		},
		generator: generateReaction,
	},
	"unifiedFlow": {
		Info: EffectInfo{ID: "unifiedFlow", Name: "Flow Field Studio", Category: "Paint"},
		Params: []ParamSpec{
			{ID: "preset", Label: "Field Type", Min: 0, Max: 3, Default: 0, Step: 1},
			{ID: "particles", Label: "Particles", Min: 100, Max: 20000, Default: 2000, Step: 100},
			{ID: "steps", Label: "Steps", Min: 1, Max: 200, Default: 60, Step: 1},
			{ID: "strength", Label: "Strength", Min: 0, Max: 10, Default: 2, Step: 0.1},
			{ID: "blend", Label: "Blend", Min: 0, Max: 1, Default: 0.8, Step: 0.01},
			{ID: "seed", Label: "Seed", Min: 0, Max: 1 << 30, Default: 7, Step: 1},
		},
		generator: generateFlow,
	},
	"noiseTexture": {
		Info: EffectInfo{ID: "noiseTexture", Name: "Noise Texture", Category: "Generate"},
		Params: []ParamSpec{
			{ID: "seed", Label: "Seed", Min: 0, Max: 1 << 30, Default: 7, Step: 1},
			{ID: "scale", Label: "Scale", Min: 1, Max: 100, Default: 20, Step: 1},
			{ID: "octaves", Label: "Octaves", Min: 1, Max: 8, Default: 4, Step: 1},
			{ID: "persistence", Label: "Persistence", Min: 0.1, Max: 1, Default: 0.5, Step: 0.05},
			{ID: "blendMode", Label: "Blend Mode", Min: 0, Max: 5, Default: 2, Step: 1},
			{ID: "opacity", Label: "Opacity", Min: 0, Max: 1, Default: 0.6, Step: 0.01},
		},
		generator: generateNoiseTexture,
	},
}

// paletteByIndex maps the numeric palette parameter onto a palette
// function, logging a warning for out-of-table values.
func paletteByIndex(idx float64) fractal.Palette {
	names := []string{"rainbow", "fire", "ocean", "psychedelic"}
	i := int(idx)
	if i < 0 || i >= len(names) {
		Logger().Warn("unknown palette index, using rainbow", "index", i)
		return fractal.Rainbow
	}
	pal, _ := fractal.PaletteByName(names[i])
	return pal
}

// blendByIndex maps the numeric blendMode parameter onto a blend mode.
func blendByIndex(idx float64) blend.Mode {
	modes := []blend.Mode{
		blend.ModeNormal, blend.ModeScreen, blend.ModeOverlay,
		blend.ModeMultiply, blend.ModeAdd, blend.ModeSoftLight,
	}
	i := int(idx)
	if i < 0 || i >= len(modes) {
		Logger().Warn("unknown blend mode index, using screen", "index", i)
		return blend.ModeScreen
	}
	return modes[i]
}

func generateUnifiedBlur(e *Engine, src []uint8, width, height int, params map[string]float64) []uint8 {
	result := e.pool.Acquire(len(src))
	preset := int(param(params, "preset", 0))
	radius := param(params, "radius", 4)

	switch preset {
	case 2:
		buffer.Convolve3x3(src, result, width, height, filter.SharpenKernel)
	case 3:
		buffer.Convolve3x3(src, result, width, height, filter.EdgeKernel)
	case 4:
		buffer.Convolve3x3(src, result, width, height, filter.EmbossKernel)
	default:
		var kernel []float64
		if preset == 1 {
			kernel = filter.GaussianKernel(radius / 3)
		} else {
			kernel = filter.BoxKernel(int(radius))
		}
		tmp := e.pool.Acquire(len(src))
		filter.Separable(src, tmp, result, width, height, kernel)
		e.pool.Release(tmp)
	}
	return result
}

// generateFractalWarp displaces every pixel by a fractal-derived offset.
// Out-of-bounds samples wrap modulo the image dimensions.
func generateFractalWarp(e *Engine, src []uint8, width, height int, params map[string]float64) []uint8 {
	result := e.pool.Acquire(len(src))

	preset := int(param(params, "preset", 0))
	scale := param(params, "scale", 3)
	intensity := param(params, "intensity", 20)
	maxIter := int(param(params, "maxIterations", 16))
	p := param(params, "phoenixP", 0.5626)
	q := param(params, "phoenixQ", -0.5)

	minDim := width
	if height < minDim {
		minDim = height
	}
	halfW := float64(width) / 2
	halfH := float64(height) / 2

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			fx := (float64(x) - halfW) / float64(minDim) * scale
			fy := (float64(y) - halfH) / float64(minDim) * scale

			var d fractal.Displacement
			switch preset {
			case 1:
				d = fractal.BurningShip(fx, fy, maxIter)
			case 2:
				d = fractal.Tricorn(fx, fy, maxIter)
			case 3:
				d = fractal.Phoenix(fx, fy, p, q, maxIter)
			default:
				d = fractal.Newton(fx, fy, maxIter)
			}

			sx := wrapCoord(x+int(d.DX*intensity), width)
			sy := wrapCoord(y+int(d.DY*intensity), height)

			si := buffer.PixelIndex(sx, sy, width)
			oi := buffer.PixelIndex(x, y, width)
			result[oi] = src[si]
			result[oi+1] = src[si+1]
			result[oi+2] = src[si+2]
			result[oi+3] = src[si+3]
		}
	}
	return result
}

// generateKaleidoscope folds the image into mirrored angular sectors.
// Out-of-bounds samples fall back to the nearest edge color, not wrap;
// wrapping here would leak the opposite edge into the mirror seams.
func generateKaleidoscope(e *Engine, src []uint8, width, height int, params map[string]float64) []uint8 {
	result := e.pool.Acquire(len(src))

	segments := param(params, "segments", 6)
	rotation := param(params, "rotation", 0) * math.Pi / 180

	cx := float64(width) / 2
	cy := float64(height) / 2
	sector := 2 * math.Pi / segments

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			dx := float64(x) - cx
			dy := float64(y) - cy
			r := math.Hypot(dx, dy)
			theta := math.Atan2(dy, dx) - rotation

			// Fold the angle into the first sector, mirroring alternates.
			theta = math.Mod(theta, sector)
			if theta < 0 {
				theta += sector
			}
			if theta > sector/2 {
				theta = sector - theta
			}
			theta += rotation

			sx := int(cx + r*math.Cos(theta))
			sy := int(cy + r*math.Sin(theta))

			// Edge-color fallback for samples outside the frame.
			if sx < 0 {
				sx = 0
			} else if sx >= width {
				sx = width - 1
			}
			if sy < 0 {
				sy = 0
			} else if sy >= height {
				sy = height - 1
			}

			si := buffer.PixelIndex(sx, sy, width)
			oi := buffer.PixelIndex(x, y, width)
			result[oi] = src[si]
			result[oi+1] = src[si+1]
			result[oi+2] = src[si+2]
			result[oi+3] = src[si+3]
		}
	}
	return result
}

func generateMandelbrot(e *Engine, src []uint8, width, height int, params map[string]float64) []uint8 {
	return generateRegion(e, src, width, height, params, false)
}

func generateJulia(e *Engine, src []uint8, width, height int, params map[string]float64) []uint8 {
	return generateRegion(e, src, width, height, params, true)
}

func generateRegion(e *Engine, src []uint8, width, height int, params map[string]float64, julia bool) []uint8 {
	field := e.pool.Acquire(len(src))
	opts := fractal.RegionOptions{
		CenterX: param(params, "centerX", 0),
		CenterY: param(params, "centerY", 0),
		Zoom:    param(params, "zoom", 1),
		MaxIter: int(param(params, "maxIterations", 64)),
		Palette: paletteByIndex(param(params, "palette", 0)),
	}
	if julia {
		opts.JuliaC = fractal.Complex{
			Re: param(params, "juliaRe", -0.7),
			Im: param(params, "juliaIm", 0.27015),
		}
		fractal.RenderJulia(field, width, height, opts)
	} else {
		fractal.RenderMandelbrot(field, width, height, opts)
	}

	result := e.pool.Acquire(len(src))
	blend.Composite(result, src, field,
		blendByIndex(param(params, "blendMode", 0)),
		param(params, "opacity", 1))
	e.pool.Release(field)
	return result
}

func generateReaction(e *Engine, src []uint8, width, height int, params map[string]float64) []uint8 {
	presets := reaction.Presets
	pi := int(param(params, "preset", 0))
	if pi < 0 || pi >= len(presets) {
		pi = 0
	}
	patterns := []reaction.SeedPattern{
		reaction.SeedCenter, reaction.SeedRandom,
		reaction.SeedStripes, reaction.SeedSpots,
	}
	pat := int(param(params, "pattern", 0))
	if pat < 0 || pat >= len(patterns) {
		pat = 0
	}

	grid := reaction.Simulate(reaction.Config{
		Width:      width,
		Height:     height,
		FeedRate:   presets[pi].FeedRate,
		KillRate:   presets[pi].KillRate,
		DiffusionA: 1.0,
		DiffusionB: 0.5,
		Iterations: int(param(params, "iterations", 100)),
		Seed:       int64(param(params, "seed", 7)),
		Pattern:    patterns[pat],
	})

	field := e.pool.Acquire(len(src))
	reaction.Render(field, grid, paletteByIndex(param(params, "palette", 2)))

	result := e.pool.Acquire(len(src))
	blend.Composite(result, src, field,
		blendByIndex(param(params, "blendMode", 5)),
		param(params, "opacity", 0.8))
	e.pool.Release(field)
	return result
}

func generateFlow(e *Engine, src []uint8, width, height int, params map[string]float64) []uint8 {
	result := e.pool.Acquire(len(src))
	fields := []flow.FieldType{
		flow.FieldSwirl, flow.FieldTurbulence, flow.FieldWave, flow.FieldRadial,
	}
	fi := int(param(params, "preset", 0))
	if fi < 0 || fi >= len(fields) {
		fi = 0
	}

	flow.Run(result, src, width, height, flow.Config{
		FieldType: fields[fi],
		Particles: int(param(params, "particles", 2000)),
		Steps:     int(param(params, "steps", 60)),
		Strength:  param(params, "strength", 2),
		Blend:     param(params, "blend", 0.8),
		Seed:      int64(param(params, "seed", 7)),
	})
	return result
}

func generateNoiseTexture(e *Engine, src []uint8, width, height int, params map[string]float64) []uint8 {
	field := e.pool.Acquire(len(src))

	n := noise.New(int64(param(params, "seed", 7)))
	scale := param(params, "scale", 20)
	octaves := int(param(params, "octaves", 4))
	persistence := param(params, "persistence", 0.5)

	freq := scale / 1000
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := n.FBM(float64(x)*freq, float64(y)*freq, octaves, persistence)
			g := buffer.Clamp255((v*0.5 + 0.5) * 255)
			i := buffer.PixelIndex(x, y, width)
			field[i] = g
			field[i+1] = g
			field[i+2] = g
			field[i+3] = 255
		}
	}

	result := e.pool.Acquire(len(src))
	blend.Composite(result, src, field,
		blendByIndex(param(params, "blendMode", 2)),
		param(params, "opacity", 0.6))
	e.pool.Release(field)
	return result
}

// wrapCoord wraps v into [0, size) modulo the image dimension.
func wrapCoord(v, size int) int {
	v %= size
	if v < 0 {
		v += size
	}
	return v
}
