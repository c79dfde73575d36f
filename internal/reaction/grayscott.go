// Package reaction implements the Gray-Scott reaction-diffusion model used
// by prism's organic-pattern effects.
package reaction

import (
	"math/rand"

	"gonum.org/v1/gonum/floats"

	"github.com/prismfx/prism/internal/fractal"
)

// SeedPattern selects how the B concentration is initially seeded.
type SeedPattern string

const (
	SeedCenter  SeedPattern = "center"
	SeedRandom  SeedPattern = "random"
	SeedStripes SeedPattern = "stripes"
	SeedSpots   SeedPattern = "spots"
)

// Preset is a named (feedRate, killRate) pair known to produce a distinct
// pattern family.
type Preset struct {
	Name     string
	FeedRate float64
	KillRate float64
}

// Presets lists the named parameter pairs in preset-index order.
var Presets = []Preset{
	{"coral", 0.0545, 0.062},
	{"mitosis", 0.0367, 0.0649},
	{"spots", 0.03, 0.062},
	{"stripes", 0.025, 0.056},
	{"bubbles", 0.012, 0.05},
	{"worms", 0.078, 0.061},
	{"maze", 0.029, 0.057},
	{"holes", 0.039, 0.058},
}

// Config parameterizes one simulation run.
type Config struct {
	Width, Height int
	FeedRate      float64
	KillRate      float64
	DiffusionA    float64
	DiffusionB    float64
	Iterations    int
	Seed          int64
	Pattern       SeedPattern
}

// Laplacian kernel weights for the 3×3 discretization. Fixed constants, not
// tunable parameters.
const (
	kernelCorner = 0.05
	kernelEdge   = 0.2
	kernelCenter = -1.0
)

// Grid holds the two concentration fields of one simulation. The grids are
// scoped to a single Simulate call and double-buffered internally; they are
// never retained across calls.
type Grid struct {
	A, B          []float32
	Width, Height int
}

// Simulate runs the Gray-Scott model for cfg.Iterations steps and returns
// the final grid. Both fields are clamped to [0, 1] after every step.
func Simulate(cfg Config) *Grid {
	w, h := cfg.Width, cfg.Height
	n := w * h
	if n <= 0 {
		return &Grid{Width: w, Height: h}
	}
	if cfg.DiffusionA == 0 {
		cfg.DiffusionA = 1.0
	}
	if cfg.DiffusionB == 0 {
		cfg.DiffusionB = 0.5
	}

	a := make([]float32, n)
	b := make([]float32, n)
	nextA := make([]float32, n)
	nextB := make([]float32, n)

	for i := range a {
		a[i] = 1
	}
	seedB(b, w, h, cfg.Pattern, cfg.Seed)

	for it := 0; it < cfg.Iterations; it++ {
		step(a, b, nextA, nextB, w, h, cfg)
		a, nextA = nextA, a
		b, nextB = nextB, b
	}

	return &Grid{A: a, B: b, Width: w, Height: h}
}

// step computes one full update into nextA/nextB. The Laplacian for a cell
// reads unmodified neighbor values, so the update never writes in place.
func step(a, b, nextA, nextB []float32, w, h int, cfg Config) {
	feed := float32(cfg.FeedRate)
	kill := float32(cfg.KillRate)
	da := float32(cfg.DiffusionA)
	db := float32(cfg.DiffusionB)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := y*w + x
			la := laplacian(a, x, y, w, h)
			lb := laplacian(b, x, y, w, h)

			av := a[i]
			bv := b[i]
			abb := av * bv * bv

			na := av + da*la - abb + feed*(1-av)
			nb := bv + db*lb + abb - (kill+feed)*bv

			nextA[i] = clampUnit32(na)
			nextB[i] = clampUnit32(nb)
		}
	}
}

// laplacian applies the fixed 3×3 kernel, clamping samples at the edges.
func laplacian(g []float32, x, y, w, h int) float32 {
	sample := func(sx, sy int) float32 {
		if sx < 0 {
			sx = 0
		} else if sx >= w {
			sx = w - 1
		}
		if sy < 0 {
			sy = 0
		} else if sy >= h {
			sy = h - 1
		}
		return g[sy*w+sx]
	}

	var sum float32
	sum += sample(x-1, y-1) * kernelCorner
	sum += sample(x+1, y-1) * kernelCorner
	sum += sample(x-1, y+1) * kernelCorner
	sum += sample(x+1, y+1) * kernelCorner
	sum += sample(x, y-1) * kernelEdge
	sum += sample(x, y+1) * kernelEdge
	sum += sample(x-1, y) * kernelEdge
	sum += sample(x+1, y) * kernelEdge
	sum += g[y*w+x] * kernelCenter
	return sum
}

func seedB(b []float32, w, h int, pattern SeedPattern, seed int64) {
	r := rand.New(rand.NewSource(seed))

	switch pattern {
	case SeedRandom:
		for i := range b {
			if r.Float64() < 0.02 {
				b[i] = 1
			}
		}
	case SeedStripes:
		for y := 0; y < h; y++ {
			on := (y/8)%2 == 0
			for x := 0; x < w; x++ {
				if on {
					b[y*w+x] = 1
				}
			}
		}
	case SeedSpots:
		spacing := 16
		for y := spacing / 2; y < h; y += spacing {
			for x := spacing / 2; x < w; x += spacing {
				stamp(b, w, h, x, y, 2)
			}
		}
	default: // SeedCenter
		radius := minInt(w, h) / 10
		if radius < 2 {
			radius = 2
		}
		stamp(b, w, h, w/2, h/2, radius)
	}
}

// stamp writes a filled disc of B = 1 centered at (cx, cy).
func stamp(b []float32, w, h, cx, cy, radius int) {
	r2 := radius * radius
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy > r2 {
				continue
			}
			x, y := cx+dx, cy+dy
			if x < 0 || x >= w || y < 0 || y >= h {
				continue
			}
			b[y*w+x] = 1
		}
	}
}

// Render maps the grid to RGBA pixels in dst using the palette. The pattern
// signal A−B is contrast-normalized over the whole grid before the palette
// lookup so low-activity runs still span the full ramp.
func Render(dst []uint8, g *Grid, pal fractal.Palette) {
	n := g.Width * g.Height
	if n == 0 || len(g.A) < n || len(g.B) < n {
		return
	}
	if pal == nil {
		pal = fractal.Rainbow
	}

	signal := make([]float64, n)
	for i := 0; i < n; i++ {
		signal[i] = float64(g.A[i] - g.B[i])
	}

	lo := floats.Min(signal)
	hi := floats.Max(signal)
	span := hi - lo
	if span == 0 {
		span = 1
	}

	for i := 0; i < n; i++ {
		t := (signal[i] - lo) / span
		r, gr, b := pal(t)
		o := i * 4
		dst[o] = r
		dst[o+1] = gr
		dst[o+2] = b
		dst[o+3] = 255
	}
}

func clampUnit32(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
