package flow

import (
	"math/rand"

	"github.com/prismfx/prism/internal/buffer"
)

// damping is the per-step velocity retention factor (friction).
const damping = 0.95

// Particle is one advected tracer. Particles are ephemeral: a fresh set is
// created for every effect invocation.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Age     int
	MaxAge  int
	R, G, B uint8
}

// Config parameterizes one particle run.
type Config struct {
	FieldType FieldType
	Particles int
	Steps     int
	Strength  float64
	Blend     float64
	Seed      int64
}

// Run advects cfg.Particles tracers through the field for cfg.Steps rounds,
// drawing additive trails into dst. dst starts as a 95%-darkened copy of
// src (trail persistence), and the finished trails are alpha-blended back
// against the pristine original by cfg.Blend. src is never written.
func Run(dst, src []uint8, width, height int, cfg Config) {
	if width <= 0 || height <= 0 {
		return
	}
	if cfg.Particles < 1 {
		cfg.Particles = 1
	}
	if cfg.Steps < 1 {
		cfg.Steps = 1
	}

	field := BuildField(width, height, cfg.FieldType, cfg.Seed)
	rng := rand.New(rand.NewSource(cfg.Seed))

	// Trail persistence: the canvas keeps a dim memory of the source.
	for i := 0; i+3 < len(src); i += 4 {
		dst[i] = uint8(float64(src[i]) * 0.05)
		dst[i+1] = uint8(float64(src[i+1]) * 0.05)
		dst[i+2] = uint8(float64(src[i+2]) * 0.05)
		dst[i+3] = src[i+3]
	}

	particles := make([]Particle, cfg.Particles)
	for i := range particles {
		spawn(&particles[i], src, width, height, rng)
	}

	for step := 0; step < cfg.Steps; step++ {
		for i := range particles {
			p := &particles[i]

			fx, fy := field.Vector(p.X, p.Y)
			p.VX = (p.VX + fx*cfg.Strength) * damping
			p.VY = (p.VY + fy*cfg.Strength) * damping

			x0, y0 := p.X, p.Y
			p.X += p.VX
			p.Y += p.VY

			wrapped := wrap(p, width, height)
			if !wrapped {
				// Older trail segments carry less ink.
				fade := 1 - float64(p.Age)/float64(p.MaxAge+1)
				buffer.DrawLine(dst, width, height,
					int(x0), int(y0), int(p.X), int(p.Y),
					p.R, p.G, p.B, 0.35*fade, true)
			}

			p.Age++
			if p.Age > p.MaxAge {
				spawn(p, src, width, height, rng)
			}
		}
	}

	// Blend the trail canvas back against the true original.
	t := buffer.Clamp01(cfg.Blend)
	for i := 0; i+3 < len(src); i += 4 {
		dst[i] = buffer.Clamp255(buffer.Lerp(float64(src[i]), float64(dst[i]), t))
		dst[i+1] = buffer.Clamp255(buffer.Lerp(float64(src[i+1]), float64(dst[i+1]), t))
		dst[i+2] = buffer.Clamp255(buffer.Lerp(float64(src[i+2]), float64(dst[i+2]), t))
		dst[i+3] = src[i+3]
	}
}

// spawn resets a particle at a random position, sampling the source color
// underneath it.
func spawn(p *Particle, src []uint8, width, height int, rng *rand.Rand) {
	p.X = rng.Float64() * float64(width)
	p.Y = rng.Float64() * float64(height)
	p.VX = 0
	p.VY = 0
	p.Age = 0
	p.MaxAge = 20 + rng.Intn(40)

	r, g, b, _, ok := buffer.ReadPixel(src, int(p.X), int(p.Y), width, height)
	if !ok {
		r, g, b = 255, 255, 255
	}
	p.R, p.G, p.B = r, g, b
}

// wrap moves a particle that crossed an image edge to the opposite side.
// It reports whether a wrap happened, so the caller can skip drawing the
// segment that would streak across the whole frame.
func wrap(p *Particle, width, height int) bool {
	wrapped := false
	w := float64(width)
	h := float64(height)

	for p.X < 0 {
		p.X += w
		wrapped = true
	}
	for p.X >= w {
		p.X -= w
		wrapped = true
	}
	for p.Y < 0 {
		p.Y += h
		wrapped = true
	}
	for p.Y >= h {
		p.Y -= h
		wrapped = true
	}
	return wrapped
}
