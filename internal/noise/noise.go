// Package noise implements seeded coherent 2D noise and fractional Brownian
// motion for the prism effect generators.
package noise

import "math/rand"

// Noise is a seeded gradient-noise generator. The permutation table is
// derived once from the seed and owned by the instance for its lifetime, so
// two instances with the same seed produce bit-identical output.
type Noise struct {
	perm [512]int
}

// New creates a noise generator for the given seed.
func New(seed int64) *Noise {
	n := &Noise{}
	r := rand.New(rand.NewSource(seed))

	p := make([]int, 256)
	for i := range p {
		p[i] = i
	}
	r.Shuffle(256, func(i, j int) { p[i], p[j] = p[j], p[i] })

	// Doubled table avoids index wrapping in the hot path.
	for i := 0; i < 512; i++ {
		n.perm[i] = p[i&255]
	}
	return n
}

// fade is the quintic smoothing curve 6t⁵ − 15t⁴ + 10t³.
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// grad computes the dot product of a hashed gradient direction and (x, y).
func grad(hash int, x, y float64) float64 {
	h := hash & 7
	u, v := x, y
	if h >= 4 {
		u, v = y, x
	}
	if h&1 != 0 {
		u = -u
	}
	if h&2 != 0 {
		v = -v
	}
	return u + v
}

// Eval2 returns the noise value at (x, y), in [-1, 1].
func (n *Noise) Eval2(x, y float64) float64 {
	xi := fastFloor(x)
	yi := fastFloor(y)
	xf := x - float64(xi)
	yf := y - float64(yi)

	xi &= 255
	yi &= 255

	u := fade(xf)
	v := fade(yf)

	aa := n.perm[n.perm[xi]+yi]
	ab := n.perm[n.perm[xi]+yi+1]
	ba := n.perm[n.perm[xi+1]+yi]
	bb := n.perm[n.perm[xi+1]+yi+1]

	x1 := lerp(grad(aa, xf, yf), grad(ba, xf-1, yf), u)
	x2 := lerp(grad(ab, xf, yf-1), grad(bb, xf-1, yf-1), u)

	// grad produces values in [-2, 2]; scale back into [-1, 1].
	return lerp(x1, x2, v) * 0.5
}

// FBM sums octaves of noise at doubling frequency and amplitude decaying by
// persistence per octave, normalized by total amplitude so the result stays
// in [-1, 1].
func (n *Noise) FBM(x, y float64, octaves int, persistence float64) float64 {
	if octaves < 1 {
		octaves = 1
	}

	total := 0.0
	amplitude := 1.0
	frequency := 1.0
	maxAmplitude := 0.0

	for i := 0; i < octaves; i++ {
		total += n.Eval2(x*frequency, y*frequency) * amplitude
		maxAmplitude += amplitude
		amplitude *= persistence
		frequency *= 2
	}
	return total / maxAmplitude
}

func fastFloor(v float64) int {
	i := int(v)
	if v < float64(i) {
		return i - 1
	}
	return i
}
