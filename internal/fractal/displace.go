package fractal

import "math"

// Displacement is the result of sampling a displacement generator at one
// point: a per-pixel offset plus a scalar in [0, 1] used for coloring or
// blend strength.
type Displacement struct {
	DX, DY float64
	Value  float64
}

// escapeRadiusSq is the squared escape threshold shared by the escape-time
// generators.
const escapeRadiusSq = 4.0

// newtonEpsilon bounds both the derivative magnitude and the correction step
// below which the root search terminates early.
const newtonEpsilon = 0.001

// Newton runs Newton's method on f(z) = z³ − 1 starting from (x, y) and
// returns the displacement from the starting point to the settled root,
// with Value = iterationsUsed / maxIter.
func Newton(x, y float64, maxIter int) Displacement {
	if maxIter < 1 {
		maxIter = 1
	}

	z := Complex{x, y}
	used := maxIter
	for i := 0; i < maxIter; i++ {
		// f(z) = z³ − 1, f'(z) = 3z²
		z2 := z.Mul(z)
		f := z2.Mul(z).Sub(Complex{1, 0})
		df := z2.Scale(3)

		if df.Abs() < newtonEpsilon {
			used = i
			break
		}
		step := f.Div(df)
		z = z.Sub(step)
		if step.Abs() < newtonEpsilon {
			used = i + 1
			break
		}
	}
	return Displacement{
		DX:    z.Re - x,
		DY:    z.Im - y,
		Value: float64(used) / float64(maxIter),
	}
}

// BurningShip iterates z ← (|Re(z)| + i|Im(z)|)² + c with c = (x, y).
// Value is the normalized escape iteration; displacement is the final
// iterate relative to the start. The origin escapes immediately: Value is 1
// and displacement exactly zero.
func BurningShip(x, y float64, maxIter int) Displacement {
	if maxIter < 1 {
		maxIter = 1
	}
	if x == 0 && y == 0 {
		return Displacement{Value: 1}
	}

	c := Complex{x, y}
	z := Complex{}
	used := maxIter
	for i := 0; i < maxIter; i++ {
		z = Complex{math.Abs(z.Re), math.Abs(z.Im)}
		z = z.Mul(z).Add(c)
		if z.AbsSq() > escapeRadiusSq {
			used = i + 1
			break
		}
	}
	return Displacement{
		DX:    z.Re - x,
		DY:    z.Im - y,
		Value: float64(used) / float64(maxIter),
	}
}

// Tricorn iterates the conjugate map z ← z̄² + c. The generator is symmetric
// about the real axis: Tricorn(x, −y) has the same DX and negated DY as
// Tricorn(x, y).
func Tricorn(x, y float64, maxIter int) Displacement {
	if maxIter < 1 {
		maxIter = 1
	}

	c := Complex{x, y}
	z := Complex{}
	used := maxIter
	for i := 0; i < maxIter; i++ {
		zc := z.Conj()
		z = zc.Mul(zc).Add(c)
		if z.AbsSq() > escapeRadiusSq {
			used = i + 1
			break
		}
	}
	return Displacement{
		DX:    z.Re - x,
		DY:    z.Im - y,
		Value: float64(used) / float64(maxIter),
	}
}

// Phoenix iterates z ← z² + p·c + q·z₋₁, feeding back the previous iterate.
// Different (p, q) pairs at the same sample point generally produce
// different displacement.
func Phoenix(x, y, p, q float64, maxIter int) Displacement {
	if maxIter < 1 {
		maxIter = 1
	}

	c := Complex{x, y}
	z := c
	prev := Complex{}
	used := maxIter
	for i := 0; i < maxIter; i++ {
		next := z.Mul(z).Add(c.Scale(p)).Add(prev.Scale(q))
		prev = z
		z = next
		if z.AbsSq() > escapeRadiusSq {
			used = i + 1
			break
		}
	}
	return Displacement{
		DX:    z.Re - x,
		DY:    z.Im - y,
		Value: float64(used) / float64(maxIter),
	}
}
