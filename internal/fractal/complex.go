// Package fractal implements the complex-plane generators behind prism's
// distortion and region-render effects.
package fractal

import "math"

// Complex is an immutable complex value. The generators here need only a
// handful of operations, and an explicit struct keeps the escape-time loops
// free of interface or heap traffic.
type Complex struct {
	Re, Im float64
}

// Add returns c + o.
func (c Complex) Add(o Complex) Complex {
	return Complex{c.Re + o.Re, c.Im + o.Im}
}

// Sub returns c − o.
func (c Complex) Sub(o Complex) Complex {
	return Complex{c.Re - o.Re, c.Im - o.Im}
}

// Mul returns c · o.
func (c Complex) Mul(o Complex) Complex {
	return Complex{
		Re: c.Re*o.Re - c.Im*o.Im,
		Im: c.Re*o.Im + c.Im*o.Re,
	}
}

// Conj returns the complex conjugate.
func (c Complex) Conj() Complex {
	return Complex{c.Re, -c.Im}
}

// Scale returns c scaled by the real factor s.
func (c Complex) Scale(s float64) Complex {
	return Complex{c.Re * s, c.Im * s}
}

// AbsSq returns |c|², avoiding the square root in escape tests.
func (c Complex) AbsSq() float64 {
	return c.Re*c.Re + c.Im*c.Im
}

// Abs returns |c|.
func (c Complex) Abs() float64 {
	return math.Hypot(c.Re, c.Im)
}

// Div returns c / o. Division by a zero magnitude returns the zero value.
func (c Complex) Div(o Complex) Complex {
	d := o.AbsSq()
	if d == 0 {
		return Complex{}
	}
	return Complex{
		Re: (c.Re*o.Re + c.Im*o.Im) / d,
		Im: (c.Im*o.Re - c.Re*o.Im) / d,
	}
}
