package fractal

import "math"

// Palette maps a normalized iteration count t ∈ [0, 1] to an RGB color.
type Palette func(t float64) (r, g, b uint8)

// PaletteByName returns the palette for name and whether the name was known.
// Unknown names fall back to the rainbow palette.
func PaletteByName(name string) (Palette, bool) {
	switch name {
	case "rainbow":
		return Rainbow, true
	case "fire":
		return Fire, true
	case "ocean":
		return Ocean, true
	case "psychedelic":
		return Psychedelic, true
	default:
		return Rainbow, false
	}
}

// Rainbow cycles the hue wheel once over t.
func Rainbow(t float64) (uint8, uint8, uint8) {
	r := math.Sin(t*2*math.Pi)*0.5 + 0.5
	g := math.Sin(t*2*math.Pi+2*math.Pi/3)*0.5 + 0.5
	b := math.Sin(t*2*math.Pi+4*math.Pi/3)*0.5 + 0.5
	return uint8(r * 255), uint8(g * 255), uint8(b * 255)
}

// Fire ramps black → red → yellow → white.
func Fire(t float64) (uint8, uint8, uint8) {
	r := clampUnit(t * 3)
	g := clampUnit(t*3 - 1)
	b := clampUnit(t*3 - 2)
	return uint8(r * 255), uint8(g * 255), uint8(b * 255)
}

// Ocean ramps deep blue → cyan → white.
func Ocean(t float64) (uint8, uint8, uint8) {
	r := clampUnit(t*2 - 1)
	g := clampUnit(t * t * 1.2)
	b := clampUnit(0.3 + t*0.7)
	return uint8(r * 255), uint8(g * 255), uint8(b * 255)
}

// Psychedelic runs high-frequency phase-shifted color cycles.
func Psychedelic(t float64) (uint8, uint8, uint8) {
	r := math.Sin(t*16*math.Pi)*0.5 + 0.5
	g := math.Sin(t*16*math.Pi+1.5)*0.5 + 0.5
	b := math.Sin(t*16*math.Pi+3.0)*0.5 + 0.5
	return uint8(r * 255), uint8(g * 255), uint8(b * 255)
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
