// Package blend implements the per-channel blend modes and opacity
// compositing used to merge generated fields with source images.
//
// Colors here are straight (non-premultiplied) RGBA bytes, matching the
// engine's pixel buffers. The mulDiv255 helpers avoid integer division in
// the per-pixel hot path.
package blend

// Mode selects a per-channel blend function.
type Mode string

const (
	ModeNormal    Mode = "normal"
	ModeScreen    Mode = "screen"
	ModeOverlay   Mode = "overlay"
	ModeMultiply  Mode = "multiply"
	ModeAdd       Mode = "add"
	ModeSoftLight Mode = "softlight"
)

// div255 divides x by 255 using the fast shift approximation (x+255)>>8.
// Maximum error is +1, imperceptible in channel blending.
func div255(x uint16) uint16 {
	return (x + 255) >> 8
}

// mulDiv255 multiplies two channel bytes and renormalizes to [0, 255].
func mulDiv255(a, b uint8) uint8 {
	return uint8(div255(uint16(a) * uint16(b)))
}

// Screen lightens: 255 − (255−base)(255−overlay)/255.
func Screen(base, overlay uint8) uint8 {
	return 255 - mulDiv255(255-base, 255-overlay)
}

// Multiply darkens: base·overlay/255.
func Multiply(base, overlay uint8) uint8 {
	return mulDiv255(base, overlay)
}

// Overlay multiplies dark bases and screens light ones, switching at 128.
func Overlay(base, overlay uint8) uint8 {
	if base < 128 {
		return uint8(div255(2 * uint16(base) * uint16(overlay)))
	}
	return 255 - uint8(div255(2*uint16(255-base)*uint16(255-overlay)))
}

// Add is clamped linear dodge.
func Add(base, overlay uint8) uint8 {
	sum := uint16(base) + uint16(overlay)
	if sum > 255 {
		return 255
	}
	return uint8(sum)
}

// SoftLight darkens or lightens depending on the overlay, gentler than
// Overlay (W3C soft-light formula).
func SoftLight(base, overlay uint8) uint8 {
	b := float64(base) / 255
	o := float64(overlay) / 255

	var out float64
	if o <= 0.5 {
		out = b - (1-2*o)*b*(1-b)
	} else {
		var d float64
		if b <= 0.25 {
			d = ((16*b-12)*b + 4) * b
		} else {
			d = sqrtNewton(b)
		}
		out = b + (2*o-1)*(d-b)
	}
	if out < 0 {
		out = 0
	} else if out > 1 {
		out = 1
	}
	return uint8(out*255 + 0.5)
}

// sqrtNewton is Newton's method seeded at the midpoint; three rounds are
// within a half channel step for inputs in [0.25, 1].
func sqrtNewton(v float64) float64 {
	x := (v + 1) / 2
	for i := 0; i < 3; i++ {
		x = (x + v/x) / 2
	}
	return x
}

// Func is a per-channel blend function.
type Func func(base, overlay uint8) uint8

// ByMode returns the blend function for mode and whether the mode was
// known. Unknown modes fall back to Screen.
func ByMode(mode Mode) (Func, bool) {
	switch mode {
	case ModeScreen:
		return Screen, true
	case ModeOverlay:
		return Overlay, true
	case ModeMultiply:
		return Multiply, true
	case ModeAdd:
		return Add, true
	case ModeSoftLight:
		return SoftLight, true
	case ModeNormal:
		return func(_, overlay uint8) uint8 { return overlay }, true
	default:
		return Screen, false
	}
}

// Composite blends overlay onto base channel by channel and writes
// base·(1−opacity) + blended·opacity into dst. All three buffers must be
// flat RGBA of the same length; dst may alias base. Alpha takes the larger
// of the two inputs so composited fields never thin out an opaque image.
func Composite(dst, base, overlay []uint8, mode Mode, opacity float64) {
	if opacity < 0 {
		opacity = 0
	} else if opacity > 1 {
		opacity = 1
	}
	fn, _ := ByMode(mode)

	n := len(base)
	if len(overlay) < n {
		n = len(overlay)
	}
	if len(dst) < n {
		n = len(dst)
	}

	op := uint16(opacity*255 + 0.5)
	inv := 255 - op

	for i := 0; i+3 < n; i += 4 {
		for c := 0; c < 3; c++ {
			blended := fn(base[i+c], overlay[i+c])
			dst[i+c] = uint8(div255(uint16(base[i+c])*inv + uint16(blended)*op))
		}
		if overlay[i+3] > base[i+3] {
			dst[i+3] = overlay[i+3]
		} else {
			dst[i+3] = base[i+3]
		}
	}
}
