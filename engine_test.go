package prism

import (
	"errors"
	"testing"
)

func gradientSource(w, h int) []uint8 {
	src := make([]uint8, w*h*4)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := (y*w + x) * 4
			src[i] = uint8(x * 255 / w)
			src[i+1] = uint8(y * 255 / h)
			src[i+2] = 128
			src[i+3] = 255
		}
	}
	return src
}

func TestApplyEffect_Unknown(t *testing.T) {
	eng := New()
	gen, params, err := eng.ApplyEffect("noSuchEffect", nil)
	if !errors.Is(err, ErrUnknownEffect) {
		t.Fatalf("err = %v, want ErrUnknownEffect", err)
	}
	if gen != nil || params != nil {
		t.Error("unknown effect returned a generator or params")
	}
}

func TestApplyEffect_ResolvesAliasPreset(t *testing.T) {
	eng := New()

	_, params, err := eng.ApplyEffect("gaussianBlur", nil)
	if err != nil {
		t.Fatalf("ApplyEffect(gaussianBlur) err = %v", err)
	}
	if params["preset"] != 1 {
		t.Errorf("preset = %v, want 1 (alias-selected)", params["preset"])
	}
	if params["radius"] != 4 {
		t.Errorf("radius = %v, want schema default 4", params["radius"])
	}
}

func TestApplyEffect_CallerParamsWinOverPreset(t *testing.T) {
	eng := New()

	_, params, err := eng.ApplyEffect("blur", map[string]float64{"preset": 2, "radius": 9})
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if params["preset"] != 2 {
		t.Errorf("preset = %v, want caller override 2", params["preset"])
	}
	if params["radius"] != 9 {
		t.Errorf("radius = %v, want 9", params["radius"])
	}
}

func TestApplyEffect_ClampsParams(t *testing.T) {
	eng := New()

	_, params, err := eng.ApplyEffect("mandelbrot", map[string]float64{
		"zoom":    -5,
		"opacity": 3,
	})
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if params["zoom"] != 0.1 {
		t.Errorf("zoom = %v, want clamped 0.1", params["zoom"])
	}
	if params["opacity"] != 1 {
		t.Errorf("opacity = %v, want clamped 1", params["opacity"])
	}
}

func TestTransform_NeverMutatesSource(t *testing.T) {
	w, h := 24, 24
	eng := New()

	ids := []string{
		"unifiedBlur", "unifiedFractal", "kaleidoscope", "mandelbrot",
		"julia", "unifiedReaction", "unifiedFlow", "noiseTexture",
	}
	for _, id := range ids {
		t.Run(id, func(t *testing.T) {
			src := gradientSource(w, h)
			orig := make([]uint8, len(src))
			copy(orig, src)

			gen, params, err := eng.ApplyEffect(id, map[string]float64{
				"iterations": 5, "steps": 5, "particles": 100,
			})
			if err != nil {
				t.Fatalf("ApplyEffect(%s) err = %v", id, err)
			}

			result := eng.Transform(src, w, h, gen, params)
			if result == nil {
				t.Fatal("Transform returned nil")
			}
			if len(result) != len(src) {
				t.Fatalf("len(result) = %d, want %d", len(result), len(src))
			}
			for i := range src {
				if src[i] != orig[i] {
					t.Fatalf("src[%d] mutated: %d != %d", i, src[i], orig[i])
				}
			}
			eng.Release(result)
		})
	}
}

func TestTransform_MandelbrotPixels(t *testing.T) {
	w, h := 64, 64
	eng := New()
	src := gradientSource(w, h)

	// Interior point: exact black, fully opaque.
	gen, params, err := eng.ApplyEffect("mandelbrot", map[string]float64{
		"centerX": 0, "centerY": 0, "zoom": 0.5,
	})
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	result := eng.Transform(src, w, h, gen, params)
	i := ((h/2)*w + w/2) * 4
	if result[i] != 0 || result[i+1] != 0 || result[i+2] != 0 || result[i+3] != 255 {
		t.Errorf("center pixel = (%d, %d, %d, %d), want (0, 0, 0, 255)",
			result[i], result[i+1], result[i+2], result[i+3])
	}
	eng.Release(result)

	// Escaped point: some color survives.
	gen, params, err = eng.ApplyEffect("mandelbrot", map[string]float64{
		"centerX": 2, "centerY": 0, "zoom": 1,
	})
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	result = eng.Transform(src, w, h, gen, params)
	if result[i] == 0 && result[i+1] == 0 && result[i+2] == 0 {
		t.Error("escaped center pixel fully black, want colored")
	}
	eng.Release(result)
}

func TestTransform_NilGenerator(t *testing.T) {
	eng := New()
	if out := eng.Transform(make([]uint8, 16), 2, 2, nil, nil); out != nil {
		t.Errorf("Transform with nil generator = %v, want nil", out)
	}
}

func TestTransform_PoolReuseAcrossCalls(t *testing.T) {
	w, h := 16, 16
	pool := NewBufferPool(8)
	eng := New(WithPool(pool))
	src := gradientSource(w, h)

	gen, params, err := eng.ApplyEffect("kaleidoscope", nil)
	if err != nil {
		t.Fatalf("err = %v", err)
	}

	r1 := eng.Transform(src, w, h, gen, params)
	eng.Release(r1)
	r2 := eng.Transform(src, w, h, gen, params)
	eng.Release(r2)

	if pool.Hits() == 0 {
		t.Error("second transform allocated fresh, want pooled reuse")
	}
}

type stubAccelerator struct {
	called bool
}

func (s *stubAccelerator) Name() string { return "stub" }

func (s *stubAccelerator) Transform([]uint8, int, int, map[string]float64) ([]uint8, error) {
	s.called = true
	return nil, ErrFallbackToCPU
}

func TestTransform_AcceleratorFallsBack(t *testing.T) {
	w, h := 8, 8
	accel := &stubAccelerator{}
	eng := New(WithAccelerator(accel))
	src := gradientSource(w, h)

	gen, params, err := eng.ApplyEffect("kaleidoscope", nil)
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	result := eng.Transform(src, w, h, gen, params)
	if !accel.called {
		t.Error("accelerator was never offered the transform")
	}
	if result == nil {
		t.Fatal("CPU fallback produced nil")
	}
	eng.Release(result)
}
