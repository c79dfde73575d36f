package filter

import (
	"math"
	"testing"
)

func TestGaussianKernel_Normalized(t *testing.T) {
	tests := []struct {
		name     string
		radius   float64
		wantSize int
	}{
		{"identity for zero", 0, 1},
		{"identity for negative", -3, 1},
		{"radius 1", 1, 7},
		{"radius 2.5", 2.5, 17},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k := GaussianKernel(tt.radius)
			if len(k) != tt.wantSize {
				t.Fatalf("len = %d, want %d", len(k), tt.wantSize)
			}
			sum := 0.0
			for _, v := range k {
				sum += v
			}
			if math.Abs(sum-1) > 1e-9 {
				t.Errorf("kernel sum = %v, want 1", sum)
			}
		})
	}
}

func TestGaussianKernel_Symmetric(t *testing.T) {
	k := GaussianKernel(2)
	for i, j := 0, len(k)-1; i < j; i, j = i+1, j-1 {
		if k[i] != k[j] {
			t.Errorf("kernel asymmetric: k[%d]=%v, k[%d]=%v", i, k[i], j, k[j])
		}
	}
}

func TestBoxKernel(t *testing.T) {
	k := BoxKernel(2)
	if len(k) != 5 {
		t.Fatalf("len = %d, want 5", len(k))
	}
	for i, v := range k {
		if v != 0.2 {
			t.Errorf("k[%d] = %v, want 0.2", i, v)
		}
	}
}

func TestSeparable_IdentityKernel(t *testing.T) {
	w, h := 5, 4
	src := make([]uint8, w*h*4)
	for i := range src {
		src[i] = uint8(i * 13 % 251)
	}
	tmp := make([]uint8, len(src))
	dst := make([]uint8, len(src))

	Separable(src, tmp, dst, w, h, []float64{1})

	for i := range src {
		if dst[i] != src[i] {
			t.Fatalf("dst[%d] = %d, want %d", i, dst[i], src[i])
		}
	}
}

func TestSeparable_FlattensUniformRegion(t *testing.T) {
	// Blurring a uniform image returns the same image regardless of
	// kernel, since edge clamping only ever resamples the same value.
	w, h := 6, 6
	src := make([]uint8, w*h*4)
	for i := range src {
		src[i] = 180
	}
	tmp := make([]uint8, len(src))
	dst := make([]uint8, len(src))

	Separable(src, tmp, dst, w, h, BoxKernel(2))

	for i := range src {
		if dst[i] < 179 || dst[i] > 180 {
			t.Fatalf("dst[%d] = %d, want ~180", i, dst[i])
		}
	}
}

func TestSeparable_SpreadsImpulse(t *testing.T) {
	w, h := 7, 7
	src := make([]uint8, w*h*4)
	center := ((h/2)*w + w/2) * 4
	src[center] = 255
	src[center+3] = 255

	tmp := make([]uint8, len(src))
	dst := make([]uint8, len(src))
	Separable(src, tmp, dst, w, h, BoxKernel(1))

	if dst[center] >= 255 {
		t.Errorf("center = %d, want diffused below 255", dst[center])
	}
	neighbor := ((h/2)*w + w/2 + 1) * 4
	if dst[neighbor] == 0 {
		t.Error("neighbor = 0, want spread energy")
	}
}
