package prism

import (
	"image"
	"image/color"
	"testing"
)

func TestNewPixmap(t *testing.T) {
	pm := NewPixmap(10, 5)
	if pm.Width() != 10 || pm.Height() != 5 {
		t.Errorf("dimensions = %dx%d, want 10x5", pm.Width(), pm.Height())
	}
	if len(pm.Data()) != 10*5*4 {
		t.Errorf("len(Data) = %d, want %d", len(pm.Data()), 10*5*4)
	}
}

func TestPixmap_SetGetPixel(t *testing.T) {
	pm := NewPixmap(4, 4)
	pm.SetPixel(2, 1, 10, 20, 30, 40)

	r, g, b, a := pm.GetPixel(2, 1)
	if r != 10 || g != 20 || b != 30 || a != 40 {
		t.Errorf("GetPixel = (%d, %d, %d, %d), want (10, 20, 30, 40)", r, g, b, a)
	}
}

func TestPixmap_OutOfRangeAccess(t *testing.T) {
	pm := NewPixmap(4, 4)

	// Writes outside the buffer are dropped, never panic.
	pm.SetPixel(-1, 0, 255, 255, 255, 255)
	pm.SetPixel(4, 0, 255, 255, 255, 255)
	pm.SetPixel(0, 4, 255, 255, 255, 255)
	for i, v := range pm.Data() {
		if v != 0 {
			t.Fatalf("Data[%d] = %d, want 0", i, v)
		}
	}

	r, g, b, a := pm.GetPixel(100, 100)
	if r != 0 || g != 0 || b != 0 || a != 0 {
		t.Errorf("out-of-range GetPixel = (%d, %d, %d, %d), want transparent black", r, g, b, a)
	}
}

func TestPixmap_ImageRoundTrip(t *testing.T) {
	pm := NewPixmap(3, 3)
	pm.SetPixel(1, 1, 200, 100, 50, 255)

	img := pm.ToImage()
	back := FromImage(img)

	r, g, b, a := back.GetPixel(1, 1)
	if r != 200 || g != 100 || b != 50 || a != 255 {
		t.Errorf("round trip pixel = (%d, %d, %d, %d), want (200, 100, 50, 255)", r, g, b, a)
	}
}

func TestFromImageFit_Scales(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			src.Set(x, y, color.RGBA{R: 200, G: 40, B: 90, A: 255})
		}
	}

	pm := FromImageFit(src, 4, 4)
	if pm.Width() != 4 || pm.Height() != 4 {
		t.Fatalf("dimensions = %dx%d, want 4x4", pm.Width(), pm.Height())
	}

	r, _, _, a := pm.GetPixel(2, 2)
	if a != 255 {
		t.Errorf("alpha = %d, want 255", a)
	}
	// Bilinear over a uniform image keeps the color (within rounding).
	if r < 198 || r > 202 {
		t.Errorf("r = %d, want ~200", r)
	}
}
