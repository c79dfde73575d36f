package prism

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// Pixmap represents a rectangular RGBA pixel buffer: a flat byte slice of
// length width*height*4 in R,G,B,A channel order.
//
// Pixmap is the convenience wrapper the UI collaborator hands to the
// engine; Transform works on the raw data slice.
type Pixmap struct {
	width  int
	height int
	data   []uint8 // RGBA format, 4 bytes per pixel
}

// NewPixmap creates a new pixmap with the given dimensions.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data (RGBA format).
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// SetPixel sets the color of a single pixel. Out-of-range coordinates are
// ignored.
func (p *Pixmap) SetPixel(x, y int, r, g, b, a uint8) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = r
	p.data[i+1] = g
	p.data[i+2] = b
	p.data[i+3] = a
}

// GetPixel returns the color of a single pixel. Out-of-range coordinates
// return transparent black.
func (p *Pixmap) GetPixel(x, y int) (r, g, b, a uint8) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return 0, 0, 0, 0
	}
	i := (y*p.width + x) * 4
	return p.data[i+0], p.data[i+1], p.data[i+2], p.data[i+3]
}

// ToImage converts the pixmap to an image.RGBA.
func (p *Pixmap) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// FromImage creates a pixmap from an image at its natural size.
func FromImage(img image.Image) *Pixmap {
	bounds := img.Bounds()
	pm := NewPixmap(bounds.Dx(), bounds.Dy())
	dst := &image.RGBA{
		Pix:    pm.data,
		Stride: pm.width * 4,
		Rect:   image.Rect(0, 0, pm.width, pm.height),
	}
	xdraw.Draw(dst, dst.Rect, img, bounds.Min, xdraw.Src)
	return pm
}

// FromImageFit creates a width×height pixmap from an image, scaling with
// bilinear interpolation when the sizes differ.
func FromImageFit(img image.Image, width, height int) *Pixmap {
	pm := NewPixmap(width, height)
	dst := &image.RGBA{
		Pix:    pm.data,
		Stride: width * 4,
		Rect:   image.Rect(0, 0, width, height),
	}
	xdraw.ApproxBiLinear.Scale(dst, dst.Rect, img, img.Bounds(), xdraw.Src, nil)
	return pm
}
