// Package flow implements the coarse vector-field particle system behind
// prism's painterly streak effects.
package flow

import (
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/prismfx/prism/internal/noise"
)

// FieldType selects the closed-form construction of the vector field.
type FieldType string

const (
	FieldSwirl      FieldType = "swirl"
	FieldTurbulence FieldType = "turbulence"
	FieldWave       FieldType = "wave"
	FieldRadial     FieldType = "radial"
)

// cellSize is the image-space edge length of one field cell.
const cellSize = 10

// Field is a coarse grid of flow vectors, one per cellSize×cellSize block
// of the image.
type Field struct {
	cols, rows int
	width      int
	height     int
	angle      []float64
	mag        []float64
}

// BuildField constructs the vector field for an image of the given size.
// The same (fieldType, seed) pair always yields the same field.
func BuildField(width, height int, fieldType FieldType, seed int64) *Field {
	cols := (width + cellSize - 1) / cellSize
	rows := (height + cellSize - 1) / cellSize
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}

	f := &Field{
		cols:   cols,
		rows:   rows,
		width:  width,
		height: height,
		angle:  make([]float64, cols*rows),
		mag:    make([]float64, cols*rows),
	}

	perlin := noise.New(seed)
	simplex := opensimplex.New(seed)

	cx := float64(width) / 2
	cy := float64(height) / 2

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			x := float64(col*cellSize) + cellSize/2
			y := float64(row*cellSize) + cellSize/2
			i := row*cols + col

			switch fieldType {
			case FieldTurbulence:
				// Two uncorrelated simplex channels: one steers, one scales.
				f.angle[i] = simplex.Eval2(x*0.008, y*0.008) * 2 * math.Pi
				f.mag[i] = 0.5 + 0.5*math.Abs(simplex.Eval2(x*0.015+100, y*0.015+100))
			case FieldWave:
				f.angle[i] = math.Sin(y*0.02)*1.2 + perlin.FBM(x*0.005, y*0.005, 3, 0.5)*0.6
				f.mag[i] = 0.75 + 0.25*math.Sin(x*0.01)
			case FieldRadial:
				dx := x - cx
				dy := y - cy
				f.angle[i] = math.Atan2(dy, dx)
				dist := math.Hypot(dx, dy)
				maxDist := math.Hypot(cx, cy)
				if maxDist == 0 {
					maxDist = 1
				}
				f.mag[i] = 1 - 0.5*dist/maxDist
			default: // FieldSwirl
				dx := x - cx
				dy := y - cy
				// Tangential direction plus a noisy wobble.
				f.angle[i] = math.Atan2(dy, dx) + math.Pi/2 +
					perlin.FBM(x*0.01, y*0.01, 2, 0.5)*0.8
				f.mag[i] = 0.6 + 0.4*math.Abs(perlin.Eval2(x*0.02, y*0.02))
			}
		}
	}
	return f
}

// Vector returns the flow vector at image coordinate (x, y). Coordinates
// outside the image clamp to the border cell.
func (f *Field) Vector(x, y float64) (vx, vy float64) {
	col := int(x) / cellSize
	row := int(y) / cellSize
	if col < 0 {
		col = 0
	} else if col >= f.cols {
		col = f.cols - 1
	}
	if row < 0 {
		row = 0
	} else if row >= f.rows {
		row = f.rows - 1
	}
	i := row*f.cols + col
	return math.Cos(f.angle[i]) * f.mag[i], math.Sin(f.angle[i]) * f.mag[i]
}
