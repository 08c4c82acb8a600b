package render

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// SavePreview plots the given closed outlines to an image file (format by
// extension, .png or .svg). It is a pure visualization consumer: it draws
// exactly the point sequences the DXF export serializes.
func SavePreview(filename string, outlines ...[]r2.Vec) error {
	p := plot.New()
	p.Title.Text = "gasket preview"
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	for _, o := range outlines {
		if len(o) == 0 {
			continue
		}
		xys := make(plotter.XYs, 0, len(o)+1)
		for _, v := range o {
			xys = append(xys, plotter.XY{X: v.X, Y: v.Y})
		}
		// close the loop
		xys = append(xys, plotter.XY{X: o[0].X, Y: o[0].Y})
		line, err := plotter.NewLine(xys)
		if err != nil {
			return fmt.Errorf("preview outline: %w", err)
		}
		p.Add(line)
	}
	if err := p.Save(14*vg.Centimeter, 14*vg.Centimeter, filename); err != nil {
		return fmt.Errorf("save preview: %w", err)
	}
	return nil
}

// CircleOutline samples a circle for preview drawing.
func CircleOutline(center r2.Vec, radius float64, segments int) []r2.Vec {
	if segments < 3 {
		segments = 32
	}
	v := make([]r2.Vec, segments)
	for i := range v {
		sin, cos := math.Sincos(2 * math.Pi * float64(i) / float64(segments))
		v[i] = r2.Add(center, r2.Vec{X: radius * cos, Y: radius * sin})
	}
	return v
}
