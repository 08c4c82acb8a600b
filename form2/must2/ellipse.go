package must2

import (
	"math"

	"github.com/gasketforge/gasket/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// Ellipse is an axis-aligned ellipse boundary given by its two overall
// diameters, long axis along x. It is an outline-only shape: no gasket
// feature needs a distance query against an ellipse, and the true ellipse
// SDF has no closed form worth carrying.
type Ellipse struct {
	a, b float64 // semi-axes
	bb   d2.Box
}

// NewEllipse returns the ellipse with the given overall diameters.
func NewEllipse(long, short float64) *Ellipse {
	if short <= 0 {
		panic("short diameter <= 0")
	}
	if long < short {
		panic("long diameter < short diameter")
	}
	return &Ellipse{
		a:  0.5 * long,
		b:  0.5 * short,
		bb: d2.CenteredBox(r2.Vec{X: long, Y: short}),
	}
}

// SemiAxes returns the semi-axes (a, b).
func (s *Ellipse) SemiAxes() (a, b float64) { return s.a, s.b }

// Bounds returns the bounding box of the ellipse.
func (s *Ellipse) Bounds() r2.Box {
	return r2.Box(s.bb)
}

// Vertices samples the boundary at n evenly spaced parameter values:
// (a cos t, b sin t) for t in [0, 2 pi).
func (s *Ellipse) Vertices(n int) d2.Set {
	if n < 3 {
		panic("ellipse segment count < 3")
	}
	v := make(d2.Set, n)
	for i := 0; i < n; i++ {
		t := tau * float64(i) / float64(n)
		sin, cos := math.Sincos(t)
		v[i] = r2.Vec{X: s.a * cos, Y: s.b * sin}
	}
	return v
}
