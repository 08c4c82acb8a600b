// Package gasket is a parametric 2D gasket geometry engine. It builds closed
// boundary outlines from a handful of dimensional inputs (diameters,
// center-to-center spacings, corner radii), validates that holes and cutouts
// keep clear of each other and of the boundaries, and hands the result to the
// dxf package for export as a DXF R12 drawing.
//
// The engine is unit-agnostic: every dimension is a scalar in one linear unit
// (inches by convention). All functions are pure transformations from numeric
// inputs to numeric outputs or explicit failures; nothing here blocks or
// performs I/O.
package gasket

import (
	"math"

	"github.com/gasketforge/gasket/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

const (
	tolerance = 1e-9
	pi        = math.Pi
	tau       = 2 * pi
)

// SDF2 is the interface to a 2d signed distance function object.
type SDF2 interface {
	// Evaluate returns the signed distance from p to the object's boundary.
	// The distance is negative for points contained within the object.
	Evaluate(p r2.Vec) float64

	// Bounds returns the bounding box that completely contains the object.
	Bounds() r2.Box
}

// Signed distance primitives. These are the closed forms the clearance
// analyzer is built on; the form2 packages wrap them into SDF2 objects.

// boxDistance is the signed distance from p to a sharp box with half-extents h.
func boxDistance(p, h r2.Vec) float64 {
	p = d2.AbsElem(p)
	d := r2.Sub(p, h)
	if d.X > 0 && d.Y > 0 {
		return r2.Norm(d)
	}
	if d.Y > d.X {
		return d.Y
	}
	return d.X
}

// RoundedBoxDistance returns the signed distance from p to the boundary of an
// axis-aligned rounded rectangle centered at the origin with half-extents
// half and corner radius round. Negative means inside, zero on the boundary.
func RoundedBoxDistance(p, half r2.Vec, round float64) float64 {
	return boxDistance(p, r2.Sub(half, d2.Elem(round))) - round
}

// CircleDistance returns the signed distance from p to a circle's boundary.
func CircleDistance(p, center r2.Vec, radius float64) float64 {
	return r2.Norm(r2.Sub(p, center)) - radius
}

// ObroundDistance returns the signed distance from p to an obround (stadium)
// centered at the origin with its long axis along x. long is the overall long
// dimension, short the overall short dimension (cap diameter); long >= short.
func ObroundDistance(p r2.Vec, long, short float64) float64 {
	l := 0.5 * (long - short)
	r := 0.5 * short
	p = d2.AbsElem(p)
	if p.X <= l {
		return p.Y - r
	}
	return r2.Norm(r2.Sub(p, r2.Vec{X: l})) - r
}
