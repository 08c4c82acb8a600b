// Package must2 implements the boundary primitives of the gasket engine.
// Constructors panic on contract violations; the form2 package wraps them
// with error returns. Shapes are centered on the origin.
package must2

import (
	"github.com/gasketforge/gasket"
	"github.com/gasketforge/gasket/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// 2D Circle

// Circle is the 2d signed distance object for a circle.
type Circle struct {
	Radius float64
	bb     d2.Box
}

// NewCircle returns the boundary circle of the given radius.
func NewCircle(radius float64) *Circle {
	if radius <= 0 {
		panic("radius <= 0")
	}
	return &Circle{
		Radius: radius,
		bb:     d2.CenteredBox(d2.Elem(2 * radius)),
	}
}

// Evaluate returns the minimum distance to the circle.
func (s *Circle) Evaluate(p r2.Vec) float64 {
	return gasket.CircleDistance(p, r2.Vec{}, s.Radius)
}

// Bounds returns the bounding box of the circle.
func (s *Circle) Bounds() r2.Box {
	return r2.Box(s.bb)
}

// Vertices samples the circle boundary counterclockwise from (r, 0).
func (s *Circle) Vertices(sampling ArcSampling) d2.Set {
	return arcPoints(r2.Vec{}, s.Radius, 0, tau, sampling)
}

// 2D Box (rounded corners with round > 0)

// Box is the signed distance object for a rectangular box with optionally
// rounded corners.
type Box struct {
	half  r2.Vec  // half-extents
	round float64 // corner radius, clamped to [0, min(half.X, half.Y)]
	bb    d2.Box
}

// NewBox returns a box of the given overall size. The corner radius is
// clamped into [0, min(halfWidth, halfHeight)]; a radius of zero keeps the
// corners sharp.
func NewBox(size r2.Vec, round float64) *Box {
	if size.X <= 0 || size.Y <= 0 {
		panic("box size <= 0")
	}
	half := r2.Scale(0.5, size)
	round = clamp(round, 0, min(half.X, half.Y))
	return &Box{
		half:  half,
		round: round,
		bb:    d2.CenteredBox(size),
	}
}

// Half returns the box half-extents.
func (s *Box) Half() r2.Vec { return s.half }

// Round returns the effective (clamped) corner radius.
func (s *Box) Round() float64 { return s.round }

// Evaluate returns the minimum distance to the box boundary.
func (s *Box) Evaluate(p r2.Vec) float64 {
	return gasket.RoundedBoxDistance(p, s.half, s.round)
}

// Bounds returns the bounding box of the box.
func (s *Box) Bounds() r2.Box {
	return r2.Box(s.bb)
}

// Vertices returns the boundary outline, ordered counterclockwise starting
// at the bottom-right corner. With a zero corner radius the outline is
// exactly the 4 sharp corners; otherwise each corner becomes a 90 degree
// arc centered at (+-(hw-rr), +-(hh-rr)) and the arcs are emitted in the
// fixed order bottom-right, top-right, top-left, bottom-left so consecutive
// points are already boundary-ordered.
func (s *Box) Vertices(sampling ArcSampling) d2.Set {
	hw, hh, rr := s.half.X, s.half.Y, s.round
	if rr == 0 {
		return d2.Set{
			{X: hw, Y: -hh},
			{X: hw, Y: hh},
			{X: -hw, Y: hh},
			{X: -hw, Y: -hh},
		}
	}
	cx, cy := hw-rr, hh-rr
	var v d2.Set
	v = appendArc(v, r2.Vec{X: cx, Y: -cy}, rr, -pi/2, 0, sampling)
	v = appendArc(v, r2.Vec{X: cx, Y: cy}, rr, 0, pi/2, sampling)
	v = appendArc(v, r2.Vec{X: -cx, Y: cy}, rr, pi/2, pi, sampling)
	v = appendArc(v, r2.Vec{X: -cx, Y: -cy}, rr, pi, 3*pi/2, sampling)
	return v
}
