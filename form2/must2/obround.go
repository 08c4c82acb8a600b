package must2

import (
	"math"

	"github.com/gasketforge/gasket"
	"github.com/gasketforge/gasket/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// Obround is a stadium shape: two straight segments of length long-short
// joined by semicircular caps of radius short/2, long axis along x. With
// long == short it degenerates to a circle.
type Obround struct {
	Long  float64 // overall long dimension
	Short float64 // overall short dimension (cap diameter)
	bb    d2.Box
}

// NewObround returns the obround with the given overall dimensions.
func NewObround(long, short float64) *Obround {
	if short <= 0 {
		panic("short dimension <= 0")
	}
	if long < short {
		panic("long dimension < short dimension")
	}
	return &Obround{
		Long:  long,
		Short: short,
		bb:    d2.CenteredBox(r2.Vec{X: long, Y: short}),
	}
}

// Evaluate returns the minimum distance to the obround boundary.
func (s *Obround) Evaluate(p r2.Vec) float64 {
	return gasket.ObroundDistance(p, s.Long, s.Short)
}

// Bounds returns the bounding box of the obround.
func (s *Obround) Bounds() r2.Box {
	return r2.Box(s.bb)
}

// Perimeter returns the total boundary arc length: 2*(L-W) + pi*W.
func (s *Obround) Perimeter() float64 {
	return 2*(s.Long-s.Short) + pi*s.Short
}

// PointAtArcLength maps an arc-length distance along the boundary to a
// point. Distance zero is the rightmost point (Long/2, 0) and the boundary
// is traversed counterclockwise: quarter arc of the right cap, top straight,
// left semicircle, bottom straight, closing quarter arc. The distance wraps
// modulo the perimeter, so placement code can walk any multiple of it.
func (s *Obround) PointAtArcLength(dist float64) r2.Vec {
	l := 0.5 * (s.Long - s.Short) // cap center offset
	r := 0.5 * s.Short
	straight := s.Long - s.Short
	quarter := pi * r / 2

	p := s.Perimeter()
	dist = math.Mod(dist, p)
	if dist < 0 {
		dist += p
	}

	switch {
	case dist < quarter:
		// upper-right quarter of the right cap
		return r2.Add(r2.Vec{X: l}, d2.PolarToXY(r, dist/r))
	case dist < quarter+straight:
		// top straight, right to left
		return r2.Vec{X: l - (dist - quarter), Y: r}
	case dist < quarter+straight+2*quarter:
		// left semicircle
		theta := pi/2 + (dist-quarter-straight)/r
		return r2.Add(r2.Vec{X: -l}, d2.PolarToXY(r, theta))
	case dist < quarter+straight+2*quarter+straight:
		// bottom straight, left to right
		return r2.Vec{X: -l + (dist - quarter - straight - 2*quarter), Y: -r}
	default:
		// lower-right quarter of the right cap
		theta := -pi/2 + (dist-2*straight-3*quarter)/r
		return r2.Add(r2.Vec{X: l}, d2.PolarToXY(r, theta))
	}
}

// Vertices returns the boundary outline counterclockwise starting at the
// bottom of the right cap.
func (s *Obround) Vertices(sampling ArcSampling) d2.Set {
	l := 0.5 * (s.Long - s.Short)
	r := 0.5 * s.Short
	if l < tolerance {
		// degenerate: a circle
		return arcPoints(r2.Vec{}, r, -pi/2, 3*pi/2, sampling)
	}
	var v d2.Set
	v = appendArc(v, r2.Vec{X: l}, r, -pi/2, pi/2, sampling)
	v = appendArc(v, r2.Vec{X: -l}, r, pi/2, 3*pi/2, sampling)
	return v
}
