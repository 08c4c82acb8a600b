package obj2

import (
	"math"

	"github.com/gasketforge/gasket"
	"github.com/gasketforge/gasket/form2/must2"
	"github.com/gasketforge/gasket/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// External tangent and outside-arc construction for the jumper outline.

// Segment is a straight tangent segment between two circle boundaries.
type Segment struct {
	A, B r2.Vec
}

// Arc is a circular arc span: counterclockwise for positive sweep.
type Arc struct {
	Center r2.Vec
	Radius float64
	Start  float64 // radians
	Sweep  float64 // radians, signed
}

// End returns the end angle.
func (a Arc) End() float64 { return a.Start + a.Sweep }

// StartPoint returns the arc's first boundary point.
func (a Arc) StartPoint() r2.Vec {
	return r2.Add(a.Center, d2.PolarToXY(a.Radius, a.Start))
}

// EndPoint returns the arc's last boundary point.
func (a Arc) EndPoint() r2.Vec {
	return r2.Add(a.Center, d2.PolarToXY(a.Radius, a.End()))
}

func (a Arc) midpoint() r2.Vec {
	return r2.Add(a.Center, d2.PolarToXY(a.Radius, a.Start+0.5*a.Sweep))
}

// points samples the arc with adaptive density: the segment count grows
// with sweep*radius over the sampling's maximum chord length, with the
// configured floor.
func (a Arc) points(s must2.ArcSampling) d2.Set {
	// must2 handles segment-count selection; endpoints are included.
	return arcSpanPoints(a, s)
}

func arcSpanPoints(a Arc, s must2.ArcSampling) d2.Set {
	n := arcSegments(a, s)
	v := make(d2.Set, 0, n+1)
	for i := 0; i <= n; i++ {
		theta := a.Start + a.Sweep*float64(i)/float64(n)
		v = append(v, r2.Add(a.Center, d2.PolarToXY(a.Radius, theta)))
	}
	return v
}

func arcSegments(a Arc, s must2.ArcSampling) int {
	n := s.MinSegments
	if n < 1 {
		n = 1
	}
	if s.MaxSegment > 0 {
		if k := int(math.Ceil(math.Abs(a.Sweep) * a.Radius / s.MaxSegment)); k > n {
			n = k
		}
	}
	return n
}

// externalTangents computes the two external tangent lines of the circles
// (ca, ra) and (cb, rb). The returned segments run from the first circle to
// the second; top is the pair whose tangent point on the second circle has
// the greater y. External tangents exist only while the center distance
// exceeds |ra - rb|; inside that containment threshold a PreconditionError
// is returned.
func externalTangents(ca r2.Vec, ra float64, cb r2.Vec, rb float64) (top, bottom Segment, err error) {
	delta := r2.Sub(cb, ca)
	d := r2.Norm(delta)
	if d <= math.Abs(ra-rb) {
		return Segment{}, Segment{}, &gasket.PreconditionError{
			Op:     "external tangent",
			Reason: "one circle contains the other: cannot form straight tangent lines",
		}
	}
	theta := math.Atan2(delta.Y, delta.X)
	phi := math.Acos((ra - rb) / d)

	at := func(angle float64) Segment {
		dir := d2.PolarToXY(1, angle)
		return Segment{
			A: r2.Add(ca, r2.Scale(ra, dir)),
			B: r2.Add(cb, r2.Scale(rb, dir)),
		}
	}
	s1 := at(theta + phi)
	s2 := at(theta - phi)
	if s1.B.Y >= s2.B.Y {
		return s1, s2, nil
	}
	return s2, s1, nil
}

// outsideArc returns the boundary arc of the circle (center, radius) running
// from p0 to p1 whose midpoint satisfies the outward predicate. Between any
// two points on a circle two arcs exist; when both candidates satisfy the
// predicate (a degenerate configuration) the shorter arc wins.
func outsideArc(center r2.Vec, radius float64, p0, p1 r2.Vec, outward func(mid r2.Vec) bool) Arc {
	a0 := math.Atan2(p0.Y-center.Y, p0.X-center.X)
	a1 := math.Atan2(p1.Y-center.Y, p1.X-center.X)

	ccw := math.Mod(a1-a0, 2*math.Pi)
	if ccw <= 0 {
		ccw += 2 * math.Pi
	}
	cw := ccw - 2*math.Pi

	candCCW := Arc{Center: center, Radius: radius, Start: a0, Sweep: ccw}
	candCW := Arc{Center: center, Radius: radius, Start: a0, Sweep: cw}

	okCCW := outward(candCCW.midpoint())
	okCW := outward(candCW.midpoint())
	switch {
	case okCCW && !okCW:
		return candCCW
	case okCW && !okCCW:
		return candCW
	}
	// Ambiguous (or neither): fall back to the shorter arc.
	if math.Abs(ccw) <= math.Abs(cw) {
		return candCCW
	}
	return candCW
}
