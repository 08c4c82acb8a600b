package must2

import (
	"math"

	"github.com/gasketforge/gasket/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

const (
	pi  = math.Pi
	tau = 2 * pi

	tolerance = 1e-9
)

// ArcSampling controls how circular arcs are flattened into polyline
// segments. The segment count grows with sweep*radius so polyline density
// stays consistent regardless of arc size.
type ArcSampling struct {
	// MaxSegment is the target maximum chord length of one segment.
	MaxSegment float64
	// MinSegments is the floor on the number of segments per arc.
	MinSegments int
}

// DefaultSampling keeps segments at or under a tenth of a unit.
var DefaultSampling = ArcSampling{MaxSegment: 0.1, MinSegments: 8}

func (a ArcSampling) segments(sweep, radius float64) int {
	n := a.MinSegments
	if n < 1 {
		n = 1
	}
	if a.MaxSegment > 0 {
		if k := int(math.Ceil(math.Abs(sweep) * radius / a.MaxSegment)); k > n {
			n = k
		}
	}
	return n
}

// arcPoints samples the arc of the given circle from angle a0 to a1,
// endpoints included. A full circle (sweep of 2 pi) omits the duplicate
// closing point.
func arcPoints(center r2.Vec, radius, a0, a1 float64, sampling ArcSampling) d2.Set {
	sweep := a1 - a0
	n := sampling.segments(sweep, radius)
	closed := math.Abs(math.Abs(sweep)-tau) < tolerance
	last := n
	if closed {
		last = n - 1
	}
	v := make(d2.Set, 0, last+1)
	for i := 0; i <= last; i++ {
		theta := a0 + sweep*float64(i)/float64(n)
		v = append(v, r2.Add(center, d2.PolarToXY(radius, theta)))
	}
	return v
}

// appendArc appends arc samples to v, dropping the arc's first point when it
// coincides with the last point already in v.
func appendArc(v d2.Set, center r2.Vec, radius, a0, a1 float64, sampling ArcSampling) d2.Set {
	pts := arcPoints(center, radius, a0, a1, sampling)
	if len(v) > 0 && len(pts) > 0 && d2.EqualWithin(v[len(v)-1], pts[0], tolerance) {
		pts = pts[1:]
	}
	return append(v, pts...)
}

func clamp(x, a, b float64) float64 {
	return math.Min(b, math.Max(x, a))
}
