package obj2

import (
	"math"
	"testing"

	"github.com/gasketforge/gasket/form2/must2"
	"github.com/gasketforge/gasket/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

func TestExternalTangentsEqualRadii(t *testing.T) {
	top, bottom, err := externalTangents(r2.Vec{}, 1, r2.Vec{X: 4}, 1)
	if err != nil {
		t.Fatal(err)
	}
	// Equal radii: the tangents are horizontal lines at y = +-1.
	if !d2.EqualWithin(top.A, r2.Vec{Y: 1}, 1e-12) || !d2.EqualWithin(top.B, r2.Vec{X: 4, Y: 1}, 1e-12) {
		t.Errorf("top tangent %+v", top)
	}
	if !d2.EqualWithin(bottom.A, r2.Vec{Y: -1}, 1e-12) || !d2.EqualWithin(bottom.B, r2.Vec{X: 4, Y: -1}, 1e-12) {
		t.Errorf("bottom tangent %+v", bottom)
	}
}

func TestExternalTangentsUnequalRadii(t *testing.T) {
	ca, cb := r2.Vec{X: -2}, r2.Vec{X: 2}
	ra, rb := 0.5, 1.5
	top, bottom, err := externalTangents(ca, ra, cb, rb)
	if err != nil {
		t.Fatal(err)
	}
	for _, tc := range []struct {
		seg Segment
	}{{top}, {bottom}} {
		// Tangent points lie on their circles.
		if d := r2.Norm(r2.Sub(tc.seg.A, ca)) - ra; math.Abs(d) > 1e-12 {
			t.Errorf("A off the first circle by %g", d)
		}
		if d := r2.Norm(r2.Sub(tc.seg.B, cb)) - rb; math.Abs(d) > 1e-12 {
			t.Errorf("B off the second circle by %g", d)
		}
		// The segment is perpendicular to both radii, so both circles sit
		// on the same side of the line.
		dir := r2.Sub(tc.seg.B, tc.seg.A)
		radA := r2.Sub(tc.seg.A, ca)
		if dot := dir.X*radA.X + dir.Y*radA.Y; math.Abs(dot) > 1e-9 {
			t.Errorf("segment not tangent to the first circle: %g", dot)
		}
	}
	if top.B.Y <= 0 || bottom.B.Y >= 0 {
		t.Errorf("top/bottom ordering wrong: %+v / %+v", top, bottom)
	}
}

func TestExternalTangentsContainment(t *testing.T) {
	// Small circle strictly inside the big one.
	if _, _, err := externalTangents(r2.Vec{}, 3, r2.Vec{X: 1}, 1); err == nil {
		t.Error("contained circle must fail")
	}
	// Internally tangent circles: still no straight external tangents.
	if _, _, err := externalTangents(r2.Vec{}, 3, r2.Vec{X: 2}, 1); err == nil {
		t.Error("internally tangent circles must fail")
	}
	// Just past the threshold the construction succeeds.
	if _, _, err := externalTangents(r2.Vec{}, 3, r2.Vec{X: 2.01}, 1); err != nil {
		t.Errorf("barely separated centers: %v", err)
	}
}

func TestOutsideArcSelectsByPredicate(t *testing.T) {
	p0, p1 := r2.Vec{X: 1}, r2.Vec{Y: 1}
	// The quarter arc through (cos45, sin45) is the one with a positive-x
	// midpoint.
	a := outsideArc(r2.Vec{}, 1, p0, p1, func(m r2.Vec) bool { return m.X > 0 && m.Y > 0 })
	if math.Abs(a.Sweep-math.Pi/2) > 1e-12 {
		t.Errorf("sweep %g, want %g", a.Sweep, math.Pi/2)
	}
	// Demanding a midpoint below the axis forces the long way around.
	b := outsideArc(r2.Vec{}, 1, p0, p1, func(m r2.Vec) bool { return m.Y < 0 })
	if math.Abs(b.Sweep+3*math.Pi/2) > 1e-12 {
		t.Errorf("sweep %g, want %g", b.Sweep, -3*math.Pi/2)
	}
	if !d2.EqualWithin(b.StartPoint(), p0, 1e-12) || !d2.EqualWithin(b.EndPoint(), p1, 1e-12) {
		t.Errorf("endpoints %+v -> %+v", b.StartPoint(), b.EndPoint())
	}
}

// When the predicate cannot distinguish the two candidate arcs, the shorter
// one wins.
func TestOutsideArcShorterTieBreak(t *testing.T) {
	p0, p1 := r2.Vec{X: 1}, r2.Vec{Y: 1}
	always := func(r2.Vec) bool { return true }
	never := func(r2.Vec) bool { return false }
	for _, pred := range []func(r2.Vec) bool{always, never} {
		a := outsideArc(r2.Vec{}, 1, p0, p1, pred)
		if math.Abs(a.Sweep-math.Pi/2) > 1e-12 {
			t.Errorf("ambiguous predicate: sweep %g, want the shorter %g", a.Sweep, math.Pi/2)
		}
	}
}

func TestArcSampling(t *testing.T) {
	smp := must2.ArcSampling{MaxSegment: 0.1, MinSegments: 8}
	a := Arc{Center: r2.Vec{X: 1, Y: 2}, Radius: 2, Start: 0, Sweep: math.Pi}
	v := a.points(smp)
	if len(v) < 9 {
		t.Fatalf("too few points: %d", len(v))
	}
	if !d2.EqualWithin(v[0], a.StartPoint(), 1e-12) || !d2.EqualWithin(v[len(v)-1], a.EndPoint(), 1e-12) {
		t.Error("sampled arc must include both endpoints")
	}
	for i, p := range v {
		if d := r2.Norm(r2.Sub(p, a.Center)) - a.Radius; math.Abs(d) > 1e-9 {
			t.Fatalf("point %d off the circle by %g", i, d)
		}
	}
	// Negative sweep samples clockwise.
	cw := Arc{Radius: 1, Start: math.Pi / 2, Sweep: -math.Pi / 2}
	w := cw.points(smp)
	if !d2.EqualWithin(w[0], r2.Vec{Y: 1}, 1e-12) || !d2.EqualWithin(w[len(w)-1], r2.Vec{X: 1}, 1e-12) {
		t.Errorf("clockwise arc endpoints %+v -> %+v", w[0], w[len(w)-1])
	}
}
