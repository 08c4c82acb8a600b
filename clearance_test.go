package gasket

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

func TestRoundedBoxDistance(t *testing.T) {
	half := r2.Vec{X: 2.5, Y: 1.5}
	for _, round := range []float64{0, 0.25, 0.5, 1.5} {
		// Center depth is independent of the corner radius.
		if got := RoundedBoxDistance(r2.Vec{}, half, round); !near(got, -1.5) {
			t.Errorf("round=%g: center depth %g, want -1.5", round, got)
		}
		// Edge midpoints lie exactly on the boundary.
		for _, p := range []r2.Vec{
			{X: half.X}, {X: -half.X}, {Y: half.Y}, {Y: -half.Y},
		} {
			if got := RoundedBoxDistance(p, half, round); !near(got, 0) {
				t.Errorf("round=%g: boundary point %+v evaluates %g", round, p, got)
			}
		}
		// A rounded corner point lies on the boundary too.
		if round > 0 {
			c := r2.Vec{X: half.X - round, Y: half.Y - round}
			p := r2.Add(c, r2.Scale(round/math.Sqrt2, r2.Vec{X: 1, Y: 1}))
			if got := RoundedBoxDistance(p, half, round); !near(got, 0) {
				t.Errorf("round=%g: corner arc point evaluates %g", round, got)
			}
		}
		// Outside along the diagonal is positive and grows with distance.
		d1 := RoundedBoxDistance(r2.Vec{X: 3, Y: 2}, half, round)
		d2 := RoundedBoxDistance(r2.Vec{X: 4, Y: 3}, half, round)
		if d1 <= 0 || d2 <= d1 {
			t.Errorf("round=%g: outside distances %g, %g not increasing positive", round, d1, d2)
		}
	}
	// The sharp corner of an unrounded box is on the boundary.
	if got := RoundedBoxDistance(r2.Vec{X: 2.5, Y: 1.5}, half, 0); !near(got, 0) {
		t.Errorf("sharp corner evaluates %g", got)
	}
}

func TestObroundDistance(t *testing.T) {
	const long, short = 10.0, 4.0
	for _, tc := range []struct {
		p    r2.Vec
		want float64
	}{
		{r2.Vec{X: 5}, 0},             // rightmost cap point
		{r2.Vec{X: -5}, 0},            // leftmost cap point
		{r2.Vec{Y: 2}, 0},             // top straight
		{r2.Vec{X: 3, Y: -2}, 0},      // bottom straight at the cap junction
		{r2.Vec{}, -2},                // deepest interior
		{r2.Vec{X: 6}, 1},             // outside right
		{r2.Vec{X: 3, Y: 4}, 2},       // above the cap center
		{r2.Vec{X: -3, Y: -4.5}, 2.5}, // below the left cap center
	} {
		if got := ObroundDistance(tc.p, long, short); !near(got, tc.want) {
			t.Errorf("ObroundDistance(%+v)=%g, want %g", tc.p, got, tc.want)
		}
	}
	// Degenerate obround is a circle.
	if got, want := ObroundDistance(r2.Vec{X: 3}, 4, 4), 1.0; !near(got, want) {
		t.Errorf("degenerate obround: got %g, want %g", got, want)
	}
}

func TestCircleDistance(t *testing.T) {
	c := r2.Vec{X: 1, Y: -2}
	if got := CircleDistance(c, c, 3); !near(got, -3) {
		t.Errorf("center depth %g, want -3", got)
	}
	if got := CircleDistance(r2.Vec{X: 5, Y: -2}, c, 3); !near(got, 1) {
		t.Errorf("outside distance %g, want 1", got)
	}
}

// circleObject adapts CircleDistance to the SDF2 interface for gap tests.
type circleObject struct {
	center r2.Vec
	radius float64
}

func (c circleObject) Evaluate(p r2.Vec) float64 {
	return CircleDistance(p, c.center, c.radius)
}

func (c circleObject) Bounds() r2.Box {
	r := r2.Vec{X: c.radius, Y: c.radius}
	return r2.Box{Min: r2.Sub(c.center, r), Max: r2.Add(c.center, r)}
}

func TestHoleGaps(t *testing.T) {
	boundary := circleObject{radius: 5}
	// A half-unit hole centered 3 from the origin: edge at 3.5, boundary at 5.
	if got := HoleInBoundaryGap(boundary, r2.Vec{X: 3}, 0.5); !near(got, 1.5) {
		t.Errorf("HoleInBoundaryGap=%g, want 1.5", got)
	}
	// Same hole against the circle as a cutout it must stay outside of.
	cut := circleObject{radius: 1}
	if got := HoleOutsideCutoutGap(cut, r2.Vec{X: 3}, 0.5); !near(got, 1.5) {
		t.Errorf("HoleOutsideCutoutGap=%g, want 1.5", got)
	}
	if got := CircleGap(r2.Vec{X: -2}, 0.5, r2.Vec{X: 2}, 1); !near(got, 2.5) {
		t.Errorf("CircleGap=%g, want 2.5", got)
	}
}

func TestStrictClassification(t *testing.T) {
	for _, tc := range []struct {
		gap  float64
		want Severity
	}{
		{1, SeverityOK},
		{1e-9, SeverityOK},
		{0, SeverityError},
		{-0.5, SeverityError},
	} {
		c := Strict("x", tc.gap)
		if c.Severity != tc.want {
			t.Errorf("Strict(%g): severity %v, want %v", tc.gap, c.Severity, tc.want)
		}
		if (c.Err() != nil) != (tc.want == SeverityError) {
			t.Errorf("Strict(%g): Err mismatch with severity", tc.gap)
		}
	}
}

func TestGradedClassification(t *testing.T) {
	p := DefaultPolicy
	for _, tc := range []struct {
		gap  float64
		want Severity
	}{
		{1.5, SeverityOK},
		{1.0, SeverityOK}, // at the warn threshold passes
		{0.999, SeverityWarning},
		{0.5, SeverityWarning}, // at the error threshold warns
		{0.499, SeverityError},
		{0, SeverityError},
		{-1, SeverityError},
	} {
		c := p.Graded("edge", tc.gap)
		if c.Severity != tc.want {
			t.Errorf("Graded(%g): severity %v, want %v", tc.gap, c.Severity, tc.want)
		}
	}
	// Custom thresholds shift the bands.
	tight := Policy{ErrorBelow: 0.1, WarnBelow: 0.2}
	if c := tight.Graded("edge", 0.15); c.Severity != SeverityWarning {
		t.Errorf("custom policy: severity %v, want warning", c.Severity)
	}
	if c := tight.Graded("edge", 0.3); c.Severity != SeverityOK {
		t.Errorf("custom policy: severity %v, want ok", c.Severity)
	}
}

func near(got, want float64) bool {
	return math.Abs(got-want) <= 1e-9
}
