package obj2

import (
	"github.com/gasketforge/gasket"
	"github.com/gasketforge/gasket/dxf"
	"github.com/gasketforge/gasket/form2/must2"
	"github.com/gasketforge/gasket/internal/d2"
)

// FiretubeParams are the raw inputs of the firetube (obround) gasket: three
// nested obrounds - outer boundary, bolt circle and inner boundary - with
// bolt holes distributed evenly by arc length around the bolt circle.
type FiretubeParams struct {
	ODLong, ODShort float64
	IDLong, IDShort float64
	BCLong, BCShort float64 // bolt circle obround, hole centers lie on it
	HoleDiameter    float64
	HoleCount       int
	// Straddle shifts the first hole half a spacing off the long axis.
	// Otherwise the first hole sits on the long axis at the right end.
	Straddle bool
	// Policy grades the edge-clearance checks; zero value means the
	// default (error below 0.5, warning below 1.0).
	Policy   gasket.Policy
	Sampling must2.ArcSampling
}

// FiretubeSpec is a validated firetube gasket. Immutable once created.
type FiretubeSpec struct {
	params     FiretubeParams
	od, id, bc *must2.Obround
	holes      []Hole
	clearances []gasket.Clearance
	warnings   []gasket.Clearance
}

// Validate checks every constraint. Hard violations (including hole-to-hole
// overlap on the bolt circle) are collected into the returned report; graded
// edge-clearance findings below the warning threshold but above the error
// threshold ride on the spec as warnings and do not block export.
func (k FiretubeParams) Validate() (*FiretubeSpec, error) {
	rep := &gasket.Report{}
	ok := requirePositive(rep, "outer long dimension", k.ODLong)
	ok = requirePositive(rep, "outer short dimension", k.ODShort) && ok
	ok = requirePositive(rep, "inner long dimension", k.IDLong) && ok
	ok = requirePositive(rep, "inner short dimension", k.IDShort) && ok
	ok = requirePositive(rep, "bolt circle long dimension", k.BCLong) && ok
	ok = requirePositive(rep, "bolt circle short dimension", k.BCShort) && ok
	requirePositive(rep, "hole diameter", k.HoleDiameter)
	if k.HoleCount < 1 {
		rep.Appendf("hole count", "need at least 1, got %d", k.HoleCount)
	}
	if ok {
		ok = requireLongShort(rep, "outer dimension", k.ODLong, k.ODShort) && ok
		ok = requireLongShort(rep, "inner dimension", k.IDLong, k.IDShort) && ok
		ok = requireLongShort(rep, "bolt circle", k.BCLong, k.BCShort) && ok
	}
	if ok {
		if k.BCLong >= k.ODLong || k.BCShort >= k.ODShort {
			rep.Appendf("bolt circle", "must lie inside the outer boundary")
			ok = false
		}
		if k.IDLong >= k.BCLong || k.IDShort >= k.BCShort {
			rep.Appendf("inner boundary", "must lie inside the bolt circle")
			ok = false
		}
	}
	if !ok {
		return nil, rep
	}

	bc := must2.NewObround(k.BCLong, k.BCShort)
	spacing := bc.Perimeter() / float64(k.HoleCount)
	if spacing <= k.HoleDiameter {
		rep.Append(&gasket.ClearanceError{
			Name: "hole to hole on bolt circle",
			Gap:  spacing - k.HoleDiameter,
		})
	}

	// Graded edge clearances along the two symmetry axes.
	pol := policy(k.Policy)
	r := 0.5 * k.HoleDiameter
	cls := []gasket.Clearance{
		pol.Graded("hole edge to outer edge, long axis", 0.5*(k.ODLong-k.BCLong)-r),
		pol.Graded("hole edge to outer edge, short axis", 0.5*(k.ODShort-k.BCShort)-r),
		pol.Graded("hole edge to inner edge, long axis", 0.5*(k.BCLong-k.IDLong)-r),
		pol.Graded("hole edge to inner edge, short axis", 0.5*(k.BCShort-k.IDShort)-r),
	}
	var warnings []gasket.Clearance
	for _, c := range cls {
		rep.Append(c.Err())
		if c.Severity == gasket.SeverityWarning {
			warnings = append(warnings, c)
		}
	}
	if err := rep.Err(); err != nil {
		return nil, err
	}

	s := &FiretubeSpec{
		params:     k,
		od:         must2.NewObround(k.ODLong, k.ODShort),
		id:         must2.NewObround(k.IDLong, k.IDShort),
		bc:         bc,
		clearances: cls,
		warnings:   warnings,
	}
	s.holes = s.placeHoles(spacing)
	return s, nil
}

// placeHoles distributes the holes evenly by arc length around the bolt
// circle. Consecutive centers are one spacing apart along the boundary.
func (s *FiretubeSpec) placeHoles(spacing float64) []Hole {
	shift := 0.0
	if s.params.Straddle {
		shift = 0.5 * spacing
	}
	r := 0.5 * s.params.HoleDiameter
	holes := make([]Hole, s.params.HoleCount)
	for i := range holes {
		holes[i] = Hole{
			Center: s.bc.PointAtArcLength(float64(i)*spacing + shift),
			Radius: r,
		}
	}
	return holes
}

// Outline returns the outer boundary points.
func (s *FiretubeSpec) Outline() d2.Set {
	return s.od.Vertices(sampling(s.params.Sampling))
}

// InnerOutline returns the inner boundary points.
func (s *FiretubeSpec) InnerOutline() d2.Set {
	return s.id.Vertices(sampling(s.params.Sampling))
}

// Holes returns the bolt hole placements around the bolt circle.
func (s *FiretubeSpec) Holes() []Hole {
	return append([]Hole(nil), s.holes...)
}

// Clearances returns the graded edge-clearance findings.
func (s *FiretubeSpec) Clearances() []gasket.Clearance {
	return append([]gasket.Clearance(nil), s.clearances...)
}

// Warnings returns the clearances that classified as warnings. Export
// remains permitted.
func (s *FiretubeSpec) Warnings() []gasket.Clearance {
	return append([]gasket.Clearance(nil), s.warnings...)
}

// Drawing serializes the gasket: outer obround on the perimeter layer,
// inner obround and every bolt hole on the holes layer.
func (s *FiretubeSpec) Drawing(layers dxf.Layers) *dxf.Drawing {
	d := dxf.New(layers)
	d.Polyline(layers.Perimeter, s.Outline(), true)
	d.Polyline(layers.Holes, s.InnerOutline(), true)
	for _, h := range s.holes {
		d.Circle(layers.Holes, h.Center, h.Radius)
	}
	return d
}
