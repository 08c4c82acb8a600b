package obj2

import (
	"math"

	"github.com/gasketforge/gasket"
	"github.com/gasketforge/gasket/dxf"
	"github.com/gasketforge/gasket/form2/must2"
	"github.com/gasketforge/gasket/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// JumperParams are the raw inputs of the jumper gasket: two bolt holes on a
// common axis with a larger center hole between them. Each hole carries a
// required edge clearance to its own outer boundary; the outer boundary is
// the compound outline formed by the three outer circles and their external
// tangent lines.
type JumperParams struct {
	HoleDiameter   float64 // bolt hole at each end
	HoleClearance  float64 // edge clearance around each bolt hole
	IDDiameter     float64 // center hole
	IDClearance    float64 // edge clearance around the center hole
	CenterToCenter float64 // spacing between the two bolt hole centers
	Sampling       must2.ArcSampling
}

// boltOuterRadius is the derived outer radius around a bolt hole.
func (k JumperParams) boltOuterRadius() float64 {
	return 0.5*k.HoleDiameter + k.HoleClearance
}

// centerOuterRadius is the derived outer radius around the center hole.
func (k JumperParams) centerOuterRadius() float64 {
	return 0.5*k.IDDiameter + k.IDClearance
}

// JumperSpec is a validated jumper gasket. Immutable once created.
type JumperSpec struct {
	params JumperParams
	holes  []Hole
	// Boundary pieces in traversal order: left outer arc, top-left
	// tangent, center top arc, top-right tangent, right outer arc,
	// bottom-right tangent, center bottom arc, bottom-left tangent.
	arcs     [4]Arc     // left, center top, right, center bottom
	tangents [4]Segment // top-left, top-right, bottom-right, bottom-left
}

// Validate checks dimensions, hole clearances and the tangent construction
// precondition, collecting every violation into the returned report.
func (k JumperParams) Validate() (*JumperSpec, error) {
	rep := &gasket.Report{}
	requirePositive(rep, "bolt hole diameter", k.HoleDiameter)
	requirePositive(rep, "center hole diameter", k.IDDiameter)
	requirePositive(rep, "center-to-center spacing", k.CenterToCenter)
	if k.HoleClearance < 0 {
		rep.Appendf("bolt hole edge clearance", "must not be negative, got %g", k.HoleClearance)
	}
	if k.IDClearance < 0 {
		rep.Appendf("center hole edge clearance", "must not be negative, got %g", k.IDClearance)
	}
	if err := rep.Err(); err != nil {
		return nil, err
	}

	half := 0.5 * k.CenterToCenter
	rb := 0.5 * k.HoleDiameter
	ri := 0.5 * k.IDDiameter
	cl := r2.Vec{X: -half}
	cr := r2.Vec{X: half}

	// The holes themselves must stay strictly clear of each other.
	for _, c := range []gasket.Clearance{
		gasket.Strict("left bolt hole to center hole", gasket.CircleGap(cl, rb, r2.Vec{}, ri)),
		gasket.Strict("right bolt hole to center hole", gasket.CircleGap(cr, rb, r2.Vec{}, ri)),
		gasket.Strict("bolt hole to bolt hole", gasket.CircleGap(cl, rb, cr, rb)),
	} {
		rep.Append(c.Err())
	}

	Rb := k.boltOuterRadius()
	Rc := k.centerOuterRadius()
	// The right side mirrors the left exactly (same Rb, Rc and spacing), so
	// both constructions fail together; containment is reported once.
	lt, lb, errT := externalTangents(cl, Rb, r2.Vec{}, Rc)
	rt, rbm, _ := externalTangents(r2.Vec{}, Rc, cr, Rb)
	rep.Append(errT)
	if err := rep.Err(); err != nil {
		return nil, err
	}

	s := &JumperSpec{
		params: k,
		holes: []Hole{
			{Center: cl, Radius: rb},
			{Center: r2.Vec{}, Radius: ri},
			{Center: cr, Radius: rb},
		},
		tangents: [4]Segment{
			{A: lt.A, B: lt.B},   // top-left: left circle -> center
			{A: rt.A, B: rt.B},   // top-right: center -> right circle
			{A: rbm.B, B: rbm.A}, // bottom-right: right circle -> center
			{A: lb.B, B: lb.A},   // bottom-left: center -> left circle
		},
	}

	// One outside arc per circle role. The left circle's boundary arc must
	// bow further left than its own center, the right circle's further
	// right; the center circle contributes a top arc (midpoint strictly
	// above the axis) and a bottom arc (strictly below).
	s.arcs[0] = outsideArc(cl, Rb, lb.A, lt.A, func(m r2.Vec) bool { return m.X < cl.X })
	s.arcs[1] = outsideArc(r2.Vec{}, Rc, lt.B, rt.A, func(m r2.Vec) bool { return m.Y > 0 })
	s.arcs[2] = outsideArc(cr, Rb, rt.B, rbm.B, func(m r2.Vec) bool { return m.X > cr.X })
	s.arcs[3] = outsideArc(r2.Vec{}, Rc, rbm.A, lb.B, func(m r2.Vec) bool { return m.Y < 0 })
	return s, nil
}

// Holes returns the three hole placements: left bolt, center, right bolt.
func (s *JumperSpec) Holes() []Hole {
	return append([]Hole(nil), s.holes...)
}

// Arcs returns the four boundary arc spans in traversal order. Three
// distinct circles contribute them; the center circle appears twice.
func (s *JumperSpec) Arcs() [4]Arc { return s.arcs }

// Tangents returns the four straight tangent segments in traversal order,
// two external tangent pairs in total.
func (s *JumperSpec) Tangents() [4]Segment { return s.tangents }

// Outline returns the closed compound boundary as one point sequence:
// the four arcs sampled in order, with the tangent straights implied by
// consecutive arc endpoints and the implicit closing segment.
func (s *JumperSpec) Outline() d2.Set {
	smp := sampling(s.params.Sampling)
	var v d2.Set
	for _, a := range s.arcs {
		pts := a.points(smp)
		if len(v) > 0 && d2.EqualWithin(v[len(v)-1], pts[0], 1e-9) {
			pts = pts[1:]
		}
		v = append(v, pts...)
	}
	return v
}

// Drawing serializes the jumper: the compound boundary as primitive ARC and
// LINE records on the perimeter layer, the three holes as circles on the
// holes layer. DXF arcs are always counterclockwise, so clockwise spans are
// emitted with their endpoints swapped.
func (s *JumperSpec) Drawing(layers dxf.Layers) *dxf.Drawing {
	d := dxf.New(layers)
	for _, a := range s.arcs {
		start, end := a.Start, a.End()
		if a.Sweep < 0 {
			start, end = end, start
		}
		d.Arc(layers.Perimeter, a.Center, a.Radius, deg(start), deg(end))
	}
	for _, t := range s.tangents {
		d.Line(layers.Perimeter, t.A, t.B)
	}
	for _, h := range s.holes {
		d.Circle(layers.Holes, h.Center, h.Radius)
	}
	return d
}

func deg(rad float64) float64 {
	d := rad * 180 / math.Pi
	d = math.Mod(d, 360)
	if d < 0 {
		d += 360
	}
	return d
}
