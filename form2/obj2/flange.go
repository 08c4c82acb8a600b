package obj2

import (
	"fmt"

	"github.com/gasketforge/gasket"
	"github.com/gasketforge/gasket/dxf"
	"github.com/gasketforge/gasket/form2/must2"
	"github.com/gasketforge/gasket/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// Cutout is an interior cut feature of a flange gasket: either a circle
// (Diameter > 0) or a rounded rectangle (Size nonzero). Exactly one kind
// must be set.
type Cutout struct {
	Center       r2.Vec
	Diameter     float64 // circle cutout
	Size         r2.Vec  // rounded-rectangle cutout
	CornerRadius float64 // corner radius of a rectangular cutout
}

// IsCircle reports whether the cutout is circular.
func (c Cutout) IsCircle() bool { return c.Diameter > 0 }

// FlangeParams are the raw inputs of the rectangular flange gasket: a
// rounded-rectangle outer boundary, four bolt holes on a rectangular bolt
// pattern, and optional interior cutouts.
type FlangeParams struct {
	ODX, ODY     float64 // overall outer dimensions
	CornerRadius float64 // outer corner radius, in [0, min(ODX, ODY)/2]
	BoltDiameter float64
	BoltCCX      float64 // bolt center-to-center along x
	BoltCCY      float64 // bolt center-to-center along y
	Cutouts      []Cutout
	Sampling     must2.ArcSampling
}

// FlangeSpec is a validated flange geometry. Immutable once created.
type FlangeSpec struct {
	params     FlangeParams
	od         *must2.Box
	holes      []Hole
	clearances []gasket.Clearance
}

// Validate checks every constraint and clearance. All violations are
// collected into the returned *gasket.Report; the spec is non-nil only when
// the report is empty.
func (k FlangeParams) Validate() (*FlangeSpec, error) {
	rep := &gasket.Report{}
	okOD := requirePositive(rep, "outer width", k.ODX)
	okOD = requirePositive(rep, "outer height", k.ODY) && okOD
	requirePositive(rep, "bolt hole diameter", k.BoltDiameter)
	requirePositive(rep, "bolt spacing x", k.BoltCCX)
	requirePositive(rep, "bolt spacing y", k.BoltCCY)
	if okOD {
		if maxr := 0.5 * min(k.ODX, k.ODY); k.CornerRadius < 0 || k.CornerRadius > maxr {
			rep.Appendf("corner radius", "must be in [0, %g], got %g", maxr, k.CornerRadius)
		}
	}
	if rep.Err() != nil {
		return nil, rep
	}

	od := must2.NewBox(r2.Vec{X: k.ODX, Y: k.ODY}, k.CornerRadius)
	holes := k.boltHoles()
	var cls []gasket.Clearance

	// Bolt holes must stay strictly inside the outer boundary.
	for i, h := range holes {
		gap := gasket.HoleInBoundaryGap(od, h.Center, h.Radius)
		cls = append(cls, gasket.Strict(fmt.Sprintf("bolt hole %d to outer edge", i+1), gap))
	}
	// ... and strictly clear of each other.
	for i := range holes {
		for j := i + 1; j < len(holes); j++ {
			gap := gasket.CircleGap(holes[i].Center, holes[i].Radius, holes[j].Center, holes[j].Radius)
			cls = append(cls, gasket.Strict(fmt.Sprintf("bolt hole %d to bolt hole %d", i+1, j+1), gap))
		}
	}
	for ci, c := range k.Cutouts {
		name := fmt.Sprintf("cutout %d", ci+1)
		sdf, err := c.boundary()
		if err != nil {
			rep.Appendf(name, "%v", err)
			continue
		}
		// The cutout must stay strictly inside the outer boundary.
		cls = append(cls, gasket.Strict(name+" to outer edge", cutoutToBoundaryGap(od, c, k.Sampling)))
		// Bolt holes must stay fully outside the cutout.
		for i, h := range holes {
			gap := gasket.HoleOutsideCutoutGap(sdf, h.Center, h.Radius)
			cls = append(cls, gasket.Strict(fmt.Sprintf("bolt hole %d to %s", i+1, name), gap))
		}
	}
	for _, c := range cls {
		rep.Append(c.Err())
	}
	if err := rep.Err(); err != nil {
		return nil, err
	}
	return &FlangeSpec{params: k, od: od, holes: holes, clearances: cls}, nil
}

func (k FlangeParams) boltHoles() []Hole {
	x, y, r := 0.5*k.BoltCCX, 0.5*k.BoltCCY, 0.5*k.BoltDiameter
	return []Hole{
		{Center: r2.Vec{X: x, Y: y}, Radius: r},
		{Center: r2.Vec{X: -x, Y: y}, Radius: r},
		{Center: r2.Vec{X: -x, Y: -y}, Radius: r},
		{Center: r2.Vec{X: x, Y: -y}, Radius: r},
	}
}

// boundary returns the cutout's signed distance object, translated to the
// cutout center.
func (c Cutout) boundary() (gasket.SDF2, error) {
	switch {
	case c.IsCircle() && (c.Size.X != 0 || c.Size.Y != 0):
		return nil, fmt.Errorf("both circle and rectangle dimensions set")
	case c.IsCircle():
		return translated{s: must2.NewCircle(0.5 * c.Diameter), offset: c.Center}, nil
	case c.Size.X > 0 && c.Size.Y > 0:
		return translated{s: must2.NewBox(c.Size, c.CornerRadius), offset: c.Center}, nil
	}
	return nil, fmt.Errorf("no cutout dimensions set")
}

// outline returns the cutout boundary points in its final position.
func (c Cutout) outline(s must2.ArcSampling) d2.Set {
	var v d2.Set
	if c.IsCircle() {
		v = must2.NewCircle(0.5 * c.Diameter).Vertices(s)
	} else {
		v = must2.NewBox(c.Size, c.CornerRadius).Vertices(s)
	}
	for i := range v {
		v[i] = r2.Add(v[i], c.Center)
	}
	return v
}

// cutoutToBoundaryGap is the smallest distance from the cutout boundary to
// the outer boundary, found by probing the cutout's sampled outline against
// the outer signed distance function.
func cutoutToBoundaryGap(od *must2.Box, c Cutout, s must2.ArcSampling) float64 {
	if c.IsCircle() {
		return gasket.HoleInBoundaryGap(od, c.Center, 0.5*c.Diameter)
	}
	gap := 0.0
	for i, p := range c.outline(sampling(s)) {
		g := -od.Evaluate(p)
		if i == 0 || g < gap {
			gap = g
		}
	}
	return gap
}

// translated shifts a signed distance object away from the origin.
type translated struct {
	s      gasket.SDF2
	offset r2.Vec
}

func (t translated) Evaluate(p r2.Vec) float64 {
	return t.s.Evaluate(r2.Sub(p, t.offset))
}

func (t translated) Bounds() r2.Box {
	b := t.s.Bounds()
	return r2.Box{Min: r2.Add(b.Min, t.offset), Max: r2.Add(b.Max, t.offset)}
}

// Outline returns the outer boundary points, counterclockwise.
func (s *FlangeSpec) Outline() d2.Set {
	return s.od.Vertices(sampling(s.params.Sampling))
}

// Holes returns the bolt hole placements.
func (s *FlangeSpec) Holes() []Hole {
	return append([]Hole(nil), s.holes...)
}

// Clearances returns every analyzed gap.
func (s *FlangeSpec) Clearances() []gasket.Clearance {
	return append([]gasket.Clearance(nil), s.clearances...)
}

// Drawing serializes the flange: the outer boundary as one closed polyline
// on the perimeter layer, bolt holes as circles and cutouts as circles or
// closed polylines on the holes layer.
func (s *FlangeSpec) Drawing(layers dxf.Layers) *dxf.Drawing {
	d := dxf.New(layers)
	d.Polyline(layers.Perimeter, s.Outline(), true)
	for _, h := range s.holes {
		d.Circle(layers.Holes, h.Center, h.Radius)
	}
	for _, c := range s.params.Cutouts {
		if c.IsCircle() {
			d.Circle(layers.Holes, c.Center, 0.5*c.Diameter)
		} else {
			d.Polyline(layers.Holes, c.outline(sampling(s.params.Sampling)), true)
		}
	}
	return d
}
