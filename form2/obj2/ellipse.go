package obj2

import (
	"github.com/gasketforge/gasket"
	"github.com/gasketforge/gasket/dxf"
	"github.com/gasketforge/gasket/form2/must2"
	"github.com/gasketforge/gasket/internal/d2"
)

// EllipseRingParams are the raw inputs of the elliptical ring gasket. The
// outer diameters are derived (OD = ID + 2*cross-section) and never entered
// directly.
type EllipseRingParams struct {
	IDLong, IDShort float64 // inner ellipse overall diameters
	CrossSection    float64 // radial wall width
	Segments        int     // boundary sampling (0 for the default)
}

const defaultEllipseSegments = 128

// ODLong returns the derived outer long diameter.
func (k EllipseRingParams) ODLong() float64 { return k.IDLong + 2*k.CrossSection }

// ODShort returns the derived outer short diameter.
func (k EllipseRingParams) ODShort() float64 { return k.IDShort + 2*k.CrossSection }

// EllipseRingSpec is a validated elliptical ring. Immutable once created.
type EllipseRingSpec struct {
	params EllipseRingParams
	od, id *must2.Ellipse
}

// Validate checks the ring dimensions, collecting every violation.
func (k EllipseRingParams) Validate() (*EllipseRingSpec, error) {
	rep := &gasket.Report{}
	okL := requirePositive(rep, "inner long diameter", k.IDLong)
	okS := requirePositive(rep, "inner short diameter", k.IDShort)
	requirePositive(rep, "cross section", k.CrossSection)
	if okL && okS {
		requireLongShort(rep, "inner diameter", k.IDLong, k.IDShort)
	}
	if k.Segments < 0 || (k.Segments > 0 && k.Segments < 3) {
		rep.Appendf("segments", "need at least 3, got %d", k.Segments)
	}
	if err := rep.Err(); err != nil {
		return nil, err
	}
	return &EllipseRingSpec{
		params: k,
		od:     must2.NewEllipse(k.ODLong(), k.ODShort()),
		id:     must2.NewEllipse(k.IDLong, k.IDShort),
	}, nil
}

func (s *EllipseRingSpec) segments() int {
	if s.params.Segments == 0 {
		return defaultEllipseSegments
	}
	return s.params.Segments
}

// Outline returns the outer boundary points.
func (s *EllipseRingSpec) Outline() d2.Set {
	return s.od.Vertices(s.segments())
}

// InnerOutline returns the inner boundary points.
func (s *EllipseRingSpec) InnerOutline() d2.Set {
	return s.id.Vertices(s.segments())
}

// Drawing serializes the ring: outer ellipse on the perimeter layer, inner
// ellipse on the holes layer, both as closed polylines.
func (s *EllipseRingSpec) Drawing(layers dxf.Layers) *dxf.Drawing {
	d := dxf.New(layers)
	d.Polyline(layers.Perimeter, s.Outline(), true)
	d.Polyline(layers.Holes, s.InnerOutline(), true)
	return d
}
