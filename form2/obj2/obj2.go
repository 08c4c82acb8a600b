// Package obj2 implements the gasket generators. Each generator is a
// parameter struct whose Validate method checks every dimensional and
// clearance constraint at once, returning an immutable spec on success. The
// spec exposes the boundary outline, the hole placements, the clearance
// report and the DXF drawing.
package obj2

import (
	"github.com/gasketforge/gasket"
	"github.com/gasketforge/gasket/form2/must2"
	"gonum.org/v1/gonum/spatial/r2"
)

// Hole is a circular interior cut feature.
type Hole struct {
	Center r2.Vec
	Radius float64
}

func sampling(s must2.ArcSampling) must2.ArcSampling {
	if s == (must2.ArcSampling{}) {
		return must2.DefaultSampling
	}
	return s
}

func policy(p gasket.Policy) gasket.Policy {
	if p == (gasket.Policy{}) {
		return gasket.DefaultPolicy
	}
	return p
}

// requirePositive records a ConstraintError unless v > 0.
func requirePositive(rep *gasket.Report, field string, v float64) bool {
	if v <= 0 {
		rep.Appendf(field, "must be positive, got %g", v)
		return false
	}
	return true
}

// requireLongShort records a ConstraintError unless long >= short. The pair
// is never silently swapped.
func requireLongShort(rep *gasket.Report, field string, long, short float64) bool {
	if long < short {
		rep.Appendf(field, "long dimension %g is smaller than short dimension %g", long, short)
		return false
	}
	return true
}
