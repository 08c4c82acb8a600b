package gasket

import (
	"gonum.org/v1/gonum/spatial/r2"
)

// Clearance analysis. A gap is the signed distance between two features'
// boundaries: positive means separated, zero touching, negative overlapping.
// Most pairings are strict (touching is already a hard failure); the graded
// policy exists for the firetube generator, where a small but positive gap
// is a warning rather than an error.

// Severity classifies a computed clearance.
type Severity int

const (
	SeverityOK Severity = iota
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityOK:
		return "ok"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	}
	return "unknown"
}

// Clearance is one analyzed gap between two features.
type Clearance struct {
	Name     string
	Gap      float64
	Severity Severity
}

// Err converts an error-severity clearance into a *ClearanceError.
func (c Clearance) Err() error {
	if c.Severity != SeverityError {
		return nil
	}
	return &ClearanceError{Name: c.Name, Gap: c.Gap}
}

// Strict classifies a gap under the strict rule: any gap <= 0 is an error,
// anything else passes. This applies to every pairing except the graded
// firetube edge checks.
func Strict(name string, gap float64) Clearance {
	sev := SeverityOK
	if gap <= 0 {
		sev = SeverityError
	}
	return Clearance{Name: name, Gap: gap, Severity: sev}
}

// Policy is a graded clearance policy: gaps below ErrorBelow are hard
// errors, gaps in [ErrorBelow, WarnBelow) are warnings that do not block
// export, and gaps at or above WarnBelow pass. Thresholds are carried as
// data so they stay a product decision rather than engine constants.
type Policy struct {
	ErrorBelow float64 `yaml:"error_below"`
	WarnBelow  float64 `yaml:"warn_below"`
}

// DefaultPolicy is the firetube edge-clearance policy: under half an inch
// of metal is an error, under an inch is flagged.
var DefaultPolicy = Policy{ErrorBelow: 0.5, WarnBelow: 1.0}

// Graded classifies a gap under the policy thresholds.
func (p Policy) Graded(name string, gap float64) Clearance {
	sev := SeverityOK
	switch {
	case gap < p.ErrorBelow:
		sev = SeverityError
	case gap < p.WarnBelow:
		sev = SeverityWarning
	}
	return Clearance{Name: name, Gap: gap, Severity: sev}
}

// HoleInBoundaryGap is the gap between the edge of a circular hole and an
// enclosing boundary described by its signed distance function. The hole
// center must evaluate negative (inside) for the gap to be positive.
func HoleInBoundaryGap(boundary SDF2, center r2.Vec, radius float64) float64 {
	return -boundary.Evaluate(center) - radius
}

// HoleOutsideCutoutGap is the gap between the edge of a circular hole and a
// cutout boundary the hole must stay fully outside of.
func HoleOutsideCutoutGap(cutout SDF2, center r2.Vec, radius float64) float64 {
	return cutout.Evaluate(center) - radius
}

// CircleGap is the edge-to-edge gap between two circles.
func CircleGap(a r2.Vec, ra float64, b r2.Vec, rb float64) float64 {
	return r2.Norm(r2.Sub(b, a)) - (ra + rb)
}
