package gasket

import (
	"fmt"
	"strings"
)

// Error taxonomy. Validation never stops at the first problem: every
// violated constraint is appended to a Report so the caller can surface all
// field-level issues in one pass.

// ParseError is a malformed numeric or fraction string.
type ParseError struct {
	Text   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse dimension %q: %s", e.Text, e.Reason)
}

// ConstraintError is a violated dimensional relationship, such as a short
// dimension exceeding its paired long dimension.
type ConstraintError struct {
	Field  string
	Reason string
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// ClearanceError is a computed gap that is zero or negative for a pairing
// that requires strict separation.
type ClearanceError struct {
	Name string  // the pairing, e.g. "bolt hole 2 to cutout"
	Gap  float64 // the offending gap (<= 0, or below a policy threshold)
}

func (e *ClearanceError) Error() string {
	if e.Gap <= 0 {
		return fmt.Sprintf("%s: touching or overlapping (gap %g)", e.Name, e.Gap)
	}
	return fmt.Sprintf("%s: clearance %g below minimum", e.Name, e.Gap)
}

// PreconditionError is a geometric construction with no solution for the
// given inputs. It is distinct from ClearanceError because the remedy is to
// adjust offsets or spacing rather than feature sizes.
type PreconditionError struct {
	Op     string
	Reason string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}

// Report accumulates validation problems. A nil or empty report means the
// inputs validated cleanly.
type Report struct {
	Problems []error
}

func (r *Report) Append(err error) {
	if err != nil {
		r.Problems = append(r.Problems, err)
	}
}

// Appendf records a ConstraintError for field.
func (r *Report) Appendf(field, format string, args ...any) {
	r.Problems = append(r.Problems, &ConstraintError{Field: field, Reason: fmt.Sprintf(format, args...)})
}

// Err returns the report as an error, or nil if no problems were recorded.
func (r *Report) Err() error {
	if r == nil || len(r.Problems) == 0 {
		return nil
	}
	return r
}

func (r *Report) Error() string {
	msgs := make([]string, len(r.Problems))
	for i, p := range r.Problems {
		msgs[i] = p.Error()
	}
	return strings.Join(msgs, "; ")
}

// Unwrap exposes the individual problems to errors.Is/As.
func (r *Report) Unwrap() []error { return r.Problems }
