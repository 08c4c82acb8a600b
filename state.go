package gasket

import (
	"github.com/gasketforge/gasket/dxf"
)

// Session is the small state machine a UI or CLI shell wraps around the
// engine: Ready -> Validated -> Exported, with any input edit dropping back
// to Ready. It enforces the staleness rule that no export may happen without
// a spec produced by the current input values. The geometry core itself
// stays purely functional; the session is the single owner of the "last
// validated spec" mutable cell.
type State int

const (
	StateReady State = iota
	StateValidated
	StateExported
)

func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateValidated:
		return "validated"
	case StateExported:
		return "exported"
	}
	return "unknown"
}

// Exportable is a validated, immutable geometry spec that can serialize
// itself into a DXF drawing.
type Exportable interface {
	Drawing(layers dxf.Layers) *dxf.Drawing
}

type Session struct {
	Layers dxf.Layers

	state    State
	spec     Exportable
	warnings []Clearance
}

func NewSession() *Session {
	return &Session{Layers: dxf.DefaultLayers}
}

func (s *Session) State() State { return s.state }

// Warnings returns the non-blocking clearance warnings attached to the last
// successful validation.
func (s *Session) Warnings() []Clearance { return s.warnings }

// Invalidate destroys the current spec. Call it whenever any contributing
// input changes, or after a failed validation.
func (s *Session) Invalidate() {
	s.state = StateReady
	s.spec = nil
	s.warnings = nil
}

// Validated installs a freshly validated spec. Only successful validation
// may produce one.
func (s *Session) Validated(spec Exportable, warnings []Clearance) {
	s.state = StateValidated
	s.spec = spec
	s.warnings = warnings
}

// Export serializes the current spec. It fails with a PreconditionError if
// the inputs have changed since the last validation (or never validated).
// Exporting leaves the spec in place; a spec may be exported repeatedly
// until an input changes.
func (s *Session) Export() (*dxf.Drawing, error) {
	if s.spec == nil {
		return nil, &PreconditionError{Op: "export", Reason: "no validated geometry for the current inputs"}
	}
	s.state = StateExported
	return s.spec.Drawing(s.Layers), nil
}
