package obj2

import (
	"errors"
	"math"
	"testing"

	"github.com/gasketforge/gasket"
	"github.com/gasketforge/gasket/dxf"
	"github.com/google/go-cmp/cmp"
	"gonum.org/v1/gonum/spatial/r2"
)

// A 5x5 flange with half-inch rounded corners, four half-inch bolt holes on
// a 3.5 inch square pattern and a 3 inch circular cutout in the middle.
func validFlange() FlangeParams {
	return FlangeParams{
		ODX:          5,
		ODY:          5,
		CornerRadius: 0.5,
		BoltDiameter: 0.5,
		BoltCCX:      3.5,
		BoltCCY:      3.5,
		Cutouts:      []Cutout{{Diameter: 3}},
	}
}

func TestFlangeValidate(t *testing.T) {
	spec, err := validFlange().Validate()
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}

	holes := spec.Holes()
	if len(holes) != 4 {
		t.Fatalf("got %d bolt holes, want 4", len(holes))
	}
	wantCenters := []r2.Vec{
		{X: 1.75, Y: 1.75},
		{X: -1.75, Y: 1.75},
		{X: -1.75, Y: -1.75},
		{X: 1.75, Y: -1.75},
	}
	for i, h := range holes {
		if h.Radius != 0.25 {
			t.Errorf("hole %d radius %g, want 0.25", i, h.Radius)
		}
		if diff := cmp.Diff(wantCenters[i], h.Center); diff != "" {
			t.Errorf("hole %d center mismatch:\n%s", i, diff)
		}
	}

	// 4 bolt-to-edge + 6 bolt pairs + 1 cutout-to-edge + 4 bolt-to-cutout.
	cls := spec.Clearances()
	if len(cls) != 15 {
		t.Fatalf("got %d clearances, want 15", len(cls))
	}
	byName := map[string]float64{}
	for _, c := range cls {
		if c.Severity != gasket.SeverityOK {
			t.Errorf("%s: severity %v, gap %g", c.Name, c.Severity, c.Gap)
		}
		byName[c.Name] = c.Gap
	}
	for name, want := range map[string]float64{
		"bolt hole 1 to outer edge":  0.5,
		"bolt hole 1 to bolt hole 4": 3.0,
		"cutout 1 to outer edge":     1.0,
		"bolt hole 1 to cutout 1":    1.75*math.Sqrt2 - 1.5 - 0.25,
	} {
		got, ok := byName[name]
		if !ok {
			t.Errorf("clearance %q missing", name)
			continue
		}
		if math.Abs(got-want) > 1e-9 {
			t.Errorf("%s: gap %g, want %g", name, got, want)
		}
	}

	// Every outline vertex sits on the outer boundary.
	for i, p := range spec.Outline() {
		if d := spec.od.Evaluate(p); math.Abs(d) > 1e-9 {
			t.Fatalf("outline vertex %d off boundary by %g", i, d)
		}
	}
}

func TestFlangeDrawing(t *testing.T) {
	spec, err := validFlange().Validate()
	if err != nil {
		t.Fatal(err)
	}
	d := spec.Drawing(dxf.DefaultLayers)
	want := []string{"POLYLINE", "CIRCLE", "CIRCLE", "CIRCLE", "CIRCLE", "CIRCLE"}
	if diff := cmp.Diff(want, d.Entities()); diff != "" {
		t.Errorf("entity order mismatch:\n%s", diff)
	}
}

func TestFlangeRejectsBadDimensions(t *testing.T) {
	k := validFlange()
	k.ODX = 0
	k.BoltDiameter = -1
	k.CornerRadius = 3 // checked only once the outer dims are sane
	_, err := k.Validate()
	if err == nil {
		t.Fatal("expected validation failure")
	}
	var rep *gasket.Report
	if !errors.As(err, &rep) {
		t.Fatalf("got %T, want *gasket.Report", err)
	}
	if len(rep.Problems) != 2 {
		t.Errorf("got %d problems, want 2: %v", len(rep.Problems), rep)
	}

	k = validFlange()
	k.CornerRadius = 2.75 // exceeds half the smaller outer dimension
	if _, err := k.Validate(); err == nil {
		t.Error("oversized corner radius must fail")
	}
}

func TestFlangeRejectsCollisions(t *testing.T) {
	// Bolt holes overlapping the cutout.
	k := validFlange()
	k.BoltCCX, k.BoltCCY = 2, 2
	_, err := k.Validate()
	if err == nil {
		t.Fatal("expected clearance failure")
	}
	var ce *gasket.ClearanceError
	if !errors.As(err, &ce) {
		t.Fatalf("got %T, want a wrapped *gasket.ClearanceError", err)
	}
	if ce.Gap > 0 {
		t.Errorf("offending gap %g, want <= 0", ce.Gap)
	}

	// Bolt holes breaking through the outer edge.
	k = validFlange()
	k.BoltCCX, k.BoltCCY = 4.8, 4.8
	if _, err := k.Validate(); err == nil {
		t.Error("bolt holes outside the boundary must fail")
	}

	// A cutout bigger than the gasket.
	k = validFlange()
	k.Cutouts = []Cutout{{Diameter: 6}}
	if _, err := k.Validate(); err == nil {
		t.Error("oversized cutout must fail")
	}
}

func TestFlangeRectangularCutout(t *testing.T) {
	k := validFlange()
	k.Cutouts = []Cutout{{Size: r2.Vec{X: 2, Y: 1.5}, CornerRadius: 0.25}}
	spec, err := k.Validate()
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	d := spec.Drawing(dxf.DefaultLayers)
	// Outer boundary polyline, 4 hole circles, cutout polyline.
	want := []string{"POLYLINE", "CIRCLE", "CIRCLE", "CIRCLE", "CIRCLE", "POLYLINE"}
	if diff := cmp.Diff(want, d.Entities()); diff != "" {
		t.Errorf("entity order mismatch:\n%s", diff)
	}
}

func TestCutoutKindValidation(t *testing.T) {
	k := validFlange()
	k.Cutouts = []Cutout{{Diameter: 1, Size: r2.Vec{X: 1, Y: 1}}}
	if _, err := k.Validate(); err == nil {
		t.Error("cutout with both kinds set must fail")
	}
	k.Cutouts = []Cutout{{}}
	if _, err := k.Validate(); err == nil {
		t.Error("cutout with no dimensions must fail")
	}
}
