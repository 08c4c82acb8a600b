package form2

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

func TestShapeErrors(t *testing.T) {
	if _, err := Circle(0); err == nil {
		t.Error("Circle(0) must fail")
	}
	if _, err := Box(r2.Vec{X: -1, Y: 2}, 0); err == nil {
		t.Error("Box with negative size must fail")
	}
	if _, err := Obround(2, 3); err == nil {
		t.Error("Obround with long < short must fail")
	}
	if _, err := Ellipse(2, 3); err == nil {
		t.Error("Ellipse with long < short must fail")
	}

	c, err := Circle(1.5)
	if err != nil || c == nil {
		t.Fatalf("Circle(1.5): %v", err)
	}
	if c.Radius != 1.5 {
		t.Errorf("radius %g, want 1.5", c.Radius)
	}
	o, err := Obround(4, 4)
	if err != nil || o == nil {
		t.Fatalf("Obround(4, 4): %v", err)
	}
}
