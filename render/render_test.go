package render

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gasketforge/gasket/dxf"
	"gonum.org/v1/gonum/spatial/r2"
)

func TestCreateDXF(t *testing.T) {
	d := dxf.New(dxf.DefaultLayers)
	d.Polyline("Perimeter", []r2.Vec{{X: -1, Y: -1}, {X: 1, Y: -1}, {X: 1, Y: 1}, {X: -1, Y: 1}}, true)
	d.Circle("Holes", r2.Vec{}, 0.5)

	path := filepath.Join(t.TempDir(), "out.dxf")
	if err := CreateDXF(path, d); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	doc := string(b)
	if !strings.HasPrefix(doc, "0\nSECTION\n") || !strings.HasSuffix(doc, "0\nEOF\n") {
		t.Error("written file is not a complete document")
	}
	if doc != d.String() {
		t.Error("file content must match the in-memory serialization")
	}
}

func TestCreateDXFBadPath(t *testing.T) {
	d := dxf.New(dxf.DefaultLayers)
	if err := CreateDXF(filepath.Join(t.TempDir(), "missing", "out.dxf"), d); err == nil {
		t.Error("expected create failure")
	}
}

func TestSavePreview(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preview.png")
	square := []r2.Vec{{X: -1, Y: -1}, {X: 1, Y: -1}, {X: 1, Y: 1}, {X: -1, Y: 1}}
	hole := CircleOutline(r2.Vec{}, 0.5, 32)
	if err := SavePreview(path, square, hole); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Error("preview file is empty")
	}
}

func TestCircleOutline(t *testing.T) {
	v := CircleOutline(r2.Vec{X: 2}, 1, 16)
	if len(v) != 16 {
		t.Fatalf("got %d points, want 16", len(v))
	}
	for i, p := range v {
		d := r2.Norm(r2.Sub(p, r2.Vec{X: 2}))
		if d < 1-1e-9 || d > 1+1e-9 {
			t.Errorf("point %d at radius %g", i, d)
		}
	}
	// Degenerate segment counts fall back to a sane default.
	if n := len(CircleOutline(r2.Vec{}, 1, 0)); n != 32 {
		t.Errorf("fallback outline has %d points, want 32", n)
	}
}
