// Package dxf serializes 2D entities into a minimal DXF R12 ASCII document.
// The write path emits a HEADER section declaring the linear unit, a TABLES
// section with the layer records, an ENTITIES section and the terminating
// EOF marker, following the fixed R12 group-code/value grammar (group code
// line, then value line, repeated). There is no read path.
package dxf

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r2"
)

// Layers names the two drawing layers every gasket export uses.
type Layers struct {
	Perimeter string `yaml:"perimeter"`
	Holes     string `yaml:"holes"`
}

// DefaultLayers is the conventional layer naming: the outer boundary on
// "Perimeter", every interior cut feature on "Holes".
var DefaultLayers = Layers{Perimeter: "Perimeter", Holes: "Holes"}

// AutoCAD color indices for the layer table.
const (
	colorWhite = 7
	colorRed   = 1
)

// Drawing is an in-memory DXF document under construction.
type Drawing struct {
	layers   []layerRecord
	entities []entity
}

type layerRecord struct {
	name  string
	color int
}

type entity interface {
	writeTo(w *groupWriter)
}

// New returns an empty drawing with the given layers declared in order.
// The first layer gets the default (white) color, later layers red, which
// keeps boundary and hole geometry visually distinct in viewers.
func New(layers Layers) *Drawing {
	return &Drawing{
		layers: []layerRecord{
			{name: layers.Perimeter, color: colorWhite},
			{name: layers.Holes, color: colorRed},
		},
	}
}

// Polyline appends a polyline with 2D vertices at z=0. A closed polyline
// gets its closed flag (70 = 1) set; the closing segment is implicit and the
// first vertex is not repeated.
func (d *Drawing) Polyline(layer string, vertices []r2.Vec, closed bool) {
	d.entities = append(d.entities, &polyline{layer: layer, vertices: vertices, closed: closed})
}

// Circle appends a circle entity.
func (d *Drawing) Circle(layer string, center r2.Vec, radius float64) {
	d.entities = append(d.entities, &circle{layer: layer, center: center, radius: radius})
}

// Arc appends a circular arc entity. Angles are in degrees and the arc runs
// counterclockwise from start to end, as DXF requires.
func (d *Drawing) Arc(layer string, center r2.Vec, radius, startDeg, endDeg float64) {
	d.entities = append(d.entities, &arc{layer: layer, center: center, radius: radius, start: startDeg, end: endDeg})
}

// Line appends a straight line entity.
func (d *Drawing) Line(layer string, from, to r2.Vec) {
	d.entities = append(d.entities, &line{layer: layer, from: from, to: to})
}

// Entities returns the entity type names in document order ("POLYLINE",
// "CIRCLE", ...), mainly for tests and diagnostics.
func (d *Drawing) Entities() []string {
	names := make([]string, len(d.entities))
	for i, e := range d.entities {
		switch e.(type) {
		case *polyline:
			names[i] = "POLYLINE"
		case *circle:
			names[i] = "CIRCLE"
		case *arc:
			names[i] = "ARC"
		case *line:
			names[i] = "LINE"
		}
	}
	return names
}

// WriteTo serializes the document. It implements io.WriterTo.
func (d *Drawing) WriteTo(w io.Writer) (int64, error) {
	gw := &groupWriter{w: w}

	// HEADER: declare R12 and inches as the drawing unit.
	gw.group(0, "SECTION")
	gw.group(2, "HEADER")
	gw.group(9, "$ACADVER")
	gw.group(1, "AC1009")
	gw.group(9, "$INSUNITS")
	gw.groupInt(70, 1)
	gw.group(0, "ENDSEC")

	// TABLES: exactly the layer records needed.
	gw.group(0, "SECTION")
	gw.group(2, "TABLES")
	gw.group(0, "TABLE")
	gw.group(2, "LAYER")
	gw.groupInt(70, len(d.layers))
	for _, l := range d.layers {
		gw.group(0, "LAYER")
		gw.group(2, l.name)
		gw.groupInt(70, 0)
		gw.groupInt(62, l.color)
		gw.group(6, "CONTINUOUS")
	}
	gw.group(0, "ENDTAB")
	gw.group(0, "ENDSEC")

	// ENTITIES
	gw.group(0, "SECTION")
	gw.group(2, "ENTITIES")
	for _, e := range d.entities {
		e.writeTo(gw)
	}
	gw.group(0, "ENDSEC")

	gw.group(0, "EOF")
	return gw.n, gw.err
}

// String serializes the document to a string. Useful for tests; export code
// should prefer WriteTo.
func (d *Drawing) String() string {
	var sb strings.Builder
	d.WriteTo(&sb)
	return sb.String()
}

type polyline struct {
	layer    string
	vertices []r2.Vec
	closed   bool
}

func (p *polyline) writeTo(w *groupWriter) {
	w.group(0, "POLYLINE")
	w.group(8, p.layer)
	w.groupInt(66, 1) // vertices follow
	flags := 0
	if p.closed {
		flags = 1
	}
	w.groupInt(70, flags)
	for _, v := range p.vertices {
		w.group(0, "VERTEX")
		w.group(8, p.layer)
		w.groupFloat(10, v.X)
		w.groupFloat(20, v.Y)
		w.groupFloat(30, 0)
	}
	w.group(0, "SEQEND")
}

type circle struct {
	layer  string
	center r2.Vec
	radius float64
}

func (c *circle) writeTo(w *groupWriter) {
	w.group(0, "CIRCLE")
	w.group(8, c.layer)
	w.groupFloat(10, c.center.X)
	w.groupFloat(20, c.center.Y)
	w.groupFloat(30, 0)
	w.groupFloat(40, c.radius)
}

type arc struct {
	layer      string
	center     r2.Vec
	radius     float64
	start, end float64 // degrees, counterclockwise
}

func (a *arc) writeTo(w *groupWriter) {
	w.group(0, "ARC")
	w.group(8, a.layer)
	w.groupFloat(10, a.center.X)
	w.groupFloat(20, a.center.Y)
	w.groupFloat(30, 0)
	w.groupFloat(40, a.radius)
	w.groupFloat(50, a.start)
	w.groupFloat(51, a.end)
}

type line struct {
	layer    string
	from, to r2.Vec
}

func (l *line) writeTo(w *groupWriter) {
	w.group(0, "LINE")
	w.group(8, l.layer)
	w.groupFloat(10, l.from.X)
	w.groupFloat(20, l.from.Y)
	w.groupFloat(30, 0)
	w.groupFloat(11, l.to.X)
	w.groupFloat(21, l.to.Y)
	w.groupFloat(31, 0)
}

// groupWriter emits group-code/value pairs, tracking the first write error
// so entity code stays free of error plumbing.
type groupWriter struct {
	w   io.Writer
	n   int64
	err error
}

func (g *groupWriter) group(code int, value string) {
	if g.err != nil {
		return
	}
	n, err := fmt.Fprintf(g.w, "%d\n%s\n", code, value)
	g.n += int64(n)
	g.err = err
}

func (g *groupWriter) groupInt(code, value int) {
	g.group(code, strconv.Itoa(value))
}

// groupFloat writes a coordinate at full precision: the shortest decimal
// string that round-trips the IEEE-754 double.
func (g *groupWriter) groupFloat(code int, value float64) {
	g.group(code, strconv.FormatFloat(value, 'f', -1, 64))
}
