// Program gasket2dxf turns dimensional inputs into a gasket outline and
// exports it as a DXF R12 drawing.
//
// Dimensions accept decimals and shop fractions: 3.5, "3 1/2", 3-1/2, 7/8.
//
// Examples:
//
//	gasket2dxf -shape flange -od-x 5 -od-y 5 -corner 1/2 -bolt-dia 1/2 \
//	    -bolt-cc-x 3.5 -bolt-cc-y 3.5 -cutout-dia 3 -o flange.dxf
//	gasket2dxf -shape jumper -hole-dia 9/16 -hole-edge 1/2 \
//	    -center-dia 3 -center-edge 3/4 -cc 6 -o jumper.dxf -preview jumper.png
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gasketforge/gasket"
	"github.com/gasketforge/gasket/config"
	"github.com/gasketforge/gasket/form2/obj2"
	"github.com/gasketforge/gasket/internal/log"
	"github.com/gasketforge/gasket/render"
	"gonum.org/v1/gonum/spatial/r2"
)

var (
	shape      = flag.String("shape", "", "gasket kind: flange, ellipse, firetube or jumper")
	out        = flag.String("o", "gasket.dxf", "output DXF filename")
	preview    = flag.String("preview", "", "optional preview image filename (.png or .svg)")
	configPath = flag.String("config", "", "optional YAML policy file")

	// flange
	odX     = flag.String("od-x", "", "flange outer width")
	odY     = flag.String("od-y", "", "flange outer height")
	corner  = flag.String("corner", "0", "flange outer corner radius")
	boltDia = flag.String("bolt-dia", "", "flange bolt hole diameter")
	boltCCX = flag.String("bolt-cc-x", "", "bolt center-to-center along x")
	boltCCY = flag.String("bolt-cc-y", "", "bolt center-to-center along y")
	cutDia  = flag.String("cutout-dia", "", "circular cutout diameter")
	cutW    = flag.String("cutout-w", "", "rectangular cutout width")
	cutH    = flag.String("cutout-h", "", "rectangular cutout height")
	cutR    = flag.String("cutout-r", "0", "rectangular cutout corner radius")

	// ellipse
	idLong  = flag.String("id-long", "", "inner long dimension")
	idShort = flag.String("id-short", "", "inner short dimension")
	cross   = flag.String("cross", "", "ellipse ring cross-section (wall width)")

	// firetube (shares id-long/id-short)
	odLong    = flag.String("od-long", "", "outer long dimension")
	odShort   = flag.String("od-short", "", "outer short dimension")
	bcLong    = flag.String("bc-long", "", "bolt circle long dimension")
	bcShort   = flag.String("bc-short", "", "bolt circle short dimension")
	holeCount = flag.Int("hole-count", 0, "number of bolt holes")
	straddle  = flag.Bool("straddle", false, "straddle the long axis instead of starting on it")

	// jumper (shares hole-dia with firetube)
	holeDia    = flag.String("hole-dia", "", "bolt hole diameter")
	holeEdge   = flag.String("hole-edge", "", "jumper bolt hole edge clearance")
	centerDia  = flag.String("center-dia", "", "jumper center hole diameter")
	centerEdge = flag.String("center-edge", "", "jumper center hole edge clearance")
	cc         = flag.String("cc", "", "jumper bolt hole center-to-center spacing")
)

func main() {
	flag.Parse()
	logger := log.WithComponent("gasket2dxf")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("config", "err", err)
		os.Exit(1)
	}

	d := &dims{rep: &gasket.Report{}}
	sess := gasket.NewSession()
	sess.Layers = cfg.Layers

	var (
		spec     gasket.Exportable
		warnings []gasket.Clearance
		verr     error
	)
	switch *shape {
	case "flange":
		spec, verr = d.flange(cfg)
	case "ellipse":
		spec, verr = d.ellipse(cfg)
	case "firetube":
		spec, warnings, verr = d.firetube(cfg)
	case "jumper":
		spec, verr = d.jumper(cfg)
	case "":
		fmt.Fprintln(os.Stderr, "missing -shape; one of flange, ellipse, firetube, jumper")
		flag.Usage()
		os.Exit(2)
	default:
		fmt.Fprintf(os.Stderr, "unknown shape %q\n", *shape)
		os.Exit(2)
	}

	// Surface every field problem in one pass.
	if perr := d.rep.Err(); perr != nil {
		fail(perr)
	}
	if verr != nil {
		fail(verr)
	}

	sess.Validated(spec, warnings)
	for _, w := range warnings {
		logger.Warn("clearance", "check", w.Name, "gap", w.Gap)
	}

	drawing, err := sess.Export()
	if err != nil {
		logger.Error("export", "err", err)
		os.Exit(1)
	}
	if err := render.CreateDXF(*out, drawing); err != nil {
		logger.Error("export", "err", err)
		os.Exit(1)
	}
	logger.Info("exported", "file", *out, "entities", len(drawing.Entities()))

	if *preview != "" {
		if err := render.SavePreview(*preview, previewOutlines(spec)...); err != nil {
			logger.Error("preview", "err", err)
			os.Exit(1)
		}
		logger.Info("preview written", "file", *preview)
	}
}

func fail(err error) {
	if rep, ok := err.(*gasket.Report); ok {
		for _, p := range rep.Problems {
			fmt.Fprintln(os.Stderr, "error:", p)
		}
	} else {
		fmt.Fprintln(os.Stderr, "error:", err)
	}
	os.Exit(1)
}

// dims parses dimension flags, collecting every parse failure instead of
// stopping at the first.
type dims struct {
	rep *gasket.Report
}

func (d *dims) get(name, value string) float64 {
	v, err := gasket.ParseDimension(value)
	if err != nil {
		d.rep.Append(fmt.Errorf("-%s: %w", name, err))
	}
	return v
}

// getOpt returns 0 without error for an empty optional flag.
func (d *dims) getOpt(name, value string) float64 {
	if value == "" {
		return 0
	}
	return d.get(name, value)
}

func (d *dims) flange(cfg config.Config) (gasket.Exportable, error) {
	k := obj2.FlangeParams{
		ODX:          d.get("od-x", *odX),
		ODY:          d.get("od-y", *odY),
		CornerRadius: d.get("corner", *corner),
		BoltDiameter: d.get("bolt-dia", *boltDia),
		BoltCCX:      d.get("bolt-cc-x", *boltCCX),
		BoltCCY:      d.get("bolt-cc-y", *boltCCY),
		Sampling:     cfg.ArcSampling(),
	}
	if *cutDia != "" || *cutW != "" || *cutH != "" {
		k.Cutouts = append(k.Cutouts, obj2.Cutout{
			Diameter:     d.getOpt("cutout-dia", *cutDia),
			Size:         r2.Vec{X: d.getOpt("cutout-w", *cutW), Y: d.getOpt("cutout-h", *cutH)},
			CornerRadius: d.getOpt("cutout-r", *cutR),
		})
	}
	if err := d.rep.Err(); err != nil {
		return nil, nil // parse errors already collected
	}
	return k.Validate()
}

func (d *dims) ellipse(cfg config.Config) (gasket.Exportable, error) {
	k := obj2.EllipseRingParams{
		IDLong:       d.get("id-long", *idLong),
		IDShort:      d.get("id-short", *idShort),
		CrossSection: d.get("cross", *cross),
		Segments:     cfg.Sampling.EllipseSegments,
	}
	if err := d.rep.Err(); err != nil {
		return nil, nil
	}
	return k.Validate()
}

func (d *dims) firetube(cfg config.Config) (gasket.Exportable, []gasket.Clearance, error) {
	k := obj2.FiretubeParams{
		ODLong:       d.get("od-long", *odLong),
		ODShort:      d.get("od-short", *odShort),
		IDLong:       d.get("id-long", *idLong),
		IDShort:      d.get("id-short", *idShort),
		BCLong:       d.get("bc-long", *bcLong),
		BCShort:      d.get("bc-short", *bcShort),
		HoleDiameter: d.get("hole-dia", *holeDia),
		HoleCount:    *holeCount,
		Straddle:     *straddle,
		Policy:       cfg.Clearance,
		Sampling:     cfg.ArcSampling(),
	}
	if err := d.rep.Err(); err != nil {
		return nil, nil, nil
	}
	spec, err := k.Validate()
	if err != nil {
		return nil, nil, err
	}
	return spec, spec.Warnings(), nil
}

func (d *dims) jumper(cfg config.Config) (gasket.Exportable, error) {
	k := obj2.JumperParams{
		HoleDiameter:   d.get("hole-dia", *holeDia),
		HoleClearance:  d.get("hole-edge", *holeEdge),
		IDDiameter:     d.get("center-dia", *centerDia),
		IDClearance:    d.get("center-edge", *centerEdge),
		CenterToCenter: d.get("cc", *cc),
		Sampling:       cfg.ArcSampling(),
	}
	if err := d.rep.Err(); err != nil {
		return nil, nil
	}
	return k.Validate()
}

// previewOutlines gathers the point sequences to draw for a spec.
func previewOutlines(spec gasket.Exportable) [][]r2.Vec {
	var outlines [][]r2.Vec
	addHoles := func(holes []obj2.Hole) {
		for _, h := range holes {
			outlines = append(outlines, render.CircleOutline(h.Center, h.Radius, 64))
		}
	}
	switch s := spec.(type) {
	case *obj2.FlangeSpec:
		outlines = append(outlines, s.Outline())
		addHoles(s.Holes())
	case *obj2.EllipseRingSpec:
		outlines = append(outlines, s.Outline(), s.InnerOutline())
	case *obj2.FiretubeSpec:
		outlines = append(outlines, s.Outline(), s.InnerOutline())
		addHoles(s.Holes())
	case *obj2.JumperSpec:
		outlines = append(outlines, s.Outline())
		addHoles(s.Holes())
	}
	return outlines
}
