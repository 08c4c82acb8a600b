// Package config loads the engine policy file: graded clearance thresholds,
// arc sampling density and DXF layer naming. The file is YAML; missing
// fields keep their defaults.
package config

import (
	"fmt"
	"os"

	"github.com/gasketforge/gasket"
	"github.com/gasketforge/gasket/dxf"
	"github.com/gasketforge/gasket/form2/must2"
	"gopkg.in/yaml.v3"
)

type SamplingConfig struct {
	// MaxSegment is the target maximum polyline chord length for arcs.
	MaxSegment float64 `yaml:"max_segment"`
	// MinSegments is the floor on segments per arc.
	MinSegments int `yaml:"min_segments"`
	// EllipseSegments is the fixed sample count for ellipse boundaries.
	EllipseSegments int `yaml:"ellipse_segments"`
}

type Config struct {
	// Clearance holds the graded firetube edge-clearance thresholds.
	Clearance gasket.Policy  `yaml:"clearance"`
	Sampling  SamplingConfig `yaml:"sampling"`
	Layers    dxf.Layers     `yaml:"layers"`
}

// Defaults returns the stock policy.
func Defaults() Config {
	return Config{
		Clearance: gasket.DefaultPolicy,
		Sampling: SamplingConfig{
			MaxSegment:      must2.DefaultSampling.MaxSegment,
			MinSegments:     must2.DefaultSampling.MinSegments,
			EllipseSegments: 128,
		},
		Layers: dxf.DefaultLayers,
	}
}

// ArcSampling converts the sampling section for the form2 packages.
func (c Config) ArcSampling() must2.ArcSampling {
	return must2.ArcSampling{MaxSegment: c.Sampling.MaxSegment, MinSegments: c.Sampling.MinSegments}
}

// Load reads a YAML config, layering it over the defaults. An empty path
// returns the defaults unchanged.
func Load(path string) (Config, error) {
	c := Defaults()
	if path == "" {
		return c, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, &c); err != nil {
		return c, fmt.Errorf("parse config: %w", err)
	}
	return c, c.validate()
}

// Save writes the config as YAML.
func (c Config) Save(path string) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return os.WriteFile(path, b, 0o644)
}

func (c Config) validate() error {
	if c.Clearance.ErrorBelow > c.Clearance.WarnBelow {
		return fmt.Errorf("clearance: error_below %g exceeds warn_below %g",
			c.Clearance.ErrorBelow, c.Clearance.WarnBelow)
	}
	if c.Sampling.MaxSegment <= 0 {
		return fmt.Errorf("sampling: max_segment must be positive")
	}
	if c.Sampling.EllipseSegments < 3 {
		return fmt.Errorf("sampling: ellipse_segments must be at least 3")
	}
	if c.Layers.Perimeter == "" || c.Layers.Holes == "" {
		return fmt.Errorf("layers: names must not be empty")
	}
	return nil
}
