// SPDX-License-Identifier: MIT
// Package: geodome/config

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/geodome/dome"
	"github.com/katalvlaran/geodome/export"
)

const (
	methodLoad     = "Load"
	methodValidate = "Validate"
)

// ErrInvalid indicates a configuration file that cannot be used.
var ErrInvalid = errors.New("config: invalid file")

// File is the YAML document.
type File struct {
	Radius      float64 `yaml:"radius"`
	Frequency   int     `yaml:"frequency"`
	Dome        bool    `yaml:"dome"`
	Icosahedral bool    `yaml:"icosahedral"`
	Cylindrical bool    `yaml:"cylindrical"`
	CutPoint    float64 `yaml:"cut_point"`
	Tolerance   float64 `yaml:"tolerance"`
	Precision   uint    `yaml:"precision"`
	Triangles   string  `yaml:"triangles"`
	Parallel    int     `yaml:"parallel"`
	Output      Output  `yaml:"output"`
}

// Output names the artifacts. Empty companion paths are skipped.
type Output struct {
	Dir       string `yaml:"dir"`
	Nodes     string `yaml:"nodes"`
	Edges     string `yaml:"edges"`
	Triangles string `yaml:"triangles"`
	DXF       string `yaml:"dxf,omitempty"`
	GLTF      string `yaml:"gltf,omitempty"`
	GeoJSON   string `yaml:"geojson,omitempty"`
}

// Default returns the built-in parameter set.
func Default() File {
	c := dome.DefaultConfig()
	names := export.DefaultNames()
	return File{
		Radius:      c.Radius,
		Frequency:   c.Frequency,
		Dome:        c.Dome,
		Icosahedral: !c.Projected,
		Cylindrical: c.Cylindrical,
		CutPoint:    c.CutPoint,
		Tolerance:   c.Tolerance,
		Precision:   c.Precision,
		Triangles:   string(c.Triangles),
		Parallel:    c.Parallel,
		Output: Output{
			Dir:       ".",
			Nodes:     names.Nodes,
			Edges:     names.Edges,
			Triangles: names.Triangles,
		},
	}
}

// Load reads path over Default and validates the result.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("%s: %w", methodLoad, err)
	}
	return Parse(data)
}

// Parse decodes a YAML document over Default and validates the result. An
// empty document yields Default.
func Parse(data []byte) (File, error) {
	f := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return File{}, fmt.Errorf("%s: %v: %w", methodLoad, err, ErrInvalid)
	}
	if err := f.Validate(); err != nil {
		return File{}, err
	}
	return f, nil
}

// Marshal renders f as YAML.
func (f File) Marshal() ([]byte, error) {
	return yaml.Marshal(f)
}

// Validate checks the output names and the dome parameters.
func (f File) Validate() error {
	if f.Output.Nodes == "" || f.Output.Edges == "" || f.Output.Triangles == "" {
		return fmt.Errorf("%s: empty artifact name: %w", methodValidate, ErrInvalid)
	}
	if !dome.TriangleMethod(f.Triangles).Valid() {
		return fmt.Errorf("%s: triangles %q: %w", methodValidate, f.Triangles, ErrInvalid)
	}
	if err := f.DomeConfig().Validate(); err != nil {
		return fmt.Errorf("%s: %w", methodValidate, err)
	}
	return nil
}

// DomeConfig converts f to the builder parameter set.
func (f File) DomeConfig() dome.Config {
	return dome.Config{
		Radius:      f.Radius,
		Frequency:   f.Frequency,
		Projected:   !f.Icosahedral,
		Dome:        f.Dome,
		Cylindrical: f.Cylindrical,
		CutPoint:    f.CutPoint,
		Tolerance:   f.Tolerance,
		Precision:   f.Precision,
		Triangles:   dome.TriangleMethod(f.Triangles),
		Parallel:    f.Parallel,
	}
}

// DomeOptions returns the options that reproduce f in dome.New.
func (f File) DomeOptions() []dome.Option {
	return []dome.Option{dome.WithConfig(f.DomeConfig())}
}

// Names returns the text artifact names.
func (f File) Names() export.Names {
	return export.Names{Nodes: f.Output.Nodes, Edges: f.Output.Edges, Triangles: f.Output.Triangles}
}
