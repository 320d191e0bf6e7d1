// Package config loads renderer settings from YAML files.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/achilleasa/trirender/asset"
	"github.com/achilleasa/trirender/color"
	"github.com/achilleasa/trirender/gfx"
	"github.com/achilleasa/trirender/types"
	"gopkg.in/yaml.v3"
)

var (
	ErrInvalidWindow   = errors.New("config: window dimensions must be positive")
	ErrMissingShader   = errors.New("config: both vertex and fragment shader paths are required")
	ErrInvalidColor    = errors.New("config: initial color must have 3 components in [0, 1]")
	ErrInvalidStep     = errors.New("config: color step must be in (0, 1]")
	ErrInvalidVertices = errors.New("config: vertex count must be a positive multiple of 3")
	ErrInvalidLogLimit = errors.New("config: max_log_length out of range")
)

type Config struct {
	Window      WindowConfig      `yaml:"window"`
	Shaders     ShaderConfig      `yaml:"shaders"`
	Color       ColorConfig       `yaml:"color"`
	Geometry    GeometryConfig    `yaml:"geometry"`
	Diagnostics DiagnosticsConfig `yaml:"diagnostics"`

	// Where the document was read from; nil for the defaults.
	origin *asset.Resource
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// Paths or URLs of the shader sources.
type ShaderConfig struct {
	Vertex   string `yaml:"vertex"`
	Fragment string `yaml:"fragment"`
}

type ColorConfig struct {
	Animated bool      `yaml:"animated"`
	Initial  []float32 `yaml:"initial"`
	Step     float32   `yaml:"step"`
}

type GeometryConfig struct {
	// Flat list of x, y, z positions.
	Vertices []float32 `yaml:"vertices"`
}

type DiagnosticsConfig struct {
	MaxLogLength int    `yaml:"max_log_length"`
	LogLevel     string `yaml:"log_level"`
}

// Returns the default configuration.
func Default() *Config {
	initial := color.DefaultColor
	return &Config{
		Window: WindowConfig{
			Width:  800,
			Height: 600,
			Title:  "trirender",
		},
		Shaders: ShaderConfig{
			Vertex:   "shaders/vertex.glsl",
			Fragment: "shaders/fragment.glsl",
		},
		Color: ColorConfig{
			Animated: false,
			Initial:  []float32{initial[0], initial[1], initial[2]},
			Step:     color.DefaultStep,
		},
		Geometry: GeometryConfig{
			Vertices: gfx.TriangleLayout().Positions(),
		},
		Diagnostics: DiagnosticsConfig{
			MaxLogLength: gfx.DefaultMaxInfoLog,
			LogLevel:     "notice",
		},
	}
}

// Load and validate a configuration file or URL. Fields missing from the file
// keep their default values; unknown fields are rejected. Relative shader
// paths are resolved against the location of the file.
func Load(path string) (*Config, error) {
	res, err := asset.NewResource(path, nil)
	if err != nil {
		return nil, fmt.Errorf("config: could not read %s: %w", path, err)
	}
	defer res.Close()

	return load(res)
}

// Load and validate a configuration document from a stream. Relative shader
// paths are resolved against the working directory.
func LoadStream(name string, source io.Reader) (*Config, error) {
	return load(asset.NewResourceFromStream(name, source))
}

func load(res *asset.Resource) (*Config, error) {
	data, err := io.ReadAll(res)
	if err != nil {
		return nil, fmt.Errorf("config: could not read %s: %w", res.Path(), err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, err
	}
	cfg.origin = res
	return cfg, nil
}

// Parse and validate a YAML document.
func Parse(data []byte) (*Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return nil, fmt.Errorf("config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Check that all settings are usable.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return ErrInvalidWindow
	}
	if c.Shaders.Vertex == "" || c.Shaders.Fragment == "" {
		return ErrMissingShader
	}
	if len(c.Color.Initial) != 3 || !c.InitialColor().InUnitRange() {
		return ErrInvalidColor
	}
	if c.Color.Step <= 0 || c.Color.Step > 1 {
		return ErrInvalidStep
	}
	if len(c.Geometry.Vertices) == 0 || len(c.Geometry.Vertices)%3 != 0 {
		return ErrInvalidVertices
	}
	if c.Diagnostics.MaxLogLength <= 0 || c.Diagnostics.MaxLogLength > gfx.MaxInfoLogLimit {
		return ErrInvalidLogLimit
	}
	return nil
}

// The initial color as a vector. Missing components are zero.
func (c *Config) InitialColor() types.Vec3 {
	var v types.Vec3
	copy(v[:], c.Color.Initial)
	return v
}

// The resource relative shader paths are resolved against; nil means the
// working directory.
func (c *Config) Origin() *asset.Resource {
	return c.origin
}

// The vertex layout described by the geometry section.
func (c *Config) VertexLayout() (gfx.VertexLayout, error) {
	return gfx.NewVertexLayout(c.Geometry.Vertices)
}
