// Package config holds scene settings: output size, camera and the shapes to
// place. Settings start from Default and may be overridden by a TOML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"prism/quarkgl"
)

// Config is the scene settings file.
type Config struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
	// Scale is the window pixel scale in window mode.
	Scale int `toml:"scale"`

	Camera Camera `toml:"camera"`
	Style  Style  `toml:"style"`

	Cubes  []Shape `toml:"cube"`
	Planes []Shape `toml:"plane"`
}

type Camera struct {
	Position [3]float64 `toml:"position"`
	// FoV is the degrees-like field of view input; the camera uses FoV/100.
	FoV float64 `toml:"fov"`
}

// Style colors are "#rrggbb" or "#rrggbbaa".
type Style struct {
	Fill       string `toml:"fill"`
	Stroke     string `toml:"stroke"`
	Background string `toml:"background"`
}

type Shape struct {
	Center [3]float64 `toml:"center"`
	Size   float64    `toml:"size"`
}

// Default is one cube of size 50 at the origin, viewed from z=500 on an
// 800×600 surface.
func Default() Config {
	return Config{
		Width:  800,
		Height: 600,
		Scale:  1,
		Camera: Camera{
			Position: [3]float64{0, 0, 500},
			FoV:      50,
		},
		Style: Style{
			Fill:       "#00ff0080",
			Stroke:     "#000000",
			Background: "#ffffff",
		},
		Cubes: []Shape{{Center: [3]float64{0, 0, 0}, Size: 50}},
	}
}

// Load reads path over the defaults. An empty path returns Default().
//
// A file that lists any cube or plane replaces the default shape list.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return Parse(b)
}

// Parse decodes TOML settings over the defaults.
func Parse(b []byte) (Config, error) {
	cfg := Default()
	cfg.Cubes = nil
	dec := toml.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return Config{}, fmt.Errorf("config: line %d column %d: %w", row, col, err)
		}
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if len(cfg.Cubes) == 0 && len(cfg.Planes) == 0 {
		cfg.Cubes = Default().Cubes
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks sizes, the field of view and colors.
func (c Config) Validate() error {
	if c.Width < 2 || c.Height < 2 {
		return fmt.Errorf("config: surface %dx%d too small", c.Width, c.Height)
	}
	// Cells span [-w/2, w/2); an odd size would leave the last column or row unreachable.
	if c.Width%2 != 0 || c.Height%2 != 0 {
		return fmt.Errorf("config: surface %dx%d must have even width and height", c.Width, c.Height)
	}
	if c.Scale < 1 {
		return fmt.Errorf("config: scale %d must be at least 1", c.Scale)
	}
	if !(c.Camera.FoV > 0) {
		return fmt.Errorf("config: fov %v must be positive", c.Camera.FoV)
	}
	for i, s := range c.Cubes {
		if !(s.Size > 0) {
			return fmt.Errorf("config: cube %d size %v must be positive", i, s.Size)
		}
	}
	for i, s := range c.Planes {
		if !(s.Size > 0) {
			return fmt.Errorf("config: plane %d size %v must be positive", i, s.Size)
		}
	}
	if _, err := c.Style.Surface(); err != nil {
		return err
	}
	return nil
}

// Surface converts the style to a quarkgl surface style.
func (s Style) Surface() (quarkgl.SurfaceStyle, error) {
	fill, err := ParseColor(s.Fill)
	if err != nil {
		return quarkgl.SurfaceStyle{}, fmt.Errorf("config: fill: %w", err)
	}
	stroke, err := ParseColor(s.Stroke)
	if err != nil {
		return quarkgl.SurfaceStyle{}, fmt.Errorf("config: stroke: %w", err)
	}
	bg, err := ParseColor(s.Background)
	if err != nil {
		return quarkgl.SurfaceStyle{}, fmt.Errorf("config: background: %w", err)
	}
	return quarkgl.SurfaceStyle{Fill: fill, Stroke: stroke, Background: bg}, nil
}

// ParseColor parses "#rrggbb" or "#rrggbbaa".
func ParseColor(s string) (quarkgl.Color, error) {
	hex, ok := strings.CutPrefix(s, "#")
	if !ok || (len(hex) != 6 && len(hex) != 8) {
		return quarkgl.Color{}, fmt.Errorf("color %q: want #rrggbb or #rrggbbaa", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return quarkgl.Color{}, fmt.Errorf("color %q: %w", s, err)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xFF
	}
	return quarkgl.RGBA(uint8(v>>24), uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

// Vec converts a TOML triple to a vector.
func Vec(v [3]float64) quarkgl.Vec3 { return quarkgl.V3(v[0], v[1], v[2]) }

// Build creates the camera and meshes described by c.
func (c Config) Build() (*quarkgl.Camera, []*quarkgl.Mesh, error) {
	cam, err := quarkgl.NewCamera(Vec(c.Camera.Position), c.Camera.FoV, c.Width, c.Height)
	if err != nil {
		return nil, nil, err
	}
	meshes := make([]*quarkgl.Mesh, 0, len(c.Cubes)+len(c.Planes))
	for _, s := range c.Cubes {
		m, err := quarkgl.NewCube(Vec(s.Center), s.Size)
		if err != nil {
			return nil, nil, err
		}
		meshes = append(meshes, m)
	}
	for _, s := range c.Planes {
		m, err := quarkgl.NewPlane(Vec(s.Center), s.Size)
		if err != nil {
			return nil, nil, err
		}
		meshes = append(meshes, m)
	}
	return cam, meshes, nil
}
