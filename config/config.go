// Package config loads render settings from YAML.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/32bitkid/scipic/image"
	"github.com/32bitkid/scipic/pic"
	"github.com/32bitkid/scipic/screen"
)

type Config struct {
	Scale           ScaleConfig  `yaml:"scale"`
	TitleBar        *int         `yaml:"titleBar"`
	AmbientPriority uint8        `yaml:"ambientPriority"`
	Dither          string       `yaml:"dither"`
	MixRatio        float64      `yaml:"mixRatio"`
	MaxOps          int          `yaml:"maxOps"`
	Mirror          bool         `yaml:"mirror"`
	Fill            string       `yaml:"fill"`
	Palette         string       `yaml:"palette"`
	Output          OutputConfig `yaml:"output"`
}

type ScaleConfig struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

type OutputConfig struct {
	Filter  string `yaml:"filter"`
	Upscale int    `yaml:"upscale"`
	CRT     bool   `yaml:"crt"`
	// Plane is one of visual, priority or control.
	Plane string `yaml:"plane"`
}

const (
	PlaneVisual   = "visual"
	PlanePriority = "priority"
	PlaneControl  = "control"
)

// Default is the configuration used without a file.
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

func (c *Config) applyDefaults() {
	if c.Scale.X == 0 {
		c.Scale.X = 1
	}
	if c.Scale.Y == 0 {
		c.Scale.Y = 1
	}
	if c.TitleBar == nil {
		titleBar := screen.DefaultTitleBar
		c.TitleBar = &titleBar
	}
	if c.Dither == "" {
		c.Dither = screen.DitherReduced.String()
	}
	if c.MixRatio == 0 {
		c.MixRatio = 0.5
	}
	if c.Fill == "" {
		c.Fill = screen.FillAuto.String()
	}
	if c.Palette == "" {
		c.Palette = "ega"
	}
	if c.Output.Filter == "" {
		c.Output.Filter = image.FilterNearest.String()
	}
	if c.Output.Upscale == 0 {
		c.Output.Upscale = 1
	}
	if c.Output.Plane == "" {
		c.Output.Plane = PlaneVisual
	}
}

// Load reads a YAML file. Missing keys take their defaults and unknown keys
// are an error.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	var c Config
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return &c, nil
}

func (c *Config) Validate() error {
	var errs []error
	if c.Scale.X < 1 || c.Scale.X > 8 || c.Scale.Y < 1 || c.Scale.Y > 8 {
		errs = append(errs, fmt.Errorf("scale %dx%d outside 1..8", c.Scale.X, c.Scale.Y))
	}
	if c.TitleBar != nil && (*c.TitleBar < 0 || *c.TitleBar >= screen.BaseHeight) {
		errs = append(errs, fmt.Errorf("titleBar %d outside 0..%d", *c.TitleBar, screen.BaseHeight-1))
	}
	if c.AmbientPriority > 0xF {
		errs = append(errs, fmt.Errorf("ambientPriority %d is not a priority", c.AmbientPriority))
	}
	if _, err := screen.ParseDitherMode(c.Dither); err != nil {
		errs = append(errs, err)
	}
	if c.MixRatio < 0 || c.MixRatio > 1 {
		errs = append(errs, fmt.Errorf("mixRatio %v outside 0..1", c.MixRatio))
	}
	if c.MaxOps < 0 {
		errs = append(errs, fmt.Errorf("negative maxOps %d", c.MaxOps))
	}
	if _, err := screen.ParseFillMode(c.Fill); err != nil {
		errs = append(errs, err)
	}
	if _, err := screen.PaletteByName(c.Palette); err != nil {
		errs = append(errs, err)
	}
	if _, err := image.ParseFilter(c.Output.Filter); err != nil {
		errs = append(errs, err)
	}
	if c.Output.Upscale < 1 {
		errs = append(errs, fmt.Errorf("output.upscale %d below 1", c.Output.Upscale))
	}
	switch c.Output.Plane {
	case PlaneVisual, PlanePriority, PlaneControl:
	default:
		errs = append(errs, fmt.Errorf("unknown output.plane %q", c.Output.Plane))
	}
	return errors.Join(errs...)
}

// PicOptions converts the render settings.
func (c *Config) PicOptions() (pic.Options, error) {
	dither, err := screen.ParseDitherMode(c.Dither)
	if err != nil {
		return pic.Options{}, err
	}
	fill, err := screen.ParseFillMode(c.Fill)
	if err != nil {
		return pic.Options{}, err
	}
	titleBar := 0
	if c.TitleBar != nil {
		titleBar = *c.TitleBar
		if titleBar == 0 {
			titleBar = screen.NoTitleBar
		}
	}
	return pic.Options{
		ScaleX:          c.Scale.X,
		ScaleY:          c.Scale.Y,
		TitleBar:        titleBar,
		AmbientPriority: c.AmbientPriority,
		Dither:          dither,
		Fill:            fill,
		Mirror:          c.Mirror,
		MaxOps:          c.MaxOps,
	}, nil
}

// OutputPalette picks the colours for the selected plane. Visual output
// depends on the dither mode: pairs are mixed, reduced output uses the base
// palette and full output indexes an interpolated one.
func (c *Config) OutputPalette() (color.Palette, error) {
	if c.Output.Plane != PlaneVisual {
		return screen.DefaultPalettes.Depth, nil
	}
	base, err := screen.PaletteByName(c.Palette)
	if err != nil {
		return nil, err
	}
	dither, err := screen.ParseDitherMode(c.Dither)
	if err != nil {
		return nil, err
	}
	switch dither {
	case screen.DitherNone:
		return image.PairPalette(base, c.MixRatio), nil
	case screen.DitherFull:
		return screen.InterpolatedPalette(base, c.MixRatio), nil
	}
	return base, nil
}
