package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/32bitkid/scipic/screen"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scipic.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	c := Default()
	if err := c.Validate(); err != nil {
		t.Fatal(err)
	}
	if c.Scale.X != 1 || c.Scale.Y != 1 || *c.TitleBar != screen.DefaultTitleBar {
		t.Errorf("unexpected defaults %+v", c)
	}
	if c.Dither != "reduced" || c.Output.Plane != PlaneVisual || c.Output.Upscale != 1 {
		t.Errorf("unexpected defaults %+v", c)
	}
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
scale:
  x: 2
  y: 3
titleBar: 12
ambientPriority: 4
dither: full
mixRatio: 0.25
maxOps: 5000
mirror: true
fill: scaled
palette: db32
output:
  filter: catmullrom
  upscale: 2
  crt: true
  plane: priority
`)
	c, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	opts, err := c.PicOptions()
	if err != nil {
		t.Fatal(err)
	}
	if opts.ScaleX != 2 || opts.ScaleY != 3 || opts.TitleBar != 12 || opts.AmbientPriority != 4 {
		t.Errorf("unexpected options %+v", opts)
	}
	if opts.Dither != screen.DitherFull || opts.Fill != screen.FillScaled || !opts.Mirror || opts.MaxOps != 5000 {
		t.Errorf("unexpected options %+v", opts)
	}
	if c.MixRatio != 0.25 || !c.Output.CRT || c.Output.Upscale != 2 || c.Output.Filter != "catmullrom" {
		t.Errorf("unexpected config %+v", c)
	}
}

func TestLoadEmptyFile(t *testing.T) {
	c, err := Load(writeConfig(t, ""))
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(c, Default()) {
		t.Errorf("expected defaults, got %+v", c)
	}
}

func TestLoadWithoutTitleBar(t *testing.T) {
	c, err := Load(writeConfig(t, "titleBar: 0\n"))
	if err != nil {
		t.Fatal(err)
	}
	opts, err := c.PicOptions()
	if err != nil {
		t.Fatal(err)
	}
	if opts.TitleBar != screen.NoTitleBar {
		t.Fatalf("titleBar 0 should select no title bar, got %d", opts.TitleBar)
	}
	canvas, err := screen.NewCanvas(screen.Options{TitleBar: opts.TitleBar})
	if err != nil {
		t.Fatal(err)
	}
	if canvas.TitleBar != 0 {
		t.Fatalf("expected no title bar, got %d rows", canvas.TitleBar)
	}
}

func TestLoadErrors(t *testing.T) {
	for name, body := range map[string]string{
		"unknown key": "scael: {x: 2}\n",
		"bad yaml":    "scale: [\n",
		"bad dither":  "dither: ordered\n",
		"bad scale":   "scale: {x: 9}\n",
		"bad ratio":   "mixRatio: 1.5\n",
		"bad plane":   "output: {plane: aux}\n",
		"bad filter":  "output: {filter: lanczos}\n",
		"bad palette": "palette: cga\n",
		"bad fill":    "fill: recursive\n",
		"bad maxOps":  "maxOps: -1\n",
		"bad title":   "titleBar: 200\n",
	} {
		if _, err := Load(writeConfig(t, body)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected missing file error")
	}
}

func TestValidateReportsEveryProblem(t *testing.T) {
	c := Default()
	c.Dither = "ordered"
	c.Output.Plane = "aux"
	err := c.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	if msg := err.Error(); !strings.Contains(msg, "ordered") || !strings.Contains(msg, "aux") {
		t.Errorf("expected both problems in %q", msg)
	}
}

func TestOutputPalette(t *testing.T) {
	c := Default()
	for dither, size := range map[string]int{"none": 256, "reduced": 16, "full": 256} {
		c.Dither = dither
		pal, err := c.OutputPalette()
		if err != nil {
			t.Fatal(err)
		}
		if len(pal) != size {
			t.Errorf("%s: expected %d colours, got %d", dither, size, len(pal))
		}
	}

	c.Output.Plane = PlaneControl
	pal, err := c.OutputPalette()
	if err != nil {
		t.Fatal(err)
	}
	if pal[0] != screen.DefaultPalettes.Depth[0] {
		t.Error("control plane should use the depth palette")
	}
}
