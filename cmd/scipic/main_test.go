package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

var fillProgram = []byte{
	0xf0, 0x06,
	0xf8, 0x00, 0xa0, 0x64,
	0xff,
}

func writeFile(t *testing.T, dir, name string, b []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, b, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func decode(t *testing.T, path string) (int, int) {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	return img.Bounds().Dx(), img.Bounds().Dy()
}

func TestRenderFile(t *testing.T) {
	dir := t.TempDir()
	program := writeFile(t, dir, "pic.001", fillProgram)
	out := filepath.Join(dir, "out.png")

	var stderr bytes.Buffer
	if err := run([]string{"-file", program, "-out", out}, &stderr); err != nil {
		t.Fatalf("%v\n%s", err, stderr.String())
	}
	if w, h := decode(t, out); w != 320 || h != 200 {
		t.Fatalf("unexpected size %dx%d", w, h)
	}
}

func TestRenderWithConfig(t *testing.T) {
	dir := t.TempDir()
	program := writeFile(t, dir, "pic.001", fillProgram)
	cfg := writeFile(t, dir, "scipic.yaml", []byte(`
scale: {x: 2, y: 2}
dither: full
output:
  upscale: 2
  filter: bilinear
`))
	out := filepath.Join(dir, "out.png")

	var stderr bytes.Buffer
	if err := run([]string{"-file", program, "-config", cfg, "-plane", "priority", "-out", out}, &stderr); err != nil {
		t.Fatalf("%v\n%s", err, stderr.String())
	}
	if w, h := decode(t, out); w != 1280 || h != 800 {
		t.Fatalf("unexpected size %dx%d", w, h)
	}
}

func TestMalformedProgramWarns(t *testing.T) {
	dir := t.TempDir()
	program := writeFile(t, dir, "pic.001", []byte{0xf0, 0x06, 0x12})
	out := filepath.Join(dir, "out.png")

	var stderr bytes.Buffer
	if err := run([]string{"-file", program, "-out", out}, &stderr); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stderr.String(), "warning:") {
		t.Errorf("expected a warning, got %q", stderr.String())
	}
	if !strings.Contains(stderr.String(), "picture diagnostic") {
		t.Errorf("expected a log record, got %q", stderr.String())
	}
}

func TestUsageErrors(t *testing.T) {
	var stderr bytes.Buffer
	if err := run(nil, &stderr); err == nil {
		t.Error("expected missing input error")
	}
	if err := run([]string{"-file", "x", "-plane", "aux"}, &stderr); err == nil {
		t.Error("expected bad plane error")
	}
	if err := run([]string{"-bogus"}, &stderr); err == nil {
		t.Error("expected flag error")
	}
}
