package image

import (
	"image"
	"image/color"
	"testing"

	"github.com/32bitkid/scipic/screen"
)

func publishedCanvas(t *testing.T, opts screen.Options) *screen.Canvas {
	t.Helper()
	c, err := screen.NewCanvas(opts)
	if err != nil {
		t.Fatal(err)
	}
	c.Begin()
	c.Line(0, 20, 319, 20, screen.Pen{Planes: screen.PlaneVisual | screen.PlanePriority, Visual: 0x44, Priority: 7})
	c.Finish()
	c.Dither(screen.DitherReduced)
	c.Publish()
	return c
}

func TestPaletted(t *testing.T) {
	c := publishedCanvas(t, screen.Options{})
	img := Paletted(c.Visual(), screen.DefaultPalettes.EGA)

	if img.Bounds() != image.Rect(0, 0, 320, 200) {
		t.Fatalf("unexpected bounds %v", img.Bounds())
	}
	if len(img.Palette) != 256 {
		t.Fatalf("expected padded palette, got %d entries", len(img.Palette))
	}
	if img.ColorIndexAt(5, 20) != 4 {
		t.Errorf("expected index 4, got %d", img.ColorIndexAt(5, 20))
	}
	if img.At(5, 20) != screen.DefaultPalettes.EGA[4] {
		t.Errorf("unexpected colour %v", img.At(5, 20))
	}
	if img.At(0, 0) != screen.DefaultPalettes.EGA[0] {
		t.Errorf("title bar should be black, got %v", img.At(0, 0))
	}

	prio := Paletted(c.Priority(), screen.DefaultPalettes.Depth)
	if prio.ColorIndexAt(100, 20) != 7 {
		t.Errorf("expected priority 7, got %d", prio.ColorIndexAt(100, 20))
	}
}

func TestPalettedIsACopy(t *testing.T) {
	c := publishedCanvas(t, screen.Options{})
	img := Paletted(c.Visual(), screen.DefaultPalettes.EGA)
	img.Pix[0] = 9
	if c.Visual().At(0, 0) == 9 {
		t.Fatal("image aliases the plane")
	}
}

func TestPairPalette(t *testing.T) {
	base := screen.DefaultPalettes.EGA
	pal := PairPalette(base, 0.5)
	for i := 0; i < 16; i++ {
		if pal[i<<4|i] != base[i] {
			t.Errorf("entry 0x%02x should be base colour %d", i<<4|i, i)
		}
	}
	r, g, b, _ := pal[0x0f].RGBA()
	if r == 0 || r == 0xffff || r != g || g != b {
		t.Errorf("black/white pair should mix to gray, got %d %d %d", r, g, b)
	}
}

func TestPairPaletteSharesDitherBlend(t *testing.T) {
	base := screen.DefaultPalettes.EGA
	pairs := PairPalette(base, 0.5)
	dithered := screen.InterpolatedPalette(base, 0.5)
	for hi := 0; hi < 16; hi++ {
		for lo := 0; lo < 16; lo++ {
			if hi == lo {
				continue
			}
			if pairs[hi<<4|lo] != dithered[(hi^lo)<<4|hi] {
				t.Fatalf("pair %x%x blends differently from the dither palette", hi, lo)
			}
		}
	}
}

func TestParseFilter(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want Filter
	}{
		{"", FilterNearest},
		{"nearest", FilterNearest},
		{"BiLinear", FilterBiLinear},
		{"approx-bilinear", FilterApproxBiLinear},
		{"catmullrom", FilterCatmullRom},
	} {
		f, err := ParseFilter(tc.in)
		if err != nil || f != tc.want {
			t.Errorf("ParseFilter(%q) = %v, %v", tc.in, f, err)
		}
		if tc.in != "" && f.String() == "" {
			t.Errorf("%v has no name", f)
		}
	}
	if _, err := ParseFilter("lanczos"); err == nil {
		t.Error("expected error")
	}
}

func checkerboard() *image.RGBA {
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	src.Set(0, 0, color.White)
	src.Set(1, 0, color.Black)
	src.Set(0, 1, color.Black)
	src.Set(1, 1, color.White)
	return src
}

func TestUpscaleNearest(t *testing.T) {
	dst, err := Upscale(checkerboard(), 3, 2, FilterNearest)
	if err != nil {
		t.Fatal(err)
	}
	if dst.Bounds() != image.Rect(0, 0, 6, 4) {
		t.Fatalf("unexpected bounds %v", dst.Bounds())
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 6; x++ {
			want := color.RGBAModel.Convert(color.Black)
			if (x/3+y/2)%2 == 0 {
				want = color.RGBAModel.Convert(color.White)
			}
			if got := dst.At(x, y); got != want {
				t.Fatalf("(%d,%d): expected %v, got %v", x, y, want, got)
			}
		}
	}
}

func TestUpscaleSmoothFilters(t *testing.T) {
	for _, f := range []Filter{FilterApproxBiLinear, FilterBiLinear, FilterCatmullRom} {
		dst, err := Upscale(checkerboard(), 4, 4, f)
		if err != nil {
			t.Fatal(err)
		}
		if dst.Bounds().Dx() != 8 || dst.Bounds().Dy() != 8 {
			t.Errorf("%v: unexpected bounds %v", f, dst.Bounds())
		}
	}
	if _, err := Upscale(checkerboard(), 0, 1, FilterNearest); err == nil {
		t.Error("expected invalid factor error")
	}
	if _, err := Upscale(checkerboard(), 1, 1, Filter(99)); err == nil {
		t.Error("expected unknown filter error")
	}
}

func TestRGBA(t *testing.T) {
	c := publishedCanvas(t, screen.Options{ScaleX: 2, ScaleY: 2})
	img := RGBA(Paletted(c.Visual(), screen.DefaultPalettes.EGA))
	if img.Bounds() != image.Rect(0, 0, 640, 400) {
		t.Fatalf("unexpected bounds %v", img.Bounds())
	}
	want := color.RGBAModel.Convert(screen.DefaultPalettes.EGA[4])
	if got := img.At(1, 41); got != want {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestCRT(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 3, 2))
	for i := 3; i < len(src.Pix); i += 4 {
		src.Pix[i] = 0xff
	}
	dst := CRT(src)
	if dst.Bounds() != image.Rect(0, 0, 18, 12) {
		t.Fatalf("unexpected bounds %v", dst.Bounds())
	}
	for y := 0; y < 12; y++ {
		for x := 0; x < 18; x++ {
			r, g, b, a := dst.At(x, y).RGBA()
			if r != 0 || g != 0 || b != 0 || a != 0xffff {
				t.Fatalf("black source should stay black at (%d,%d)", x, y)
			}
		}
	}

	bright := CRT(&image.RGBA{Pix: []uint8{0xff, 0xff, 0xff, 0xff}, Stride: 4, Rect: image.Rect(0, 0, 1, 1)})
	r, g, b, _ := bright.At(2, 2).RGBA()
	if g <= r || g <= b {
		t.Errorf("centre sub-pixel on an even row should lean green, got %d %d %d", r, g, b)
	}
}
