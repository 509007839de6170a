package image

import (
	"image"
	"image/color"

	clr "github.com/lucasb-eyer/go-colorful"

	"github.com/32bitkid/scipic/screen"
)

const crtCell = 6

func darken(c color.Color, p float64) color.Color {
	cc, _ := clr.MakeColor(c)
	return clr.Color{R: cc.R * (1 - p), G: cc.G * (1 - p), B: cc.B * (1 - p)}.Clamped()
}

var (
	red   = clr.Color{R: 1, G: 0.6, B: 0.6}
	green = clr.Color{R: 0.6, G: 1, B: 0.6}
	blue  = clr.Color{R: 0.6, G: 0.6, B: 1}
)

func rgbMul(c color.Color, mask clr.Color) color.Color {
	cc, _ := clr.MakeColor(c)
	return clr.Color{R: cc.R * mask.R, G: cc.G * mask.G, B: cc.B * mask.B}.Clamped()
}

// bleed mixes each sub-column with its horizontal neighbour.
var bleed = [crtCell]struct {
	left bool
	t    float64
}{
	{true, 3.0 / 6.0},
	{true, 4.0 / 6.0},
	{true, 5.0 / 6.0},
	{false, 0},
	{false, 1.0 / 6.0},
	{false, 2.0 / 6.0},
}

var scanline = [crtCell]float64{0.7, 0.2, 0, 0, 0.1, 0.4}

// shadowMask holds the phosphor triad for even and odd sub-rows.
var shadowMask = [2][crtCell]clr.Color{
	{red, red, green, green, blue, blue},
	{green, blue, blue, red, red, green},
}

// CRT renders every source pixel as a 6x6 cell with horizontal bleed,
// scanlines and a shadow mask.
func CRT(src image.Image) *image.RGBA {
	r := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, r.Dx()*crtCell, r.Dy()*crtCell))
	for sy, dy := r.Min.Y, 0; sy < r.Max.Y; sy, dy = sy+1, dy+crtCell {
		for sx, dx := r.Min.X, 0; sx < r.Max.X; sx, dx = sx+1, dx+crtCell {
			lc := src.At(clamp(sx-1, r.Min.X, r.Max.X-1), sy)
			c := src.At(sx, sy)
			rc := src.At(clamp(sx+1, r.Min.X, r.Max.X-1), sy)
			for iy := 0; iy < crtCell; iy++ {
				for ix := 0; ix < crtCell; ix++ {
					co := c
					switch b := bleed[ix]; {
					case b.left:
						co = screen.MixColors(lc, c, b.t)
					case b.t > 0:
						co = screen.MixColors(c, rc, b.t)
					}
					if p := scanline[iy]; p > 0 {
						co = darken(co, p)
					}
					co = rgbMul(co, shadowMask[iy%2][ix])
					dst.Set(dx+ix, dy+iy, co)
				}
			}
		}
	}
	return dst
}

func clamp(i, min, max int) int {
	if i < min {
		return min
	}
	if i > max {
		return max
	}
	return i
}
