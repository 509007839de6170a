// Package image turns published picture planes into displayable images.
package image

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/32bitkid/scipic/screen"
)

// Paletted wraps a copy of a plane in a paletted image. Palettes shorter
// than 256 entries repeat, so any plane value has a colour.
func Paletted(view screen.PlaneView, palette color.Palette) *image.Paletted {
	pal := palette
	if n := len(palette); n > 0 && n < 256 {
		pal = make(color.Palette, 256)
		for i := range pal {
			pal[i] = palette[i%n]
		}
	}
	return &image.Paletted{
		Pix:     view.Pix(),
		Stride:  view.Width(),
		Rect:    view.Bounds(),
		Palette: pal,
	}
}

// PairPalette colours undithered visual bytes, where each byte holds two
// EGA colours, by mixing both halves.
func PairPalette(base color.Palette, ratio float64) color.Palette {
	pal := make(color.Palette, 256)
	for i := range pal {
		hi, lo := base[(i>>4)%len(base)], base[(i&0xF)%len(base)]
		if i>>4 == i&0xF {
			pal[i] = hi
			continue
		}
		pal[i] = screen.MixColors(hi, lo, ratio)
	}
	return pal
}

// RGBA converts any image to a fresh RGBA image anchored at the origin.
func RGBA(src image.Image) *image.RGBA {
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst
}
