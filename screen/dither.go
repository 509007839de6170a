package screen

import (
	"fmt"
	"strings"
)

type DitherMode uint8

const (
	// DitherNone leaves the stored colour pairs untouched.
	DitherNone DitherMode = iota
	// DitherReduced picks one colour of each pair, giving 16 colour output.
	DitherReduced
	// DitherFull produces indexes into an InterpolatedPalette.
	DitherFull
)

func (m DitherMode) String() string {
	switch m {
	case DitherNone:
		return "none"
	case DitherReduced:
		return "reduced"
	case DitherFull:
		return "full"
	}
	return fmt.Sprintf("DitherMode(%d)", uint8(m))
}

func ParseDitherMode(s string) (DitherMode, error) {
	switch strings.ToLower(s) {
	case "", "none":
		return DitherNone, nil
	case "reduced":
		return DitherReduced, nil
	case "full":
		return DitherFull, nil
	}
	return DitherNone, fmt.Errorf("screen: unknown dither mode %q", s)
}

func visibleNibble(v uint8, phase int) uint8 {
	if phase == 0 {
		return v >> 4
	}
	return v & 0xF
}

// Dither runs the post pass over the whole visual plane. The phase of an
// output pixel alternates once per base pixel, so every pixel of a scaled
// block is transformed the same way.
func (c *Canvas) Dither(mode DitherMode) {
	c.advance(Dithered)

	var transform func(b uint8, phase int) uint8
	switch mode {
	case DitherReduced:
		transform = func(b uint8, phase int) uint8 {
			return visibleNibble(b, phase)
		}
	case DitherFull:
		transform = func(b uint8, phase int) uint8 {
			if phase == 1 {
				b = b<<4 | b>>4
			}
			return b ^ b<<4
		}
	default:
		return
	}

	v := c.visual
	for oy := 0; oy < v.Height; oy++ {
		row := v.pix[oy*v.Width : (oy+1)*v.Width]
		y := oy / c.ScaleY
		for ox := range row {
			row[ox] = transform(row[ox], ((ox/c.ScaleX)^y)&1)
		}
	}
}
