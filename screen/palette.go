package screen

import (
	"fmt"
	"image/color"
	"strings"
)

var DefaultPalettes = struct {
	Depth   color.Palette
	EGA     color.Palette
	DB32EGA color.Palette
	EGACOM  color.Palette
}{
	Depth: color.Palette{
		color.Gray{Y: 0x00},
		color.Gray{Y: 0x11},
		color.Gray{Y: 0x22},
		color.Gray{Y: 0x33},
		color.Gray{Y: 0x44},
		color.Gray{Y: 0x55},
		color.Gray{Y: 0x66},
		color.Gray{Y: 0x77},

		color.Gray{Y: 0x88},
		color.Gray{Y: 0x99},
		color.Gray{Y: 0xAA},
		color.Gray{Y: 0xBB},
		color.Gray{Y: 0xCC},
		color.Gray{Y: 0xDD},
		color.Gray{Y: 0xEE},
		color.Gray{Y: 0xFF},
	},
	EGA: color.Palette{
		rgb24Color(0x000000),
		rgb24Color(0x0000AA),
		rgb24Color(0x00AA00),
		rgb24Color(0x00AAAA),
		rgb24Color(0xAA0000),
		rgb24Color(0xAA00AA),
		rgb24Color(0xAA5500),
		rgb24Color(0xAAAAAA),

		rgb24Color(0x555555),
		rgb24Color(0x5555FF),
		rgb24Color(0x55FF55),
		rgb24Color(0x55FFFF),
		rgb24Color(0xFF5555),
		rgb24Color(0xFF55FF),
		rgb24Color(0xFFFF55),
		rgb24Color(0xFFFFFF),
	},
	DB32EGA: color.Palette{
		rgb24Color(0x000000),
		rgb24Color(0x3f3f74),
		rgb24Color(0x4b692f),
		rgb24Color(0x306082),
		rgb24Color(0xac3232),
		rgb24Color(0x45283c),
		rgb24Color(0x8f563b),
		rgb24Color(0x847e87),

		rgb24Color(0x323c39),
		rgb24Color(0x639bff),
		rgb24Color(0x6abe30),
		rgb24Color(0x5fcde4),
		rgb24Color(0xd95763),
		rgb24Color(0xd77bba),
		rgb24Color(0xfbf236),
		rgb24Color(0xffffff),
	},
	EGACOM: color.Palette{
		0x0: rgb(24, 24, 24),
		0x1: rgb(44, 66, 103),
		0x2: rgb(83, 138, 106),
		0x3: rgb(87, 110, 84),
		0x4: rgb(123, 45, 47),
		0x5: rgb(157, 68, 106),
		0x6: rgb(108, 75, 55),
		0x7: rgb(148, 153, 158),

		0x8: rgb(82, 87, 92),
		0x9: rgb(56, 102, 139),
		0xa: rgb(99, 180, 101),
		0xb: rgb(130, 232, 232),
		0xc: rgb(208, 64, 67),
		0xd: rgb(235, 114, 114),
		0xe: rgb(230, 196, 57),
		0xf: rgb(238, 247, 237),
	},
}

// PaletteByName looks up one of DefaultPalettes, case-insensitively.
func PaletteByName(name string) (color.Palette, error) {
	switch strings.ToLower(name) {
	case "", "ega":
		return DefaultPalettes.EGA, nil
	case "db32", "db32ega":
		return DefaultPalettes.DB32EGA, nil
	case "egacom":
		return DefaultPalettes.EGACOM, nil
	case "depth":
		return DefaultPalettes.Depth, nil
	}
	return nil, fmt.Errorf("screen: unknown palette %q", name)
}

// InterpolatedPalette builds the 256 entry palette that DitherFull output
// indexes into. Entry i blends base[i&0xF] with base[(i>>4)^(i&0xF)], so an
// entry whose high nibble is zero is just the base colour.
func InterpolatedPalette(base color.Palette, ratio float64) color.Palette {
	if len(base) < 16 {
		panic(fmt.Sprintf("screen: interpolated palette needs 16 base colors, got %d", len(base)))
	}
	pal := make(color.Palette, 256)
	for i := range pal {
		c1 := base[i&0xF]
		c2 := base[(i>>4)^(i&0xF)]
		if i>>4 == 0 {
			pal[i] = c1
			continue
		}
		pal[i] = MixColors(c1, c2, ratio)
	}
	return pal
}
