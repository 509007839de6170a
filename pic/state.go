package pic

import (
	"github.com/32bitkid/scipic/screen"
)

// Palette is one legacy colour table: 40 slots, each a pair of 4-bit EGA
// colours packed into a byte.
type Palette [40]uint8

var DefaultPalette = Palette{
	0x00, 0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77,
	0x88, 0x99, 0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0x88,
	0x88, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x88,
	0x88, 0xf9, 0xfa, 0xfb, 0xfc, 0xfd, 0xfe, 0xff,
	0x08, 0x91, 0x2a, 0x3b, 0x4c, 0x5d, 0x6e, 0x88,
}

type Palettes [4]Palette

func DefaultPalettes() Palettes {
	return Palettes{DefaultPalette, DefaultPalette, DefaultPalette, DefaultPalette}
}

// PaletteResolver turns a (table, slot) pair from a set-colour command into
// a colour pair.
type PaletteResolver interface {
	ResolvePaletteSlot(table, slot int) uint8
}

// ResolvePaletteSlot wraps both the table and the slot, so any operand byte
// resolves to some colour.
func (p *Palettes) ResolvePaletteSlot(table, slot int) uint8 {
	return p[table%len(p)][slot%len(p[0])]
}

func (p *Palettes) set(code, color uint8) {
	table, slot := int(code)/40, int(code)%40
	p[table%len(p)][slot] = color
}

type PatternCode uint8

func (code PatternCode) Size() int {
	return int(code & 0x7)
}

func (code PatternCode) IsRect() bool {
	return code&0x10 != 0
}

func (code PatternCode) IsTextured() bool {
	return code&0x20 != 0
}

// State is everything a picture program can change between commands. One
// value is owned by each render.
type State struct {
	Palettes Palettes
	Planes   screen.PlaneMask

	Color    uint8
	Priority uint8
	Control  uint8

	Pattern PatternCode
	Texture uint8

	Mirror bool
}

func newState(opts Options) State {
	s := State{
		Palettes: DefaultPalettes(),
		Planes:   screen.PlaneVisual | screen.PlanePriority,
		Mirror:   opts.Mirror,
	}
	if opts.Palettes != nil {
		s.Palettes = *opts.Palettes
	}
	return s
}

func (s *State) pen() screen.Pen {
	return screen.Pen{
		Planes:   s.Planes,
		Visual:   s.Color,
		Priority: s.Priority,
		Control:  s.Control,
	}
}

func (s *State) brush() screen.Brush {
	return screen.Brush{
		Size:     s.Pattern.Size(),
		Rect:     s.Pattern.IsRect(),
		Textured: s.Pattern.IsTextured(),
		Texture:  s.Texture,
	}
}
