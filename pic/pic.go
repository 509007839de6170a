package pic

import (
	"fmt"

	"github.com/32bitkid/scipic/screen"
)

// CelDecoder decompresses the payload of an embedded bitmap into one EGA
// colour per pixel, row major.
type CelDecoder interface {
	Decode(data []byte, width, height int) ([]uint8, error)
}

type CelDecoderFunc func(data []byte, width, height int) ([]uint8, error)

func (fn CelDecoderFunc) Decode(data []byte, width, height int) ([]uint8, error) {
	return fn(data, width, height)
}

// DebugCallback is invoked after every command with the command byte and
// the interpreter state it left behind.
type DebugCallback func(op uint8, state State)

type Options struct {
	ScaleX, ScaleY  int
	TitleBar        int
	AmbientPriority uint8
	Dither          screen.DitherMode
	Fill            screen.FillMode

	// Palettes replaces the initial colour tables.
	Palettes *Palettes
	// Resolver overrides colour lookups for set-colour commands.
	Resolver   PaletteResolver
	CelDecoder CelDecoder

	// Mirror starts the program with the mirror flag set.
	Mirror bool
	// MaxOps stops interpretation after that many commands. Zero means no
	// limit.
	MaxOps int

	DebugFn DebugCallback
}

func mergeOptions(options []Options) Options {
	var merged Options
	for _, opts := range options {
		if opts.ScaleX != 0 {
			merged.ScaleX = opts.ScaleX
		}
		if opts.ScaleY != 0 {
			merged.ScaleY = opts.ScaleY
		}
		if opts.TitleBar != 0 {
			merged.TitleBar = opts.TitleBar
		}
		if opts.AmbientPriority != 0 {
			merged.AmbientPriority = opts.AmbientPriority
		}
		if opts.Dither != screen.DitherNone {
			merged.Dither = opts.Dither
		}
		if opts.Fill != screen.FillAuto {
			merged.Fill = opts.Fill
		}
		if opts.Palettes != nil {
			merged.Palettes = opts.Palettes
		}
		if opts.Resolver != nil {
			merged.Resolver = opts.Resolver
		}
		if opts.CelDecoder != nil {
			merged.CelDecoder = opts.CelDecoder
		}
		if opts.Mirror {
			merged.Mirror = true
		}
		if opts.MaxOps != 0 {
			merged.MaxOps = opts.MaxOps
		}
		if opts.DebugFn != nil {
			merged.DebugFn = opts.DebugFn
		}
	}
	return merged
}

// Pic is a rendered picture. The embedded canvas is published and only
// offers read-only views.
type Pic struct {
	*screen.Canvas
	Diagnostics []Diagnostic
}

// Complete reports whether the whole program was interpreted.
func (p *Pic) Complete() bool {
	for _, d := range p.Diagnostics {
		if d.Kind == MalformedStream {
			return false
		}
	}
	return true
}

// New renders program. Malformed programs still produce a picture, with the
// problems listed in Diagnostics; the error is only for unusable options.
func New(program []byte, options ...Options) (*Pic, error) {
	opts := mergeOptions(options)
	if opts.MaxOps < 0 {
		return nil, fmt.Errorf("pic: negative opcode budget %d", opts.MaxOps)
	}
	if opts.Dither > screen.DitherFull {
		return nil, fmt.Errorf("pic: unknown dither mode %v", opts.Dither)
	}

	canvas, err := screen.NewCanvas(screen.Options{
		ScaleX:          opts.ScaleX,
		ScaleY:          opts.ScaleY,
		TitleBar:        opts.TitleBar,
		AmbientPriority: opts.AmbientPriority,
		Fill:            opts.Fill,
		Logger:          Logger(),
	})
	if err != nil {
		return nil, fmt.Errorf("pic: %w", err)
	}

	in := newInterpreter(program, canvas, opts)
	canvas.Begin()
	in.run()
	canvas.Finish()
	canvas.Dither(opts.Dither)
	canvas.Publish()

	return &Pic{
		Canvas:      canvas,
		Diagnostics: in.diagnostics,
	}, nil
}
