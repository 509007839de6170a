package pic

import (
	"errors"
	"fmt"

	"github.com/32bitkid/scipic/screen"
)

// Extended picture op-codes
type pOpxCode = uint8

const (
	pOpxUpdatePalette       pOpxCode = 0x00
	pOpxSetPalette          pOpxCode = 0x01
	pOpxMonoPalette         pOpxCode = 0x02
	pOpxMonoSetVisual       pOpxCode = 0x03
	pOpxMonoDisableVisual   pOpxCode = 0x04
	pOpxMonoSetPriority     pOpxCode = 0x05
	pOpxMonoDisablePriority pOpxCode = 0x06
	pOpxEmbeddedBitmap      pOpxCode = 0x07
	pOpxExplicitBands       pOpxCode = 0x08
	pOpxEquidistantBands    pOpxCode = 0x09
	pOpxVectorMarker        pOpxCode = 0x0a
)

var opxHandlers = [...]handler{
	pOpxUpdatePalette:       (*interpreter).updatePalette,
	pOpxSetPalette:          (*interpreter).setPalette,
	pOpxMonoPalette:         skipBytes(41),
	pOpxMonoSetVisual:       skipBytes(1),
	pOpxMonoDisableVisual:   skipBytes(0),
	pOpxMonoSetPriority:     skipBytes(1),
	pOpxMonoDisablePriority: skipBytes(0),
	pOpxEmbeddedBitmap:      (*interpreter).embeddedBitmap,
	pOpxExplicitBands:       (*interpreter).explicitBands,
	pOpxEquidistantBands:    (*interpreter).equidistantBands,
	pOpxVectorMarker:        (*interpreter).skipOperands,
}

func (in *interpreter) opx() error {
	sub, err := in.r.readByte()
	if err != nil {
		return err
	}
	if int(sub) >= len(opxHandlers) {
		return fmt.Errorf("%w 0x%02x", ErrUnknownExtended, sub)
	}
	return opxHandlers[sub](in)
}

func skipBytes(n int) handler {
	return func(in *interpreter) error {
		return in.r.skip(n)
	}
}

func (in *interpreter) skipOperands() error {
	for in.r.more() {
		if err := in.r.skip(1); err != nil {
			return err
		}
	}
	return nil
}

func (in *interpreter) updatePalette() error {
	for in.r.more() {
		code, err := in.r.readByte()
		if err != nil {
			return err
		}
		color, err := in.r.readByte()
		if err != nil {
			return err
		}
		in.state.Palettes.set(code, color)
	}
	return nil
}

func (in *interpreter) setPalette() error {
	i, err := in.r.readByte()
	if err != nil {
		return err
	}
	colors, err := in.r.read(len(Palette{}))
	if err != nil {
		return err
	}
	copy(in.state.Palettes[int(i)%len(in.state.Palettes)][:], colors)
	return nil
}

func (in *interpreter) explicitBands() error {
	b, err := in.r.read(16)
	if err != nil {
		return err
	}
	var rows [16]uint8
	copy(rows[:], b)
	in.canvas.SetBands(screen.ExplicitBands(rows))
	return nil
}

func (in *interpreter) equidistantBands() error {
	first, err := in.r.readUint16()
	if err != nil {
		return err
	}
	last, err := in.r.readUint16()
	if err != nil {
		return err
	}
	in.canvas.SetBands(screen.EquidistantBands(int(int16(first)), int(int16(last))))
	return nil
}

const celHeaderSize = 7

var errShortBitmap = errors.New("pic: embedded bitmap shorter than its header")

// embeddedBitmap reads a position, a length and that many bytes of cel
// data. Once the length is known the payload is always consumed, so a bad
// cel never derails the rest of the program.
func (in *interpreter) embeddedBitmap() error {
	x, y, err := in.r.readAbsolute(in.state.Mirror)
	if err != nil {
		return err
	}
	length, err := in.r.readUint16()
	if err != nil {
		return err
	}
	payload, err := in.r.read(int(length))
	if err != nil {
		return err
	}

	if err := in.drawBitmap(x, y, payload); err != nil {
		in.report(BitmapDecodeFailed, err)
	}
	return nil
}

func (in *interpreter) drawBitmap(x, y int, payload []byte) error {
	if len(payload) < celHeaderSize {
		return errShortBitmap
	}
	if in.cels == nil {
		return errors.New("pic: no cel decoder configured")
	}

	width := int(payload[0]) | int(payload[1])<<8
	height := int(payload[2]) | int(payload[3])<<8
	key := payload[6]

	pix, err := in.cels.Decode(payload[celHeaderSize:], width, height)
	if err != nil {
		return fmt.Errorf("decoding %dx%d cel: %w", width, height, err)
	}

	left, top := in.point(x, y)
	if in.state.Mirror {
		left -= width - 1
	}
	return in.canvas.DrawCel(left, top, screen.Cel{
		Width:  width,
		Height: height,
		Pix:    pix,
		Key:    key,
	}, in.state.Mirror)
}
