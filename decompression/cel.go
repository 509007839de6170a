package decompression

import (
	"errors"
	"fmt"
)

var ErrShortCel = errors.New("cel data ends before the last pixel")

// RLECel decodes SCI0 cel pixel data. Each byte is a run: the high nibble is
// the repeat count and the low nibble the EGA colour.
type RLECel struct{}

func (RLECel) Decode(data []byte, width, height int) ([]uint8, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("cel: invalid size %dx%d", width, height)
	}
	if width*height > len(data)*0xF {
		return nil, fmt.Errorf("cel: %d bytes cannot cover %dx%d: %w", len(data), width, height, ErrShortCel)
	}

	pix := make([]uint8, width*height)
	i := 0
	for _, b := range data {
		if i == len(pix) {
			break
		}
		color := b & 0xF
		for n := int(b >> 4); n > 0 && i < len(pix); n-- {
			pix[i] = color
			i++
		}
	}

	if i != len(pix) {
		return pix, fmt.Errorf("cel: %dx%d decoded %d of %d pixels: %w", width, height, i, len(pix), ErrShortCel)
	}
	return pix, nil
}
