package screen

import "fmt"

// Cel is a decoded embedded bitmap: one EGA colour per pixel, row major.
type Cel struct {
	Width, Height int
	Pix           []uint8
	Key           uint8
}

// DrawCel copies cel into the visual plane with its top-left corner on base
// cell (left, top), flipping it horizontally when flip is set. Key-coloured
// pixels and pixels outside the picture are skipped. Cels are composited
// directly, so the auxiliary plane is left alone.
func (c *Canvas) DrawCel(left, top int, cel Cel, flip bool) error {
	c.mustDraw()
	if cel.Width < 0 || cel.Height < 0 || len(cel.Pix) < cel.Width*cel.Height {
		return fmt.Errorf("screen: cel %dx%d has only %d pixels", cel.Width, cel.Height, len(cel.Pix))
	}

	for y := 0; y < cel.Height; y++ {
		row := cel.Pix[y*cel.Width : (y+1)*cel.Width]
		for x, color := range row {
			if color == cel.Key {
				continue
			}
			px, py := left+x, top+y
			if flip {
				px = left + cel.Width - 1 - x
			}
			if !c.InBase(px, py) {
				continue
			}
			color &= 0xF
			c.visual.Rect(px*c.ScaleX, py*c.ScaleY, c.ScaleX, c.ScaleY, color<<4|color)
		}
	}
	return nil
}
