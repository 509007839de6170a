package screen

import (
	"fmt"
	"image"
)

// Plane is a row-major grid of byte-sized cells with an explicit size.
// Every access is bounds checked against the plane's own dimensions, so a
// coordinate meant for a plane of a different resolution fails loudly.
type Plane struct {
	Width, Height int
	pix           []uint8
}

func NewPlane(width, height int) *Plane {
	return &Plane{
		Width:  width,
		Height: height,
		pix:    make([]uint8, width*height),
	}
}

func (p *Plane) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.Width, p.Height)
}

func (p *Plane) Contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < p.Width && y < p.Height
}

// Index returns the offset of (x, y) in the backing slice.
func (p *Plane) Index(x, y int) int {
	if !p.Contains(x, y) {
		panic(fmt.Sprintf("screen: (%d,%d) outside %dx%d plane", x, y, p.Width, p.Height))
	}
	return y*p.Width + x
}

func (p *Plane) At(x, y int) uint8 {
	return p.pix[p.Index(x, y)]
}

func (p *Plane) Set(x, y int, v uint8) {
	p.pix[p.Index(x, y)] = v
}

func (p *Plane) Or(x, y int, bits uint8) {
	p.pix[p.Index(x, y)] |= bits
}

func (p *Plane) AndNot(x, y int, bits uint8) {
	p.pix[p.Index(x, y)] &^= bits
}

func (p *Plane) Clear(v uint8) {
	for i := range p.pix {
		p.pix[i] = v
	}
}

// ClearRows sets every cell in rows [top, bottom) to v.
func (p *Plane) ClearRows(top, bottom int, v uint8) {
	top, bottom = clampInt(0, p.Height, top), clampInt(0, p.Height, bottom)
	row := p.pix[top*p.Width : bottom*p.Width]
	for i := range row {
		row[i] = v
	}
}

// Rect sets every cell of the w*h block anchored at (x, y).
func (p *Plane) Rect(x, y, w, h int, v uint8) {
	for py := y; py < y+h; py++ {
		offset := p.Index(x, py)
		row := p.pix[offset : offset+w]
		for i := range row {
			row[i] = v
		}
	}
}

// PlaneView is a read-only window onto a plane of a published canvas.
type PlaneView struct {
	p *Plane
}

func (v PlaneView) Width() int              { return v.p.Width }
func (v PlaneView) Height() int             { return v.p.Height }
func (v PlaneView) Bounds() image.Rectangle { return v.p.Bounds() }
func (v PlaneView) At(x, y int) uint8       { return v.p.At(x, y) }
func (v PlaneView) Contains(x, y int) bool  { return v.p.Contains(x, y) }

// Pix returns a copy of the plane's cells in row-major order.
func (v PlaneView) Pix() []uint8 {
	out := make([]uint8, len(v.p.pix))
	copy(out, v.p.pix)
	return out
}

func clampInt(min, max, i int) int {
	switch {
	case i < min:
		return min
	case i > max:
		return max
	default:
		return i
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func swapIf(a, b *int, cond bool) {
	if cond {
		*a, *b = *b, *a
	}
}
