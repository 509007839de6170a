package screen

import (
	"image"
)

// fillOutput is the second phase of a scaled fill. The base phase has
// marked every span with AuxHard; here each span's midpoint is projected
// into output space and used to fill the visual and priority planes there.
func (c *Canvas) fillOutput(spans []fillSpan, t *fillTarget, pen Pen) {
	if !pen.Planes.Has(PlaneVisual) && !pen.Planes.Has(PlanePriority) {
		return
	}
	if len(spans) == 0 {
		return
	}
	if c.marks == nil {
		c.marks = NewPlane(c.visual.Width, c.visual.Height)
	}

	sx, sy := c.ScaleX, c.ScaleY
	bounds := spanBounds(spans, sx, sy)

	ok := func(ox, oy int) bool {
		if !(image.Point{ox, oy}).In(bounds) {
			return false
		}
		x, y := ox/sx, oy/sy
		if c.aux.At(x, y)&AuxHard == 0 || c.marks.At(ox, oy) != 0 {
			return false
		}
		if pen.Planes.Has(PlaneVisual) && !t.matchVisual(c.visual.At(ox, oy)) {
			return false
		}
		if pen.Planes.Has(PlanePriority) && c.priority.At(ox, oy)&0xF != t.priority {
			return false
		}
		return true
	}

	paint := func(oy, oxl, oxr int) {
		for ox := oxl; ox <= oxr; ox++ {
			if pen.Planes.Has(PlaneVisual) {
				c.visual.Set(ox, oy, pen.Visual)
			}
			if pen.Planes.Has(PlanePriority) {
				c.priority.Set(ox, oy, pen.Priority)
			}
			c.marks.Set(ox, oy, 1)
		}
	}

	maxX, maxY := bounds.Max.X-1, bounds.Max.Y-1
	for _, s := range spans {
		ox, oy := c.center((s.xl+s.xr)/2, s.y)
		if c.marks.At(ox, oy) != 0 {
			continue
		}
		if !ok(ox, oy) {
			var found bool
			if ox, oy, found = spiralSearch(ox, oy, bounds, ok); !found {
				c.log.Debug("fill seed not relocated", "x", ox, "y", oy)
				continue
			}
		}
		c.scan(ox, oy, bounds.Min.X, bounds.Min.Y, maxX, maxY, ok, paint)
	}

	for _, s := range spans {
		c.marks.Rect(s.xl*sx, s.y*sy, (s.xr-s.xl+1)*sx, sy, 0)
	}
}

// spanBounds is the output-space rectangle covered by spans.
func spanBounds(spans []fillSpan, sx, sy int) image.Rectangle {
	r := image.Rect(spans[0].xl*sx, spans[0].y*sy, (spans[0].xr+1)*sx, (spans[0].y+1)*sy)
	for _, s := range spans[1:] {
		r = r.Union(image.Rect(s.xl*sx, s.y*sy, (s.xr+1)*sx, (s.y+1)*sy))
	}
	return r
}

// spiralSearch looks for the nearest point around (x, y) accepted by ok.
// Rings of growing radius are walked clockwise starting at their top-left
// corner; points outside bounds are never tested. The first accepted point
// is returned. ok must not have side effects.
func spiralSearch(x, y int, bounds image.Rectangle, ok func(x, y int) bool) (int, int, bool) {
	maxR := maxInt(
		maxInt(x-bounds.Min.X, bounds.Max.X-1-x),
		maxInt(y-bounds.Min.Y, bounds.Max.Y-1-y),
	)

	try := func(px, py int) bool {
		return (image.Point{px, py}).In(bounds) && ok(px, py)
	}

	for r := 1; r <= maxR; r++ {
		left, top, right, bottom := x-r, y-r, x+r, y+r
		for px := left; px < right; px++ {
			if try(px, top) {
				return px, top, true
			}
		}
		for py := top; py < bottom; py++ {
			if try(right, py) {
				return right, py, true
			}
		}
		for px := right; px > left; px-- {
			if try(px, bottom) {
				return px, bottom, true
			}
		}
		for py := bottom; py > top; py-- {
			if try(left, py) {
				return left, py, true
			}
		}
	}
	return x, y, false
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
