package screen

type fillSeed struct {
	x, y   int
	dy     int
	pl, pr int // segment on row y-dy this seed was found from; pl > pr if none
}

type fillSpan struct {
	y, xl, xr int
}

// fillTarget is the starting state a fill compares every candidate against.
type fillTarget struct {
	planes PlaneMask
	aux    uint8

	visual, priority, control uint8
}

// matchVisual compares the whole stored colour pair. Two cells showing the
// same nibble at a dither phase are still a boundary when the pairs differ.
func (t *fillTarget) matchVisual(v uint8) bool {
	return v == t.visual
}

func (c *Canvas) newTarget(x, y int, pen Pen) fillTarget {
	t := fillTarget{
		planes: pen.Planes,
		aux:    AuxHard | uint8(pen.Planes),
	}
	ox, oy := c.center(x, y)
	t.visual = c.visual.At(ox, oy)
	t.priority = c.priority.At(ox, oy) & 0xF
	t.control = c.control.At(x, y) & 0xF
	return t
}

// fillable reports whether base cell (x, y) may be painted by the fill
// described by t.
func (c *Canvas) fillable(x, y int, t *fillTarget) bool {
	if !c.InBase(x, y) {
		return false
	}
	if c.aux.At(x, y)&t.aux != 0 {
		return false
	}
	ox, oy := c.center(x, y)
	if t.planes.Has(PlaneVisual) && !t.matchVisual(c.visual.At(ox, oy)) {
		return false
	}
	if t.planes.Has(PlanePriority) && c.priority.At(ox, oy)&0xF != t.priority {
		return false
	}
	if t.planes.Has(PlaneControl) && c.control.At(x, y)&0xF != t.control {
		return false
	}
	return true
}

// Fill flood-fills the region around base cell (x, y) on every plane in
// pen.Planes. Painted and boundary cells are never crossed, and a seed that
// is not itself fillable does nothing.
func (c *Canvas) Fill(x, y int, pen Pen) {
	c.mustDraw()
	if pen.Planes == 0 || !c.InBase(x, y) {
		return
	}

	t := c.newTarget(x, y, pen)
	if !c.fillable(x, y, &t) {
		return
	}

	spans := c.spans[:0]
	ok := func(x, y int) bool { return c.fillable(x, y, &t) }

	if c.ScaleX == 1 && c.ScaleY == 1 && c.fillMode == FillAuto {
		c.scan(x, y, 0, c.TitleBar, BaseWidth-1, BaseHeight-1, ok, func(y, xl, xr int) {
			for px := xl; px <= xr; px++ {
				c.PutPixel(px, y, pen.Planes, pen.Visual, pen.Priority, pen.Control)
				c.aux.Or(px, y, AuxHard)
			}
			spans = append(spans, fillSpan{y, xl, xr})
		})
	} else {
		var aux = uint8(pen.Planes) | AuxHard
		if pen.Visual == Sentinel {
			aux &^= AuxVisual
		}
		c.scan(x, y, 0, c.TitleBar, BaseWidth-1, BaseHeight-1, ok, func(y, xl, xr int) {
			for px := xl; px <= xr; px++ {
				if pen.Planes.Has(PlaneControl) {
					c.control.Set(px, y, pen.Control)
				}
				c.aux.Or(px, y, aux)
			}
			spans = append(spans, fillSpan{y, xl, xr})
		})
		c.fillOutput(spans, &t, pen)
	}

	for _, s := range spans {
		for px := s.xl; px <= s.xr; px++ {
			c.aux.AndNot(px, s.y, AuxHard)
		}
	}
	c.spans = spans[:0]
}

// scan is the scanline walk shared by every fill phase. Starting from
// (x, y) it extends each seed to a maximal run of ok cells inside
// [minX,maxX]x[minY,maxY], hands the run to paint, and only then looks for
// new runs on the neighbouring rows. paint must leave the run not ok.
func (c *Canvas) scan(x, y, minX, minY, maxX, maxY int, ok func(x, y int) bool, paint func(y, xl, xr int)) {
	work := append(c.work[:0],
		fillSeed{x: x, y: y, dy: 1, pl: 1, pr: 0},
	)

	push := func(y, from, to, dy, pl, pr int) {
		if y < minY || y > maxY {
			return
		}
		for px := from; px <= to; px++ {
			if !ok(px, y) {
				continue
			}
			start := px
			for px+1 <= to && ok(px+1, y) {
				px++
			}
			work = append(work, fillSeed{x: (start + px) / 2, y: y, dy: dy, pl: pl, pr: pr})
		}
	}

	for len(work) > 0 {
		s := work[len(work)-1]
		work = work[:len(work)-1]

		if !ok(s.x, s.y) {
			continue
		}

		xl, xr := s.x, s.x
		for xl > minX && ok(xl-1, s.y) {
			xl--
		}
		for xr < maxX && ok(xr+1, s.y) {
			xr++
		}

		paint(s.y, xl, xr)

		push(s.y+s.dy, xl, xr, s.dy, xl, xr)
		if s.pl > s.pr {
			push(s.y-s.dy, xl, xr, -s.dy, xl, xr)
			continue
		}
		push(s.y-s.dy, xl, s.pl-1, -s.dy, xl, xr)
		push(s.y-s.dy, s.pr+1, xr, -s.dy, xl, xr)
	}

	c.work = work[:0]
}
