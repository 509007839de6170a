package screen

// Pen is the set of planes a primitive writes to and the value written to
// each of them.
type Pen struct {
	Planes   PlaneMask
	Visual   uint8
	Priority uint8
	Control  uint8
}

func (c *Canvas) plot(x, y int, pen Pen) {
	c.PutPixel(x, y, pen.Planes, pen.Visual, pen.Priority, pen.Control)
}

func (c *Canvas) clip(x, y *int) {
	*x = clampInt(0, BaseWidth-1, *x)
	*y = clampInt(c.TitleBar, BaseHeight-1, *y)
}

// Line draws from (x1, y1) to (x2, y2) inclusive, in base coordinates.
func (c *Canvas) Line(x1, y1, x2, y2 int, pen Pen) {
	c.mustDraw()
	if pen.Planes == 0 {
		return
	}

	left, top, right, bottom := x1, y1, x2, y2
	c.clip(&left, &top)
	c.clip(&right, &bottom)

	switch {
	case left == right:
		swapIf(&top, &bottom, top > bottom)
		for y := top; y <= bottom; y++ {
			c.plot(left, y, pen)
		}
	case top == bottom:
		swapIf(&left, &right, left > right)
		for x := left; x <= right; x++ {
			c.plot(x, top, pen)
		}
	default:
		// bresenham
		dx, dy := right-left, bottom-top
		stepX, stepY := ((dx>>15)<<1)+1, ((dy>>15)<<1)+1

		dx, dy = absInt(dx)<<1, absInt(dy)<<1

		c.plot(left, top, pen)
		c.plot(right, bottom, pen)

		if dx > dy {
			fraction := dy - (dx >> 1)
			for left != right {
				if fraction >= 0 {
					top += stepY
					fraction -= dx
				}
				left += stepX
				fraction += dy
				c.plot(left, top, pen)
			}
		} else {
			fraction := dx - (dy >> 1)
			for top != bottom {
				if fraction >= 0 {
					left += stepX
					fraction -= dy
				}
				top += stepY
				fraction += dx
				c.plot(left, top, pen)
			}
		}
	}
}

// Brush describes a pattern stamp.
type Brush struct {
	Size     int // 0..7
	Rect     bool
	Textured bool
	Texture  uint8 // 0..119, start offset into the noise table
}

// Pattern stamps brush centred on (cx, cy). The stamp box is moved so that
// it never leaves the picture area.
func (c *Canvas) Pattern(cx, cy int, brush Brush, pen Pen) {
	c.mustDraw()
	if pen.Planes == 0 {
		return
	}

	size := clampInt(0, len(circleBitmaps)-1, brush.Size)
	width := size*2 + 2
	height := size*2 + 1

	left, top :=
		clampInt(0, BaseWidth-width, cx-size),
		clampInt(c.TitleBar, BaseHeight-height, cy-size)

	noiseIndex := textureOffsets[int(brush.Texture)%len(textureOffsets)]
	stamp := func(px, py int) {
		if c.InBase(px, py) && (!brush.Textured || noise[noiseIndex%len(noise)]) {
			c.plot(px, py, pen)
		}
		noiseIndex++
	}

	if brush.Rect {
		for py := top; py < top+height; py++ {
			for px := left; px < left+width; px++ {
				stamp(px, py)
			}
		}
		return
	}

	for y, row := range circleBitmaps[size] {
		for x, on := range row {
			if on {
				stamp(left+x, top+y)
			}
		}
	}
}
