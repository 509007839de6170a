package screen

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

const (
	BaseWidth  = 320
	BaseHeight = 200

	// DefaultTitleBar is the number of rows reserved above the picture.
	DefaultTitleBar = 10
	// NoTitleBar selects a canvas without a title bar.
	NoTitleBar = -1

	// Sentinel is the visual value meaning "nothing painted here".
	Sentinel uint8 = 0xFF

	maxScale = 8
)

type PlaneMask uint8

const (
	PlaneVisual PlaneMask = 1 << iota
	PlanePriority
	PlaneControl

	AllPlanes = PlaneVisual | PlanePriority | PlaneControl
)

func (mask *PlaneMask) Set(flag PlaneMask, enabled bool) {
	if enabled {
		*mask |= flag
	} else {
		*mask &= ^flag
	}
}

func (mask PlaneMask) Has(flag PlaneMask) bool {
	return mask&flag == flag
}

// Auxiliary plane bits. The first three mirror PlaneMask: "this cell has been
// painted on that plane".
const (
	AuxVisual   = uint8(PlaneVisual)
	AuxPriority = uint8(PlanePriority)
	AuxControl  = uint8(PlaneControl)
	AuxHard     = uint8(0x80)
)

type Lifecycle uint8

const (
	Cleared Lifecycle = iota
	Interpreting
	Interpreted
	Dithered
	Published
)

func (l Lifecycle) String() string {
	switch l {
	case Cleared:
		return "Lifecycle(Cleared)"
	case Interpreting:
		return "Lifecycle(Interpreting)"
	case Interpreted:
		return "Lifecycle(Interpreted)"
	case Dithered:
		return "Lifecycle(Dithered)"
	case Published:
		return "Lifecycle(Published)"
	}
	return "Lifecycle(UNKNOWN)"
}

type FillMode uint8

const (
	// FillAuto uses the single-pass fill at 1x1 and the two-phase fill otherwise.
	FillAuto FillMode = iota
	// FillScaled always uses the two-phase fill, even at 1x1.
	FillScaled
)

func (m FillMode) String() string {
	switch m {
	case FillAuto:
		return "auto"
	case FillScaled:
		return "scaled"
	}
	return fmt.Sprintf("FillMode(%d)", uint8(m))
}

func ParseFillMode(s string) (FillMode, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return FillAuto, nil
	case "scaled":
		return FillScaled, nil
	}
	return FillAuto, fmt.Errorf("screen: unknown fill mode %q", s)
}

type Options struct {
	ScaleX, ScaleY int
	// TitleBar rows are cleared to index 0 and never filled. Zero selects
	// DefaultTitleBar and NoTitleBar selects none.
	TitleBar        int
	AmbientPriority uint8
	Fill            FillMode
	// Logger receives debug events from the fill engine. Nil discards them.
	Logger *slog.Logger
}

// Canvas is the render target of one picture: a visual and priority plane
// at output resolution, and a control and auxiliary plane on the 320x200
// base grid.
type Canvas struct {
	ScaleX, ScaleY int
	TitleBar       int

	visual   *Plane
	priority *Plane
	control  *Plane
	aux      *Plane

	bands    Bands
	ambient  uint8
	fillMode FillMode
	state    Lifecycle
	log      *slog.Logger

	work  []fillSeed
	spans []fillSpan
	marks *Plane
}

func NewCanvas(opts Options) (*Canvas, error) {
	sx, sy := opts.ScaleX, opts.ScaleY
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = 1
	}
	if sx < 1 || sy < 1 || sx > maxScale || sy > maxScale {
		return nil, fmt.Errorf("screen: unsupported scale %dx%d", opts.ScaleX, opts.ScaleY)
	}

	titleBar := opts.TitleBar
	switch titleBar {
	case 0:
		titleBar = DefaultTitleBar
	case NoTitleBar:
		titleBar = 0
	}
	if titleBar < 0 || titleBar >= BaseHeight {
		return nil, fmt.Errorf("screen: title bar of %d rows does not fit", opts.TitleBar)
	}

	c := &Canvas{
		ScaleX:   sx,
		ScaleY:   sy,
		TitleBar: titleBar,
		visual:   NewPlane(BaseWidth*sx, BaseHeight*sy),
		priority: NewPlane(BaseWidth*sx, BaseHeight*sy),
		control:  NewPlane(BaseWidth, BaseHeight),
		aux:      NewPlane(BaseWidth, BaseHeight),
		ambient:  opts.AmbientPriority & 0xF,
		fillMode: opts.Fill,
		log:      opts.Logger,
	}
	if c.log == nil {
		c.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	c.clear()
	return c, nil
}

// clear resets every plane to its initial contents.
func (c *Canvas) clear() {
	split := c.TitleBar * c.ScaleY

	c.visual.ClearRows(0, split, 0)
	c.visual.ClearRows(split, c.visual.Height, Sentinel)
	c.priority.ClearRows(0, split, 0)
	c.priority.ClearRows(split, c.priority.Height, c.ambient)
	c.control.Clear(0)
	c.aux.Clear(0)

	c.bands = DefaultBands
	c.state = Cleared
}

func (c *Canvas) State() Lifecycle { return c.state }

func (c *Canvas) advance(to Lifecycle) {
	if to < c.state {
		panic(fmt.Sprintf("screen: cannot move canvas from %v back to %v", c.state, to))
	}
	c.state = to
}

// Begin marks the start of interpretation.
func (c *Canvas) Begin() { c.advance(Interpreting) }

// Finish marks the end of interpretation, successful or not.
func (c *Canvas) Finish() { c.advance(Interpreted) }

// Publish freezes the canvas. Only read-only views remain usable.
func (c *Canvas) Publish() {
	c.advance(Published)
	c.work, c.spans, c.marks = nil, nil, nil
}

func (c *Canvas) mustDraw() {
	if c.state > Interpreting {
		panic(fmt.Sprintf("screen: drawing on a canvas that is %v", c.state))
	}
}

func (c *Canvas) Visual() PlaneView   { return PlaneView{c.visual} }
func (c *Canvas) Priority() PlaneView { return PlaneView{c.priority} }
func (c *Canvas) Control() PlaneView  { return PlaneView{c.control} }
func (c *Canvas) Bands() Bands        { return c.bands }

// Aux exposes the auxiliary plane for inspection in tests and debuggers.
func (c *Canvas) Aux() PlaneView { return PlaneView{c.aux} }

func (c *Canvas) SetBands(b Bands) {
	c.mustDraw()
	c.bands = b
}

// PriorityOf converts a picture row into its priority band.
func (c *Canvas) PriorityOf(row int) int { return c.bands.BandOf(row) }

// InBase reports whether (x, y) is a drawable base-grid cell.
func (c *Canvas) InBase(x, y int) bool {
	return x >= 0 && x < BaseWidth && y >= c.TitleBar && y < BaseHeight
}

// PutPixel paints base cell (x, y) on every plane in planes. Visual and
// priority are written as a ScaleX*ScaleY block.
func (c *Canvas) PutPixel(x, y int, planes PlaneMask, visual, priority, control uint8) {
	c.mustDraw()

	var aux uint8
	if planes.Has(PlaneVisual) {
		c.visual.Rect(x*c.ScaleX, y*c.ScaleY, c.ScaleX, c.ScaleY, visual)
		if visual != Sentinel {
			aux |= AuxVisual
		}
	}
	if planes.Has(PlanePriority) {
		c.priority.Rect(x*c.ScaleX, y*c.ScaleY, c.ScaleX, c.ScaleY, priority)
		aux |= AuxPriority
	}
	if planes.Has(PlaneControl) {
		c.control.Set(x, y, control)
		aux |= AuxControl
	}
	c.aux.Or(x, y, aux)
}

// center projects a base cell onto the output pixel at the middle of its block.
func (c *Canvas) center(x, y int) (int, int) {
	return x*c.ScaleX + c.ScaleX/2, y*c.ScaleY + c.ScaleY/2
}
