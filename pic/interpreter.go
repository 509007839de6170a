package pic

import (
	"fmt"
	"log/slog"

	"github.com/32bitkid/scipic/screen"
)

// Picture op-codes
type pOpCode = uint8

const (
	// Layer control
	pOpSetVisual       pOpCode = 0xf0
	pOpDisableVisual   pOpCode = 0xf1
	pOpSetPriority     pOpCode = 0xf2
	pOpDisablePriority pOpCode = 0xf3
	pOpSetControl      pOpCode = 0xfb
	pOpDisableControl  pOpCode = 0xfc

	// Lines
	pOpShortLines  pOpCode = 0xf7
	pOpMediumLines pOpCode = 0xf5
	pOpLongLines   pOpCode = 0xf6

	// Patterns
	pOpSetPattern     pOpCode = 0xf9
	pOpShortPatterns  pOpCode = 0xf4
	pOpMediumPatterns pOpCode = 0xfd
	pOpLongPatterns   pOpCode = 0xfa

	// Fills
	pOpFills pOpCode = 0xf8

	// Extensions
	pOpOPX  pOpCode = 0xfe
	pOpDone pOpCode = 0xff
)

type handler func(in *interpreter) error

var handlers = [16]handler{
	pOpSetVisual - 0xf0:       (*interpreter).setVisual,
	pOpDisableVisual - 0xf0:   (*interpreter).disableVisual,
	pOpSetPriority - 0xf0:     (*interpreter).setPriority,
	pOpDisablePriority - 0xf0: (*interpreter).disablePriority,
	pOpShortPatterns - 0xf0:   (*interpreter).shortPatterns,
	pOpMediumLines - 0xf0:     (*interpreter).mediumLines,
	pOpLongLines - 0xf0:       (*interpreter).longLines,
	pOpShortLines - 0xf0:      (*interpreter).shortLines,
	pOpFills - 0xf0:           (*interpreter).fills,
	pOpSetPattern - 0xf0:      (*interpreter).setPattern,
	pOpLongPatterns - 0xf0:    (*interpreter).longPatterns,
	pOpSetControl - 0xf0:      (*interpreter).setControl,
	pOpDisableControl - 0xf0:  (*interpreter).disableControl,
	pOpMediumPatterns - 0xf0:  (*interpreter).mediumPatterns,
	pOpOPX - 0xf0:             (*interpreter).opx,
}

type interpreter struct {
	r        *programReader
	canvas   *screen.Canvas
	state    State
	resolver PaletteResolver
	cels     CelDecoder
	maxOps   int
	debugFn  DebugCallback
	log      *slog.Logger

	ops         int
	op          uint8
	opOffset    int
	diagnostics []Diagnostic
}

func newInterpreter(program []byte, canvas *screen.Canvas, opts Options) *interpreter {
	in := &interpreter{
		r:       newProgramReader(program),
		canvas:  canvas,
		state:   newState(opts),
		cels:    opts.CelDecoder,
		maxOps:  opts.MaxOps,
		debugFn: opts.DebugFn,
		log:     Logger(),
	}
	in.resolver = opts.Resolver
	if in.resolver == nil {
		in.resolver = &in.state.Palettes
	}
	return in
}

func (in *interpreter) report(kind DiagnosticKind, err error) {
	d := Diagnostic{
		Kind:   kind,
		Offset: in.opOffset,
		Op:     in.op,
		Err:    err,
	}
	in.log.Warn("picture diagnostic",
		"kind", d.Kind.String(),
		"offset", d.Offset,
		"op", fmt.Sprintf("0x%02x", d.Op),
		"err", d.Err,
	)
	in.diagnostics = append(in.diagnostics, d)
}

func (in *interpreter) run() {
	for {
		in.opOffset, in.op = in.r.offset(), 0
		if in.r.atEnd() {
			in.report(MalformedStream, ErrNoTerminator)
			return
		}

		op, err := in.r.readByte()
		if err != nil {
			in.report(MalformedStream, err)
			return
		}
		in.op = op

		switch {
		case op == pOpDone:
			return
		case op < 0xf0:
			in.report(MalformedStream, fmt.Errorf("%w 0x%02x", ErrUnknownOpcode, op))
			return
		case in.maxOps > 0 && in.ops >= in.maxOps:
			in.report(MalformedStream, fmt.Errorf("%w after %d commands", ErrBudgetExceeded, in.ops))
			return
		}

		in.ops++
		if err := handlers[op-0xf0](in); err != nil {
			in.report(MalformedStream, err)
			return
		}

		if in.debugFn != nil {
			in.debugFn(op, in.state)
		}
	}
}

// point converts a decoded program coordinate to a canvas cell. Programs
// address the area below the title bar.
func (in *interpreter) point(x, y int) (int, int) {
	titleBar := in.canvas.TitleBar
	cx := clampInt(0, screen.BaseWidth-1, x)
	cy := clampInt(0, screen.BaseHeight-1-titleBar, y)
	if cx != x || cy != y {
		in.log.Debug("coordinate clamped", "x", x, "y", y, "offset", in.opOffset)
	}
	return cx, cy + titleBar
}

func (in *interpreter) setVisual() error {
	code, err := in.r.readByte()
	if err != nil {
		return err
	}
	in.state.Color = in.resolver.ResolvePaletteSlot(int(code)/40, int(code)%40)
	in.state.Planes.Set(screen.PlaneVisual, true)
	return nil
}

func (in *interpreter) disableVisual() error {
	in.state.Planes.Set(screen.PlaneVisual, false)
	return nil
}

func (in *interpreter) setPriority() error {
	code, err := in.r.readByte()
	if err != nil {
		return err
	}
	in.state.Priority = code & 0xF
	in.state.Planes.Set(screen.PlanePriority, true)
	return nil
}

func (in *interpreter) disablePriority() error {
	in.state.Planes.Set(screen.PlanePriority, false)
	return nil
}

func (in *interpreter) setControl() error {
	code, err := in.r.readByte()
	if err != nil {
		return err
	}
	in.state.Control = code & 0xF
	in.state.Planes.Set(screen.PlaneControl, true)
	return nil
}

func (in *interpreter) disableControl() error {
	in.state.Planes.Set(screen.PlaneControl, false)
	return nil
}

func (in *interpreter) setPattern() error {
	code, err := in.r.readByte()
	if err != nil {
		return err
	}
	in.state.Pattern = PatternCode(code & 0x3f)
	return nil
}

// Lines

func (in *interpreter) line(x1, y1, x2, y2 int) {
	x1, y1 = in.point(x1, y1)
	x2, y2 = in.point(x2, y2)
	in.canvas.Line(x1, y1, x2, y2, in.state.pen())
}

type nextPoint func(x, y int) (int, int, error)

func (in *interpreter) lines(next nextPoint) error {
	x1, y1, err := in.r.readAbsolute(in.state.Mirror)
	if err != nil {
		return err
	}
	for in.r.more() {
		x2, y2, err := next(x1, y1)
		if err != nil {
			return err
		}
		in.line(x1, y1, x2, y2)
		x1, y1 = x2, y2
	}
	return nil
}

func (in *interpreter) shortLines() error {
	return in.lines(func(x, y int) (int, int, error) {
		return in.r.readShort(x, y, in.state.Mirror)
	})
}

func (in *interpreter) mediumLines() error {
	return in.lines(func(x, y int) (int, int, error) {
		return in.r.readMedium(x, y, in.state.Mirror)
	})
}

func (in *interpreter) longLines() error {
	return in.lines(func(int, int) (int, int, error) {
		return in.r.readAbsolute(in.state.Mirror)
	})
}

// Fills

func (in *interpreter) fills() error {
	for in.r.more() {
		x, y, err := in.r.readAbsolute(in.state.Mirror)
		if err != nil {
			return err
		}
		x, y = in.point(x, y)
		in.canvas.Fill(x, y, in.state.pen())
	}
	return nil
}

// Patterns

func (in *interpreter) readTexture() error {
	if !in.state.Pattern.IsTextured() {
		return nil
	}
	texture, err := in.r.readByte()
	if err != nil {
		return err
	}
	in.state.Texture = texture >> 1
	return nil
}

func (in *interpreter) stamp(x, y int) {
	x, y = in.point(x, y)
	in.canvas.Pattern(x, y, in.state.brush(), in.state.pen())
}

// patterns stamps at an absolute point, then at every relative point that
// follows it.
func (in *interpreter) patterns(next nextPoint) error {
	if err := in.readTexture(); err != nil {
		return err
	}
	x, y, err := in.r.readAbsolute(in.state.Mirror)
	if err != nil {
		return err
	}
	in.stamp(x, y)

	for in.r.more() {
		if err := in.readTexture(); err != nil {
			return err
		}
		if x, y, err = next(x, y); err != nil {
			return err
		}
		in.stamp(x, y)
	}
	return nil
}

func (in *interpreter) shortPatterns() error {
	return in.patterns(func(x, y int) (int, int, error) {
		return in.r.readShort(x, y, in.state.Mirror)
	})
}

func (in *interpreter) mediumPatterns() error {
	return in.patterns(func(x, y int) (int, int, error) {
		return in.r.readMedium(x, y, in.state.Mirror)
	})
}

func (in *interpreter) longPatterns() error {
	for in.r.more() {
		if err := in.readTexture(); err != nil {
			return err
		}
		x, y, err := in.r.readAbsolute(in.state.Mirror)
		if err != nil {
			return err
		}
		in.stamp(x, y)
	}
	return nil
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
