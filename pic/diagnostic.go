package pic

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownOpcode   = errors.New("pic: unknown opcode")
	ErrUnknownExtended = errors.New("pic: unknown extended opcode")
	ErrTruncated       = errors.New("pic: program truncated")
	ErrNoTerminator    = errors.New("pic: program ended without terminator")
	ErrBudgetExceeded  = errors.New("pic: opcode budget exceeded")
)

type DiagnosticKind uint8

const (
	// MalformedStream stopped interpretation; the canvas holds everything
	// drawn before the offending byte.
	MalformedStream DiagnosticKind = iota + 1
	// BitmapDecodeFailed skipped one embedded bitmap; interpretation went on.
	BitmapDecodeFailed
)

func (k DiagnosticKind) String() string {
	switch k {
	case MalformedStream:
		return "malformed stream"
	case BitmapDecodeFailed:
		return "bitmap decode failed"
	}
	return fmt.Sprintf("DiagnosticKind(%d)", uint8(k))
}

// Diagnostic describes a recoverable problem found while rendering.
type Diagnostic struct {
	Kind   DiagnosticKind
	Offset int   // program offset of the command that failed
	Op     uint8 // command byte, 0 if none was read
	Err    error
}

func (d Diagnostic) Error() string {
	return fmt.Sprintf("pic: %v at offset %d (op 0x%02x): %v", d.Kind, d.Offset, d.Op, d.Err)
}

func (d Diagnostic) Unwrap() error { return d.Err }
