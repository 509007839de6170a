package pic

import (
	"bufio"
	"bytes"
	"fmt"

	"github.com/32bitkid/bitreader"
)

// programReader walks a picture program one byte at a time and knows its
// own offset, so every failure can be reported against the program.
type programReader struct {
	bits bitreader.BitReader
	pos  int
	size int
}

func newProgramReader(program []byte) *programReader {
	return &programReader{
		bits: bitreader.NewReader(bufio.NewReader(bytes.NewReader(program))),
		size: len(program),
	}
}

func (r *programReader) offset() int { return r.pos }

func (r *programReader) atEnd() bool { return r.pos >= r.size }

func (r *programReader) readByte() (uint8, error) {
	if r.atEnd() {
		return 0, fmt.Errorf("%w at offset %d", ErrTruncated, r.pos)
	}
	b, err := r.bits.Read8(8)
	if err != nil {
		return 0, fmt.Errorf("%w at offset %d: %v", ErrTruncated, r.pos, err)
	}
	r.pos++
	return b, nil
}

// more reports whether the next byte is operand data for the current
// command. Commands with repeat semantics loop on it.
func (r *programReader) more() bool {
	if r.atEnd() {
		return false
	}
	peek, err := r.bits.Peek8(8)
	return err == nil && peek < 0xF0
}

func (r *programReader) read(n int) ([]byte, error) {
	buf := make([]byte, n)
	for i := range buf {
		b, err := r.readByte()
		if err != nil {
			return nil, err
		}
		buf[i] = b
	}
	return buf, nil
}

func (r *programReader) skip(n int) error {
	if r.pos+n > r.size {
		return fmt.Errorf("%w: skipping %d bytes at offset %d", ErrTruncated, n, r.pos)
	}
	for i := 0; i < n; i++ {
		if err := r.bits.Skip(8); err != nil {
			return fmt.Errorf("%w at offset %d: %v", ErrTruncated, r.pos, err)
		}
		r.pos++
	}
	return nil
}

func (r *programReader) readUint16() (uint16, error) {
	b, err := r.read(2)
	if err != nil {
		return 0, err
	}
	return uint16(b[0]) | uint16(b[1])<<8, nil
}

func (r *programReader) readAbsolute(mirror bool) (int, int, error) {
	var code [3]byte
	b, err := r.read(3)
	if err != nil {
		return 0, 0, err
	}
	copy(code[:], b)
	x, y := DecodeAbsolute(code, mirror)
	return x, y, nil
}

func (r *programReader) readMedium(x, y int, mirror bool) (int, int, error) {
	var code [2]byte
	b, err := r.read(2)
	if err != nil {
		return 0, 0, err
	}
	copy(code[:], b)
	x, y = DecodeMedium(code, x, y, mirror)
	return x, y, nil
}

func (r *programReader) readShort(x, y int, mirror bool) (int, int, error) {
	code, err := r.readByte()
	if err != nil {
		return 0, 0, err
	}
	x, y = DecodeShort(code, x, y, mirror)
	return x, y, nil
}
