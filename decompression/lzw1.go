package decompression

import (
	"errors"
	"fmt"
	"io"

	"github.com/32bitkid/bitreader"
)

var errTokenChain = errors.New("lzw1: token chain overflows stack")

type lzwToken struct {
	data uint8
	next uint16
}

const (
	lzw1Reset      uint16 = 0x100
	lzw1EndOfData  uint16 = 0x101
	lzw1FirstToken uint16 = 0x102
	lzw1FirstLimit uint16 = 0x1ff
	lzw1MaxBits           = 12
	lzw1TableSize         = 0x1014
)

type lzw1Decoder struct {
	br  bitreader.BitReader
	dst []byte
	n   int

	tokens []lzwToken
	stack  []uint8

	numBits  uint
	current  uint16
	limit    uint16
	lastByte uint8
	lastBits uint16
}

func (d *lzw1Decoder) reset() {
	d.numBits = 9
	d.current = lzw1FirstToken
	d.limit = lzw1FirstLimit
}

func (d *lzw1Decoder) emit(b uint8) bool {
	if d.n < len(d.dst) {
		d.dst[d.n] = b
		d.n++
	}
	return d.n == len(d.dst)
}

// expand pushes the string for bits onto the stack and writes it out in
// order. It reports whether the destination is full.
func (d *lzw1Decoder) expand(bits uint16) (bool, error) {
	d.stack = d.stack[:0]
	token := bits
	if token >= d.current {
		token = d.lastBits
		d.stack = append(d.stack, d.lastByte)
	}
	for token > 0xff && token < 0x1004 {
		if len(d.stack) == cap(d.stack) {
			return false, errTokenChain
		}
		d.stack = append(d.stack, d.tokens[token].data)
		token = d.tokens[token].next
	}
	d.lastByte = uint8(token & 0xff)
	d.stack = append(d.stack, d.lastByte)

	for i := len(d.stack) - 1; i >= 0; i-- {
		if d.emit(d.stack[i]) {
			return true, nil
		}
	}
	return false, nil
}

func lzw1(r io.Reader, dst []byte) error {
	d := &lzw1Decoder{
		br:     bitreader.NewReader(r),
		dst:    dst,
		tokens: make([]lzwToken, lzw1TableSize),
		stack:  make([]uint8, 0, lzw1TableSize),
	}

	d.reset()
	first := true
	for d.n < len(dst) {
		bits, err := d.br.Read16(d.numBits)
		if err != nil {
			return fmt.Errorf("lzw1: after %d bytes: %w", d.n, err)
		}
		if bits == lzw1EndOfData {
			break
		}
		if bits == lzw1Reset {
			d.reset()
			first = true
			continue
		}

		if first {
			first = false
			d.lastByte = uint8(bits & 0xff)
			d.lastBits = bits
			d.emit(d.lastByte)
			continue
		}

		full, err := d.expand(bits)
		if err != nil {
			return err
		}
		if full {
			break
		}

		if d.current <= d.limit {
			d.tokens[d.current] = lzwToken{data: d.lastByte, next: d.lastBits}
			d.current++
			if d.current == d.limit && d.numBits < lzw1MaxBits {
				d.numBits++
				d.limit = d.limit<<1 + 1
			}
		}
		d.lastBits = bits
	}

	if d.n != len(dst) {
		return fmt.Errorf("lzw1: expected %d bytes got %d bytes", len(dst), d.n)
	}
	return nil
}
