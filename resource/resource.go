// Package resource describes SCI0 resources and parses their archived
// payloads.
package resource

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/32bitkid/scipic/decompression"
)

// Number identifies a resource within its type.
type Number uint16

// RID is the packed type and number stored in a payload header.
type RID uint16

const InvalidRID = RID(0xFFFF)

func NewRID(t Type, n Number) RID { return RID(uint16(t)<<11 | uint16(n)&0x7ff) }

func (id RID) Type() Type     { return Type(id >> 11) }
func (id RID) Number() Number { return Number(id & 0x7ff) }

type Resource interface {
	ID() RID
	Type() Type
	Bytes() []uint8
}

// Header precedes every payload in a RESOURCE.NNN archive. The packed
// size on disk counts the two fields that follow it.
type Header struct {
	ID               RID
	PackedSize       uint16
	DecompressedSize uint16
	Method           decompression.Method
}

const headerTail = 4

var ErrPackedSize = errors.New("resource: packed size smaller than header")

func (h Header) CompressedSize() uint16 { return h.PackedSize - headerTail }

// ParsePayloadFrom reads one header and its decompressed payload.
func ParsePayloadFrom(r io.Reader, lut decompression.LUT) (RID, []byte, error) {
	src := bufio.NewReader(r)

	var header Header
	if err := binary.Read(src, binary.LittleEndian, &header); err != nil {
		return InvalidRID, nil, fmt.Errorf("resource: reading header: %w", err)
	}
	if header.PackedSize < headerTail {
		return InvalidRID, nil, fmt.Errorf("%w: %d", ErrPackedSize, header.PackedSize)
	}

	decompress, ok := lut[header.Method]
	if !ok {
		return InvalidRID, nil, fmt.Errorf("resource: unhandled compression method %d", header.Method)
	}

	payload := make([]uint8, header.DecompressedSize)
	if err := decompress(src, payload, header.CompressedSize()); err != nil {
		return InvalidRID, nil, fmt.Errorf("resource: %v: %w", header.ID.Type(), err)
	}
	return header.ID, payload, nil
}
