// Package decompression implements the payload compression methods used by
// SCI0 and SCI01 resource archives, and the run-length encoding used by
// cels.
package decompression

import (
	"compress/lzw"
	"fmt"
	"io"
)

// Method is the compression method recorded in a resource header.
type Method uint16

// Decompressor reads compressedSize bytes from r and fills dst, which is
// exactly the decompressed size.
type Decompressor = func(r io.Reader, dst []byte, compressedSize uint16) error

type LUT map[Method]Decompressor

func None(r io.Reader, dst []byte, compressedSize uint16) error {
	if int(compressedSize) != len(dst) {
		return fmt.Errorf("stored payload: compressed size %d != decompressed size %d", compressedSize, len(dst))
	}
	_, err := io.ReadFull(io.LimitReader(r, int64(compressedSize)), dst)
	return err
}

func LZW(r io.Reader, dst []byte, compressedSize uint16) error {
	lzwr := lzw.NewReader(io.LimitReader(r, int64(compressedSize)), lzw.LSB, 8)
	defer lzwr.Close()
	_, err := io.ReadFull(lzwr, dst)
	return err
}

func Huffman(r io.Reader, dst []byte, compressedSize uint16) error {
	return huffman(io.LimitReader(r, int64(compressedSize)), dst)
}

func LZW1(r io.Reader, dst []byte, compressedSize uint16) error {
	return lzw1(io.LimitReader(r, int64(compressedSize)), dst)
}

var Decompressors = struct {
	SCI0  LUT
	SCI01 LUT
}{
	SCI0: LUT{
		0: None,
		1: LZW,
		2: Huffman,
	},
	SCI01: LUT{
		0: None,
		1: Huffman,
		2: LZW1,
	},
}
