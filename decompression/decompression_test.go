package decompression

import (
	"bytes"
	"compress/lzw"
	"errors"
	"testing"

	"github.com/32bitkid/scipic/pic"
)

var _ pic.CelDecoder = RLECel{}

func TestNone(t *testing.T) {
	src := []byte("hello, world")
	dst := make([]byte, len(src))
	if err := None(bytes.NewReader(append(src, "trailing"...)), dst, uint16(len(src))); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(src, dst) {
		t.Fatalf("expected %q, got %q", src, dst)
	}

	if err := None(bytes.NewReader(src), make([]byte, 4), uint16(len(src))); err == nil {
		t.Fatal("expected size mismatch error")
	}
}

func TestLZW(t *testing.T) {
	src := bytes.Repeat([]byte("abracadabra "), 40)

	var compressed bytes.Buffer
	w := lzw.NewWriter(&compressed, lzw.LSB, 8)
	if _, err := w.Write(src); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	dst := make([]byte, len(src))
	if err := LZW(bytes.NewReader(compressed.Bytes()), dst, uint16(compressed.Len())); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(src, dst) {
		t.Fatal("decompressed payload differs")
	}
}

func TestHuffman(t *testing.T) {
	// Root branches to leaf 'a' on 0 and to a literal on 1. The stream is
	// 0, 0, 1 'b', 1 0xff (terminator).
	payload := []byte{
		2, 0xff,
		0x00, 0x10,
		'a', 0x00,
		0x2c, 0x5f, 0xf0,
	}
	dst := make([]byte, 3)
	if err := Huffman(bytes.NewReader(payload), dst, uint16(len(payload))); err != nil {
		t.Fatal(err)
	}
	if string(dst) != "aab" {
		t.Fatalf("expected %q, got %q", "aab", dst)
	}
}

func TestHuffmanLengthMismatch(t *testing.T) {
	payload := []byte{
		2, 0xff,
		0x00, 0x10,
		'a', 0x00,
		0x2c, 0x5f, 0xf0,
	}
	if err := Huffman(bytes.NewReader(payload), make([]byte, 4), uint16(len(payload))); err == nil {
		t.Fatal("expected early termination error")
	}
	if err := Huffman(bytes.NewReader(payload), make([]byte, 2), uint16(len(payload))); err == nil {
		t.Fatal("expected overflow error")
	}
}

func TestHuffmanBadTree(t *testing.T) {
	payload := []byte{
		1, 0xff,
		0x00, 0x20,
		0x00,
	}
	err := Huffman(bytes.NewReader(payload), make([]byte, 1), uint16(len(payload)))
	if !errors.Is(err, errBadHuffmanTree) {
		t.Fatalf("expected bad tree error, got %v", err)
	}
}

func TestLZW1(t *testing.T) {
	// 9-bit codes 0x041, 0x102: a literal followed by the code being
	// defined, which expands to "AA".
	payload := []byte{0x20, 0xc0, 0x80}
	dst := make([]byte, 3)
	if err := LZW1(bytes.NewReader(payload), dst, uint16(len(payload))); err != nil {
		t.Fatal(err)
	}
	if string(dst) != "AAA" {
		t.Fatalf("expected %q, got %q", "AAA", dst)
	}
}

func TestLZW1EndOfData(t *testing.T) {
	// 0x041, 0x042, 0x101
	payload := []byte{0x20, 0x90, 0xa0, 0x20}
	dst := make([]byte, 3)
	err := LZW1(bytes.NewReader(payload), dst, uint16(len(payload)))
	if err == nil {
		t.Fatal("expected short output error")
	}
	if string(dst[:2]) != "AB" {
		t.Fatalf("expected %q, got %q", "AB", dst[:2])
	}
}

func TestDecompressorTables(t *testing.T) {
	for name, lut := range map[string]LUT{"SCI0": Decompressors.SCI0, "SCI01": Decompressors.SCI01} {
		if _, ok := lut[0]; !ok {
			t.Errorf("%s: missing stored method", name)
		}
		if _, ok := lut[3]; ok {
			t.Errorf("%s: unexpected method 3", name)
		}
	}
}

func TestRLECel(t *testing.T) {
	pix, err := RLECel{}.Decode([]byte{0x34, 0x21, 0x1f, 0x05}, 3, 2)
	if err != nil {
		t.Fatal(err)
	}
	expected := []uint8{4, 4, 4, 1, 1, 0xf}
	if !bytes.Equal(pix, expected) {
		t.Fatalf("expected %v, got %v", expected, pix)
	}
}

func TestRLECelOverlongRun(t *testing.T) {
	pix, err := RLECel{}.Decode([]byte{0xf2}, 2, 2)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(pix, []uint8{2, 2, 2, 2}) {
		t.Fatalf("unexpected pixels %v", pix)
	}
}

func TestRLECelShort(t *testing.T) {
	_, err := RLECel{}.Decode([]byte{0x31}, 2, 2)
	if !errors.Is(err, ErrShortCel) {
		t.Fatalf("expected ErrShortCel, got %v", err)
	}
}
