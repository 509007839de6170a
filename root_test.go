package scipic

import (
	"bytes"
	"compress/lzw"
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/32bitkid/scipic/decompression"
	"github.com/32bitkid/scipic/pic"
	"github.com/32bitkid/scipic/resource"
)

type archiveEntry struct {
	id     resource.RID
	method decompression.Method
	data   []byte
}

func compressLZW(t *testing.T, b []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := lzw.NewWriter(&buf, lzw.LSB, 8)
	if _, err := w.Write(b); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

// writeGame lays out a RESOURCE.MAP and RESOURCE.000 in a temp directory.
func writeGame(t *testing.T, entries []archiveEntry, sizes []int, terminate bool) string {
	t.Helper()
	dir := t.TempDir()

	var archive, mapping bytes.Buffer
	for i, e := range entries {
		_ = binary.Write(&mapping, binary.LittleEndian, uint16(e.id))
		_ = binary.Write(&mapping, binary.LittleEndian, uint32(archive.Len()))

		_ = binary.Write(&archive, binary.LittleEndian, resource.Header{
			ID:               e.id,
			PackedSize:       uint16(len(e.data) + 4),
			DecompressedSize: uint16(sizes[i]),
			Method:           e.method,
		})
		archive.Write(e.data)
	}
	if terminate {
		_ = binary.Write(&mapping, binary.LittleEndian, idEndToken)
		_ = binary.Write(&mapping, binary.LittleEndian, tailEndToken)
	}

	if err := os.WriteFile(filepath.Join(dir, "RESOURCE.MAP"), mapping.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "RESOURCE.000"), archive.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir
}

var fillProgram = []byte{
	0xf0, 0x06,
	0xf2, 0x03,
	0xf8, 0x00, 0xa0, 0x64,
	0xff,
}

func TestRootPic(t *testing.T) {
	text := []byte("hello")
	dir := writeGame(t, []archiveEntry{
		{id: resource.NewRID(resource.TypeText, 1), data: text},
		{id: resource.NewRID(resource.TypePic, 5), method: 1, data: compressLZW(t, fillProgram)},
	}, []int{len(text), len(fillProgram)}, true)

	root := NewSCI0Root(dir)
	if err := root.LoadMapping(); err != nil {
		t.Fatal(err)
	}
	if len(root.Mapping) != 2 {
		t.Fatalf("expected 2 mappings, got %d", len(root.Mapping))
	}

	m, err := root.Find(resource.TypeText, 1)
	if err != nil {
		t.Fatal(err)
	}
	res, err := m.Resource()
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(res.Bytes(), text) {
		t.Fatalf("expected %q, got %q", text, res.Bytes())
	}

	p, err := root.Pic(5, pic.Options{ScaleX: 2, ScaleY: 2})
	if err != nil {
		t.Fatal(err)
	}
	if !p.Complete() {
		t.Fatalf("unexpected diagnostics %v", p.Diagnostics)
	}
	if c := p.Visual().At(320, 220); c != 0x66 {
		t.Errorf("expected 0x66, got 0x%02x", c)
	}
	if c := p.Priority().At(0, 399); c != 3 {
		t.Errorf("expected priority 3, got %d", c)
	}
}

func TestRootNotFound(t *testing.T) {
	dir := writeGame(t, nil, nil, true)
	root := NewSCI0Root(dir)
	if err := root.LoadMapping(); err != nil {
		t.Fatal(err)
	}
	if _, err := root.Pic(1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

type plainMapping struct{ n resource.Number }

func (m plainMapping) Type() resource.Type     { return resource.TypePic }
func (m plainMapping) Number() resource.Number { return m.n }
func (m plainMapping) Resource() (resource.Resource, error) {
	return nil, errors.New("no data")
}

func TestRootPicRejectsPlainMapping(t *testing.T) {
	root := Root{Mapping: []resource.Mapping{plainMapping{n: 4}}}
	if _, err := root.Pic(4); !errors.Is(err, ErrNotPicture) {
		t.Fatalf("expected ErrNotPicture, got %v", err)
	}
}

func TestLoadMappingWithoutTerminator(t *testing.T) {
	dir := writeGame(t, []archiveEntry{
		{id: resource.NewRID(resource.TypePic, 1), data: fillProgram},
	}, []int{len(fillProgram)}, false)
	root := NewSCI0Root(dir)
	if err := root.LoadMapping(); err == nil {
		t.Fatal("expected error")
	}
}

func TestMismatchedArchiveEntry(t *testing.T) {
	dir := writeGame(t, []archiveEntry{
		{id: resource.NewRID(resource.TypePic, 2), data: fillProgram},
	}, []int{len(fillProgram)}, true)

	// Point the map at the right offset but the wrong number.
	var mapping bytes.Buffer
	_ = binary.Write(&mapping, binary.LittleEndian, uint16(resource.NewRID(resource.TypePic, 3)))
	_ = binary.Write(&mapping, binary.LittleEndian, uint32(0))
	_ = binary.Write(&mapping, binary.LittleEndian, idEndToken)
	_ = binary.Write(&mapping, binary.LittleEndian, tailEndToken)
	if err := os.WriteFile(filepath.Join(dir, "RESOURCE.MAP"), mapping.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}

	root := NewSCI0Root(dir)
	if err := root.LoadMapping(); err != nil {
		t.Fatal(err)
	}
	if _, err := root.Pic(3); err == nil {
		t.Fatal("expected mismatch error")
	}
}
