// Package scipic renders the vector pictures of SCI0-based Sierra On-Line
// games.
//
// The Sierra Creative Interpreter version 0 (SCI0) drew its backgrounds
// from small programs of line, pattern and flood-fill commands painted
// into a visual, a priority and a control plane. A Root opens a game
// directory; the pic package interprets a single program; the screen
// package holds the planes.
package scipic

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"path"

	"github.com/32bitkid/scipic/decompression"
	"github.com/32bitkid/scipic/pic"
	"github.com/32bitkid/scipic/resource"
)

// Root is reference to the root path of a SCI0 game.
type Root struct {
	Decompressors decompression.LUT
	Path          string
	Mapping       []resource.Mapping
}

func NewSCI0Root(path string) Root {
	return Root{
		Path:          path,
		Decompressors: decompression.Decompressors.SCI0,
	}
}

func NewSCI01Root(path string) Root {
	return Root{
		Path:          path,
		Decompressors: decompression.Decompressors.SCI01,
	}
}

const idEndToken uint16 = (1 << 16) - 1
const tailEndToken uint32 = (1 << 32) - 1

var ErrNotFound = errors.New("resource not found")

// ErrNotPicture is returned by Pic when the mapping found for a picture
// cannot render one.
var ErrNotPicture = errors.New("not a picture mapping")

// LoadMapping parses the RESOURCE.MAP file in the root folder.
func (root *Root) LoadMapping() error {
	r, err := os.Open(path.Join(root.Path, "RESOURCE.MAP"))
	if err != nil {
		return err
	}
	defer r.Close()

	// Default to using SCI0 decompressors
	decompressors := root.Decompressors
	if decompressors == nil {
		decompressors = decompression.Decompressors.SCI0
	}

	var entries []resource.Mapping
	for {
		var entry struct {
			ID   uint16
			Tail uint32
		}
		if err := binary.Read(r, binary.LittleEndian, &entry); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return fmt.Errorf("RESOURCE.MAP: missing end token after %d entries", len(entries))
			}
			return err
		}

		if entry.ID == idEndToken && entry.Tail == tailEndToken {
			break
		}

		id := resource.RID(entry.ID)
		mapping := &diskMapping{
			resourceType: id.Type(),
			number:       id.Number(),
			file:         uint8(entry.Tail >> 26),
			offset:       entry.Tail & ((1 << 26) - 1),

			rootPath:      root.Path,
			decompressors: decompressors,
		}

		switch mapping.resourceType {
		case resource.TypePic:
			entries = append(entries, resource.PictureMapping{Mapping: mapping})
		default:
			entries = append(entries, mapping)
		}
	}

	root.Mapping = entries
	return nil
}

// Find returns the mapping for a resource.
func (root *Root) Find(t resource.Type, n resource.Number) (resource.Mapping, error) {
	for _, m := range root.Mapping {
		if m.Type() == t && m.Number() == n {
			return m, nil
		}
	}
	return nil, fmt.Errorf("%v %d: %w", t, n, ErrNotFound)
}

// Pic renders picture number n.
func (root *Root) Pic(n resource.Number, options ...pic.Options) (*pic.Pic, error) {
	m, err := root.Find(resource.TypePic, n)
	if err != nil {
		return nil, err
	}
	pm, ok := m.(resource.PictureMapping)
	if !ok {
		return nil, fmt.Errorf("%v %d: %w", resource.TypePic, n, ErrNotPicture)
	}
	return pm.Render(options...)
}
