package decompression

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/32bitkid/bitreader"
)

var errBadHuffmanTree = errors.New("huffman: sibling offset outside of tree")

type huffmanNode struct {
	Value    uint8
	Siblings uint8
}

type huffmanTree struct {
	nodes []huffmanNode
	br    bitreader.BitReader
}

// next walks the tree from the root. A zero sibling offset on the taken
// branch means an 8-bit literal follows in the stream.
func (h *huffmanTree) next() (uint8, bool, error) {
	idx := 0
	for {
		if idx >= len(h.nodes) {
			return 0, false, errBadHuffmanTree
		}
		node := h.nodes[idx]
		if node.Siblings == 0 {
			return node.Value, false, nil
		}

		bit, err := h.br.Read1()
		if err != nil {
			return 0, false, err
		}

		var offset int
		if bit {
			offset = int(node.Siblings & 0x0f)
		} else {
			offset = int(node.Siblings >> 4)
		}

		if offset == 0 {
			literal, err := h.br.Read8(8)
			return literal, true, err
		}
		idx += offset
	}
}

func huffman(src io.Reader, dst []byte) error {
	var header struct {
		Nodes      uint8
		Terminator uint8
	}
	if err := binary.Read(src, binary.LittleEndian, &header); err != nil {
		return err
	}

	tree := huffmanTree{nodes: make([]huffmanNode, header.Nodes)}
	if err := binary.Read(src, binary.LittleEndian, &tree.nodes); err != nil {
		return err
	}
	tree.br = bitreader.NewReader(src)

	i := 0
	for {
		c, literal, err := tree.next()
		if err != nil {
			return fmt.Errorf("huffman: after %d bytes: %w", i, err)
		}
		if literal && c == header.Terminator {
			break
		}
		if i == len(dst) {
			return fmt.Errorf("huffman: output exceeds %d bytes", len(dst))
		}
		dst[i] = c
		i++
	}

	if i != len(dst) {
		return fmt.Errorf("huffman: read aborted early. expected(%d) != actual(%d)", len(dst), i)
	}
	return nil
}
