package screen

// noise is the fixed pseudo-random table behind textured patterns. A
// textured stamp walks it from textureOffsets[texture], one entry per
// candidate pixel, wrapping at the end.
var noise = [...]bool{
	false, false, true, false, false, false, false, false,
	true, false, false, true, false, true, false, false,
	false, false, false, false, false, false, true, false,
	false, false, true, false, false, true, false, false,
	true, false, false, true, false, false, false, false,
	true, false, false, false, false, false, true, false,
	true, false, true, false, false, true, false, false,
	true, false, true, false, false, false, true, false,
	true, false, false, false, false, false, true, false,
	false, false, false, false, true, false, false, true,
	false, false, false, false, true, false, true, false,
	false, false, true, false, false, false, true, false,
	false, false, false, true, false, false, true, false,
	false, false, false, true, false, false, false, false,
	false, true, false, false, false, false, true, false,
	false, false, false, true, false, true, false, false,
	true, false, false, true, false, false, false, true,
	false, true, false, false, true, false, true, false,
	true, false, false, true, false, false, false, true,
	false, false, false, true, false, false, false, true,
	false, false, false, false, true, false, false, false,
	false, false, false, true, false, false, true, false,
	false, false, true, false, false, true, false, true,
	false, false, false, true, false, false, false, false,
	false, false, true, false, false, false, true, false,
	true, false, true, false, true, false, false, false,
	false, false, false, true, false, true, false, false,
	false, false, true, false, false, true, false, false,
	false, false, false, false, false, false, false, false,
	false, true, false, true, false, false, false, false,
	false, false, true, false, false, true, false, false,
	false, false, false, false, false, true, false,
}

var textureOffsets = [120]int{
	0x00, 0x18, 0x30, 0xc4, 0xdc, 0x65, 0xeb, 0x48,
	0x60, 0xbd, 0x89, 0x05, 0x0a, 0xf4, 0x7d, 0x7d,
	0x85, 0xb0, 0x8e, 0x95, 0x1f, 0x22, 0x0d, 0xdf,
	0x2a, 0x78, 0xd5, 0x73, 0x1c, 0xb4, 0x40, 0xa1,
	0xb9, 0x3c, 0xca, 0x58, 0x92, 0x34, 0xcc, 0xce,
	0xd7, 0x42, 0x90, 0x0f, 0x8b, 0x7f, 0x32, 0xed,
	0x5c, 0x9d, 0xc8, 0x99, 0xad, 0x4e, 0x56, 0xa6,
	0xf7, 0x68, 0xb7, 0x25, 0x82, 0x37, 0x3a, 0x51,
	0x69, 0x26, 0x38, 0x52, 0x9e, 0x9a, 0x4f, 0xa7,
	0x43, 0x10, 0x80, 0xee, 0x3d, 0x59, 0x35, 0xcf,
	0x79, 0x74, 0xb5, 0xa2, 0xb1, 0x96, 0x23, 0xe0,
	0xbe, 0x05, 0xf5, 0x6e, 0x19, 0xc5, 0x66, 0x49,
	0xf0, 0xd1, 0x54, 0xa9, 0x70, 0x4b, 0xa4, 0xe2,
	0xe6, 0xe5, 0xab, 0xe4, 0xd2, 0xaa, 0x4c, 0xe3,
	0x06, 0x6f, 0xc6, 0x4a, 0xa4, 0x75, 0x97, 0xe1,
}

// isqrt[i] is round(sqrt(i)) for i up to 7*7.
var isqrt = [50]int{
	0, 1, 1, 2, 2, 2, 2,
	3, 3, 3, 3, 3, 3, 4,
	4, 4, 4, 4, 4, 4, 4,
	5, 5, 5, 5, 5, 5, 5,
	5, 5, 5, 6, 6, 6, 6,
	6, 6, 6, 6, 6, 6, 6,
	6, 7, 7, 7, 7, 7, 7,
}

// circleBitmaps holds one mask per pattern size. Mask n covers the same
// (2n+2)x(2n+1) box as the rectangle pattern of that size.
var circleBitmaps = func() (bitmaps [8][][]bool) {
	for size := range bitmaps {
		width, height := size*2+2, size*2+1
		rows := make([][]bool, height)
		for y := range rows {
			dy := y - size
			half := isqrt[size*size-dy*dy]
			row := make([]bool, width)
			for x := size - half; x <= size+half+1; x++ {
				row[x] = true
			}
			rows[y] = row
		}
		bitmaps[size] = rows
	}
	return
}()
