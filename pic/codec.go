package pic

import (
	"errors"
)

// ErrDeltaRange is returned by the encoders for a coordinate or delta the
// wire format cannot carry.
var ErrDeltaRange = errors.New("pic: coordinate not representable")

const mirrorAxis = 319

// DecodeAbsolute decodes a 24-bit absolute coordinate:
//
// byte |
//  0   | bits 4-7: x bits 8-11, bits 0-3: y bits 8-11
//  1   | x bits 0-7
//  2   | y bits 0-7
//
func DecodeAbsolute(code [3]byte, mirror bool) (x, y int) {
	x = int(code[0]&0xF0)<<4 | int(code[1])
	y = int(code[0]&0x0F)<<8 | int(code[2])
	if mirror {
		x = mirrorAxis - x
	}
	return x, y
}

// DecodeMedium applies a 16-bit delta to (x, y):
//
// byte |
//  0   | y-delta: bit 7 sign, bits 0-6 magnitude
//  1   | x-delta: two's complement
//
func DecodeMedium(code [2]byte, x, y int, mirror bool) (int, int) {
	if code[0]&0x80 != 0 {
		y -= int(code[0] & 0x7F)
	} else {
		y += int(code[0] & 0x7F)
	}

	dx := int(int8(code[1]))
	if mirror {
		dx = -dx
	}
	return x + dx, y
}

// DecodeShort applies an 8-bit delta to (x, y):
//
// bits |
// 4-7  | x-delta: bit 7 sign, bits 4-6 magnitude
// 0-3  | y-delta: bit 3 sign, bits 0-2 magnitude
//
func DecodeShort(code byte, x, y int, mirror bool) (int, int) {
	xSign, dx := (code>>4)&0x8 != 0, int((code>>4)&0x7)
	if xSign != mirror {
		x -= dx
	} else {
		x += dx
	}

	ySign, dy := code&0x8 != 0, int(code&0x7)
	if ySign {
		y -= dy
	} else {
		y += dy
	}

	return x, y
}

func EncodeAbsolute(x, y int, mirror bool) ([3]byte, error) {
	if mirror {
		x = mirrorAxis - x
	}
	if x < 0 || y < 0 || x>>8 >= 0xF || y>>8 > 0xF {
		return [3]byte{}, ErrDeltaRange
	}
	return [3]byte{
		byte(x>>8)<<4 | byte(y>>8),
		byte(x),
		byte(y),
	}, nil
}

// EncodeMedium encodes (dx, dy). The first byte of a group must not look
// like a command byte, so dy is limited to [-111, 127].
func EncodeMedium(dx, dy int, mirror bool) ([2]byte, error) {
	if mirror {
		dx = -dx
	}
	if dx < -128 || dx > 127 || dy < -111 || dy > 127 {
		return [2]byte{}, ErrDeltaRange
	}

	var code [2]byte
	if dy < 0 {
		code[0] = 0x80 | byte(-dy)
	} else {
		code[0] = byte(dy)
	}
	code[1] = byte(int8(dx))
	return code, nil
}

// EncodeShort encodes (dx, dy). A raw x-delta of -7 would produce a command
// byte and is rejected.
func EncodeShort(dx, dy int, mirror bool) (byte, error) {
	if mirror {
		dx = -dx
	}
	if dx < -6 || dx > 7 || dy < -7 || dy > 7 {
		return 0, ErrDeltaRange
	}

	var code byte
	if dx < 0 {
		code |= 0x80 | byte(-dx)<<4
	} else {
		code |= byte(dx) << 4
	}
	if dy < 0 {
		code |= 0x08 | byte(-dy)
	} else {
		code |= byte(dy)
	}
	return code, nil
}
