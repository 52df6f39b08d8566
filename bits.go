// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package xz

import "github.com/tinyxz/xz/cursor"

// putUint32LE puts the little-endian representation of x into the first
// four bytes of p.
func putUint32LE(p []byte, x uint32) {
	p[0] = byte(x)
	p[1] = byte(x >> 8)
	p[2] = byte(x >> 16)
	p[3] = byte(x >> 24)
}

// uint32LE converts a little-endian 4-byte representation to a uint32.
func uint32LE(p []byte) uint32 {
	return uint32(p[0]) | uint32(p[1])<<8 | uint32(p[2])<<16 |
		uint32(p[3])<<24
}

// maxVarintLen bounds how many 7-bit groups a VLI may span before being
// rejected as malformed, per spec: reject sequences longer than 9 bytes.
const maxVarintLen = 9

// readVarint reads a variable-length integer: 7-bit groups, continuation
// bit in the MSB, accumulated least-significant group first. A sequence
// of two or more bytes whose final byte is zero, or a sequence longer than
// maxVarintLen, is rejected; a sole zero byte is the valid encoding of 0.
func readVarint(c *cursor.Cursor) (x uint64, err error) {
	var shift uint
	for i := 0; i < maxVarintLen; i++ {
		b, err := c.ReadByte()
		if err != nil {
			return 0, err
		}
		if i == maxVarintLen-1 && b > 1 {
			return 0, ErrVarint
		}
		x |= uint64(b&0x7f) << shift
		if b&0x80 == 0 {
			if b == 0 && i > 0 {
				return 0, ErrVarint
			}
			return x, nil
		}
		shift += 7
	}
	return 0, ErrVarint
}
