// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package xz

import (
	"hash/crc32"

	"github.com/tinyxz/xz/cursor"
)

// readIndex reads the index record for this profile's single block: an
// indicator byte (0x00), a block-count varint that must equal one, the
// block's unpadded and uncompressed sizes as varints, zero padding to a
// 4-byte boundary and a trailing CRC-32. It validates the two sizes
// against the observed block if meta is set.
func readIndex(c *cursor.Cursor, meta bool, unpaddedSize, uncompressedSize int64) (indexLen int, err error) {
	start := c.Pos()

	ind, err := c.ReadByte()
	if err != nil {
		return 0, err
	}
	if ind != 0 {
		return 0, ErrIndexIndicator
	}

	count, err := readVarint(c)
	if err != nil {
		return 0, err
	}
	if meta && count != 1 {
		return 0, ErrMultiBlock
	}

	u, err := readVarint(c)
	if err != nil {
		return 0, err
	}
	v, err := readVarint(c)
	if err != nil {
		return 0, err
	}
	if meta {
		if int64(u) != unpaddedSize || int64(v) != uncompressedSize {
			return 0, ErrIndexMismatch
		}
	}

	if err = c.Align4(); err != nil {
		return 0, err
	}

	crcBytes, err := c.Reserve(4)
	if err != nil {
		return 0, err
	}
	if meta {
		body, ok := c.SliceFrom(start, c.Pos()-4)
		if !ok {
			return 0, ErrIndexMismatch
		}
		if uint32LE(crcBytes) != crc32.ChecksumIEEE(body) {
			return 0, ErrIndexChecksum
		}
	}

	return c.Pos() - start, nil
}
