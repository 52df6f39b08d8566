// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package xz

import (
	"bytes"
	"hash/crc32"

	"github.com/tinyxz/xz/cursor"
)

// headerMagic are the fixed magic bytes opening every XZ stream.
var headerMagic = []byte{0xfd, '7', 'z', 'X', 'Z', 0x00}

// footerMagic are the fixed magic bytes closing every XZ stream.
var footerMagic = []byte{'Y', 'Z'}

const (
	headerLen = 12
	footerLen = 12
)

// Check-type byte values for the stream flags. This profile only accepts
// none or CRC-32.
const (
	checkNone  byte = 0x00
	checkCRC32 byte = 0x01
)

// checkSize returns the trailing checksum size implied by a check-type
// byte: 0 for none, 4 for CRC-32. Any other value is rejected by the
// caller before this is invoked.
func checkSize(checkType byte) int {
	if checkType == checkNone {
		return 0
	}
	return 4
}

// readStreamHeader reads and, if meta is set, validates the 12-byte
// stream header; it always returns the check-type byte so the caller can
// size the block's trailing checksum.
func readStreamHeader(c *cursor.Cursor, meta bool) (checkType byte, err error) {
	data, err := c.Reserve(headerLen)
	if err != nil {
		return 0, err
	}
	if !meta {
		return data[7], nil
	}
	if !bytes.Equal(headerMagic, data[:6]) {
		return 0, ErrHeaderMagic
	}
	if data[6] != 0 {
		return 0, ErrInvalidFlags
	}
	checkType = data[7]
	switch checkType {
	case checkNone, checkCRC32:
	default:
		return 0, ErrInvalidFlags
	}
	crc := crc32.ChecksumIEEE(data[6:8])
	if uint32LE(data[8:]) != crc {
		return 0, ErrHeaderChecksum
	}
	return checkType, nil
}

// readStreamFooter reads and, if meta is set, validates the 12-byte
// stream footer, checking that its flags match the header's and
// returning the index size it declares (backwardSize*4).
func readStreamFooter(c *cursor.Cursor, meta bool, headerCheckType byte) (indexSize int64, err error) {
	data, err := c.Reserve(footerLen)
	if err != nil {
		return 0, err
	}
	if !meta {
		backward := uint32LE(data[4:8])
		return (int64(backward) + 1) * 4, nil
	}
	crc := crc32.ChecksumIEEE(data[4:10])
	if uint32LE(data) != crc {
		return 0, ErrFooterChecksum
	}
	backward := uint32LE(data[4:8])
	indexSize = (int64(backward) + 1) * 4
	if data[8] != 0 {
		return 0, ErrInvalidFlags
	}
	if data[9] != headerCheckType {
		return 0, ErrFlagsMismatch
	}
	if !bytes.Equal(data[10:12], footerMagic) {
		return 0, ErrFooterMagic
	}
	return indexSize, nil
}

// blockHeader is the restricted single-filter block header this profile
// understands: an LZMA2 filter with a dictionary-size property byte.
type blockHeader struct {
	dictSizeByte byte
	headerLen    int
}

// Block header flag masks. This profile requires exactly one filter
// (filterCountMask == 0) and rejects the reserved bits. The optional
// compressed/uncompressed size fields are skipped unchecked when present
// (this profile computes those from the LZMA2 framing and the index
// instead of trusting the header).
const (
	blockFilterCountMask    = 0x03
	blockCompressedPresent  = 0x40
	blockUncompressedPresent = 0x80
	blockReservedFlags      = 0x3c

	lzma2FilterID = 0x21
)

// readBlockHeader reads the block header indicator byte via c, then the
// rest of the (4-byte aligned) header, validating it if meta is set.
func readBlockHeader(c *cursor.Cursor, meta bool) (h blockHeader, err error) {
	sizeByte, err := c.ReadByte()
	if err != nil {
		return blockHeader{}, err
	}
	if sizeByte == 0 {
		return blockHeader{}, ErrIndexIndicator
	}
	hdrLen := (int(sizeByte) + 1) * 4
	rest, err := c.Reserve(hdrLen - 1)
	if err != nil {
		return blockHeader{}, err
	}
	data := append([]byte{sizeByte}, rest...)

	if !meta {
		return unmarshalBlockBody(data, hdrLen, false)
	}

	crc := crc32.ChecksumIEEE(data[:hdrLen-4])
	if uint32LE(data[hdrLen-4:]) != crc {
		return blockHeader{}, ErrBlockChecksum
	}
	return unmarshalBlockBody(data, hdrLen, true)
}

func unmarshalBlockBody(data []byte, hdrLen int, meta bool) (h blockHeader, err error) {
	flags := data[1]
	if meta {
		if flags&blockReservedFlags != 0 {
			return blockHeader{}, ErrInvalidFlags
		}
		if flags&blockFilterCountMask != 0 {
			return blockHeader{}, ErrUnsupportedFilter
		}
	}

	i := 2
	if flags&blockCompressedPresent != 0 {
		// present but unused by this profile: skip the varint
		n, err := skipVarint(data[i : hdrLen-4])
		if err != nil {
			return blockHeader{}, err
		}
		i += n
	}
	if flags&blockUncompressedPresent != 0 {
		n, err := skipVarint(data[i : hdrLen-4])
		if err != nil {
			return blockHeader{}, err
		}
		i += n
	}

	// Filter: id (varint), size (varint), properties.
	filterID, n, err := readVarintSlice(data[i:hdrLen-4])
	if err != nil {
		return blockHeader{}, err
	}
	i += n
	if meta && filterID != lzma2FilterID {
		return blockHeader{}, ErrUnsupportedFilter
	}
	propSize, n, err := readVarintSlice(data[i:hdrLen-4])
	if err != nil {
		return blockHeader{}, err
	}
	i += n
	if propSize != 1 || i >= hdrLen-4 {
		return blockHeader{}, ErrUnsupportedFilter
	}
	h.dictSizeByte = data[i]
	i++

	if meta {
		for _, b := range data[i : hdrLen-4] {
			if b != 0 {
				return blockHeader{}, ErrPadding
			}
		}
	}
	h.headerLen = hdrLen
	return h, nil
}

// skipVarint reads (and discards) one varint from the front of p,
// returning the number of bytes it occupied.
func skipVarint(p []byte) (n int, err error) {
	_, n, err = readVarintBytes(p)
	return n, err
}

// readVarintSlice reads one varint from the front of p, returning its
// value and the number of bytes occupied.
func readVarintSlice(p []byte) (x uint64, n int, err error) {
	return readVarintBytes(p)
}

// readVarintBytes is the byte-slice counterpart of readVarint, used while
// unmarshalling a header we have already fully buffered.
func readVarintBytes(p []byte) (x uint64, n int, err error) {
	var shift uint
	for n = 0; n < maxVarintLen && n < len(p); n++ {
		b := p[n]
		if n == maxVarintLen-1 && b > 1 {
			return 0, 0, ErrVarint
		}
		x |= uint64(b&0x7f) << shift
		if b&0x80 == 0 {
			if b == 0 && n > 0 {
				return 0, 0, ErrVarint
			}
			return x, n + 1, nil
		}
		shift += 7
	}
	return 0, 0, ErrVarint
}

// dictSize decodes the LZMA2 filter's dictionary-size property byte per
// spec §6.4: dict = (2 + (d&1)) << ((d>>1) + 11), rejecting d > 39 (the
// profile's ceiling; d == 40 would require the unsupported 4 GiB-1
// dictionary).
func dictSize(d byte) (int64, error) {
	if d > 39 {
		return 0, ErrDictSize
	}
	n := int64(2 | (d & 1))
	return n << (uint(d>>1) + 11), nil
}
