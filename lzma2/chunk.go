// Copyright 2015 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzma2

import "github.com/tinyxz/xz/lzma"

// control is the single byte that opens every LZMA2 chunk.
type control byte

// Control byte layout. eosCtrl (0x00) ends the stream. copyResetDictCtrl
// and copyCtrl select an uncompressed chunk, rejected by this profile.
// Values 0x80-0xff select an LZMA chunk; bits 6:5 select the reset mode
// and bits 4:0 carry the high bits of uncompressedSize-1.
const (
	eosCtrl           control = 0x00
	copyResetDictCtrl control = 0x01
	copyCtrl          control = 0x02

	packedCtrl           control = 0x80 // no reset
	packedResetStateCtrl control = 0xa0 // state reset
	packedNewPropsCtrl   control = 0xc0 // state + properties reset
	packedResetDictCtrl  control = 0xe0 // state + properties + dictionary reset (full)

	packedMask control = 0xe0
)

func (c control) packed() bool { return c&0x80 != 0 }

func (c control) resetState() bool {
	return c.packed() && (c&packedMask) >= packedResetStateCtrl
}

func (c control) newProps() bool {
	return c.packed() && (c&packedMask) >= packedNewPropsCtrl
}

func (c control) resetDict() bool {
	return c.packed() && (c&packedMask) == packedResetDictCtrl
}

func (c control) unpackedSizeHighBits() int64 {
	return int64(c &^ packedMask)
}

// Size limits for a single LZMA2 chunk, per the two-byte big-endian
// fields the format allots each of them.
const (
	minUnpackedSize = 1
	maxUnpackedSize = 1 << 21
	minPackedSize   = 1
	maxPackedSize   = 1 << 16
)

// chunkHeader describes one decoded LZMA2 chunk control sequence.
type chunkHeader struct {
	ctrl             control
	uncompressedSize int64
	compressedSize   int64
	props            lzma.Properties
	hasProps         bool
}

// byteReader is satisfied by *cursor.Cursor; kept local and minimal so
// this package does not need to import cursor just for the type name.
type byteReader interface {
	ReadByte() (byte, error)
}

// readChunkHeader reads one chunk's control byte and, for an LZMA chunk,
// its four size bytes and optional property byte.
func readChunkHeader(r byteReader) (h chunkHeader, err error) {
	b, err := r.ReadByte()
	if err != nil {
		return chunkHeader{}, err
	}
	h.ctrl = control(b)

	switch {
	case h.ctrl == eosCtrl:
		return h, nil
	case h.ctrl == copyResetDictCtrl || h.ctrl == copyCtrl:
		return h, ErrUncompressedChunk
	case !h.ctrl.packed():
		return chunkHeader{}, ErrInvalidControl
	}

	info := make([]byte, 4)
	for i := range info {
		if info[i], err = r.ReadByte(); err != nil {
			return chunkHeader{}, err
		}
	}
	h.uncompressedSize = (h.ctrl.unpackedSizeHighBits()<<16 |
		int64(info[0])<<8 | int64(info[1])) + 1
	h.compressedSize = (int64(info[2])<<8 | int64(info[3])) + 1

	if !(minUnpackedSize <= h.uncompressedSize && h.uncompressedSize <= maxUnpackedSize) {
		return chunkHeader{}, ErrChunkSize
	}
	if !(minPackedSize <= h.compressedSize && h.compressedSize <= maxPackedSize) {
		return chunkHeader{}, ErrChunkSize
	}

	if h.ctrl.newProps() {
		pb, err := r.ReadByte()
		if err != nil {
			return chunkHeader{}, err
		}
		if pb != lzma.FixedProperties.Byte() {
			return chunkHeader{}, ErrPropertyByte
		}
		h.props = lzma.FixedProperties
		h.hasProps = true
	}
	return h, nil
}
