// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package xz

import (
	"errors"
	"io"
	"sync"

	"github.com/tinyxz/xz/cursor"
	"github.com/tinyxz/xz/lzma2"
)

// Info parses the stream header, block header, index and stream footer of
// input without decoding: the LZMA2 chunk headers are walked in size-query
// mode and the LZMA engine is never run. It returns the uncompressed size
// (the chunks' total, which the index must declare too) and the dictionary
// size the block header requests.
// It is grounded on the teacher's walker/info.go inspector, reduced to
// this profile's single block.
func Info(input []byte) (uncompressedSize int64, dictSizeOut int64, err error) {
	defer func() {
		if errors.Is(err, cursor.ErrEndOfInput) {
			err = ErrTruncatedInput
		}
	}()

	c := cursor.New(input)

	checkType, err := readStreamHeader(c, true)
	if err != nil {
		return 0, 0, err
	}

	blockStart := c.Pos()
	bh, err := readBlockHeader(c, true)
	if err != nil {
		return 0, 0, err
	}
	dictSizeOut, err = dictSize(bh.dictSizeByte)
	if err != nil {
		return 0, 0, err
	}

	r := lzma2.NewReader()
	uncompressedSize, err = r.Run(c, nil, true)
	if err != nil {
		return 0, 0, err
	}

	payloadEnd := c.Pos()
	if err = c.Align4(); err != nil {
		return 0, 0, err
	}
	checkLen := checkSize(checkType)
	if checkLen > 0 {
		if _, err = c.Reserve(checkLen); err != nil {
			return 0, 0, err
		}
	}

	unpaddedSize := int64(payloadEnd-blockStart) + int64(checkLen)
	indexLen, err := readIndex(c, true, unpaddedSize, uncompressedSize)
	if err != nil {
		return 0, 0, err
	}
	declaredIndexSize, err := readStreamFooter(c, true, checkType)
	if err != nil {
		return 0, 0, err
	}
	if declaredIndexSize != int64(indexLen) {
		return 0, 0, ErrBackwardSize
	}

	return uncompressedSize, dictSizeOut, nil
}

// BufferReader is a read-only io.Reader and io.ReaderAt over an already
// decoded buffer, matching the teacher's ReaderAt ergonomics for random
// access into decompressed output without re-running the LZMA2 engine.
type BufferReader struct {
	mu  sync.Mutex
	buf []byte
	pos int64
}

// NewBufferReader wraps buf for sequential and random reads. It does not
// copy buf; the caller must not mutate it while the reader is in use.
func NewBufferReader(buf []byte) *BufferReader {
	return &BufferReader{buf: buf}
}

// Read implements io.Reader, advancing the reader's internal offset.
func (r *BufferReader) Read(p []byte) (n int, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.pos >= int64(len(r.buf)) {
		return 0, io.EOF
	}
	n = copy(p, r.buf[r.pos:])
	r.pos += int64(n)
	return n, nil
}

// ReadAt implements io.ReaderAt and does not affect the offset Read uses.
func (r *BufferReader) ReadAt(p []byte, off int64) (n int, err error) {
	if off < 0 {
		return 0, ErrBufferTooSmall
	}
	if off >= int64(len(r.buf)) {
		return 0, io.EOF
	}
	n = copy(p, r.buf[off:])
	if n < len(p) {
		err = io.EOF
	}
	return n, err
}
