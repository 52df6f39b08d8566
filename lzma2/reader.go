// Copyright 2015 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzma2

import (
	"github.com/tinyxz/xz/cursor"
	"github.com/tinyxz/xz/lzma"
)

// Reader runs the chunk loop for one LZMA2 stream (one XZ block). It
// carries the lzma.Decoder across chunks so that a chunk without any
// reset continues with the probability model, state and rep stack the
// previous chunk left behind; state-only and properties resets
// reinitialize all three.
type Reader struct {
	dec       lzma.Decoder
	sawChunk  bool
	dictReset bool
}

// NewReader creates a Reader ready to decode the first chunk of a fresh
// LZMA2 stream.
func NewReader() *Reader {
	return &Reader{}
}

// Run decodes (or, in size-query mode, skips) every chunk up to and
// including the end-of-stream control byte, writing into dict unless
// sizeQuery is set. It returns the total uncompressed size of the
// stream.
func (r *Reader) Run(cur *cursor.Cursor, dict *lzma.Dict, sizeQuery bool) (int64, error) {
	var total int64
	for {
		h, err := readChunkHeader(cur)
		if err != nil {
			return total, err
		}
		if h.ctrl == eosCtrl {
			return total, nil
		}

		if !r.sawChunk && !h.ctrl.resetDict() {
			return total, ErrMissingReset
		}
		r.sawChunk = true

		switch {
		case h.ctrl.newProps():
			r.dec.Reset(h.props)
		case h.ctrl.resetState():
			r.dec.ResetState()
		}

		if sizeQuery {
			if _, err := cur.Reserve(int(h.compressedSize)); err != nil {
				return total, err
			}
			total += h.uncompressedSize
			continue
		}

		if err := dict.SetLimit(int(h.uncompressedSize)); err != nil {
			return total, err
		}
		if err := r.dec.InitRangeCoder(cur, h.compressedSize); err != nil {
			return total, err
		}
		if err := r.dec.Decode(dict); err != nil {
			return total, err
		}
		done, written := dict.IsComplete()
		if !done || int64(written) != h.uncompressedSize {
			return total, ErrChunkMismatch
		}
		total += h.uncompressedSize
	}
}
