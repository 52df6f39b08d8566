// Copyright 2015 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xz

import (
	"errors"
	"hash/crc32"

	"github.com/tinyxz/xz/basics/i64"
	"github.com/tinyxz/xz/cursor"
	"github.com/tinyxz/xz/lzma"
	"github.com/tinyxz/xz/lzma2"
)

// defaultMaxDictSize bounds the dictionary size this decoder will accept
// from a block header, protecting a caller from an adversarial or
// malformed header demanding an unreasonably large output buffer.
const defaultMaxDictSize = 1 << 30

// Config selects the two independent validation toggles spec §6
// describes as compile-time knobs, exposed here as runtime fields, plus
// a ceiling on the dictionary size a block header may request.
type Config struct {
	// IntegrityChecks enables CRC-32 verification of the decompressed
	// block payload (when the stream carries a check). Either toggle
	// enables full validation of the stream header, its CRC-32 included.
	// The CRC-32s of the block header, index and stream footer are not
	// governed by IntegrityChecks: they are verified only when MetaChecks
	// is set.
	IntegrityChecks bool
	// MetaChecks enables structural validation of the block header,
	// index and footer, together with their CRC-32s. When false, the
	// decoder trusts the input's framing and only extracts what it needs
	// (dictionary size, chunk boundaries) to drive the LZMA2 engine.
	MetaChecks bool
	// MaxDictSize caps the dictionary size accepted from the block
	// header. Zero selects defaultMaxDictSize.
	MaxDictSize int
}

// SetDefaults fills MaxDictSize with its default if unset.
func (c *Config) SetDefaults() {
	if c.MaxDictSize <= 0 {
		c.MaxDictSize = defaultMaxDictSize
	}
}

// Decoder decodes single-block XZ streams into caller-provided buffers.
// A Decoder value is cheap and holds no state beyond its Config and the
// outcome of its most recent Decode call; independent goroutines must use
// independent Decoder values.
type Decoder struct {
	cfg         Config
	checksumErr bool
}

// NewDecoder creates a Decoder with the given configuration.
func NewDecoder(cfg Config) *Decoder {
	cfg.SetDefaults()
	return &Decoder{cfg: cfg}
}

// ChecksumError reports whether the most recent Decode call failed
// specifically because of a CRC-32 mismatch, as opposed to a structural
// or decode failure. It is only meaningful when cfg.IntegrityChecks is
// set, and is reset at the start of every Decode call.
func (d *Decoder) ChecksumError() bool { return d.checksumErr }

// isChecksumErr reports whether err is one of the CRC-32 mismatch
// sentinels this package returns.
func isChecksumErr(err error) bool {
	switch {
	case errors.Is(err, ErrHeaderChecksum),
		errors.Is(err, ErrFooterChecksum),
		errors.Is(err, ErrBlockChecksum),
		errors.Is(err, ErrIndexChecksum),
		errors.Is(err, ErrPayloadChecksum):
		return true
	default:
		return false
	}
}

// Decode decompresses input into output. If output is empty, Decode runs
// in size-query mode: it validates framing (subject to cfg) and returns
// the uncompressed size without writing anything. Otherwise output must
// be at least as large as the uncompressed payload, or Decode fails with
// ErrBufferTooSmall.
func (d *Decoder) Decode(input, output []byte) (n int, err error) {
	d.checksumErr = false
	defer func() {
		if errors.Is(err, cursor.ErrEndOfInput) {
			err = ErrTruncatedInput
		}
		if errors.Is(err, lzma.ErrOutputOverflow) {
			err = ErrBufferTooSmall
		}
		if err != nil {
			d.checksumErr = isChecksumErr(err)
		}
	}()

	sizeQuery := len(output) == 0
	c := cursor.New(input)

	checkType, err := readStreamHeader(c, d.cfg.IntegrityChecks || d.cfg.MetaChecks)
	if err != nil {
		return 0, err
	}
	if checkType != checkNone && checkType != checkCRC32 {
		return 0, ErrInvalidFlags
	}

	blockStart := c.Pos()
	bh, err := readBlockHeader(c, d.cfg.MetaChecks)
	if err != nil {
		return 0, err
	}
	dsize, err := dictSize(bh.dictSizeByte)
	if err != nil {
		return 0, err
	}
	if dsize > int64(d.cfg.MaxDictSize) {
		return 0, ErrDictTooLarge
	}

	var dict *lzma.Dict
	if !sizeQuery {
		dict = lzma.InitDict(output)
	}

	r := lzma2.NewReader()
	uncompressedSize, err := r.Run(c, dict, sizeQuery)
	if err != nil {
		return 0, err
	}
	if !sizeQuery && uncompressedSize > int64(len(output)) {
		return 0, ErrBufferTooSmall
	}

	payloadEnd := c.Pos()
	if err = c.Align4(); err != nil {
		return 0, err
	}

	checkLen := checkSize(checkType)
	if checkLen > 0 {
		sum, err := c.Reserve(checkLen)
		if err != nil {
			return 0, err
		}
		if checkType == checkCRC32 && !sizeQuery && d.cfg.IntegrityChecks {
			want := uint32LE(sum)
			got := crc32.ChecksumIEEE(output[:uncompressedSize])
			if want != got {
				return 0, ErrPayloadChecksum
			}
		}
	}

	unpaddedSize, overflow := i64.Add(int64(payloadEnd-blockStart), int64(checkLen))
	if overflow {
		return 0, ErrIndexMismatch
	}
	indexLen, err := readIndex(c, d.cfg.MetaChecks, unpaddedSize, uncompressedSize)
	if err != nil {
		return 0, err
	}
	declaredIndexSize, err := readStreamFooter(c, d.cfg.MetaChecks, checkType)
	if err != nil {
		return 0, err
	}
	if d.cfg.MetaChecks && declaredIndexSize != int64(indexLen) {
		return 0, ErrBackwardSize
	}

	return int(uncompressedSize), nil
}
