// Copyright 2015 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzma

import "io"

// movebits defines the number of bits used for the updates of probability
// values.
const movebits = 5

// probbits defines the number of bits of a probability value.
const probbits = 11

// probInit is the initial value of a probability, representing 0.5.
const probInit prob = 1 << (probbits - 1)

// prob represents an 11-bit probability stored in 16 bits.
type prob uint16

// dec decreases the probability, proportional to its current value.
func (p *prob) dec() {
	*p -= *p >> movebits
}

// inc increases the probability, proportional to the distance from 1.
func (p *prob) inc() {
	*p += ((1 << probbits) - *p) >> movebits
}

// bound computes the bound that splits the range r according to p.
func (p prob) bound(r uint32) uint32 {
	return (r >> probbits) * uint32(p)
}

// rangeDecoder implements the LZMA arithmetic decoder: a 32-bit interval
// [0, range_) narrowed bit by bit, normalized whenever it drops below 2^24.
type rangeDecoder struct {
	r         io.ByteReader
	range_    uint32
	code      uint32
	remaining int64
}

// initRangeDecoder reads the 5-byte range coder header (a mandatory zero
// byte followed by the big-endian initial code) and sets up a decoder whose
// compressed budget is compressedSize-5 bytes.
func initRangeDecoder(rd *rangeDecoder, r io.ByteReader, compressedSize int64) error {
	*rd = rangeDecoder{r: r, range_: 0xffffffff}
	b, err := r.ReadByte()
	if err != nil {
		return err
	}
	if b != 0 {
		return errNonZeroHeader
	}
	for i := 0; i < 4; i++ {
		if err = rd.updateCode(); err != nil {
			return err
		}
	}
	rd.remaining = compressedSize - 5
	return nil
}

func (d *rangeDecoder) updateCode() error {
	b, err := d.r.ReadByte()
	if err != nil {
		return err
	}
	d.code = (d.code << 8) | uint32(b)
	return nil
}

// normalize shifts in a new input byte whenever the range has narrowed
// below 2^24, keeping code < range_.
func (d *rangeDecoder) normalize() error {
	const top = 1 << 24
	if d.range_ < top {
		d.range_ <<= 8
		d.remaining--
		if err := d.updateCode(); err != nil {
			return err
		}
	}
	return nil
}

// decodeBit decodes a single probability-adaptive bit and updates p.
func (d *rangeDecoder) decodeBit(p *prob) (b uint32, err error) {
	bound := p.bound(d.range_)
	if d.code < bound {
		d.range_ = bound
		p.inc()
		b = 0
	} else {
		d.code -= bound
		d.range_ -= bound
		p.dec()
		b = 1
	}
	if err = d.normalize(); err != nil {
		return 0, err
	}
	return b, nil
}

// decodeDirect decodes a single equal-probability bit, used for the raw
// mid bits of large match distances.
func (d *rangeDecoder) decodeDirect() (b uint32, err error) {
	d.range_ >>= 1
	d.code -= d.range_
	t := 0 - (d.code >> 31)
	d.code += d.range_ & t
	if err = d.normalize(); err != nil {
		return 0, err
	}
	return (t + 1) & 1, nil
}

// decodeDirectBits decodes n equal-probability bits, most significant
// first.
func (d *rangeDecoder) decodeDirectBits(n int) (v uint32, err error) {
	for i := 0; i < n; i++ {
		b, err := d.decodeDirect()
		if err != nil {
			return 0, err
		}
		v = (v << 1) | b
	}
	return v, nil
}

// finished reports whether the range coder has consumed exactly its
// compressed budget and settled at code == 0, as required at chunk end.
func (d *rangeDecoder) finished() bool {
	return d.code == 0 && d.remaining == 0
}
