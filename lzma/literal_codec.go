// Copyright 2015 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzma

// literalCodec decodes literal bytes. It holds 0x300 (768) probabilities
// per literal-state slot: the low 0x100 form a plain 8-bit tree used for
// the first literal after another literal, and the full 0x300 are used
// (XORed against the match byte) for a literal that follows a match or
// rep, per the matched-literal decoding mode.
type literalCodec struct {
	probs []prob
}

// fixed profile: lc=3, lp=0 -> eight 0x300-entry slots (litState is the
// previous byte's top three bits, prev>>5), but we size generically off
// lc/lp to keep the table-layout logic honest and testable independent of the profile
// restriction enforced one layer up.
func (c *literalCodec) init(lc, lp int) {
	c.probs = make([]prob, 0x300<<uint(lc+lp))
	initProbSlice(c.probs)
}

// decode decodes a literal byte. state is the engine's current state
// (>=7 selects matched-literal mode), match is the byte at distance
// rep0+1 in the dictionary, and litState addresses the probability slot.
func (c *literalCodec) decode(d *rangeDecoder, state uint32, match byte, litState uint32) (s byte, err error) {
	k := litState * 0x300
	probs := c.probs[k : k+0x300]
	symbol := uint32(1)
	if state >= 7 {
		m := uint32(match)
		for {
			matchBit := (m >> 7) & 1
			m <<= 1
			i := ((1 + matchBit) << 8) | symbol
			bit, err := d.decodeBit(&probs[i])
			if err != nil {
				return 0, err
			}
			symbol = (symbol << 1) | bit
			if matchBit != bit {
				break
			}
			if symbol >= 0x100 {
				break
			}
		}
	}
	for symbol < 0x100 {
		bit, err := d.decodeBit(&probs[symbol])
		if err != nil {
			return 0, err
		}
		symbol = (symbol << 1) | bit
	}
	return byte(symbol - 0x100), nil
}
