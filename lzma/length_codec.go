// Copyright 2015 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzma

// maxPosBits is the number of bits of the position used to compute
// posState: position & ((1<<pb)-1), with pb fixed at 2 in this profile but
// the tables sized for the general case the teacher's code supports.
const maxPosBits = 4

// minMatchLen and maxMatchLen bound the match lengths this engine can
// produce: a two-byte minimum (anything shorter is cheaper as literals)
// and a 273-byte maximum (2 + 16 + 255, i.e. the high tree's largest
// 8-bit value stacked on top of the low/mid choices).
const (
	minMatchLen = 2
	maxMatchLen = minMatchLen + 16 + 256 - 1
)

// lengthCodec decodes the length of a match or rep: a two-bit choice
// selects between a low range [2,9], a mid range [10,17] and a high range
// [18,273], with the low and mid trees keyed by posState.
type lengthCodec struct {
	choice [2]prob
	low    [1 << maxPosBits]treeDecoder
	mid    [1 << maxPosBits]treeDecoder
	high   treeDecoder
}

func (lc *lengthCodec) init() {
	initProbSlice(lc.choice[:])
	for i := range lc.low {
		lc.low[i] = makeTreeDecoder(3)
	}
	for i := range lc.mid {
		lc.mid[i] = makeTreeDecoder(3)
	}
	lc.high = makeTreeDecoder(8)
}

func (lc *lengthCodec) decode(d *rangeDecoder, posState uint32) (n uint32, err error) {
	b, err := d.decodeBit(&lc.choice[0])
	if err != nil {
		return 0, err
	}
	if b == 0 {
		n, err = lc.low[posState].decode(d)
		return n, err
	}
	b, err = d.decodeBit(&lc.choice[1])
	if err != nil {
		return 0, err
	}
	if b == 0 {
		n, err = lc.mid[posState].decode(d)
		return n + 8, err
	}
	n, err = lc.high.decode(d)
	return n + 16, err
}
