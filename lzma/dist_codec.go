// Copyright 2015 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzma

// Distance codec constants, per the classic LZMA position-slot scheme: a
// 6-bit slot (64 buckets total, grouped in 4 length-state banks)
// logarithmically buckets the distance; slots 4..13 refine with a
// per-slot reverse-tree model; slots 14..63 refine with direct-coded mid
// bits plus a single shared 4-bit reverse-tree (posAlign) for the low
// nibble.
const (
	lenStates     = 4
	startPosModel = 4
	endPosModel   = 14
	posSlotBits   = 6
	alignBits     = 4
)

// distCodec decodes match distances.
type distCodec struct {
	posSlot  [lenStates]treeDecoder
	posModel [endPosModel - startPosModel]treeReverseDecoder
	align    treeReverseDecoder
}

func (dc *distCodec) init() {
	for i := range dc.posSlot {
		dc.posSlot[i] = makeTreeDecoder(posSlotBits)
	}
	for i := range dc.posModel {
		slot := startPosModel + i
		bits := (slot >> 1) - 1
		dc.posModel[i] = makeTreeReverseDecoder(bits)
	}
	dc.align = makeTreeReverseDecoder(alignBits)
}

// lenState clamps a match-length offset to the four length-state banks
// used to pick a posSlot tree.
func lenState(n uint32) uint32 {
	if n >= lenStates {
		return lenStates - 1
	}
	return n
}

// decode reconstructs the distance offset (the true distance is offset+1)
// for a match whose length offset is n.
func (dc *distCodec) decode(d *rangeDecoder, n uint32) (dist uint32, err error) {
	slot, err := dc.posSlot[lenState(n)].decode(d)
	if err != nil {
		return 0, err
	}
	if slot < startPosModel {
		return slot, nil
	}

	bits := (slot >> 1) - 1
	dist = (2 | (slot & 1)) << bits

	if slot < endPosModel {
		u, err := dc.posModel[slot-startPosModel].decode(d)
		if err != nil {
			return 0, err
		}
		return dist + u, nil
	}

	u, err := d.decodeDirectBits(int(bits - alignBits))
	if err != nil {
		return 0, err
	}
	dist += u << alignBits

	u, err = dc.align.decode(d)
	if err != nil {
		return 0, err
	}
	return dist + u, nil
}
