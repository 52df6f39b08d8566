// Copyright 2015 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzma

// treeDecoder decodes a value of the given bit-width using a balanced
// binary tree of probabilities, most-significant bit first. The tree has
// 2^bits leaves and is addressed starting at index 1.
type treeDecoder struct {
	probs []prob
	bits  int
}

func makeTreeDecoder(bits int) treeDecoder {
	t := treeDecoder{bits: bits, probs: make([]prob, 1<<uint(bits))}
	initProbSlice(t.probs)
	return t
}

func (t *treeDecoder) decode(d *rangeDecoder) (v uint32, err error) {
	m := uint32(1)
	for i := 0; i < t.bits; i++ {
		b, err := d.decodeBit(&t.probs[m])
		if err != nil {
			return 0, err
		}
		m = (m << 1) | b
	}
	return m - (1 << uint(t.bits)), nil
}

// treeReverseDecoder is a treeDecoder variant that emits bits
// least-significant first; used for the low distance bits and for the
// per-slot position models.
type treeReverseDecoder struct {
	probs []prob
	bits  int
}

func makeTreeReverseDecoder(bits int) treeReverseDecoder {
	t := treeReverseDecoder{bits: bits, probs: make([]prob, 1<<uint(bits))}
	initProbSlice(t.probs)
	return t
}

func (t *treeReverseDecoder) decode(d *rangeDecoder) (v uint32, err error) {
	m := uint32(1)
	for i := 0; i < t.bits; i++ {
		b, err := d.decodeBit(&t.probs[m])
		if err != nil {
			return 0, err
		}
		m = (m << 1) | b
		v |= b << uint(i)
	}
	return v, nil
}

// initProbSlice resets every probability in p to 0.5.
func initProbSlice(p []prob) {
	for i := range p {
		p[i] = probInit
	}
}
