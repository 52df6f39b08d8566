// Copyright 2015 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzma

import "io"

// eosDist is the reserved distance value (all ones) that would mark an
// explicit end of stream in classic LZMA. This profile forbids it: LZMA2
// streams end via the chunk control byte instead (see package lzma2).
const eosDist = 1<<32 - 1

// Decoder runs the LZMA engine for a single chunk: it decodes sequences
// (literal or match/rep) from a range coder and writes them into a Dict
// until the dictionary's chunk limit is reached.
type Decoder struct {
	st state
	rd rangeDecoder
}

// Reset discards all probabilities and the rep-distance stack and starts
// over with the given properties. Used for a chunk that requests a full
// or properties reset.
func (dec *Decoder) Reset(p Properties) {
	dec.st.reset(p)
}

// ResetState keeps the properties but reinitializes every probability to
// 0.5 and the rep stack to zero. Used for a chunk that requests a
// state-only reset.
func (dec *Decoder) ResetState() {
	dec.st.reset(dec.st.props)
}

// InitRangeCoder reads the 5-byte range coder header from r and prepares
// the decoder to consume exactly compressedSize-5 further bytes.
func (dec *Decoder) InitRangeCoder(r io.ByteReader, compressedSize int64) error {
	return initRangeDecoder(&dec.rd, r, compressedSize)
}

// Decode runs the engine until dict's chunk limit is reached, writing
// literals and matches into dict. It returns once dict.IsComplete()
// reports done, or on the first decode error.
func (dec *Decoder) Decode(dict *Dict) error {
	for {
		done, _ := dict.IsComplete()
		if done {
			break
		}
		if err := dec.decodeSequence(dict); err != nil {
			return err
		}
	}
	if !dec.rd.finished() {
		return ErrRangeCoderNotFinished
	}
	return nil
}

// decodeSequence decodes exactly one literal or match/rep event and
// applies it to dict.
func (dec *Decoder) decodeSequence(dict *Dict) error {
	s := &dec.st
	st, st2, posState := s.indices(dict.Position())

	b, err := dec.rd.decodeBit(&s.isMatch[st2])
	if err != nil {
		return err
	}
	if b == 0 {
		return dec.decodeLiteral(dict, st)
	}

	b, err = dec.rd.decodeBit(&s.isRep[st])
	if err != nil {
		return err
	}
	if b == 0 {
		return dec.decodeMatch(dict, posState)
	}
	return dec.decodeRep(dict, st, st2, posState)
}

func (dec *Decoder) decodeLiteral(dict *Dict, st uint32) error {
	s := &dec.st
	litState := s.litState(dict.ByteAt(1), dict.Position())
	match := dict.ByteAt(int(s.rep[0]) + 1)
	b, err := s.litCodec.decode(&dec.rd, st, match, litState)
	if err != nil {
		return err
	}
	if err := dict.PutLiteral(b); err != nil {
		return err
	}
	s.updateLiteral()
	if Debug != nil {
		Debug.Printf("literal %d: %#02x", dict.Position()-1, b)
	}
	return nil
}

func (dec *Decoder) decodeMatch(dict *Dict, posState uint32) error {
	s := &dec.st
	s.rep[3], s.rep[2], s.rep[1] = s.rep[2], s.rep[1], s.rep[0]
	s.updateMatch()

	n, err := s.lenCodec.decode(&dec.rd, posState)
	if err != nil {
		return err
	}
	distOff, err := s.distCodec.decode(&dec.rd, n)
	if err != nil {
		return err
	}
	if distOff == eosDist {
		return errEndMarker
	}
	s.rep[0] = distOff
	if Debug != nil {
		Debug.Printf("match %d: dist=%d len=%d", dict.Position(), distOff+1, n+minMatchLen)
	}
	return dict.CopyMatch(int(distOff)+1, int(n)+minMatchLen)
}

func (dec *Decoder) decodeRep(dict *Dict, st, st2, posState uint32) error {
	s := &dec.st

	b, err := dec.rd.decodeBit(&s.isRepG0[st])
	if err != nil {
		return err
	}
	dist := s.rep[0]
	if b == 0 {
		b, err = dec.rd.decodeBit(&s.isRepG0Long[st2])
		if err != nil {
			return err
		}
		if b == 0 {
			s.updateShortRep()
			return dict.CopyMatch(int(dist)+1, 1)
		}
	} else {
		b, err = dec.rd.decodeBit(&s.isRepG1[st])
		if err != nil {
			return err
		}
		if b == 0 {
			dist = s.rep[1]
		} else {
			b, err = dec.rd.decodeBit(&s.isRepG2[st])
			if err != nil {
				return err
			}
			if b == 0 {
				dist = s.rep[2]
			} else {
				dist = s.rep[3]
				s.rep[3] = s.rep[2]
			}
			s.rep[2] = s.rep[1]
		}
		s.rep[1] = s.rep[0]
		s.rep[0] = dist
	}

	n, err := s.repLenCodec.decode(&dec.rd, posState)
	if err != nil {
		return err
	}
	s.updateRep()
	return dict.CopyMatch(int(dist)+1, int(n)+minMatchLen)
}
