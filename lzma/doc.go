// Copyright 2015 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lzma implements the classic LZMA decoding engine used by a
// single LZMA2 chunk: the range coder, the probability-model context
// tables, the literal/match/rep state machine and the sliding-window
// dictionary. Properties are fixed at lc=3, lp=0, pb=2, matching the
// profile the lzma2 package restricts itself to.
package lzma
