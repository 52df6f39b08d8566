// Copyright 2015 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xz decompresses a restricted but common subset of the XZ
// container format: a single stream, a single block, whose sole filter is
// LZMA2 with properties fixed at lc=3, lp=0, pb=2.
//
// Decoding is single-shot and buffer-to-buffer: the caller supplies the
// full compressed input and a pre-sized output buffer. Calling Decode
// with an empty output buffer runs a size-query pass that validates
// framing and reports the uncompressed size without writing any bytes, so
// callers can size their output buffer up front (cmd/mzxzcat uses this
// two-pass allocate-then-decode pattern).
package xz
