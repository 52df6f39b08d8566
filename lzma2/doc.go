// Copyright 2015 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lzma2 reads the LZMA2 chunk framing used inside an XZ block: a
// control byte per chunk selects end-of-stream, an uncompressed chunk (not
// supported by this profile) or an LZMA chunk, optionally carrying a
// dictionary/state/properties reset. Each LZMA chunk's payload is handed
// to the lzma package's range-coded engine.
package lzma2
