// Copyright 2015 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzma

import (
	"io"
	"log"

	"github.com/tinyxz/xz/xlog"
)

// Debug receives a trace of every decoded literal and match when non-nil;
// rep and short-rep copies are not traced. It is nil by default, matching the teacher's convention that
// debug tracing carries no cost until switched on.
var Debug xlog.Logger

// DebugOn directs the trace at w. DebugOn(nil) is equivalent to DebugOff.
func DebugOn(w io.Writer) {
	if w == nil {
		Debug = nil
		return
	}
	Debug = log.New(w, "lzma: ", 0)
}

// DebugOff silences the trace.
func DebugOff() { Debug = nil }
