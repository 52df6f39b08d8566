// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

// Command mzxzcat decompresses a single-block XZ stream to standard
// output, the way zcat decompresses gzip: one argument, the compressed
// file, or - (the default) for standard input.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/tinyxz/xz"
	"github.com/tinyxz/xz/gflag"
	"github.com/tinyxz/xz/lzma"
)

const usageStr = `Usage: mzxzcat [OPTION]... [FILE]
Decompress FILE, a single-block XZ stream, to standard output.

With no FILE, or when FILE is -, read standard input.
`

func usage(w io.Writer) {
	fmt.Fprint(w, usageStr)
	gflag.PrintDefaults()
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("mzxzcat: ")

	strict := gflag.BoolP("strict", "s", false, "reject structurally invalid input")
	maxDict := gflag.IntP("max-dict", "m", 0, "maximum accepted dictionary size in bytes")
	debug := gflag.BoolP("debug", "d", false, "trace every decoded literal and match to stderr")
	gflag.Usage = func() { usage(os.Stderr) }
	gflag.Parse()

	if *debug {
		lzma.DebugOn(os.Stderr)
	}

	path := "-"
	if gflag.NArg() > 0 {
		path = gflag.Arg(0)
	}

	var input []byte
	var err error
	if path == "-" {
		input, err = io.ReadAll(os.Stdin)
	} else {
		input, err = os.ReadFile(path)
	}
	if err != nil {
		log.Fatalf("reading %s: %s", path, err)
	}

	cfg := xz.Config{
		IntegrityChecks: *strict,
		MetaChecks:      *strict,
		MaxDictSize:     *maxDict,
	}
	dec := xz.NewDecoder(cfg)

	n, err := dec.Decode(input, nil)
	if err != nil {
		log.Fatalf("%s: %s", path, err)
	}

	output := make([]byte, n)
	if _, err = dec.Decode(input, output); err != nil {
		if dec.ChecksumError() {
			log.Fatalf("%s: checksum mismatch: %s", path, err)
		}
		log.Fatalf("%s: %s", path, err)
	}

	if _, err = os.Stdout.Write(output); err != nil {
		log.Fatalf("writing output: %s", err)
	}
}
