// Copyright 2021 The bit Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/bpowers/bitarray"
)

func main() {
	var (
		pack   = flag.Bool("pack", false, "emit one output byte per bit instead of a '0'/'1' string")
		endian = flag.String("endian", "big", "bit order within each byte: little or big")
		lit    = flag.String("lit", "", "instead of reading stdin, decode a literal like 1011 or 1011@little")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	e, err := bitarray.ParseEndian(*endian)
	if err != nil {
		logger.Error("bad -endian flag", "err", err)
		os.Exit(1)
	}

	var a *bitarray.BitArray
	if *lit != "" {
		a, err = bitarray.ParseLiteral(*lit, bitarray.WithEndian(e))
		if err != nil {
			logger.Error("bad -lit flag", "err", err)
			os.Exit(1)
		}
	} else {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			logger.Error("reading stdin", "err", err)
			os.Exit(1)
		}
		a, err = bitarray.New(nil, bitarray.WithEndian(e))
		if err != nil {
			logger.Error("bitarray.New", "err", err)
			os.Exit(1)
		}
		if err := a.Frombytes(data); err != nil {
			logger.Error("Frombytes", "err", err)
			os.Exit(1)
		}
	}

	if *pack {
		os.Stdout.Write(a.Unpack(0x00, 0x01))
		return
	}
	fmt.Println(a.To01())
}
