// Copyright 2021 The bit Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package bitarray

import (
	"fmt"

	"github.com/bpowers/bitarray/internal/bytesutil"
	"github.com/bpowers/bitarray/internal/unsafestring"
)

// ParseLiteral parses a compact test/debug notation of the form
// "<bits>" or "<bits>@<endian>", e.g. "1011" or "1011@little". It's
// the notation cmd/bitdump's -lit flag accepts; the input is split on
// the first '@' byte.
//
// The endian suffix, if present, overrides any WithEndian option.
func ParseLiteral(s string, opts ...Option) (*BitArray, error) {
	bits, endianSuffix, hasEndian := bytesutil.Cut(unsafestring.ToBytes(s), '@')
	if hasEndian {
		e, err := ParseEndian(string(endianSuffix))
		if err != nil {
			return nil, err
		}
		opts = append(opts[:len(opts):len(opts)], WithEndian(e))
	}
	a, err := New(string(bits), opts...)
	if err != nil {
		return nil, fmt.Errorf("parsing literal %q: %w", s, err)
	}
	return a, nil
}
