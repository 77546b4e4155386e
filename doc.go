// Copyright 2021 The bit Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package bitarray implements a mutable, byte-packed sequence of
// single bit values.
//
// A BitArray stores n bits in ceil(n/8) bytes, addressing individual
// bits within a byte according to a per-instance Endian:
//
//	little: bit k of a byte is selected by 1 << k
//	big:    bit k of a byte is selected by 1 << (7-k)
//
// Endian only ever affects the order of bits *within* a byte -- byte
// order in the underlying buffer is unaffected. All region operations
// (Copy, Insert, Delete, Repeat, SetRange, Count, Find) work on
// half-open bit ranges [a, b) and take byte-aligned fast paths whenever
// possible. A copy whose source or destination offset is not a
// multiple of 8 is done bit by bit; there is no byte-shift path for
// unaligned offsets.
package bitarray
