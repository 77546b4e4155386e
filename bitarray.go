// Copyright 2021 The bit Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package bitarray

import (
	"fmt"

	"github.com/bpowers/bitarray/internal/zero"
)

// BitArray is a mutable, ordered sequence of single-bit values,
// stored byte-packed with an explicit intra-byte bit order (Endian).
// The zero value is not valid; construct one with New or one of its
// typed wrappers.
type BitArray struct {
	n      int
	buf    []byte
	endian Endian
}

// bytesLen returns ceil(n/8), the number of storage bytes needed to
// hold n bits.
func bytesLen(n int) int {
	return (n + 7) / 8
}

// growCap picks a storage capacity (in bytes) for a buffer that needs
// to hold at least need bytes, growing geometrically so repeated small
// appends (Append, Insert, Extend) don't reallocate every call.
func growCap(need int) int {
	if need < 64 {
		return 64
	}
	return need + need/2
}

// resizeBits grows or shrinks the array to hold exactly newN bits.
// Newly created bits are left unspecified (pad-bit invariant applies
// only to the trailing byte, not to freshly grown interior bits).
// When shrinking substantially, the backing array is reallocated so
// the freed memory can actually be released.
func (a *BitArray) resizeBits(newN int) {
	if newN < 0 {
		panic("bitarray: resizeBits with negative length")
	}
	newLen := bytesLen(newN)
	oldLen := len(a.buf)

	switch {
	case newLen > oldLen:
		if newLen <= cap(a.buf) {
			grown := a.buf[:newLen]
			zero.Bytes(grown[oldLen:])
			a.buf = grown
		} else {
			buf := make([]byte, newLen, growCap(newLen))
			copy(buf, a.buf)
			a.buf = buf
		}
	case newLen < oldLen:
		// shrink significantly enough that we should actually
		// release the backing memory rather than just reslicing.
		if cap(a.buf) > 4*newLen && cap(a.buf)-newLen > 64 {
			buf := make([]byte, newLen)
			copy(buf, a.buf[:newLen])
			a.buf = buf
		} else {
			a.buf = a.buf[:newLen]
		}
	}
	a.n = newN
}

func resolveEndian(o options) Endian {
	if o.endianSet {
		return o.endian
	}
	return DefaultEndian()
}

// New constructs a BitArray from a heterogeneous initializer, mirroring
// the source library's tagged-dispatch constructor:
//
//	nil        -> empty array
//	int/int64  -> length-k array of all zero bits (k must be >= 0)
//	string     -> parsed as a sequence of '0'/'1' digits (see Extend)
//	[]int      -> one bit per element, each must be 0 or 1
//	*BitArray  -> a deep copy (see the WithEndian doc for endian rules)
//	bool, []byte, and any other type are rejected with ErrTypeMismatch;
//	use Pack or Frombytes to build a BitArray from raw bytes.
func New(initial any, opts ...Option) (*BitArray, error) {
	o := resolveOptions(opts)
	switch v := initial.(type) {
	case nil:
		return &BitArray{endian: resolveEndian(o)}, nil
	case bool:
		return nil, fmt.Errorf("%w: cannot create BitArray from bool", ErrTypeMismatch)
	case []byte:
		return nil, fmt.Errorf("%w: cannot create BitArray from raw bytes; use Frombytes or Pack", ErrTypeMismatch)
	case int:
		return newZeroed(v, o)
	case int64:
		return newZeroed(int(v), o)
	case string:
		a := &BitArray{endian: resolveEndian(o)}
		if err := a.Extend(v); err != nil {
			return nil, err
		}
		return a, nil
	case []int:
		a := &BitArray{endian: resolveEndian(o)}
		if err := a.Extend(v); err != nil {
			return nil, err
		}
		return a, nil
	case *BitArray:
		return newFromBitArray(v, o)
	default:
		return nil, fmt.Errorf("%w: unsupported initializer type %T", ErrTypeMismatch, initial)
	}
}

func newZeroed(n int, o options) (*BitArray, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: non-negative integer expected, got %d", ErrBadValue, n)
	}
	return &BitArray{n: n, buf: make([]byte, bytesLen(n)), endian: resolveEndian(o)}, nil
}

func newFromBitArray(src *BitArray, o options) (*BitArray, error) {
	e := src.endian
	if o.endianSet {
		e = o.endian
	}
	buf := make([]byte, len(src.buf))
	copy(buf, src.buf)
	if e != src.endian {
		byteReverseBytes(buf, 0, len(buf))
	}
	return &BitArray{n: src.n, buf: buf, endian: e}, nil
}

// NewLen is a typed convenience wrapper around New for the common case
// of constructing a zeroed array of a known length.
func NewLen(n int, opts ...Option) (*BitArray, error) {
	return New(n, opts...)
}

// NewFromString is a typed convenience wrapper around New for parsing
// a '0'/'1' string.
func NewFromString(s string, opts ...Option) (*BitArray, error) {
	return New(s, opts...)
}

// NewFromInts is a typed convenience wrapper around New for building a
// BitArray from a slice of 0/1 ints.
func NewFromInts(bits []int, opts ...Option) (*BitArray, error) {
	return New(bits, opts...)
}

// Len returns the number of bits in the array.
func (a *BitArray) Len() int {
	return a.n
}

// Endian returns the bit order used within each storage byte.
func (a *BitArray) Endian() Endian {
	return a.endian
}
