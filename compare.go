// Copyright 2021 The bit Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package bitarray

import (
	"bytes"
	"fmt"
)

// Compare returns -1, 0, or 1 as a is less than, equal to, or greater
// than b, comparing bit by logical index (endian-agnostic) with the
// shorter array ordering first when one is a prefix of the other.
func (a *BitArray) Compare(b *BitArray) int {
	minLen := a.n
	if b.n < minLen {
		minLen = b.n
	}
	for i := 0; i < minLen; i++ {
		av, bv := a.get(i), b.get(i)
		if av != bv {
			if av < bv {
				return -1
			}
			return 1
		}
	}
	switch {
	case a.n < b.n:
		return -1
	case a.n > b.n:
		return 1
	default:
		return 0
	}
}

// Equal reports whether a and b hold the same bit sequence. When both
// share an endian, this takes a byte-compare fast path over the fully
// used bytes plus a masked compare of the trailing byte; otherwise it
// falls back to Compare.
func (a *BitArray) Equal(b *BitArray) bool {
	if a.n != b.n {
		return false
	}
	if a.n == 0 {
		return true
	}
	if a.endian == b.endian {
		full := a.n / 8
		if !bytes.Equal(a.buf[:full], b.buf[:full]) {
			return false
		}
		return a.zeroedLastByte() == b.zeroedLastByte()
	}
	return a.Compare(b) == 0
}

// Find returns the smallest index in [lo, hi) (or [lo, hi-needle.Len()]
// for a *BitArray needle) at which needle occurs, or -1 if it doesn't.
// needle must be an int bit value (0 or 1) or a *BitArray.
func (a *BitArray) Find(needle any, lo, hi int) (int, error) {
	switch v := needle.(type) {
	case int:
		if v != 0 && v != 1 {
			return -1, fmt.Errorf("%w: bit value must be 0 or 1, got %d", ErrBadValue, v)
		}
		return a.findBit(v, lo, hi), nil
	case *BitArray:
		return a.find(v, lo, hi), nil
	default:
		return -1, fmt.Errorf("%w: cannot search for %T", ErrTypeMismatch, needle)
	}
}

// FindAny is Find over the whole array.
func (a *BitArray) FindAny(needle any) (int, error) {
	return a.Find(needle, 0, a.n)
}

// Index is like Find but returns a BadValue error instead of -1 when
// needle isn't present.
func (a *BitArray) Index(needle any, lo, hi int) (int, error) {
	idx, err := a.Find(needle, lo, hi)
	if err != nil {
		return -1, err
	}
	if idx < 0 {
		return -1, fmt.Errorf("%w: %v is not in BitArray", ErrBadValue, needle)
	}
	return idx, nil
}

// Contains reports whether needle (an int bit value or a *BitArray)
// occurs anywhere in a.
func (a *BitArray) Contains(needle any) (bool, error) {
	idx, err := a.FindAny(needle)
	if err != nil {
		return false, err
	}
	return idx >= 0, nil
}
