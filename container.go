// Copyright 2021 The bit Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package bitarray

import (
	"fmt"

	"github.com/bpowers/bitarray/internal/unsafestring"
)

// Append adds a single bit (0 or 1) to the end of the array.
func (a *BitArray) Append(v int) error {
	if v != 0 && v != 1 {
		return fmt.Errorf("%w: bit value must be 0 or 1, got %d", ErrBadValue, v)
	}
	i := a.n
	a.resizeBits(a.n + 1)
	a.set(i, v)
	return nil
}

// Extend appends bits from obj to the end of the array. obj may be:
//
//	*BitArray -- appended by logical bit value (endian-agnostic)
//	string    -- '0'/'1' digits; '_', ' ', '\t', '\n', '\r', '\v' are
//	             ignored; any other rune is a BadValue error
//	[]int     -- each element must be 0 or 1
//
// Any other type is a TypeMismatch error. Raw bytes ([]byte) are
// rejected -- use Frombytes or Pack. If parsing an string or []int
// fails partway through, the array is left at its original length.
func (a *BitArray) Extend(obj any) error {
	switch v := obj.(type) {
	case *BitArray:
		return a.extendBitArray(v)
	case string:
		return a.extendString(v)
	case []int:
		return a.extendInts(v)
	case []byte:
		return fmt.Errorf("%w: cannot Extend from raw bytes; use Frombytes or Pack", ErrTypeMismatch)
	default:
		return fmt.Errorf("%w: cannot Extend from %T", ErrTypeMismatch, obj)
	}
}

func (a *BitArray) extendBitArray(src *BitArray) error {
	if src.n == 0 {
		return nil
	}
	start := a.n
	a.resizeBits(a.n + src.n)
	a.copyN(start, src, 0, src.n)
	return nil
}

// extendString parses digits out of s, ignoring the whitespace and
// underscore separators the format allows, using the zero-copy
// unsafestring view since the parse never needs to hold onto s.
func (a *BitArray) extendString(s string) error {
	origN := a.n
	buf := unsafestring.ToBytes(s)
	for _, c := range buf {
		switch c {
		case '_', ' ', '\t', '\n', '\r', '\v':
			continue
		case '0':
			if err := a.Append(0); err != nil {
				a.resizeBits(origN)
				return err
			}
		case '1':
			if err := a.Append(1); err != nil {
				a.resizeBits(origN)
				return err
			}
		default:
			a.resizeBits(origN)
			return fmt.Errorf("%w: invalid character %q in bit string", ErrBadValue, c)
		}
	}
	return nil
}

func (a *BitArray) extendInts(bits []int) error {
	origN := a.n
	for _, v := range bits {
		if v != 0 && v != 1 {
			a.resizeBits(origN)
			return fmt.Errorf("%w: bit value must be 0 or 1, got %d", ErrBadValue, v)
		}
	}
	start := a.n
	a.resizeBits(a.n + len(bits))
	for i, v := range bits {
		a.set(start+i, v)
	}
	return nil
}

// normalizeIndex wraps a negative index and bounds-checks it against
// [0, n) (or [0, n] when allowEnd is set, for Insert-style positions).
func normalizeIndex(i, n int, allowEnd bool) (int, error) {
	if i < 0 {
		i += n
	}
	max := n - 1
	if allowEnd {
		max = n
	}
	if i < 0 || i > max {
		return 0, fmt.Errorf("%w: index %d out of range for length %d", ErrOutOfRange, i, n)
	}
	return i, nil
}

// Insert inserts a single bit of value v immediately before index i.
// Negative i wraps from the end; i == Len() appends.
func (a *BitArray) Insert(i, v int) error {
	if v != 0 && v != 1 {
		return fmt.Errorf("%w: bit value must be 0 or 1, got %d", ErrBadValue, v)
	}
	idx, err := normalizeIndex(i, a.n, true)
	if err != nil {
		return err
	}
	a.insertN(idx, 1)
	a.set(idx, v)
	return nil
}

// Pop removes and returns the bit at index i (negative wraps from the
// end). It errors if the array is empty or i is out of range.
func (a *BitArray) Pop(i int) (int, error) {
	if a.n == 0 {
		return 0, fmt.Errorf("%w: pop from empty BitArray", ErrBadValue)
	}
	idx, err := normalizeIndex(i, a.n, false)
	if err != nil {
		return 0, err
	}
	v := a.get(idx)
	a.deleteN(idx, 1)
	return v, nil
}

// Remove deletes the first occurrence of bit value v, erroring if v is
// not present.
func (a *BitArray) Remove(v int) error {
	if v != 0 && v != 1 {
		return fmt.Errorf("%w: bit value must be 0 or 1, got %d", ErrBadValue, v)
	}
	i := a.findBit(v, 0, a.n)
	if i < 0 {
		return fmt.Errorf("%w: %d not in BitArray", ErrBadValue, v)
	}
	a.deleteN(i, 1)
	return nil
}

// Invert flips every bit in the array (XOR with 0xff byte-wise) when
// called with no argument, or flips just the single bit at index i
// when one is given.
func (a *BitArray) Invert(i ...int) error {
	if len(i) == 0 {
		for b := range a.buf {
			a.buf[b] = ^a.buf[b]
		}
		return nil
	}
	if len(i) > 1 {
		return fmt.Errorf("%w: Invert takes at most one index", ErrTypeMismatch)
	}
	idx, err := normalizeIndex(i[0], a.n, false)
	if err != nil {
		return err
	}
	a.set(idx, 1-a.get(idx))
	return nil
}

// Reverse reverses the order of bits in place via a two-pointer swap.
func (a *BitArray) Reverse() {
	i, j := 0, a.n-1
	for i < j {
		vi, vj := a.get(i), a.get(j)
		a.set(i, vj)
		a.set(j, vi)
		i++
		j--
	}
}

// Sort performs a counting sort: all zeros first, then all ones
// (reverse=false), or the opposite order (reverse=true).
func (a *BitArray) Sort(reverse bool) {
	ones := a.countRange(1, 0, a.n)
	zeros := a.n - ones
	if !reverse {
		a.setRange(0, zeros, 0)
		a.setRange(zeros, a.n, 1)
	} else {
		a.setRange(0, ones, 1)
		a.setRange(ones, a.n, 0)
	}
}

// SetAll sets every bit in the array to v via a straight buffer
// memset.
func (a *BitArray) SetAll(v int) error {
	if v != 0 && v != 1 {
		return fmt.Errorf("%w: bit value must be 0 or 1, got %d", ErrBadValue, v)
	}
	fill := byte(0x00)
	if v != 0 {
		fill = 0xff
	}
	for i := range a.buf {
		a.buf[i] = fill
	}
	return nil
}

// Fill zeroes the pad bits and grows n to the next multiple of 8,
// returning how many pad bits were added.
func (a *BitArray) Fill() int {
	pad := (8 - a.n%8) % 8
	if pad == 0 {
		return 0
	}
	a.setUnused()
	a.n += pad
	return pad
}

// All reports whether every bit in the array is 1 (vacuously true for
// an empty array).
func (a *BitArray) All() bool {
	return a.findBit(0, 0, a.n) < 0
}

// Any reports whether at least one bit is 1.
func (a *BitArray) Any() bool {
	return a.findBit(1, 0, a.n) >= 0
}

// Count counts occurrences of v within the bit range selected by sl
// (an empty Slice{} means the whole array with step 1).
func (a *BitArray) Count(v int, sl Slice) (int, error) {
	if v != 0 && v != 1 {
		return 0, fmt.Errorf("%w: bit value must be 0 or 1, got %d", ErrBadValue, v)
	}
	start, stop, step, length, err := sl.resolve(a.n)
	if err != nil {
		return 0, err
	}
	if length == 0 {
		return 0, nil
	}
	if step == 1 {
		return a.countRange(v, start, stop), nil
	}
	aStart, aStop, aStep := toAscending(start, stop, step, length)
	if aStep == 1 {
		return a.countRange(v, aStart, aStop), nil
	}
	count := 0
	for i := aStart; i < aStop; i += aStep {
		count += a.get(i)
	}
	if v == 0 {
		return length - count, nil
	}
	return count, nil
}

// Copy returns a deep copy of a, including its endian.
func (a *BitArray) Copy() *BitArray {
	buf := make([]byte, len(a.buf))
	copy(buf, a.buf)
	return &BitArray{n: a.n, buf: buf, endian: a.endian}
}

// Concat returns a new BitArray holding a's bits followed by b's,
// using a's endian (equivalent to Copy().Extend(b), which is exactly
// how it's implemented).
func (a *BitArray) Concat(b *BitArray) (*BitArray, error) {
	out := a.Copy()
	if err := out.Extend(b); err != nil {
		return nil, err
	}
	return out, nil
}

// Repeat grows or shrinks a in place to represent m concatenated
// copies of its current contents (m <= 0 clears it).
func (a *BitArray) Repeat(m int) error {
	return a.repeat(m)
}

// Repeated returns a new BitArray holding m concatenated copies of a's
// current contents, leaving a unchanged.
func (a *BitArray) Repeated(m int) (*BitArray, error) {
	out := a.Copy()
	if err := out.repeat(m); err != nil {
		return nil, err
	}
	return out, nil
}
