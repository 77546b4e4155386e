// Copyright 2021 The bit Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package bitarray

import "fmt"

// Get returns the bit at index i (negative wraps from the end).
func (a *BitArray) Get(i int) (int, error) {
	idx, err := normalizeIndex(i, a.n, false)
	if err != nil {
		return 0, err
	}
	return a.get(idx), nil
}

// SetBit sets the bit at index i to v (negative wraps from the end).
func (a *BitArray) SetBit(i, v int) error {
	if v != 0 && v != 1 {
		return fmt.Errorf("%w: bit value must be 0 or 1, got %d", ErrBadValue, v)
	}
	idx, err := normalizeIndex(i, a.n, false)
	if err != nil {
		return err
	}
	a.set(idx, v)
	return nil
}

// GetSlice returns a new BitArray (with a's endian) holding the bits
// selected by sl. A unit step copies through the region engine's copyN
// (a byte-aligned bulk copy when the slice starts on a multiple of 8);
// any other step is gathered bit by bit.
func (a *BitArray) GetSlice(sl Slice) (*BitArray, error) {
	start, _, step, length, err := sl.resolve(a.n)
	if err != nil {
		return nil, err
	}
	out := &BitArray{n: length, buf: make([]byte, bytesLen(length)), endian: a.endian}
	if length == 0 {
		return out, nil
	}
	if step == 1 {
		out.copyN(0, a, start, length)
		return out, nil
	}
	idx := start
	for i := 0; i < length; i++ {
		out.set(i, a.get(idx))
		idx += step
	}
	return out, nil
}

// SetSlice assigns into the bit range selected by sl. src must be
// either a *BitArray or an int bit value (0 or 1).
//
// Assigning a *BitArray into a unit-step slice resizes the destination
// (via Insert/Delete) to match the source's length before copying, so
// `a[2:6] = shorterOrLonger` is legal and changes a.Len(). Assigning
// into an extended (non-unit-step) slice requires the source to have
// exactly as many bits as the slice selects.
//
// Passing a src that aliases a itself (the same *BitArray) is not
// supported when the slice's length differs from src's: the
// resize happens before the copy and would read src's already-shifted
// bits back into itself.
func (a *BitArray) SetSlice(sl Slice, src any) error {
	start, stop, step, length, err := sl.resolve(a.n)
	if err != nil {
		return err
	}

	switch v := src.(type) {
	case *BitArray:
		if step == 1 {
			diff := v.n - length
			switch {
			case diff > 0:
				a.insertN(start+length, diff)
			case diff < 0:
				a.deleteN(start+v.n, -diff)
			}
			a.copyN(start, v, 0, v.n)
			return nil
		}
		if v.n != length {
			return fmt.Errorf("%w: extended slice assignment expects %d bits, got %d", ErrBadValue, length, v.n)
		}
		idx := start
		for i := 0; i < length; i++ {
			a.set(idx, v.get(i))
			idx += step
		}
		return nil

	case int:
		if v != 0 && v != 1 {
			return fmt.Errorf("%w: bit value must be 0 or 1, got %d", ErrBadValue, v)
		}
		if step == 1 {
			a.setRange(start, stop, v)
			return nil
		}
		idx := start
		for i := 0; i < length; i++ {
			a.set(idx, v)
			idx += step
		}
		return nil

	default:
		return fmt.Errorf("%w: cannot assign %T into a bit slice", ErrTypeMismatch, src)
	}
}

// DelSlice deletes the bits selected by sl. A unit step takes the
// region engine's delete fast path; any other step compacts surviving
// bits leftward and truncates.
func (a *BitArray) DelSlice(sl Slice) error {
	start, stop, step, length, err := sl.resolve(a.n)
	if err != nil {
		return err
	}
	if length == 0 {
		return nil
	}
	if step == 1 {
		a.deleteN(start, length)
		return nil
	}

	aStart, _, aStep := toAscending(start, stop, step, length)
	write := 0
	delIdx := 0
	nextDel := aStart
	for read := 0; read < a.n; read++ {
		if delIdx < length && read == nextDel {
			delIdx++
			if delIdx < length {
				nextDel = aStart + delIdx*aStep
			}
			continue
		}
		if write != read {
			a.set(write, a.get(read))
		}
		write++
	}
	a.resizeBits(write)
	return nil
}
