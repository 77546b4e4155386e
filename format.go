// Copyright 2021 The bit Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package bitarray

// Tobytes returns a copy of the underlying storage with any pad bits
// zeroed. len(result) == ceil(Len()/8).
func (a *BitArray) Tobytes() []byte {
	a.setUnused()
	out := make([]byte, len(a.buf))
	copy(out, a.buf)
	return out
}

// To01 renders the array as a string of '0'/'1' characters, one per
// bit, in logical order.
func (a *BitArray) To01() string {
	buf := make([]byte, a.n)
	for i := 0; i < a.n; i++ {
		if a.get(i) == 1 {
			buf[i] = '1'
		} else {
			buf[i] = '0'
		}
	}
	return string(buf)
}

// Tolist returns the bits as a []int of 0s and 1s.
func (a *BitArray) Tolist() []int {
	out := make([]int, a.n)
	for i := 0; i < a.n; i++ {
		out[i] = a.get(i)
	}
	return out
}

// Frombytes appends 8*len(data) bits, one byte's worth of bit order
// per a's Endian. If a's current length isn't byte-aligned, the new
// bits are padded on, appended, and the pad gap is deleted afterward
// so the bit sequence stays contiguous.
func (a *BitArray) Frombytes(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	if a.n%8 == 0 {
		start := a.n
		a.resizeBits(a.n + 8*len(data))
		copy(a.buf[start/8:], data)
		return nil
	}

	padAdded := a.Fill()
	start := a.n
	a.resizeBits(a.n + 8*len(data))
	copy(a.buf[start/8:], data)
	a.deleteN(start-padAdded, padAdded)
	return nil
}

// Pack appends one bit per byte of data: 0x00 packs to bit 0, any
// other byte value packs to bit 1.
func (a *BitArray) Pack(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	start := a.n
	a.resizeBits(a.n + len(data))
	for i, d := range data {
		v := 0
		if d != 0 {
			v = 1
		}
		a.set(start+i, v)
	}
	return nil
}

// Unpack produces one output byte per bit: zero for a 0 bit, one for
// a 1 bit.
func (a *BitArray) Unpack(zero, one byte) []byte {
	out := make([]byte, a.n)
	for i := 0; i < a.n; i++ {
		if a.get(i) == 1 {
			out[i] = one
		} else {
			out[i] = zero
		}
	}
	return out
}

// String implements fmt.Stringer, rendering the array the way the
// source library's __repr__ does: bitarray('...') or bitarray() when
// empty. Unlike the source, this handles a single-bit array correctly
// (see the design notes' open question on that trailing-quote bug).
func (a *BitArray) String() string {
	if a.n == 0 {
		return "bitarray()"
	}
	return "bitarray('" + a.To01() + "')"
}

// MarshalText implements encoding.TextMarshaler in terms of To01, so a
// BitArray can be used directly as a struct field with encoding/json
// or encoding/xml.
func (a *BitArray) MarshalText() ([]byte, error) {
	return []byte(a.To01()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler in terms of
// Extend's string parsing, replacing a's current contents. a's Endian
// is left as-is.
func (a *BitArray) UnmarshalText(text []byte) error {
	a.n = 0
	a.buf = a.buf[:0]
	return a.extendString(string(text))
}
