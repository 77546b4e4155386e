// Copyright 2021 The bit Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package bitarray

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func mustNew(t *testing.T, s string, opts ...Option) *BitArray {
	t.Helper()
	a, err := New(s, opts...)
	require.NoError(t, err)
	return a
}

func TestByteReverseTable(t *testing.T) {
	require.Equal(t, byte(0x00), reverseTable[0x00])
	require.Equal(t, byte(0xff), reverseTable[0xff])
	require.Equal(t, byte(0x01), reverseTable[0x80])
	require.Equal(t, byte(0x0f), reverseTable[0xf0])
}

func TestCopyNAlignedNonOverlapping(t *testing.T) {
	dst := mustNew(t, "00000000")
	src := mustNew(t, "11110000")
	dst.copyN(0, src, 0, 8)
	require.Equal(t, "11110000", dst.To01())
}

func TestCopyNUnalignedNonOverlapping(t *testing.T) {
	a := mustNew(t, "111000000")
	// copy bits [3:6) ("000") over [0:3) ("111"); ranges don't overlap.
	a.copyN(0, a, 3, 3)
	require.Equal(t, "000000000", a.To01())
}

func TestCopyNSelfAliasOverlapForward(t *testing.T) {
	// dstOff < srcOff: shifting left, must read forward.
	a := mustNew(t, "0001011010")
	before := a.To01()
	a.copyN(0, a, 2, 8)
	// expect bits [2:10) of before now occupy [0:8).
	require.Equal(t, before[2:10], a.To01()[0:8])
}

func TestCopyNSelfAliasOverlapBackward(t *testing.T) {
	// dstOff > srcOff: shifting right, must read backward.
	a := mustNew(t, "0001011010")
	before := a.To01()
	a.copyN(2, a, 0, 8)
	require.Equal(t, before[0:8], a.To01()[2:10])
}

func TestCopyNCrossEndianAligned(t *testing.T) {
	big := mustNew(t, "10000000", WithEndian(Big))
	little := mustNew(t, "10000000", WithEndian(Little))
	dst := mustNew(t, "00000000", WithEndian(Little))
	dst.copyN(0, big, 0, 8)
	require.Equal(t, little.To01(), dst.To01())
}

func TestInsertNAndDeleteN(t *testing.T) {
	a := mustNew(t, "1100")
	a.insertN(2, 3)
	require.Equal(t, 7, a.Len())
	require.Equal(t, "11", a.To01()[0:2])
	require.Equal(t, "00", a.To01()[5:7])

	a2 := mustNew(t, "1101100")
	a2.deleteN(2, 3)
	require.Equal(t, "1100", a2.To01())
}

func TestRepeat(t *testing.T) {
	a := mustNew(t, "101")
	require.NoError(t, a.repeat(3))
	require.Equal(t, "101101101", a.To01())

	b := mustNew(t, "1")
	require.NoError(t, b.repeat(0))
	require.Equal(t, 0, b.Len())

	c := mustNew(t, "10")
	require.NoError(t, c.repeat(1))
	require.Equal(t, "10", c.To01())
}

func TestRepeatOverflow(t *testing.T) {
	// orig * m == 2^64 here, which wraps to 0 in two's-complement int
	// arithmetic; repeat must detect that via the total/m != orig check
	// rather than trust the wrapped product.
	a, err := New(1 << 20)
	require.NoError(t, err)
	err = a.repeat(1 << 44)
	require.ErrorIs(t, err, ErrOverflow)
}

func TestSetRangeAndCountRange(t *testing.T) {
	a := mustNew(t, "0000000000000000")
	a.setRange(3, 13, 1)
	require.Equal(t, "0001111111111000", a.To01())
	require.Equal(t, 10, a.countRange(1, 0, a.Len()))
	require.Equal(t, 6, a.countRange(0, 0, a.Len()))
}

func TestFindBit(t *testing.T) {
	a := mustNew(t, "0000000001000000")
	require.Equal(t, 9, a.findBit(1, 0, a.Len()))
	require.Equal(t, -1, a.findBit(1, 0, 9))
	require.Equal(t, 0, a.findBit(0, 0, a.Len()))
}

func TestFindPattern(t *testing.T) {
	haystack := mustNew(t, "0011010110")
	needle := mustNew(t, "101")
	require.Equal(t, 3, haystack.find(needle, 0, haystack.Len()))

	missing := mustNew(t, "111111")
	require.Equal(t, -1, haystack.find(missing, 0, haystack.Len()))

	empty := mustNew(t, "")
	require.Equal(t, 2, haystack.find(empty, 2, haystack.Len()))
}
