// Copyright 2021 The bit Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package bitarray

// popcountTable[b] is the number of set bits in byte b. This is the
// leaf-most lookup table in the module's dependency order: everything
// from Count to All/Any bottoms out here.
var popcountTable [256]uint8

// reverseTable[b] is byte b with its bits reversed (bit 0 <-> bit 7,
// bit 1 <-> bit 6, ...), independent of Endian -- endian only changes
// which logical bit index a physical bit position corresponds to, not
// how "reverse the byte" is defined.
var reverseTable [256]byte

func init() {
	for b := 0; b < 256; b++ {
		var ones uint8
		var rev byte
		for k := 0; k < 8; k++ {
			if b&(1<<uint(k)) != 0 {
				ones++
				rev |= 1 << uint(7-k)
			}
		}
		popcountTable[b] = ones
		reverseTable[byte(b)] = rev
	}
}

// littleMaskFirstK[k] selects the first k bits of a byte (bits 0..k-1)
// under little-endian bit order.
var littleMaskFirstK [9]byte

// bigMaskFirstK[k] selects the first k bits of a byte (bits 0..k-1)
// under big-endian bit order.
var bigMaskFirstK [9]byte

func init() {
	for k := 0; k <= 8; k++ {
		littleMaskFirstK[k] = byte((1 << uint(k)) - 1)
		if k == 0 {
			bigMaskFirstK[k] = 0
		} else {
			bigMaskFirstK[k] = byte((0xff << uint(8-k)) & 0xff)
		}
	}
}

// maskFirstK returns the mask selecting the first k (0..8) bits of a
// byte under the given endian.
func maskFirstK(e Endian, k int) byte {
	if e == Little {
		return littleMaskFirstK[k]
	}
	return bigMaskFirstK[k]
}

// bitMask returns the mask selecting bit k (0..7) of a byte under the
// given endian.
func bitMask(e Endian, k int) byte {
	if e == Little {
		return 1 << uint(k)
	}
	return 1 << uint(7-k)
}
