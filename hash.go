// Copyright 2021 The bit Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package bitarray

import "github.com/dgryski/go-farm"

// Checksum returns a content hash of the array's logical bits, using
// the same farm.Hash64 this module's on-disk-table sibling uses for
// record checksums. The buffer is normalized to Big endian before
// hashing (pad bits are already excluded by Tobytes), so any two
// BitArrays that compare Equal -- regardless of their own Endian --
// produce the same Checksum.
func (a *BitArray) Checksum() uint64 {
	if a.endian == Big {
		return farm.Hash64(a.Tobytes())
	}
	normalized, _ := newFromBitArray(a, options{endian: Big, endianSet: true})
	return farm.Hash64(normalized.Tobytes())
}
