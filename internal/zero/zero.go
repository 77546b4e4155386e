// Copyright 2021 The bit Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package zero provides functions to zero slices of specific types.
package zero

// Bytes overwrites every byte of b with 0, without changing len(b) or
// cap(b). Used to clear a freshly-shrunk buffer tail before it can be
// observed again by a later grow.
func Bytes(b []byte) {
	for i := 0; i < len(b); i++ {
		b[i] = 0
	}
}
