// Copyright 2021 The bit Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package bitarray

import "errors"

// Sentinel error kinds. Callers should use errors.Is against these,
// not compare returned errors directly, since operations wrap them
// with fmt.Errorf to attach context (offending index, value, etc.).
var (
	// ErrTypeMismatch is returned when an argument is of an
	// unsupported kind: a non-int bit value, raw bytes passed to
	// Extend, an unrecognized endian string.
	ErrTypeMismatch = errors.New("bitarray: type mismatch")

	// ErrOutOfRange is returned when a bit or byte index falls
	// outside [0, n) after negative-index normalization.
	ErrOutOfRange = errors.New("bitarray: index out of range")

	// ErrBadValue is returned for a value outside {0,1}, an
	// unparsable '0'/'1' string, step == 0 in a slice, a length
	// mismatch in extended slice assignment, Pop from an empty
	// array, or Remove/Index of an absent value.
	ErrBadValue = errors.New("bitarray: bad value")

	// ErrOverflow is returned when Repeat's result would exceed
	// the platform's representable length.
	ErrOverflow = errors.New("bitarray: overflow")
)
