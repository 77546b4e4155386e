// Copyright 2021 The bit Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package bitarray

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEndianString(t *testing.T) {
	require.Equal(t, "big", Big.String())
	require.Equal(t, "little", Little.String())
	require.Equal(t, "Endian(7)", Endian(7).String())
}

func TestParseEndian(t *testing.T) {
	e, err := ParseEndian("big")
	require.NoError(t, err)
	require.Equal(t, Big, e)

	e, err = ParseEndian("little")
	require.NoError(t, err)
	require.Equal(t, Little, e)

	_, err = ParseEndian("middle")
	require.ErrorIs(t, err, ErrTypeMismatch)
}

func TestDefaultEndian(t *testing.T) {
	require.Equal(t, Big, DefaultEndian())

	SetDefaultEndian(Little)
	defer SetDefaultEndian(Big)
	require.Equal(t, Little, DefaultEndian())

	a, err := New(4)
	require.NoError(t, err)
	require.Equal(t, Little, a.Endian())
}

func TestWithEndian(t *testing.T) {
	a, err := New(4, WithEndian(Little))
	require.NoError(t, err)
	require.Equal(t, Little, a.Endian())
}
