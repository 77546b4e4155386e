// Copyright 2021 The bit Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package bitarray

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompare(t *testing.T) {
	require.Equal(t, 0, mustNew(t, "101").Compare(mustNew(t, "101")))
	require.Equal(t, -1, mustNew(t, "100").Compare(mustNew(t, "101")))
	require.Equal(t, 1, mustNew(t, "101").Compare(mustNew(t, "100")))
	require.Equal(t, -1, mustNew(t, "10").Compare(mustNew(t, "101")))
	require.Equal(t, 1, mustNew(t, "101").Compare(mustNew(t, "10")))
}

func TestEqualSameEndian(t *testing.T) {
	a := mustNew(t, "1011")
	b := mustNew(t, "1011")
	require.True(t, a.Equal(b))

	c := mustNew(t, "1010")
	require.False(t, a.Equal(c))

	d := mustNew(t, "101")
	require.False(t, a.Equal(d))
}

func TestEqualCrossEndian(t *testing.T) {
	a := mustNew(t, "1011", WithEndian(Big))
	b := mustNew(t, "1011", WithEndian(Little))
	require.True(t, a.Equal(b))
	require.Equal(t, a.Checksum(), b.Checksum())
}

func TestFindAndIndex(t *testing.T) {
	a := mustNew(t, "0011010110")
	i, err := a.Find(1, 0, a.Len())
	require.NoError(t, err)
	require.Equal(t, 2, i)

	i, err = a.FindAny(mustNew(t, "101"))
	require.NoError(t, err)
	require.Equal(t, 3, i)

	_, err = a.Index(mustNew(t, "111111"), 0, a.Len())
	require.ErrorIs(t, err, ErrBadValue)

	_, err = a.Find("nope", 0, a.Len())
	require.ErrorIs(t, err, ErrTypeMismatch)
}

func TestContains(t *testing.T) {
	a := mustNew(t, "0011010110")
	ok, err := a.Contains(mustNew(t, "101"))
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = a.Contains(mustNew(t, "111111"))
	require.NoError(t, err)
	require.False(t, ok)
}
