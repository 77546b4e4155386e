// Copyright 2021 The bit Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package bitarray

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChecksumStable(t *testing.T) {
	a := mustNew(t, "1011001")
	b := mustNew(t, "1011001")
	require.Equal(t, a.Checksum(), b.Checksum())
}

func TestChecksumDiffersOnContent(t *testing.T) {
	a := mustNew(t, "1011001")
	b := mustNew(t, "1011000")
	require.NotEqual(t, a.Checksum(), b.Checksum())
}

func TestChecksumEndianIndependent(t *testing.T) {
	big := mustNew(t, "101100110101", WithEndian(Big))
	little := mustNew(t, "101100110101", WithEndian(Little))
	require.True(t, big.Equal(little))
	require.Equal(t, big.Checksum(), little.Checksum())
}
