// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package types

import (
	"testing"

	"github.com/ChainSafe/gossamer/pkg/scale"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testIdentifier = InherentIdentifier{'t', 'i', 'm', 's', 't', 'a', 'p', '0'}

func TestInherentData_SetInherent(t *testing.T) {
	inherentData := NewInherentData()

	err := inherentData.SetInherent(testIdentifier, uint64(42))
	require.NoError(t, err)
	require.Equal(t, 1, inherentData.Len())

	encoded, has := inherentData.Inherent(testIdentifier)
	require.True(t, has)

	var decoded uint64
	require.NoError(t, scale.Unmarshal(encoded, &decoded))
	assert.Equal(t, uint64(42), decoded)
}

func TestInherentData_DuplicateIdentifier(t *testing.T) {
	inherentData := NewInherentData()

	require.NoError(t, inherentData.SetInherent(testIdentifier, uint64(42)))
	err := inherentData.SetInherent(testIdentifier, uint64(43))
	require.ErrorIs(t, err, ErrInherentExists)

	// the first value is untouched
	encoded, has := inherentData.Inherent(testIdentifier)
	require.True(t, has)
	var decoded uint64
	require.NoError(t, scale.Unmarshal(encoded, &decoded))
	assert.Equal(t, uint64(42), decoded)
}

func TestInherentData_EncodeIsDeterministic(t *testing.T) {
	build := func() *InherentData {
		inherentData := NewInherentData()
		require.NoError(t, inherentData.SetInherent(
			InherentIdentifier{'b', 'a', 'b', 'e', 's', 'l', 'o', 't'}, uint64(1)))
		require.NoError(t, inherentData.SetInherent(testIdentifier, uint64(2)))
		return inherentData
	}

	first, err := build().Encode()
	require.NoError(t, err)
	second, err := build().Encode()
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// compact count prefix, then 8-byte identifier in identifier order
	assert.Equal(t, byte(2<<2), first[0])
	assert.Equal(t, []byte("babeslot"), first[1:9])
}
