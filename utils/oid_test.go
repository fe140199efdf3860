package utils

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOid(t *testing.T) {
	id, err := Oid("6554a77e12f6c2f49c8e5d77")
	require.NoError(t, err)
	require.Equal(t, "6554a77e12f6c2f49c8e5d77", id.Hex())

	for _, bad := range []string{"", "123", "zz54a77e12f6c2f49c8e5d77", "6554a77e12f6c2f49c8e5d7"} {
		_, err := Oid(bad)
		require.Error(t, err, bad)
		require.True(t, errors.Is(err, ErrInvalidIdentifier))
	}
}

func TestUserID(t *testing.T) {
	id, err := UserID(" 42 ")
	require.NoError(t, err)
	require.Equal(t, 42, id)

	_, err = UserID("4x2")
	require.ErrorIs(t, err, ErrInvalidIdentifier)
}

func TestFacilityID(t *testing.T) {
	id, err := FacilityID("A-101")
	require.NoError(t, err)
	require.Equal(t, "A-101", id)

	_, err = FacilityID("   ")
	require.ErrorIs(t, err, ErrInvalidIdentifier)
}
