package user

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStringSliceRoundTrip(t *testing.T) {
	original := StringSlice{"cargo-tracking.admin.full-permit", "cargo-tracking.operator.full-permit"}

	value, err := original.Value()
	require.NoError(t, err)

	var decoded StringSlice
	require.NoError(t, decoded.Scan(value))
	require.Equal(t, original, decoded)

	// Drivers may hand back a string instead of bytes.
	var fromString StringSlice
	require.NoError(t, fromString.Scan(`["a","b"]`))
	require.Equal(t, StringSlice{"a", "b"}, fromString)

	var fromNil StringSlice
	require.NoError(t, fromNil.Scan(nil))
	require.Nil(t, fromNil)

	require.Error(t, decoded.Scan(42))
}

func TestHasPermission(t *testing.T) {
	u := User{Permissions: StringSlice{"cargo-tracking.operator.full-permit"}}

	require.True(t, u.HasPermission("cargo-tracking.operator.full-permit"))
	require.False(t, u.HasPermission("cargo-tracking.admin.full-permit"))
	require.False(t, (&User{}).HasPermission("anything"))
}
