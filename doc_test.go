package gfcolor

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLibraryVersion(t *testing.T) {
	require.Equal(t, "0.3.0", Version.String())
	require.True(t, Version.Equal(LibraryVersion{0, 3, 0}))
	require.True(t, Version.After(LibraryVersion{0, 2, 9}))
	require.True(t, Version.Before(LibraryVersion{1, 0, 0}))
	require.False(t, Version.Before(Version))
	require.False(t, Version.After(Version))
}
