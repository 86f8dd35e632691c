package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	require.NotEqual(t, "s3cret-pass", hash)

	require.True(t, CheckPassword("s3cret-pass", hash))
	require.False(t, CheckPassword("wrong-pass", hash))
	require.False(t, CheckPassword("s3cret-pass", "not-a-hash"))
}
