package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAvatarURLEscapesName(t *testing.T) {
	url := AvatarURL("Jane Wanjiku")
	require.Contains(t, url, "name=Jane+Wanjiku")
	require.Contains(t, url, "ui-avatars.com")
}

func TestPlaceholderStoreIsDeterministic(t *testing.T) {
	store := &PlaceholderStore{}
	ctx := context.Background()

	first, err := store.Upload(ctx, "ignored", UploadOptions{PublicID: "prof-1"})
	require.NoError(t, err)
	second, err := store.Upload(ctx, "also ignored", UploadOptions{PublicID: "prof-1"})
	require.NoError(t, err)
	require.Equal(t, first.URL, second.URL)

	empty, err := store.Upload(ctx, "ignored", UploadOptions{})
	require.NoError(t, err)
	require.NotEmpty(t, empty.URL)
}
