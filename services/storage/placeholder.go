package storage

import (
	"context"
	"fmt"
	"net/url"
)

// PlaceholderStore stands in when no image backend is configured. Uploads
// resolve to a deterministic avatar URL derived from the subject's identity,
// so the same subject always gets the same placeholder.
type PlaceholderStore struct{}

// AvatarURL builds the generated-avatar URL for a display name.
func AvatarURL(name string) string {
	return fmt.Sprintf("https://ui-avatars.com/api/?name=%s&background=3b82f6&color=fff&size=200", url.QueryEscape(name))
}

func (s *PlaceholderStore) Upload(ctx context.Context, imageData string, opts UploadOptions) (*UploadResult, error) {
	seed := opts.PublicID
	if seed == "" {
		seed = "Professional"
	}
	return &UploadResult{URL: AvatarURL(seed)}, nil
}
