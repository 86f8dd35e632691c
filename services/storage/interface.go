package storage

import "context"

// UploadOptions controls where and how an image is stored.
type UploadOptions struct {
	Folder         string
	PublicID       string
	Transformation string
}

// UploadResult identifies a stored image.
type UploadResult struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
}

// ImageStore is the profile-photo storage collaborator. imageData may be a
// base64 data URI or a remote URL. Implementations must tolerate being
// unconfigured by returning a deterministic placeholder instead of failing.
type ImageStore interface {
	Upload(ctx context.Context, imageData string, opts UploadOptions) (*UploadResult, error)
}
