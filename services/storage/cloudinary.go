package storage

import (
	"context"
	"fmt"

	"expertbridge/utils"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryStore implements ImageStore over Cloudinary.
type CloudinaryStore struct {
	cld *cloudinary.Cloudinary
}

// NewImageStore builds the Cloudinary-backed store, or the placeholder store
// when credentials are missing.
func NewImageStore(cloudName, apiKey, apiSecret string) (ImageStore, error) {
	if cloudName == "" || apiKey == "" || apiSecret == "" {
		utils.GetLogger().Warn("Cloudinary not configured, using placeholder image store")
		return &PlaceholderStore{}, nil
	}
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cloudinary: %w", err)
	}
	return &CloudinaryStore{cld: cld}, nil
}

// Upload stores the image and returns its permanent URL and public id.
func (s *CloudinaryStore) Upload(ctx context.Context, imageData string, opts UploadOptions) (*UploadResult, error) {
	params := uploader.UploadParams{
		Folder:         opts.Folder,
		PublicID:       opts.PublicID,
		Transformation: opts.Transformation,
	}
	result, err := s.cld.Upload.Upload(ctx, imageData, params)
	if err != nil {
		return nil, fmt.Errorf("failed to upload image: %w", err)
	}
	if result.PublicID == "" {
		return nil, fmt.Errorf("no public ID returned from upload")
	}
	return &UploadResult{
		URL:      result.SecureURL,
		PublicID: result.PublicID,
	}, nil
}
