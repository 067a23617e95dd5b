package media

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// UploadResult is the metadata the media backend reports for a stored asset.
// Width and Height are zero when the backend omits dimensions.
type UploadResult struct {
	URL      string
	PublicID string
	Format   string
	Width    int
	Height   int
}

// Store abstracts the external media backend: byte upload plus deterministic
// URL construction for derived assets. TransformURL performs no network
// calls.
type Store interface {
	Upload(ctx context.Context, file io.Reader, filename string) (*UploadResult, error)
	TransformURL(publicID, transformation string) (string, error)
}

// CloudinaryStore implements Store against the Cloudinary API.
type CloudinaryStore struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinaryStore creates a Store from Cloudinary account credentials.
func NewCloudinaryStore(cloudName, apiKey, apiSecret string) (*CloudinaryStore, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("configuring cloudinary: %w", err)
	}
	cld.Config.URL.Secure = true

	return &CloudinaryStore{cld: cld}, nil
}

// Upload sends the file bytes to Cloudinary and returns the stored asset's
// metadata.
func (s *CloudinaryStore) Upload(ctx context.Context, file io.Reader, filename string) (*UploadResult, error) {
	resp, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		FilenameOverride: filename,
	})
	if err != nil {
		return nil, fmt.Errorf("uploading to cloudinary: %w", err)
	}
	// The SDK reports API-level failures on the response, not as an error.
	if resp.Error.Message != "" {
		return nil, fmt.Errorf("uploading to cloudinary: %s", resp.Error.Message)
	}

	return &UploadResult{
		URL:      resp.SecureURL,
		PublicID: resp.PublicID,
		Format:   resp.Format,
		Width:    resp.Width,
		Height:   resp.Height,
	}, nil
}

// TransformURL builds the delivery URL for the asset with the given
// transformation chain applied. This is pure URL construction.
func (s *CloudinaryStore) TransformURL(publicID, transformation string) (string, error) {
	img, err := s.cld.Image(publicID)
	if err != nil {
		return "", fmt.Errorf("building asset %s: %w", publicID, err)
	}

	img.Transformation = transformation

	url, err := img.String()
	if err != nil {
		return "", fmt.Errorf("building transform url for %s: %w", publicID, err)
	}

	return url, nil
}
