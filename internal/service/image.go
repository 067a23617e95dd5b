package service

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"

	"github.com/snapvault/snapvault-go/internal/media"
	"github.com/snapvault/snapvault-go/internal/model"
)

// DefaultPageLimit is the page size used when a listing request gives none.
const DefaultPageLimit = 6

// ImageStore is the image persistence surface the service needs.
type ImageStore interface {
	Create(ctx context.Context, img *model.Image) error
	GetByID(ctx context.Context, id int64) (*model.Image, error)
	List(ctx context.Context, limit, offset int) ([]model.Image, error)
	Count(ctx context.Context) (int64, error)
}

// TransformationStore is the history persistence surface the service needs.
type TransformationStore interface {
	Create(ctx context.Context, tf *model.Transformation) error
	ListByImage(ctx context.Context, imageID int64) ([]model.Transformation, error)
}

// ImageService handles image upload, listing and transformation logic.
type ImageService struct {
	images     ImageStore
	transforms TransformationStore
	store      media.Store
}

// NewImageService creates a new ImageService.
func NewImageService(images ImageStore, transforms TransformationStore, store media.Store) *ImageService {
	return &ImageService{
		images:     images,
		transforms: transforms,
		store:      store,
	}
}

// Upload forwards the file bytes to the media backend and records the
// returned metadata for the uploading user. The remote upload and the local
// insert are not atomic; an insert failure leaves an orphaned remote asset,
// which is logged with its public id for reconciliation.
func (s *ImageService) Upload(ctx context.Context, userID int64, filename string, file io.Reader) (model.UploadResponse, error) {
	result, err := s.store.Upload(ctx, file, filename)
	if err != nil {
		return model.UploadResponse{}, err
	}

	img := &model.Image{
		UserID:       userID,
		URL:          result.URL,
		PublicID:     result.PublicID,
		OriginalName: filename,
		Format:       result.Format,
		Width:        dimension(result.Width),
		Height:       dimension(result.Height),
	}

	if err := s.images.Create(ctx, img); err != nil {
		slog.Error("image metadata insert failed after remote upload",
			"public_id", result.PublicID, "error", err)
		return model.UploadResponse{}, err
	}

	return model.UploadResponse{ID: img.ID, URL: img.URL}, nil
}

// List returns one page of all images, newest first, with pagination
// metadata. Listing is global across users, preserved from the original
// service behavior.
func (s *ImageService) List(ctx context.Context, page, limit int) (model.ImageListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageLimit
	}
	offset := (page - 1) * limit

	images, err := s.images.List(ctx, limit, offset)
	if err != nil {
		return model.ImageListResponse{}, err
	}
	if images == nil {
		images = []model.Image{}
	}

	total, err := s.images.Count(ctx)
	if err != nil {
		return model.ImageListResponse{}, err
	}

	pages := int((total + int64(limit) - 1) / int64(limit))

	return model.ImageListResponse{
		Data: images,
		Pagination: model.Pagination{
			Total: total,
			Page:  page,
			Limit: limit,
			Pages: pages,
		},
	}, nil
}

// Get returns an image together with its full transformation history.
func (s *ImageService) Get(ctx context.Context, id int64) (model.ImageDetailResponse, error) {
	img, err := s.images.GetByID(ctx, id)
	if err != nil {
		return model.ImageDetailResponse{}, err
	}

	history, err := s.transforms.ListByImage(ctx, id)
	if err != nil {
		return model.ImageDetailResponse{}, err
	}
	if history == nil {
		history = []model.Transformation{}
	}

	return model.ImageDetailResponse{Image: *img, History: history}, nil
}

// Transform compiles the requested options into a directive chain, builds
// the derived-asset URL and records it in the image's history. The URL build
// is pure string construction; no remote call happens here.
func (s *ImageService) Transform(ctx context.Context, userID, imageID int64, opts media.TransformOptions) (model.TransformResponse, error) {
	img, err := s.images.GetByID(ctx, imageID)
	if err != nil {
		return model.TransformResponse{}, err
	}

	chain := media.Chain(media.Compile(opts), opts)

	url, err := s.store.TransformURL(img.PublicID, chain)
	if err != nil {
		return model.TransformResponse{}, err
	}

	raw, err := json.Marshal(opts)
	if err != nil {
		return model.TransformResponse{}, err
	}

	tf := &model.Transformation{
		ImageID:            imageID,
		UserID:             userID,
		TransformedURL:     url,
		TransformationType: string(raw),
	}

	if err := s.transforms.Create(ctx, tf); err != nil {
		slog.Error("transformation insert failed after url build",
			"public_id", img.PublicID, "error", err)
		return model.TransformResponse{}, err
	}

	return model.TransformResponse{URL: url}, nil
}

func dimension(v int) *int64 {
	if v <= 0 {
		return nil
	}
	d := int64(v)
	return &d
}
