package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/snapvault/snapvault-go/internal/model"
)

var ErrImageNotFound = errors.New("image not found")

// ImageRepository handles image metadata persistence operations.
type ImageRepository struct {
	db *sql.DB
}

// NewImageRepository creates a new ImageRepository.
func NewImageRepository(db *sql.DB) *ImageRepository {
	return &ImageRepository{db: db}
}

// Create inserts a new image row and sets the generated ID on the struct.
func (r *ImageRepository) Create(ctx context.Context, img *model.Image) error {
	if img.CreatedAt.IsZero() {
		img.CreatedAt = time.Now().UTC()
	}

	query := `INSERT INTO images (user_id, url, public_id, original_name, format, width, height, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query,
		img.UserID, img.URL, img.PublicID, img.OriginalName, img.Format,
		img.Width, img.Height, img.CreatedAt,
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	img.ID = id
	return nil
}

// GetByID retrieves an image by its ID.
func (r *ImageRepository) GetByID(ctx context.Context, id int64) (*model.Image, error) {
	query := `SELECT id, user_id, url, public_id, original_name, format, width, height, created_at
		FROM images WHERE id = ?`

	img := &model.Image{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&img.ID, &img.UserID, &img.URL, &img.PublicID, &img.OriginalName,
		&img.Format, &img.Width, &img.Height, &img.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrImageNotFound
		}
		return nil, err
	}

	return img, nil
}

// List retrieves one page of images across all users, newest first.
func (r *ImageRepository) List(ctx context.Context, limit, offset int) ([]model.Image, error) {
	query := `SELECT id, user_id, url, public_id, original_name, format, width, height, created_at
		FROM images ORDER BY id DESC LIMIT ? OFFSET ?`

	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var images []model.Image
	for rows.Next() {
		var img model.Image
		if err := rows.Scan(
			&img.ID, &img.UserID, &img.URL, &img.PublicID, &img.OriginalName,
			&img.Format, &img.Width, &img.Height, &img.CreatedAt,
		); err != nil {
			return nil, err
		}
		images = append(images, img)
	}

	return images, rows.Err()
}

// Count returns the total number of stored images.
func (r *ImageRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM images`).Scan(&total)
	return total, err
}
