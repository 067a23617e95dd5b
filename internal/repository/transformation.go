package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/snapvault/snapvault-go/internal/model"
)

// TransformationRepository handles transformation history persistence.
type TransformationRepository struct {
	db *sql.DB
}

// NewTransformationRepository creates a new TransformationRepository.
func NewTransformationRepository(db *sql.DB) *TransformationRepository {
	return &TransformationRepository{db: db}
}

// Create inserts a new transformation row and sets the generated ID on the
// struct. History is append-only; rows are never updated or deleted.
func (r *TransformationRepository) Create(ctx context.Context, tf *model.Transformation) error {
	if tf.CreatedAt.IsZero() {
		tf.CreatedAt = time.Now().UTC()
	}

	query := `INSERT INTO transformations (image_id, user_id, transformed_url, transformation_type, created_at)
		VALUES (?, ?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query,
		tf.ImageID, tf.UserID, tf.TransformedURL, tf.TransformationType, tf.CreatedAt,
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	tf.ID = id
	return nil
}

// ListByImage retrieves the full transformation history of an image in table
// order.
func (r *TransformationRepository) ListByImage(ctx context.Context, imageID int64) ([]model.Transformation, error) {
	query := `SELECT id, image_id, user_id, transformed_url, transformation_type, created_at
		FROM transformations WHERE image_id = ?`

	rows, err := r.db.QueryContext(ctx, query, imageID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var history []model.Transformation
	for rows.Next() {
		var tf model.Transformation
		if err := rows.Scan(
			&tf.ID, &tf.ImageID, &tf.UserID, &tf.TransformedURL,
			&tf.TransformationType, &tf.CreatedAt,
		); err != nil {
			return nil, err
		}
		history = append(history, tf)
	}

	return history, rows.Err()
}
