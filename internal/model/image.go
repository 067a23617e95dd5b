package model

import "time"

// Image records the metadata reported by the media backend for an uploaded
// asset. Width and Height are pointers because the backend may omit
// dimensions, in which case the columns stay NULL.
type Image struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"user_id"`
	URL          string    `json:"url"`
	PublicID     string    `json:"public_id"`
	OriginalName string    `json:"original_name"`
	Format       string    `json:"format"`
	Width        *int64    `json:"width"`
	Height       *int64    `json:"height"`
	CreatedAt    time.Time `json:"created_at"`
}

// Transformation is one entry of an image's derivation history. The rows are
// append-only; TransformationType keeps the raw requested options as JSON.
type Transformation struct {
	ID                 int64     `json:"id"`
	ImageID            int64     `json:"image_id"`
	UserID             int64     `json:"user_id"`
	TransformedURL     string    `json:"transformed_url"`
	TransformationType string    `json:"transformation_type"`
	CreatedAt          time.Time `json:"created_at"`
}

// UploadResponse is returned after a successful image upload.
type UploadResponse struct {
	ID  int64  `json:"id"`
	URL string `json:"url"`
}

// Pagination describes one page of a listing.
type Pagination struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Pages int   `json:"pages"`
}

// ImageListResponse is one page of the global image listing.
type ImageListResponse struct {
	Data       []Image    `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// ImageDetailResponse pairs an image with its transformation history.
type ImageDetailResponse struct {
	Image   Image            `json:"image"`
	History []Transformation `json:"history"`
}

// TransformResponse carries the URL of a derived asset.
type TransformResponse struct {
	URL string `json:"url"`
}
