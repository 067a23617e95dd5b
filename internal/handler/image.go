package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/snapvault/snapvault-go/internal/media"
	"github.com/snapvault/snapvault-go/internal/middleware"
	"github.com/snapvault/snapvault-go/internal/repository"
	"github.com/snapvault/snapvault-go/internal/service"
)

const maxUploadBytes = 32 << 20 // 32MB

// ImageHandler handles HTTP requests for image upload, listing and
// transformation.
type ImageHandler struct {
	service *service.ImageService
}

// NewImageHandler creates a new ImageHandler.
func NewImageHandler(svc *service.ImageService) *ImageHandler {
	return &ImageHandler{service: svc}
}

// HandleUpload handles POST /images requests with a multipart "image" field.
func (h *ImageHandler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	file, header, err := r.FormFile("image")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("no file attached"))
		return
	}
	defer file.Close()

	resp, err := h.service.Upload(r.Context(), userID, header.Filename, file)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("upload failed"))
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// HandleList handles GET /images requests. Listing is global across users;
// the page and limit query parameters default to 1 and 6.
func (h *ImageHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", 1)
	limit := queryInt(r, "limit", service.DefaultPageLimit)

	resp, err := h.service.List(r.Context(), page, limit)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleGet handles GET /images/{id} requests, returning the image and its
// transformation history.
func (h *ImageHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid image id"))
		return
	}

	resp, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrImageNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse("image not found"))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleTransform handles POST /images/{id}/transform requests.
func (h *ImageHandler) HandleTransform(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid image id"))
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req struct {
		Transformations media.TransformOptions `json:"transformations"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return
	}

	resp, err := h.service.Transform(r.Context(), userID, id, req.Transformations)
	if err != nil {
		if errors.Is(err, repository.ErrImageNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse("image not found"))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func queryInt(r *http.Request, key string, fallback int) int {
	v, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil || v < 1 {
		return fallback
	}
	return v
}
