package v1

import (
	"context"
	"errors"
	"net/http"
	"path/filepath"
	"strings"

	"storefront-backend/pkg/apperror"
	"storefront-backend/pkg/logger"
	"storefront-backend/pkg/storage"
	"storefront-backend/pkg/utils"
	"storefront-backend/pkg/validator"
)

var (
	allowedMimeTypes = map[string]bool{
		"image/jpeg": true,
		"image/jpg":  true,
		"image/png":  true,
		"image/webp": true,
		"image/gif":  true,
	}
	allowedExtensions = map[string]bool{
		".jpg":  true,
		".jpeg": true,
		".png":  true,
		".webp": true,
		".gif":  true,
	}
)

// MediaStore persists processed media and returns public URLs.
type MediaStore interface {
	UploadBuffer(ctx context.Context, data []byte, contentType string) (string, error)
	DeleteFile(ctx context.Context, fileURL string) error
}

type UploadHandler struct {
	storage       MediaStore
	maxUploadSize int64
}

func NewUploadHandler(s MediaStore, maxUploadSizeMB int64) *UploadHandler {
	return &UploadHandler{
		storage:       s,
		maxUploadSize: maxUploadSizeMB << 20,
	}
}

// UploadFile accepts a multipart "file" image, resizes it, stores it as WebP
// and returns its URL for use in content sections.
func (h *UploadHandler) UploadFile(w http.ResponseWriter, r *http.Request) {
	log := logger.WithContext(r.Context())

	// 1. Parse multipart form within the size limit
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize+(1<<20))
	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		log.Warn().Err(err).Msg("Upload rejected: ParseMultipartForm failed")
		utils.WriteError(w, http.StatusBadRequest, "File too large or invalid format")
		return
	}

	// 2. Get file
	file, header, err := r.FormFile("file")
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid file")
		return
	}
	defer file.Close()

	// 3. Validate type and extension
	contentType := header.Header.Get("Content-Type")
	if !allowedMimeTypes[contentType] {
		log.Warn().Str("content_type", contentType).Msg("Upload rejected: invalid MIME type")
		utils.WriteError(w, http.StatusBadRequest, "Invalid file type. Allowed: JPEG, PNG, WebP, GIF")
		return
	}
	if ext := strings.ToLower(filepath.Ext(header.Filename)); !allowedExtensions[ext] {
		utils.WriteError(w, http.StatusBadRequest, "Invalid file extension")
		return
	}

	// 4. Resize and convert
	data, newContentType, err := utils.ProcessImage(file, header.Filename)
	if err != nil {
		utils.WriteAppError(w, r, apperror.Wrap(apperror.InvalidInput, "Failed to process image", err))
		return
	}

	// 5. Store
	url, err := h.storage.UploadBuffer(r.Context(), data, newContentType)
	if err != nil {
		utils.WriteAppError(w, r, apperror.NewInternal(err))
		return
	}

	log.Info().Str("url", url).Int("bytes", len(data)).Msg("Media uploaded")
	utils.WriteJSON(w, http.StatusCreated, map[string]string{"url": url})
}

type DeleteMediaRequest struct {
	URL string `json:"url" validate:"required,url"`
}

func (h *UploadHandler) DeleteFile(w http.ResponseWriter, r *http.Request) {
	var req DeleteMediaRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		utils.WriteAppError(w, r, err)
		return
	}

	if err := h.storage.DeleteFile(r.Context(), req.URL); err != nil {
		if errors.Is(err, storage.ErrInvalidFileURL) {
			utils.WriteAppError(w, r, apperror.Wrap(apperror.InvalidInput, "Invalid input: url is not a stored media file", err))
			return
		}
		utils.WriteAppError(w, r, apperror.NewInternal(err))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
