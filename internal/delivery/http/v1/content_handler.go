package v1

import (
	"context"
	"errors"
	"io"
	"net/http"

	"storefront-backend/internal/domain"
	"storefront-backend/pkg/apperror"
	"storefront-backend/pkg/utils"
)

const maxContentBytes = 256 << 10

type ContentService interface {
	GetSection(ctx context.Context, key string) (*domain.ContentBlock, error)
	UpsertSection(ctx context.Context, key string, raw []byte) (*domain.ContentBlock, error)
	ListSections(ctx context.Context) ([]string, error)
}

type ContentHandler struct {
	usecase ContentService
}

func NewContentHandler(u ContentService) *ContentHandler {
	return &ContentHandler{usecase: u}
}

func (h *ContentHandler) GetContent(w http.ResponseWriter, r *http.Request) {
	block, err := h.usecase.GetSection(r.Context(), r.PathValue("key"))
	if err != nil {
		utils.WriteAppError(w, r, err)
		return
	}

	w.Header().Set("Cache-Control", "public, max-age=300")
	utils.WriteJSON(w, http.StatusOK, block)
}

func (h *ContentHandler) UpsertContent(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxContentBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			utils.WriteAppError(w, r, apperror.NewInvalidInput("Invalid input: content is too large"))
			return
		}
		utils.WriteAppError(w, r, apperror.Wrap(apperror.InvalidInput, "Invalid input: unreadable body", err))
		return
	}

	updated, err := h.usecase.UpsertSection(r.Context(), r.PathValue("key"), body)
	if err != nil {
		utils.WriteAppError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, updated)
}

func (h *ContentHandler) ListSections(w http.ResponseWriter, r *http.Request) {
	keys, err := h.usecase.ListSections(r.Context())
	if err != nil {
		utils.WriteAppError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string][]string{"data": keys})
}
