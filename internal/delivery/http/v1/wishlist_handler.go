package v1

import (
	"context"
	"net/http"
	"strings"

	"storefront-backend/internal/domain"
	"storefront-backend/internal/usecase"
	"storefront-backend/pkg/apperror"
	"storefront-backend/pkg/utils"
	"storefront-backend/pkg/validator"
)

// WishlistService is the wishlist behaviour the handler depends on.
type WishlistService interface {
	AddToWishlist(ctx context.Context, userID, productID string) (*domain.WishlistEntry, error)
	ListWishlist(ctx context.Context, userID string, page, limit int) ([]domain.WishlistItem, domain.Pagination, error)
	RemoveFromWishlist(ctx context.Context, userID, productID string) error
}

type WishlistHandler struct {
	usecase WishlistService
}

func NewWishlistHandler(usecase WishlistService) *WishlistHandler {
	return &WishlistHandler{usecase: usecase}
}

type AddWishlistRequest struct {
	ProductID string `json:"productId" validate:"required,max=128"`
}

type AddWishlistResponse struct {
	Message      string                `json:"message"`
	WishlistItem *domain.WishlistEntry `json:"wishlistItem"`
}

type WishlistListResponse struct {
	Data       []domain.WishlistItem `json:"data"`
	Pagination domain.Pagination     `json:"pagination"`
}

// AddToWishlist handles POST /api/v1/wishlist.
// Identity is checked before the body is read.
func (h *WishlistHandler) AddToWishlist(w http.ResponseWriter, r *http.Request) {
	user, ok := domain.UserFromContext(r.Context())
	if !ok {
		utils.WriteAppError(w, r, apperror.NewUnauthorized(usecase.MsgUserIDMissing))
		return
	}

	var req AddWishlistRequest
	if err := validator.Decode(r, &req); err != nil {
		utils.WriteAppError(w, r, err)
		return
	}
	req.ProductID = strings.TrimSpace(req.ProductID)
	if err := validator.Validate(req); err != nil {
		utils.WriteAppError(w, r, err)
		return
	}

	entry, err := h.usecase.AddToWishlist(r.Context(), user.ID, req.ProductID)
	if err != nil {
		utils.WriteAppError(w, r, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, AddWishlistResponse{
		Message:      "Product added to wishlist",
		WishlistItem: entry,
	})
}

func (h *WishlistHandler) GetMyWishlist(w http.ResponseWriter, r *http.Request) {
	user, ok := domain.UserFromContext(r.Context())
	if !ok {
		utils.WriteAppError(w, r, apperror.NewUnauthorized(usecase.MsgUserIDMissing))
		return
	}

	q := r.URL.Query()
	items, page, err := h.usecase.ListWishlist(r.Context(), user.ID,
		utils.ParseInt(q.Get("page"), 1), utils.ParseInt(q.Get("limit"), 20))
	if err != nil {
		utils.WriteAppError(w, r, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, WishlistListResponse{Data: items, Pagination: page})
}

func (h *WishlistHandler) RemoveFromWishlist(w http.ResponseWriter, r *http.Request) {
	user, ok := domain.UserFromContext(r.Context())
	if !ok {
		utils.WriteAppError(w, r, apperror.NewUnauthorized(usecase.MsgUserIDMissing))
		return
	}

	if err := h.usecase.RemoveFromWishlist(r.Context(), user.ID, r.PathValue("productId")); err != nil {
		utils.WriteAppError(w, r, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]string{"message": "Product removed from wishlist"})
}
