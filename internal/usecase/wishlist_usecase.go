package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"storefront-backend/internal/domain"
	"storefront-backend/pkg/apperror"
	"storefront-backend/pkg/logger"
)

// Public messages for wishlist failures.
const (
	MsgUserIDMissing     = "Unauthorized: User ID missing"
	MsgProductIDRequired = "Invalid input: productId is required"
	MsgProductNotFound   = "Product not found"
	MsgAlreadyInWishlist = "Product already in wishlist"
	MsgNotInWishlist     = "Product not in wishlist"
)

type WishlistUsecase struct {
	wishlists domain.WishlistRepository
	products  domain.ProductRepository
	tracker   domain.WishlistTracker
	newID     func() string
}

// NewWishlistUsecase wires the wishlist operations. tracker may be nil.
func NewWishlistUsecase(wishlists domain.WishlistRepository, products domain.ProductRepository, tracker domain.WishlistTracker) *WishlistUsecase {
	return &WishlistUsecase{
		wishlists: wishlists,
		products:  products,
		tracker:   tracker,
		newID:     uuid.NewString,
	}
}

// AddToWishlist saves productID for userID and returns the created entry.
// Failures are *apperror.Error values: Unauthorized, InvalidInput, NotFound,
// Conflict, or Internal, checked in that order.
func (u *WishlistUsecase) AddToWishlist(ctx context.Context, userID, productID string) (*domain.WishlistEntry, error) {
	log := logger.WithContext(ctx)
	log.Debug().Str("user_id", userID).Msg("Wishlist add requested")

	// 1. Identity
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, apperror.NewUnauthorized(MsgUserIDMissing)
	}

	// 2. Input
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return nil, apperror.NewInvalidInput(MsgProductIDRequired)
	}

	// 3. Product must exist
	exists, err := u.products.Exists(ctx, productID)
	if err != nil {
		return nil, apperror.NewInternal(err)
	}
	if !exists {
		return nil, apperror.NewNotFound(MsgProductNotFound)
	}

	// 4. No prior entry for the pair
	dup, err := u.wishlists.Exists(ctx, userID, productID)
	if err != nil {
		return nil, apperror.NewInternal(err)
	}
	if dup {
		return nil, apperror.NewConflict(MsgAlreadyInWishlist)
	}

	// 5. Insert. A concurrent add can still win between 4 and 5; the
	// storage constraint rejects ours and it is reported the same way.
	entry := &domain.WishlistEntry{
		ID:        u.newID(),
		UserID:    userID,
		ProductID: productID,
	}
	if err := u.wishlists.Create(ctx, entry); err != nil {
		switch {
		case errors.Is(err, domain.ErrWishlistEntryExists):
			return nil, apperror.Wrap(apperror.Conflict, MsgAlreadyInWishlist, err)
		case errors.Is(err, domain.ErrProductMissing):
			return nil, apperror.Wrap(apperror.NotFound, MsgProductNotFound, err)
		default:
			return nil, apperror.NewInternal(err)
		}
	}

	log.Info().
		Str("wishlist_item_id", entry.ID).
		Str("product_id", entry.ProductID).
		Msg("Wishlist item created")

	if u.tracker != nil {
		u.tracker.TrackAddToWishlist(ctx, *entry)
	}
	return entry, nil
}

// ListWishlist returns one page of the caller's saved products, newest first.
func (u *WishlistUsecase) ListWishlist(ctx context.Context, userID string, page, limit int) ([]domain.WishlistItem, domain.Pagination, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, domain.Pagination{}, apperror.NewUnauthorized(MsgUserIDMissing)
	}
	page, limit = normalizePage(page, limit)

	items, total, err := u.wishlists.ListByUser(ctx, userID, limit, (page-1)*limit)
	if err != nil {
		return nil, domain.Pagination{}, apperror.NewInternal(err)
	}
	return items, domain.NewPagination(page, limit, total), nil
}

func (u *WishlistUsecase) RemoveFromWishlist(ctx context.Context, userID, productID string) error {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return apperror.NewUnauthorized(MsgUserIDMissing)
	}
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return apperror.NewInvalidInput(MsgProductIDRequired)
	}

	if err := u.wishlists.Delete(ctx, userID, productID); err != nil {
		if errors.Is(err, domain.ErrWishlistEntryNotFound) {
			return apperror.Wrap(apperror.NotFound, MsgNotInWishlist, err)
		}
		return apperror.NewInternal(err)
	}

	logger.WithContext(ctx).Info().Str("product_id", productID).Msg("Wishlist item removed")
	return nil
}

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageSize
	}
	return page, min(limit, maxPageSize)
}
