package domain

import (
	"context"
	"errors"
	"time"
)

// WishlistEntry associates a user with a product they saved.
// At most one entry exists per (UserID, ProductID) pair.
type WishlistEntry struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	ProductID string    `json:"productId"`
	CreatedAt time.Time `json:"createdAt"`
}

// WishlistItem is an entry joined with its product, used for listings.
type WishlistItem struct {
	WishlistEntry
	Product Product `json:"product"`
}

var (
	// ErrWishlistEntryExists is returned by Create when the storage
	// uniqueness constraint on (user, product) rejects the insert.
	ErrWishlistEntryExists = errors.New("wishlist entry already exists")
	// ErrProductMissing is returned by Create when the referenced product
	// no longer exists at insert time.
	ErrProductMissing = errors.New("referenced product does not exist")
	// ErrWishlistEntryNotFound is returned by Delete when there is nothing to remove.
	ErrWishlistEntryNotFound = errors.New("wishlist entry not found")
)

type WishlistRepository interface {
	// Create inserts entry and fills CreatedAt. ID must be set by the caller.
	Create(ctx context.Context, entry *WishlistEntry) error
	Exists(ctx context.Context, userID, productID string) (bool, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]WishlistItem, int64, error)
	Delete(ctx context.Context, userID, productID string) error
}

// WishlistTracker is notified after an entry is created. Implementations must not block.
type WishlistTracker interface {
	TrackAddToWishlist(ctx context.Context, entry WishlistEntry)
}
