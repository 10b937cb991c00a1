package postgres

import (
	"context"
	"fmt"

	"storefront-backend/internal/domain"
)

type WishlistRepository struct {
	db DBTX
}

func NewWishlistRepository(db DBTX) *WishlistRepository {
	return &WishlistRepository{db: db}
}

// Create inserts entry. The (user_id, product_id) unique constraint decides
// concurrent duplicates; its violation is reported as domain.ErrWishlistEntryExists.
func (r *WishlistRepository) Create(ctx context.Context, entry *domain.WishlistEntry) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO wishlist_items (id, user_id, product_id)
		VALUES ($1, $2, $3)
		RETURNING created_at`,
		entry.ID, entry.UserID, entry.ProductID,
	).Scan(&entry.CreatedAt)

	switch {
	case err == nil:
		return nil
	case isUniqueViolation(err):
		return domain.ErrWishlistEntryExists
	case isForeignKeyViolation(err):
		return domain.ErrProductMissing
	default:
		return fmt.Errorf("insert wishlist item: %w", err)
	}
}

func (r *WishlistRepository) Exists(ctx context.Context, userID, productID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM wishlist_items WHERE user_id = $1 AND product_id = $2)`,
		userID, productID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check wishlist item exists: %w", err)
	}
	return exists, nil
}

// ListByUser returns the user's entries joined with their products, newest first.
func (r *WishlistRepository) ListByUser(ctx context.Context, userID string, limit, offset int) ([]domain.WishlistItem, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM wishlist_items WHERE user_id = $1`, userID,
	).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count wishlist items: %w", err)
	}

	rows, err := r.db.Query(ctx, `
		SELECT w.id::text, w.user_id, w.product_id, w.created_at, `+productColumns+`
		FROM wishlist_items w
		JOIN products p ON p.id = w.product_id
		WHERE w.user_id = $1
		ORDER BY w.created_at DESC, w.id
		LIMIT $2 OFFSET $3`,
		userID, clampLimit(limit), max(offset, 0))
	if err != nil {
		return nil, 0, fmt.Errorf("list wishlist items: %w", err)
	}
	defer rows.Close()

	items := []domain.WishlistItem{}
	for rows.Next() {
		var item domain.WishlistItem
		err := scanProduct(rows, &item.Product,
			&item.ID, &item.UserID, &item.ProductID, &item.CreatedAt)
		if err != nil {
			return nil, 0, fmt.Errorf("scan wishlist item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate wishlist rows: %w", err)
	}
	return items, total, nil
}

func (r *WishlistRepository) Delete(ctx context.Context, userID, productID string) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM wishlist_items WHERE user_id = $1 AND product_id = $2`, userID, productID)
	if err != nil {
		return fmt.Errorf("delete wishlist item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrWishlistEntryNotFound
	}
	return nil
}
