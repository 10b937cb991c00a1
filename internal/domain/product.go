package domain

import (
	"context"
	"errors"
	"time"
)

type Product struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Slug          string    `json:"slug"`
	Description   string    `json:"description"`
	Category      string    `json:"category"`
	Price         float64   `json:"price"`
	Mukhi         string    `json:"mukhi,omitempty"`
	IsConsecrated bool      `json:"isConsecrated"`
	Images        []string  `json:"images"`
	IsActive      bool      `json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// Product sort orders accepted by ProductFilter.Sort.
const (
	SortNewest    = "newest"
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
	SortName      = "name"
)

var ProductSorts = []string{SortNewest, SortPriceAsc, SortPriceDesc, SortName}

// ProductFilter is the storage-level product query.
// Nil pointers and empty slices mean "no constraint".
type ProductFilter struct {
	Categories    []string
	MinPrice      *float64
	MaxPrice      *float64 // nil for an unbounded upper end
	Mukhi         []string
	IsConsecrated *bool
	Query         string
	Sort          string
	Limit         int
	Offset        int
}

var ErrProductNotFound = errors.New("product not found")

type ProductRepository interface {
	Exists(ctx context.Context, id string) (bool, error)
	GetByID(ctx context.Context, id string) (*Product, error)
	List(ctx context.Context, filter ProductFilter) ([]Product, int64, error)
	Categories(ctx context.Context) ([]string, error)
}
