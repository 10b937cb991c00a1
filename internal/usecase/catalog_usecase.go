package usecase

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"storefront-backend/config"
	"storefront-backend/internal/domain"
	"storefront-backend/internal/filter"
	"storefront-backend/pkg/apperror"
	"storefront-backend/pkg/cache"
)

const categoriesCacheKey = "catalog:categories"

type CatalogUsecase struct {
	repo  domain.ProductRepository
	cache cache.CacheService
	cfg   *config.Config
}

func NewCatalogUsecase(repo domain.ProductRepository, cache cache.CacheService, cfg *config.Config) *CatalogUsecase {
	return &CatalogUsecase{
		repo:  repo,
		cache: cache,
		cfg:   cfg,
	}
}

// ProductListRequest is a parsed listing request.
type ProductListRequest struct {
	Filters filter.State
	Query   string
	Sort    string
	Page    int
	Limit   int
}

type ProductPage struct {
	Products   []domain.Product  `json:"data"`
	Pagination domain.Pagination `json:"pagination"`
	Filters    filter.State      `json:"filters"`
}

func (u *CatalogUsecase) ListProducts(ctx context.Context, req ProductListRequest) (*ProductPage, error) {
	if req.Sort != "" && !slices.Contains(domain.ProductSorts, req.Sort) {
		return nil, apperror.NewInvalidInput(fmt.Sprintf("Invalid input: sort must be one of %v", domain.ProductSorts))
	}
	if req.Filters.PriceRange != nil {
		if err := req.Filters.PriceRange.Validate(); err != nil {
			return nil, err
		}
	}
	page, limit := normalizePage(req.Page, req.Limit)

	f := req.Filters.ProductFilter()
	f.Query = req.Query
	f.Sort = req.Sort
	f.Limit = limit
	f.Offset = (page - 1) * limit

	products, total, err := u.repo.List(ctx, f)
	if err != nil {
		return nil, apperror.NewInternal(err)
	}
	return &ProductPage{
		Products:   products,
		Pagination: domain.NewPagination(page, limit, total),
		Filters:    req.Filters,
	}, nil
}

func (u *CatalogUsecase) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	key := "product:id:" + id
	if val, found := u.cache.Get(key); found {
		return val.(*domain.Product), nil
	}

	product, err := u.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return nil, apperror.Wrap(apperror.NotFound, MsgProductNotFound, err)
		}
		return nil, apperror.NewInternal(err)
	}

	u.cache.Set(key, product, u.cfg.CacheProductTTL)
	return product, nil
}

// GetCategories returns the catalog categories, or the preset list while the catalog is empty.
func (u *CatalogUsecase) GetCategories(ctx context.Context) ([]string, error) {
	if val, found := u.cache.Get(categoriesCacheKey); found {
		return val.([]string), nil
	}

	cats, err := u.repo.Categories(ctx)
	if err != nil {
		return nil, apperror.NewInternal(err)
	}
	if len(cats) == 0 {
		cats = slices.Clone(filter.Categories)
	}

	u.cache.Set(categoriesCacheKey, cats, u.cfg.CacheCategoryTTL)
	return cats, nil
}

// InvalidateCatalog drops cached products, categories and the sitemap after
// the catalog changed outside this service.
func (u *CatalogUsecase) InvalidateCatalog() {
	u.cache.DeletePrefix("product:")
	u.cache.Delete(categoriesCacheKey)
	u.cache.Delete(sitemapCacheKey)
}

// FilterOptions renders the sidebar for state.
func (u *CatalogUsecase) FilterOptions(ctx context.Context, state filter.State) (filter.View, error) {
	cats, err := u.GetCategories(ctx)
	if err != nil {
		return filter.View{}, err
	}
	return filter.NewSidebar(state, nil, filter.WithCategories(cats)).View(), nil
}
