package usecase

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"storefront-backend/config"
	"storefront-backend/internal/domain"
	"storefront-backend/internal/filter"
	"storefront-backend/pkg/cache"
)

const (
	sitemapCacheKey    = "sitemap:items"
	sitemapPageSize    = 100
	sitemapMaxProducts = 5000
)

type SitemapItem struct {
	Loc        string
	LastMod    string
	ChangeFreq string
	Priority   float32
}

type SitemapUsecase struct {
	catalog *CatalogUsecase
	repo    domain.ProductRepository
	baseURL string
	cache   cache.CacheService
	cfg     *config.Config
}

func NewSitemapUsecase(catalog *CatalogUsecase, repo domain.ProductRepository, cache cache.CacheService, cfg *config.Config) *SitemapUsecase {
	return &SitemapUsecase{
		catalog: catalog,
		repo:    repo,
		baseURL: cfg.FrontendURL,
		cache:   cache,
		cfg:     cfg,
	}
}

func (u *SitemapUsecase) GenerateSitemap(ctx context.Context) ([]SitemapItem, error) {
	if val, found := u.cache.Get(sitemapCacheKey); found {
		return val.([]SitemapItem), nil
	}

	now := time.Now().Format("2006-01-02")
	var items []SitemapItem

	// 1. Static pages, root first
	for i, s := range []string{"", "/shop", "/wishlist", "/faq", "/about", "/contact"} {
		item := SitemapItem{Loc: u.baseURL + s, LastMod: now, ChangeFreq: "daily", Priority: 0.8}
		if i == 0 {
			item.Priority = 1.0
		}
		items = append(items, item)
	}

	// 2. Category listings, addressed by their filter query
	cats, err := u.catalog.GetCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}
	for _, c := range cats {
		q := filter.State{Category: []string{c}}.Query()
		items = append(items, SitemapItem{
			Loc:        u.shopURL(q),
			LastMod:    now,
			ChangeFreq: "daily",
			Priority:   0.8,
		})
	}

	// 3. Products
	for offset := 0; offset < sitemapMaxProducts; offset += sitemapPageSize {
		products, total, err := u.repo.List(ctx, domain.ProductFilter{
			Sort:   domain.SortNewest,
			Limit:  sitemapPageSize,
			Offset: offset,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to fetch products: %w", err)
		}
		for _, p := range products {
			items = append(items, SitemapItem{
				Loc:        fmt.Sprintf("%s/product/%s", u.baseURL, url.PathEscape(p.Slug)),
				LastMod:    p.UpdatedAt.Format("2006-01-02"),
				ChangeFreq: "weekly",
				Priority:   0.9,
			})
		}
		if len(products) < sitemapPageSize || int64(offset+len(products)) >= total {
			break
		}
	}

	u.cache.Set(sitemapCacheKey, items, u.cfg.CacheSitemapTTL)
	return items, nil
}

func (u *SitemapUsecase) shopURL(q url.Values) string {
	return u.baseURL + "/shop?" + q.Encode()
}
