package v1

import (
	"context"

	"github.com/stretchr/testify/mock"

	"storefront-backend/internal/domain"
	"storefront-backend/internal/filter"
	"storefront-backend/internal/usecase"
)

type mockWishlistService struct {
	mock.Mock
}

func (m *mockWishlistService) AddToWishlist(ctx context.Context, userID, productID string) (*domain.WishlistEntry, error) {
	args := m.Called(ctx, userID, productID)
	if e := args.Get(0); e != nil {
		return e.(*domain.WishlistEntry), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockWishlistService) ListWishlist(ctx context.Context, userID string, page, limit int) ([]domain.WishlistItem, domain.Pagination, error) {
	args := m.Called(ctx, userID, page, limit)
	return args.Get(0).([]domain.WishlistItem), args.Get(1).(domain.Pagination), args.Error(2)
}

func (m *mockWishlistService) RemoveFromWishlist(ctx context.Context, userID, productID string) error {
	return m.Called(ctx, userID, productID).Error(0)
}

type mockCatalogService struct {
	mock.Mock
}

func (m *mockCatalogService) ListProducts(ctx context.Context, req usecase.ProductListRequest) (*usecase.ProductPage, error) {
	args := m.Called(ctx, req)
	if p := args.Get(0); p != nil {
		return p.(*usecase.ProductPage), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCatalogService) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	args := m.Called(ctx, id)
	if p := args.Get(0); p != nil {
		return p.(*domain.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCatalogService) GetCategories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	return args.Get(0).([]string), args.Error(1)
}

func (m *mockCatalogService) FilterOptions(ctx context.Context, state filter.State) (filter.View, error) {
	args := m.Called(ctx, state)
	return args.Get(0).(filter.View), args.Error(1)
}

func (m *mockCatalogService) InvalidateCatalog() {
	m.Called()
}

type mockContentService struct {
	mock.Mock
}

func (m *mockContentService) GetSection(ctx context.Context, key string) (*domain.ContentBlock, error) {
	args := m.Called(ctx, key)
	if b := args.Get(0); b != nil {
		return b.(*domain.ContentBlock), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockContentService) UpsertSection(ctx context.Context, key string, raw []byte) (*domain.ContentBlock, error) {
	args := m.Called(ctx, key, raw)
	if b := args.Get(0); b != nil {
		return b.(*domain.ContentBlock), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockContentService) ListSections(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	return args.Get(0).([]string), args.Error(1)
}

type mockSitemapService struct {
	mock.Mock
}

func (m *mockSitemapService) GenerateSitemap(ctx context.Context) ([]usecase.SitemapItem, error) {
	args := m.Called(ctx)
	if items := args.Get(0); items != nil {
		return items.([]usecase.SitemapItem), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockMediaStore struct {
	mock.Mock
}

func (m *mockMediaStore) UploadBuffer(ctx context.Context, data []byte, contentType string) (string, error) {
	args := m.Called(ctx, data, contentType)
	return args.String(0), args.Error(1)
}

func (m *mockMediaStore) DeleteFile(ctx context.Context, fileURL string) error {
	return m.Called(ctx, fileURL).Error(0)
}

type stubPinger struct {
	err error
}

func (p stubPinger) Ping(context.Context) error {
	return p.err
}
