package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"storefront-backend/internal/domain"
)

type pair struct{ user, product string }

// memWishlistRepo enforces the (user, product) uniqueness the way the table constraint does.
type memWishlistRepo struct {
	mu      sync.Mutex
	entries map[pair]domain.WishlistEntry
	creates int

	// existsGate, when set, holds every Exists call after its read until
	// all gated callers have read.
	existsGate *sync.WaitGroup
}

func newMemWishlistRepo() *memWishlistRepo {
	return &memWishlistRepo{entries: map[pair]domain.WishlistEntry{}}
}

func (r *memWishlistRepo) Create(_ context.Context, e *domain.WishlistEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.creates++
	k := pair{e.UserID, e.ProductID}
	if _, ok := r.entries[k]; ok {
		return domain.ErrWishlistEntryExists
	}
	e.CreatedAt = time.Now()
	r.entries[k] = *e
	return nil
}

// Exists reads the map first and only then waits at the gate, so every
// gated caller observes the state from before any of them inserted.
func (r *memWishlistRepo) Exists(_ context.Context, userID, productID string) (bool, error) {
	r.mu.Lock()
	_, ok := r.entries[pair{userID, productID}]
	r.mu.Unlock()

	if r.existsGate != nil {
		r.existsGate.Done()
		r.existsGate.Wait()
	}
	return ok, nil
}

func (r *memWishlistRepo) ListByUser(_ context.Context, userID string, limit, offset int) ([]domain.WishlistItem, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []domain.WishlistItem
	for k, e := range r.entries {
		if k.user == userID {
			items = append(items, domain.WishlistItem{WishlistEntry: e})
		}
	}
	total := int64(len(items))
	if offset >= len(items) {
		return []domain.WishlistItem{}, total, nil
	}
	return items[offset:min(offset+limit, len(items))], total, nil
}

func (r *memWishlistRepo) Delete(_ context.Context, userID, productID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	k := pair{userID, productID}
	if _, ok := r.entries[k]; !ok {
		return domain.ErrWishlistEntryNotFound
	}
	delete(r.entries, k)
	return nil
}

func (r *memWishlistRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

type mockProductRepo struct {
	mock.Mock
}

func (m *mockProductRepo) Exists(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockProductRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	args := m.Called(ctx, id)
	if p := args.Get(0); p != nil {
		return p.(*domain.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProductRepo) List(ctx context.Context, f domain.ProductFilter) ([]domain.Product, int64, error) {
	args := m.Called(ctx, f)
	var products []domain.Product
	if p := args.Get(0); p != nil {
		products = p.([]domain.Product)
	}
	return products, args.Get(1).(int64), args.Error(2)
}

func (m *mockProductRepo) Categories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	var cats []string
	if c := args.Get(0); c != nil {
		cats = c.([]string)
	}
	return cats, args.Error(1)
}

type mockContentRepo struct {
	mock.Mock
}

func (m *mockContentRepo) GetByKey(ctx context.Context, key string) (*domain.ContentBlock, error) {
	args := m.Called(ctx, key)
	if b := args.Get(0); b != nil {
		return b.(*domain.ContentBlock), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockContentRepo) Upsert(ctx context.Context, key string, content []byte) (*domain.ContentBlock, error) {
	args := m.Called(ctx, key, content)
	if b := args.Get(0); b != nil {
		return b.(*domain.ContentBlock), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockContentRepo) ListKeys(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	return args.Get(0).([]string), args.Error(1)
}

type recordingTracker struct {
	mu      sync.Mutex
	tracked []domain.WishlistEntry
}

func (t *recordingTracker) TrackAddToWishlist(_ context.Context, e domain.WishlistEntry) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.tracked = append(t.tracked, e)
}
