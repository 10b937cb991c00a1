package usecase

import (
	"bytes"
	"context"
	"errors"
	"slices"
	"time"

	"github.com/goccy/go-json"

	"storefront-backend/config"
	"storefront-backend/internal/domain"
	"storefront-backend/pkg/apperror"
	"storefront-backend/pkg/cache"
	"storefront-backend/pkg/logger"
	"storefront-backend/pkg/validator"
)

const maxSectionKeyLen = 64

type ContentUsecase struct {
	repo  domain.ContentRepository
	cache cache.CacheService
	cfg   *config.Config
	now   func() time.Time
}

func NewContentUsecase(repo domain.ContentRepository, cache cache.CacheService, cfg *config.Config) *ContentUsecase {
	return &ContentUsecase{
		repo:  repo,
		cache: cache,
		cfg:   cfg,
		now:   time.Now,
	}
}

// GetSection returns the live content for key. Stored blocks that are
// inactive or outside their schedule fall back to the built-in default.
func (u *ContentUsecase) GetSection(ctx context.Context, key string) (*domain.ContentBlock, error) {
	if err := validateSectionKey(key); err != nil {
		return nil, err
	}

	cacheKey := "content:" + key
	if val, found := u.cache.Get(cacheKey); found {
		return val.(*domain.ContentBlock), nil
	}

	block, err := u.repo.GetByKey(ctx, key)
	switch {
	case err == nil && block.IsCurrentlyActive(u.now()):
	case err == nil || errors.Is(err, domain.ErrContentNotFound):
		if block, err = defaultBlock(key); err != nil {
			return nil, err
		}
	default:
		return nil, apperror.NewInternal(err)
	}

	u.cache.Set(cacheKey, block, u.cfg.CacheContentTTL)
	return block, nil
}

// UpsertSection stores raw section JSON. Known sections are decoded strictly
// and validated; other keys only need to be a JSON object.
func (u *ContentUsecase) UpsertSection(ctx context.Context, key string, raw []byte) (*domain.ContentBlock, error) {
	if err := validateSectionKey(key); err != nil {
		return nil, err
	}

	content, err := normalizeSection(key, raw)
	if err != nil {
		return nil, err
	}

	block, err := u.repo.Upsert(ctx, key, content)
	if err != nil {
		return nil, apperror.NewInternal(err)
	}
	u.cache.Delete("content:" + key)

	logger.WithContext(ctx).Info().Str("section_key", key).Msg("Content section updated")
	return block, nil
}

// ListSections returns every editable section key: stored keys plus the
// sections that have built-in defaults, sorted.
func (u *ContentUsecase) ListSections(ctx context.Context) ([]string, error) {
	keys, err := u.repo.ListKeys(ctx)
	if err != nil {
		return nil, apperror.NewInternal(err)
	}
	for _, k := range []string{domain.SectionFAQ, domain.SectionVideo} {
		if !slices.Contains(keys, k) {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)
	return keys, nil
}

func normalizeSection(key string, raw []byte) ([]byte, error) {
	var target any
	switch key {
	case domain.SectionFAQ:
		target = &domain.FAQSection{}
	case domain.SectionVideo:
		target = &domain.VideoSection{}
	default:
		var obj map[string]any
		if err := json.Unmarshal(raw, &obj); err != nil || obj == nil {
			return nil, apperror.NewInvalidInput("Invalid input: content must be a JSON object")
		}
		return raw, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(target); err != nil {
		return nil, apperror.Wrap(apperror.InvalidInput, "Invalid input: malformed "+key+" section", err)
	}
	if err := validator.Validate(target); err != nil {
		return nil, err
	}
	out, err := json.Marshal(target)
	if err != nil {
		return nil, apperror.NewInternal(err)
	}
	return out, nil
}

func defaultBlock(key string) (*domain.ContentBlock, error) {
	section, ok := domain.DefaultSection(key)
	if !ok {
		return nil, apperror.Wrap(apperror.NotFound, "Content not found", domain.ErrContentNotFound)
	}
	data, err := json.Marshal(section)
	if err != nil {
		return nil, apperror.NewInternal(err)
	}
	return &domain.ContentBlock{
		SectionKey: key,
		Content:    domain.RawJSON(data),
		IsActive:   true,
	}, nil
}

func validateSectionKey(key string) error {
	if key == "" || len(key) > maxSectionKeyLen {
		return apperror.NewInvalidInput("Invalid input: section key is required")
	}
	for _, r := range key {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') && r != '-' && r != '_' {
			return apperror.NewInvalidInput("Invalid input: section key may only contain a-z, 0-9, '-' and '_'")
		}
	}
	return nil
}
