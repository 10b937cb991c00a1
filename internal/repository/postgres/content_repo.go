package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"storefront-backend/internal/domain"
)

const contentColumns = `id::text, section_key, content, is_active, start_at, end_at, updated_at`

type ContentRepository struct {
	db DBTX
}

func NewContentRepository(db DBTX) *ContentRepository {
	return &ContentRepository{db: db}
}

func (r *ContentRepository) GetByKey(ctx context.Context, key string) (*domain.ContentBlock, error) {
	row := r.db.QueryRow(ctx, `SELECT `+contentColumns+` FROM content_blocks WHERE section_key = $1`, key)
	block, err := scanContentBlock(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrContentNotFound
		}
		return nil, fmt.Errorf("get content block: %w", err)
	}
	return block, nil
}

// Upsert stores content under key, keeping the existing schedule.
func (r *ContentRepository) Upsert(ctx context.Context, key string, content []byte) (*domain.ContentBlock, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO content_blocks (section_key, content)
		VALUES ($1, $2)
		ON CONFLICT (section_key) DO UPDATE
		SET content = EXCLUDED.content, updated_at = NOW()
		RETURNING `+contentColumns,
		key, content)
	block, err := scanContentBlock(row)
	if err != nil {
		return nil, fmt.Errorf("upsert content block: %w", err)
	}
	return block, nil
}

func (r *ContentRepository) ListKeys(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT section_key FROM content_blocks ORDER BY section_key`)
	if err != nil {
		return nil, fmt.Errorf("list content keys: %w", err)
	}
	defer rows.Close()

	keys := []string{}
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, fmt.Errorf("scan content key: %w", err)
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}

func scanContentBlock(row pgx.Row) (*domain.ContentBlock, error) {
	var (
		b       domain.ContentBlock
		content []byte
	)
	if err := row.Scan(&b.ID, &b.SectionKey, &content, &b.IsActive, &b.StartAt, &b.EndAt, &b.UpdatedAt); err != nil {
		return nil, err
	}
	b.Content = domain.RawJSON(content)
	return &b, nil
}
