package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"github.com/jackc/pgx/v5"

	"storefront-backend/internal/domain"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

const productColumns = `p.id, p.name, p.slug, p.description, p.category, p.price::float8,
	COALESCE(p.mukhi, ''), p.is_consecrated, p.images, p.is_active, p.created_at, p.updated_at`

var productOrderBy = map[string]string{
	domain.SortNewest:    "p.created_at DESC, p.id",
	domain.SortPriceAsc:  "p.price ASC, p.id",
	domain.SortPriceDesc: "p.price DESC, p.id",
	domain.SortName:      "p.name ASC, p.id",
}

type ProductRepository struct {
	db DBTX
}

func NewProductRepository(db DBTX) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM products WHERE id = $1 AND is_active)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check product exists: %w", err)
	}
	return exists, nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+productColumns+` FROM products p WHERE p.id = $1 AND p.is_active`, id)

	var p domain.Product
	if err := scanProduct(row, &p); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// List returns one page of active products matching f and the total match count.
func (r *ProductRepository) List(ctx context.Context, f domain.ProductFilter) ([]domain.Product, int64, error) {
	where, args := buildProductWhere(f)

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM products p `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}

	orderBy, ok := productOrderBy[f.Sort]
	if !ok {
		orderBy = productOrderBy[domain.SortNewest]
	}
	limit := clampLimit(f.Limit)
	offset := max(f.Offset, 0)

	query := fmt.Sprintf(`SELECT %s FROM products p %s ORDER BY %s LIMIT $%d OFFSET $%d`,
		productColumns, where, orderBy, len(args)+1, len(args)+2)
	rows, err := r.db.Query(ctx, query, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		var p domain.Product
		if err := scanProduct(rows, &p); err != nil {
			return nil, 0, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate product rows: %w", err)
	}
	return products, total, nil
}

// Categories returns the distinct categories of active products.
func (r *ProductRepository) Categories(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx,
		`SELECT DISTINCT category FROM products WHERE is_active ORDER BY category`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	categories := []string{}
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate category rows: %w", err)
	}
	return categories, nil
}

func buildProductWhere(f domain.ProductFilter) (string, []any) {
	conds := []string{"p.is_active"}
	var args []any
	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if len(f.Categories) > 0 {
		add("p.category = ANY($%d)", f.Categories)
	}
	if f.MinPrice != nil {
		add("p.price >= $%d", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		add("p.price <= $%d", *f.MaxPrice)
	}
	if len(f.Mukhi) > 0 {
		add("p.mukhi = ANY($%d)", f.Mukhi)
	}
	if f.IsConsecrated != nil {
		add("p.is_consecrated = $%d", *f.IsConsecrated)
	}
	if q := strings.TrimSpace(f.Query); q != "" {
		add("(p.name ILIKE $%[1]d OR p.description ILIKE $%[1]d)", "%"+escapeLike(q)+"%")
	}
	return "WHERE " + strings.Join(conds, " AND "), args
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultListLimit
	}
	return min(limit, maxListLimit)
}

func scanProduct(row pgx.Row, p *domain.Product, extra ...any) error {
	var images []byte
	dest := append(extra,
		&p.ID, &p.Name, &p.Slug, &p.Description, &p.Category, &p.Price,
		&p.Mukhi, &p.IsConsecrated, &images, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	)
	if err := row.Scan(dest...); err != nil {
		return err
	}
	p.Images = []string{}
	if len(images) > 0 {
		if err := json.Unmarshal(images, &p.Images); err != nil {
			return fmt.Errorf("decode product images: %w", err)
		}
	}
	return nil
}
