package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/developerUmair/ecommerce-backend/internal/domain"
)

type ProductRepo struct {
	db *sql.DB
}

func NewProductRepo(db *sql.DB) *ProductRepo {
	return &ProductRepo{db: db}
}

const productColumns = `id, name, description, price, stock, image_url, category_id,
	sub_category_ids, quantity, sold, rating, num_reviews, tags, specifications,
	variants, is_featured, is_active, created_at, updated_at`

// List-valued product fields round-trip through JSONB columns instead of
// join tables.
func toJSONB(v any) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode jsonb: %w", err)
	}
	return b, nil
}

func scanProduct(scan func(dest ...any) error) (*domain.Product, error) {
	var (
		p                             domain.Product
		subIDs, tags, specs, variants []byte
	)
	err := scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.Price,
		&p.Stock,
		&p.ImageURL,
		&p.CategoryID,
		&subIDs,
		&p.Quantity,
		&p.Sold,
		&p.Rating,
		&p.NumReviews,
		&tags,
		&specs,
		&variants,
		&p.IsFeatured,
		&p.IsActive,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(subIDs, &p.SubCategoryIDs); err != nil {
		return nil, fmt.Errorf("decode sub_category_ids: %w", err)
	}
	if err := json.Unmarshal(tags, &p.Tags); err != nil {
		return nil, fmt.Errorf("decode tags: %w", err)
	}
	if err := json.Unmarshal(specs, &p.Specifications); err != nil {
		return nil, fmt.Errorf("decode specifications: %w", err)
	}
	if err := json.Unmarshal(variants, &p.Variants); err != nil {
		return nil, fmt.Errorf("decode variants: %w", err)
	}
	return &p, nil
}

func (r *ProductRepo) Create(ctx context.Context, p *domain.Product) error {
	subIDs, err := toJSONB(orEmpty(p.SubCategoryIDs))
	if err != nil {
		return domain.ErrInternal(err)
	}
	tags, err := toJSONB(orEmpty(p.Tags))
	if err != nil {
		return domain.ErrInternal(err)
	}
	specs, err := toJSONB(orEmptySpecs(p.Specifications))
	if err != nil {
		return domain.ErrInternal(err)
	}
	variants, err := toJSONB(orEmptyVariants(p.Variants))
	if err != nil {
		return domain.ErrInternal(err)
	}

	const query = `
INSERT INTO products (id, name, description, price, stock, image_url, category_id,
	sub_category_ids, quantity, sold, rating, num_reviews, tags, specifications,
	variants, is_featured, is_active, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19);
`
	_, err = r.db.ExecContext(ctx, query,
		p.ID, p.Name, p.Description, p.Price, p.Stock, p.ImageURL, p.CategoryID,
		subIDs, p.Quantity, p.Sold, p.Rating, p.NumReviews, tags, specs,
		variants, p.IsFeatured, p.IsActive, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return domain.ErrDBUnavailable(err)
	}
	return nil
}

func (r *ProductRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, domain.ErrMissingField("id")
	}

	const query = `
SELECT ` + productColumns + `
FROM products
WHERE id = $1
LIMIT 1;
`
	p, err := scanProduct(r.db.QueryRowContext(ctx, query, id).Scan)
	if err != nil {
		if isNoRows(err) {
			return nil, domain.ErrProductNotFound()
		}
		return nil, domain.ErrDBUnavailable(err)
	}
	return p, nil
}

func (r *ProductRepo) List(ctx context.Context) ([]*domain.Product, error) {
	const query = `
SELECT ` + productColumns + `
FROM products
ORDER BY created_at DESC;
`
	return r.queryProducts(ctx, query)
}

func (r *ProductRepo) ListByCategory(ctx context.Context, categoryID string) ([]*domain.Product, error) {
	categoryID = strings.TrimSpace(categoryID)
	if categoryID == "" {
		return nil, domain.ErrMissingField("category")
	}

	const query = `
SELECT ` + productColumns + `
FROM products
WHERE category_id = $1
ORDER BY created_at DESC;
`
	return r.queryProducts(ctx, query, categoryID)
}

func (r *ProductRepo) queryProducts(ctx context.Context, query string, args ...any) ([]*domain.Product, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, domain.ErrDBUnavailable(err)
	}
	defer rows.Close()

	var out []*domain.Product
	for rows.Next() {
		p, err := scanProduct(rows.Scan)
		if err != nil {
			return nil, domain.ErrDBUnavailable(err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.ErrDBUnavailable(err)
	}
	return out, nil
}

func (r *ProductRepo) Update(ctx context.Context, p *domain.Product) error {
	subIDs, err := toJSONB(orEmpty(p.SubCategoryIDs))
	if err != nil {
		return domain.ErrInternal(err)
	}
	tags, err := toJSONB(orEmpty(p.Tags))
	if err != nil {
		return domain.ErrInternal(err)
	}
	specs, err := toJSONB(orEmptySpecs(p.Specifications))
	if err != nil {
		return domain.ErrInternal(err)
	}
	variants, err := toJSONB(orEmptyVariants(p.Variants))
	if err != nil {
		return domain.ErrInternal(err)
	}

	const query = `
UPDATE products
SET name = $2, description = $3, price = $4, stock = $5, image_url = $6,
	category_id = $7, sub_category_ids = $8, quantity = $9, sold = $10,
	rating = $11, num_reviews = $12, tags = $13, specifications = $14,
	variants = $15, is_featured = $16, is_active = $17, updated_at = $18
WHERE id = $1;
`
	res, err := r.db.ExecContext(ctx, query,
		p.ID, p.Name, p.Description, p.Price, p.Stock, p.ImageURL,
		p.CategoryID, subIDs, p.Quantity, p.Sold,
		p.Rating, p.NumReviews, tags, specs,
		variants, p.IsFeatured, p.IsActive, p.UpdatedAt,
	)
	if err != nil {
		return domain.ErrDBUnavailable(err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return domain.ErrProductNotFound()
	}
	return nil
}

func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.ErrMissingField("id")
	}

	const query = `DELETE FROM products WHERE id = $1;`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return domain.ErrDBUnavailable(err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return domain.ErrProductNotFound()
	}
	return nil
}

// nil slices marshal to JSON null; stored columns always hold arrays.
func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func orEmptySpecs(s []domain.Specification) []domain.Specification {
	if s == nil {
		return []domain.Specification{}
	}
	return s
}

func orEmptyVariants(v []domain.Variant) []domain.Variant {
	if v == nil {
		return []domain.Variant{}
	}
	return v
}
