package postgres

import (
	"context"
	"database/sql"
	"strings"

	"github.com/developerUmair/ecommerce-backend/internal/domain"
)

type CategoryRepo struct {
	db *sql.DB
}

func NewCategoryRepo(db *sql.DB) *CategoryRepo {
	return &CategoryRepo{db: db}
}

const categoryColumns = `id, name, description, parent_id, is_active, created_at, updated_at`

func scanCategory(scan func(dest ...any) error) (*domain.Category, error) {
	var c domain.Category
	err := scan(
		&c.ID,
		&c.Name,
		&c.Description,
		&c.ParentID,
		&c.IsActive,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CategoryRepo) Create(ctx context.Context, c *domain.Category) error {
	const query = `
INSERT INTO categories (id, name, description, parent_id, is_active, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7);
`
	_, err := r.db.ExecContext(ctx, query,
		c.ID, c.Name, c.Description, c.ParentID, c.IsActive, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrCategoryNameTaken()
		}
		return domain.ErrDBUnavailable(err)
	}
	return nil
}

func (r *CategoryRepo) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, domain.ErrMissingField("id")
	}

	const query = `
SELECT ` + categoryColumns + `
FROM categories
WHERE id = $1
LIMIT 1;
`
	c, err := scanCategory(r.db.QueryRowContext(ctx, query, id).Scan)
	if err != nil {
		if isNoRows(err) {
			return nil, domain.ErrCategoryNotFound()
		}
		return nil, domain.ErrDBUnavailable(err)
	}
	return c, nil
}

func (r *CategoryRepo) GetByName(ctx context.Context, name string) (*domain.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ErrMissingField("name")
	}

	const query = `
SELECT ` + categoryColumns + `
FROM categories
WHERE name = $1
LIMIT 1;
`
	c, err := scanCategory(r.db.QueryRowContext(ctx, query, name).Scan)
	if err != nil {
		if isNoRows(err) {
			return nil, domain.ErrCategoryNotFound()
		}
		return nil, domain.ErrDBUnavailable(err)
	}
	return c, nil
}

func (r *CategoryRepo) List(ctx context.Context) ([]*domain.Category, error) {
	const query = `
SELECT ` + categoryColumns + `
FROM categories
ORDER BY name ASC;
`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, domain.ErrDBUnavailable(err)
	}
	defer rows.Close()

	var out []*domain.Category
	for rows.Next() {
		c, err := scanCategory(rows.Scan)
		if err != nil {
			return nil, domain.ErrDBUnavailable(err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.ErrDBUnavailable(err)
	}
	return out, nil
}

func (r *CategoryRepo) Update(ctx context.Context, c *domain.Category) error {
	const query = `
UPDATE categories
SET name = $2, description = $3, parent_id = $4, is_active = $5, updated_at = $6
WHERE id = $1;
`
	res, err := r.db.ExecContext(ctx, query,
		c.ID, c.Name, c.Description, c.ParentID, c.IsActive, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrCategoryNameTaken()
		}
		return domain.ErrDBUnavailable(err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return domain.ErrCategoryNotFound()
	}
	return nil
}
