package catalog

import (
	"context"
	"io"
	"time"

	"github.com/developerUmair/ecommerce-backend/internal/domain"
)

// CategoryStore is the persistence port for categories.
type CategoryStore interface {
	Create(ctx context.Context, c *domain.Category) error
	GetByID(ctx context.Context, id string) (*domain.Category, error)
	GetByName(ctx context.Context, name string) (*domain.Category, error)
	List(ctx context.Context) ([]*domain.Category, error)
	Update(ctx context.Context, c *domain.Category) error
}

// ProductStore is the persistence port for products.
type ProductStore interface {
	Create(ctx context.Context, p *domain.Product) error
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context) ([]*domain.Product, error)
	ListByCategory(ctx context.Context, categoryID string) ([]*domain.Product, error)
	Update(ctx context.Context, p *domain.Product) error
	Delete(ctx context.Context, id string) error
}

// MediaStore uploads product images to the media host and returns the
// public URL.
type MediaStore interface {
	Put(ctx context.Context, objectKey, contentType string, body io.Reader, size int64) (string, error)
}

// Cache is a best-effort read cache for catalog listings. Errors are
// treated as misses; a nil Cache disables caching entirely.
type Cache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, val any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}
