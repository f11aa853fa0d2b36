package catalog

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/developerUmair/ecommerce-backend/internal/domain"
)

type fakeCategoryStore struct {
	byID   map[string]*domain.Category
	byName map[string]*domain.Category
}

func newFakeCategoryStore() *fakeCategoryStore {
	return &fakeCategoryStore{
		byID:   map[string]*domain.Category{},
		byName: map[string]*domain.Category{},
	}
}

func (s *fakeCategoryStore) Create(ctx context.Context, c *domain.Category) error {
	if _, ok := s.byName[c.Name]; ok {
		return domain.ErrCategoryNameTaken()
	}
	s.byID[c.ID] = c
	s.byName[c.Name] = c
	return nil
}

func (s *fakeCategoryStore) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	if c, ok := s.byID[id]; ok {
		return c, nil
	}
	return nil, domain.ErrCategoryNotFound()
}

func (s *fakeCategoryStore) GetByName(ctx context.Context, name string) (*domain.Category, error) {
	if c, ok := s.byName[name]; ok {
		return c, nil
	}
	return nil, domain.ErrCategoryNotFound()
}

func (s *fakeCategoryStore) List(ctx context.Context) ([]*domain.Category, error) {
	out := make([]*domain.Category, 0, len(s.byID))
	for _, c := range s.byID {
		out = append(out, c)
	}
	return out, nil
}

func (s *fakeCategoryStore) Update(ctx context.Context, c *domain.Category) error {
	if _, ok := s.byID[c.ID]; !ok {
		return domain.ErrCategoryNotFound()
	}
	s.byID[c.ID] = c
	return nil
}

type fakeProductStore struct {
	byID map[string]*domain.Product
}

func newFakeProductStore() *fakeProductStore {
	return &fakeProductStore{byID: map[string]*domain.Product{}}
}

func (s *fakeProductStore) Create(ctx context.Context, p *domain.Product) error {
	s.byID[p.ID] = p
	return nil
}

func (s *fakeProductStore) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	if p, ok := s.byID[id]; ok {
		return p, nil
	}
	return nil, domain.ErrProductNotFound()
}

func (s *fakeProductStore) List(ctx context.Context) ([]*domain.Product, error) {
	out := make([]*domain.Product, 0, len(s.byID))
	for _, p := range s.byID {
		out = append(out, p)
	}
	return out, nil
}

func (s *fakeProductStore) ListByCategory(ctx context.Context, categoryID string) ([]*domain.Product, error) {
	var out []*domain.Product
	for _, p := range s.byID {
		if p.CategoryID == categoryID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *fakeProductStore) Update(ctx context.Context, p *domain.Product) error {
	if _, ok := s.byID[p.ID]; !ok {
		return domain.ErrProductNotFound()
	}
	s.byID[p.ID] = p
	return nil
}

func (s *fakeProductStore) Delete(ctx context.Context, id string) error {
	if _, ok := s.byID[id]; !ok {
		return domain.ErrProductNotFound()
	}
	delete(s.byID, id)
	return nil
}

type fakeMedia struct {
	putErr  error
	lastKey string
}

func (m *fakeMedia) Put(ctx context.Context, objectKey, contentType string, body io.Reader, size int64) (string, error) {
	if m.putErr != nil {
		return "", m.putErr
	}
	_, _ = io.Copy(io.Discard, body)
	m.lastKey = objectKey
	return "https://cdn.example.com/" + objectKey, nil
}

// fakeCache records keys only; values round-trip through the real redis
// client's tests.
type fakeCache struct {
	sets    []string
	deletes []string
}

func (c *fakeCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	return false, nil
}

func (c *fakeCache) Set(ctx context.Context, key string, val any, ttl time.Duration) error {
	c.sets = append(c.sets, key)
	return nil
}

func (c *fakeCache) Delete(ctx context.Context, keys ...string) error {
	c.deletes = append(c.deletes, keys...)
	return nil
}

func newCatalogService(cats *fakeCategoryStore, prods *fakeProductStore, media *fakeMedia, cache Cache) *Service {
	return NewService(cats, prods, media, cache, Config{CacheTTL: time.Minute}, zerolog.Nop())
}

func seedCategory(t *testing.T, svc *Service) *domain.Category {
	t.Helper()
	c, err := svc.CreateCategory(context.Background(), "Electronics", "gadgets", nil)
	require.NoError(t, err)
	return c
}

func TestCreateCategory(t *testing.T) {
	ctx := context.Background()

	t.Run("success_and_duplicate", func(t *testing.T) {
		svc := newCatalogService(newFakeCategoryStore(), newFakeProductStore(), &fakeMedia{}, nil)

		c, err := svc.CreateCategory(ctx, "Electronics", "gadgets", nil)
		require.NoError(t, err)
		assert.True(t, c.IsActive)

		_, err = svc.CreateCategory(ctx, "Electronics", "again", nil)
		assert.True(t, domain.Is(err, "category_name_taken"), "got %v", err)
	})

	t.Run("unknown_parent", func(t *testing.T) {
		svc := newCatalogService(newFakeCategoryStore(), newFakeProductStore(), &fakeMedia{}, nil)
		parent := "no-such-id"
		_, err := svc.CreateCategory(ctx, "Phones", "", &parent)
		assert.True(t, domain.Is(err, "category_not_found"), "got %v", err)
	})
}

func validUpload() ImageUpload {
	return ImageUpload{
		Filename:    "kb.png",
		ContentType: "image/png",
		Size:        128,
		Body:        bytes.NewReader(make([]byte, 128)),
	}
}

func TestAddProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("uploads_then_persists", func(t *testing.T) {
		cats := newFakeCategoryStore()
		prods := newFakeProductStore()
		media := &fakeMedia{}
		svc := newCatalogService(cats, prods, media, nil)
		cat := seedCategory(t, svc)

		p, err := svc.AddProduct(ctx, AddProductParams{
			Name:        "Keyboard",
			Description: "mechanical",
			Price:       79.99,
			Stock:       5,
			Quantity:    5,
			CategoryID:  cat.ID,
			Image:       validUpload(),
		})
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(p.ImageURL, "https://cdn.example.com/products/"))
		assert.True(t, strings.HasSuffix(media.lastKey, ".png"))
		assert.Len(t, prods.byID, 1)
	})

	t.Run("media_failure_is_upstream_and_nothing_stored", func(t *testing.T) {
		cats := newFakeCategoryStore()
		prods := newFakeProductStore()
		svc := newCatalogService(cats, prods, &fakeMedia{putErr: errors.New("minio 503")}, nil)
		cat := seedCategory(t, svc)

		_, err := svc.AddProduct(ctx, AddProductParams{
			Name:        "Keyboard",
			Description: "mechanical",
			Price:       79.99,
			CategoryID:  cat.ID,
			Image:       validUpload(),
		})
		assert.True(t, domain.Is(err, "media_upload_failed"), "got %v", err)
		assert.Empty(t, prods.byID)
	})

	t.Run("unknown_category", func(t *testing.T) {
		svc := newCatalogService(newFakeCategoryStore(), newFakeProductStore(), &fakeMedia{}, nil)
		_, err := svc.AddProduct(ctx, AddProductParams{
			Name:        "Keyboard",
			Description: "mechanical",
			Price:       79.99,
			CategoryID:  "nope",
			Image:       validUpload(),
		})
		assert.True(t, domain.Is(err, "category_not_found"), "got %v", err)
	})

	t.Run("missing_image", func(t *testing.T) {
		svc := newCatalogService(newFakeCategoryStore(), newFakeProductStore(), &fakeMedia{}, nil)
		_, err := svc.AddProduct(ctx, AddProductParams{Name: "Keyboard"})
		assert.True(t, domain.Is(err, "missing_field"), "got %v", err)
	})
}

func TestListProductsCacheBehavior(t *testing.T) {
	ctx := context.Background()
	cats := newFakeCategoryStore()
	prods := newFakeProductStore()
	cache := &fakeCache{}
	svc := newCatalogService(cats, prods, &fakeMedia{}, cache)
	cat := seedCategory(t, svc)

	_, err := svc.AddProduct(ctx, AddProductParams{
		Name:        "Keyboard",
		Description: "mechanical",
		Price:       79.99,
		CategoryID:  cat.ID,
		Image:       validUpload(),
	})
	require.NoError(t, err)
	// writes invalidate the listing key
	assert.Contains(t, cache.deletes, productsCacheKey)

	out, err := svc.ListProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, out, 1)
	assert.Contains(t, cache.sets, productsCacheKey)

	require.NoError(t, svc.DeleteProduct(ctx, out[0].ID))
	assert.GreaterOrEqual(t, len(cache.deletes), 2)
}

func TestListProductsByCategoryUnknown(t *testing.T) {
	svc := newCatalogService(newFakeCategoryStore(), newFakeProductStore(), &fakeMedia{}, nil)
	_, err := svc.ListProductsByCategory(context.Background(), "nope")
	assert.True(t, domain.Is(err, "category_not_found"))
}

func TestUpdateProduct(t *testing.T) {
	ctx := context.Background()
	cats := newFakeCategoryStore()
	prods := newFakeProductStore()
	svc := newCatalogService(cats, prods, &fakeMedia{}, nil)
	cat := seedCategory(t, svc)

	p, err := svc.AddProduct(ctx, AddProductParams{
		Name:        "Keyboard",
		Description: "mechanical",
		Price:       79.99,
		CategoryID:  cat.ID,
		Image:       validUpload(),
	})
	require.NoError(t, err)

	price := 59.99
	updated, err := svc.UpdateProduct(ctx, p.ID, domain.ProductPatch{Price: &price})
	require.NoError(t, err)
	assert.Equal(t, 59.99, updated.Price)

	_, err = svc.UpdateProduct(ctx, "missing", domain.ProductPatch{Price: &price})
	assert.True(t, domain.Is(err, "product_not_found"))
}
