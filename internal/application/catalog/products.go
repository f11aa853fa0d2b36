package catalog

import (
	"context"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"

	"github.com/developerUmair/ecommerce-backend/internal/domain"
	"github.com/developerUmair/ecommerce-backend/internal/logger"
)

// ImageUpload carries a validated multipart image part. The transport layer
// enforces the size cap and content type before it reaches here.
type ImageUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// AddProductParams is everything needed to create a product except the image
// URL, which is assigned after the media host upload succeeds.
type AddProductParams struct {
	Name           string
	Description    string
	Price          float64
	Stock          int
	CategoryID     string
	SubCategoryIDs []string
	Quantity       int
	Tags           []string
	Specifications []domain.Specification
	Variants       []domain.Variant
	IsFeatured     bool
	Image          ImageUpload
}

// AddProduct uploads the image first and only persists the product once the
// media host has accepted it, so a stored product always has a resolvable
// image URL. Upload failures surface as a 502 upstream error.
func (s *Service) AddProduct(ctx context.Context, p AddProductParams) (*domain.Product, error) {
	if p.Image.Body == nil || p.Image.Size == 0 {
		return nil, domain.ErrMissingField("image")
	}
	if _, err := s.categories.GetByID(ctx, strings.TrimSpace(p.CategoryID)); err != nil {
		return nil, err
	}

	key := productObjectKey(p.Image.Filename)
	imageURL, err := s.media.Put(ctx, key, p.Image.ContentType, p.Image.Body, p.Image.Size)
	if err != nil {
		return nil, domain.ErrMediaUpload(err)
	}
	logger.WithCtx(ctx).Debug().Str("object_key", key).Msg("product image uploaded")

	prod, err := domain.NewProduct(domain.NewProductParams{
		Name:           p.Name,
		Description:    p.Description,
		Price:          p.Price,
		Stock:          p.Stock,
		ImageURL:       imageURL,
		CategoryID:     p.CategoryID,
		SubCategoryIDs: p.SubCategoryIDs,
		Quantity:       p.Quantity,
		Tags:           p.Tags,
		Specifications: p.Specifications,
		Variants:       p.Variants,
		IsFeatured:     p.IsFeatured,
		IsActive:       true,
	}, s.clock.Now())
	if err != nil {
		return nil, err
	}

	if err := s.products.Create(ctx, prod); err != nil {
		return nil, err
	}
	s.invalidateProductCache(ctx)
	return prod, nil
}

func productObjectKey(filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	return "products/" + uuid.NewString() + ext
}

const productsCacheKey = "catalog:products"

func (s *Service) ListProducts(ctx context.Context) ([]*domain.Product, error) {
	if s.cache != nil {
		var cached []*domain.Product
		hit, err := s.cache.Get(ctx, productsCacheKey, &cached)
		if err != nil {
			s.log.Warn().Err(err).Msg("product cache read failed")
		} else if hit {
			return cached, nil
		}
	}

	out, err := s.products.List(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, productsCacheKey, out, s.cacheTTL); err != nil {
			s.log.Warn().Err(err).Msg("product cache write failed")
		}
	}
	return out, nil
}

func (s *Service) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	return s.products.GetByID(ctx, id)
}

// ListProductsByCategory returns 404 for an unknown category rather than an
// empty list, so clients can tell a bad id from an empty category.
func (s *Service) ListProductsByCategory(ctx context.Context, categoryID string) ([]*domain.Product, error) {
	if _, err := s.categories.GetByID(ctx, categoryID); err != nil {
		return nil, err
	}
	return s.products.ListByCategory(ctx, categoryID)
}

func (s *Service) UpdateProduct(ctx context.Context, id string, patch domain.ProductPatch) (*domain.Product, error) {
	p, err := s.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := p.ApplyUpdate(patch, s.clock.Now()); err != nil {
		return nil, err
	}
	if err := s.products.Update(ctx, p); err != nil {
		return nil, err
	}
	s.invalidateProductCache(ctx)
	return p, nil
}

func (s *Service) DeleteProduct(ctx context.Context, id string) error {
	if err := s.products.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateProductCache(ctx)
	return nil
}

func (s *Service) invalidateProductCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, productsCacheKey); err != nil {
		s.log.Warn().Err(err).Msg("product cache invalidation failed")
	}
}
