package catalog

import (
	"context"
	"strings"

	"github.com/developerUmair/ecommerce-backend/internal/domain"
)

// CreateCategory adds a new category. The unique index on the name column is
// the authoritative guard; the pre-check just gives a cleaner conflict on the
// common path.
func (s *Service) CreateCategory(ctx context.Context, name, description string, parentID *string) (*domain.Category, error) {
	if _, err := s.categories.GetByName(ctx, strings.TrimSpace(name)); err == nil {
		return nil, domain.ErrCategoryNameTaken()
	} else if !domain.Is(err, "category_not_found") && !domain.Is(err, "missing_field") {
		return nil, err
	}

	c, err := domain.NewCategory(name, description, parentID, s.clock.Now())
	if err != nil {
		return nil, err
	}

	if c.ParentID != nil {
		if _, err := s.categories.GetByID(ctx, *c.ParentID); err != nil {
			return nil, err
		}
	}

	if err := s.categories.Create(ctx, c); err != nil {
		return nil, err
	}
	s.invalidateCategoryCache(ctx)
	return c, nil
}

func (s *Service) GetCategory(ctx context.Context, id string) (*domain.Category, error) {
	return s.categories.GetByID(ctx, id)
}

const categoriesCacheKey = "catalog:categories"

func (s *Service) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	if s.cache != nil {
		var cached []*domain.Category
		hit, err := s.cache.Get(ctx, categoriesCacheKey, &cached)
		if err != nil {
			s.log.Warn().Err(err).Msg("category cache read failed")
		} else if hit {
			return cached, nil
		}
	}

	out, err := s.categories.List(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, categoriesCacheKey, out, s.cacheTTL); err != nil {
			s.log.Warn().Err(err).Msg("category cache write failed")
		}
	}
	return out, nil
}

func (s *Service) UpdateCategory(ctx context.Context, id string, name, description *string, isActive *bool) (*domain.Category, error) {
	c, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := c.ApplyUpdate(name, description, isActive, s.clock.Now()); err != nil {
		return nil, err
	}
	if err := s.categories.Update(ctx, c); err != nil {
		return nil, err
	}
	s.invalidateCategoryCache(ctx)
	return c, nil
}

func (s *Service) invalidateCategoryCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, categoriesCacheKey); err != nil {
		s.log.Warn().Err(err).Msg("category cache invalidation failed")
	}
}
