package dto

import (
	"github.com/developerUmair/ecommerce-backend/internal/application/auth"
	"github.com/developerUmair/ecommerce-backend/internal/domain"
)

func ToUserView(u domain.User) UserView {
	return UserView{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		IsAdmin:   u.IsAdmin,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func ToAuthData(u domain.User, t auth.AuthTokens) AuthData {
	return AuthData{
		User:        ToUserView(u),
		AccessToken: t.AccessToken,
		TokenType:   t.TokenType,
		ExpiresIn:   t.ExpiresIn,
	}
}

func ToCategoryView(c *domain.Category) CategoryView {
	return CategoryView{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		ParentID:    c.ParentID,
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func ToCategoryViews(cs []*domain.Category) []CategoryView {
	out := make([]CategoryView, 0, len(cs))
	for _, c := range cs {
		out = append(out, ToCategoryView(c))
	}
	return out
}

func ToProductView(p *domain.Product) ProductView {
	return ProductView{
		ID:             p.ID,
		Name:           p.Name,
		Description:    p.Description,
		Price:          p.Price,
		Stock:          p.Stock,
		ImageURL:       p.ImageURL,
		CategoryID:     p.CategoryID,
		SubCategoryIDs: p.SubCategoryIDs,
		Quantity:       p.Quantity,
		Sold:           p.Sold,
		Rating:         p.Rating,
		NumReviews:     p.NumReviews,
		Tags:           p.Tags,
		Specifications: p.Specifications,
		Variants:       p.Variants,
		IsFeatured:     p.IsFeatured,
		IsActive:       p.IsActive,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func ToProductViews(ps []*domain.Product) []ProductView {
	out := make([]ProductView, 0, len(ps))
	for _, p := range ps {
		out = append(out, ToProductView(p))
	}
	return out
}
