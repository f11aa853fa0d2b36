package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Specification struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type Variant struct {
	Name    string   `json:"name"`
	Options []string `json:"options"`
}

type Product struct {
	ID             string
	Name           string
	Description    string
	Price          float64
	Stock          int
	ImageURL       string
	CategoryID     string
	SubCategoryIDs []string
	Quantity       int
	Sold           int
	Rating         float64
	NumReviews     int
	Tags           []string
	Specifications []Specification
	Variants       []Variant
	IsFeatured     bool
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewProductParams carries everything needed to build a product. The image
// URL is assigned by the caller after the media host upload succeeds.
type NewProductParams struct {
	Name           string
	Description    string
	Price          float64
	Stock          int
	ImageURL       string
	CategoryID     string
	SubCategoryIDs []string
	Quantity       int
	Sold           int
	Rating         float64
	NumReviews     int
	Tags           []string
	Specifications []Specification
	Variants       []Variant
	IsFeatured     bool
	IsActive       bool
}

func NewProduct(p NewProductParams, now time.Time) (*Product, error) {
	p.Name = strings.TrimSpace(p.Name)
	p.Description = strings.TrimSpace(p.Description)
	p.CategoryID = strings.TrimSpace(p.CategoryID)

	if p.Name == "" {
		return nil, ErrMissingField("name")
	}
	if p.Description == "" {
		return nil, ErrMissingField("description")
	}
	if p.Price <= 0 {
		return nil, ErrInvalidField("price", "must be greater than zero")
	}
	if p.Stock < 0 {
		return nil, ErrInvalidField("stock", "must be >= 0")
	}
	if p.ImageURL == "" {
		return nil, ErrMissingField("image")
	}
	if p.CategoryID == "" {
		return nil, ErrMissingField("category")
	}
	if p.Quantity < 0 {
		return nil, ErrInvalidField("quantity", "cannot be less than zero")
	}

	return &Product{
		ID:             uuid.NewString(),
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
		CreatedAt:      now.UTC(),
		UpdatedAt:      now.UTC(),
	}, nil
}

// ProductPatch is a partial update; nil fields are untouched.
type ProductPatch struct {
	Name        *string
	Description *string
	Price       *float64
	Stock       *int
	Quantity    *int
	Tags        []string
	IsFeatured  *bool
	IsActive    *bool
}

func (p *Product) ApplyUpdate(patch ProductPatch, now time.Time) error {
	if patch.Name != nil {
		v := strings.TrimSpace(*patch.Name)
		if v == "" {
			return ErrInvalidField("name", "must be non-empty")
		}
		p.Name = v
	}
	if patch.Description != nil {
		v := strings.TrimSpace(*patch.Description)
		if v == "" {
			return ErrInvalidField("description", "must be non-empty")
		}
		p.Description = v
	}
	if patch.Price != nil {
		if *patch.Price <= 0 {
			return ErrInvalidField("price", "must be greater than zero")
		}
		p.Price = *patch.Price
	}
	if patch.Stock != nil {
		if *patch.Stock < 0 {
			return ErrInvalidField("stock", "must be >= 0")
		}
		p.Stock = *patch.Stock
	}
	if patch.Quantity != nil {
		if *patch.Quantity < 0 {
			return ErrInvalidField("quantity", "cannot be less than zero")
		}
		p.Quantity = *patch.Quantity
	}
	if patch.Tags != nil {
		p.Tags = patch.Tags
	}
	if patch.IsFeatured != nil {
		p.IsFeatured = *patch.IsFeatured
	}
	if patch.IsActive != nil {
		p.IsActive = *patch.IsActive
	}
	p.UpdatedAt = now.UTC()
	return nil
}
