package dto

import (
	"time"

	"github.com/developerUmair/ecommerce-backend/internal/domain"
)

// UserView never carries the password hash.
type UserView struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type AuthData struct {
	User        UserView `json:"user"`
	AccessToken string   `json:"token"`
	TokenType   string   `json:"token_type"`
	ExpiresIn   int64    `json:"expires_in"`
}

type CategoryView struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ParentID    *string   `json:"parent_id,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ProductView struct {
	ID             string                 `json:"id"`
	Name           string                 `json:"name"`
	Description    string                 `json:"description"`
	Price          float64                `json:"price"`
	Stock          int                    `json:"stock"`
	ImageURL       string                 `json:"image_url"`
	CategoryID     string                 `json:"category_id"`
	SubCategoryIDs []string               `json:"sub_category_ids"`
	Quantity       int                    `json:"quantity"`
	Sold           int                    `json:"sold"`
	Rating         float64                `json:"rating"`
	NumReviews     int                    `json:"num_reviews"`
	Tags           []string               `json:"tags"`
	Specifications []domain.Specification `json:"specifications"`
	Variants       []domain.Variant       `json:"variants"`
	IsFeatured     bool                   `json:"is_featured"`
	IsActive       bool                   `json:"is_active"`
	CreatedAt      time.Time              `json:"created_at"`
	UpdatedAt      time.Time              `json:"updated_at"`
}
