package dto

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,password_strength"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type CreateCategoryRequest struct {
	Name        string  `json:"name" validate:"required,max=50"`
	Description string  `json:"description" validate:"max=500"`
	ParentID    *string `json:"parent_id,omitempty"`
}

type UpdateCategoryRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

type UpdateProductRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Stock       *int     `json:"stock,omitempty"`
	Quantity    *int     `json:"quantity,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	IsFeatured  *bool    `json:"is_featured,omitempty"`
	IsActive    *bool    `json:"is_active,omitempty"`
}
