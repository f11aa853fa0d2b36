package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Category struct {
	ID          string
	Name        string
	Description string
	ParentID    *string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewCategory(name, description string, parentID *string, now time.Time) (*Category, error) {
	name = strings.TrimSpace(name)
	description = strings.TrimSpace(description)

	if name == "" {
		return nil, ErrMissingField("name")
	}
	if len(name) > 50 {
		return nil, ErrInvalidField("name", "must be <= 50 characters")
	}
	if len(description) > 500 {
		return nil, ErrInvalidField("description", "must be <= 500 characters")
	}
	if parentID != nil && strings.TrimSpace(*parentID) == "" {
		parentID = nil
	}

	return &Category{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		ParentID:    parentID,
		IsActive:    true,
		CreatedAt:   now.UTC(),
		UpdatedAt:   now.UTC(),
	}, nil
}

// ApplyUpdate patches the mutable fields. Nil pointers leave a field as is.
func (c *Category) ApplyUpdate(name, description *string, isActive *bool, now time.Time) error {
	if name != nil {
		v := strings.TrimSpace(*name)
		if v == "" || len(v) > 50 {
			return ErrInvalidField("name", "must be non-empty and <= 50 characters")
		}
		c.Name = v
	}
	if description != nil {
		v := strings.TrimSpace(*description)
		if len(v) > 500 {
			return ErrInvalidField("description", "must be <= 500 characters")
		}
		c.Description = v
	}
	if isActive != nil {
		c.IsActive = *isActive
	}
	c.UpdatedAt = now.UTC()
	return nil
}
