package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validProductParams() NewProductParams {
	return NewProductParams{
		Name:        "Keyboard",
		Description: "mechanical, 87 keys",
		Price:       79.99,
		Stock:       10,
		ImageURL:    "https://cdn.example.com/products/kb.png",
		CategoryID:  "cat-1",
		Quantity:    10,
	}
}

func TestNewProduct(t *testing.T) {
	now := time.Now()

	t.Run("success", func(t *testing.T) {
		p, err := NewProduct(validProductParams(), now)
		require.NoError(t, err)
		assert.NotEmpty(t, p.ID)
		assert.Equal(t, now.UTC(), p.CreatedAt)
	})

	cases := []struct {
		name   string
		mutate func(*NewProductParams)
		code   string
	}{
		{"missing_name", func(p *NewProductParams) { p.Name = " " }, "missing_field"},
		{"missing_description", func(p *NewProductParams) { p.Description = "" }, "missing_field"},
		{"zero_price", func(p *NewProductParams) { p.Price = 0 }, "invalid_field"},
		{"negative_stock", func(p *NewProductParams) { p.Stock = -1 }, "invalid_field"},
		{"missing_image", func(p *NewProductParams) { p.ImageURL = "" }, "missing_field"},
		{"missing_category", func(p *NewProductParams) { p.CategoryID = "" }, "missing_field"},
		{"negative_quantity", func(p *NewProductParams) { p.Quantity = -3 }, "invalid_field"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			params := validProductParams()
			tc.mutate(&params)
			_, err := NewProduct(params, now)
			assert.True(t, Is(err, tc.code), "want %s, got %v", tc.code, err)
		})
	}
}

func TestProductApplyUpdate(t *testing.T) {
	now := time.Now()
	p, err := NewProduct(validProductParams(), now)
	require.NoError(t, err)

	price := 59.99
	featured := true
	later := now.Add(time.Minute)
	require.NoError(t, p.ApplyUpdate(ProductPatch{Price: &price, IsFeatured: &featured}, later))

	assert.Equal(t, 59.99, p.Price)
	assert.True(t, p.IsFeatured)
	assert.Equal(t, later.UTC(), p.UpdatedAt)

	bad := -5.0
	assert.Error(t, p.ApplyUpdate(ProductPatch{Price: &bad}, later))
}

func TestOrderStatus(t *testing.T) {
	assert.True(t, OrderPending.Valid())
	assert.False(t, OrderStatus("shipped!").Valid())
}
