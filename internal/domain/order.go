package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Order is carried in the data model for parity with the catalog; no route
// serves it yet and payment handling stays out of scope.

type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

type OrderItem struct {
	ProductID       string
	Quantity        int
	Price           float64
	SelectedVariant string
}

type ShippingAddress struct {
	Address    string
	City       string
	PostalCode string
	Country    string
}

type Order struct {
	ID              string
	UserID          string
	Items           []OrderItem
	ShippingAddress ShippingAddress
	PaymentMethod   string
	ItemsPrice      float64
	TaxPrice        float64
	ShippingPrice   float64
	TotalPrice      float64
	IsPaid          bool
	PaidAt          *time.Time
	IsDelivered     bool
	DeliveredAt     *time.Time
	Status          OrderStatus
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func NewOrder(userID string, items []OrderItem, addr ShippingAddress, paymentMethod string, now time.Time) (*Order, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrMissingField("user")
	}
	if len(items) == 0 {
		return nil, ErrMissingField("order_items")
	}
	var itemsPrice float64
	for _, it := range items {
		if it.ProductID == "" {
			return nil, ErrMissingField("order_items.product")
		}
		if it.Quantity < 1 {
			return nil, ErrInvalidField("order_items.quantity", "cannot be less than 1")
		}
		if it.Price < 0 {
			return nil, ErrInvalidField("order_items.price", "must be >= 0")
		}
		itemsPrice += it.Price * float64(it.Quantity)
	}
	if addr.Address == "" || addr.City == "" || addr.PostalCode == "" || addr.Country == "" {
		return nil, ErrMissingField("shipping_address")
	}
	if strings.TrimSpace(paymentMethod) == "" {
		return nil, ErrMissingField("payment_method")
	}

	return &Order{
		ID:              uuid.NewString(),
		UserID:          userID,
		Items:           items,
		ShippingAddress: addr,
		PaymentMethod:   paymentMethod,
		ItemsPrice:      itemsPrice,
		TotalPrice:      itemsPrice,
		Status:          OrderPending,
		CreatedAt:       now.UTC(),
		UpdatedAt:       now.UTC(),
	}, nil
}
