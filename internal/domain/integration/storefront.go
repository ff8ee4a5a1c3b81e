package integration

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// StorefrontStatus represents an order status in the external storefront's
// vocabulary
type StorefrontStatus string

const (
	StorefrontStatusPending    StorefrontStatus = "pending"
	StorefrontStatusProcessing StorefrontStatus = "processing"
	StorefrontStatusOnHold     StorefrontStatus = "on-hold"
	StorefrontStatusCompleted  StorefrontStatus = "completed"
	StorefrontStatusCancelled  StorefrontStatus = "cancelled"
	StorefrontStatusRefunded   StorefrontStatus = "refunded"
	StorefrontStatusFailed     StorefrontStatus = "failed"
)

// String returns the string representation of StorefrontStatus
func (s StorefrontStatus) String() string {
	return string(s)
}

// StorefrontCustomer is a customer record as reported by the storefront
type StorefrontCustomer struct {
	ID         int64
	FirstName  string
	LastName   string
	Email      string
	Phone      string
	Address    string
	City       string
	PostalCode string
}

// StorefrontProduct is a product record as reported by the storefront
type StorefrontProduct struct {
	ID          int64
	Name        string
	Description string
	Price       decimal.Decimal
	Published   bool
}

// StorefrontLineItem is a line item within a storefront order
type StorefrontLineItem struct {
	ProductID int64 // 0 when the storefront has no product reference
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
	Total     decimal.Decimal
}

// StorefrontOrder is an order record as reported by the storefront.
// Totals are authoritative: imports persist them as-is instead of repricing.
type StorefrontOrder struct {
	ID           int64
	CustomerID   int64 // 0 for guest checkouts
	Status       StorefrontStatus
	CreatedAt    time.Time
	Total        decimal.Decimal
	CustomerNote string
	Billing      StorefrontCustomer
	LineItems    []StorefrontLineItem
}

// StorefrontClient is the port interface to the external storefront.
// Implementations live in the infrastructure layer; tests substitute fakes.
// All calls are at-most-once: a failure surfaces as UPSTREAM_FAILURE after a
// single attempt, with no retry or backoff.
type StorefrontClient interface {
	// FetchCustomers pulls one page of customers
	FetchCustomers(ctx context.Context, page, perPage int) ([]StorefrontCustomer, error)

	// FetchProducts pulls one page of products
	FetchProducts(ctx context.Context, page, perPage int) ([]StorefrontProduct, error)

	// FetchOrders pulls one page of orders
	FetchOrders(ctx context.Context, page, perPage int) ([]StorefrontOrder, error)

	// UpdateOrderStatus pushes a status change to the storefront
	UpdateOrderStatus(ctx context.Context, orderID int64, status StorefrontStatus) error
}
