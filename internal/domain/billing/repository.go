package billing

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentRepository defines the interface for payment persistence
type PaymentRepository interface {
	// FindByID finds a payment by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Payment, error)

	// FindByOrderID lists all payments recorded against an order
	FindByOrderID(ctx context.Context, orderID uuid.UUID) ([]Payment, error)

	// FindAll lists all payments
	FindAll(ctx context.Context) ([]Payment, error)

	// SumByOrderID returns the sum of payment amounts for an order
	SumByOrderID(ctx context.Context, orderID uuid.UUID) (decimal.Decimal, error)

	// CountByMethodID counts payments recorded through a payment method
	CountByMethodID(ctx context.Context, methodID uuid.UUID) (int64, error)

	// Save creates or updates a payment
	Save(ctx context.Context, payment *Payment) error

	// Delete deletes a payment
	Delete(ctx context.Context, id uuid.UUID) error
}

// PaymentMethodRepository defines the interface for payment method persistence
type PaymentMethodRepository interface {
	// FindByID finds a payment method by ID
	FindByID(ctx context.Context, id uuid.UUID) (*PaymentMethod, error)

	// FindAll lists payment methods, optionally only active ones
	FindAll(ctx context.Context, activeOnly bool) ([]PaymentMethod, error)

	// Save creates or updates a payment method
	Save(ctx context.Context, method *PaymentMethod) error

	// Delete deletes a payment method
	Delete(ctx context.Context, id uuid.UUID) error
}
