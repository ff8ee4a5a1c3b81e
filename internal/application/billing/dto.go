package billing

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/figurine/backend/internal/domain/billing"
	"github.com/figurine/backend/internal/domain/shared"
)

// =============================================================================
// Payment method DTOs
// =============================================================================

// CreatePaymentMethodRequest represents a request to create a payment method
type CreatePaymentMethodRequest struct {
	Name            string          `json:"name" binding:"required,min=1,max=255"`
	CommissionType  string          `json:"commission_type" binding:"required,oneof=fixed percentage"`
	CommissionValue decimal.Decimal `json:"commission_value"`
}

// UpdatePaymentMethodRequest represents a request to update a payment method
type UpdatePaymentMethodRequest struct {
	Name            string          `json:"name" binding:"required,min=1,max=255"`
	CommissionType  string          `json:"commission_type" binding:"required,oneof=fixed percentage"`
	CommissionValue decimal.Decimal `json:"commission_value"`
	IsActive        *bool           `json:"is_active"`
}

// PaymentMethodResponse represents a payment method in API responses
type PaymentMethodResponse struct {
	ID              uuid.UUID       `json:"id"`
	Name            string          `json:"name"`
	CommissionType  string       `json:"commission_type"`
	CommissionValue shared.Money `json:"commission_value"`
	IsActive        bool         `json:"is_active"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// ToPaymentMethodResponse converts a domain payment method to a response DTO
func ToPaymentMethodResponse(m *billing.PaymentMethod) PaymentMethodResponse {
	return PaymentMethodResponse{
		ID:              m.ID,
		Name:            m.Name,
		CommissionType:  m.CommissionType.String(),
		CommissionValue: shared.NewMoney(m.CommissionValue),
		IsActive:        m.IsActive,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// ToPaymentMethodResponses converts a slice of payment methods
func ToPaymentMethodResponses(methods []billing.PaymentMethod) []PaymentMethodResponse {
	responses := make([]PaymentMethodResponse, len(methods))
	for i := range methods {
		responses[i] = ToPaymentMethodResponse(&methods[i])
	}
	return responses
}

// =============================================================================
// Payment DTOs
// =============================================================================

// RecordPaymentRequest represents a request to record a payment against an order
type RecordPaymentRequest struct {
	OrderID         uuid.UUID       `json:"order_id" binding:"required"`
	PaymentMethodID uuid.UUID       `json:"payment_method_id" binding:"required"`
	Amount          decimal.Decimal `json:"amount" binding:"required"`
	PaymentDate     *time.Time      `json:"payment_date"`
	ReferenceNumber string          `json:"reference_number" binding:"max=255"`
	Notes           string          `json:"notes" binding:"max=1000"`
}

// UpdatePaymentRequest represents a request to update a recorded payment
type UpdatePaymentRequest struct {
	PaymentMethodID *uuid.UUID       `json:"payment_method_id"`
	Amount          *decimal.Decimal `json:"amount"`
	PaymentDate     *time.Time       `json:"payment_date"`
	ReferenceNumber *string          `json:"reference_number" binding:"omitempty,max=255"`
	Notes           *string          `json:"notes" binding:"omitempty,max=1000"`
}

// PaymentResponse represents a payment in API responses. OrderPaidAmount,
// OrderBalance and OrderFullyPaid carry the order totals as re-derived by the
// write that produced this response.
type PaymentResponse struct {
	ID               uuid.UUID    `json:"id"`
	OrderID          uuid.UUID    `json:"order_id"`
	PaymentMethodID  uuid.UUID    `json:"payment_method_id"`
	Amount           shared.Money `json:"amount"`
	CommissionAmount shared.Money `json:"commission_amount"`
	PaymentDate      time.Time    `json:"payment_date"`
	ReferenceNumber  string       `json:"reference_number"`
	Notes            string       `json:"notes"`
	OrderPaidAmount  shared.Money `json:"order_paid_amount"`
	OrderBalance     shared.Money `json:"order_balance"`
	OrderFullyPaid   bool         `json:"order_fully_paid"`
	CreatedAt        time.Time    `json:"created_at"`
	UpdatedAt        time.Time    `json:"updated_at"`
}

// ToPaymentResponse converts a domain payment to a response DTO
func ToPaymentResponse(p *billing.Payment) PaymentResponse {
	return PaymentResponse{
		ID:               p.ID,
		OrderID:          p.OrderID,
		PaymentMethodID:  p.PaymentMethodID,
		Amount:           shared.NewMoney(p.Amount),
		CommissionAmount: shared.NewMoney(p.CommissionAmount),
		PaymentDate:      p.PaymentDate,
		ReferenceNumber:  p.ReferenceNumber,
		Notes:            p.Notes,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

// ToPaymentResponses converts a slice of payments
func ToPaymentResponses(payments []billing.Payment) []PaymentResponse {
	responses := make([]PaymentResponse, len(payments))
	for i := range payments {
		responses[i] = ToPaymentResponse(&payments[i])
	}
	return responses
}
