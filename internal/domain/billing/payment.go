package billing

import (
	"time"

	"github.com/figurine/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Payment represents money received against an order through a payment
// method. The commission is computed from the method's rule at creation or
// update time and is not re-derived when the rule later changes.
type Payment struct {
	shared.BaseEntity
	OrderID          uuid.UUID       `gorm:"type:uuid;not null;index"`
	PaymentMethodID  uuid.UUID       `gorm:"type:uuid;not null"`
	Amount           decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CommissionAmount decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	PaymentDate      time.Time       `gorm:"type:date;not null"`
	ReferenceNumber  string          `gorm:"size:255"`
	Notes            string          `gorm:"size:1000"`
}

// TableName returns the table name for GORM
func (Payment) TableName() string {
	return "payments"
}

// NewPayment creates a new payment with its commission computed from the
// given method's current rule
func NewPayment(orderID uuid.UUID, method *PaymentMethod, amount decimal.Decimal, paymentDate time.Time, referenceNumber, notes string) (*Payment, error) {
	if orderID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ORDER", "Order ID cannot be empty")
	}
	if method == nil {
		return nil, shared.NewDomainError("INVALID_PAYMENT_METHOD", "Payment method is required")
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Payment amount must be greater than zero")
	}
	if paymentDate.IsZero() {
		paymentDate = time.Now()
	}
	return &Payment{
		BaseEntity:       shared.NewBaseEntity(),
		OrderID:          orderID,
		PaymentMethodID:  method.ID,
		Amount:           amount.Round(2),
		CommissionAmount: method.Commission(amount),
		PaymentDate:      paymentDate,
		ReferenceNumber:  referenceNumber,
		Notes:            notes,
	}, nil
}

// Reprice replaces the payment's amount and method and recomputes the
// commission from the (possibly new) method's current rule
func (p *Payment) Reprice(method *PaymentMethod, amount decimal.Decimal) error {
	if method == nil {
		return shared.NewDomainError("INVALID_PAYMENT_METHOD", "Payment method is required")
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_AMOUNT", "Payment amount must be greater than zero")
	}
	p.PaymentMethodID = method.ID
	p.Amount = amount.Round(2)
	p.CommissionAmount = method.Commission(amount)
	p.UpdatedAt = time.Now()
	return nil
}

// SetDetails updates the informational fields of the payment
func (p *Payment) SetDetails(paymentDate time.Time, referenceNumber, notes string) {
	if !paymentDate.IsZero() {
		p.PaymentDate = paymentDate
	}
	p.ReferenceNumber = referenceNumber
	p.Notes = notes
	p.UpdatedAt = time.Now()
}
