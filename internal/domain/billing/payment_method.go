package billing

import (
	"strings"
	"time"

	"github.com/figurine/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// CommissionType represents how a payment channel's commission is computed
type CommissionType string

const (
	CommissionTypeFixed      CommissionType = "fixed"
	CommissionTypePercentage CommissionType = "percentage"
)

// IsValid checks if the commission type is valid
func (t CommissionType) IsValid() bool {
	return t == CommissionTypeFixed || t == CommissionTypePercentage
}

// String returns the string representation of CommissionType
func (t CommissionType) String() string {
	return string(t)
}

var oneHundred = decimal.NewFromInt(100)

// PaymentMethod represents a payment channel and its commission rule
type PaymentMethod struct {
	shared.BaseEntity
	Name            string          `gorm:"size:255;not null"`
	CommissionType  CommissionType  `gorm:"size:20;not null"`
	CommissionValue decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	IsActive        bool            `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (PaymentMethod) TableName() string {
	return "payment_methods"
}

// NewPaymentMethod creates a new payment method.
// Commission bounds are enforced here, at the method boundary: the value is
// never negative, and a percentage value cannot exceed 100.
func NewPaymentMethod(name string, commissionType CommissionType, commissionValue decimal.Decimal) (*PaymentMethod, error) {
	if err := validateCommission(name, commissionType, commissionValue); err != nil {
		return nil, err
	}
	return &PaymentMethod{
		BaseEntity:      shared.NewBaseEntity(),
		Name:            strings.TrimSpace(name),
		CommissionType:  commissionType,
		CommissionValue: commissionValue.Round(2),
		IsActive:        true,
	}, nil
}

// Update replaces the method's name and commission rule
func (m *PaymentMethod) Update(name string, commissionType CommissionType, commissionValue decimal.Decimal) error {
	if err := validateCommission(name, commissionType, commissionValue); err != nil {
		return err
	}
	m.Name = strings.TrimSpace(name)
	m.CommissionType = commissionType
	m.CommissionValue = commissionValue.Round(2)
	m.UpdatedAt = time.Now()
	return nil
}

// SetActive toggles whether the method can be used for new payments
func (m *PaymentMethod) SetActive(active bool) {
	m.IsActive = active
	m.UpdatedAt = time.Now()
}

// Commission computes the channel fee for a payment of the given amount.
// Fixed: the commission value, independent of amount. Percentage:
// amount x value / 100, rounded to 2 decimal places. The fee is
// informational only and never enters balance arithmetic.
func (m *PaymentMethod) Commission(amount decimal.Decimal) decimal.Decimal {
	if m.CommissionType == CommissionTypeFixed {
		return m.CommissionValue
	}
	return amount.Mul(m.CommissionValue).Div(oneHundred).Round(2)
}

func validateCommission(name string, commissionType CommissionType, commissionValue decimal.Decimal) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_NAME", "Payment method name cannot be empty")
	}
	if !commissionType.IsValid() {
		return shared.NewDomainError("INVALID_COMMISSION_TYPE", "Commission type must be fixed or percentage")
	}
	if commissionValue.IsNegative() {
		return shared.NewDomainError("INVALID_COMMISSION", "Commission value cannot be negative")
	}
	if commissionType == CommissionTypePercentage && commissionValue.GreaterThan(oneHundred) {
		return shared.NewDomainError("INVALID_COMMISSION", "Percentage commission cannot exceed 100%")
	}
	return nil
}
