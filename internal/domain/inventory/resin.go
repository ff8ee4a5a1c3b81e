package inventory

import (
	"strings"
	"time"

	"github.com/figurine/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Resin represents a batch of printing resin in stock
type Resin struct {
	shared.BaseEntity
	Color          string          `gorm:"size:100;not null"`
	Quantity       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Unit           string          `gorm:"size:20;not null;default:'kg'"`
	CostPerUnit    decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	PurchaseDate   time.Time       `gorm:"type:date;not null"`
	PurchaseSource string          `gorm:"size:255"`
	Notes          string          `gorm:"size:1000"`
}

// TableName returns the table name for GORM
func (Resin) TableName() string {
	return "resin"
}

// NewResin creates a new resin stock record
func NewResin(color string, quantity decimal.Decimal, unit string, costPerUnit decimal.Decimal, purchaseDate time.Time, purchaseSource, notes string) (*Resin, error) {
	if strings.TrimSpace(color) == "" {
		return nil, shared.NewDomainError("INVALID_COLOR", "Resin color cannot be empty")
	}
	if quantity.IsNegative() {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity cannot be negative")
	}
	if costPerUnit.IsNegative() {
		return nil, shared.NewDomainError("INVALID_COST", "Cost per unit cannot be negative")
	}
	if unit == "" {
		unit = "kg"
	}
	return &Resin{
		BaseEntity:     shared.NewBaseEntity(),
		Color:          strings.TrimSpace(color),
		Quantity:       quantity.Round(2),
		Unit:           unit,
		CostPerUnit:    costPerUnit.Round(2),
		PurchaseDate:   purchaseDate,
		PurchaseSource: purchaseSource,
		Notes:          notes,
	}, nil
}

// AdjustQuantity sets the remaining quantity after consumption or restock
func (r *Resin) AdjustQuantity(quantity decimal.Decimal) error {
	if quantity.IsNegative() {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity cannot be negative")
	}
	r.Quantity = quantity.Round(2)
	r.UpdatedAt = time.Now()
	return nil
}
