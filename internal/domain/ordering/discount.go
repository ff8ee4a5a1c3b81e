package ordering

import (
	"strings"

	"github.com/figurine/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// DiscountType represents how a discount amount is interpreted
type DiscountType string

const (
	DiscountTypeFixed      DiscountType = "fixed"
	DiscountTypePercentage DiscountType = "percentage"
)

// IsValid checks if the discount type is valid
func (t DiscountType) IsValid() bool {
	return t == DiscountTypeFixed || t == DiscountTypePercentage
}

// String returns the string representation of DiscountType
func (t DiscountType) String() string {
	return string(t)
}

var oneHundred = decimal.NewFromInt(100)

// ApplyDiscount reduces base by the given discount and returns the result.
//
// A zero amount or a nil discount type leaves base unchanged and requires no
// reason. A positive discount requires a non-blank reason. Percentage
// discounts above 100 and fixed discounts above base are rejected, so the
// result is never negative.
func ApplyDiscount(base, amount decimal.Decimal, discountType *DiscountType, reason string) (decimal.Decimal, error) {
	if amount.IsZero() || discountType == nil {
		return base, nil
	}
	if amount.IsNegative() {
		return decimal.Zero, shared.NewDomainError("INVALID_DISCOUNT", "Discount amount cannot be negative")
	}
	if !discountType.IsValid() {
		return decimal.Zero, shared.NewDomainError("INVALID_DISCOUNT_TYPE", "Discount type must be fixed or percentage")
	}
	if strings.TrimSpace(reason) == "" {
		return decimal.Zero, shared.NewDomainError("DISCOUNT_REASON_REQUIRED", "Discount reason is required when applying a discount")
	}

	switch *discountType {
	case DiscountTypePercentage:
		if amount.GreaterThan(oneHundred) {
			return decimal.Zero, shared.NewDomainError("INVALID_DISCOUNT", "Percentage discount cannot exceed 100%")
		}
		return base.Sub(base.Mul(amount).Div(oneHundred)), nil
	default:
		if amount.GreaterThan(base) {
			return decimal.Zero, shared.NewDomainError("INVALID_DISCOUNT", "Fixed discount cannot exceed the base amount")
		}
		return base.Sub(amount), nil
	}
}
