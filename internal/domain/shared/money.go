package shared

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// Money is a currency amount for API responses. It marshals as a JSON
// string with exactly two fractional digits, so 225 renders as "225.00"
// instead of the trimmed form decimal.Decimal emits.
type Money struct {
	decimal.Decimal
}

// NewMoney wraps a decimal amount for response serialization
func NewMoney(d decimal.Decimal) Money {
	return Money{d}
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(m.StringFixed(2))), nil
}
