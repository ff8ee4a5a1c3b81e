package ordering

import (
	"testing"

	"github.com/figurine/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dt(t DiscountType) *DiscountType {
	return &t
}

func TestApplyDiscount(t *testing.T) {
	base := decimal.NewFromInt(200)

	t.Run("zero amount returns base unchanged without reason", func(t *testing.T) {
		result, err := ApplyDiscount(base, decimal.Zero, dt(DiscountTypeFixed), "")
		require.NoError(t, err)
		assert.True(t, base.Equal(result))
	})

	t.Run("nil type returns base unchanged without reason", func(t *testing.T) {
		result, err := ApplyDiscount(base, decimal.NewFromInt(10), nil, "")
		require.NoError(t, err)
		assert.True(t, base.Equal(result))
	})

	t.Run("fixed discount subtracts amount", func(t *testing.T) {
		result, err := ApplyDiscount(base, decimal.NewFromInt(50), dt(DiscountTypeFixed), "damaged box")
		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(150).Equal(result))
	})

	t.Run("percentage discount subtracts proportionally", func(t *testing.T) {
		result, err := ApplyDiscount(base, decimal.NewFromInt(10), dt(DiscountTypePercentage), "loyalty")
		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(180).Equal(result))
	})

	t.Run("positive discount requires a reason", func(t *testing.T) {
		_, err := ApplyDiscount(base, decimal.NewFromInt(10), dt(DiscountTypeFixed), "")
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "DISCOUNT_REASON_REQUIRED", domainErr.Code)
	})

	t.Run("whitespace-only reason is rejected", func(t *testing.T) {
		_, err := ApplyDiscount(base, decimal.NewFromInt(10), dt(DiscountTypePercentage), "   \t")
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "DISCOUNT_REASON_REQUIRED", domainErr.Code)
	})

	t.Run("percentage above 100 is rejected", func(t *testing.T) {
		_, err := ApplyDiscount(base, decimal.NewFromInt(101), dt(DiscountTypePercentage), "reason")
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_DISCOUNT", domainErr.Code)
	})

	t.Run("fixed discount above base is rejected", func(t *testing.T) {
		_, err := ApplyDiscount(base, decimal.NewFromInt(201), dt(DiscountTypeFixed), "reason")
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_DISCOUNT", domainErr.Code)
	})

	t.Run("negative amount is rejected", func(t *testing.T) {
		_, err := ApplyDiscount(base, decimal.NewFromInt(-5), dt(DiscountTypeFixed), "reason")
		require.Error(t, err)
	})

	t.Run("result is never negative across bounded inputs", func(t *testing.T) {
		bases := []int64{0, 1, 10, 99, 250, 100000}
		for _, b := range bases {
			base := decimal.NewFromInt(b)
			for pct := int64(0); pct <= 100; pct += 25 {
				amount := decimal.NewFromInt(pct)
				if pct == 0 {
					continue
				}
				result, err := ApplyDiscount(base, amount, dt(DiscountTypePercentage), "bulk")
				require.NoError(t, err)
				assert.False(t, result.IsNegative(), "base=%d pct=%d", b, pct)
			}
			if b > 0 {
				result, err := ApplyDiscount(base, base, dt(DiscountTypeFixed), "full comp")
				require.NoError(t, err)
				assert.True(t, result.IsZero())
			}
		}
	})

	t.Run("100 percent discount yields zero", func(t *testing.T) {
		result, err := ApplyDiscount(base, decimal.NewFromInt(100), dt(DiscountTypePercentage), "giveaway")
		require.NoError(t, err)
		assert.True(t, result.IsZero())
	})
}
