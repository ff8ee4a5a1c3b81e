package billing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPaymentMethod(t *testing.T) {
	t.Run("creates active method", func(t *testing.T) {
		method, err := NewPaymentMethod("Bank transfer", CommissionTypeFixed, decimal.NewFromInt(2))
		require.NoError(t, err)
		assert.True(t, method.IsActive)
	})

	t.Run("rejects blank name", func(t *testing.T) {
		_, err := NewPaymentMethod("   ", CommissionTypeFixed, decimal.NewFromInt(2))
		require.Error(t, err)
	})

	t.Run("rejects negative commission value", func(t *testing.T) {
		_, err := NewPaymentMethod("Card", CommissionTypePercentage, decimal.NewFromInt(-1))
		require.Error(t, err)
	})

	t.Run("rejects percentage above 100", func(t *testing.T) {
		_, err := NewPaymentMethod("Card", CommissionTypePercentage, decimal.NewFromFloat(100.5))
		require.Error(t, err)
	})

	t.Run("allows fixed value above 100", func(t *testing.T) {
		_, err := NewPaymentMethod("Wire", CommissionTypeFixed, decimal.NewFromInt(150))
		require.NoError(t, err)
	})
}

func TestPaymentMethodUpdate(t *testing.T) {
	method, err := NewPaymentMethod("Card", CommissionTypePercentage, decimal.NewFromInt(3))
	require.NoError(t, err)

	t.Run("enforces bounds against the new type", func(t *testing.T) {
		err := method.Update("Card", CommissionTypePercentage, decimal.NewFromInt(101))
		require.Error(t, err)

		err = method.Update("Card", CommissionTypeFixed, decimal.NewFromInt(101))
		require.NoError(t, err)
	})
}

func TestPaymentMethodCommission(t *testing.T) {
	t.Run("fixed commission ignores the amount", func(t *testing.T) {
		method, err := NewPaymentMethod("COD", CommissionTypeFixed, decimal.RequireFromString("5.00"))
		require.NoError(t, err)

		for _, amount := range []string{"0.01", "10", "225.00", "99999.99"} {
			got := method.Commission(decimal.RequireFromString(amount))
			assert.Equal(t, "5.00", got.StringFixed(2), "amount=%s", amount)
		}
	})

	t.Run("percentage commission scales with the amount", func(t *testing.T) {
		method, err := NewPaymentMethod("Card", CommissionTypePercentage, decimal.RequireFromString("2.9"))
		require.NoError(t, err)

		got := method.Commission(decimal.NewFromInt(100))
		assert.Equal(t, "2.90", got.StringFixed(2))

		got = method.Commission(decimal.RequireFromString("225.00"))
		assert.Equal(t, "6.53", got.StringFixed(2)) // 6.525 rounds to 6.53
	})

	t.Run("commission is rounded to two decimal places", func(t *testing.T) {
		method, err := NewPaymentMethod("Card", CommissionTypePercentage, decimal.RequireFromString("3.33"))
		require.NoError(t, err)

		got := method.Commission(decimal.RequireFromString("10.01"))
		assert.Equal(t, got.Round(2).String(), got.String())
	})
}
