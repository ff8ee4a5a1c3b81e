package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appbilling "github.com/figurine/backend/internal/application/billing"
	"github.com/figurine/backend/internal/domain/billing"
	"github.com/figurine/backend/internal/domain/shared"
)

func storedPayment(t *testing.T, repo *GormPaymentRepository, orderID uuid.UUID, method *billing.PaymentMethod, amount string) *billing.Payment {
	t.Helper()
	payment, err := billing.NewPayment(orderID, method, decimal.RequireFromString(amount), time.Now(), "", "")
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), payment))
	return payment
}

func TestPaymentRepository_SumByOrderID(t *testing.T) {
	db := setupOrderTestDB(t)
	repo := NewGormPaymentRepository(db)
	ctx := context.Background()

	method, err := billing.NewPaymentMethod("Cash", billing.CommissionTypeFixed, decimal.Zero)
	require.NoError(t, err)

	orderID := uuid.New()

	sum, err := repo.SumByOrderID(ctx, orderID)
	require.NoError(t, err)
	assert.True(t, sum.IsZero(), "no payments should sum to zero, got %s", sum)

	storedPayment(t, repo, orderID, method, "100.00")
	storedPayment(t, repo, orderID, method, "25.50")
	storedPayment(t, repo, uuid.New(), method, "999.00")

	sum, err = repo.SumByOrderID(ctx, orderID)
	require.NoError(t, err)
	assert.True(t, sum.Equal(decimal.RequireFromString("125.50")),
		"expected 125.50, got %s", sum)
}

func TestPaymentRepository_CountByMethodID(t *testing.T) {
	db := setupOrderTestDB(t)
	repo := NewGormPaymentRepository(db)
	ctx := context.Background()

	used, err := billing.NewPaymentMethod("Card", billing.CommissionTypePercentage, decimal.RequireFromString("2.9"))
	require.NoError(t, err)
	unused, err := billing.NewPaymentMethod("PayPal", billing.CommissionTypePercentage, decimal.RequireFromString("3.4"))
	require.NoError(t, err)

	storedPayment(t, repo, uuid.New(), used, "10.00")
	storedPayment(t, repo, uuid.New(), used, "20.00")

	count, err := repo.CountByMethodID(ctx, used.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	count, err = repo.CountByMethodID(ctx, unused.ID)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestPaymentRepository_FindByOrderID(t *testing.T) {
	db := setupOrderTestDB(t)
	repo := NewGormPaymentRepository(db)
	ctx := context.Background()

	method, err := billing.NewPaymentMethod("Cash", billing.CommissionTypeFixed, decimal.Zero)
	require.NoError(t, err)

	orderID := uuid.New()
	storedPayment(t, repo, orderID, method, "60.00")
	storedPayment(t, repo, orderID, method, "40.00")

	payments, err := repo.FindByOrderID(ctx, orderID)
	require.NoError(t, err)
	assert.Len(t, payments, 2)
}

func TestPaymentRepository_Delete(t *testing.T) {
	db := setupOrderTestDB(t)
	repo := NewGormPaymentRepository(db)
	ctx := context.Background()

	method, err := billing.NewPaymentMethod("Cash", billing.CommissionTypeFixed, decimal.Zero)
	require.NoError(t, err)
	payment := storedPayment(t, repo, uuid.New(), method, "15.00")

	require.NoError(t, repo.Delete(ctx, payment.ID))

	_, err = repo.FindByID(ctx, payment.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)

	err = repo.Delete(ctx, payment.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestGormTransactionScope_RollsBackOnError(t *testing.T) {
	db := setupOrderTestDB(t)
	scope := NewGormTransactionScope(db)
	ctx := context.Background()

	method, err := billing.NewPaymentMethod("Cash", billing.CommissionTypeFixed, decimal.Zero)
	require.NoError(t, err)

	order := newStoredOrder(t, "ORD-TX-1")
	require.NoError(t, NewGormOrderRepository(db).Save(ctx, order))

	boom := shared.NewDomainError("BOOM", "forced failure")
	err = scope.Execute(ctx, func(repos appbilling.TransactionalRepositories) error {
		payment, err := billing.NewPayment(order.ID, method, decimal.RequireFromString("50.00"), time.Now(), "", "")
		require.NoError(t, err)
		if err := repos.PaymentRepo().Save(ctx, payment); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	payments, err := NewGormPaymentRepository(db).FindByOrderID(ctx, order.ID)
	require.NoError(t, err)
	assert.Empty(t, payments, "rolled back payment must not be visible")
}

func TestGormTransactionScope_CommitsPaymentAndOrderTogether(t *testing.T) {
	db := setupOrderTestDB(t)
	scope := NewGormTransactionScope(db)
	ctx := context.Background()

	method, err := billing.NewPaymentMethod("Cash", billing.CommissionTypeFixed, decimal.Zero)
	require.NoError(t, err)

	order := newStoredOrder(t, "ORD-TX-2")
	require.NoError(t, NewGormOrderRepository(db).Save(ctx, order))

	err = scope.Execute(ctx, func(repos appbilling.TransactionalRepositories) error {
		payment, err := billing.NewPayment(order.ID, method, decimal.RequireFromString("90.00"), time.Now(), "", "")
		if err != nil {
			return err
		}
		if err := repos.PaymentRepo().Save(ctx, payment); err != nil {
			return err
		}
		paid, err := repos.PaymentRepo().SumByOrderID(ctx, order.ID)
		if err != nil {
			return err
		}
		order.ApplyPaidAmount(paid)
		return repos.OrderRepo().Save(ctx, order)
	})
	require.NoError(t, err)

	found, err := NewGormOrderRepository(db).FindByID(ctx, order.ID)
	require.NoError(t, err)
	assert.True(t, found.IsFullyPaid)
	assert.True(t, found.Balance.IsZero(), "expected zero balance, got %s", found.Balance)
}
