package billing

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/figurine/backend/internal/domain/billing"
	"github.com/figurine/backend/internal/domain/ordering"
	"github.com/figurine/backend/internal/domain/shared"
)

// =============================================================================
// Mock Repositories
// =============================================================================

// MockOrderRepository is a mock implementation of ordering.OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*ordering.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ordering.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*ordering.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ordering.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByOrderNumber(ctx context.Context, orderNumber string) (*ordering.Order, error) {
	args := m.Called(ctx, orderNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ordering.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByExternalID(ctx context.Context, externalID int64) (*ordering.Order, error) {
	args := m.Called(ctx, externalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ordering.Order), args.Error(1)
}

func (m *MockOrderRepository) FindAll(ctx context.Context, filter shared.Filter) ([]ordering.Order, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]ordering.Order), args.Error(1)
}

func (m *MockOrderRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) Save(ctx context.Context, order *ordering.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOrderRepository) SavePainterAssignment(ctx context.Context, assignment *ordering.PainterAssignment) error {
	args := m.Called(ctx, assignment)
	return args.Error(0)
}

func (m *MockOrderRepository) FindPainterAssignments(ctx context.Context, orderID uuid.UUID) ([]ordering.PainterAssignment, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).([]ordering.PainterAssignment), args.Error(1)
}

// MockPaymentRepository is a mock implementation of billing.PaymentRepository
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.Payment), args.Error(1)
}

func (m *MockPaymentRepository) FindByOrderID(ctx context.Context, orderID uuid.UUID) ([]billing.Payment, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).([]billing.Payment), args.Error(1)
}

func (m *MockPaymentRepository) FindAll(ctx context.Context) ([]billing.Payment, error) {
	args := m.Called(ctx)
	return args.Get(0).([]billing.Payment), args.Error(1)
}

func (m *MockPaymentRepository) SumByOrderID(ctx context.Context, orderID uuid.UUID) (decimal.Decimal, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockPaymentRepository) CountByMethodID(ctx context.Context, methodID uuid.UUID) (int64, error) {
	args := m.Called(ctx, methodID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPaymentRepository) Save(ctx context.Context, payment *billing.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockPaymentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockPaymentMethodRepository is a mock implementation of billing.PaymentMethodRepository
type MockPaymentMethodRepository struct {
	mock.Mock
}

func (m *MockPaymentMethodRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.PaymentMethod, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.PaymentMethod), args.Error(1)
}

func (m *MockPaymentMethodRepository) FindAll(ctx context.Context, activeOnly bool) ([]billing.PaymentMethod, error) {
	args := m.Called(ctx, activeOnly)
	return args.Get(0).([]billing.PaymentMethod), args.Error(1)
}

func (m *MockPaymentMethodRepository) Save(ctx context.Context, method *billing.PaymentMethod) error {
	args := m.Called(ctx, method)
	return args.Error(0)
}

func (m *MockPaymentMethodRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// =============================================================================
// Test helpers
// =============================================================================

func newPaidOrder(t *testing.T, total string) *ordering.Order {
	t.Helper()
	order, err := ordering.NewOrder("ORD-1001", ordering.OrderSourceCustom, uuid.New(), time.Now())
	require.NoError(t, err)
	order.SetImportedTotals(decimal.RequireFromString(total), decimal.RequireFromString(total))
	return order
}

func newPercentMethod(t *testing.T, value string) *billing.PaymentMethod {
	t.Helper()
	method, err := billing.NewPaymentMethod("Card", billing.CommissionTypePercentage, decimal.RequireFromString(value))
	require.NoError(t, err)
	return method
}

func newLedger(orderRepo *MockOrderRepository, paymentRepo *MockPaymentRepository, methodRepo *MockPaymentMethodRepository) *PaymentService {
	scope := NewNoOpTransactionScope(orderRepo, paymentRepo)
	return NewPaymentService(scope, paymentRepo, methodRepo)
}

// =============================================================================
// Tests
// =============================================================================

func TestPaymentServiceRecord(t *testing.T) {
	ctx := context.Background()

	t.Run("reconciles order totals from the full payment set", func(t *testing.T) {
		orderRepo := new(MockOrderRepository)
		paymentRepo := new(MockPaymentRepository)
		methodRepo := new(MockPaymentMethodRepository)

		order := newPaidOrder(t, "225.00")
		method := newPercentMethod(t, "2")

		methodRepo.On("FindByID", ctx, method.ID).Return(method, nil)
		orderRepo.On("FindByIDForUpdate", ctx, order.ID).Return(order, nil)
		paymentRepo.On("Save", ctx, mock.AnythingOfType("*billing.Payment")).Return(nil)
		paymentRepo.On("SumByOrderID", ctx, order.ID).Return(decimal.RequireFromString("225.00"), nil)
		orderRepo.On("Save", ctx, order).Return(nil)

		service := newLedger(orderRepo, paymentRepo, methodRepo)
		resp, err := service.Record(ctx, RecordPaymentRequest{
			OrderID:         order.ID,
			PaymentMethodID: method.ID,
			Amount:          decimal.RequireFromString("225.00"),
		})
		require.NoError(t, err)

		assert.Equal(t, "225.00", resp.Amount.StringFixed(2))
		assert.Equal(t, "4.50", resp.CommissionAmount.StringFixed(2))
		assert.Equal(t, "225.00", resp.OrderPaidAmount.StringFixed(2))
		assert.Equal(t, "0.00", resp.OrderBalance.StringFixed(2))
		assert.True(t, resp.OrderFullyPaid)
		assert.True(t, order.IsFullyPaid)
		orderRepo.AssertExpectations(t)
		paymentRepo.AssertExpectations(t)
	})

	t.Run("overpayment yields a negative balance and fully paid", func(t *testing.T) {
		orderRepo := new(MockOrderRepository)
		paymentRepo := new(MockPaymentRepository)
		methodRepo := new(MockPaymentMethodRepository)

		order := newPaidOrder(t, "100.00")
		method := newPercentMethod(t, "0")

		methodRepo.On("FindByID", ctx, method.ID).Return(method, nil)
		orderRepo.On("FindByIDForUpdate", ctx, order.ID).Return(order, nil)
		paymentRepo.On("Save", ctx, mock.AnythingOfType("*billing.Payment")).Return(nil)
		paymentRepo.On("SumByOrderID", ctx, order.ID).Return(decimal.RequireFromString("120.00"), nil)
		orderRepo.On("Save", ctx, order).Return(nil)

		service := newLedger(orderRepo, paymentRepo, methodRepo)
		resp, err := service.Record(ctx, RecordPaymentRequest{
			OrderID:         order.ID,
			PaymentMethodID: method.ID,
			Amount:          decimal.RequireFromString("120.00"),
		})
		require.NoError(t, err)

		assert.Equal(t, "-20.00", resp.OrderBalance.StringFixed(2))
		assert.True(t, resp.OrderFullyPaid)
	})

	t.Run("rejects non-positive amounts without saving", func(t *testing.T) {
		orderRepo := new(MockOrderRepository)
		paymentRepo := new(MockPaymentRepository)
		methodRepo := new(MockPaymentMethodRepository)

		order := newPaidOrder(t, "100.00")
		method := newPercentMethod(t, "2")

		methodRepo.On("FindByID", ctx, method.ID).Return(method, nil)
		orderRepo.On("FindByIDForUpdate", ctx, order.ID).Return(order, nil)

		service := newLedger(orderRepo, paymentRepo, methodRepo)
		_, err := service.Record(ctx, RecordPaymentRequest{
			OrderID:         order.ID,
			PaymentMethodID: method.ID,
			Amount:          decimal.Zero,
		})
		require.Error(t, err)
		paymentRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
		orderRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("missing order aborts before any write", func(t *testing.T) {
		orderRepo := new(MockOrderRepository)
		paymentRepo := new(MockPaymentRepository)
		methodRepo := new(MockPaymentMethodRepository)

		method := newPercentMethod(t, "2")
		orderID := uuid.New()

		methodRepo.On("FindByID", ctx, method.ID).Return(method, nil)
		orderRepo.On("FindByIDForUpdate", ctx, orderID).Return(nil, shared.ErrNotFound)

		service := newLedger(orderRepo, paymentRepo, methodRepo)
		_, err := service.Record(ctx, RecordPaymentRequest{
			OrderID:         orderID,
			PaymentMethodID: method.ID,
			Amount:          decimal.NewFromInt(10),
		})
		assert.ErrorIs(t, err, shared.ErrNotFound)
		paymentRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestPaymentServiceDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("deleting the covering payment reopens the balance", func(t *testing.T) {
		orderRepo := new(MockOrderRepository)
		paymentRepo := new(MockPaymentRepository)
		methodRepo := new(MockPaymentMethodRepository)

		order := newPaidOrder(t, "225.00")
		order.ApplyPaidAmount(decimal.RequireFromString("225.00"))
		require.True(t, order.IsFullyPaid)

		method := newPercentMethod(t, "2")
		payment, err := billing.NewPayment(order.ID, method, decimal.RequireFromString("225.00"), time.Now(), "", "")
		require.NoError(t, err)

		paymentRepo.On("FindByID", ctx, payment.ID).Return(payment, nil)
		orderRepo.On("FindByIDForUpdate", ctx, order.ID).Return(order, nil)
		paymentRepo.On("Delete", ctx, payment.ID).Return(nil)
		paymentRepo.On("SumByOrderID", ctx, order.ID).Return(decimal.Zero, nil)
		orderRepo.On("Save", ctx, order).Return(nil)

		service := newLedger(orderRepo, paymentRepo, methodRepo)
		require.NoError(t, service.Delete(ctx, payment.ID))

		assert.Equal(t, "225.00", order.Balance.StringFixed(2))
		assert.False(t, order.IsFullyPaid)
		orderRepo.AssertExpectations(t)
		paymentRepo.AssertExpectations(t)
	})
}

func TestPaymentServiceUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("amount change recomputes commission and order totals", func(t *testing.T) {
		orderRepo := new(MockOrderRepository)
		paymentRepo := new(MockPaymentRepository)
		methodRepo := new(MockPaymentMethodRepository)

		order := newPaidOrder(t, "200.00")
		method := newPercentMethod(t, "2")
		payment, err := billing.NewPayment(order.ID, method, decimal.RequireFromString("50.00"), time.Now(), "", "")
		require.NoError(t, err)

		paymentRepo.On("FindByID", ctx, payment.ID).Return(payment, nil)
		methodRepo.On("FindByID", ctx, method.ID).Return(method, nil)
		orderRepo.On("FindByIDForUpdate", ctx, order.ID).Return(order, nil)
		paymentRepo.On("Save", ctx, payment).Return(nil)
		paymentRepo.On("SumByOrderID", ctx, order.ID).Return(decimal.RequireFromString("150.00"), nil)
		orderRepo.On("Save", ctx, order).Return(nil)

		service := newLedger(orderRepo, paymentRepo, methodRepo)
		amount := decimal.RequireFromString("150.00")
		resp, err := service.Update(ctx, payment.ID, UpdatePaymentRequest{Amount: &amount})
		require.NoError(t, err)

		assert.Equal(t, "150.00", resp.Amount.StringFixed(2))
		assert.Equal(t, "3.00", resp.CommissionAmount.StringFixed(2))
		assert.Equal(t, "50.00", resp.OrderBalance.StringFixed(2))
		assert.False(t, resp.OrderFullyPaid)
	})
}

func TestPaymentMethodServiceDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("blocks deleting a method with recorded payments", func(t *testing.T) {
		paymentRepo := new(MockPaymentRepository)
		methodRepo := new(MockPaymentMethodRepository)

		method := newPercentMethod(t, "2")
		methodRepo.On("FindByID", ctx, method.ID).Return(method, nil)
		paymentRepo.On("CountByMethodID", ctx, method.ID).Return(int64(3), nil)

		service := NewPaymentMethodService(methodRepo, paymentRepo)
		err := service.Delete(ctx, method.ID)
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "METHOD_IN_USE", domainErr.Code)
		methodRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("deletes an unused method", func(t *testing.T) {
		paymentRepo := new(MockPaymentRepository)
		methodRepo := new(MockPaymentMethodRepository)

		method := newPercentMethod(t, "2")
		methodRepo.On("FindByID", ctx, method.ID).Return(method, nil)
		paymentRepo.On("CountByMethodID", ctx, method.ID).Return(int64(0), nil)
		methodRepo.On("Delete", ctx, method.ID).Return(nil)

		service := NewPaymentMethodService(methodRepo, paymentRepo)
		require.NoError(t, service.Delete(ctx, method.ID))
		methodRepo.AssertExpectations(t)
	})
}
