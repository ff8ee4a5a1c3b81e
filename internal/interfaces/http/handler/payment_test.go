package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	billingapp "github.com/figurine/backend/internal/application/billing"
	"github.com/figurine/backend/internal/domain/billing"
	"github.com/figurine/backend/internal/domain/shared"
)

// MockPaymentRepository implements billing.PaymentRepository for testing
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
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]billing.Payment), args.Error(1)
}

func (m *MockPaymentRepository) FindAll(ctx context.Context) ([]billing.Payment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
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

// MockPaymentMethodRepository implements billing.PaymentMethodRepository for testing
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
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
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

type paymentHandlerMocks struct {
	orderRepo   *MockOrderRepository
	paymentRepo *MockPaymentRepository
	methodRepo  *MockPaymentMethodRepository
}

func setupPaymentRouter(t *testing.T) (*gin.Engine, *paymentHandlerMocks) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mocks := &paymentHandlerMocks{
		orderRepo:   new(MockOrderRepository),
		paymentRepo: new(MockPaymentRepository),
		methodRepo:  new(MockPaymentMethodRepository),
	}

	scope := billingapp.NewNoOpTransactionScope(mocks.orderRepo, mocks.paymentRepo)
	service := billingapp.NewPaymentService(scope, mocks.paymentRepo, mocks.methodRepo)
	handler := NewPaymentHandler(service)

	engine := gin.New()
	api := engine.Group("/api/v1")
	handler.RegisterRoutes(api)
	return engine, mocks
}

func TestPaymentHandler_Record(t *testing.T) {
	engine, mocks := setupPaymentRouter(t)

	customerID := uuid.New()
	order := storedTestOrder(t, customerID)

	method, err := billing.NewPaymentMethod("Bank Transfer", billing.CommissionTypePercentage, decimal.NewFromFloat(1.5))
	assert.NoError(t, err)

	mocks.methodRepo.On("FindByID", mock.Anything, method.ID).Return(method, nil)
	mocks.orderRepo.On("FindByIDForUpdate", mock.Anything, order.ID).Return(order, nil)
	mocks.paymentRepo.On("Save", mock.Anything, mock.AnythingOfType("*billing.Payment")).Return(nil)
	mocks.paymentRepo.On("SumByOrderID", mock.Anything, order.ID).Return(decimal.NewFromFloat(90.00), nil)
	mocks.orderRepo.On("Save", mock.Anything, order).Return(nil)

	body := map[string]any{
		"order_id":          order.ID.String(),
		"payment_method_id": method.ID.String(),
		"amount":            "90.00",
		"payment_date":      time.Now().Format(time.RFC3339),
	}
	payload, _ := json.Marshal(body)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/payments", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Amount           decimal.Decimal `json:"amount"`
			CommissionAmount decimal.Decimal `json:"commission_amount"`
			OrderFullyPaid   bool            `json:"order_fully_paid"`
			OrderBalance     decimal.Decimal `json:"order_balance"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.True(t, resp.Data.Amount.Equal(decimal.NewFromFloat(90.00)))
	// 1.5% of 90.00
	assert.True(t, resp.Data.CommissionAmount.Equal(decimal.NewFromFloat(1.35)))
	assert.True(t, resp.Data.OrderFullyPaid)
	assert.True(t, resp.Data.OrderBalance.IsZero())
	// currency fields go over the wire with exactly two fractional digits
	assert.Contains(t, w.Body.String(), `"amount":"90.00"`)
	assert.Contains(t, w.Body.String(), `"order_balance":"0.00"`)
	mocks.paymentRepo.AssertExpectations(t)
}

func TestPaymentHandler_Record_UnknownMethod(t *testing.T) {
	engine, mocks := setupPaymentRouter(t)

	methodID := uuid.New()
	mocks.methodRepo.On("FindByID", mock.Anything, methodID).Return(nil, shared.ErrNotFound)

	body := map[string]any{
		"order_id":          uuid.New().String(),
		"payment_method_id": methodID.String(),
		"amount":            "10.00",
	}
	payload, _ := json.Marshal(body)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/payments", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPaymentHandler_ListByOrder(t *testing.T) {
	engine, mocks := setupPaymentRouter(t)

	orderID := uuid.New()
	method, _ := billing.NewPaymentMethod("Cash", billing.CommissionTypeFixed, decimal.Zero)
	payment, err := billing.NewPayment(orderID, method, decimal.NewFromFloat(30.00), time.Now(), "", "")
	assert.NoError(t, err)

	mocks.paymentRepo.On("FindByOrderID", mock.Anything, orderID).Return([]billing.Payment{*payment}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders/"+orderID.String()+"/payments", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []struct {
			Amount decimal.Decimal `json:"amount"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 1)
	assert.True(t, resp.Data[0].Amount.Equal(decimal.NewFromFloat(30.00)))
}

func TestPaymentHandler_Delete_Reconciles(t *testing.T) {
	engine, mocks := setupPaymentRouter(t)

	customerID := uuid.New()
	order := storedTestOrder(t, customerID)

	method, _ := billing.NewPaymentMethod("Cash", billing.CommissionTypeFixed, decimal.Zero)
	payment, err := billing.NewPayment(order.ID, method, decimal.NewFromFloat(40.00), time.Now(), "", "")
	assert.NoError(t, err)

	mocks.paymentRepo.On("FindByID", mock.Anything, payment.ID).Return(payment, nil)
	mocks.orderRepo.On("FindByIDForUpdate", mock.Anything, order.ID).Return(order, nil)
	mocks.paymentRepo.On("Delete", mock.Anything, payment.ID).Return(nil)
	mocks.paymentRepo.On("SumByOrderID", mock.Anything, order.ID).Return(decimal.Zero, nil)
	mocks.orderRepo.On("Save", mock.Anything, order).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/payments/"+payment.ID.String(), nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.True(t, order.PaidAmount.IsZero())
	assert.False(t, order.IsFullyPaid)
	mocks.paymentRepo.AssertExpectations(t)
	mocks.orderRepo.AssertExpectations(t)
}
