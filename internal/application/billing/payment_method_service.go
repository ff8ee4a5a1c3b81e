package billing

import (
	"context"

	"github.com/google/uuid"

	"github.com/figurine/backend/internal/domain/billing"
	"github.com/figurine/backend/internal/domain/shared"
)

// PaymentMethodService handles payment method management
type PaymentMethodService struct {
	methodRepo  billing.PaymentMethodRepository
	paymentRepo billing.PaymentRepository
}

// NewPaymentMethodService creates a new PaymentMethodService
func NewPaymentMethodService(methodRepo billing.PaymentMethodRepository, paymentRepo billing.PaymentRepository) *PaymentMethodService {
	return &PaymentMethodService{
		methodRepo:  methodRepo,
		paymentRepo: paymentRepo,
	}
}

// Create creates a new payment method
func (s *PaymentMethodService) Create(ctx context.Context, req CreatePaymentMethodRequest) (*PaymentMethodResponse, error) {
	method, err := billing.NewPaymentMethod(req.Name, billing.CommissionType(req.CommissionType), req.CommissionValue)
	if err != nil {
		return nil, err
	}

	if err := s.methodRepo.Save(ctx, method); err != nil {
		return nil, err
	}

	response := ToPaymentMethodResponse(method)
	return &response, nil
}

// GetByID retrieves a payment method by ID
func (s *PaymentMethodService) GetByID(ctx context.Context, id uuid.UUID) (*PaymentMethodResponse, error) {
	method, err := s.methodRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToPaymentMethodResponse(method)
	return &response, nil
}

// List retrieves payment methods, optionally only active ones
func (s *PaymentMethodService) List(ctx context.Context, activeOnly bool) ([]PaymentMethodResponse, error) {
	methods, err := s.methodRepo.FindAll(ctx, activeOnly)
	if err != nil {
		return nil, err
	}
	return ToPaymentMethodResponses(methods), nil
}

// Update updates a payment method's name and commission rule. Changing the
// rule never touches commissions already recorded on existing payments.
func (s *PaymentMethodService) Update(ctx context.Context, id uuid.UUID, req UpdatePaymentMethodRequest) (*PaymentMethodResponse, error) {
	method, err := s.methodRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := method.Update(req.Name, billing.CommissionType(req.CommissionType), req.CommissionValue); err != nil {
		return nil, err
	}
	if req.IsActive != nil {
		method.SetActive(*req.IsActive)
	}

	if err := s.methodRepo.Save(ctx, method); err != nil {
		return nil, err
	}

	response := ToPaymentMethodResponse(method)
	return &response, nil
}

// Delete deletes a payment method. Methods referenced by recorded payments
// cannot be deleted; deactivate them instead.
func (s *PaymentMethodService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.methodRepo.FindByID(ctx, id); err != nil {
		return err
	}

	count, err := s.paymentRepo.CountByMethodID(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return shared.NewDomainError("METHOD_IN_USE", "Cannot delete a payment method with recorded payments")
	}

	return s.methodRepo.Delete(ctx, id)
}
