package billing

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/figurine/backend/internal/domain/billing"
	"github.com/figurine/backend/internal/domain/shared"
)

// PaymentService is the payment ledger. It is the only writer of an order's
// paid amount, balance and fully-paid flag: every mutation runs inside a
// transaction scope that locks the order row, applies the payment change,
// re-sums the full payment set and saves the re-derived totals. Reading a
// payment never recomputes anything.
type PaymentService struct {
	scope       TransactionScope
	paymentRepo billing.PaymentRepository
	methodRepo  billing.PaymentMethodRepository
}

// NewPaymentService creates a new PaymentService
func NewPaymentService(scope TransactionScope, paymentRepo billing.PaymentRepository, methodRepo billing.PaymentMethodRepository) *PaymentService {
	return &PaymentService{
		scope:       scope,
		paymentRepo: paymentRepo,
		methodRepo:  methodRepo,
	}
}

// Record records a payment against an order and reconciles the order's
// totals in the same transaction
func (s *PaymentService) Record(ctx context.Context, req RecordPaymentRequest) (*PaymentResponse, error) {
	method, err := s.methodRepo.FindByID(ctx, req.PaymentMethodID)
	if err != nil {
		return nil, err
	}

	paymentDate := time.Time{}
	if req.PaymentDate != nil {
		paymentDate = *req.PaymentDate
	}

	var response PaymentResponse
	err = s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		order, err := repos.OrderRepo().FindByIDForUpdate(ctx, req.OrderID)
		if err != nil {
			return err
		}

		payment, err := billing.NewPayment(order.ID, method, req.Amount, paymentDate, req.ReferenceNumber, req.Notes)
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
		if err := repos.OrderRepo().Save(ctx, order); err != nil {
			return err
		}

		response = ToPaymentResponse(payment)
		response.OrderPaidAmount = shared.NewMoney(order.PaidAmount)
		response.OrderBalance = shared.NewMoney(order.Balance)
		response.OrderFullyPaid = order.IsFullyPaid
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &response, nil
}

// Update updates a recorded payment. An amount or method change recomputes
// the commission from the method's current rule and reconciles the order.
func (s *PaymentService) Update(ctx context.Context, paymentID uuid.UUID, req UpdatePaymentRequest) (*PaymentResponse, error) {
	existing, err := s.paymentRepo.FindByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	methodID := existing.PaymentMethodID
	if req.PaymentMethodID != nil {
		methodID = *req.PaymentMethodID
	}
	method, err := s.methodRepo.FindByID(ctx, methodID)
	if err != nil {
		return nil, err
	}

	var response PaymentResponse
	err = s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		order, err := repos.OrderRepo().FindByIDForUpdate(ctx, existing.OrderID)
		if err != nil {
			return err
		}
		payment, err := repos.PaymentRepo().FindByID(ctx, paymentID)
		if err != nil {
			return err
		}

		amount := payment.Amount
		if req.Amount != nil {
			amount = *req.Amount
		}
		if err := payment.Reprice(method, amount); err != nil {
			return err
		}

		paymentDate := time.Time{}
		if req.PaymentDate != nil {
			paymentDate = *req.PaymentDate
		}
		referenceNumber := payment.ReferenceNumber
		if req.ReferenceNumber != nil {
			referenceNumber = *req.ReferenceNumber
		}
		notes := payment.Notes
		if req.Notes != nil {
			notes = *req.Notes
		}
		payment.SetDetails(paymentDate, referenceNumber, notes)

		if err := repos.PaymentRepo().Save(ctx, payment); err != nil {
			return err
		}

		paid, err := repos.PaymentRepo().SumByOrderID(ctx, order.ID)
		if err != nil {
			return err
		}
		order.ApplyPaidAmount(paid)
		if err := repos.OrderRepo().Save(ctx, order); err != nil {
			return err
		}

		response = ToPaymentResponse(payment)
		response.OrderPaidAmount = shared.NewMoney(order.PaidAmount)
		response.OrderBalance = shared.NewMoney(order.Balance)
		response.OrderFullyPaid = order.IsFullyPaid
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &response, nil
}

// Delete removes a payment and reconciles the order. Deleting the payment
// that made an order fully paid reopens its balance.
func (s *PaymentService) Delete(ctx context.Context, paymentID uuid.UUID) error {
	existing, err := s.paymentRepo.FindByID(ctx, paymentID)
	if err != nil {
		return err
	}

	return s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		order, err := repos.OrderRepo().FindByIDForUpdate(ctx, existing.OrderID)
		if err != nil {
			return err
		}
		if err := repos.PaymentRepo().Delete(ctx, paymentID); err != nil {
			return err
		}

		paid, err := repos.PaymentRepo().SumByOrderID(ctx, order.ID)
		if err != nil {
			return err
		}
		order.ApplyPaidAmount(paid)
		return repos.OrderRepo().Save(ctx, order)
	})
}

// GetByID retrieves a payment by ID
func (s *PaymentService) GetByID(ctx context.Context, paymentID uuid.UUID) (*PaymentResponse, error) {
	payment, err := s.paymentRepo.FindByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	response := ToPaymentResponse(payment)
	return &response, nil
}

// ListByOrder lists the payments recorded against an order
func (s *PaymentService) ListByOrder(ctx context.Context, orderID uuid.UUID) ([]PaymentResponse, error) {
	payments, err := s.paymentRepo.FindByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return ToPaymentResponses(payments), nil
}

// List lists all recorded payments
func (s *PaymentService) List(ctx context.Context) ([]PaymentResponse, error) {
	payments, err := s.paymentRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return ToPaymentResponses(payments), nil
}
