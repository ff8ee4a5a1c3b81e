package billing

import (
	"context"

	"github.com/figurine/backend/internal/domain/billing"
	"github.com/figurine/backend/internal/domain/ordering"
)

// TransactionScope provides transactional access to the repositories a
// payment write touches. When a function is executed within a transaction
// scope, all repository operations will be part of the same database
// transaction and will be committed or rolled back atomically.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	// If the function succeeds, the transaction is committed.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the order and payment
// repositories within a transaction. Both repositories share the same
// underlying database transaction.
//
// Every payment write re-derives the order's paid amount inside this scope:
// the order row is locked with OrderRepo().FindByIDForUpdate, the payment is
// saved or deleted, the paid total is re-summed from the payments table, and
// the order is saved with the new balance. Concurrent payments against the
// same order serialize on the row lock, so the stored totals always reflect
// the full payment set.
type TransactionalRepositories interface {
	// OrderRepo returns the order repository scoped to the current transaction
	OrderRepo() ordering.OrderRepository
	// PaymentRepo returns the payment repository scoped to the current transaction
	PaymentRepo() billing.PaymentRepository
}

// NoOpTransactionScope is a transaction scope that doesn't actually use
// transactions. This is useful for testing or when transaction support is
// not required.
type NoOpTransactionScope struct {
	orderRepo   ordering.OrderRepository
	paymentRepo billing.PaymentRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories.
func NewNoOpTransactionScope(orderRepo ordering.OrderRepository, paymentRepo billing.PaymentRepository) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		orderRepo:   orderRepo,
		paymentRepo: paymentRepo,
	}
}

// Execute runs the function without a real transaction (for testing/compatibility).
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// OrderRepo returns the order repository.
func (s *NoOpTransactionScope) OrderRepo() ordering.OrderRepository {
	return s.orderRepo
}

// PaymentRepo returns the payment repository.
func (s *NoOpTransactionScope) PaymentRepo() billing.PaymentRepository {
	return s.paymentRepo
}

// Ensure NoOpTransactionScope implements both interfaces
var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
