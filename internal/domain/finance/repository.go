package finance

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ExpenseFilter narrows expense listings
type ExpenseFilter struct {
	Category *ExpenseCategory
	From     *time.Time
	To       *time.Time
}

// ExpenseRepository defines the interface for expense persistence
type ExpenseRepository interface {
	// FindByID finds an expense by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Expense, error)

	// FindAll lists expenses matching the filter
	FindAll(ctx context.Context, filter ExpenseFilter) ([]Expense, error)

	// Save creates or updates an expense
	Save(ctx context.Context, expense *Expense) error

	// Delete deletes an expense
	Delete(ctx context.Context, id uuid.UUID) error
}
