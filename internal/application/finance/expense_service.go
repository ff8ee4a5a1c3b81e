package finance

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/figurine/backend/internal/domain/finance"
)

// ExpenseService handles business expense tracking
type ExpenseService struct {
	expenseRepo finance.ExpenseRepository
}

// NewExpenseService creates a new ExpenseService
func NewExpenseService(expenseRepo finance.ExpenseRepository) *ExpenseService {
	return &ExpenseService{
		expenseRepo: expenseRepo,
	}
}

// Create records a new expense
func (s *ExpenseService) Create(ctx context.Context, req CreateExpenseRequest) (*ExpenseResponse, error) {
	expenseDate := time.Time{}
	if req.ExpenseDate != nil {
		expenseDate = *req.ExpenseDate
	}

	expense, err := finance.NewExpense(finance.ExpenseCategory(req.Category), req.Amount, expenseDate, req.Description, req.Notes)
	if err != nil {
		return nil, err
	}
	if err := s.expenseRepo.Save(ctx, expense); err != nil {
		return nil, err
	}

	response := ToExpenseResponse(expense)
	return &response, nil
}

// GetByID retrieves an expense by ID
func (s *ExpenseService) GetByID(ctx context.Context, id uuid.UUID) (*ExpenseResponse, error) {
	expense, err := s.expenseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToExpenseResponse(expense)
	return &response, nil
}

// List lists expenses filtered by category and date range
func (s *ExpenseService) List(ctx context.Context, filter ExpenseListFilter) ([]ExpenseResponse, error) {
	domainFilter := finance.ExpenseFilter{
		From: filter.From,
		To:   filter.To,
	}
	if filter.Category != "" {
		category := finance.ExpenseCategory(filter.Category)
		domainFilter.Category = &category
	}

	expenses, err := s.expenseRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, err
	}
	return ToExpenseResponses(expenses), nil
}

// Update updates an expense
func (s *ExpenseService) Update(ctx context.Context, id uuid.UUID, req UpdateExpenseRequest) (*ExpenseResponse, error) {
	expense, err := s.expenseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	category := expense.Category
	if req.Category != nil {
		category = finance.ExpenseCategory(*req.Category)
	}
	amount := expense.Amount
	if req.Amount != nil {
		amount = *req.Amount
	}
	expenseDate := expense.ExpenseDate
	if req.ExpenseDate != nil {
		expenseDate = *req.ExpenseDate
	}
	description := expense.Description
	if req.Description != nil {
		description = *req.Description
	}
	notes := expense.Notes
	if req.Notes != nil {
		notes = *req.Notes
	}

	if err := expense.Update(category, amount, expenseDate, description, notes); err != nil {
		return nil, err
	}
	if err := s.expenseRepo.Save(ctx, expense); err != nil {
		return nil, err
	}

	response := ToExpenseResponse(expense)
	return &response, nil
}

// Delete deletes an expense
func (s *ExpenseService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.expenseRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.expenseRepo.Delete(ctx, id)
}
