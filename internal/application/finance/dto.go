package finance

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/figurine/backend/internal/domain/finance"
	"github.com/figurine/backend/internal/domain/shared"
)

// CreateExpenseRequest represents a request to record an expense
type CreateExpenseRequest struct {
	Category    string          `json:"category" binding:"required,oneof=materials utilities equipment marketing shipping other"`
	Amount      decimal.Decimal `json:"amount"`
	ExpenseDate *time.Time      `json:"expense_date"`
	Description string          `json:"description" binding:"required,min=1,max=500"`
	Notes       string          `json:"notes" binding:"max=1000"`
}

// UpdateExpenseRequest represents a request to update an expense
type UpdateExpenseRequest struct {
	Category    *string          `json:"category" binding:"omitempty,oneof=materials utilities equipment marketing shipping other"`
	Amount      *decimal.Decimal `json:"amount"`
	ExpenseDate *time.Time       `json:"expense_date"`
	Description *string          `json:"description" binding:"omitempty,min=1,max=500"`
	Notes       *string          `json:"notes" binding:"omitempty,max=1000"`
}

// ExpenseListFilter represents filtering options for listing expenses
type ExpenseListFilter struct {
	Category string     `form:"category" binding:"omitempty,oneof=materials utilities equipment marketing shipping other"`
	From     *time.Time `form:"from" time_format:"2006-01-02"`
	To       *time.Time `form:"to" time_format:"2006-01-02"`
}

// ExpenseResponse represents an expense in API responses
type ExpenseResponse struct {
	ID          uuid.UUID    `json:"id"`
	Category    string       `json:"category"`
	Amount      shared.Money `json:"amount"`
	ExpenseDate time.Time    `json:"expense_date"`
	Description string       `json:"description"`
	Notes       string       `json:"notes"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// ToExpenseResponse converts a domain expense to a response DTO
func ToExpenseResponse(e *finance.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:          e.ID,
		Category:    e.Category.String(),
		Amount:      shared.NewMoney(e.Amount),
		ExpenseDate: e.ExpenseDate,
		Description: e.Description,
		Notes:       e.Notes,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

// ToExpenseResponses converts a slice of expenses
func ToExpenseResponses(expenses []finance.Expense) []ExpenseResponse {
	responses := make([]ExpenseResponse, len(expenses))
	for i := range expenses {
		responses[i] = ToExpenseResponse(&expenses[i])
	}
	return responses
}
