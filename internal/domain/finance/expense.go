package finance

import (
	"strings"
	"time"

	"github.com/figurine/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ExpenseCategory classifies a business expense
type ExpenseCategory string

const (
	ExpenseCategoryMaterials ExpenseCategory = "materials"
	ExpenseCategoryUtilities ExpenseCategory = "utilities"
	ExpenseCategoryEquipment ExpenseCategory = "equipment"
	ExpenseCategoryMarketing ExpenseCategory = "marketing"
	ExpenseCategoryShipping  ExpenseCategory = "shipping"
	ExpenseCategoryOther     ExpenseCategory = "other"
)

// IsValid checks if the category is a valid ExpenseCategory
func (c ExpenseCategory) IsValid() bool {
	switch c {
	case ExpenseCategoryMaterials, ExpenseCategoryUtilities, ExpenseCategoryEquipment,
		ExpenseCategoryMarketing, ExpenseCategoryShipping, ExpenseCategoryOther:
		return true
	}
	return false
}

// String returns the string representation of ExpenseCategory
func (c ExpenseCategory) String() string {
	return string(c)
}

// Expense represents a dated business expense
type Expense struct {
	shared.BaseEntity
	Category    ExpenseCategory `gorm:"size:20;not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	ExpenseDate time.Time       `gorm:"type:date;not null"`
	Description string          `gorm:"size:500;not null"`
	Notes       string          `gorm:"size:1000"`
}

// TableName returns the table name for GORM
func (Expense) TableName() string {
	return "expenses"
}

// NewExpense creates a new expense record
func NewExpense(category ExpenseCategory, amount decimal.Decimal, expenseDate time.Time, description, notes string) (*Expense, error) {
	if err := validateExpense(category, amount, description); err != nil {
		return nil, err
	}
	if expenseDate.IsZero() {
		expenseDate = time.Now()
	}
	return &Expense{
		BaseEntity:  shared.NewBaseEntity(),
		Category:    category,
		Amount:      amount.Round(2),
		ExpenseDate: expenseDate,
		Description: strings.TrimSpace(description),
		Notes:       notes,
	}, nil
}

// Update replaces the expense's fields
func (e *Expense) Update(category ExpenseCategory, amount decimal.Decimal, expenseDate time.Time, description, notes string) error {
	if err := validateExpense(category, amount, description); err != nil {
		return err
	}
	e.Category = category
	e.Amount = amount.Round(2)
	if !expenseDate.IsZero() {
		e.ExpenseDate = expenseDate
	}
	e.Description = strings.TrimSpace(description)
	e.Notes = notes
	e.UpdatedAt = time.Now()
	return nil
}

func validateExpense(category ExpenseCategory, amount decimal.Decimal, description string) error {
	if !category.IsValid() {
		return shared.NewDomainError("INVALID_CATEGORY", "Unknown expense category")
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_AMOUNT", "Expense amount must be greater than zero")
	}
	if strings.TrimSpace(description) == "" {
		return shared.NewDomainError("INVALID_DESCRIPTION", "Expense description cannot be empty")
	}
	return nil
}
