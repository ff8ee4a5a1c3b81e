package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/figurine/backend/internal/domain/finance"
	"github.com/figurine/backend/internal/domain/shared"
)

// GormExpenseRepository implements ExpenseRepository using GORM
type GormExpenseRepository struct {
	db *gorm.DB
}

// NewGormExpenseRepository creates a new GormExpenseRepository
func NewGormExpenseRepository(db *gorm.DB) *GormExpenseRepository {
	return &GormExpenseRepository{db: db}
}

// FindByID finds an expense by its ID
func (r *GormExpenseRepository) FindByID(ctx context.Context, id uuid.UUID) (*finance.Expense, error) {
	var expense finance.Expense
	if err := r.db.WithContext(ctx).First(&expense, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &expense, nil
}

// FindAll lists expenses matching the filter, newest first
func (r *GormExpenseRepository) FindAll(ctx context.Context, filter finance.ExpenseFilter) ([]finance.Expense, error) {
	var expenses []finance.Expense
	query := r.db.WithContext(ctx).Model(&finance.Expense{})

	if filter.Category != nil {
		query = query.Where("category = ?", *filter.Category)
	}
	if filter.From != nil {
		query = query.Where("expense_date >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("expense_date <= ?", *filter.To)
	}

	if err := query.Order("expense_date DESC").Find(&expenses).Error; err != nil {
		return nil, err
	}
	return expenses, nil
}

// Save creates or updates an expense
func (r *GormExpenseRepository) Save(ctx context.Context, expense *finance.Expense) error {
	return r.db.WithContext(ctx).Save(expense).Error
}

// Delete deletes an expense
func (r *GormExpenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&finance.Expense{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormExpenseRepository implements ExpenseRepository
var _ finance.ExpenseRepository = (*GormExpenseRepository)(nil)
