package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/figurine/backend/internal/domain/billing"
	"github.com/figurine/backend/internal/domain/shared"
)

// GormPaymentMethodRepository implements PaymentMethodRepository using GORM
type GormPaymentMethodRepository struct {
	db *gorm.DB
}

// NewGormPaymentMethodRepository creates a new GormPaymentMethodRepository
func NewGormPaymentMethodRepository(db *gorm.DB) *GormPaymentMethodRepository {
	return &GormPaymentMethodRepository{db: db}
}

// FindByID finds a payment method by its ID
func (r *GormPaymentMethodRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.PaymentMethod, error) {
	var method billing.PaymentMethod
	if err := r.db.WithContext(ctx).First(&method, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &method, nil
}

// FindAll lists payment methods, optionally only active ones
func (r *GormPaymentMethodRepository) FindAll(ctx context.Context, activeOnly bool) ([]billing.PaymentMethod, error) {
	var methods []billing.PaymentMethod
	query := r.db.WithContext(ctx).Order("name ASC")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Find(&methods).Error; err != nil {
		return nil, err
	}
	return methods, nil
}

// Save creates or updates a payment method
func (r *GormPaymentMethodRepository) Save(ctx context.Context, method *billing.PaymentMethod) error {
	return r.db.WithContext(ctx).Save(method).Error
}

// Delete deletes a payment method
func (r *GormPaymentMethodRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&billing.PaymentMethod{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormPaymentMethodRepository implements PaymentMethodRepository
var _ billing.PaymentMethodRepository = (*GormPaymentMethodRepository)(nil)
