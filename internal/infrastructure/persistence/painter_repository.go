package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/figurine/backend/internal/domain/partner"
	"github.com/figurine/backend/internal/domain/shared"
)

// GormPainterRepository implements PainterRepository using GORM
type GormPainterRepository struct {
	db *gorm.DB
}

// NewGormPainterRepository creates a new GormPainterRepository
func NewGormPainterRepository(db *gorm.DB) *GormPainterRepository {
	return &GormPainterRepository{db: db}
}

// FindByID finds a painter by its ID
func (r *GormPainterRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Painter, error) {
	var painter partner.Painter
	if err := r.db.WithContext(ctx).First(&painter, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &painter, nil
}

// FindAll lists painters, optionally only active ones
func (r *GormPainterRepository) FindAll(ctx context.Context, activeOnly bool) ([]partner.Painter, error) {
	var painters []partner.Painter
	query := r.db.WithContext(ctx).Order("name ASC")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Find(&painters).Error; err != nil {
		return nil, err
	}
	return painters, nil
}

// Save creates or updates a painter
func (r *GormPainterRepository) Save(ctx context.Context, painter *partner.Painter) error {
	return r.db.WithContext(ctx).Save(painter).Error
}

// Delete deletes a painter
func (r *GormPainterRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&partner.Painter{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormPainterRepository implements PainterRepository
var _ partner.PainterRepository = (*GormPainterRepository)(nil)
