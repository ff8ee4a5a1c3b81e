package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/figurine/backend/internal/domain/inventory"
	"github.com/figurine/backend/internal/domain/shared"
)

// GormResinRepository implements ResinRepository using GORM
type GormResinRepository struct {
	db *gorm.DB
}

// NewGormResinRepository creates a new GormResinRepository
func NewGormResinRepository(db *gorm.DB) *GormResinRepository {
	return &GormResinRepository{db: db}
}

// FindByID finds a resin record by its ID
func (r *GormResinRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.Resin, error) {
	var resin inventory.Resin
	if err := r.db.WithContext(ctx).First(&resin, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &resin, nil
}

// FindAll lists all resin records
func (r *GormResinRepository) FindAll(ctx context.Context) ([]inventory.Resin, error) {
	var resins []inventory.Resin
	if err := r.db.WithContext(ctx).
		Order("purchase_date DESC").
		Find(&resins).Error; err != nil {
		return nil, err
	}
	return resins, nil
}

// Save creates or updates a resin record
func (r *GormResinRepository) Save(ctx context.Context, resin *inventory.Resin) error {
	return r.db.WithContext(ctx).Save(resin).Error
}

// Delete deletes a resin record
func (r *GormResinRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&inventory.Resin{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// GormPaintBottleRepository implements PaintBottleRepository using GORM
type GormPaintBottleRepository struct {
	db *gorm.DB
}

// NewGormPaintBottleRepository creates a new GormPaintBottleRepository
func NewGormPaintBottleRepository(db *gorm.DB) *GormPaintBottleRepository {
	return &GormPaintBottleRepository{db: db}
}

// FindByID finds a paint bottle by its ID
func (r *GormPaintBottleRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.PaintBottle, error) {
	var bottle inventory.PaintBottle
	if err := r.db.WithContext(ctx).First(&bottle, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &bottle, nil
}

// FindAll lists all paint bottles
func (r *GormPaintBottleRepository) FindAll(ctx context.Context) ([]inventory.PaintBottle, error) {
	var bottles []inventory.PaintBottle
	if err := r.db.WithContext(ctx).
		Order("color ASC, brand ASC").
		Find(&bottles).Error; err != nil {
		return nil, err
	}
	return bottles, nil
}

// Save creates or updates a paint bottle
func (r *GormPaintBottleRepository) Save(ctx context.Context, bottle *inventory.PaintBottle) error {
	return r.db.WithContext(ctx).Save(bottle).Error
}

// Delete deletes a paint bottle
func (r *GormPaintBottleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&inventory.PaintBottle{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure the repositories implement their interfaces
var (
	_ inventory.ResinRepository       = (*GormResinRepository)(nil)
	_ inventory.PaintBottleRepository = (*GormPaintBottleRepository)(nil)
)
