package inventory

import (
	"strings"
	"time"

	"github.com/figurine/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// PaintBottle represents a bottle of paint in stock, tracking the remaining
// volume as paint is consumed by painting work
type PaintBottle struct {
	shared.BaseEntity
	Color           string          `gorm:"size:100;not null"`
	Brand           string          `gorm:"size:100;not null"`
	VolumeML        decimal.Decimal `gorm:"column:volume_ml;type:decimal(10,2);not null"`
	CurrentVolumeML decimal.Decimal `gorm:"column:current_volume_ml;type:decimal(10,2);not null"`
	Cost            decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	PurchaseDate    time.Time       `gorm:"type:date;not null"`
	PurchaseSource  string          `gorm:"size:255"`
	Notes           string          `gorm:"size:1000"`
}

// TableName returns the table name for GORM
func (PaintBottle) TableName() string {
	return "paint_bottles"
}

// NewPaintBottle creates a new full paint bottle record
func NewPaintBottle(color, brand string, volumeML, cost decimal.Decimal, purchaseDate time.Time, purchaseSource, notes string) (*PaintBottle, error) {
	if strings.TrimSpace(color) == "" {
		return nil, shared.NewDomainError("INVALID_COLOR", "Paint color cannot be empty")
	}
	if strings.TrimSpace(brand) == "" {
		return nil, shared.NewDomainError("INVALID_BRAND", "Paint brand cannot be empty")
	}
	if volumeML.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_VOLUME", "Bottle volume must be positive")
	}
	if cost.IsNegative() {
		return nil, shared.NewDomainError("INVALID_COST", "Cost cannot be negative")
	}
	return &PaintBottle{
		BaseEntity:      shared.NewBaseEntity(),
		Color:           strings.TrimSpace(color),
		Brand:           strings.TrimSpace(brand),
		VolumeML:        volumeML.Round(2),
		CurrentVolumeML: volumeML.Round(2),
		Cost:            cost.Round(2),
		PurchaseDate:    purchaseDate,
		PurchaseSource:  purchaseSource,
		Notes:           notes,
	}, nil
}

// Use consumes the given volume of paint from the bottle
func (b *PaintBottle) Use(volumeML decimal.Decimal) error {
	if volumeML.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_VOLUME", "Volume used must be positive")
	}
	if volumeML.GreaterThan(b.CurrentVolumeML) {
		return shared.NewDomainError("INSUFFICIENT_PAINT", "Volume used exceeds the remaining paint")
	}
	b.CurrentVolumeML = b.CurrentVolumeML.Sub(volumeML).Round(2)
	b.UpdatedAt = time.Now()
	return nil
}

// IsEmpty returns true when no paint remains
func (b *PaintBottle) IsEmpty() bool {
	return b.CurrentVolumeML.LessThanOrEqual(decimal.Zero)
}
