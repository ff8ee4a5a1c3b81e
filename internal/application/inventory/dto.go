package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/figurine/backend/internal/domain/inventory"
	"github.com/figurine/backend/internal/domain/shared"
)

// =============================================================================
// Resin DTOs
// =============================================================================

// CreateResinRequest represents a request to record a resin purchase
type CreateResinRequest struct {
	Color          string          `json:"color" binding:"required,min=1,max=100"`
	Quantity       decimal.Decimal `json:"quantity"`
	Unit           string          `json:"unit" binding:"max=20"`
	CostPerUnit    decimal.Decimal `json:"cost_per_unit"`
	PurchaseDate   *time.Time      `json:"purchase_date"`
	PurchaseSource string          `json:"purchase_source" binding:"max=255"`
	Notes          string          `json:"notes" binding:"max=1000"`
}

// UpdateResinRequest represents a request to adjust a resin record
type UpdateResinRequest struct {
	Quantity       *decimal.Decimal `json:"quantity"`
	PurchaseSource *string          `json:"purchase_source" binding:"omitempty,max=255"`
	Notes          *string          `json:"notes" binding:"omitempty,max=1000"`
}

// ResinResponse represents a resin record in API responses
type ResinResponse struct {
	ID             uuid.UUID       `json:"id"`
	Color          string          `json:"color"`
	Quantity       decimal.Decimal `json:"quantity"`
	Unit           string          `json:"unit"`
	CostPerUnit    shared.Money    `json:"cost_per_unit"`
	PurchaseDate   time.Time       `json:"purchase_date"`
	PurchaseSource string          `json:"purchase_source"`
	Notes          string          `json:"notes"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// ToResinResponse converts a domain resin record to a response DTO
func ToResinResponse(r *inventory.Resin) ResinResponse {
	return ResinResponse{
		ID:             r.ID,
		Color:          r.Color,
		Quantity:       r.Quantity,
		Unit:           r.Unit,
		CostPerUnit:    shared.NewMoney(r.CostPerUnit),
		PurchaseDate:   r.PurchaseDate,
		PurchaseSource: r.PurchaseSource,
		Notes:          r.Notes,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

// ToResinResponses converts a slice of resin records
func ToResinResponses(resins []inventory.Resin) []ResinResponse {
	responses := make([]ResinResponse, len(resins))
	for i := range resins {
		responses[i] = ToResinResponse(&resins[i])
	}
	return responses
}

// =============================================================================
// Paint bottle DTOs
// =============================================================================

// CreatePaintBottleRequest represents a request to record a paint bottle purchase
type CreatePaintBottleRequest struct {
	Color          string          `json:"color" binding:"required,min=1,max=100"`
	Brand          string          `json:"brand" binding:"required,min=1,max=100"`
	VolumeML       decimal.Decimal `json:"volume_ml"`
	Cost           decimal.Decimal `json:"cost"`
	PurchaseDate   *time.Time      `json:"purchase_date"`
	PurchaseSource string          `json:"purchase_source" binding:"max=255"`
	Notes          string          `json:"notes" binding:"max=1000"`
}

// UsePaintRequest represents a request to consume paint from a bottle
type UsePaintRequest struct {
	VolumeML decimal.Decimal `json:"volume_ml"`
}

// PaintBottleResponse represents a paint bottle in API responses
type PaintBottleResponse struct {
	ID              uuid.UUID       `json:"id"`
	Color           string          `json:"color"`
	Brand           string          `json:"brand"`
	VolumeML        decimal.Decimal `json:"volume_ml"`
	CurrentVolumeML decimal.Decimal `json:"current_volume_ml"`
	Cost            shared.Money    `json:"cost"`
	PurchaseDate    time.Time       `json:"purchase_date"`
	PurchaseSource  string          `json:"purchase_source"`
	Notes           string          `json:"notes"`
	IsEmpty         bool            `json:"is_empty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// ToPaintBottleResponse converts a domain paint bottle to a response DTO
func ToPaintBottleResponse(b *inventory.PaintBottle) PaintBottleResponse {
	return PaintBottleResponse{
		ID:              b.ID,
		Color:           b.Color,
		Brand:           b.Brand,
		VolumeML:        b.VolumeML,
		CurrentVolumeML: b.CurrentVolumeML,
		Cost:            shared.NewMoney(b.Cost),
		PurchaseDate:    b.PurchaseDate,
		PurchaseSource:  b.PurchaseSource,
		Notes:           b.Notes,
		IsEmpty:         b.IsEmpty(),
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

// ToPaintBottleResponses converts a slice of paint bottles
func ToPaintBottleResponses(bottles []inventory.PaintBottle) []PaintBottleResponse {
	responses := make([]PaintBottleResponse, len(bottles))
	for i := range bottles {
		responses[i] = ToPaintBottleResponse(&bottles[i])
	}
	return responses
}
