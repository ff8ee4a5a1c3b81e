package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/figurine/backend/internal/domain/inventory"
)

// InventoryService handles resin and paint stock tracking
type InventoryService struct {
	resinRepo  inventory.ResinRepository
	bottleRepo inventory.PaintBottleRepository
}

// NewInventoryService creates a new InventoryService
func NewInventoryService(resinRepo inventory.ResinRepository, bottleRepo inventory.PaintBottleRepository) *InventoryService {
	return &InventoryService{
		resinRepo:  resinRepo,
		bottleRepo: bottleRepo,
	}
}

// =============================================================================
// Resin
// =============================================================================

// CreateResin records a resin purchase
func (s *InventoryService) CreateResin(ctx context.Context, req CreateResinRequest) (*ResinResponse, error) {
	purchaseDate := time.Now()
	if req.PurchaseDate != nil && !req.PurchaseDate.IsZero() {
		purchaseDate = *req.PurchaseDate
	}

	resin, err := inventory.NewResin(req.Color, req.Quantity, req.Unit, req.CostPerUnit, purchaseDate, req.PurchaseSource, req.Notes)
	if err != nil {
		return nil, err
	}
	if err := s.resinRepo.Save(ctx, resin); err != nil {
		return nil, err
	}

	response := ToResinResponse(resin)
	return &response, nil
}

// GetResin retrieves a resin record by ID
func (s *InventoryService) GetResin(ctx context.Context, id uuid.UUID) (*ResinResponse, error) {
	resin, err := s.resinRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToResinResponse(resin)
	return &response, nil
}

// ListResin lists all resin records
func (s *InventoryService) ListResin(ctx context.Context) ([]ResinResponse, error) {
	resins, err := s.resinRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return ToResinResponses(resins), nil
}

// UpdateResin adjusts a resin record's remaining quantity and notes
func (s *InventoryService) UpdateResin(ctx context.Context, id uuid.UUID, req UpdateResinRequest) (*ResinResponse, error) {
	resin, err := s.resinRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Quantity != nil {
		if err := resin.AdjustQuantity(*req.Quantity); err != nil {
			return nil, err
		}
	}
	if req.PurchaseSource != nil {
		resin.PurchaseSource = *req.PurchaseSource
	}
	if req.Notes != nil {
		resin.Notes = *req.Notes
	}

	if err := s.resinRepo.Save(ctx, resin); err != nil {
		return nil, err
	}

	response := ToResinResponse(resin)
	return &response, nil
}

// DeleteResin deletes a resin record
func (s *InventoryService) DeleteResin(ctx context.Context, id uuid.UUID) error {
	if _, err := s.resinRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.resinRepo.Delete(ctx, id)
}

// =============================================================================
// Paint bottles
// =============================================================================

// CreatePaintBottle records a paint bottle purchase, full
func (s *InventoryService) CreatePaintBottle(ctx context.Context, req CreatePaintBottleRequest) (*PaintBottleResponse, error) {
	purchaseDate := time.Now()
	if req.PurchaseDate != nil && !req.PurchaseDate.IsZero() {
		purchaseDate = *req.PurchaseDate
	}

	bottle, err := inventory.NewPaintBottle(req.Color, req.Brand, req.VolumeML, req.Cost, purchaseDate, req.PurchaseSource, req.Notes)
	if err != nil {
		return nil, err
	}
	if err := s.bottleRepo.Save(ctx, bottle); err != nil {
		return nil, err
	}

	response := ToPaintBottleResponse(bottle)
	return &response, nil
}

// GetPaintBottle retrieves a paint bottle by ID
func (s *InventoryService) GetPaintBottle(ctx context.Context, id uuid.UUID) (*PaintBottleResponse, error) {
	bottle, err := s.bottleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToPaintBottleResponse(bottle)
	return &response, nil
}

// ListPaintBottles lists all paint bottles
func (s *InventoryService) ListPaintBottles(ctx context.Context) ([]PaintBottleResponse, error) {
	bottles, err := s.bottleRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return ToPaintBottleResponses(bottles), nil
}

// UsePaint consumes paint from a bottle. Consuming more than remains is
// rejected.
func (s *InventoryService) UsePaint(ctx context.Context, id uuid.UUID, req UsePaintRequest) (*PaintBottleResponse, error) {
	bottle, err := s.bottleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := bottle.Use(req.VolumeML); err != nil {
		return nil, err
	}
	if err := s.bottleRepo.Save(ctx, bottle); err != nil {
		return nil, err
	}

	response := ToPaintBottleResponse(bottle)
	return &response, nil
}

// DeletePaintBottle deletes a paint bottle record
func (s *InventoryService) DeletePaintBottle(ctx context.Context, id uuid.UUID) error {
	if _, err := s.bottleRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.bottleRepo.Delete(ctx, id)
}
