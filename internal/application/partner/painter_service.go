package partner

import (
	"context"

	"github.com/google/uuid"

	"github.com/figurine/backend/internal/domain/partner"
)

// PainterService handles painter management operations
type PainterService struct {
	painterRepo partner.PainterRepository
}

// NewPainterService creates a new PainterService
func NewPainterService(painterRepo partner.PainterRepository) *PainterService {
	return &PainterService{
		painterRepo: painterRepo,
	}
}

// Create creates a new painter
func (s *PainterService) Create(ctx context.Context, req CreatePainterRequest) (*PainterResponse, error) {
	painter, err := partner.NewPainter(req.Name, req.Email, req.Phone)
	if err != nil {
		return nil, err
	}

	if err := s.painterRepo.Save(ctx, painter); err != nil {
		return nil, err
	}

	response := ToPainterResponse(painter)
	return &response, nil
}

// GetByID retrieves a painter by ID
func (s *PainterService) GetByID(ctx context.Context, painterID uuid.UUID) (*PainterResponse, error) {
	painter, err := s.painterRepo.FindByID(ctx, painterID)
	if err != nil {
		return nil, err
	}

	response := ToPainterResponse(painter)
	return &response, nil
}

// List retrieves painters, optionally only active ones
func (s *PainterService) List(ctx context.Context, activeOnly bool) ([]PainterResponse, error) {
	painters, err := s.painterRepo.FindAll(ctx, activeOnly)
	if err != nil {
		return nil, err
	}
	return ToPainterResponses(painters), nil
}

// Update updates a painter's details and active flag
func (s *PainterService) Update(ctx context.Context, painterID uuid.UUID, req UpdatePainterRequest) (*PainterResponse, error) {
	painter, err := s.painterRepo.FindByID(ctx, painterID)
	if err != nil {
		return nil, err
	}

	name := painter.Name
	if req.Name != nil {
		name = *req.Name
	}
	email := painter.Email
	if req.Email != nil {
		email = *req.Email
	}
	phone := painter.Phone
	if req.Phone != nil {
		phone = *req.Phone
	}

	if err := painter.Update(name, email, phone); err != nil {
		return nil, err
	}
	if req.IsActive != nil {
		painter.SetActive(*req.IsActive)
	}

	if err := s.painterRepo.Save(ctx, painter); err != nil {
		return nil, err
	}

	response := ToPainterResponse(painter)
	return &response, nil
}

// Delete deletes a painter
func (s *PainterService) Delete(ctx context.Context, painterID uuid.UUID) error {
	if _, err := s.painterRepo.FindByID(ctx, painterID); err != nil {
		return err
	}
	return s.painterRepo.Delete(ctx, painterID)
}
