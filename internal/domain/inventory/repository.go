package inventory

import (
	"context"

	"github.com/google/uuid"
)

// ResinRepository defines the interface for resin stock persistence
type ResinRepository interface {
	// FindByID finds a resin record by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Resin, error)

	// FindAll lists all resin records
	FindAll(ctx context.Context) ([]Resin, error)

	// Save creates or updates a resin record
	Save(ctx context.Context, resin *Resin) error

	// Delete deletes a resin record
	Delete(ctx context.Context, id uuid.UUID) error
}

// PaintBottleRepository defines the interface for paint bottle persistence
type PaintBottleRepository interface {
	// FindByID finds a paint bottle by ID
	FindByID(ctx context.Context, id uuid.UUID) (*PaintBottle, error)

	// FindAll lists all paint bottles
	FindAll(ctx context.Context) ([]PaintBottle, error)

	// Save creates or updates a paint bottle
	Save(ctx context.Context, bottle *PaintBottle) error

	// Delete deletes a paint bottle
	Delete(ctx context.Context, id uuid.UUID) error
}
