package partner

import (
	"context"

	"github.com/figurine/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CustomerRepository defines the interface for customer persistence
type CustomerRepository interface {
	// FindByID finds a customer by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Customer, error)

	// FindByExternalID finds a customer by storefront customer id
	FindByExternalID(ctx context.Context, externalID int64) (*Customer, error)

	// FindAll finds customers with filtering and pagination
	FindAll(ctx context.Context, filter shared.Filter) ([]Customer, error)

	// Count counts customers matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// Save creates or updates a customer
	Save(ctx context.Context, customer *Customer) error

	// Delete deletes a customer
	Delete(ctx context.Context, id uuid.UUID) error
}

// PainterRepository defines the interface for painter persistence
type PainterRepository interface {
	// FindByID finds a painter by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Painter, error)

	// FindAll lists painters, optionally only active ones
	FindAll(ctx context.Context, activeOnly bool) ([]Painter, error)

	// Save creates or updates a painter
	Save(ctx context.Context, painter *Painter) error

	// Delete deletes a painter
	Delete(ctx context.Context, id uuid.UUID) error
}
