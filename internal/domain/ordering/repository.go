package ordering

import (
	"context"

	"github.com/figurine/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// OrderRepository defines the interface for order persistence
type OrderRepository interface {
	// FindByID finds an order by ID with its items preloaded
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)

	// FindByIDForUpdate finds an order by ID and, inside a transaction,
	// takes a row-level write lock on it so concurrent payment writes
	// serialize on the order
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Order, error)

	// FindByOrderNumber finds an order by its unique order number
	FindByOrderNumber(ctx context.Context, orderNumber string) (*Order, error)

	// FindByExternalID finds an order by its storefront order id
	FindByExternalID(ctx context.Context, externalID int64) (*Order, error)

	// FindAll finds orders with filtering and pagination
	FindAll(ctx context.Context, filter shared.Filter) ([]Order, error)

	// Count counts orders matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// Save creates or updates an order together with its items atomically
	Save(ctx context.Context, order *Order) error

	// Delete deletes an order and, by composition, its items and payments
	Delete(ctx context.Context, id uuid.UUID) error

	// SavePainterAssignment persists a painter assignment for an order
	SavePainterAssignment(ctx context.Context, assignment *PainterAssignment) error

	// FindPainterAssignments lists painter assignments for an order
	FindPainterAssignments(ctx context.Context, orderID uuid.UUID) ([]PainterAssignment, error)
}
