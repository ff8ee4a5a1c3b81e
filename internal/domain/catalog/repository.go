package catalog

import (
	"context"

	"github.com/figurine/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CategoryRepository defines the interface for category persistence
type CategoryRepository interface {
	// FindByID finds a category by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Category, error)

	// FindByName finds a category by exact name
	FindByName(ctx context.Context, name string) (*Category, error)

	// FindAll lists all categories
	FindAll(ctx context.Context) ([]Category, error)

	// CountProducts counts products referencing the category
	CountProducts(ctx context.Context, id uuid.UUID) (int64, error)

	// Save creates or updates a category
	Save(ctx context.Context, category *Category) error

	// Delete deletes a category
	Delete(ctx context.Context, id uuid.UUID) error
}

// ProductRepository defines the interface for product persistence
type ProductRepository interface {
	// FindByID finds a product by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)

	// FindByExternalID finds a product by storefront product id
	FindByExternalID(ctx context.Context, externalID int64) (*Product, error)

	// FindAll finds products with filtering and pagination
	FindAll(ctx context.Context, filter shared.Filter) ([]Product, error)

	// Count counts products matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// Save creates or updates a product
	Save(ctx context.Context, product *Product) error

	// Delete deletes a product
	Delete(ctx context.Context, id uuid.UUID) error
}
