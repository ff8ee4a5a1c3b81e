package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/figurine/backend/internal/domain/catalog"
	"github.com/figurine/backend/internal/domain/shared"
)

// =============================================================================
// Category DTOs
// =============================================================================

// CreateCategoryRequest represents a request to create a category
type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=255"`
	Description string `json:"description" binding:"max=1000"`
}

// UpdateCategoryRequest represents a request to update a category
type UpdateCategoryRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=255"`
	Description string `json:"description" binding:"max=1000"`
}

// CategoryResponse represents a category in API responses
type CategoryResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToCategoryResponse converts a domain category to a response DTO
func ToCategoryResponse(c *catalog.Category) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// ToCategoryResponses converts a slice of categories
func ToCategoryResponses(categories []catalog.Category) []CategoryResponse {
	responses := make([]CategoryResponse, len(categories))
	for i := range categories {
		responses[i] = ToCategoryResponse(&categories[i])
	}
	return responses
}

// =============================================================================
// Product DTOs
// =============================================================================

// CreateProductRequest represents a request to create a product
type CreateProductRequest struct {
	Name        string          `json:"name" binding:"required,min=1,max=255"`
	Description string          `json:"description" binding:"max=2000"`
	CategoryID  uuid.UUID       `json:"category_id" binding:"required"`
	BasePrice   decimal.Decimal `json:"base_price"`
	IsColored   bool            `json:"is_colored"`
	Dimensions  string          `json:"dimensions" binding:"max=255"`
}

// UpdateProductRequest represents a request to update a product
type UpdateProductRequest struct {
	Name        *string          `json:"name" binding:"omitempty,min=1,max=255"`
	Description *string          `json:"description" binding:"omitempty,max=2000"`
	CategoryID  *uuid.UUID       `json:"category_id"`
	BasePrice   *decimal.Decimal `json:"base_price"`
	IsColored   *bool            `json:"is_colored"`
	Dimensions  *string          `json:"dimensions" binding:"omitempty,max=255"`
	IsActive    *bool            `json:"is_active"`
}

// ProductListFilter represents filtering options for listing products
type ProductListFilter struct {
	Page       int    `form:"page"`
	PageSize   int    `form:"page_size"`
	OrderBy    string `form:"order_by"`
	OrderDir   string `form:"order_dir"`
	Search     string `form:"search"`
	CategoryID string `form:"category_id" binding:"omitempty,uuid"`
	Source     string `form:"source" binding:"omitempty,oneof=erp storefront"`
	ActiveOnly bool   `form:"active_only"`
}

// ProductResponse represents a product in API responses
type ProductResponse struct {
	ID          uuid.UUID    `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	CategoryID  uuid.UUID    `json:"category_id"`
	BasePrice   shared.Money `json:"base_price"`
	IsColored   bool         `json:"is_colored"`
	Dimensions  string       `json:"dimensions"`
	Source      string       `json:"source"`
	ExternalID  *int64       `json:"external_id"`
	IsActive    bool         `json:"is_active"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// ToProductResponse converts a domain product to a response DTO
func ToProductResponse(p *catalog.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		CategoryID:  p.CategoryID,
		BasePrice:   shared.NewMoney(p.BasePrice),
		IsColored:   p.IsColored,
		Dimensions:  p.Dimensions,
		Source:      string(p.Source),
		ExternalID:  p.ExternalID,
		IsActive:    p.IsActive,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// ToProductResponses converts a slice of products
func ToProductResponses(products []catalog.Product) []ProductResponse {
	responses := make([]ProductResponse, len(products))
	for i := range products {
		responses[i] = ToProductResponse(&products[i])
	}
	return responses
}
