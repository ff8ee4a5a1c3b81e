package partner

import (
	"time"

	"github.com/google/uuid"

	"github.com/figurine/backend/internal/domain/partner"
)

// =============================================================================
// Customer DTOs
// =============================================================================

// CreateCustomerRequest represents a request to create a new customer
type CreateCustomerRequest struct {
	Name       string `json:"name" binding:"required,min=1,max=255"`
	Email      string `json:"email" binding:"omitempty,email,max=255"`
	Phone      string `json:"phone" binding:"max=50"`
	Address    string `json:"address" binding:"max=500"`
	City       string `json:"city" binding:"max=100"`
	PostalCode string `json:"postal_code" binding:"max=20"`
}

// UpdateCustomerRequest represents a request to update a customer
type UpdateCustomerRequest struct {
	Name       *string `json:"name" binding:"omitempty,min=1,max=255"`
	Email      *string `json:"email" binding:"omitempty,email,max=255"`
	Phone      *string `json:"phone" binding:"omitempty,max=50"`
	Address    *string `json:"address" binding:"omitempty,max=500"`
	City       *string `json:"city" binding:"omitempty,max=100"`
	PostalCode *string `json:"postal_code" binding:"omitempty,max=20"`
}

// CustomerListFilter represents filtering options for listing customers
type CustomerListFilter struct {
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir"`
	Search   string `form:"search"`
	Source   string `form:"source" binding:"omitempty,oneof=erp storefront"`
}

// CustomerResponse represents a customer in API responses
type CustomerResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Address    string    `json:"address"`
	City       string    `json:"city"`
	PostalCode string    `json:"postal_code"`
	Source     string    `json:"source"`
	ExternalID *int64    `json:"external_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ToCustomerResponse converts a domain customer to a response DTO
func ToCustomerResponse(c *partner.Customer) CustomerResponse {
	return CustomerResponse{
		ID:         c.ID,
		Name:       c.Name,
		Email:      c.Email,
		Phone:      c.Phone,
		Address:    c.Address,
		City:       c.City,
		PostalCode: c.PostalCode,
		Source:     string(c.Source),
		ExternalID: c.ExternalID,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

// ToCustomerResponses converts a slice of customers
func ToCustomerResponses(customers []partner.Customer) []CustomerResponse {
	responses := make([]CustomerResponse, len(customers))
	for i := range customers {
		responses[i] = ToCustomerResponse(&customers[i])
	}
	return responses
}

// =============================================================================
// Painter DTOs
// =============================================================================

// CreatePainterRequest represents a request to create a new painter
type CreatePainterRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=255"`
	Email string `json:"email" binding:"omitempty,email,max=255"`
	Phone string `json:"phone" binding:"max=50"`
}

// UpdatePainterRequest represents a request to update a painter
type UpdatePainterRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=1,max=255"`
	Email    *string `json:"email" binding:"omitempty,email,max=255"`
	Phone    *string `json:"phone" binding:"omitempty,max=50"`
	IsActive *bool   `json:"is_active"`
}

// PainterResponse represents a painter in API responses
type PainterResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToPainterResponse converts a domain painter to a response DTO
func ToPainterResponse(p *partner.Painter) PainterResponse {
	return PainterResponse{
		ID:        p.ID,
		Name:      p.Name,
		Email:     p.Email,
		Phone:     p.Phone,
		IsActive:  p.IsActive,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// ToPainterResponses converts a slice of painters
func ToPainterResponses(painters []partner.Painter) []PainterResponse {
	responses := make([]PainterResponse, len(painters))
	for i := range painters {
		responses[i] = ToPainterResponse(&painters[i])
	}
	return responses
}
