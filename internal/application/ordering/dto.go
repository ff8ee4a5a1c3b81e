package ordering

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/figurine/backend/internal/domain/ordering"
	"github.com/figurine/backend/internal/domain/shared"
)

// =============================================================================
// Order DTOs
// =============================================================================

// OrderItemRequest represents a line item in an order creation or add-item
// request. When ProductID is set, name, price, category and appearance are
// snapshotted from the product unless overridden here; without a ProductID
// the item is custom and the fields are required.
type OrderItemRequest struct {
	ProductID         *uuid.UUID       `json:"product_id"`
	ProductName       string           `json:"product_name" binding:"max=255"`
	CategoryID        *uuid.UUID       `json:"category_id"`
	IsColored         *bool            `json:"is_colored"`
	Dimensions        string           `json:"dimensions" binding:"max=255"`
	Quantity          int              `json:"quantity" binding:"required,min=1"`
	UnitPrice         *decimal.Decimal `json:"unit_price"`
	DiscountAmount    decimal.Decimal  `json:"discount_amount"`
	DiscountType      string           `json:"discount_type" binding:"omitempty,oneof=fixed percentage"`
	DiscountReason    string           `json:"discount_reason" binding:"max=500"`
	ImageURL          string           `json:"image_url" binding:"max=500"`
	CustomDescription string           `json:"custom_description" binding:"max=1000"`
}

// CreateOrderRequest represents a request to create a new order with its
// items. Creation is all-or-nothing: a rejected item or discount aborts the
// whole order.
type CreateOrderRequest struct {
	OrderNumber    string             `json:"order_number" binding:"max=50"`
	Source         string             `json:"source" binding:"required,oneof=website custom other"`
	CustomerID     uuid.UUID          `json:"customer_id" binding:"required"`
	OrderDate      *time.Time         `json:"order_date"`
	Items          []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
	DiscountAmount decimal.Decimal    `json:"discount_amount"`
	DiscountType   string             `json:"discount_type" binding:"omitempty,oneof=fixed percentage"`
	DiscountReason string             `json:"discount_reason" binding:"max=500"`
	Notes          string             `json:"notes" binding:"max=2000"`
}

// UpdateOrderRequest represents a request to update an order's mutable fields
type UpdateOrderRequest struct {
	Status         *string          `json:"status" binding:"omitempty,oneof=pending printing in_production painting final_checks shipped delivered cancelled returned"`
	CustomerID     *uuid.UUID       `json:"customer_id"`
	OrderDate      *time.Time       `json:"order_date"`
	DiscountAmount *decimal.Decimal `json:"discount_amount"`
	DiscountType   *string          `json:"discount_type" binding:"omitempty,oneof=fixed percentage"`
	DiscountReason *string          `json:"discount_reason" binding:"omitempty,max=500"`
	Notes          *string          `json:"notes" binding:"omitempty,max=2000"`
}

// UpdateOrderStatusRequest represents a status-only update
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending printing in_production painting final_checks shipped delivered cancelled returned"`
}

// OrderListFilter represents filtering options for listing orders
type OrderListFilter struct {
	Page       int    `form:"page"`
	PageSize   int    `form:"page_size"`
	OrderBy    string `form:"order_by"`
	OrderDir   string `form:"order_dir"`
	Search     string `form:"search"`
	Status     string `form:"status" binding:"omitempty,oneof=pending printing in_production painting final_checks shipped delivered cancelled returned"`
	Source     string `form:"source" binding:"omitempty,oneof=website custom other"`
	CustomerID string `form:"customer_id" binding:"omitempty,uuid"`
	FullyPaid  *bool  `form:"fully_paid"`
}

// OrderItemResponse represents an order item in API responses
type OrderItemResponse struct {
	ID                uuid.UUID       `json:"id"`
	ProductID         *uuid.UUID      `json:"product_id"`
	ProductName       string          `json:"product_name"`
	CategoryID        uuid.UUID       `json:"category_id"`
	IsColored         bool            `json:"is_colored"`
	Dimensions        string          `json:"dimensions"`
	Quantity          int          `json:"quantity"`
	UnitPrice         shared.Money `json:"unit_price"`
	DiscountAmount    shared.Money `json:"discount_amount"`
	DiscountType      *string      `json:"discount_type"`
	DiscountReason    string       `json:"discount_reason"`
	TotalPrice        shared.Money `json:"total_price"`
	ImageURL          string          `json:"image_url"`
	CustomDescription string          `json:"custom_description"`
}

// OrderResponse represents an order in API responses
type OrderResponse struct {
	ID             uuid.UUID           `json:"id"`
	OrderNumber    string              `json:"order_number"`
	Source         string              `json:"source"`
	Status         string              `json:"status"`
	CustomerID     uuid.UUID           `json:"customer_id"`
	OrderDate      time.Time           `json:"order_date"`
	Subtotal       shared.Money        `json:"subtotal"`
	DiscountAmount shared.Money        `json:"discount_amount"`
	DiscountType   *string             `json:"discount_type"`
	DiscountReason string              `json:"discount_reason"`
	TotalAmount    shared.Money        `json:"total_amount"`
	PaidAmount     shared.Money        `json:"paid_amount"`
	Balance        shared.Money        `json:"balance"`
	IsFullyPaid    bool                `json:"is_fully_paid"`
	Notes          string              `json:"notes"`
	ExternalID     *int64              `json:"external_id"`
	Items          []OrderItemResponse `json:"items"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
}

// PainterAssignmentRequest represents a request to assign a painter to an order
type PainterAssignmentRequest struct {
	PainterID    uuid.UUID       `json:"painter_id" binding:"required"`
	AssignedDate *time.Time      `json:"assigned_date"`
	PaintingCost decimal.Decimal `json:"painting_cost"`
	Notes        string          `json:"notes" binding:"max=1000"`
}

// PainterAssignmentResponse represents a painter assignment in API responses
type PainterAssignmentResponse struct {
	ID           uuid.UUID       `json:"id"`
	OrderID      uuid.UUID       `json:"order_id"`
	PainterID    uuid.UUID       `json:"painter_id"`
	AssignedDate time.Time    `json:"assigned_date"`
	PaintingCost shared.Money `json:"painting_cost"`
	Notes        string       `json:"notes"`
	CreatedAt    time.Time    `json:"created_at"`
}

// ToOrderItemResponse converts a domain order item to a response DTO
func ToOrderItemResponse(item *ordering.OrderItem) OrderItemResponse {
	var discountType *string
	if item.DiscountType != nil {
		s := item.DiscountType.String()
		discountType = &s
	}
	return OrderItemResponse{
		ID:                item.ID,
		ProductID:         item.ProductID,
		ProductName:       item.ProductName,
		CategoryID:        item.CategoryID,
		IsColored:         item.IsColored,
		Dimensions:        item.Dimensions,
		Quantity:          item.Quantity,
		UnitPrice:         shared.NewMoney(item.UnitPrice),
		DiscountAmount:    shared.NewMoney(item.DiscountAmount),
		DiscountType:      discountType,
		DiscountReason:    item.DiscountReason,
		TotalPrice:        shared.NewMoney(item.TotalPrice),
		ImageURL:          item.ImageURL,
		CustomDescription: item.CustomDescription,
	}
}

// ToOrderResponse converts a domain order to a response DTO
func ToOrderResponse(order *ordering.Order) OrderResponse {
	var discountType *string
	if order.DiscountType != nil {
		s := order.DiscountType.String()
		discountType = &s
	}
	items := make([]OrderItemResponse, len(order.Items))
	for i := range order.Items {
		items[i] = ToOrderItemResponse(&order.Items[i])
	}
	return OrderResponse{
		ID:             order.ID,
		OrderNumber:    order.OrderNumber,
		Source:         order.Source.String(),
		Status:         order.Status.String(),
		CustomerID:     order.CustomerID,
		OrderDate:      order.OrderDate,
		Subtotal:       shared.NewMoney(order.Subtotal),
		DiscountAmount: shared.NewMoney(order.DiscountAmount),
		DiscountType:   discountType,
		DiscountReason: order.DiscountReason,
		TotalAmount:    shared.NewMoney(order.TotalAmount),
		PaidAmount:     shared.NewMoney(order.PaidAmount),
		Balance:        shared.NewMoney(order.Balance),
		IsFullyPaid:    order.IsFullyPaid,
		Notes:          order.Notes,
		ExternalID:     order.ExternalID,
		Items:          items,
		CreatedAt:      order.CreatedAt,
		UpdatedAt:      order.UpdatedAt,
	}
}

// ToOrderResponses converts a slice of orders
func ToOrderResponses(orders []ordering.Order) []OrderResponse {
	responses := make([]OrderResponse, len(orders))
	for i := range orders {
		responses[i] = ToOrderResponse(&orders[i])
	}
	return responses
}

// ToPainterAssignmentResponse converts a domain painter assignment to a response DTO
func ToPainterAssignmentResponse(a *ordering.PainterAssignment) PainterAssignmentResponse {
	return PainterAssignmentResponse{
		ID:           a.ID,
		OrderID:      a.OrderID,
		PainterID:    a.PainterID,
		AssignedDate: a.AssignedDate,
		PaintingCost: shared.NewMoney(a.PaintingCost),
		Notes:        a.Notes,
		CreatedAt:    a.CreatedAt,
	}
}

// ToPainterAssignmentResponses converts a slice of painter assignments
func ToPainterAssignmentResponses(assignments []ordering.PainterAssignment) []PainterAssignmentResponse {
	responses := make([]PainterAssignmentResponse, len(assignments))
	for i := range assignments {
		responses[i] = ToPainterAssignmentResponse(&assignments[i])
	}
	return responses
}
