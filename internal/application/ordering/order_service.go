package ordering

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/figurine/backend/internal/domain/catalog"
	"github.com/figurine/backend/internal/domain/ordering"
	"github.com/figurine/backend/internal/domain/partner"
	"github.com/figurine/backend/internal/domain/shared"
)

// OrderService handles order lifecycle operations. It owns order numbers,
// item composition and the order-level discount; paid amounts and balances
// are written by the payment ledger only.
type OrderService struct {
	orderRepo    ordering.OrderRepository
	customerRepo partner.CustomerRepository
	painterRepo  partner.PainterRepository
	productRepo  catalog.ProductRepository
}

// NewOrderService creates a new OrderService
func NewOrderService(
	orderRepo ordering.OrderRepository,
	customerRepo partner.CustomerRepository,
	painterRepo partner.PainterRepository,
	productRepo catalog.ProductRepository,
) *OrderService {
	return &OrderService{
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		painterRepo:  painterRepo,
		productRepo:  productRepo,
	}
}

// Create creates a new order with its items. The whole request is priced in
// memory first and saved in one write, so a rejected item or discount leaves
// nothing behind.
func (s *OrderService) Create(ctx context.Context, req CreateOrderRequest) (*OrderResponse, error) {
	if _, err := s.customerRepo.FindByID(ctx, req.CustomerID); err != nil {
		return nil, err
	}

	orderNumber := req.OrderNumber
	if orderNumber == "" {
		orderNumber = generateOrderNumber()
	}
	if existing, err := s.orderRepo.FindByOrderNumber(ctx, orderNumber); err == nil && existing != nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Order with this number already exists")
	} else if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	orderDate := time.Time{}
	if req.OrderDate != nil {
		orderDate = *req.OrderDate
	}
	order, err := ordering.NewOrder(orderNumber, ordering.OrderSource(req.Source), req.CustomerID, orderDate)
	if err != nil {
		return nil, err
	}

	for _, itemReq := range req.Items {
		input, err := s.resolveItemInput(ctx, itemReq)
		if err != nil {
			return nil, err
		}
		if _, err := order.AddItem(*input); err != nil {
			return nil, err
		}
	}

	if !req.DiscountAmount.IsZero() || req.DiscountType != "" {
		discountType := discountTypePtr(req.DiscountType)
		if err := order.SetDiscount(req.DiscountAmount, discountType, req.DiscountReason); err != nil {
			return nil, err
		}
	}
	if req.Notes != "" {
		order.SetNotes(req.Notes)
	}

	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	response := ToOrderResponse(order)
	return &response, nil
}

// GetByID retrieves an order with its items
func (s *OrderService) GetByID(ctx context.Context, orderID uuid.UUID) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	response := ToOrderResponse(order)
	return &response, nil
}

// GetByOrderNumber retrieves an order by its unique number
func (s *OrderService) GetByOrderNumber(ctx context.Context, orderNumber string) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByOrderNumber(ctx, orderNumber)
	if err != nil {
		return nil, err
	}

	response := ToOrderResponse(order)
	return &response, nil
}

// List retrieves orders with filtering and pagination
func (s *OrderService) List(ctx context.Context, filter OrderListFilter) ([]OrderResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	if filter.OrderBy == "" {
		filter.OrderBy = "order_date"
	}
	if filter.OrderDir == "" {
		filter.OrderDir = "desc"
	}

	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  filter.OrderBy,
		OrderDir: filter.OrderDir,
		Search:   filter.Search,
		Filters:  make(map[string]any),
	}
	if filter.Status != "" {
		domainFilter.Filters["status"] = filter.Status
	}
	if filter.Source != "" {
		domainFilter.Filters["source"] = filter.Source
	}
	if filter.CustomerID != "" {
		domainFilter.Filters["customer_id"] = filter.CustomerID
	}
	if filter.FullyPaid != nil {
		domainFilter.Filters["is_fully_paid"] = *filter.FullyPaid
	}

	orders, err := s.orderRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.orderRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToOrderResponses(orders), total, nil
}

// Update updates an order's mutable fields. A discount change reprices the
// order and re-derives the balance against the amount already paid.
func (s *OrderService) Update(ctx context.Context, orderID uuid.UUID, req UpdateOrderRequest) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if req.Status != nil {
		if err := order.UpdateStatus(ordering.OrderStatus(*req.Status)); err != nil {
			return nil, err
		}
	}
	if req.CustomerID != nil {
		if _, err := s.customerRepo.FindByID(ctx, *req.CustomerID); err != nil {
			return nil, err
		}
		order.CustomerID = *req.CustomerID
	}
	if req.OrderDate != nil && !req.OrderDate.IsZero() {
		order.OrderDate = *req.OrderDate
	}

	if req.DiscountAmount != nil || req.DiscountType != nil || req.DiscountReason != nil {
		amount := order.DiscountAmount
		if req.DiscountAmount != nil {
			amount = *req.DiscountAmount
		}
		discountType := order.DiscountType
		if req.DiscountType != nil {
			discountType = discountTypePtr(*req.DiscountType)
		}
		reason := order.DiscountReason
		if req.DiscountReason != nil {
			reason = *req.DiscountReason
		}
		if err := order.SetDiscount(amount, discountType, reason); err != nil {
			return nil, err
		}
	}

	if req.Notes != nil {
		order.SetNotes(*req.Notes)
	}

	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	response := ToOrderResponse(order)
	return &response, nil
}

// UpdateStatus updates only the order status
func (s *OrderService) UpdateStatus(ctx context.Context, orderID uuid.UUID, req UpdateOrderStatusRequest) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err := order.UpdateStatus(ordering.OrderStatus(req.Status)); err != nil {
		return nil, err
	}
	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	response := ToOrderResponse(order)
	return &response, nil
}

// AddItem adds an item to an existing order and reprices it
func (s *OrderService) AddItem(ctx context.Context, orderID uuid.UUID, req OrderItemRequest) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	input, err := s.resolveItemInput(ctx, req)
	if err != nil {
		return nil, err
	}
	if _, err := order.AddItem(*input); err != nil {
		return nil, err
	}
	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	response := ToOrderResponse(order)
	return &response, nil
}

// RemoveItem removes an item from an order and reprices it
func (s *OrderService) RemoveItem(ctx context.Context, orderID, itemID uuid.UUID) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err := order.RemoveItem(itemID); err != nil {
		return nil, err
	}
	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	response := ToOrderResponse(order)
	return &response, nil
}

// Delete deletes an order together with its items, payments and painter
// assignments
func (s *OrderService) Delete(ctx context.Context, orderID uuid.UUID) error {
	if _, err := s.orderRepo.FindByID(ctx, orderID); err != nil {
		return err
	}
	return s.orderRepo.Delete(ctx, orderID)
}

// AssignPainter records a painter assignment with its agreed cost
func (s *OrderService) AssignPainter(ctx context.Context, orderID uuid.UUID, req PainterAssignmentRequest) (*PainterAssignmentResponse, error) {
	if _, err := s.orderRepo.FindByID(ctx, orderID); err != nil {
		return nil, err
	}
	painter, err := s.painterRepo.FindByID(ctx, req.PainterID)
	if err != nil {
		return nil, err
	}
	if !painter.IsActive {
		return nil, shared.NewDomainError("PAINTER_INACTIVE", "Painter is not taking new assignments")
	}

	assignedDate := time.Now()
	if req.AssignedDate != nil && !req.AssignedDate.IsZero() {
		assignedDate = *req.AssignedDate
	}
	assignment, err := ordering.NewPainterAssignment(orderID, req.PainterID, assignedDate, req.PaintingCost, req.Notes)
	if err != nil {
		return nil, err
	}
	if err := s.orderRepo.SavePainterAssignment(ctx, assignment); err != nil {
		return nil, err
	}

	response := ToPainterAssignmentResponse(assignment)
	return &response, nil
}

// ListPainterAssignments lists painter assignments for an order
func (s *OrderService) ListPainterAssignments(ctx context.Context, orderID uuid.UUID) ([]PainterAssignmentResponse, error) {
	assignments, err := s.orderRepo.FindPainterAssignments(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return ToPainterAssignmentResponses(assignments), nil
}

// resolveItemInput builds the domain item input, snapshotting name, price,
// category and appearance from the referenced product when one is given
func (s *OrderService) resolveItemInput(ctx context.Context, req OrderItemRequest) (*ordering.OrderItemInput, error) {
	input := ordering.OrderItemInput{
		ProductID:         req.ProductID,
		ProductName:       req.ProductName,
		IsColored:         req.IsColored != nil && *req.IsColored,
		Dimensions:        req.Dimensions,
		Quantity:          req.Quantity,
		DiscountAmount:    req.DiscountAmount,
		DiscountType:      discountTypePtr(req.DiscountType),
		DiscountReason:    req.DiscountReason,
		ImageURL:          req.ImageURL,
		CustomDescription: req.CustomDescription,
	}
	if req.CategoryID != nil {
		input.CategoryID = *req.CategoryID
	}
	if req.UnitPrice != nil {
		input.UnitPrice = *req.UnitPrice
	}

	if req.ProductID != nil {
		product, err := s.productRepo.FindByID(ctx, *req.ProductID)
		if err != nil {
			return nil, err
		}
		if !product.IsActive {
			return nil, shared.NewDomainError("PRODUCT_INACTIVE", "Product is not available for new orders")
		}
		if input.ProductName == "" {
			input.ProductName = product.Name
		}
		if req.CategoryID == nil {
			input.CategoryID = product.CategoryID
		}
		if req.UnitPrice == nil {
			input.UnitPrice = product.BasePrice
		}
		if req.IsColored == nil {
			input.IsColored = product.IsColored
		}
		if input.Dimensions == "" {
			input.Dimensions = product.Dimensions
		}
	}

	return &input, nil
}

func discountTypePtr(value string) *ordering.DiscountType {
	if value == "" {
		return nil
	}
	t := ordering.DiscountType(value)
	return &t
}

func generateOrderNumber() string {
	suffix := uuid.New().String()[:8]
	return fmt.Sprintf("ORD-%s-%s", time.Now().Format("20060102"), suffix)
}
