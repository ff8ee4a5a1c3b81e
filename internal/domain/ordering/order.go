package ordering

import (
	"strings"
	"time"

	"github.com/figurine/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderItem represents a line item in an order.
// Product name and unit price are snapshots taken at creation time and are
// never re-synced when the underlying product changes.
type OrderItem struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID           uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID         *uuid.UUID      `gorm:"type:uuid"` // nil for custom items
	ProductName       string          `gorm:"size:255;not null"`
	CategoryID        uuid.UUID       `gorm:"type:uuid;not null"`
	IsColored         bool            `gorm:"not null;default:false"`
	Dimensions        string          `gorm:"size:255"`
	Quantity          int             `gorm:"not null"`
	UnitPrice         decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	DiscountAmount    decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	DiscountType      *DiscountType   `gorm:"size:20"`
	DiscountReason    string          `gorm:"size:500"`
	TotalPrice        decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	ImageURL          string          `gorm:"size:500"`
	CustomDescription string          `gorm:"size:1000"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName returns the table name for GORM
func (OrderItem) TableName() string {
	return "order_items"
}

// OrderItemInput carries the caller-supplied fields for a new order item
type OrderItemInput struct {
	ProductID         *uuid.UUID
	ProductName       string
	CategoryID        uuid.UUID
	IsColored         bool
	Dimensions        string
	Quantity          int
	UnitPrice         decimal.Decimal
	DiscountAmount    decimal.Decimal
	DiscountType      *DiscountType
	DiscountReason    string
	ImageURL          string
	CustomDescription string
	// ImportedTotal, when set, is the externally-supplied line total and is
	// stored as-is instead of repricing locally. Storefront coupons can make
	// it differ from unit_price x quantity.
	ImportedTotal *decimal.Decimal
}

// NewOrderItem creates a new order item and prices it:
// total_price = discount(unit_price x quantity), unless an imported total
// overrides the computation.
func NewOrderItem(orderID uuid.UUID, in OrderItemInput) (*OrderItem, error) {
	if strings.TrimSpace(in.ProductName) == "" {
		return nil, shared.NewDomainError("INVALID_PRODUCT_NAME", "Product name cannot be empty")
	}
	if in.CategoryID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CATEGORY", "Category ID cannot be empty")
	}
	if in.Quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if in.UnitPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}

	var total decimal.Decimal
	if in.ImportedTotal != nil {
		if in.ImportedTotal.IsNegative() {
			return nil, shared.NewDomainError("INVALID_PRICE", "Line total cannot be negative")
		}
		total = *in.ImportedTotal
	} else {
		base := in.UnitPrice.Mul(decimal.NewFromInt(int64(in.Quantity)))
		var err error
		total, err = ApplyDiscount(base, in.DiscountAmount, in.DiscountType, in.DiscountReason)
		if err != nil {
			return nil, err
		}
	}

	now := time.Now()
	return &OrderItem{
		ID:                uuid.New(),
		OrderID:           orderID,
		ProductID:         in.ProductID,
		ProductName:       in.ProductName,
		CategoryID:        in.CategoryID,
		IsColored:         in.IsColored,
		Dimensions:        in.Dimensions,
		Quantity:          in.Quantity,
		UnitPrice:         in.UnitPrice.Round(2),
		DiscountAmount:    in.DiscountAmount.Round(2),
		DiscountType:      in.DiscountType,
		DiscountReason:    in.DiscountReason,
		TotalPrice:        total.Round(2),
		ImageURL:          in.ImageURL,
		CustomDescription: in.CustomDescription,
		CreatedAt:         now,
		UpdatedAt:         now,
	}, nil
}

// PainterAssignment links a painter to an order with an agreed painting cost
type PainterAssignment struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	PainterID    uuid.UUID       `gorm:"type:uuid;not null"`
	AssignedDate time.Time       `gorm:"type:date;not null"`
	PaintingCost decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Notes        string          `gorm:"size:1000"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName returns the table name for GORM
func (PainterAssignment) TableName() string {
	return "order_painters"
}

// NewPainterAssignment creates a painter assignment for an order
func NewPainterAssignment(orderID, painterID uuid.UUID, assignedDate time.Time, cost decimal.Decimal, notes string) (*PainterAssignment, error) {
	if painterID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PAINTER", "Painter ID cannot be empty")
	}
	if cost.IsNegative() {
		return nil, shared.NewDomainError("INVALID_COST", "Painting cost cannot be negative")
	}
	now := time.Now()
	return &PainterAssignment{
		ID:           uuid.New(),
		OrderID:      orderID,
		PainterID:    painterID,
		AssignedDate: assignedDate,
		PaintingCost: cost.Round(2),
		Notes:        notes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// Order is the aggregate root for a customer order. It owns its items and,
// at the persistence level, its payments: deleting the order deletes both.
//
// Subtotal and TotalAmount are owned by the pricing methods on this type.
// PaidAmount, Balance and IsFullyPaid are owned exclusively by the payment
// ledger, which updates them through ApplyPaidAmount.
type Order struct {
	shared.BaseEntity
	OrderNumber    string          `gorm:"size:50;uniqueIndex;not null"`
	Source         OrderSource     `gorm:"size:20;not null"`
	Status         OrderStatus     `gorm:"size:20;not null"`
	CustomerID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	OrderDate      time.Time       `gorm:"not null"`
	Subtotal       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	DiscountAmount decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	DiscountType   *DiscountType   `gorm:"size:20"`
	DiscountReason string          `gorm:"size:500"`
	TotalAmount    decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	PaidAmount     decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	Balance        decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	IsFullyPaid    bool            `gorm:"not null;default:false"`
	Notes          string          `gorm:"size:2000"`
	ExternalID     *int64          `gorm:"index"` // storefront order id, idempotency key for imports
	Items          []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (Order) TableName() string {
	return "orders"
}

// NewOrder creates a new empty order. Items are added through AddItem, which
// reprices the order; a discount violation on any item aborts the creation.
func NewOrder(orderNumber string, source OrderSource, customerID uuid.UUID, orderDate time.Time) (*Order, error) {
	if strings.TrimSpace(orderNumber) == "" {
		return nil, shared.NewDomainError("INVALID_ORDER_NUMBER", "Order number cannot be empty")
	}
	if len(orderNumber) > 50 {
		return nil, shared.NewDomainError("INVALID_ORDER_NUMBER", "Order number cannot exceed 50 characters")
	}
	if !source.IsValid() {
		return nil, shared.NewDomainError("INVALID_SOURCE", "Order source must be website, custom or other")
	}
	if customerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "Customer ID cannot be empty")
	}
	if orderDate.IsZero() {
		orderDate = time.Now()
	}

	return &Order{
		BaseEntity:     shared.NewBaseEntity(),
		OrderNumber:    orderNumber,
		Source:         source,
		Status:         OrderStatusPending,
		CustomerID:     customerID,
		OrderDate:      orderDate,
		Subtotal:       decimal.Zero,
		DiscountAmount: decimal.Zero,
		TotalAmount:    decimal.Zero,
		PaidAmount:     decimal.Zero,
		Balance:        decimal.Zero,
		Items:          make([]OrderItem, 0),
	}, nil
}

// AddItem appends a priced item and recomputes the order totals over all
// items, reapplying the order-level discount.
func (o *Order) AddItem(in OrderItemInput) (*OrderItem, error) {
	item, err := NewOrderItem(o.ID, in)
	if err != nil {
		return nil, err
	}
	o.Items = append(o.Items, *item)
	if err := o.Reprice(); err != nil {
		o.Items = o.Items[:len(o.Items)-1]
		return nil, err
	}
	o.UpdatedAt = time.Now()
	return item, nil
}

// RemoveItem deletes an item from the order and recomputes the totals.
// The last item cannot be removed; delete the order instead.
func (o *Order) RemoveItem(itemID uuid.UUID) error {
	idx := -1
	for i := range o.Items {
		if o.Items[i].ID == itemID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return shared.NewDomainError("ITEM_NOT_FOUND", "Order item not found")
	}
	if len(o.Items) == 1 {
		return shared.NewDomainError("LAST_ITEM", "An order must keep at least one item")
	}
	o.Items = append(o.Items[:idx], o.Items[idx+1:]...)
	if err := o.Reprice(); err != nil {
		return err
	}
	o.UpdatedAt = time.Now()
	return nil
}

// SetDiscount replaces the order-level discount and reprices the order
func (o *Order) SetDiscount(amount decimal.Decimal, discountType *DiscountType, reason string) error {
	prevAmount, prevType, prevReason := o.DiscountAmount, o.DiscountType, o.DiscountReason
	o.DiscountAmount = amount.Round(2)
	o.DiscountType = discountType
	o.DiscountReason = reason
	if err := o.Reprice(); err != nil {
		o.DiscountAmount, o.DiscountType, o.DiscountReason = prevAmount, prevType, prevReason
		return err
	}
	o.UpdatedAt = time.Now()
	return nil
}

// Reprice recomputes subtotal and total from the current item set and the
// stored order-level discount, then re-derives balance against the amount
// already paid.
func (o *Order) Reprice() error {
	subtotal := decimal.Zero
	for _, item := range o.Items {
		subtotal = subtotal.Add(item.TotalPrice)
	}

	total, err := ApplyDiscount(subtotal, o.DiscountAmount, o.DiscountType, o.DiscountReason)
	if err != nil {
		return err
	}

	o.Subtotal = subtotal.Round(2)
	o.TotalAmount = total.Round(2)
	o.ApplyPaidAmount(o.PaidAmount)
	return nil
}

// ApplyPaidAmount records the cumulative paid amount and re-derives balance
// and the fully-paid flag. It is unconditional and idempotent; the payment
// ledger is the only caller.
func (o *Order) ApplyPaidAmount(paid decimal.Decimal) {
	o.PaidAmount = paid.Round(2)
	o.Balance = o.TotalAmount.Sub(o.PaidAmount)
	o.IsFullyPaid = o.Balance.LessThanOrEqual(decimal.Zero)
	o.UpdatedAt = time.Now()
}

// UpdateStatus sets the order status
func (o *Order) UpdateStatus(status OrderStatus) error {
	if !status.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", "Unknown order status")
	}
	o.Status = status
	o.UpdatedAt = time.Now()
	return nil
}

// SetNotes sets the free-text order notes
func (o *Order) SetNotes(notes string) {
	o.Notes = notes
	o.UpdatedAt = time.Now()
}

// LinkExternal records the storefront order id this order was imported from
func (o *Order) LinkExternal(externalID int64) {
	o.ExternalID = &externalID
	o.UpdatedAt = time.Now()
}

// SetImportedTotals overrides the computed totals with the ones supplied by
// the storefront. Imported orders trust upstream pricing as-is; only status
// is re-synced on later imports.
func (o *Order) SetImportedTotals(subtotal, total decimal.Decimal) {
	o.Subtotal = subtotal.Round(2)
	o.TotalAmount = total.Round(2)
	o.ApplyPaidAmount(o.PaidAmount)
}
