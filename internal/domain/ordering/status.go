package ordering

// OrderSource represents the provenance of an order
type OrderSource string

const (
	OrderSourceWebsite OrderSource = "website"
	OrderSourceCustom  OrderSource = "custom"
	OrderSourceOther   OrderSource = "other"
)

// IsValid checks if the source is a valid OrderSource
func (s OrderSource) IsValid() bool {
	switch s {
	case OrderSourceWebsite, OrderSourceCustom, OrderSourceOther:
		return true
	}
	return false
}

// String returns the string representation of OrderSource
func (s OrderSource) String() string {
	return string(s)
}

// OrderStatus represents the production lifecycle of an order
type OrderStatus string

const (
	OrderStatusPending      OrderStatus = "pending"
	OrderStatusPrinting     OrderStatus = "printing"
	OrderStatusInProduction OrderStatus = "in_production"
	OrderStatusPainting     OrderStatus = "painting"
	OrderStatusFinalChecks  OrderStatus = "final_checks"
	OrderStatusShipped      OrderStatus = "shipped"
	OrderStatusDelivered    OrderStatus = "delivered"
	OrderStatusCancelled    OrderStatus = "cancelled"
	OrderStatusReturned     OrderStatus = "returned"
)

// IsValid checks if the status is a valid OrderStatus
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusPrinting, OrderStatusInProduction,
		OrderStatusPainting, OrderStatusFinalChecks, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled, OrderStatusReturned:
		return true
	}
	return false
}

// String returns the string representation of OrderStatus
func (s OrderStatus) String() string {
	return string(s)
}

// AllOrderStatuses returns every valid status in lifecycle order
func AllOrderStatuses() []OrderStatus {
	return []OrderStatus{
		OrderStatusPending, OrderStatusPrinting, OrderStatusInProduction,
		OrderStatusPainting, OrderStatusFinalChecks, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled, OrderStatusReturned,
	}
}
