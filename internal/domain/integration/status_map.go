package integration

import (
	"github.com/figurine/backend/internal/domain/ordering"
)

// The mapping between internal and storefront statuses is deliberately
// non-bijective. Inbound, several storefront states collapse onto a single
// internal one (on-hold becomes pending, every production stage is just
// processing upstream), so pushing a status out and reading it back is not a
// round trip. Both tables are kept explicit here rather than derived from
// one another.

var inboundStatus = map[StorefrontStatus]ordering.OrderStatus{
	StorefrontStatusPending:    ordering.OrderStatusPending,
	StorefrontStatusOnHold:     ordering.OrderStatusPending,
	StorefrontStatusProcessing: ordering.OrderStatusInProduction,
	StorefrontStatusCompleted:  ordering.OrderStatusDelivered,
	StorefrontStatusCancelled:  ordering.OrderStatusCancelled,
	StorefrontStatusFailed:     ordering.OrderStatusCancelled,
	StorefrontStatusRefunded:   ordering.OrderStatusReturned,
}

var outboundStatus = map[ordering.OrderStatus]StorefrontStatus{
	ordering.OrderStatusPending:      StorefrontStatusPending,
	ordering.OrderStatusPrinting:     StorefrontStatusProcessing,
	ordering.OrderStatusInProduction: StorefrontStatusProcessing,
	ordering.OrderStatusPainting:     StorefrontStatusProcessing,
	ordering.OrderStatusFinalChecks:  StorefrontStatusProcessing,
	ordering.OrderStatusShipped:      StorefrontStatusCompleted,
	ordering.OrderStatusDelivered:    StorefrontStatusCompleted,
	ordering.OrderStatusCancelled:    StorefrontStatusCancelled,
	ordering.OrderStatusReturned:     StorefrontStatusRefunded,
}

// MapInboundStatus translates a storefront status into the internal
// vocabulary. Unknown storefront statuses default to pending.
func MapInboundStatus(status StorefrontStatus) ordering.OrderStatus {
	if mapped, ok := inboundStatus[status]; ok {
		return mapped
	}
	return ordering.OrderStatusPending
}

// MapOutboundStatus translates an internal status into the single canonical
// storefront status used when pushing changes out
func MapOutboundStatus(status ordering.OrderStatus) StorefrontStatus {
	if mapped, ok := outboundStatus[status]; ok {
		return mapped
	}
	return StorefrontStatusProcessing
}
