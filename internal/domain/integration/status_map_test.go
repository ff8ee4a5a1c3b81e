package integration

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/figurine/backend/internal/domain/ordering"
)

func TestMapInboundStatus(t *testing.T) {
	cases := map[StorefrontStatus]ordering.OrderStatus{
		StorefrontStatusPending:    ordering.OrderStatusPending,
		StorefrontStatusOnHold:     ordering.OrderStatusPending,
		StorefrontStatusProcessing: ordering.OrderStatusInProduction,
		StorefrontStatusCompleted:  ordering.OrderStatusDelivered,
		StorefrontStatusCancelled:  ordering.OrderStatusCancelled,
		StorefrontStatusFailed:     ordering.OrderStatusCancelled,
		StorefrontStatusRefunded:   ordering.OrderStatusReturned,
	}
	for storefront, want := range cases {
		assert.Equal(t, want, MapInboundStatus(storefront), "storefront=%s", storefront)
	}

	t.Run("unknown statuses default to pending", func(t *testing.T) {
		assert.Equal(t, ordering.OrderStatusPending, MapInboundStatus("trash"))
		assert.Equal(t, ordering.OrderStatusPending, MapInboundStatus(""))
	})
}

func TestMapOutboundStatus(t *testing.T) {
	t.Run("production stages all map to processing", func(t *testing.T) {
		for _, status := range []ordering.OrderStatus{
			ordering.OrderStatusPrinting,
			ordering.OrderStatusInProduction,
			ordering.OrderStatusPainting,
			ordering.OrderStatusFinalChecks,
		} {
			assert.Equal(t, StorefrontStatusProcessing, MapOutboundStatus(status))
		}
	})

	t.Run("terminal stages", func(t *testing.T) {
		assert.Equal(t, StorefrontStatusCompleted, MapOutboundStatus(ordering.OrderStatusShipped))
		assert.Equal(t, StorefrontStatusCompleted, MapOutboundStatus(ordering.OrderStatusDelivered))
		assert.Equal(t, StorefrontStatusCancelled, MapOutboundStatus(ordering.OrderStatusCancelled))
		assert.Equal(t, StorefrontStatusRefunded, MapOutboundStatus(ordering.OrderStatusReturned))
	})

	t.Run("every internal status has an outbound mapping", func(t *testing.T) {
		for _, status := range ordering.AllOrderStatuses() {
			_, ok := outboundStatus[status]
			assert.True(t, ok, "status %s has no outbound mapping", status)
		}
	})
}

// Pushing a status out and importing it back is not guaranteed to return the
// original internal status. This pins the known collapses so a change to
// either table is caught.
func TestStatusRoundTripIsLossy(t *testing.T) {
	roundTrip := func(s ordering.OrderStatus) ordering.OrderStatus {
		return MapInboundStatus(MapOutboundStatus(s))
	}

	assert.Equal(t, ordering.OrderStatusInProduction, roundTrip(ordering.OrderStatusPainting))
	assert.Equal(t, ordering.OrderStatusInProduction, roundTrip(ordering.OrderStatusPrinting))
	assert.Equal(t, ordering.OrderStatusDelivered, roundTrip(ordering.OrderStatusShipped))

	// These survive the trip.
	for _, status := range []ordering.OrderStatus{
		ordering.OrderStatusPending,
		ordering.OrderStatusCancelled,
		ordering.OrderStatusReturned,
		ordering.OrderStatusDelivered,
	} {
		assert.Equal(t, status, roundTrip(status))
	}
}
