package ports

import (
	"context"

	"parcel-lookup/internal/features/orders/domain"
)

// ShipmentStore defines the fetch boundary for shipment records.
// This is a Secondary Port (Driven Port).
type ShipmentStore interface {
	// ListByOrderNo returns every shipment record whose delivery info carries
	// the given order number. An unknown order number yields an empty list,
	// not an error.
	ListByOrderNo(ctx context.Context, orderNo string) ([]domain.Order, error)
}
