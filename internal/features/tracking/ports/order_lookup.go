package ports

import (
	"context"

	orderdomain "parcel-lookup/internal/features/orders/domain"
)

// OrderLookup is the boundary to the orders feature: a ZIP-gated lookup of
// all shipment records behind an order number.
type OrderLookup interface {
	// Lookup returns the records for orderNo, gated and sanitized according
	// to the optional zip.
	Lookup(ctx context.Context, orderNo, zip string) ([]orderdomain.Order, error)
}
