package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"parcel-lookup/internal/features/orders/domain"
	"parcel-lookup/internal/features/orders/ports"
)

// ErrOrderNotFound is returned when no record matches the order number.
var ErrOrderNotFound = errors.New("order not found")

// ErrZipMismatch is returned when a ZIP is supplied but matches no record for
// that order number.
var ErrZipMismatch = errors.New("zip does not match order record")

// LookupService handles the business logic for retrieving shipment records:
// ZIP-gated access to the full record, sanitized access without one.
type LookupService struct {
	// store is the fetch boundary for shipment records.
	store ports.ShipmentStore
}

// NewLookupService creates a new instance of LookupService.
func NewLookupService(store ports.ShipmentStore) *LookupService {
	return &LookupService{
		store: store,
	}
}

// Lookup retrieves all records for an order number. When zip is non-empty it
// must match a record's zip code, and the matching records are returned in
// full; otherwise every record is returned with recipient details and package
// contents stripped. Results are sorted by record ID.
func (s *LookupService) Lookup(ctx context.Context, orderNo, zip string) ([]domain.Order, error) {
	records, err := s.store.ListByOrderNo(ctx, orderNo)
	if err != nil {
		return nil, fmt.Errorf("failed to list shipments: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrOrderNotFound
	}

	zip = strings.TrimSpace(zip)
	if zip != "" {
		matches := make([]domain.Order, 0, len(records))
		for _, record := range records {
			if record.ZipCode == zip {
				matches = append(matches, record)
			}
		}
		if len(matches) == 0 {
			return nil, ErrZipMismatch
		}
		domain.SortByID(matches)
		return matches, nil
	}

	sanitized := make([]domain.Order, 0, len(records))
	for _, record := range records {
		sanitized = append(sanitized, record.Sanitized())
	}
	domain.SortByID(sanitized)
	return sanitized, nil
}
