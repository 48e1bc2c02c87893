package service

import (
	"context"
	"fmt"
	"time"

	"parcel-lookup/internal/features/tracking/domain"
	"parcel-lookup/internal/features/tracking/ports"
)

// TrackingService derives delivery summaries for every shipment behind an
// order number. It owns no state: each call fetches the records and runs the
// pure status pipeline against the caller's clock.
type TrackingService struct {
	lookup ports.OrderLookup
}

// NewTrackingService creates a new TrackingService.
func NewTrackingService(lookup ports.OrderLookup) *TrackingService {
	return &TrackingService{
		lookup: lookup,
	}
}

// Summarize returns one summary per shipment record, ordered as the lookup
// returns them (by record ID). The now instant is threaded through so callers
// and tests control the clock.
func (s *TrackingService) Summarize(ctx context.Context, orderNo, zip string, now time.Time) ([]domain.ShipmentSummary, error) {
	orders, err := s.lookup.Lookup(ctx, orderNo, zip)
	if err != nil {
		return nil, fmt.Errorf("failed to look up order %s: %w", orderNo, err)
	}

	summaries := make([]domain.ShipmentSummary, 0, len(orders))
	for _, order := range orders {
		summaries = append(summaries, domain.SummarizeOrder(order, now))
	}

	return summaries, nil
}
