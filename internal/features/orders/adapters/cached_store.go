package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"parcel-lookup/internal/core/cache"
	"parcel-lookup/internal/core/logger"
	"parcel-lookup/internal/features/orders/domain"
	"parcel-lookup/internal/features/orders/ports"

	"go.uber.org/zap"
)

const orderCacheKeyPrefix = "orders:"

// CachedStore is a read-through cache decorator over a ShipmentStore. Cache
// failures are never surfaced: a miss, a stale encoding or an unreachable
// cache all fall through to the inner store.
type CachedStore struct {
	inner ports.ShipmentStore
	cache cache.Cache
	ttl   time.Duration
}

// NewCachedStore creates a CachedStore with the given TTL.
func NewCachedStore(inner ports.ShipmentStore, c cache.Cache, ttl time.Duration) *CachedStore {
	return &CachedStore{
		inner: inner,
		cache: c,
		ttl:   ttl,
	}
}

// ListByOrderNo serves from the cache when possible, otherwise delegates to
// the inner store and caches the result.
func (s *CachedStore) ListByOrderNo(ctx context.Context, orderNo string) ([]domain.Order, error) {
	key := orderCacheKeyPrefix + orderNo

	if data, err := s.cache.Get(ctx, key); err == nil {
		var records []domain.Order
		if err := json.Unmarshal(data, &records); err == nil {
			return records, nil
		}
		logger.Get().Warn("Discarding undecodable cache entry", zap.String("key", key))
	}

	records, err := s.inner.ListByOrderNo(ctx, orderNo)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch shipments for caching: %w", err)
	}

	if data, err := json.Marshal(records); err == nil {
		if err := s.cache.Set(ctx, key, data, s.ttl); err != nil {
			logger.Get().Warn("Failed to cache shipment records",
				zap.String("key", key),
				zap.Error(err),
			)
		}
	}

	return records, nil
}
