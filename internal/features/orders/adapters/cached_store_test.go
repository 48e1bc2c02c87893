package adapters

import (
	"context"
	"errors"
	"testing"
	"time"

	"parcel-lookup/internal/core/cache"
	"parcel-lookup/internal/features/orders/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingStore counts how often the inner store is hit.
type countingStore struct {
	records     []domain.Order
	returnError error
	calls       int
}

func (c *countingStore) ListByOrderNo(_ context.Context, _ string) ([]domain.Order, error) {
	c.calls++
	if c.returnError != nil {
		return nil, c.returnError
	}
	return c.records, nil
}

func newTestCache(t *testing.T) (*miniredis.Miniredis, cache.Cache) {
	t.Helper()
	mr := miniredis.RunT(t)

	adapter, err := cache.NewRedisAdapter("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { adapter.Close() })

	return mr, adapter
}

// TestCachedStore_ReadThrough verifies that the second lookup is served from
// the cache without touching the inner store.
func TestCachedStore_ReadThrough(t *testing.T) {
	_, c := newTestCache(t)
	inner := &countingStore{records: []domain.Order{{ID: "a", Courier: "dhl"}}}
	store := NewCachedStore(inner, c, time.Minute)

	ctx := context.Background()

	first, err := store.ListByOrderNo(ctx, "0000RTAB1")
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Equal(t, 1, inner.calls)

	second, err := store.ListByOrderNo(ctx, "0000RTAB1")
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, inner.calls)
}

// TestCachedStore_TTLExpiry verifies that an expired entry falls through to
// the inner store again.
func TestCachedStore_TTLExpiry(t *testing.T) {
	mr, c := newTestCache(t)
	inner := &countingStore{records: []domain.Order{{ID: "a"}}}
	store := NewCachedStore(inner, c, time.Second)

	ctx := context.Background()

	_, err := store.ListByOrderNo(ctx, "0000RTAB1")
	require.NoError(t, err)
	require.Equal(t, 1, inner.calls)

	mr.FastForward(2 * time.Second)

	_, err = store.ListByOrderNo(ctx, "0000RTAB1")
	require.NoError(t, err)
	assert.Equal(t, 2, inner.calls)
}

// TestCachedStore_UndecodableEntry verifies that a corrupt cache entry is
// discarded in favor of the inner store.
func TestCachedStore_UndecodableEntry(t *testing.T) {
	mr, c := newTestCache(t)
	inner := &countingStore{records: []domain.Order{{ID: "a"}}}
	store := NewCachedStore(inner, c, time.Minute)

	require.NoError(t, mr.Set("orders:0000RTAB1", "{corrupt"))

	records, err := store.ListByOrderNo(context.Background(), "0000RTAB1")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 1, inner.calls)
}

// TestCachedStore_InnerError verifies that inner store failures surface and
// nothing gets cached.
func TestCachedStore_InnerError(t *testing.T) {
	_, c := newTestCache(t)
	storeErr := errors.New("dataset unavailable")
	inner := &countingStore{returnError: storeErr}
	store := NewCachedStore(inner, c, time.Minute)

	_, err := store.ListByOrderNo(context.Background(), "0000RTAB1")
	assert.ErrorIs(t, err, storeErr)

	_, err = c.Get(context.Background(), "orders:0000RTAB1")
	assert.Error(t, err)
}

// TestCachedStore_CacheDown verifies that an unreachable cache degrades to
// the inner store instead of failing lookups.
func TestCachedStore_CacheDown(t *testing.T) {
	mr, c := newTestCache(t)
	mr.Close()

	inner := &countingStore{records: []domain.Order{{ID: "a"}}}
	store := NewCachedStore(inner, c, time.Minute)

	records, err := store.ListByOrderNo(context.Background(), "0000RTAB1")
	require.NoError(t, err)
	assert.Len(t, records, 1)
	assert.Equal(t, 1, inner.calls)
}
