package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"parcel-lookup/internal/core/logger"
	"parcel-lookup/internal/features/orders/domain"

	"go.uber.org/zap"
)

// FileStore implements the ShipmentStore interface over the bundled JSON
// shipment dataset. The dataset is loaded once at startup and indexed by
// order number; records are handed out as copies so callers can never mutate
// the loaded data.
type FileStore struct {
	byOrderNo map[string][]domain.Order
}

// NewFileStore loads and indexes the shipment dataset at path.
// Entries sharing a record key within one order number are merged, later
// entries winning, so a dataset exported with partial updates collapses to
// one record per shipment.
func NewFileStore(path string) (*FileStore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read shipments file: %w", err)
	}

	var records []domain.Order
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse shipments file %s: %w", path, err)
	}

	byOrderNo := make(map[string][]domain.Order)
	for _, record := range records {
		orderNo := strings.TrimSpace(record.DeliveryInfo.OrderNo)
		if orderNo == "" {
			logger.Get().Warn("Skipping shipment without order number",
				zap.String("record_id", record.ID),
			)
			continue
		}
		byOrderNo[orderNo] = domain.MergeOrders([]domain.Order{record}, byOrderNo[orderNo])
	}

	logger.Get().Info("Shipment dataset loaded",
		zap.String("path", path),
		zap.Int("records", len(records)),
		zap.Int("order_numbers", len(byOrderNo)),
	)

	return &FileStore{byOrderNo: byOrderNo}, nil
}

// ListByOrderNo returns copies of the records for an order number.
func (s *FileStore) ListByOrderNo(_ context.Context, orderNo string) ([]domain.Order, error) {
	records, ok := s.byOrderNo[orderNo]
	if !ok {
		return nil, nil
	}
	out := make([]domain.Order, len(records))
	copy(out, records)
	return out, nil
}
