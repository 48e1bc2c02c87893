package domain

import (
	"encoding/json"
	"testing"
	"time"

	orderdomain "parcel-lookup/internal/features/orders/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSummarizeOrder verifies that the summary carries the derived status,
// explanation and the newest checkpoint.
func TestSummarizeOrder(t *testing.T) {
	now := time.Date(2023, 1, 8, 12, 0, 0, 0, time.UTC)
	order := orderdomain.Order{
		ID:             "63b6f0a1",
		TrackingNumber: "AB20221219",
		Courier:        "dhl",
		Updated:        "2023-01-08T10:00:00Z",
		Checkpoints: []orderdomain.Checkpoint{
			cp("2023-01-08T08:12:00Z", "Out for delivery", ""),
			cp("2023-01-08T10:00:00Z", "Delivered", "Package delivered to recipient"),
		},
	}

	summary := SummarizeOrder(order, now)

	assert.Equal(t, "63b6f0a1", summary.ID)
	assert.Equal(t, "AB20221219", summary.TrackingNumber)
	assert.Equal(t, "dhl", summary.Courier)
	assert.Equal(t, StatusDelivered, summary.Status.Code)
	assert.Equal(t, "No action required", summary.NextAction)
	assert.Equal(t, "Your package was delivered today at 10:00.", summary.Explanation)
	assert.Equal(t, "2023-01-08T10:00:00Z", summary.Updated)

	require.NotNil(t, summary.LatestCheckpoint)
	assert.Equal(t, "Delivered", summary.LatestCheckpoint.Status)
}

func TestSummarizeOrder_EmptyHistory(t *testing.T) {
	now := time.Date(2023, 1, 8, 12, 0, 0, 0, time.UTC)

	summary := SummarizeOrder(orderdomain.Order{ID: "abc"}, now)

	assert.Equal(t, StatusInTransit, summary.Status.Code)
	assert.Nil(t, summary.LatestCheckpoint)
}

// TestShipmentSummary_MarshalJSON verifies the wire field names.
func TestShipmentSummary_MarshalJSON(t *testing.T) {
	now := time.Date(2023, 1, 8, 12, 0, 0, 0, time.UTC)
	order := orderdomain.Order{
		ID:             "63b6f0a1",
		TrackingNumber: "AB20221219",
		Checkpoints: []orderdomain.Checkpoint{
			cp("2023-01-08T10:00:00Z", "Delivered", ""),
		},
	}

	data, err := json.Marshal(SummarizeOrder(order, now))
	require.NoError(t, err)

	jsonString := string(data)
	assert.Contains(t, jsonString, `"_id":"63b6f0a1"`)
	assert.Contains(t, jsonString, `"tracking_number":"AB20221219"`)
	assert.Contains(t, jsonString, `"status":{"code":"delivered","label":"Delivered"}`)
	assert.Contains(t, jsonString, `"next_action":"No action required"`)
	assert.Contains(t, jsonString, `"latest_checkpoint":{`)
}
