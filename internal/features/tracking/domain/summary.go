package domain

import (
	"time"

	orderdomain "parcel-lookup/internal/features/orders/domain"
)

// ShipmentSummary is the per-shipment view served to the presentation layer:
// the derived status with its explanation, plus enough identity to render a
// card per tracking number.
type ShipmentSummary struct {
	// ID is the shipment record identifier.
	ID string `json:"_id"`
	// TrackingNumber identifies the shipment at the carrier.
	TrackingNumber string `json:"tracking_number,omitempty"`
	// Courier is the carrier code.
	Courier string `json:"courier,omitempty"`
	// Status is the derived canonical status.
	Status ComputedStatus `json:"status"`
	// NextAction is the short directive for the recipient.
	NextAction string `json:"next_action"`
	// Explanation is the longer status sentence.
	Explanation string `json:"explanation"`
	// LatestCheckpoint is the newest tracking event, if any.
	LatestCheckpoint *orderdomain.Checkpoint `json:"latest_checkpoint,omitempty"`
	// Updated mirrors the record's last feed update.
	Updated string `json:"updated,omitempty"`
}

// SummarizeOrder derives the full summary for one shipment at the given
// instant. Status and explanation are recomputed on every call, never cached.
func SummarizeOrder(order orderdomain.Order, now time.Time) ShipmentSummary {
	status := ComputeStatus(order.Checkpoints, &order.DeliveryInfo, now)
	explanation := ExplainStatus(order, status, now)

	return ShipmentSummary{
		ID:               order.ID,
		TrackingNumber:   order.TrackingNumber,
		Courier:          order.Courier,
		Status:           status,
		NextAction:       explanation.NextAction,
		Explanation:      explanation.Explanation,
		LatestCheckpoint: LatestCheckpoint(order.Checkpoints),
		Updated:          order.Updated,
	}
}
