package domain

import (
	"sort"
	"strings"
	"time"

	orderdomain "parcel-lookup/internal/features/orders/domain"
)

// StatusCode is the canonical delivery status derived from a shipment's
// tracking history.
type StatusCode string

const (
	// StatusDelivered indicates the parcel reached the recipient.
	StatusDelivered StatusCode = "delivered"
	// StatusReadyForCollection indicates the parcel awaits pickup.
	StatusReadyForCollection StatusCode = "ready_for_collection"
	// StatusFailedAttempt indicates a delivery attempt failed.
	StatusFailedAttempt StatusCode = "failed_attempt"
	// StatusScheduled indicates a delivery date is set and not yet passed.
	StatusScheduled StatusCode = "scheduled"
	// StatusOutForDelivery indicates the parcel is on its final leg.
	StatusOutForDelivery StatusCode = "out_for_delivery"
	// StatusInTransit indicates the parcel is moving through the network.
	StatusInTransit StatusCode = "in_transit"
	// StatusDelayed indicates the announced delivery date has passed.
	StatusDelayed StatusCode = "delayed"
)

// ComputedStatus pairs a status code with its display label. It is derived
// fresh on every call and never stored.
type ComputedStatus struct {
	Code  StatusCode `json:"code"`
	Label string     `json:"label"`
}

var statusLabels = map[StatusCode]string{
	StatusDelivered:          "Delivered",
	StatusReadyForCollection: "Ready for collection",
	StatusFailedAttempt:      "Action required",
	StatusScheduled:          "Delivery scheduled",
	StatusOutForDelivery:     "Out for Delivery",
	StatusInTransit:          "In transit",
	StatusDelayed:            "Delayed",
}

func newStatus(code StatusCode) ComputedStatus {
	return ComputedStatus{Code: code, Label: statusLabels[code]}
}

// LatestCheckpoint returns the checkpoint with the newest event timestamp, or
// nil for an empty history. The input slice is never reordered.
func LatestCheckpoint(checkpoints []orderdomain.Checkpoint) *orderdomain.Checkpoint {
	if len(checkpoints) == 0 {
		return nil
	}
	sorted := make([]orderdomain.Checkpoint, len(checkpoints))
	copy(sorted, checkpoints)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Instant().After(sorted[j].Instant())
	})
	return &sorted[0]
}

// ComputeStatus derives the canonical status from a shipment's checkpoints and
// delivery metadata. Only the latest checkpoint is consulted; its text is
// matched against an ordered rule table where the first hit wins, ordered by
// severity so a single free-text description always yields one status even
// when several keywords co-occur.
func ComputeStatus(checkpoints []orderdomain.Checkpoint, info *orderdomain.DeliveryInfo, now time.Time) ComputedStatus {
	var announced string
	if info != nil {
		announced = info.AnnouncedDeliveryDate
	}

	latest := LatestCheckpoint(checkpoints)
	if latest == nil {
		if st, ok := statusFromDueDate(announced, now); ok {
			return st
		}
		return newStatus(StatusInTransit)
	}

	text := strings.ToLower(latest.Status + " " + latest.StatusDetails)

	dueDate := announced
	if latest.Meta != nil && latest.Meta.DeliveryDate != "" {
		dueDate = latest.Meta.DeliveryDate
	}

	switch {
	// Delivered is terminal and beats every other signal: a later duplicate or
	// erroneous checkpoint must never regress a delivered parcel.
	case strings.Contains(text, "delivered"):
		return newStatus(StatusDelivered)
	case containsAny(text, "collection", "pickup"):
		return newStatus(StatusReadyForCollection)
	case containsAny(text, "failed", "attempt"):
		return newStatus(StatusFailedAttempt)
	case strings.Contains(text, "delay"):
		return newStatus(StatusDelayed)
	case containsAny(text, "out for delivery", "on the way to you", "on its way to recipient"):
		return newStatus(StatusOutForDelivery)
	case containsAny(text, "schedule", "delivery date set", "estimated delivery"):
		if st, ok := statusFromDueDate(dueDate, now); ok {
			return st
		}
		return newStatus(StatusScheduled)
	}

	if st, ok := statusFromDueDate(dueDate, now); ok {
		return st
	}
	return newStatus(StatusInTransit)
}

// statusFromDueDate classifies against a delivery date: past due means
// delayed, otherwise scheduled. Missing or unparseable dates report ok=false.
func statusFromDueDate(date string, now time.Time) (ComputedStatus, bool) {
	if date == "" {
		return ComputedStatus{}, false
	}
	due := orderdomain.ParseInstant(date)
	if due.IsZero() {
		return ComputedStatus{}, false
	}
	if due.Before(now) {
		return newStatus(StatusDelayed), true
	}
	return newStatus(StatusScheduled), true
}

func containsAny(text string, keywords ...string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
