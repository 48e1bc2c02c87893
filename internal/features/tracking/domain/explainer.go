package domain

import (
	"fmt"
	"strings"
	"time"

	orderdomain "parcel-lookup/internal/features/orders/domain"
)

// StatusExplanation is the human-readable rendering of a computed status: a
// short next-action directive and a longer explanation sentence.
type StatusExplanation struct {
	NextAction  string `json:"next_action"`
	Explanation string `json:"explanation"`
}

// ExplainStatus builds the explanation strings for an order and its computed
// status. It is pure: identical arguments (including now) always produce
// identical output. Every conditional fragment degrades to valid prose when
// the underlying field is absent.
func ExplainStatus(order orderdomain.Order, status ComputedStatus, now time.Time) StatusExplanation {
	tz := order.DeliveryInfo.Timezone
	if tz == "" {
		tz = "UTC"
	}

	latest := LatestCheckpoint(order.Checkpoints)
	announced := order.DeliveryInfo.AnnouncedDeliveryDate

	// The checkpoint's own delivery date always wins over the announced one.
	deliveryDate := announced
	if latest != nil && latest.Meta != nil && latest.Meta.DeliveryDate != "" {
		deliveryDate = latest.Meta.DeliveryDate
	}

	switch status.Code {
	case StatusDelivered:
		if latest != nil {
			dayLabel := RelativeDayLabel(latest.EventTimestamp, tz, now)
			timeStr := clockTime(latest.EventTimestamp, tz)
			if dayLabel != "" && timeStr != "" {
				return StatusExplanation{
					NextAction:  "No action required",
					Explanation: fmt.Sprintf("Your package was delivered %s at %s.", dayLabel, timeStr),
				}
			}
		}
		return StatusExplanation{
			NextAction:  "No action required",
			Explanation: "Your package has been delivered.",
		}

	case StatusReadyForCollection:
		pickup := "the pickup location"
		dayLabel := "soon"
		if latest != nil {
			if label := RelativeDayLabel(latest.EventTimestamp, tz, now); label != "" {
				dayLabel = label
			}
			if latest.Meta != nil && latest.Meta.PickupAddress != "" {
				pickup = latest.Meta.PickupAddress
			}
		}
		return StatusExplanation{
			NextAction: "Please collect your package",
			Explanation: fmt.Sprintf("Your package is ready for collection %s at %s. Please bring a valid ID.",
				dayLabel, pickup),
		}

	case StatusFailedAttempt:
		courier := "the carrier"
		if order.Courier != "" {
			courier = strings.ToUpper(order.Courier)
		}
		explanation := "A delivery attempt failed"
		if latest != nil {
			if dayLabel := RelativeDayLabel(latest.EventTimestamp, tz, now); dayLabel != "" {
				explanation += " " + dayLabel
			}
		}
		explanation += fmt.Sprintf(". Please contact %s to arrange a new delivery or collection.", courier)
		return StatusExplanation{
			NextAction:  "Action required: Please contact carrier",
			Explanation: explanation,
		}

	case StatusScheduled:
		return explainScheduled(latest, deliveryDate, tz, now)

	case StatusDelayed:
		original := "the expected date"
		if announced != "" {
			original = formatAnnouncedDate(announced)
		}
		newDate := "soon"
		if deliveryDate != "" {
			newDate = labelForDate(deliveryDate, tz, now)
		}
		return StatusExplanation{
			NextAction: "Delivery delayed",
			Explanation: fmt.Sprintf("Your package was expected on %s but has been delayed. New expected delivery: %s.",
				original, newDate),
		}

	case StatusOutForDelivery:
		return explainOutForDelivery(latest, announced, tz, now)

	default: // StatusInTransit
		return explainInTransit(latest, announced, tz, now)
	}
}

func explainScheduled(latest *orderdomain.Checkpoint, deliveryDate, tz string, now time.Time) StatusExplanation {
	if deliveryDate == "" {
		return StatusExplanation{
			NextAction:  "Delivery scheduled",
			Explanation: "Your package has a scheduled delivery date.",
		}
	}

	dayLabel := labelForDate(deliveryDate, tz, now)

	var timeFrame string
	if latest != nil && latest.Meta != nil &&
		latest.Meta.DeliveryTimeFrameFrom != "" && latest.Meta.DeliveryTimeFrameTo != "" {
		timeFrame = fmt.Sprintf(" between %s and %s",
			latest.Meta.DeliveryTimeFrameFrom, latest.Meta.DeliveryTimeFrameTo)
	}

	explanation := fmt.Sprintf("Your package is scheduled for delivery %s%s.", dayLabel, timeFrame)

	if latest != nil && latest.City != "" {
		departed := " It departed from " + latest.City
		if timeStr := clockTime(latest.EventTimestamp, tz); timeStr != "" {
			departed += " at " + timeStr
		}
		if cpLabel := RelativeDayLabel(latest.EventTimestamp, tz, now); cpLabel != "" && cpLabel != "today" {
			departed += " " + cpLabel
		}
		explanation += departed + "."
	}

	return StatusExplanation{
		NextAction:  "Expected delivery " + dayLabel,
		Explanation: explanation,
	}
}

func explainOutForDelivery(latest *orderdomain.Checkpoint, announced, tz string, now time.Time) StatusExplanation {
	var expectedDate string
	if announced != "" {
		expectedDate = labelForDate(announced, tz, now)
	}

	tail := " today."
	nextAction := "Expected delivery today"
	if expectedDate != "" {
		tail = fmt.Sprintf(". Expected delivery %s.", expectedDate)
		nextAction = "Expected delivery " + expectedDate
	}

	if latest == nil {
		return StatusExplanation{
			NextAction:  nextAction,
			Explanation: "Your package is out for delivery" + tail,
		}
	}

	city := latest.City
	timeStr := clockTime(latest.EventTimestamp, tz)
	dayLabel := RelativeDayLabel(latest.EventTimestamp, tz, now)
	details := strings.ToLower(latest.StatusDetails)

	var explanation string
	if containsAny(details, "depot", "facility") {
		explanation = "Your parcel departed " + departureOrigin(city)
		if timeStr != "" {
			explanation += " at " + timeStr
		}
		if dayLabel != "" && dayLabel != "today" {
			explanation += " " + dayLabel
		}
		explanation += " and is out for delivery" + tail
	} else {
		explanation = "Your package is out for delivery"
		if city != "" {
			explanation += " from " + city
		}
		if timeStr != "" {
			explanation += " (departed at " + timeStr + ")"
		}
		explanation += tail
	}

	return StatusExplanation{
		NextAction:  nextAction,
		Explanation: explanation,
	}
}

func explainInTransit(latest *orderdomain.Checkpoint, announced, tz string, now time.Time) StatusExplanation {
	var expectedDate string
	if announced != "" {
		expectedDate = labelForDate(announced, tz, now)
	}

	tail := "."
	nextAction := "In transit"
	if expectedDate != "" {
		tail = fmt.Sprintf(". Expected delivery: %s.", expectedDate)
		nextAction = "Expected delivery " + expectedDate
	}

	if latest == nil {
		return StatusExplanation{
			NextAction:  nextAction,
			Explanation: "Your package is in transit" + tail,
		}
	}

	city := latest.City
	timeStr := clockTime(latest.EventTimestamp, tz)
	dayLabel := RelativeDayLabel(latest.EventTimestamp, tz, now)
	details := strings.ToLower(latest.StatusDetails)

	var explanation string
	switch {
	case containsAny(details, "depot", "facility", "sorting center"):
		explanation = "Your parcel departed " + departureOrigin(city)
		if timeStr != "" {
			explanation += " at " + timeStr
		}
		if dayLabel != "" && dayLabel != "today" {
			explanation += " " + dayLabel
		}
		if expectedDate != "" {
			explanation += " and is expected " + expectedDate
		}
		explanation += "."
	case containsAny(details, "arrived", "arrival"):
		explanation = "Your package arrived"
		if city != "" {
			explanation += " in " + city
		}
		if timeStr != "" {
			explanation += " at " + timeStr
		}
		if dayLabel != "" && dayLabel != "today" {
			explanation += " " + dayLabel
		}
		explanation += tail
	default:
		explanation = "Your package is in transit"
		if city != "" {
			explanation += " from " + city
		}
		if timeStr != "" {
			explanation += " (last update: " + timeStr + ")"
		}
		explanation += tail
	}

	return StatusExplanation{
		NextAction:  nextAction,
		Explanation: explanation,
	}
}

func departureOrigin(city string) string {
	if city == "" {
		return "the local depot"
	}
	return "from " + city
}
