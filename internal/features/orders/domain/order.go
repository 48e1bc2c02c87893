package domain

import (
	"sort"
	"time"
)

// CheckpointMeta carries optional structured extras attached to a checkpoint
// by the carrier feed.
type CheckpointMeta struct {
	// DeliveryDate is a calendar date (YYYY-MM-DD) announced by this checkpoint.
	DeliveryDate string `json:"delivery_date,omitempty"`
	// DeliveryTimeFrameFrom is the start of the delivery window (HH:MM).
	DeliveryTimeFrameFrom string `json:"delivery_time_frame_from,omitempty"`
	// DeliveryTimeFrameTo is the end of the delivery window (HH:MM).
	DeliveryTimeFrameTo string `json:"delivery_time_frame_to,omitempty"`
	// PickupAddress is where a parcel awaiting collection can be picked up.
	PickupAddress string `json:"pickup_address,omitempty"`
}

// Checkpoint is a single tracking event reported by the carrier.
// Checkpoints are read-only once fetched; code deriving state from them works
// on copies.
type Checkpoint struct {
	// EventTimestamp is the ISO-8601 instant of the event and the
	// authoritative ordering key.
	EventTimestamp string `json:"event_timestamp"`
	// Status is the short carrier-supplied label (free text).
	Status string `json:"status"`
	// StatusDetails is an optional longer free-text description.
	StatusDetails string `json:"status_details,omitempty"`
	// City is the location where the event occurred.
	City string `json:"city,omitempty"`
	// CountryISO3 is the ISO-3166 alpha-3 country of the event.
	CountryISO3 string `json:"country_iso3,omitempty"`
	// Meta holds optional structured extras.
	Meta *CheckpointMeta `json:"meta,omitempty"`
}

// Instant returns the parsed event timestamp. Malformed timestamps yield the
// zero time so that sorting and comparisons never panic.
func (c Checkpoint) Instant() time.Time {
	return ParseInstant(c.EventTimestamp)
}

// ParseInstant parses an ISO-8601 instant, tolerating feeds that omit the
// zone offset or send a bare calendar date. Unparseable input yields the zero
// time.
func ParseInstant(s string) time.Time {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// Article is a single product line inside a shipment.
type Article struct {
	// ArticleNo is the merchant article identifier.
	ArticleNo string `json:"articleNo,omitempty"`
	// ArticleImageURL points to a product image.
	ArticleImageURL string `json:"articleImageUrl,omitempty"`
	// Quantity is the number of units in the shipment.
	Quantity int `json:"quantity,omitempty"`
	// ProductName is the descriptive product name.
	ProductName string `json:"product_name,omitempty"`
	// Price is the unit price.
	Price float64 `json:"price,omitempty"`
}

// DeliveryInfo is the static order metadata shared by all shipments of an
// order number.
type DeliveryInfo struct {
	// OrderNo is the customer-facing order number.
	OrderNo string `json:"orderNo,omitempty"`
	// Timezone is the IANA zone the recipient lives in; empty means UTC.
	Timezone string `json:"timezone,omitempty"`
	// AnnouncedDeliveryDate is the originally announced calendar date (YYYY-MM-DD).
	AnnouncedDeliveryDate string `json:"announced_delivery_date,omitempty"`
	// Recipient is the recipient's name.
	Recipient string `json:"recipient,omitempty"`
	// RecipientNotification is the notification preference of the recipient.
	RecipientNotification string `json:"recipient_notification,omitempty"`
	// Email is the recipient's contact address.
	Email string `json:"email,omitempty"`
	// Street is the delivery street address.
	Street string `json:"street,omitempty"`
	// City is the delivery city.
	City string `json:"city,omitempty"`
	// Region is the delivery state or region.
	Region string `json:"region,omitempty"`
	// Articles lists the package contents.
	Articles []Article `json:"articles,omitempty"`
}

// Order is one shipment with its tracking history. An order number may map to
// several Orders (multi-parcel shipments) sharing the same DeliveryInfo.OrderNo.
type Order struct {
	// ID is the unique record identifier.
	ID string `json:"_id"`
	// TrackingNumber is the carrier tracking identifier for this shipment.
	TrackingNumber string `json:"tracking_number,omitempty"`
	// Courier is the carrier code (e.g. dhl, ups).
	Courier string `json:"courier,omitempty"`
	// ZipCode gates access to recipient details and package contents.
	ZipCode string `json:"zip_code,omitempty"`
	// DestinationCountryISO3 is the destination country.
	DestinationCountryISO3 string `json:"destination_country_iso3,omitempty"`
	// Created is when the record was created.
	Created string `json:"created,omitempty"`
	// Updated is when the record was last touched by the carrier feed.
	Updated string `json:"updated,omitempty"`
	// Checkpoints is the tracking history, in feed order.
	Checkpoints []Checkpoint `json:"checkpoints,omitempty"`
	// DeliveryInfo holds the order metadata.
	DeliveryInfo DeliveryInfo `json:"delivery_info"`
}

// Key identifies a record when merging lists fetched through different paths.
func (o Order) Key() string {
	if o.ID != "" {
		return o.ID
	}
	return o.TrackingNumber
}

// Sanitized returns a copy with recipient details and package contents
// stripped, for lookups not authorized by ZIP code.
func (o Order) Sanitized() Order {
	s := o
	s.DeliveryInfo.Recipient = ""
	s.DeliveryInfo.RecipientNotification = ""
	s.DeliveryInfo.Email = ""
	s.DeliveryInfo.Street = ""
	s.DeliveryInfo.Articles = nil
	return s
}

// SortByID orders records by their identifier so responses are stable.
func SortByID(orders []Order) {
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].ID < orders[j].ID
	})
}

// MergeOrders combines two record lists keyed by Key. Records only present in
// one list are kept as-is; for records present in both, fields from preferred
// win and DeliveryInfo is merged field-wise. The result is sorted by ID.
func MergeOrders(preferred, fetched []Order) []Order {
	merged := make(map[string]Order, len(fetched)+len(preferred))

	for _, o := range fetched {
		key := o.Key()
		if key == "" {
			continue
		}
		merged[key] = o
	}

	for _, o := range preferred {
		key := o.Key()
		if key == "" {
			continue
		}
		existing, ok := merged[key]
		if !ok {
			merged[key] = o
			continue
		}
		merged[key] = overlayOrder(existing, o)
	}

	out := make([]Order, 0, len(merged))
	for _, o := range merged {
		out = append(out, o)
	}
	SortByID(out)
	return out
}

// overlayOrder lays non-zero fields of top over base.
func overlayOrder(base, top Order) Order {
	out := base
	if top.ID != "" {
		out.ID = top.ID
	}
	if top.TrackingNumber != "" {
		out.TrackingNumber = top.TrackingNumber
	}
	if top.Courier != "" {
		out.Courier = top.Courier
	}
	if top.ZipCode != "" {
		out.ZipCode = top.ZipCode
	}
	if top.DestinationCountryISO3 != "" {
		out.DestinationCountryISO3 = top.DestinationCountryISO3
	}
	if top.Created != "" {
		out.Created = top.Created
	}
	if top.Updated != "" {
		out.Updated = top.Updated
	}
	if len(top.Checkpoints) > 0 {
		out.Checkpoints = top.Checkpoints
	}
	out.DeliveryInfo = overlayDeliveryInfo(base.DeliveryInfo, top.DeliveryInfo)
	return out
}

func overlayDeliveryInfo(base, top DeliveryInfo) DeliveryInfo {
	out := base
	if top.OrderNo != "" {
		out.OrderNo = top.OrderNo
	}
	if top.Timezone != "" {
		out.Timezone = top.Timezone
	}
	if top.AnnouncedDeliveryDate != "" {
		out.AnnouncedDeliveryDate = top.AnnouncedDeliveryDate
	}
	if top.Recipient != "" {
		out.Recipient = top.Recipient
	}
	if top.RecipientNotification != "" {
		out.RecipientNotification = top.RecipientNotification
	}
	if top.Email != "" {
		out.Email = top.Email
	}
	if top.Street != "" {
		out.Street = top.Street
	}
	if top.City != "" {
		out.City = top.City
	}
	if top.Region != "" {
		out.Region = top.Region
	}
	if len(top.Articles) > 0 {
		out.Articles = top.Articles
	}
	return out
}
