package domain

import "time"

// AlertStatus is the delivery state of an alert record. Records are marked
// sent as soon as the notified snapshot is captured; delivery itself is the
// notifier's concern.
type AlertStatus string

const AlertStatusSent AlertStatus = "sent"

// AlertLocation carries the coordinates reported with an alert. Fields are
// pointers because a triggering client may have no fix at all.
type AlertLocation struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// AlertRecord is one entry in the append-only alert log.
//
// Notified is a snapshot of all contact phone numbers at trigger time; later
// contact edits must never alter it.
type AlertRecord struct {
	ID          int64         `json:"id"`
	TriggeredAt time.Time     `json:"triggeredAt"`
	Location    AlertLocation `json:"location"`
	DeviceInfo  string        `json:"deviceInfo"`
	Status      AlertStatus   `json:"status"`
	Notified    []string      `json:"notified"`
}
