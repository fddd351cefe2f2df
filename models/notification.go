package models

import "time"

// Notification types.
const (
	NotificationNewBooking     = "new_booking"
	NotificationAgencyApproved = "agency_approved"
)

// Notification is an append-only admin feed entry. The only permitted
// mutation is flipping Read, one way.
type Notification struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Read      bool      `json:"read"`
	BookingID string    `json:"bookingId,omitempty"`
}
