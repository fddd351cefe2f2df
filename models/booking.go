package models

import "time"

// Booking status values.
const (
	BookingStatusPendingPayment = "pending_payment"
	BookingStatusConfirmed      = "confirmed"
	BookingStatusCancelled      = "cancelled"
)

// Payment status values. This axis is independent of Status, but the two
// are tied by the invariant: Status == confirmed iff PaymentStatus == approved.
const (
	PaymentStatusPending  = "pending"
	PaymentStatusApproved = "approved"
	PaymentStatusRejected = "rejected"
)

// Driver and delivery options.
const (
	DriverOptionWith    = "with"
	DriverOptionWithout = "without"

	DeliveryOptionPickup   = "pickup"
	DeliveryOptionDelivery = "delivery"
)

// UserSnapshot is a change-safe copy of the renter's details taken at
// booking time, not a live reference.
type UserSnapshot struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	AltPhone string `json:"altPhone,omitempty"`
	Address  string `json:"address"`
}

// BookingDetails carries the rental parameters chosen on the booking form.
type BookingDetails struct {
	Duration       int    `json:"duration"` // days, >= 1
	PickupDate     string `json:"pickupDate"`
	DriverOption   string `json:"driverOption"`
	LicenseNumber  string `json:"licenseNumber,omitempty"`
	LicenseExpiry  string `json:"licenseExpiry,omitempty"`
	DeliveryOption string `json:"deliveryOption"`
	Destination    string `json:"destination"`
	TermsAccepted  bool   `json:"termsAccepted"`
}

// Booking is the central entity. Created once by the lifecycle engine,
// mutated only by settlement and the admin override path.
type Booking struct {
	ID            string         `json:"id"`
	User          UserSnapshot   `json:"user"`
	Car           Car            `json:"car"` // snapshot at booking time
	Details       BookingDetails `json:"bookingDetails"`
	Total         float64        `json:"total"`
	Status        string         `json:"status"`
	PaymentStatus string         `json:"paymentStatus"`
	PaymentMethod string         `json:"paymentMethod,omitempty"`
	Date          time.Time      `json:"date"` // creation timestamp, immutable
	PaymentID     string         `json:"paymentId,omitempty"`
	Version       int            `json:"version"` // bumped on every update
}

// Draft is an unpersisted, fully validated booking awaiting settlement.
type Draft struct {
	User    UserSnapshot   `json:"user"`
	Car     Car            `json:"car"`
	Details BookingDetails `json:"bookingDetails"`
	Total   float64        `json:"total"`
}
