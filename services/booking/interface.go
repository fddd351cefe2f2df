package booking

import (
	"context"
	"time"

	"rentify/database/repository"
	"rentify/models"
	"rentify/utils"

	"go.uber.org/zap"
)

// BookingService is the booking lifecycle engine: it creates and prices
// drafts, runs the availability check, and commits or cancels bookings
// through their status state machine.
type BookingService interface {
	CreateDraft(user models.UserSnapshot, car models.Car, details models.BookingDetails) (*models.Draft, error)
	CheckAvailability(ctx context.Context, carID string) (bool, error)
	Commit(ctx context.Context, draft models.Draft, paymentID, method string) (*models.Booking, error)
	CancelBooking(ctx context.Context, bookingID string) (*models.Booking, error)
	BookingsFor(ctx context.Context, identity models.Identity) ([]models.Booking, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Repo   repository.Repository
	Logger *zap.Logger

	// Decider and AvailabilityRate drive the per-call availability
	// simulation; AvailabilityDelay is the artificial check latency.
	Decider           utils.Decider
	AvailabilityRate  float64
	AvailabilityDelay time.Duration
}
