package booking

import (
	"context"
	"fmt"
	"time"

	"rentify/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateDraft validates the form and prices the rental. The draft is not
// persisted; it only becomes a booking record after settlement succeeds.
func (s *DefaultBookingService) CreateDraft(user models.UserSnapshot, car models.Car, details models.BookingDetails) (*models.Draft, error) {
	if details.Duration == 0 {
		details.Duration = 1
	}
	if details.DriverOption == "" {
		details.DriverOption = models.DriverOptionWithout
	}
	if details.DeliveryOption == "" {
		details.DeliveryOption = models.DeliveryOptionPickup
	}

	if errs := validateDraft(user, details); len(errs) > 0 {
		return nil, errs
	}

	return &models.Draft{
		User:    user,
		Car:     car,
		Details: details,
		Total:   ComputeTotal(car.Price, details),
	}, nil
}

// CheckAvailability simulates a per-car, per-date availability decision.
// Every call is an independent draw: a car reported unavailable is not
// thereby marked unavailable in the catalog, and the result is never
// cached. The delay is not cancellable once started.
func (s *DefaultBookingService) CheckAvailability(_ context.Context, carID string) (bool, error) {
	time.Sleep(s.AvailabilityDelay)
	available := s.Decider.Decide(s.AvailabilityRate)
	s.Logger.Debug("availability check",
		zap.String("carId", carID), zap.Bool("available", available))
	return available, nil
}

// Commit turns a settled draft into a confirmed booking record and emits
// the new_booking notification. A failed settlement never reaches here: the
// draft is discarded by the caller and no booking record exists for it.
func (s *DefaultBookingService) Commit(ctx context.Context, draft models.Draft, paymentID, method string) (*models.Booking, error) {
	record := models.Booking{
		ID:            uuid.New().String(),
		User:          draft.User,
		Car:           draft.Car,
		Details:       draft.Details,
		Total:         draft.Total,
		Status:        models.BookingStatusConfirmed,
		PaymentStatus: models.PaymentStatusApproved,
		PaymentMethod: method,
		Date:          time.Now(),
		PaymentID:     paymentID,
	}

	if err := s.Repo.AppendBooking(ctx, record); err != nil {
		return nil, fmt.Errorf("commit booking: %w", err)
	}

	if err := s.appendNotification(ctx, models.Notification{
		ID:        uuid.New().String(),
		Type:      models.NotificationNewBooking,
		Message:   fmt.Sprintf("New booking from %s for %s", record.User.Name, record.Car.Name),
		Timestamp: time.Now(),
		BookingID: record.ID,
	}); err != nil {
		// The booking is committed; a failed notification write must not
		// unwind it.
		s.Logger.Error("append booking notification", zap.Error(err))
	}

	s.Logger.Info("booking confirmed",
		zap.String("id", record.ID), zap.String("paymentId", paymentID), zap.Float64("total", record.Total))
	return &record, nil
}

func (s *DefaultBookingService) appendNotification(ctx context.Context, note models.Notification) error {
	return s.Repo.MutateNotifications(ctx, func(notes []models.Notification) ([]models.Notification, error) {
		return append(notes, note), nil
	})
}

// CancelBooking transitions a booking to cancelled. The record is kept: the
// hard removal the user dashboard used to do loses the audit trail and is
// treated as a bug here. Re-cancelling is a no-op.
func (s *DefaultBookingService) CancelBooking(ctx context.Context, bookingID string) (*models.Booking, error) {
	bookings, err := s.Repo.GetBookings(ctx)
	if err != nil {
		return nil, fmt.Errorf("cancel booking: %w", err)
	}
	for _, b := range bookings {
		if b.ID != bookingID {
			continue
		}
		if b.Status == models.BookingStatusCancelled {
			return &b, nil
		}
		b.Status = models.BookingStatusCancelled
		if b.PaymentStatus == models.PaymentStatusApproved {
			b.PaymentStatus = models.PaymentStatusRejected
		}
		updated, err := s.Repo.UpdateBooking(ctx, b)
		if err != nil {
			return nil, fmt.Errorf("cancel booking: %w", err)
		}
		s.Logger.Info("booking cancelled", zap.String("id", bookingID))
		return &updated, nil
	}
	return nil, ErrBookingNotFound
}

// BookingsFor returns the bookings whose stored user snapshot matches the
// given identity by username or email. Either match is accepted, which can
// over- or under-match if identities collide.
func (s *DefaultBookingService) BookingsFor(ctx context.Context, identity models.Identity) ([]models.Booking, error) {
	bookings, err := s.Repo.GetBookings(ctx)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	var matched []models.Booking
	for _, b := range bookings {
		if snapshotMatches(b.User, identity) {
			matched = append(matched, b)
		}
	}
	return matched, nil
}

func snapshotMatches(snapshot models.UserSnapshot, identity models.Identity) bool {
	if identity.Email != "" && snapshot.Email == identity.Email {
		return true
	}
	return identity.Username != "" && snapshot.Name == identity.Username
}
