package admin

import (
	"context"
	"fmt"
	"time"

	"rentify/database/repository"
	"rentify/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PendingAgencies lists the applications awaiting a decision.
func (s *DefaultAdminService) PendingAgencies(ctx context.Context) ([]models.AgencyApplication, error) {
	return s.Repo.GetPendingAgencies(ctx)
}

// ApproveAgency moves a pending application into the approved set, merges
// its cars into the public catalog tagged approved, and emits an
// agency_approved notification. Approving an already-approved agency is a
// no-op.
func (s *DefaultAdminService) ApproveAgency(ctx context.Context, agencyID string) error {
	// Removing the application from pending is the atomic claim on the
	// agency: a second concurrent approval of the same id finds nothing left
	// to extract and falls through to the idempotency check.
	var app *models.AgencyApplication
	err := s.Repo.MutatePendingAgencies(ctx, func(pending []models.AgencyApplication) ([]models.AgencyApplication, error) {
		remaining := make([]models.AgencyApplication, 0, len(pending))
		for _, p := range pending {
			if p.ID == agencyID {
				matched := p
				app = &matched
				continue
			}
			remaining = append(remaining, p)
		}
		return remaining, nil
	})
	if err != nil {
		return fmt.Errorf("approve agency: update pending: %w", err)
	}
	if app == nil {
		approved, err := s.Repo.GetAgencies(ctx)
		if err != nil {
			return fmt.Errorf("approve agency: load approved: %w", err)
		}
		for _, a := range approved {
			if a.ID == agencyID {
				return nil
			}
		}
		return ErrAgencyNotFound
	}

	app.Approved = true
	app.ApprovedDate = time.Now()

	err = s.Repo.MutateAgencies(ctx, func(approved []models.AgencyApplication) ([]models.AgencyApplication, error) {
		return append(approved, *app), nil
	})
	if err != nil {
		return fmt.Errorf("approve agency: save approved: %w", err)
	}

	err = s.Repo.MutateCars(ctx, func(cars []models.Car) ([]models.Car, error) {
		for _, car := range app.Cars {
			car.Approved = true
			car.AgencyID = app.ID
			cars = append(cars, car)
		}
		return cars, nil
	})
	if err != nil {
		return fmt.Errorf("approve agency: save cars: %w", err)
	}

	if err := s.appendNotification(ctx, models.Notification{
		ID:        uuid.New().String(),
		Type:      models.NotificationAgencyApproved,
		Message:   fmt.Sprintf("Agency %s has been approved", app.AgencyName),
		Timestamp: time.Now(),
	}); err != nil {
		s.Logger.Error("append agency notification", zap.Error(err))
	}

	s.Logger.Info("agency approved",
		zap.String("id", app.ID), zap.String("name", app.AgencyName), zap.Int("cars", len(app.Cars)))
	return nil
}

// RejectAgency removes the application from the pending set. No trace is
// kept and no notification is emitted; the asymmetry with approval is the
// source behavior. Rejecting an unknown id is a no-op.
func (s *DefaultAdminService) RejectAgency(ctx context.Context, agencyID string) error {
	return s.Repo.MutatePendingAgencies(ctx, func(pending []models.AgencyApplication) ([]models.AgencyApplication, error) {
		remaining := make([]models.AgencyApplication, 0, len(pending))
		for _, p := range pending {
			if p.ID == agencyID {
				continue
			}
			remaining = append(remaining, p)
		}
		return remaining, nil
	})
}

// ApprovePayment is the administrative override: it forces the booking
// into confirmed/approved regardless of whether the payment simulator ever
// ran. Re-applying the transition is a no-op.
func (s *DefaultAdminService) ApprovePayment(ctx context.Context, bookingID string) (*models.Booking, error) {
	return s.overrideBooking(ctx, bookingID, models.BookingStatusConfirmed, models.PaymentStatusApproved)
}

// RejectPayment forces the booking into cancelled/rejected. Idempotent.
func (s *DefaultAdminService) RejectPayment(ctx context.Context, bookingID string) (*models.Booking, error) {
	return s.overrideBooking(ctx, bookingID, models.BookingStatusCancelled, models.PaymentStatusRejected)
}

func (s *DefaultAdminService) overrideBooking(ctx context.Context, bookingID, status, paymentStatus string) (*models.Booking, error) {
	bookings, err := s.Repo.GetBookings(ctx)
	if err != nil {
		return nil, fmt.Errorf("payment override: %w", err)
	}
	for _, b := range bookings {
		if b.ID != bookingID {
			continue
		}
		if b.Status == status && b.PaymentStatus == paymentStatus {
			return &b, nil
		}
		b.Status = status
		b.PaymentStatus = paymentStatus
		updated, err := s.Repo.UpdateBooking(ctx, b)
		if err != nil {
			return nil, fmt.Errorf("payment override: %w", err)
		}
		s.Logger.Info("payment override applied",
			zap.String("bookingId", bookingID), zap.String("status", status))
		return &updated, nil
	}
	return nil, fmt.Errorf("payment override: booking %s: %w", bookingID, repository.ErrBookingNotFound)
}

func (s *DefaultAdminService) appendNotification(ctx context.Context, note models.Notification) error {
	return s.Repo.MutateNotifications(ctx, func(notes []models.Notification) ([]models.Notification, error) {
		return append(notes, note), nil
	})
}
