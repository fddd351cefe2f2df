package dashboard

import (
	"context"
	"fmt"

	"rentify/database/repository"
	"rentify/models"

	"go.uber.org/zap"
)

// DashboardService recomputes dashboard views from the current store
// snapshot on every call. Nothing is cached or incrementally maintained:
// a stat is only ever as stale as the last read.
type DashboardService interface {
	AdminStats(ctx context.Context) (*models.AdminStats, error)
	UserStats(ctx context.Context, identity models.Identity) (*models.UserStats, error)
	AgencyStats(ctx context.Context, agencyID string) (*models.AgencyStats, error)
}

// DefaultDashboardService implements DashboardService.
type DefaultDashboardService struct {
	Repo   repository.Repository
	Logger *zap.Logger
}

// AdminStats aggregates the marketplace-wide counters. Revenue counts a
// booking when either its status is confirmed or its payment is approved,
// so an admin override that set only one axis still counts once.
func (s *DefaultDashboardService) AdminStats(ctx context.Context) (*models.AdminStats, error) {
	users, err := s.Repo.GetUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("admin stats: %w", err)
	}
	cars, err := s.Repo.GetCars(ctx)
	if err != nil {
		return nil, fmt.Errorf("admin stats: %w", err)
	}
	bookings, err := s.Repo.GetBookings(ctx)
	if err != nil {
		return nil, fmt.Errorf("admin stats: %w", err)
	}
	pending, err := s.Repo.GetPendingAgencies(ctx)
	if err != nil {
		return nil, fmt.Errorf("admin stats: %w", err)
	}
	notes, err := s.Repo.GetNotifications(ctx)
	if err != nil {
		return nil, fmt.Errorf("admin stats: %w", err)
	}

	stats := &models.AdminStats{
		TotalUsers:       len(users),
		TotalCars:        len(cars),
		TotalBookings:    len(bookings),
		PendingApprovals: len(pending),
	}
	for _, b := range bookings {
		if countsAsRevenue(b) {
			stats.Revenue += b.Total
		}
		if b.Status == models.BookingStatusPendingPayment || b.PaymentStatus == models.PaymentStatusPending {
			stats.PendingPayments++
		}
	}
	for _, n := range notes {
		if !n.Read {
			stats.UnreadNotifications++
		}
	}
	return stats, nil
}

// UserStats builds the renter's view from the bookings whose snapshot
// matches the identity by email or username.
func (s *DefaultDashboardService) UserStats(ctx context.Context, identity models.Identity) (*models.UserStats, error) {
	bookings, err := s.Repo.GetBookings(ctx)
	if err != nil {
		return nil, fmt.Errorf("user stats: %w", err)
	}

	stats := &models.UserStats{Bookings: []models.Booking{}}
	for _, b := range bookings {
		if !snapshotMatches(b.User, identity) {
			continue
		}
		stats.Bookings = append(stats.Bookings, b)
		stats.TotalBookings++
		switch b.Status {
		case models.BookingStatusPendingPayment, models.BookingStatusConfirmed:
			stats.UpcomingBookings++
		case models.BookingStatusCancelled:
			stats.CancelledCount++
		}
		if countsAsRevenue(b) {
			stats.TotalSpent += b.Total
		}
	}
	return stats, nil
}

// AgencyStats builds the agency's view from its catalog entries and the
// bookings taken against them.
func (s *DefaultDashboardService) AgencyStats(ctx context.Context, agencyID string) (*models.AgencyStats, error) {
	cars, err := s.Repo.GetCars(ctx)
	if err != nil {
		return nil, fmt.Errorf("agency stats: %w", err)
	}
	bookings, err := s.Repo.GetBookings(ctx)
	if err != nil {
		return nil, fmt.Errorf("agency stats: %w", err)
	}

	stats := &models.AgencyStats{}
	for _, c := range cars {
		if c.AgencyID != agencyID {
			continue
		}
		stats.TotalCars++
		if c.Approved {
			stats.ApprovedCars++
		} else {
			stats.PendingApproval++
		}
	}
	for _, b := range bookings {
		if b.Car.AgencyID != agencyID {
			continue
		}
		if b.Status == models.BookingStatusConfirmed {
			stats.BookedCars++
		}
		if countsAsRevenue(b) {
			stats.Earnings += b.Total
		}
	}
	s.Logger.Debug("agency stats computed",
		zap.String("agencyId", agencyID), zap.Int("cars", stats.TotalCars))
	return stats, nil
}

func countsAsRevenue(b models.Booking) bool {
	return b.Status == models.BookingStatusConfirmed || b.PaymentStatus == models.PaymentStatusApproved
}

func snapshotMatches(snapshot models.UserSnapshot, identity models.Identity) bool {
	if identity.Email != "" && snapshot.Email == identity.Email {
		return true
	}
	return identity.Username != "" && snapshot.Name == identity.Username
}
