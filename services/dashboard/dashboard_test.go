package dashboard

import (
	"context"
	"testing"

	"rentify/database/repository"
	"rentify/database/store"
	"rentify/models"

	"go.uber.org/zap"
)

func newTestService() (*DefaultDashboardService, *repository.KVRepository) {
	repo := repository.NewKVRepository(store.NewMemoryStore())
	return &DefaultDashboardService{Repo: repo, Logger: zap.NewNop()}, repo
}

func TestAdminStatsRevenueCountsConfirmedOrApproved(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	bookings := []models.Booking{
		{ID: "b1", Total: 100, Status: models.BookingStatusConfirmed, PaymentStatus: models.PaymentStatusApproved},
		{ID: "b2", Total: 200, Status: models.BookingStatusPendingPayment, PaymentStatus: models.PaymentStatusPending},
		{ID: "b3", Total: 50, Status: models.BookingStatusCancelled, PaymentStatus: models.PaymentStatusApproved},
	}
	if err := repo.SaveBookings(ctx, bookings); err != nil {
		t.Fatal(err)
	}

	stats, err := svc.AdminStats(ctx)
	if err != nil {
		t.Fatalf("AdminStats: %v", err)
	}
	// b1 confirmed, b3 approved despite cancelled status: both count once.
	if stats.Revenue != 150 {
		t.Errorf("Revenue = %v, want 150", stats.Revenue)
	}
	if stats.TotalBookings != 3 {
		t.Errorf("TotalBookings = %d, want 3", stats.TotalBookings)
	}
	if stats.PendingPayments != 1 {
		t.Errorf("PendingPayments = %d, want 1", stats.PendingPayments)
	}
}

func TestAdminStatsCounters(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	if err := repo.SaveUsers(ctx, []models.User{{Username: "a"}, {Username: "b"}}); err != nil {
		t.Fatal(err)
	}
	if err := repo.SaveCars(ctx, []models.Car{{ID: "c1"}}); err != nil {
		t.Fatal(err)
	}
	if err := repo.SavePendingAgencies(ctx, []models.AgencyApplication{{ID: "ag1"}}); err != nil {
		t.Fatal(err)
	}
	if err := repo.SaveNotifications(ctx, []models.Notification{
		{ID: "n1"}, {ID: "n2", Read: true},
	}); err != nil {
		t.Fatal(err)
	}

	stats, err := svc.AdminStats(ctx)
	if err != nil {
		t.Fatalf("AdminStats: %v", err)
	}
	if stats.TotalUsers != 2 || stats.TotalCars != 1 || stats.PendingApprovals != 1 {
		t.Errorf("counters = %+v", stats)
	}
	if stats.UnreadNotifications != 1 {
		t.Errorf("UnreadNotifications = %d, want 1", stats.UnreadNotifications)
	}
}

func TestUserStats(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	me := models.UserSnapshot{Name: "asha", Email: "asha@example.com"}
	other := models.UserSnapshot{Name: "bala", Email: "bala@example.com"}
	bookings := []models.Booking{
		{ID: "b1", User: me, Total: 100, Status: models.BookingStatusConfirmed, PaymentStatus: models.PaymentStatusApproved},
		{ID: "b2", User: me, Total: 200, Status: models.BookingStatusPendingPayment, PaymentStatus: models.PaymentStatusPending},
		{ID: "b3", User: me, Total: 50, Status: models.BookingStatusCancelled, PaymentStatus: models.PaymentStatusRejected},
		{ID: "b4", User: other, Total: 999, Status: models.BookingStatusConfirmed, PaymentStatus: models.PaymentStatusApproved},
	}
	if err := repo.SaveBookings(ctx, bookings); err != nil {
		t.Fatal(err)
	}

	stats, err := svc.UserStats(ctx, models.Identity{Email: "asha@example.com"})
	if err != nil {
		t.Fatalf("UserStats: %v", err)
	}
	if stats.TotalBookings != 3 {
		t.Errorf("TotalBookings = %d, want 3", stats.TotalBookings)
	}
	if stats.UpcomingBookings != 2 {
		t.Errorf("UpcomingBookings = %d, want 2", stats.UpcomingBookings)
	}
	if stats.CancelledCount != 1 {
		t.Errorf("CancelledCount = %d, want 1", stats.CancelledCount)
	}
	if stats.TotalSpent != 100 {
		t.Errorf("TotalSpent = %v, want 100", stats.TotalSpent)
	}

	// Username match works when the email differs.
	stats, err = svc.UserStats(ctx, models.Identity{Username: "bala"})
	if err != nil || stats.TotalBookings != 1 {
		t.Errorf("username match: %d (%v), want 1", stats.TotalBookings, err)
	}
}

func TestAgencyStats(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	cars := []models.Car{
		{ID: "c1", AgencyID: "ag1", Approved: true, Price: 1000},
		{ID: "c2", AgencyID: "ag1", Approved: false, Price: 2000},
		{ID: "c3", AgencyID: "ag2", Approved: true, Price: 3000},
	}
	if err := repo.SaveCars(ctx, cars); err != nil {
		t.Fatal(err)
	}
	bookings := []models.Booking{
		{ID: "b1", Car: cars[0], Total: 1000, Status: models.BookingStatusConfirmed, PaymentStatus: models.PaymentStatusApproved},
		{ID: "b2", Car: cars[2], Total: 3000, Status: models.BookingStatusConfirmed, PaymentStatus: models.PaymentStatusApproved},
		{ID: "b3", Car: cars[0], Total: 1000, Status: models.BookingStatusCancelled, PaymentStatus: models.PaymentStatusRejected},
	}
	if err := repo.SaveBookings(ctx, bookings); err != nil {
		t.Fatal(err)
	}

	stats, err := svc.AgencyStats(ctx, "ag1")
	if err != nil {
		t.Fatalf("AgencyStats: %v", err)
	}
	if stats.TotalCars != 2 || stats.ApprovedCars != 1 || stats.PendingApproval != 1 {
		t.Errorf("car counters = %+v", stats)
	}
	if stats.BookedCars != 1 {
		t.Errorf("BookedCars = %d, want 1", stats.BookedCars)
	}
	if stats.Earnings != 1000 {
		t.Errorf("Earnings = %v, want 1000", stats.Earnings)
	}
}
