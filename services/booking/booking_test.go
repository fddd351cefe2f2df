package booking

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"rentify/database/repository"
	"rentify/database/store"
	"rentify/models"
	"rentify/utils"

	"go.uber.org/zap"
)

func newTestService(decider utils.Decider) (*DefaultBookingService, *repository.KVRepository) {
	repo := repository.NewKVRepository(store.NewMemoryStore())
	svc := &DefaultBookingService{
		Repo:             repo,
		Logger:           zap.NewNop(),
		Decider:          decider,
		AvailabilityRate: 0.8,
	}
	return svc, repo
}

func validSnapshot() models.UserSnapshot {
	return models.UserSnapshot{
		Name:    "asha",
		Email:   "asha@example.com",
		Phone:   "9876543210",
		Address: "12 Hill Road",
	}
}

func validDetails() models.BookingDetails {
	return models.BookingDetails{
		Duration:       3,
		PickupDate:     "2026-09-01",
		DriverOption:   models.DriverOptionWith,
		DeliveryOption: models.DeliveryOptionPickup,
		Destination:    "Airport",
		TermsAccepted:  true,
	}
}

func testCar() models.Car {
	return models.Car{ID: "car-1", Name: "Honda City", Price: 2500}
}

func TestCreateDraftPricesAndDefaults(t *testing.T) {
	svc, _ := newTestService(utils.FixedDecider{Outcome: true})

	draft, err := svc.CreateDraft(validSnapshot(), testCar(), validDetails())
	if err != nil {
		t.Fatalf("CreateDraft: %v", err)
	}
	if draft.Total != 9000 {
		t.Errorf("Total = %v, want 9000", draft.Total)
	}

	// Zero-value options are defaulted before validation.
	details := validDetails()
	details.Duration = 0
	details.DriverOption = ""
	details.DeliveryOption = ""
	details.LicenseNumber = "DL12345678"
	details.LicenseExpiry = "2030-01-01"
	draft, err = svc.CreateDraft(validSnapshot(), testCar(), details)
	if err != nil {
		t.Fatalf("CreateDraft with defaults: %v", err)
	}
	if draft.Details.Duration != 1 {
		t.Errorf("Duration defaulted to %d, want 1", draft.Details.Duration)
	}
	if draft.Details.DriverOption != models.DriverOptionWithout {
		t.Errorf("DriverOption defaulted to %q", draft.Details.DriverOption)
	}
	if draft.Total != 2500 {
		t.Errorf("Total = %v, want 2500", draft.Total)
	}
}

func TestCreateDraftCollectsAllViolations(t *testing.T) {
	svc, _ := newTestService(utils.FixedDecider{Outcome: true})

	user := validSnapshot()
	user.Phone = "12345"
	user.Address = ""
	details := validDetails()
	details.Destination = ""
	details.TermsAccepted = false

	_, err := svc.CreateDraft(user, testCar(), details)
	var verrs models.ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected ValidationErrors, got %v", err)
	}
	for _, field := range []string{"phone", "address", "destination", "termsAccepted"} {
		if !verrs.Has(field) {
			t.Errorf("missing violation for %q in %v", field, verrs)
		}
	}
}

func TestCreateDraftSelfDriveLicenseRules(t *testing.T) {
	svc, _ := newTestService(utils.FixedDecider{Outcome: true})

	details := validDetails()
	details.DriverOption = models.DriverOptionWithout
	details.LicenseNumber = "short"
	details.LicenseExpiry = "2020-01-01"

	_, err := svc.CreateDraft(validSnapshot(), testCar(), details)
	var verrs models.ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected ValidationErrors, got %v", err)
	}
	if !verrs.Has("licenseNumber") {
		t.Errorf("expected licenseNumber violation, got %v", verrs)
	}
	if !verrs.Has("licenseExpiry") {
		t.Errorf("expected licenseExpiry violation, got %v", verrs)
	}

	// With a driver the license is not checked at all.
	details = validDetails()
	details.DriverOption = models.DriverOptionWith
	if _, err := svc.CreateDraft(validSnapshot(), testCar(), details); err != nil {
		t.Errorf("driver option should skip license checks: %v", err)
	}
}

func TestCheckAvailabilityForcedOutcomes(t *testing.T) {
	ctx := context.Background()

	svc, _ := newTestService(utils.FixedDecider{Outcome: true})
	available, err := svc.CheckAvailability(ctx, "car-1")
	if err != nil || !available {
		t.Errorf("forced success: got (%v, %v)", available, err)
	}

	svc, _ = newTestService(utils.FixedDecider{Outcome: false})
	available, err = svc.CheckAvailability(ctx, "car-1")
	if err != nil || available {
		t.Errorf("forced failure: got (%v, %v)", available, err)
	}
}

func TestCommitCreatesConfirmedBookingAndNotification(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(utils.FixedDecider{Outcome: true})

	draft := models.Draft{User: validSnapshot(), Car: testCar(), Details: validDetails(), Total: 9000}
	record, err := svc.Commit(ctx, draft, "PAY123", "card")
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}
	if record.Status != models.BookingStatusConfirmed {
		t.Errorf("Status = %q, want confirmed", record.Status)
	}
	if record.PaymentStatus != models.PaymentStatusApproved {
		t.Errorf("PaymentStatus = %q, want approved", record.PaymentStatus)
	}
	if record.PaymentID != "PAY123" {
		t.Errorf("PaymentID = %q", record.PaymentID)
	}

	bookings, err := repo.GetBookings(ctx)
	if err != nil || len(bookings) != 1 {
		t.Fatalf("stored bookings = %d (%v), want 1", len(bookings), err)
	}

	notes, err := repo.GetNotifications(ctx)
	if err != nil || len(notes) != 1 {
		t.Fatalf("notifications = %d (%v), want 1", len(notes), err)
	}
	if notes[0].Type != models.NotificationNewBooking {
		t.Errorf("notification type = %q", notes[0].Type)
	}
	if notes[0].BookingID != record.ID {
		t.Errorf("notification booking id = %q, want %q", notes[0].BookingID, record.ID)
	}
}

func TestConcurrentCommitsKeepBookingsAndNotificationsPaired(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(utils.FixedDecider{Outcome: true})

	const commits = 100
	var wg sync.WaitGroup
	errs := make(chan error, commits)
	for i := 0; i < commits; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			draft := models.Draft{User: validSnapshot(), Car: testCar(), Details: validDetails(), Total: 9000}
			_, err := svc.Commit(ctx, draft, fmt.Sprintf("PAY%d", n), "card")
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Fatalf("Commit: %v", err)
		}
	}

	bookings, err := repo.GetBookings(ctx)
	if err != nil {
		t.Fatal(err)
	}
	notes, err := repo.GetNotifications(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(bookings) != commits {
		t.Errorf("bookings = %d, want %d", len(bookings), commits)
	}
	if len(notes) != commits {
		t.Errorf("notifications = %d, want %d (every booking notifies once)", len(notes), commits)
	}
}

func TestCancelBookingTransitionsStatus(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(utils.FixedDecider{Outcome: true})

	draft := models.Draft{User: validSnapshot(), Car: testCar(), Details: validDetails(), Total: 9000}
	record, err := svc.Commit(ctx, draft, "PAY123", "card")
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}

	cancelled, err := svc.CancelBooking(ctx, record.ID)
	if err != nil {
		t.Fatalf("CancelBooking: %v", err)
	}
	if cancelled.Status != models.BookingStatusCancelled {
		t.Errorf("Status = %q, want cancelled", cancelled.Status)
	}
	if cancelled.PaymentStatus != models.PaymentStatusRejected {
		t.Errorf("PaymentStatus = %q, want rejected", cancelled.PaymentStatus)
	}

	// The record survives cancellation.
	bookings, _ := repo.GetBookings(ctx)
	if len(bookings) != 1 {
		t.Fatalf("record was removed, have %d bookings", len(bookings))
	}

	// Re-cancelling is a no-op.
	again, err := svc.CancelBooking(ctx, record.ID)
	if err != nil {
		t.Fatalf("second cancel: %v", err)
	}
	if again.Version != cancelled.Version {
		t.Errorf("no-op cancel bumped version %d -> %d", cancelled.Version, again.Version)
	}

	if _, err := svc.CancelBooking(ctx, "missing"); !errors.Is(err, ErrBookingNotFound) {
		t.Errorf("unknown id: got %v, want ErrBookingNotFound", err)
	}
}

func TestBookingsForMatchesEmailOrUsername(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(utils.FixedDecider{Outcome: true})

	mine := models.Draft{User: validSnapshot(), Car: testCar(), Details: validDetails(), Total: 100}
	other := mine
	other.User = models.UserSnapshot{Name: "bala", Email: "bala@example.com", Phone: "9876543211", Address: "x"}
	if _, err := svc.Commit(ctx, mine, "P1", "card"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Commit(ctx, other, "P2", "card"); err != nil {
		t.Fatal(err)
	}

	byEmail, err := svc.BookingsFor(ctx, models.Identity{Email: "asha@example.com"})
	if err != nil || len(byEmail) != 1 {
		t.Errorf("match by email: %d (%v), want 1", len(byEmail), err)
	}
	byName, err := svc.BookingsFor(ctx, models.Identity{Username: "bala"})
	if err != nil || len(byName) != 1 {
		t.Errorf("match by username: %d (%v), want 1", len(byName), err)
	}
	none, err := svc.BookingsFor(ctx, models.Identity{Email: "nobody@example.com", Username: "nobody"})
	if err != nil || len(none) != 0 {
		t.Errorf("no match: %d (%v), want 0", len(none), err)
	}
}
