package repository

import (
	"context"
	"errors"

	"rentify/models"
)

// ErrStaleVersion is returned by UpdateBooking when the caller's copy of a
// booking no longer matches the stored version.
var ErrStaleVersion = errors.New("repository: booking version is stale")

// ErrBookingNotFound is returned when a booking id has no stored record.
var ErrBookingNotFound = errors.New("repository: booking not found")

// Repository exposes typed accessors over the persisted store so call sites
// depend on an abstraction, not ambient storage. Every mutation follows the
// read-modify-write-whole-collection discipline; callers must re-read
// derived aggregates after a mutation rather than patching local counts.
type Repository interface {
	GetUsers(ctx context.Context) ([]models.User, error)
	SaveUsers(ctx context.Context, users []models.User) error
	// MutateUsers applies fn to the current collection and writes the result
	// back, holding the repository mutex across the whole read-modify-write.
	// An error from fn aborts the write and is returned unchanged. The other
	// Mutate* accessors follow the same contract; writers that append or edit
	// in place must go through them, or concurrent writes overwrite each
	// other.
	MutateUsers(ctx context.Context, fn func([]models.User) ([]models.User, error)) error

	GetBookings(ctx context.Context) ([]models.Booking, error)
	SaveBookings(ctx context.Context, bookings []models.Booking) error
	AppendBooking(ctx context.Context, b models.Booking) error
	// UpdateBooking replaces the stored booking with the same ID, provided
	// the caller's Version matches the stored one. The saved copy has its
	// Version incremented; the returned booking reflects the saved state.
	UpdateBooking(ctx context.Context, b models.Booking) (models.Booking, error)

	GetCars(ctx context.Context) ([]models.Car, error)
	SaveCars(ctx context.Context, cars []models.Car) error
	MutateCars(ctx context.Context, fn func([]models.Car) ([]models.Car, error)) error

	GetPendingAgencies(ctx context.Context) ([]models.AgencyApplication, error)
	SavePendingAgencies(ctx context.Context, apps []models.AgencyApplication) error
	MutatePendingAgencies(ctx context.Context, fn func([]models.AgencyApplication) ([]models.AgencyApplication, error)) error
	GetAgencies(ctx context.Context) ([]models.AgencyApplication, error)
	SaveAgencies(ctx context.Context, apps []models.AgencyApplication) error
	MutateAgencies(ctx context.Context, fn func([]models.AgencyApplication) ([]models.AgencyApplication, error)) error

	GetNotifications(ctx context.Context) ([]models.Notification, error)
	SaveNotifications(ctx context.Context, notes []models.Notification) error
	MutateNotifications(ctx context.Context, fn func([]models.Notification) ([]models.Notification, error)) error

	// Session access per the flag contract: the identity blob and its
	// boolean flag must both agree for an authenticated read.
	LoadSession(ctx context.Context) (models.Session, error)
	SaveUserSession(ctx context.Context, id models.Identity) error
	ClearUserSession(ctx context.Context) error
	SaveAdminSession(ctx context.Context, id models.Identity) error
	ClearAdminSession(ctx context.Context) error
}
