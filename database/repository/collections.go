package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"rentify/database/store"
	"rentify/models"
)

// KVRepository implements Repository over a key/value Store. A single mutex
// serializes mutations within this process; across processes the store stays
// last-writer-wins at collection granularity, which is a documented
// limitation of the design rather than something to fix here.
type KVRepository struct {
	Store store.Store

	mu sync.Mutex
}

func NewKVRepository(s store.Store) *KVRepository {
	return &KVRepository{Store: s}
}

// load unmarshals the collection at key into out. A missing key leaves out
// untouched (empty collection), never an error.
func (r *KVRepository) load(ctx context.Context, key string, out any) error {
	data, err := r.Store.Get(ctx, key)
	if errors.Is(err, store.ErrKeyNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("repository: decode %q: %w", key, err)
	}
	return nil
}

func (r *KVRepository) save(ctx context.Context, key string, in any) error {
	data, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("repository: encode %q: %w", key, err)
	}
	return r.Store.Set(ctx, key, data)
}

// mutate applies fn to the decoded collection at key and writes the result
// back, with the repository mutex held across the whole read-modify-write.
// An error from fn aborts the write.
func mutate[T any](ctx context.Context, r *KVRepository, key string, fn func([]T) ([]T, error)) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []T
	if err := r.load(ctx, key, &items); err != nil {
		return err
	}
	updated, err := fn(items)
	if err != nil {
		return err
	}
	return r.save(ctx, key, updated)
}

func (r *KVRepository) GetUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := r.load(ctx, store.KeyUsers, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *KVRepository) SaveUsers(ctx context.Context, users []models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.save(ctx, store.KeyUsers, users)
}

func (r *KVRepository) MutateUsers(ctx context.Context, fn func([]models.User) ([]models.User, error)) error {
	return mutate(ctx, r, store.KeyUsers, fn)
}

func (r *KVRepository) GetBookings(ctx context.Context) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := r.load(ctx, store.KeyBookings, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *KVRepository) SaveBookings(ctx context.Context, bookings []models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.save(ctx, store.KeyBookings, bookings)
}

func (r *KVRepository) AppendBooking(ctx context.Context, b models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	var bookings []models.Booking
	if err := r.load(ctx, store.KeyBookings, &bookings); err != nil {
		return err
	}
	bookings = append(bookings, b)
	return r.save(ctx, store.KeyBookings, bookings)
}

func (r *KVRepository) UpdateBooking(ctx context.Context, b models.Booking) (models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var bookings []models.Booking
	if err := r.load(ctx, store.KeyBookings, &bookings); err != nil {
		return models.Booking{}, err
	}
	for i := range bookings {
		if bookings[i].ID != b.ID {
			continue
		}
		if bookings[i].Version != b.Version {
			return models.Booking{}, ErrStaleVersion
		}
		b.Version++
		bookings[i] = b
		if err := r.save(ctx, store.KeyBookings, bookings); err != nil {
			return models.Booking{}, err
		}
		return b, nil
	}
	return models.Booking{}, ErrBookingNotFound
}

func (r *KVRepository) GetCars(ctx context.Context) ([]models.Car, error) {
	var cars []models.Car
	if err := r.load(ctx, store.KeyCars, &cars); err != nil {
		return nil, err
	}
	return cars, nil
}

func (r *KVRepository) SaveCars(ctx context.Context, cars []models.Car) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.save(ctx, store.KeyCars, cars)
}

func (r *KVRepository) MutateCars(ctx context.Context, fn func([]models.Car) ([]models.Car, error)) error {
	return mutate(ctx, r, store.KeyCars, fn)
}

func (r *KVRepository) GetPendingAgencies(ctx context.Context) ([]models.AgencyApplication, error) {
	var apps []models.AgencyApplication
	if err := r.load(ctx, store.KeyPendingAgencies, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *KVRepository) SavePendingAgencies(ctx context.Context, apps []models.AgencyApplication) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.save(ctx, store.KeyPendingAgencies, apps)
}

func (r *KVRepository) MutatePendingAgencies(ctx context.Context, fn func([]models.AgencyApplication) ([]models.AgencyApplication, error)) error {
	return mutate(ctx, r, store.KeyPendingAgencies, fn)
}

func (r *KVRepository) GetAgencies(ctx context.Context) ([]models.AgencyApplication, error) {
	var apps []models.AgencyApplication
	if err := r.load(ctx, store.KeyAgencies, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *KVRepository) SaveAgencies(ctx context.Context, apps []models.AgencyApplication) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.save(ctx, store.KeyAgencies, apps)
}

func (r *KVRepository) MutateAgencies(ctx context.Context, fn func([]models.AgencyApplication) ([]models.AgencyApplication, error)) error {
	return mutate(ctx, r, store.KeyAgencies, fn)
}

func (r *KVRepository) GetNotifications(ctx context.Context) ([]models.Notification, error) {
	var notes []models.Notification
	if err := r.load(ctx, store.KeyAdminNotifications, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

func (r *KVRepository) SaveNotifications(ctx context.Context, notes []models.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.save(ctx, store.KeyAdminNotifications, notes)
}

func (r *KVRepository) MutateNotifications(ctx context.Context, fn func([]models.Notification) ([]models.Notification, error)) error {
	return mutate(ctx, r, store.KeyAdminNotifications, fn)
}
