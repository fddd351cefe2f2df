package store

import (
	"context"
	"errors"
)

// Canonical persisted-store keys. Values are JSON documents; readers must
// treat a missing key as an empty collection, never as an error.
const (
	KeyUsers              = "users"
	KeyBookings           = "bookings"
	KeyCars               = "cars"
	KeyAgencies           = "agencies"
	KeyPendingAgencies    = "pendingAgencies"
	KeyAdminNotifications = "adminNotifications"

	// Session flags and identity blobs. A blob without its paired flag set
	// true is treated as logged out; the flags are the source of truth.
	KeyUserLoggedIn  = "isLoggedIn"
	KeyAdminLoggedIn = "isAdminLoggedIn"
	KeyUserIdentity  = "user"
	KeyAdminIdentity = "admin"
)

// ErrKeyNotFound is returned by Get when the key has never been written.
var ErrKeyNotFound = errors.New("store: key not found")

// Store is the process-shared key/value namespace that is the sole
// persistence layer. There is no partial update: callers rewrite whole
// collections.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
