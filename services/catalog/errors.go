package catalog

import (
	"errors"
	"fmt"
)

// ErrCarNotFound is returned when a car id is not in the listing set.
var ErrCarNotFound = errors.New("catalog: car not found")

// CatalogUnavailableError means the feed could not be fetched or did not
// contain a car array. Surfaced as a page-level error state; there is no
// built-in retry loop.
type CatalogUnavailableError struct {
	Reason string
	Err    error
}

func (e *CatalogUnavailableError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("catalog unavailable: %s: %v", e.Reason, e.Err)
	}
	return "catalog unavailable: " + e.Reason
}

func (e *CatalogUnavailableError) Unwrap() error {
	return e.Err
}
