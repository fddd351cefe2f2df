package booking

import "errors"

// ErrAvailabilityConflict blocks submission when the car is unavailable for
// the chosen dates; the user must pick another car or date.
var ErrAvailabilityConflict = errors.New("this car is not available for the selected dates")

// ErrBookingNotFound is returned for cancel requests against unknown ids.
var ErrBookingNotFound = errors.New("booking not found")
