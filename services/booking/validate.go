package booking

import (
	"regexp"
	"strings"
	"time"

	"rentify/models"
)

var phonePattern = regexp.MustCompile(`^\d{10}$`)

const dateLayout = "2006-01-02"

// validateDraft checks the whole submission and collects every violation so
// the caller can surface all field errors at once.
func validateDraft(user models.UserSnapshot, details models.BookingDetails) models.ValidationErrors {
	var errs models.ValidationErrors

	if !phonePattern.MatchString(user.Phone) {
		errs = append(errs, models.ValidationError{Field: "phone", Message: "Enter a valid 10-digit phone number"})
	}
	if user.AltPhone != "" && !phonePattern.MatchString(user.AltPhone) {
		errs = append(errs, models.ValidationError{Field: "altPhone", Message: "Enter a valid 10-digit alternate phone number"})
	}
	if strings.TrimSpace(user.Address) == "" {
		errs = append(errs, models.ValidationError{Field: "address", Message: "Address is required"})
	}
	if details.PickupDate == "" {
		errs = append(errs, models.ValidationError{Field: "pickupDate", Message: "Pickup date is required"})
	}
	if strings.TrimSpace(details.Destination) == "" {
		errs = append(errs, models.ValidationError{Field: "destination", Message: "Destination is required"})
	}
	if details.Duration < 1 {
		errs = append(errs, models.ValidationError{Field: "duration", Message: "Duration must be at least 1 day"})
	}

	if details.DriverOption == models.DriverOptionWithout {
		if len(details.LicenseNumber) < 8 {
			errs = append(errs, models.ValidationError{Field: "licenseNumber", Message: "Valid license number is required when driving yourself"})
		}
		if details.LicenseExpiry == "" {
			errs = append(errs, models.ValidationError{Field: "licenseExpiry", Message: "License expiry date is required"})
		} else if expiry, err := time.Parse(dateLayout, details.LicenseExpiry); err != nil {
			errs = append(errs, models.ValidationError{Field: "licenseExpiry", Message: "License expiry date is invalid"})
		} else if expiry.Before(today()) {
			errs = append(errs, models.ValidationError{Field: "licenseExpiry", Message: "License must not be expired"})
		}
	}

	if !details.TermsAccepted {
		errs = append(errs, models.ValidationError{Field: "termsAccepted", Message: "You must accept the terms and conditions"})
	}

	return errs
}

func today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}
