package booking

import "rentify/models"

// Pricing constants, in whole currency units.
const (
	// DriverChargePerDay is added per rental day when a professional
	// driver is requested.
	DriverChargePerDay = 500

	// HomeDeliveryCharge is a flat fee for self-drive home delivery.
	HomeDeliveryCharge = 300
)

// ComputeTotal prices a rental:
//
//	total = price*duration
//	      + 500*duration   if driving with a professional driver
//	      + 300            if self-drive with home delivery
func ComputeTotal(pricePerDay float64, details models.BookingDetails) float64 {
	total := pricePerDay * float64(details.Duration)
	if details.DriverOption == models.DriverOptionWith {
		total += DriverChargePerDay * float64(details.Duration)
	}
	if details.DriverOption == models.DriverOptionWithout && details.DeliveryOption == models.DeliveryOptionDelivery {
		total += HomeDeliveryCharge
	}
	return total
}
