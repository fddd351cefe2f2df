package handlers

import (
	"errors"
	"net/http"

	"rentify/middleware"
	"rentify/models"
	"rentify/services/booking"
	"rentify/services/payment"
	"rentify/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// bookingRequest is the full booking form: renter snapshot, the chosen car
// and the rental parameters.
type bookingRequest struct {
	User    models.UserSnapshot   `json:"user"`
	Car     models.Car            `json:"car"`
	Details models.BookingDetails `json:"bookingDetails"`
}

// DraftBookingHandler validates the form and returns the priced draft.
// Nothing is persisted at this stage.
func (hb *HandlerBundle) DraftBookingHandler(c *gin.Context) {
	logger := getLogger(c)

	var req bookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid booking request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	draft, err := hb.Booking.CreateDraft(req.User, req.Car, req.Details)
	if err != nil {
		var verrs models.ValidationErrors
		if errors.As(err, &verrs) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": verrs})
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Draft failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, draft)
}

// AvailabilityHandler runs the simulated availability check for a car.
// Every call is an independent draw; an unavailable answer is reported as a
// conflict and blocks submission, nothing more.
func (hb *HandlerBundle) AvailabilityHandler(c *gin.Context) {
	carID := c.Param("carId")

	available, err := hb.Booking.CheckAvailability(c.Request.Context(), carID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Availability check failed", err.Error())
		return
	}
	if !available {
		c.JSON(http.StatusConflict, gin.H{"error": booking.ErrAvailabilityConflict.Error(), "available": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"available": true})
}

// payRequest carries the re-submitted form plus the chosen payment method.
type payRequest struct {
	bookingRequest
	PaymentMethod string `json:"paymentMethod"`
}

// PayBookingHandler runs the settlement simulation and, on success, commits
// the booking record. A declined settlement leaves no booking behind; the
// client may retry with the same or a different method.
func (hb *HandlerBundle) PayBookingHandler(c *gin.Context) {
	logger := getLogger(c)

	var req payRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid payment request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	draft, err := hb.Booking.CreateDraft(req.User, req.Car, req.Details)
	if err != nil {
		var verrs models.ValidationErrors
		if errors.As(err, &verrs) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": verrs})
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Payment failed", err.Error())
		return
	}

	receipt, err := hb.Payment.Settle(c.Request.Context(), draft.Total, req.PaymentMethod)
	if err != nil {
		if errors.Is(err, payment.ErrPaymentDeclined) {
			c.JSON(http.StatusPaymentRequired, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := hb.Booking.Commit(c.Request.Context(), *draft, receipt.PaymentID, receipt.Method)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Booking failed", err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{"booking": record, "receipt": receipt})
}

// CancelBookingHandler transitions a booking to cancelled. The record stays
// in the store; re-cancelling is a no-op.
func (hb *HandlerBundle) CancelBookingHandler(c *gin.Context) {
	id := c.Param("id")

	record, err := hb.Booking.CancelBooking(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, booking.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Cancel failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, record)
}

// ListBookingsHandler returns the session user's bookings.
func (hb *HandlerBundle) ListBookingsHandler(c *gin.Context) {
	identity, ok := middleware.UserIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not logged in"})
		return
	}

	bookings, err := hb.Booking.BookingsFor(c.Request.Context(), identity)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Listing failed", err.Error())
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}
