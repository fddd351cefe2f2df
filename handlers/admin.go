package handlers

import (
	"context"
	"errors"
	"net/http"

	"rentify/database/repository"
	"rentify/models"
	"rentify/services/admin"
	"rentify/utils"

	"github.com/gin-gonic/gin"
)

// PendingAgenciesHandler lists agency applications awaiting a decision.
func (hb *HandlerBundle) PendingAgenciesHandler(c *gin.Context) {
	pending, err := hb.Admin.PendingAgencies(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Listing failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"pendingAgencies": pending})
}

// ApproveAgencyHandler approves a pending agency and publishes its cars.
func (hb *HandlerBundle) ApproveAgencyHandler(c *gin.Context) {
	id := c.Param("id")
	if err := hb.Admin.ApproveAgency(c.Request.Context(), id); err != nil {
		if errors.Is(err, admin.ErrAgencyNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Approval failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "approved"})
}

// RejectAgencyHandler drops a pending agency application.
func (hb *HandlerBundle) RejectAgencyHandler(c *gin.Context) {
	id := c.Param("id")
	if err := hb.Admin.RejectAgency(c.Request.Context(), id); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Rejection failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "rejected"})
}

// ApprovePaymentHandler forces a booking to confirmed/approved.
func (hb *HandlerBundle) ApprovePaymentHandler(c *gin.Context) {
	hb.paymentOverride(c, hb.Admin.ApprovePayment)
}

// RejectPaymentHandler forces a booking to cancelled/rejected.
func (hb *HandlerBundle) RejectPaymentHandler(c *gin.Context) {
	hb.paymentOverride(c, hb.Admin.RejectPayment)
}

func (hb *HandlerBundle) paymentOverride(c *gin.Context, op func(ctx context.Context, bookingID string) (*models.Booking, error)) {
	id := c.Param("id")
	record, err := op(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Override failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, record)
}

// NotificationsHandler returns the admin notification feed.
func (hb *HandlerBundle) NotificationsHandler(c *gin.Context) {
	notes, err := hb.Admin.Notifications(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Listing failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": notes})
}

// MarkNotificationReadHandler flips a single notification to read.
func (hb *HandlerBundle) MarkNotificationReadHandler(c *gin.Context) {
	id := c.Param("id")
	if err := hb.Admin.MarkRead(c.Request.Context(), id); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Update failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "read"})
}

// MarkAllNotificationsReadHandler marks the whole feed read.
func (hb *HandlerBundle) MarkAllNotificationsReadHandler(c *gin.Context) {
	if err := hb.Admin.MarkAllRead(c.Request.Context()); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Update failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "read"})
}
