package admin

import (
	"context"
	"errors"

	"rentify/database/repository"
	"rentify/models"

	"go.uber.org/zap"
)

// ErrAgencyNotFound is returned when an agency id is neither pending nor
// approved.
var ErrAgencyNotFound = errors.New("agency application not found")

// AdminService is the approval and notification engine: administrative
// approval/rejection of pending agencies and payments, and the notification
// feed those flows produce.
type AdminService interface {
	PendingAgencies(ctx context.Context) ([]models.AgencyApplication, error)
	ApproveAgency(ctx context.Context, agencyID string) error
	RejectAgency(ctx context.Context, agencyID string) error

	ApprovePayment(ctx context.Context, bookingID string) (*models.Booking, error)
	RejectPayment(ctx context.Context, bookingID string) (*models.Booking, error)

	Notifications(ctx context.Context) ([]models.Notification, error)
	MarkRead(ctx context.Context, notificationID string) error
	MarkAllRead(ctx context.Context) error
}

// DefaultAdminService implements AdminService.
type DefaultAdminService struct {
	Repo   repository.Repository
	Logger *zap.Logger
}
