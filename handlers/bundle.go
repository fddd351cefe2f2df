package handlers

import (
	"rentify/database/repository"
	"rentify/services/admin"
	"rentify/services/auth"
	"rentify/services/booking"
	"rentify/services/catalog"
	"rentify/services/dashboard"
	"rentify/services/payment"
)

// HandlerBundle groups all endpoint handlers around the wired services.
// Routes read it; main.go builds it.
type HandlerBundle struct {
	Repo      repository.Repository
	Auth      auth.AuthService
	Catalog   catalog.CatalogService
	Booking   booking.BookingService
	Payment   payment.PaymentService
	Admin     admin.AdminService
	Dashboard dashboard.DashboardService
}

// NewHandlerBundle wires the handlers to their services.
func NewHandlerBundle(
	repo repository.Repository,
	authSvc auth.AuthService,
	catalogSvc catalog.CatalogService,
	bookingSvc booking.BookingService,
	paymentSvc payment.PaymentService,
	adminSvc admin.AdminService,
	dashboardSvc dashboard.DashboardService,
) *HandlerBundle {
	return &HandlerBundle{
		Repo:      repo,
		Auth:      authSvc,
		Catalog:   catalogSvc,
		Booking:   bookingSvc,
		Payment:   paymentSvc,
		Admin:     adminSvc,
		Dashboard: dashboardSvc,
	}
}
