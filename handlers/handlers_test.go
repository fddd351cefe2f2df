package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"rentify/database/repository"
	"rentify/database/store"
	"rentify/middleware"
	"rentify/models"
	"rentify/services/admin"
	"rentify/services/auth"
	"rentify/services/booking"
	"rentify/services/catalog"
	"rentify/services/dashboard"
	"rentify/services/payment"
	"rentify/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// newTestRouter wires the full stack over an in-memory store with forced
// simulation outcomes and no artificial delays.
func newTestRouter(t *testing.T, outcome bool) (*gin.Engine, *repository.KVRepository) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := repository.NewKVRepository(store.NewMemoryStore())
	logger := zap.NewNop()
	decider := utils.FixedDecider{Outcome: outcome}

	hb := NewHandlerBundle(
		repo,
		&auth.DefaultAuthService{Repo: repo, Logger: logger, AdminUsername: "admin", AdminPassword: "admin123"},
		&catalog.DefaultCatalogService{Repo: repo, Client: http.DefaultClient, FeedURL: "http://unused.invalid", Logger: logger},
		&booking.DefaultBookingService{Repo: repo, Logger: logger, Decider: decider, AvailabilityRate: 0.8},
		&payment.DefaultPaymentService{Logger: logger, Decider: decider, SuccessRate: 0.8},
		&admin.DefaultAdminService{Repo: repo, Logger: logger},
		&dashboard.DefaultDashboardService{Repo: repo, Logger: logger},
	)

	router := gin.New()
	api := router.Group("/api/auth")
	{
		api.POST("/signup", hb.SignUpHandler)
		api.POST("/login", hb.LoginHandler)
		api.GET("/check", hb.CheckAuthHandler)
		api.POST("/admin/login", hb.AdminLoginHandler)
	}
	bookings := router.Group("/api/bookings")
	{
		bookings.Use(middleware.UserSessionRequired(repo))
		bookings.GET("", hb.ListBookingsHandler)
		bookings.POST("/draft", hb.DraftBookingHandler)
		bookings.GET("/availability/:carId", hb.AvailabilityHandler)
		bookings.POST("/pay", hb.PayBookingHandler)
		bookings.POST("/:id/cancel", hb.CancelBookingHandler)
	}
	adminAPI := router.Group("/api/admin")
	{
		adminAPI.Use(middleware.AdminSessionRequired(repo))
		adminAPI.GET("/notifications", hb.NotificationsHandler)
	}
	return router, repo
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func loginUser(t *testing.T, repo *repository.KVRepository) {
	t.Helper()
	err := repo.SaveUserSession(context.Background(), models.Identity{
		Username: "asha", Email: "asha@example.com", Role: models.RoleUser,
	})
	if err != nil {
		t.Fatal(err)
	}
}

func bookingPayload() map[string]any {
	return map[string]any{
		"user": map[string]any{
			"name":    "asha",
			"email":   "asha@example.com",
			"phone":   "9876543210",
			"address": "12 Hill Road",
		},
		"car": map[string]any{"id": "car-1", "name": "Honda City", "price": 2500.0},
		"bookingDetails": map[string]any{
			"duration":       3,
			"pickupDate":     "2026-09-01",
			"driverOption":   "with",
			"deliveryOption": "pickup",
			"destination":    "Airport",
			"termsAccepted":  true,
		},
	}
}

func TestBookingRoutesRequireSession(t *testing.T) {
	router, _ := newTestRouter(t, true)

	w := doJSON(t, router, http.MethodGet, "/api/bookings", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestPayFlowSuccess(t *testing.T) {
	router, repo := newTestRouter(t, true)
	loginUser(t, repo)

	payload := bookingPayload()
	payload["paymentMethod"] = "card"
	w := doJSON(t, router, http.MethodPost, "/api/bookings/pay", payload)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var resp struct {
		Booking models.Booking  `json:"booking"`
		Receipt payment.Receipt `json:"receipt"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Booking.Status != models.BookingStatusConfirmed {
		t.Errorf("status = %q", resp.Booking.Status)
	}
	if resp.Booking.Total != 9000 {
		t.Errorf("total = %v, want 9000", resp.Booking.Total)
	}
	if resp.Receipt.PaymentID == "" || resp.Booking.PaymentID != resp.Receipt.PaymentID {
		t.Errorf("payment ids: booking %q, receipt %q", resp.Booking.PaymentID, resp.Receipt.PaymentID)
	}

	stored, _ := repo.GetBookings(context.Background())
	if len(stored) != 1 {
		t.Errorf("stored bookings = %d", len(stored))
	}
}

func TestPayFlowDeclinedLeavesNoBooking(t *testing.T) {
	router, repo := newTestRouter(t, false)
	loginUser(t, repo)

	payload := bookingPayload()
	payload["paymentMethod"] = "upi"
	w := doJSON(t, router, http.MethodPost, "/api/bookings/pay", payload)
	if w.Code != http.StatusPaymentRequired {
		t.Fatalf("status = %d, want 402, body %s", w.Code, w.Body.String())
	}

	stored, _ := repo.GetBookings(context.Background())
	if len(stored) != 0 {
		t.Errorf("declined payment stored a booking: %+v", stored)
	}
}

func TestPayFlowValidationFailure(t *testing.T) {
	router, repo := newTestRouter(t, true)
	loginUser(t, repo)

	payload := bookingPayload()
	payload["user"].(map[string]any)["phone"] = "12"
	payload["paymentMethod"] = "card"
	w := doJSON(t, router, http.MethodPost, "/api/bookings/pay", payload)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400, body %s", w.Code, w.Body.String())
	}

	var resp struct {
		Fields models.ValidationErrors `json:"fields"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if !resp.Fields.Has("phone") {
		t.Errorf("fields = %+v", resp.Fields)
	}
}

func TestAvailabilityConflict(t *testing.T) {
	router, repo := newTestRouter(t, false)
	loginUser(t, repo)

	w := doJSON(t, router, http.MethodGet, "/api/bookings/availability/car-1", nil)
	if w.Code != http.StatusConflict {
		t.Errorf("status = %d, want 409", w.Code)
	}
}

func TestSignupThenLoginOpensSession(t *testing.T) {
	router, _ := newTestRouter(t, true)

	w := doJSON(t, router, http.MethodPost, "/api/auth/signup", map[string]any{
		"username":        "asha",
		"email":           "asha@example.com",
		"password":        "secret1",
		"confirmPassword": "secret1",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("signup status = %d, body %s", w.Code, w.Body.String())
	}

	w = doJSON(t, router, http.MethodPost, "/api/auth/login", map[string]any{
		"email":    "asha@example.com",
		"password": "secret1",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login status = %d, body %s", w.Code, w.Body.String())
	}

	w = doJSON(t, router, http.MethodGet, "/api/auth/check", nil)
	var session models.Session
	if err := json.Unmarshal(w.Body.Bytes(), &session); err != nil {
		t.Fatal(err)
	}
	if session.User == nil || session.User.Email != "asha@example.com" {
		t.Errorf("session = %+v", session)
	}
}

func TestAdminRoutesRejectUserSession(t *testing.T) {
	router, repo := newTestRouter(t, true)
	loginUser(t, repo)

	w := doJSON(t, router, http.MethodGet, "/api/admin/notifications", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}
