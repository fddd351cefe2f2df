package routes

import (
	"net/http"
	"time"

	"rentify/handlers"
	"rentify/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers signup, login/logout and session-check
// endpoints for both session slots.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/signup", hb.SignUpHandler)
		api.POST("/login", hb.LoginHandler)
		api.POST("/logout", hb.LogoutHandler)
		api.POST("/admin/login", hb.AdminLoginHandler)
		api.POST("/admin/logout", hb.AdminLogoutHandler)
		api.GET("/check", hb.CheckAuthHandler)
	}
}

// RegisterCatalogRoutes registers the car catalog endpoints. Listing is
// public; mutation needs a user session (agency accounts use the same slot).
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/cars")
	{
		api.GET("", hb.ListCarsHandler)

		protected := api.Group("")
		protected.Use(middleware.UserSessionRequired(hb.Repo))
		protected.POST("", hb.AddCarHandler)
		protected.DELETE("/:id", hb.RemoveCarHandler)
	}
}

// RegisterBookingRoutes registers the booking lifecycle endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.UserSessionRequired(hb.Repo))
		api.GET("", hb.ListBookingsHandler)
		api.POST("/draft", hb.DraftBookingHandler)
		api.GET("/availability/:carId", hb.AvailabilityHandler)
		api.POST("/pay", hb.PayBookingHandler)
		api.POST("/:id/cancel", hb.CancelBookingHandler)
	}
}

// RegisterAdminRoutes registers the approval engine and notification feed.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/admin")
	{
		api.Use(middleware.AdminSessionRequired(hb.Repo))
		api.GET("/agencies/pending", hb.PendingAgenciesHandler)
		api.POST("/agencies/:id/approve", hb.ApproveAgencyHandler)
		api.POST("/agencies/:id/reject", hb.RejectAgencyHandler)
		api.POST("/payments/:id/approve", hb.ApprovePaymentHandler)
		api.POST("/payments/:id/reject", hb.RejectPaymentHandler)
		api.GET("/notifications", hb.NotificationsHandler)
		api.POST("/notifications/:id/read", hb.MarkNotificationReadHandler)
		api.POST("/notifications/read-all", hb.MarkAllNotificationsReadHandler)
	}
}

// RegisterDashboardRoutes registers the recomputed dashboard views.
func RegisterDashboardRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/dashboard")
	{
		api.GET("/admin", middleware.AdminSessionRequired(hb.Repo), hb.AdminStatsHandler)
		api.GET("/user", middleware.UserSessionRequired(hb.Repo), hb.UserStatsHandler)
		api.GET("/agency/:id", middleware.UserSessionRequired(hb.Repo), hb.AgencyStatsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Rentify"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterDashboardRoutes(r, hb)
	RegisterHealthRoute(r)
}
