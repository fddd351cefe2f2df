package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"rentify/config"
	"rentify/database/repository"
	"rentify/database/store"
	"rentify/handlers"
	"rentify/middleware"
	"rentify/routes"
	"rentify/services/admin"
	"rentify/services/auth"
	"rentify/services/booking"
	"rentify/services/catalog"
	"rentify/services/dashboard"
	"rentify/services/payment"
	"rentify/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitStoreClient()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Store and repository.
	kv := store.NewRedisStore(utils.GetStoreClient())
	repo := repository.NewKVRepository(kv)

	decider := utils.NewRandomDecider()

	// Services.
	authService := &auth.DefaultAuthService{
		Repo:          repo,
		Logger:        logger,
		LoginDelay:    config.AppConfig.LoginDelay,
		AdminUsername: config.AppConfig.AdminUsername,
		AdminPassword: config.AppConfig.AdminPassword,
	}
	catalogService := &catalog.DefaultCatalogService{
		Repo:    repo,
		Client:  &http.Client{Timeout: 15 * time.Second},
		FeedURL: config.AppConfig.CatalogFeedURL,
		Logger:  logger,
	}
	bookingService := &booking.DefaultBookingService{
		Repo:              repo,
		Logger:            logger,
		Decider:           decider,
		AvailabilityRate:  config.AppConfig.AvailabilitySuccessRate,
		AvailabilityDelay: config.AppConfig.AvailabilityDelay,
	}
	paymentService := &payment.DefaultPaymentService{
		Logger:      logger,
		Decider:     decider,
		SuccessRate: config.AppConfig.SettlementSuccessRate,
		Delay:       config.AppConfig.SettlementDelay,
	}
	adminService := &admin.DefaultAdminService{
		Repo:   repo,
		Logger: logger,
	}
	dashboardService := &dashboard.DefaultDashboardService{
		Repo:   repo,
		Logger: logger,
	}

	// Assemble the handler bundle and register routes.
	handlerBundle := handlers.NewHandlerBundle(
		repo,
		authService,
		catalogService,
		bookingService,
		paymentService,
		adminService,
		dashboardService,
	)
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
