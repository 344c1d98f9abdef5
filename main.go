package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Dramaboy123/dramabot9531/config"
	"github.com/Dramaboy123/dramabot9531/cron"
	"github.com/Dramaboy123/dramabot9531/database"
	bookingRepo "github.com/Dramaboy123/dramabot9531/database/repository/booking"
	expenseRepo "github.com/Dramaboy123/dramabot9531/database/repository/expense"
	feedbackRepo "github.com/Dramaboy123/dramabot9531/database/repository/feedback"
	roomRepo "github.com/Dramaboy123/dramabot9531/database/repository/room"
	"github.com/Dramaboy123/dramabot9531/handlers"
	"github.com/Dramaboy123/dramabot9531/routes"
	"github.com/Dramaboy123/dramabot9531/services/analytics"
	"github.com/Dramaboy123/dramabot9531/services/booking"
	"github.com/Dramaboy123/dramabot9531/services/notification"
	"github.com/Dramaboy123/dramabot9531/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitSheets()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	bookings := bookingRepo.NewSheetsBookingRepo()
	rooms := roomRepo.NewSheetsRoomRepo()
	expenses := expenseRepo.NewSheetsExpenseRepo()
	feedback := feedbackRepo.NewSheetsFeedbackRepo()

	// services.
	analyticsService := &analytics.DefaultAnalyticsService{
		Bookings: bookings,
		Expenses: expenses,
		Feedback: feedback,
		Settings: analytics.SettingsFromConfig(config.AppConfig),
	}

	bookingService := &booking.DefaultBookingService{
		Bookings: bookings,
		Rooms:    rooms,
		Expenses: expenses,
		Feedback: feedback,
		Rates:    booking.RatesFromConfig(config.AppConfig),
	}

	notifier := notification.NewTelegramNotifier(config.AppConfig.TelegramBotToken)

	// Assemble the handler bundle and register routes.
	handlerBundle := handlers.NewHandlerBundle(bookingService, analyticsService, logger)
	routes.RegisterRoutes(router, handlerBundle)

	// Background report worker and health monitor.
	cron.InitReportWorker(analyticsService, notifier)
	utils.StartHealthMonitor(utils.GetCacheClient(), database.Probe)

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
