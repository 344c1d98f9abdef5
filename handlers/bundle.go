package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Dramaboy123/dramabot9531/services/analytics"
	"github.com/Dramaboy123/dramabot9531/services/booking"
)

// HandlerBundle collects every route handler so the router wiring stays in
// one place.
type HandlerBundle struct {
	// Booking endpoints
	CreateBookingHandler  gin.HandlerFunc
	CheckInHandler        gin.HandlerFunc
	CheckOutHandler       gin.HandlerFunc
	AvailableRoomsHandler gin.HandlerFunc
	RecordExpenseHandler  gin.HandlerFunc
	RecordFeedbackHandler gin.HandlerFunc

	// Report endpoints
	DailyReportHandler       gin.HandlerFunc
	OccupancyTrendHandler    gin.HandlerFunc
	RevenueTrendHandler      gin.HandlerFunc
	WeeklySummaryHandler     gin.HandlerFunc
	MonthlySummaryHandler    gin.HandlerFunc
	PeriodSummaryHandler     gin.HandlerFunc
	PricingSuggestionHandler gin.HandlerFunc
	InsightsHandler          gin.HandlerFunc
	AlertsHandler            gin.HandlerFunc
	PendingPaymentsHandler   gin.HandlerFunc
	DistributionHandler      gin.HandlerFunc
}

// NewHandlerBundle wires the services into route handlers.
func NewHandlerBundle(bookingSvc booking.Service, analyticsSvc analytics.Service, logger *zap.Logger) *HandlerBundle {
	bh := NewBookingHandler(bookingSvc, logger)
	rh := NewReportHandler(analyticsSvc, logger)

	return &HandlerBundle{
		CreateBookingHandler:  bh.CreateBookingHandler,
		CheckInHandler:        bh.CheckInHandler,
		CheckOutHandler:       bh.CheckOutHandler,
		AvailableRoomsHandler: bh.AvailableRoomsHandler,
		RecordExpenseHandler:  bh.RecordExpenseHandler,
		RecordFeedbackHandler: bh.RecordFeedbackHandler,

		DailyReportHandler:       rh.DailyReportHandler,
		OccupancyTrendHandler:    rh.OccupancyTrendHandler,
		RevenueTrendHandler:      rh.RevenueTrendHandler,
		WeeklySummaryHandler:     rh.WeeklySummaryHandler,
		MonthlySummaryHandler:    rh.MonthlySummaryHandler,
		PeriodSummaryHandler:     rh.PeriodSummaryHandler,
		PricingSuggestionHandler: rh.PricingSuggestionHandler,
		InsightsHandler:          rh.InsightsHandler,
		AlertsHandler:            rh.AlertsHandler,
		PendingPaymentsHandler:   rh.PendingPaymentsHandler,
		DistributionHandler:      rh.DistributionHandler,
	}
}
