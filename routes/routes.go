package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Dramaboy123/dramabot9531/handlers"
	"github.com/Dramaboy123/dramabot9531/middleware"
	"github.com/Dramaboy123/dramabot9531/utils"
)

// RegisterBookingRoutes registers the front-desk endpoints. Writes require
// the admin key.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.GET("/available-rooms", hb.AvailableRoomsHandler)

		protected := api.Group("")
		protected.Use(middleware.AdminAuthMiddleware())
		protected.POST("", hb.CreateBookingHandler)
		protected.POST("/:id/check-in", hb.CheckInHandler)
		protected.POST("/:id/check-out", hb.CheckOutHandler)
	}
}

// RegisterRecordRoutes registers the expense and feedback registers.
func RegisterRecordRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/records")
	{
		api.Use(middleware.AdminAuthMiddleware())
		api.POST("/expenses", hb.RecordExpenseHandler)
		api.POST("/feedback", hb.RecordFeedbackHandler)
	}
}

// RegisterReportRoutes registers the analytics endpoints.
func RegisterReportRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/reports")
	{
		api.GET("/daily", hb.DailyReportHandler)
		api.GET("/weekly", hb.WeeklySummaryHandler)
		api.GET("/monthly", hb.MonthlySummaryHandler)
		api.GET("/period", hb.PeriodSummaryHandler)
		api.GET("/trends/occupancy", hb.OccupancyTrendHandler)
		api.GET("/trends/revenue", hb.RevenueTrendHandler)
		api.GET("/pricing", hb.PricingSuggestionHandler)
		api.GET("/insights", hb.InsightsHandler)
		api.GET("/alerts", hb.AlertsHandler)
		api.GET("/pending-payments", hb.PendingPaymentsHandler)
		api.GET("/distribution", hb.DistributionHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes sets up global middleware and every route group.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterHealthRoute(r)
	RegisterBookingRoutes(r, hb)
	RegisterRecordRoutes(r, hb)
	RegisterReportRoutes(r, hb)
}
