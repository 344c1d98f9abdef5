package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Dramaboy123/dramabot9531/services/analytics"
	"github.com/Dramaboy123/dramabot9531/utils"
)

// storeUnavailableMessage is what callers see when the spreadsheet cannot be
// reached; the underlying cause only goes to the log.
const storeUnavailableMessage = "Could not reach the booking register. Please try again later."

// ReportHandler serves the analytics endpoints.
type ReportHandler struct {
	Analytics analytics.Service
	Logger    *zap.Logger
}

// NewReportHandler returns a ReportHandler.
func NewReportHandler(svc analytics.Service, logger *zap.Logger) *ReportHandler {
	return &ReportHandler{Analytics: svc, Logger: logger}
}

// respondStoreError hides store failures behind a generic message while
// logging the wrapped cause.
func (h *ReportHandler) respondStoreError(c *gin.Context, err error) {
	var srcErr *utils.SourceError
	if errors.As(err, &srcErr) {
		h.Logger.Error("booking store read failed",
			zap.String("query", srcErr.Query), zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, storeUnavailableMessage, "")
		return
	}
	if errors.Is(err, utils.ErrInvalidRange) {
		utils.JSONError(c, http.StatusBadRequest, "Invalid date range", err.Error())
		return
	}
	h.Logger.Error("report failed", zap.Error(err))
	utils.JSONError(c, http.StatusInternalServerError, "Report could not be generated", "")
}

// DailyReportHandler builds a daily report for today or the ?date= query.
func (h *ReportHandler) DailyReportHandler(c *gin.Context) {
	date := utils.Today()
	if raw := c.Query("date"); raw != "" {
		parsed, err := utils.ParseDate(raw)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid date", err.Error())
			return
		}
		date = parsed
	}

	report, err := h.Analytics.DailyReport(c.Request.Context(), date)
	if err != nil {
		h.respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// trendDays reads the ?days= query, defaulting to zero so the service applies
// its own default window.
func trendDays(c *gin.Context) (int, error) {
	raw := c.Query("days")
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}

// OccupancyTrendHandler serves the rolling occupancy trend.
func (h *ReportHandler) OccupancyTrendHandler(c *gin.Context) {
	days, err := trendDays(c)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid days parameter", err.Error())
		return
	}
	points, err := h.Analytics.OccupancyTrend(c.Request.Context(), days)
	if err != nil {
		h.respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"metric": "occupancy", "points": points})
}

// RevenueTrendHandler serves the rolling revenue trend.
func (h *ReportHandler) RevenueTrendHandler(c *gin.Context) {
	days, err := trendDays(c)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid days parameter", err.Error())
		return
	}
	points, err := h.Analytics.RevenueTrend(c.Request.Context(), days)
	if err != nil {
		h.respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"metric": "revenue", "points": points})
}

// WeeklySummaryHandler serves the Monday-to-Sunday summary for this week.
func (h *ReportHandler) WeeklySummaryHandler(c *gin.Context) {
	summary, err := h.Analytics.WeeklySummary(c.Request.Context())
	if err != nil {
		h.respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// MonthlySummaryHandler serves the calendar-month summary.
func (h *ReportHandler) MonthlySummaryHandler(c *gin.Context) {
	summary, err := h.Analytics.MonthlySummary(c.Request.Context())
	if err != nil {
		h.respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// PeriodSummaryHandler serves a summary over an arbitrary ?start=&end= range.
func (h *ReportHandler) PeriodSummaryHandler(c *gin.Context) {
	start, err := utils.ParseDate(c.Query("start"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid start date", err.Error())
		return
	}
	end, err := utils.ParseDate(c.Query("end"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid end date", err.Error())
		return
	}

	summary, err := h.Analytics.PeriodSummary(c.Request.Context(), start, end)
	if err != nil {
		h.respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// PricingSuggestionHandler runs the pricing rule table against today's
// occupancy. The zero date lets the service's own clock pick the day.
func (h *ReportHandler) PricingSuggestionHandler(c *gin.Context) {
	report, err := h.Analytics.DailyReport(c.Request.Context(), time.Time{})
	if err != nil {
		h.respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.Analytics.SuggestPricing(report.OccupancyPercentage))
}

// InsightsHandler serves the ordered performance observations.
func (h *ReportHandler) InsightsHandler(c *gin.Context) {
	insights, err := h.Analytics.PerformanceInsights(c.Request.Context())
	if err != nil {
		h.respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"insights": insights})
}

// AlertsHandler runs the occupancy and expense threshold checks. Absent alerts
// are omitted from the response body rather than reported as errors.
func (h *ReportHandler) AlertsHandler(c *gin.Context) {
	occAlert, err := h.Analytics.LowOccupancyAlert(c.Request.Context())
	if err != nil {
		h.respondStoreError(c, err)
		return
	}
	expAlert, err := h.Analytics.HighExpenseAlert(c.Request.Context())
	if err != nil {
		h.respondStoreError(c, err)
		return
	}

	resp := gin.H{}
	if occAlert != nil {
		resp["low_occupancy"] = occAlert
	}
	if expAlert != nil {
		resp["high_expense"] = expAlert
	}
	c.JSON(http.StatusOK, resp)
}

// PendingPaymentsHandler serves the outstanding-balance summary.
func (h *ReportHandler) PendingPaymentsHandler(c *gin.Context) {
	summary, err := h.Analytics.PendingPayments(c.Request.Context())
	if err != nil {
		h.respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// DistributionHandler tallies active bookings by category or source,
// selected with ?by=.
func (h *ReportHandler) DistributionHandler(c *gin.Context) {
	var err error
	var tally interface{}

	switch c.DefaultQuery("by", "category") {
	case "category":
		tally, err = h.Analytics.GuestCategoryDistribution(c.Request.Context())
	case "source":
		tally, err = h.Analytics.BookingSourceDistribution(c.Request.Context())
	default:
		utils.JSONError(c, http.StatusBadRequest, "Unknown distribution key", "use by=category or by=source")
		return
	}
	if err != nil {
		h.respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, tally)
}
