package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Dramaboy123/dramabot9531/handlers"
	"github.com/Dramaboy123/dramabot9531/models"
	"github.com/Dramaboy123/dramabot9531/utils"
)

// stubAnalytics returns canned values; err short-circuits every method.
type stubAnalytics struct {
	report     *models.DailyReport
	summary    *models.PeriodSummary
	reportDate time.Time
	err        error
}

func (s *stubAnalytics) DailyReport(ctx context.Context, date time.Time) (*models.DailyReport, error) {
	s.reportDate = date
	return s.report, s.err
}

func (s *stubAnalytics) OccupancyTrend(ctx context.Context, days int) ([]models.TrendPoint, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []models.TrendPoint{{Value: 50}}, nil
}

func (s *stubAnalytics) RevenueTrend(ctx context.Context, days int) ([]models.TrendPoint, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []models.TrendPoint{{Value: 9000}}, nil
}

func (s *stubAnalytics) PeriodSummary(ctx context.Context, start, end time.Time) (*models.PeriodSummary, error) {
	return s.summary, s.err
}

func (s *stubAnalytics) WeeklySummary(ctx context.Context) (*models.PeriodSummary, error) {
	return s.summary, s.err
}

func (s *stubAnalytics) MonthlySummary(ctx context.Context) (*models.PeriodSummary, error) {
	return s.summary, s.err
}

func (s *stubAnalytics) SuggestPricing(occupancy float64) models.PricingSuggestion {
	return models.PricingSuggestion{Strategy: "Standard Pricing", Occupancy: occupancy}
}

func (s *stubAnalytics) LowOccupancyAlert(ctx context.Context) (*models.OccupancyAlert, error) {
	return nil, s.err
}

func (s *stubAnalytics) HighExpenseAlert(ctx context.Context) (*models.ExpenseAlert, error) {
	return nil, s.err
}

func (s *stubAnalytics) GuestCategoryDistribution(ctx context.Context) (*models.DistributionTally, error) {
	if s.err != nil {
		return nil, s.err
	}
	tally := &models.DistributionTally{}
	tally.Add("TOURIST")
	return tally, nil
}

func (s *stubAnalytics) BookingSourceDistribution(ctx context.Context) (*models.DistributionTally, error) {
	if s.err != nil {
		return nil, s.err
	}
	tally := &models.DistributionTally{}
	tally.Add("Phone")
	return tally, nil
}

func (s *stubAnalytics) PendingPayments(ctx context.Context) (*models.PendingPaymentsSummary, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.PendingPaymentsSummary{Bookings: []models.PendingPayment{}}, nil
}

func (s *stubAnalytics) PerformanceInsights(ctx context.Context) ([]string, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []string{"all good"}, nil
}

func newTestRouter(stub *stubAnalytics) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := handlers.NewReportHandler(stub, zap.NewNop())

	r := gin.New()
	r.GET("/reports/daily", h.DailyReportHandler)
	r.GET("/reports/period", h.PeriodSummaryHandler)
	r.GET("/reports/trends/occupancy", h.OccupancyTrendHandler)
	r.GET("/reports/distribution", h.DistributionHandler)
	r.GET("/reports/pricing", h.PricingSuggestionHandler)
	return r
}

func doGet(t *testing.T, r *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestDailyReportHandler(t *testing.T) {
	stub := &stubAnalytics{
		report: &models.DailyReport{TotalRooms: 10, OccupiedRooms: 6, OccupancyPercentage: 60},
	}
	w := doGet(t, newTestRouter(stub), "/reports/daily")

	require.Equal(t, http.StatusOK, w.Code)
	var report models.DailyReport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	assert.Equal(t, 6, report.OccupiedRooms)
}

func TestDailyReportHandlerRejectsBadDate(t *testing.T) {
	w := doGet(t, newTestRouter(&stubAnalytics{}), "/reports/daily?date=yesterday")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStoreErrorHiddenBehindGenericMessage(t *testing.T) {
	stub := &stubAnalytics{
		err: utils.NewSourceError("bookings.all", errors.New("credentials expired")),
	}
	w := doGet(t, newTestRouter(stub), "/reports/daily")

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.NotContains(t, w.Body.String(), "credentials expired")
	assert.Contains(t, w.Body.String(), "booking register")
}

func TestInvalidRangeMapsToBadRequest(t *testing.T) {
	stub := &stubAnalytics{err: utils.ErrInvalidRange}
	w := doGet(t, newTestRouter(stub), "/reports/period?start=2025-01-10&end=2025-01-05")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPeriodSummaryHandlerRequiresDates(t *testing.T) {
	w := doGet(t, newTestRouter(&stubAnalytics{}), "/reports/period?start=2025-01-10")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOccupancyTrendHandlerRejectsBadDays(t *testing.T) {
	w := doGet(t, newTestRouter(&stubAnalytics{}), "/reports/trends/occupancy?days=week")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDistributionHandlerSelectsKey(t *testing.T) {
	router := newTestRouter(&stubAnalytics{})

	w := doGet(t, router, "/reports/distribution")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "TOURIST")

	w = doGet(t, router, "/reports/distribution?by=source")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Phone")

	w = doGet(t, router, "/reports/distribution?by=rating")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPricingSuggestionHandler(t *testing.T) {
	stub := &stubAnalytics{report: &models.DailyReport{OccupancyPercentage: 75}}
	w := doGet(t, newTestRouter(stub), "/reports/pricing")

	require.Equal(t, http.StatusOK, w.Code)
	var suggestion models.PricingSuggestion
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &suggestion))
	assert.Equal(t, 75.0, suggestion.Occupancy)
	// A zero date defers the day choice to the analytics service clock.
	assert.True(t, stub.reportDate.IsZero())
}
