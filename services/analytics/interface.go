package analytics

import (
	"context"
	"time"

	"github.com/Dramaboy123/dramabot9531/config"
	bookingRepo "github.com/Dramaboy123/dramabot9531/database/repository/booking"
	expenseRepo "github.com/Dramaboy123/dramabot9531/database/repository/expense"
	feedbackRepo "github.com/Dramaboy123/dramabot9531/database/repository/feedback"
	"github.com/Dramaboy123/dramabot9531/models"
	"github.com/Dramaboy123/dramabot9531/utils"
)

// Settings carries the hotel profile the aggregator computes against. It is
// threaded in at construction so tests can vary it per case instead of
// reading ambient globals.
type Settings struct {
	TotalRooms            int
	TargetOccupancy       float64
	LocalRate             float64
	StandardRate          float64
	WalkInRate            float64
	LowOccupancyThreshold float64
	HighExpenseThreshold  float64
}

// SettingsFromConfig lifts the hotel profile out of the app configuration.
func SettingsFromConfig(cfg config.Config) Settings {
	return Settings{
		TotalRooms:            cfg.TotalRooms,
		TargetOccupancy:       cfg.TargetOccupancy,
		LocalRate:             cfg.LocalRate,
		StandardRate:          cfg.StandardRate,
		WalkInRate:            cfg.WalkInRate,
		LowOccupancyThreshold: cfg.LowOccupancyThreshold,
		HighExpenseThreshold:  cfg.HighExpenseThreshold,
	}
}

// Service analyzes hotel performance and generates reports and insights.
type Service interface {
	DailyReport(ctx context.Context, date time.Time) (*models.DailyReport, error)
	OccupancyTrend(ctx context.Context, days int) ([]models.TrendPoint, error)
	RevenueTrend(ctx context.Context, days int) ([]models.TrendPoint, error)
	PeriodSummary(ctx context.Context, start, end time.Time) (*models.PeriodSummary, error)
	WeeklySummary(ctx context.Context) (*models.PeriodSummary, error)
	MonthlySummary(ctx context.Context) (*models.PeriodSummary, error)
	SuggestPricing(occupancy float64) models.PricingSuggestion
	LowOccupancyAlert(ctx context.Context) (*models.OccupancyAlert, error)
	HighExpenseAlert(ctx context.Context) (*models.ExpenseAlert, error)
	GuestCategoryDistribution(ctx context.Context) (*models.DistributionTally, error)
	BookingSourceDistribution(ctx context.Context) (*models.DistributionTally, error)
	PendingPayments(ctx context.Context) (*models.PendingPaymentsSummary, error)
	PerformanceInsights(ctx context.Context) ([]string, error)
}

// DefaultAnalyticsService is the production implementation.
type DefaultAnalyticsService struct {
	Bookings bookingRepo.Repository
	Expenses expenseRepo.Repository
	Feedback feedbackRepo.Repository
	Settings Settings

	// Now supplies the clock; tests pin it to a fixed date. Nil means wall
	// clock.
	Now func() time.Time
}

func (s *DefaultAnalyticsService) today() time.Time {
	if s.Now != nil {
		return utils.Midnight(s.Now())
	}
	return utils.Today()
}
