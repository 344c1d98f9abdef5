package analytics

import (
	"context"
	"fmt"
	"math"

	"github.com/Dramaboy123/dramabot9531/utils"
)

// PerformanceInsights composes an ordered list of human-readable observations
// from today's report, pending payments, and the guest-category tally. The
// composition itself never fails once its inputs are fetched; it degrades to
// fewer lines on empty data.
func (s *DefaultAnalyticsService) PerformanceInsights(ctx context.Context) ([]string, error) {
	report, err := s.DailyReport(ctx, s.today())
	if err != nil {
		return nil, fmt.Errorf("performance insights: %w", err)
	}
	pending, err := s.PendingPayments(ctx)
	if err != nil {
		return nil, fmt.Errorf("performance insights: %w", err)
	}
	categories, err := s.GuestCategoryDistribution(ctx)
	if err != nil {
		return nil, fmt.Errorf("performance insights: %w", err)
	}

	var insights []string

	status, emoji := utils.OccupancyStatus(report.OccupancyPercentage)
	insights = append(insights, fmt.Sprintf("%s Occupancy is %s at %s",
		emoji, status, utils.FormatPercentage(report.OccupancyPercentage)))

	if report.NetProfit > 0 {
		insights = append(insights, fmt.Sprintf("💰 Profitable day with net profit of %s",
			utils.FormatCurrency(report.NetProfit)))
	} else {
		insights = append(insights, fmt.Sprintf("⚠️ Loss of %s - review expenses",
			utils.FormatCurrency(math.Abs(report.NetProfit))))
	}

	if pending.Count > 0 {
		insights = append(insights, fmt.Sprintf("💳 %d bookings have pending payments totaling %s",
			pending.Count, utils.FormatCurrency(pending.TotalAmount)))
	}

	if top, count, ok := categories.Top(); ok {
		insights = append(insights, fmt.Sprintf("👥 Most guests are %s (%d bookings)", top, count))
	}

	if report.FeedbackCount > 0 {
		insights = append(insights, fmt.Sprintf("⭐ Average rating: %.1f/5 from %d reviews",
			report.AverageRating, report.FeedbackCount))
	}

	return insights, nil
}
