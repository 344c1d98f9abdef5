package analytics

import (
	"context"
	"fmt"

	"github.com/Dramaboy123/dramabot9531/models"
	"github.com/Dramaboy123/dramabot9531/utils"
)

// defaultTrendWindow is the window used when the caller does not ask for a
// specific number of days.
const defaultTrendWindow = 7

// OccupancyTrend samples the occupancy percentage for each of the past days,
// ending today, in ascending date order.
func (s *DefaultAnalyticsService) OccupancyTrend(ctx context.Context, days int) ([]models.TrendPoint, error) {
	return s.trend(ctx, models.TrendOccupancy, days)
}

// RevenueTrend samples total active-booking revenue for each of the past days,
// ending today, in ascending date order.
func (s *DefaultAnalyticsService) RevenueTrend(ctx context.Context, days int) ([]models.TrendPoint, error) {
	return s.trend(ctx, models.TrendRevenue, days)
}

// trend computes each point independently from a point-in-time active-bookings
// query. The store queries are cheap and idempotent at this volume, so no
// incremental caching happens between points.
func (s *DefaultAnalyticsService) trend(ctx context.Context, metric models.TrendMetric, days int) ([]models.TrendPoint, error) {
	// A non-positive window means "use the default", so callers without an
	// explicit window can pass zero.
	if days < 1 {
		days = defaultTrendWindow
	}

	today := s.today()
	points := make([]models.TrendPoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		date := today.AddDate(0, 0, -i)

		active, err := s.Bookings.GetActive(ctx, date)
		if err != nil {
			return nil, fmt.Errorf("%s trend at %s: %w", metric, date.Format(utils.DateLayout), err)
		}

		var value float64
		switch metric {
		case models.TrendRevenue:
			for _, b := range active {
				value += b.Total
			}
		default:
			value = utils.OccupancyPercentage(len(active), s.Settings.TotalRooms)
		}

		points = append(points, models.TrendPoint{Date: date, Value: value})
	}
	return points, nil
}
