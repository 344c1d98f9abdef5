package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/Dramaboy123/dramabot9531/models"
	"github.com/Dramaboy123/dramabot9531/utils"
)

// PeriodSummary accumulates revenue, expenses, and occupancy over the closed
// interval [start, end].
func (s *DefaultAnalyticsService) PeriodSummary(ctx context.Context, start, end time.Time) (*models.PeriodSummary, error) {
	start, end = utils.Midnight(start), utils.Midnight(end)
	if start.After(end) {
		return nil, fmt.Errorf("period %s to %s: %w",
			start.Format(utils.DateLayout), end.Format(utils.DateLayout), utils.ErrInvalidRange)
	}

	var totalRevenue, totalExpenses float64
	var occupancies []float64

	for _, date := range utils.DateRange(start, end) {
		active, err := s.Bookings.GetActive(ctx, date)
		if err != nil {
			return nil, fmt.Errorf("period summary at %s: %w", date.Format(utils.DateLayout), err)
		}
		for _, b := range active {
			totalRevenue += b.Total
		}
		occupancies = append(occupancies, utils.OccupancyPercentage(len(active), s.Settings.TotalRooms))

		expenses, err := s.Expenses.GetByDate(ctx, date)
		if err != nil {
			return nil, fmt.Errorf("period summary at %s: %w", date.Format(utils.DateLayout), err)
		}
		for _, e := range expenses {
			totalExpenses += e.Amount
		}
	}

	return &models.PeriodSummary{
		StartDate:        start,
		EndDate:          end,
		TotalRevenue:     totalRevenue,
		TotalExpenses:    totalExpenses,
		NetProfit:        totalRevenue - totalExpenses,
		AverageOccupancy: utils.Mean(occupancies),
		Days:             len(occupancies),
	}, nil
}

// WeeklySummary covers the Monday-to-Sunday week containing today.
func (s *DefaultAnalyticsService) WeeklySummary(ctx context.Context) (*models.PeriodSummary, error) {
	start, end := utils.WeekRange(s.today())
	return s.PeriodSummary(ctx, start, end)
}

// MonthlySummary covers the calendar month containing today.
func (s *DefaultAnalyticsService) MonthlySummary(ctx context.Context) (*models.PeriodSummary, error) {
	start, end := utils.MonthRange(s.today())
	return s.PeriodSummary(ctx, start, end)
}
