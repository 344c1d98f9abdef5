package analytics

import (
	"context"
	"fmt"

	"github.com/Dramaboy123/dramabot9531/models"
	"github.com/Dramaboy123/dramabot9531/utils"
)

// LowOccupancyAlert checks today's occupancy against the configured threshold.
// A nil alert with a nil error means occupancy is fine.
func (s *DefaultAnalyticsService) LowOccupancyAlert(ctx context.Context) (*models.OccupancyAlert, error) {
	report, err := s.DailyReport(ctx, s.today())
	if err != nil {
		return nil, fmt.Errorf("low occupancy check: %w", err)
	}
	return s.lowOccupancyAlertFor(report), nil
}

// lowOccupancyAlertFor applies the threshold to an already-built report.
// The boundary is exclusive-below: occupancy equal to the threshold does not
// fire.
func (s *DefaultAnalyticsService) lowOccupancyAlertFor(report *models.DailyReport) *models.OccupancyAlert {
	if report.OccupancyPercentage >= s.Settings.LowOccupancyThreshold {
		return nil
	}
	return &models.OccupancyAlert{
		Occupancy:      report.OccupancyPercentage,
		Threshold:      s.Settings.LowOccupancyThreshold,
		AvailableRooms: report.AvailableRooms,
		Message: fmt.Sprintf("⚠️ Low Occupancy Alert: %s (Target: %s)",
			utils.FormatPercentage(report.OccupancyPercentage),
			utils.FormatPercentage(s.Settings.TargetOccupancy)),
	}
}

// HighExpenseAlert checks today's recorded expenses against the configured
// ceiling. A nil alert with a nil error means spending is within bounds.
func (s *DefaultAnalyticsService) HighExpenseAlert(ctx context.Context) (*models.ExpenseAlert, error) {
	expenses, err := s.Expenses.GetByDate(ctx, s.today())
	if err != nil {
		return nil, fmt.Errorf("high expense check: %w", err)
	}

	var total float64
	for _, e := range expenses {
		total += e.Amount
	}
	if total <= s.Settings.HighExpenseThreshold {
		return nil, nil
	}

	return &models.ExpenseAlert{
		TotalExpenses: total,
		Threshold:     s.Settings.HighExpenseThreshold,
		Message: fmt.Sprintf("🚨 High Expense Alert: %s spent today (limit %s)",
			utils.FormatCurrency(total), utils.FormatCurrency(s.Settings.HighExpenseThreshold)),
	}, nil
}
