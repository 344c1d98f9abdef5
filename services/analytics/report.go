package analytics

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Dramaboy123/dramabot9531/models"
	"github.com/Dramaboy123/dramabot9531/utils"
)

// feedbackFetchLimit bounds the recent-feedback query used to find reviews
// left on the report date.
const feedbackFetchLimit = 100

// DailyReport builds a full performance snapshot for one calendar date.
// Booking and expense reads are the primary path: if either fails the error
// propagates wrapped, never masked as an empty report. The feedback read is an
// auxiliary enrichment and degrades to zero values when it fails.
func (s *DefaultAnalyticsService) DailyReport(ctx context.Context, date time.Time) (*models.DailyReport, error) {
	targetDate := utils.Midnight(date)
	if date.IsZero() {
		targetDate = s.today()
	}

	active, err := s.Bookings.GetActive(ctx, targetDate)
	if err != nil {
		return nil, fmt.Errorf("daily report for %s: %w", targetDate.Format(utils.DateLayout), err)
	}

	occupied := len(active)
	available := s.Settings.TotalRooms - occupied // negative when overbooked
	occupancy := utils.OccupancyPercentage(occupied, s.Settings.TotalRooms)

	var totalRevenue, advanceCollected, balancePending float64
	rates := make([]float64, 0, len(active))
	for _, b := range active {
		totalRevenue += b.Total
		advanceCollected += b.Advance
		balancePending += b.Balance
		rates = append(rates, b.Rate)
	}

	expenses, err := s.Expenses.GetByDate(ctx, targetDate)
	if err != nil {
		return nil, fmt.Errorf("daily report for %s: %w", targetDate.Format(utils.DateLayout), err)
	}
	var totalExpenses float64
	for _, e := range expenses {
		totalExpenses += e.Amount
	}

	// Arrival and departure counts only exist for today; the register keeps no
	// history of past check-in events, so historical reports carry zeros.
	var checkIns, checkOuts int
	if utils.SameDate(targetDate, s.today()) {
		arrivals, err := s.Bookings.TodaysCheckIns(ctx)
		if err != nil {
			return nil, fmt.Errorf("daily report for %s: %w", targetDate.Format(utils.DateLayout), err)
		}
		departures, err := s.Bookings.TodaysCheckOuts(ctx)
		if err != nil {
			return nil, fmt.Errorf("daily report for %s: %w", targetDate.Format(utils.DateLayout), err)
		}
		checkIns = len(arrivals)
		checkOuts = len(departures)
	}

	feedbackCount, avgRating := s.feedbackForDate(ctx, targetDate)

	return &models.DailyReport{
		ReportDate:          targetDate,
		TotalRooms:          s.Settings.TotalRooms,
		OccupiedRooms:       occupied,
		AvailableRooms:      available,
		OccupancyPercentage: occupancy,
		CheckIns:            checkIns,
		CheckOuts:           checkOuts,
		TotalRevenue:        totalRevenue,
		TotalExpenses:       totalExpenses,
		NetProfit:           totalRevenue - totalExpenses,
		AdvanceCollected:    advanceCollected,
		BalancePending:      balancePending,
		AverageRoomRate:     utils.Mean(rates),
		FeedbackCount:       feedbackCount,
		AverageRating:       avgRating,
	}, nil
}

// feedbackForDate counts reviews left on the given date and averages their
// ratings. A store failure here is logged and degrades to empty.
func (s *DefaultAnalyticsService) feedbackForDate(ctx context.Context, date time.Time) (int, float64) {
	recent, err := s.Feedback.Recent(ctx, feedbackFetchLimit)
	if err != nil {
		utils.GetLogger().Warn("feedback unavailable, reporting without ratings",
			zap.String("date", date.Format(utils.DateLayout)), zap.Error(err))
		return 0, 0.0
	}

	var ratings []float64
	for _, f := range recent {
		if utils.SameDate(f.Date, date) {
			ratings = append(ratings, float64(f.Rating))
		}
	}
	return len(ratings), utils.Mean(ratings)
}
