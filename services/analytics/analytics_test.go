package analytics_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dramaboy123/dramabot9531/models"
	"github.com/Dramaboy123/dramabot9531/services/analytics"
	"github.com/Dramaboy123/dramabot9531/utils"
)

// fixedToday is the pinned clock for every test in this package.
var fixedToday = time.Date(2025, 1, 11, 0, 0, 0, 0, time.UTC)

type fakeBookingRepo struct {
	bookings  []models.Booking
	checkIns  []models.Booking
	checkOuts []models.Booking
	err       error
}

func (f *fakeBookingRepo) Add(ctx context.Context, b models.Booking) error {
	if f.err != nil {
		return f.err
	}
	f.bookings = append(f.bookings, b)
	return nil
}

func (f *fakeBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.bookings {
		if f.bookings[i].ID == id {
			return &f.bookings[i], nil
		}
	}
	return nil, errors.New("booking not found")
}

func (f *fakeBookingRepo) GetAll(ctx context.Context) ([]models.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.bookings, nil
}

func (f *fakeBookingRepo) GetActive(ctx context.Context, date time.Time) ([]models.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	var active []models.Booking
	for _, b := range f.bookings {
		if b.ActiveOn(date) {
			active = append(active, b)
		}
	}
	return active, nil
}

func (f *fakeBookingRepo) TodaysCheckIns(ctx context.Context) ([]models.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.checkIns, nil
}

func (f *fakeBookingRepo) TodaysCheckOuts(ctx context.Context) ([]models.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.checkOuts, nil
}

func (f *fakeBookingRepo) SetCheckedIn(ctx context.Context, id string) error  { return f.err }
func (f *fakeBookingRepo) SetCheckedOut(ctx context.Context, id string) error { return f.err }

type fakeExpenseRepo struct {
	expenses []models.Expense
	err      error
}

func (f *fakeExpenseRepo) Add(ctx context.Context, e models.Expense) error {
	if f.err != nil {
		return f.err
	}
	f.expenses = append(f.expenses, e)
	return nil
}

func (f *fakeExpenseRepo) GetAll(ctx context.Context) ([]models.Expense, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.expenses, nil
}

func (f *fakeExpenseRepo) GetByDate(ctx context.Context, date time.Time) ([]models.Expense, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Expense
	for _, e := range f.expenses {
		if utils.SameDate(e.Date, date) {
			out = append(out, e)
		}
	}
	return out, nil
}

type fakeFeedbackRepo struct {
	feedback []models.Feedback
	err      error
}

func (f *fakeFeedbackRepo) Add(ctx context.Context, fb models.Feedback) error {
	if f.err != nil {
		return f.err
	}
	f.feedback = append(f.feedback, fb)
	return nil
}

func (f *fakeFeedbackRepo) Recent(ctx context.Context, limit int) ([]models.Feedback, error) {
	if f.err != nil {
		return nil, f.err
	}
	if len(f.feedback) > limit {
		return f.feedback[:limit], nil
	}
	return f.feedback, nil
}

// stay builds a booking spanning [checkIn, checkOut) with a derived balance.
func stay(id string, checkIn, checkOut time.Time, rate, total, advance float64) models.Booking {
	b := models.Booking{
		ID:           id,
		GuestName:    "Guest " + id,
		Category:     models.CategoryTourist,
		RoomNumber:   "10" + id,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		Rate:         rate,
		Total:        total,
		Advance:      advance,
		Source:       "Direct",
	}
	b.RecalculateBalance()
	return b
}

func newService(bookings *fakeBookingRepo, expenses *fakeExpenseRepo, feedback *fakeFeedbackRepo) *analytics.DefaultAnalyticsService {
	return &analytics.DefaultAnalyticsService{
		Bookings: bookings,
		Expenses: expenses,
		Feedback: feedback,
		Settings: analytics.Settings{
			TotalRooms:            10,
			TargetOccupancy:       80,
			LocalRate:             799,
			StandardRate:          1500,
			WalkInRate:            1200,
			LowOccupancyThreshold: 60,
			HighExpenseThreshold:  5000,
		},
		Now: func() time.Time { return fixedToday },
	}
}

func TestDailyReport(t *testing.T) {
	ctx := context.Background()

	bookings := &fakeBookingRepo{
		bookings: []models.Booking{
			stay("1", fixedToday.AddDate(0, 0, -1), fixedToday.AddDate(0, 0, 2), 1000, 3000, 1000),
			stay("2", fixedToday, fixedToday.AddDate(0, 0, 1), 1500, 1500, 1500),
			// checked out: no longer occupies a room
			func() models.Booking {
				b := stay("3", fixedToday.AddDate(0, 0, -2), fixedToday.AddDate(0, 0, 1), 1200, 3600, 0)
				b.CheckedOut = true
				return b
			}(),
			// stay ended before today
			stay("4", fixedToday.AddDate(0, 0, -5), fixedToday.AddDate(0, 0, -2), 1000, 3000, 3000),
		},
		checkIns:  []models.Booking{{ID: "BK-A"}},
		checkOuts: []models.Booking{{ID: "BK-B"}, {ID: "BK-C"}},
	}
	expenses := &fakeExpenseRepo{
		expenses: []models.Expense{
			{ID: "EX-1", Date: fixedToday, Amount: 500},
			{ID: "EX-2", Date: fixedToday, Amount: 300},
			{ID: "EX-3", Date: fixedToday.AddDate(0, 0, -1), Amount: 9999},
		},
	}
	feedback := &fakeFeedbackRepo{
		feedback: []models.Feedback{
			{ID: "FB-1", Rating: 4, Date: fixedToday},
			{ID: "FB-2", Rating: 2, Date: fixedToday},
			{ID: "FB-3", Rating: 5, Date: fixedToday.AddDate(0, 0, -3)},
		},
	}

	svc := newService(bookings, expenses, feedback)
	report, err := svc.DailyReport(ctx, time.Time{})
	require.NoError(t, err)

	assert.True(t, utils.SameDate(report.ReportDate, fixedToday))
	assert.Equal(t, 10, report.TotalRooms)
	assert.Equal(t, 2, report.OccupiedRooms)
	assert.Equal(t, 8, report.AvailableRooms)
	assert.InDelta(t, 20.0, report.OccupancyPercentage, 0.001)
	assert.Equal(t, 1, report.CheckIns)
	assert.Equal(t, 2, report.CheckOuts)
	assert.InDelta(t, 4500.0, report.TotalRevenue, 0.001)
	assert.InDelta(t, 800.0, report.TotalExpenses, 0.001)
	assert.InDelta(t, 3700.0, report.NetProfit, 0.001)
	assert.InDelta(t, 2500.0, report.AdvanceCollected, 0.001)
	assert.InDelta(t, 2000.0, report.BalancePending, 0.001)
	assert.InDelta(t, 1250.0, report.AverageRoomRate, 0.001)
	assert.Equal(t, 2, report.FeedbackCount)
	assert.InDelta(t, 3.0, report.AverageRating, 0.001)
}

func TestDailyReportPastDateHasNoCheckInCounts(t *testing.T) {
	bookings := &fakeBookingRepo{
		checkIns:  []models.Booking{{ID: "BK-A"}},
		checkOuts: []models.Booking{{ID: "BK-B"}},
	}
	svc := newService(bookings, &fakeExpenseRepo{}, &fakeFeedbackRepo{})

	report, err := svc.DailyReport(context.Background(), fixedToday.AddDate(0, 0, -3))
	require.NoError(t, err)
	assert.Equal(t, 0, report.CheckIns)
	assert.Equal(t, 0, report.CheckOuts)
}

func TestDailyReportOverbookedGoesNegative(t *testing.T) {
	bookings := &fakeBookingRepo{
		bookings: []models.Booking{
			stay("1", fixedToday, fixedToday.AddDate(0, 0, 1), 1000, 1000, 0),
			stay("2", fixedToday, fixedToday.AddDate(0, 0, 1), 1000, 1000, 0),
			stay("3", fixedToday, fixedToday.AddDate(0, 0, 1), 1000, 1000, 0),
		},
	}
	svc := newService(bookings, &fakeExpenseRepo{}, &fakeFeedbackRepo{})
	svc.Settings.TotalRooms = 2

	report, err := svc.DailyReport(context.Background(), time.Time{})
	require.NoError(t, err)
	assert.Equal(t, -1, report.AvailableRooms)
	assert.InDelta(t, 150.0, report.OccupancyPercentage, 0.001)
}

func TestDailyReportZeroCapacity(t *testing.T) {
	svc := newService(&fakeBookingRepo{}, &fakeExpenseRepo{}, &fakeFeedbackRepo{})
	svc.Settings.TotalRooms = 0

	report, err := svc.DailyReport(context.Background(), time.Time{})
	require.NoError(t, err)
	assert.Equal(t, 0.0, report.OccupancyPercentage)
}

func TestDailyReportPropagatesStoreError(t *testing.T) {
	storeErr := utils.NewSourceError("bookings.all", errors.New("quota exceeded"))
	bookings := &fakeBookingRepo{err: storeErr}
	svc := newService(bookings, &fakeExpenseRepo{}, &fakeFeedbackRepo{})

	_, err := svc.DailyReport(context.Background(), time.Time{})
	require.Error(t, err)

	var srcErr *utils.SourceError
	assert.True(t, errors.As(err, &srcErr))
	assert.Equal(t, "bookings.all", srcErr.Query)
}

func TestDailyReportDegradesWhenFeedbackUnavailable(t *testing.T) {
	bookings := &fakeBookingRepo{
		bookings: []models.Booking{
			stay("1", fixedToday, fixedToday.AddDate(0, 0, 2), 1000, 2000, 0),
		},
	}
	feedback := &fakeFeedbackRepo{err: errors.New("feedback sheet unreadable")}
	svc := newService(bookings, &fakeExpenseRepo{}, feedback)

	report, err := svc.DailyReport(context.Background(), time.Time{})
	require.NoError(t, err)
	assert.Equal(t, 1, report.OccupiedRooms)
	assert.Equal(t, 0, report.FeedbackCount)
	assert.Equal(t, 0.0, report.AverageRating)
}

func TestPeriodSummary(t *testing.T) {
	start := fixedToday.AddDate(0, 0, -2)
	bookings := &fakeBookingRepo{
		bookings: []models.Booking{
			// covers all three days
			stay("1", start, fixedToday.AddDate(0, 0, 1), 1000, 3000, 0),
			// covers the last day only
			stay("2", fixedToday, fixedToday.AddDate(0, 0, 1), 1500, 1500, 0),
		},
	}
	expenses := &fakeExpenseRepo{
		expenses: []models.Expense{
			{ID: "EX-1", Date: start, Amount: 400},
			{ID: "EX-2", Date: fixedToday, Amount: 600},
		},
	}
	svc := newService(bookings, expenses, &fakeFeedbackRepo{})

	summary, err := svc.PeriodSummary(context.Background(), start, fixedToday)
	require.NoError(t, err)

	assert.Equal(t, 3, summary.Days)
	// booking 1 counts once per day it is active
	assert.InDelta(t, 3000*3+1500, summary.TotalRevenue, 0.001)
	assert.InDelta(t, 1000.0, summary.TotalExpenses, 0.001)
	assert.InDelta(t, summary.TotalRevenue-summary.TotalExpenses, summary.NetProfit, 0.001)
	// occupancies are 10%, 10%, 20%
	assert.InDelta(t, 40.0/3, summary.AverageOccupancy, 0.001)
}

func TestPeriodSummaryRejectsInvertedRange(t *testing.T) {
	svc := newService(&fakeBookingRepo{}, &fakeExpenseRepo{}, &fakeFeedbackRepo{})

	_, err := svc.PeriodSummary(context.Background(), fixedToday, fixedToday.AddDate(0, 0, -1))
	require.Error(t, err)
	assert.True(t, errors.Is(err, utils.ErrInvalidRange))
}

func TestSingleDayPeriodMatchesDailyReport(t *testing.T) {
	bookings := &fakeBookingRepo{
		bookings: []models.Booking{
			stay("1", fixedToday, fixedToday.AddDate(0, 0, 2), 1200, 2400, 500),
		},
	}
	expenses := &fakeExpenseRepo{
		expenses: []models.Expense{{ID: "EX-1", Date: fixedToday, Amount: 350}},
	}
	svc := newService(bookings, expenses, &fakeFeedbackRepo{})
	ctx := context.Background()

	report, err := svc.DailyReport(ctx, fixedToday)
	require.NoError(t, err)
	summary, err := svc.PeriodSummary(ctx, fixedToday, fixedToday)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Days)
	assert.InDelta(t, report.TotalRevenue, summary.TotalRevenue, 0.001)
	assert.InDelta(t, report.TotalExpenses, summary.TotalExpenses, 0.001)
	assert.InDelta(t, report.NetProfit, summary.NetProfit, 0.001)
	assert.InDelta(t, report.OccupancyPercentage, summary.AverageOccupancy, 0.001)
}

func TestWeeklySummaryCoversMondayToSunday(t *testing.T) {
	svc := newService(&fakeBookingRepo{}, &fakeExpenseRepo{}, &fakeFeedbackRepo{})

	summary, err := svc.WeeklySummary(context.Background())
	require.NoError(t, err)

	// 2025-01-11 is a Saturday; its week runs 2025-01-06 to 2025-01-12.
	assert.True(t, utils.SameDate(summary.StartDate, time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)))
	assert.True(t, utils.SameDate(summary.EndDate, time.Date(2025, 1, 12, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 7, summary.Days)
}

func TestMonthlySummaryCoversCalendarMonth(t *testing.T) {
	svc := newService(&fakeBookingRepo{}, &fakeExpenseRepo{}, &fakeFeedbackRepo{})

	summary, err := svc.MonthlySummary(context.Background())
	require.NoError(t, err)

	assert.True(t, utils.SameDate(summary.StartDate, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, utils.SameDate(summary.EndDate, time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 31, summary.Days)
}

func TestOccupancyTrend(t *testing.T) {
	bookings := &fakeBookingRepo{
		bookings: []models.Booking{
			// active yesterday and today
			stay("1", fixedToday.AddDate(0, 0, -1), fixedToday.AddDate(0, 0, 1), 1000, 2000, 0),
		},
	}
	svc := newService(bookings, &fakeExpenseRepo{}, &fakeFeedbackRepo{})

	points, err := svc.OccupancyTrend(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, points, 3)

	// ascending dates ending today
	assert.True(t, utils.SameDate(points[0].Date, fixedToday.AddDate(0, 0, -2)))
	assert.True(t, utils.SameDate(points[2].Date, fixedToday))
	assert.Equal(t, 0.0, points[0].Value)
	assert.InDelta(t, 10.0, points[1].Value, 0.001)
	assert.InDelta(t, 10.0, points[2].Value, 0.001)
}

func TestRevenueTrendDefaultsToSevenDays(t *testing.T) {
	svc := newService(&fakeBookingRepo{}, &fakeExpenseRepo{}, &fakeFeedbackRepo{})

	points, err := svc.RevenueTrend(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, points, 7)

	points, err = svc.RevenueTrend(context.Background(), -3)
	require.NoError(t, err)
	assert.Len(t, points, 7)
}
