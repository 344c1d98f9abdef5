package analytics_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dramaboy123/dramabot9531/models"
)

// occupyRooms fills n rooms with one-night stays starting today.
func occupyRooms(n int) *fakeBookingRepo {
	repo := &fakeBookingRepo{}
	for i := 0; i < n; i++ {
		repo.bookings = append(repo.bookings,
			stay(string(rune('A'+i)), fixedToday, fixedToday.AddDate(0, 0, 1), 1000, 1000, 0))
	}
	return repo
}

func TestLowOccupancyAlert(t *testing.T) {
	tests := []struct {
		name     string
		occupied int
		fires    bool
	}{
		{"well below threshold", 2, true},
		{"just below threshold", 5, true},
		{"exactly at threshold", 6, false},
		{"above threshold", 8, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newService(occupyRooms(tt.occupied), &fakeExpenseRepo{}, &fakeFeedbackRepo{})

			alert, err := svc.LowOccupancyAlert(context.Background())
			require.NoError(t, err)

			if !tt.fires {
				assert.Nil(t, alert)
				return
			}
			require.NotNil(t, alert)
			assert.InDelta(t, float64(tt.occupied)*10, alert.Occupancy, 0.001)
			assert.Equal(t, 60.0, alert.Threshold)
			assert.Equal(t, 10-tt.occupied, alert.AvailableRooms)
			assert.Contains(t, alert.Message, "Low Occupancy Alert")
			assert.Contains(t, alert.Message, "80.0%")
		})
	}
}

func TestHighExpenseAlert(t *testing.T) {
	tests := []struct {
		name    string
		amounts []float64
		fires   bool
	}{
		{"no expenses", nil, false},
		{"below threshold", []float64{2000, 1500}, false},
		{"exactly at threshold", []float64{5000}, false},
		{"above threshold", []float64{3000, 2500}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expenses := &fakeExpenseRepo{}
			var total float64
			for i, amount := range tt.amounts {
				expenses.expenses = append(expenses.expenses, models.Expense{
					ID: string(rune('A' + i)), Date: fixedToday, Amount: amount,
				})
				total += amount
			}
			svc := newService(&fakeBookingRepo{}, expenses, &fakeFeedbackRepo{})

			alert, err := svc.HighExpenseAlert(context.Background())
			require.NoError(t, err)

			if !tt.fires {
				assert.Nil(t, alert)
				return
			}
			require.NotNil(t, alert)
			assert.InDelta(t, total, alert.TotalExpenses, 0.001)
			assert.Equal(t, 5000.0, alert.Threshold)
			assert.Contains(t, alert.Message, "High Expense Alert")
		})
	}
}

func TestHighExpenseAlertIgnoresOtherDays(t *testing.T) {
	expenses := &fakeExpenseRepo{
		expenses: []models.Expense{
			{ID: "EX-1", Date: fixedToday.AddDate(0, 0, -1), Amount: 99999},
			{ID: "EX-2", Date: fixedToday, Amount: 100},
		},
	}
	svc := newService(&fakeBookingRepo{}, expenses, &fakeFeedbackRepo{})

	alert, err := svc.HighExpenseAlert(context.Background())
	require.NoError(t, err)
	assert.Nil(t, alert)
}
