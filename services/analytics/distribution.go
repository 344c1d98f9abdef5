package analytics

import (
	"context"
	"fmt"

	"github.com/Dramaboy123/dramabot9531/models"
)

// Distribution tallies bookings by a caller-supplied classification. Bookings
// whose classification comes back empty land in the UNKNOWN bucket rather
// than being dropped.
func Distribution(bookings []models.Booking, keyFn func(models.Booking) string) *models.DistributionTally {
	tally := &models.DistributionTally{}
	for _, b := range bookings {
		key := keyFn(b)
		if key == "" {
			key = string(models.CategoryUnknown)
		}
		tally.Add(key)
	}
	return tally
}

// SummarizePendingPayments projects the bookings carrying an outstanding
// balance. One pass, store order preserved; callers wanting a different order
// sort the result themselves.
func SummarizePendingPayments(bookings []models.Booking) *models.PendingPaymentsSummary {
	summary := &models.PendingPaymentsSummary{Bookings: []models.PendingPayment{}}
	for _, b := range bookings {
		if b.Balance <= 0 {
			continue
		}
		summary.Bookings = append(summary.Bookings, models.PendingPayment{
			BookingID: b.ID,
			GuestName: b.GuestName,
			Balance:   b.Balance,
		})
		summary.TotalAmount += b.Balance
	}
	summary.Count = len(summary.Bookings)
	return summary
}

// GuestCategoryDistribution tallies today's active bookings by guest category.
func (s *DefaultAnalyticsService) GuestCategoryDistribution(ctx context.Context) (*models.DistributionTally, error) {
	active, err := s.Bookings.GetActive(ctx, s.today())
	if err != nil {
		return nil, fmt.Errorf("guest category distribution: %w", err)
	}
	return Distribution(active, func(b models.Booking) string {
		return string(b.Category)
	}), nil
}

// BookingSourceDistribution tallies today's active bookings by booking source.
func (s *DefaultAnalyticsService) BookingSourceDistribution(ctx context.Context) (*models.DistributionTally, error) {
	active, err := s.Bookings.GetActive(ctx, s.today())
	if err != nil {
		return nil, fmt.Errorf("booking source distribution: %w", err)
	}
	return Distribution(active, func(b models.Booking) string {
		return b.Source
	}), nil
}

// PendingPayments reports outstanding balances across today's active bookings.
func (s *DefaultAnalyticsService) PendingPayments(ctx context.Context) (*models.PendingPaymentsSummary, error) {
	active, err := s.Bookings.GetActive(ctx, s.today())
	if err != nil {
		return nil, fmt.Errorf("pending payments: %w", err)
	}
	return SummarizePendingPayments(active), nil
}
