package models_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Dramaboy123/dramabot9531/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBookingActiveOn(t *testing.T) {
	booking := models.Booking{
		CheckInDate:  date(2025, 1, 10),
		CheckOutDate: date(2025, 1, 13),
	}

	tests := []struct {
		name   string
		on     time.Time
		active bool
	}{
		{"day before check-in", date(2025, 1, 9), false},
		{"check-in day", date(2025, 1, 10), true},
		{"mid stay", date(2025, 1, 11), true},
		{"last night", date(2025, 1, 12), true},
		{"check-out day", date(2025, 1, 13), false},
		{"day after check-out", date(2025, 1, 14), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.active, booking.ActiveOn(tt.on))
		})
	}
}

func TestBookingActiveOnComparesCalendarDates(t *testing.T) {
	// Stay dates come out of the sheet codec as UTC midnights; query dates
	// are built in the server's zone. The interval must not shift with the
	// zone offset.
	booking := models.Booking{
		CheckInDate:  date(2025, 1, 10),
		CheckOutDate: date(2025, 1, 13),
	}

	zones := []*time.Location{
		time.FixedZone("IST", 5*3600+30*60),
		time.FixedZone("UTC-7", -7*3600),
	}

	for _, zone := range zones {
		t.Run(zone.String(), func(t *testing.T) {
			localDay := func(d int) time.Time {
				return time.Date(2025, 1, d, 0, 0, 0, 0, zone)
			}
			assert.False(t, booking.ActiveOn(localDay(9)))
			assert.True(t, booking.ActiveOn(localDay(10)))
			assert.True(t, booking.ActiveOn(localDay(12)))
			assert.False(t, booking.ActiveOn(localDay(13)))
		})
	}
}

func TestBookingActiveOnCheckedOutEarly(t *testing.T) {
	booking := models.Booking{
		CheckInDate:  date(2025, 1, 10),
		CheckOutDate: date(2025, 1, 13),
		CheckedOut:   true,
	}
	assert.False(t, booking.ActiveOn(date(2025, 1, 11)))
}

func TestBookingNights(t *testing.T) {
	booking := models.Booking{
		CheckInDate:  date(2025, 1, 10),
		CheckOutDate: date(2025, 1, 13),
	}
	assert.Equal(t, 3, booking.Nights())
}

func TestRecalculateBalance(t *testing.T) {
	tests := []struct {
		name    string
		total   float64
		advance float64
		balance float64
		status  models.PaymentStatus
	}{
		{"nothing paid", 3000, 0, 3000, models.PaymentPending},
		{"partially paid", 3000, 1000, 2000, models.PaymentPartial},
		{"fully paid", 3000, 3000, 0, models.PaymentPaid},
		{"overpaid", 3000, 3500, -500, models.PaymentPaid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := models.Booking{Total: tt.total, Advance: tt.advance}
			b.RecalculateBalance()
			assert.Equal(t, tt.balance, b.Balance)
			assert.Equal(t, tt.status, b.PaymentStatus)
		})
	}
}

func TestParseGuestCategory(t *testing.T) {
	assert.Equal(t, models.CategoryLocal, models.ParseGuestCategory("LOCAL"))
	assert.Equal(t, models.CategoryWalkIn, models.ParseGuestCategory("WALK_IN"))
	assert.Equal(t, models.CategoryUnknown, models.ParseGuestCategory(""))
	assert.Equal(t, models.CategoryUnknown, models.ParseGuestCategory("local"))
	assert.Equal(t, models.CategoryUnknown, models.ParseGuestCategory("VIP"))
}

func TestParsePaymentStatus(t *testing.T) {
	assert.Equal(t, models.PaymentPaid, models.ParsePaymentStatus("PAID"))
	assert.Equal(t, models.PaymentRefunded, models.ParsePaymentStatus("REFUNDED"))
	assert.Equal(t, models.PaymentUnknown, models.ParsePaymentStatus(""))
	assert.Equal(t, models.PaymentUnknown, models.ParsePaymentStatus("paid"))
}

func TestParseRoomStatus(t *testing.T) {
	assert.Equal(t, models.RoomAvailable, models.ParseRoomStatus("AVAILABLE"))
	assert.Equal(t, models.RoomCleaning, models.ParseRoomStatus("CLEANING"))
	assert.Equal(t, models.RoomUnknown, models.ParseRoomStatus(""))
}

func TestDistributionTallyAdd(t *testing.T) {
	var tally models.DistributionTally
	tally.Add("TOURIST")
	tally.Add("LOCAL")
	tally.Add("TOURIST")

	assert.Equal(t, 2, tally.Counts["TOURIST"])
	assert.Equal(t, []string{"TOURIST", "LOCAL"}, tally.Order)
}
