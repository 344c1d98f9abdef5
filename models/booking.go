package models

import "time"

// GuestCategory classifies who the booking was made for.
type GuestCategory string

const (
	CategoryLocal     GuestCategory = "LOCAL"
	CategoryTourist   GuestCategory = "TOURIST"
	CategoryWalkIn    GuestCategory = "WALK_IN"
	CategoryRepeat    GuestCategory = "REPEAT"
	CategoryCorporate GuestCategory = "CORPORATE"
	CategoryUnknown   GuestCategory = "UNKNOWN"
)

// ParseGuestCategory maps a raw spreadsheet value to a guest category. The
// mapping is total: anything unrecognised becomes CategoryUnknown.
func ParseGuestCategory(raw string) GuestCategory {
	switch GuestCategory(raw) {
	case CategoryLocal, CategoryTourist, CategoryWalkIn, CategoryRepeat, CategoryCorporate:
		return GuestCategory(raw)
	default:
		return CategoryUnknown
	}
}

// PaymentStatus tracks how much of a booking has been settled.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "PENDING"
	PaymentPartial  PaymentStatus = "PARTIAL"
	PaymentPaid     PaymentStatus = "PAID"
	PaymentRefunded PaymentStatus = "REFUNDED"
	PaymentUnknown  PaymentStatus = "UNKNOWN"
)

// ParsePaymentStatus maps a raw spreadsheet value to a payment status.
// Unrecognised values become PaymentUnknown.
func ParsePaymentStatus(raw string) PaymentStatus {
	switch PaymentStatus(raw) {
	case PaymentPending, PaymentPartial, PaymentPaid, PaymentRefunded:
		return PaymentStatus(raw)
	default:
		return PaymentUnknown
	}
}

// Booking represents a guest booking record.
type Booking struct {
	ID              string        `json:"id"`
	GuestName       string        `json:"guest_name"`
	GuestPhone      string        `json:"guest_phone"`
	GuestIDNumber   string        `json:"guest_id_number"`
	Category        GuestCategory `json:"category"`
	RoomNumber      string        `json:"room_number"`
	CheckInDate     time.Time     `json:"check_in_date"`
	CheckOutDate    time.Time     `json:"check_out_date"` // exclusive end of stay
	NumberOfGuests  int           `json:"number_of_guests"`
	Rate            float64       `json:"rate"`
	Total           float64       `json:"total"`
	Advance         float64       `json:"advance"`
	Balance         float64       `json:"balance"`
	PaymentStatus   PaymentStatus `json:"payment_status"`
	Source          string        `json:"source"`
	SpecialRequests string        `json:"special_requests,omitempty"`
	CheckedIn       bool          `json:"checked_in"`
	CheckedOut      bool          `json:"checked_out"`
	CreatedAt       time.Time     `json:"created_at"`
}

// Nights returns the number of nights covered by the stay.
func (b Booking) Nights() int {
	return int(b.CheckOutDate.Sub(b.CheckInDate).Hours() / 24)
}

// calendarDay pins a timestamp's calendar date to UTC. Stay dates parsed from
// the sheet carry UTC while query dates arrive in the server's zone; comparing
// the raw instants would shift the stay interval by the zone offset.
func calendarDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ActiveOn reports whether the booking occupies a room on the given date.
// The stay interval is half-open: the check-out date itself is not occupied.
// A booking that has been checked out no longer counts as active. Only the
// calendar dates are compared, never the underlying instants.
func (b Booking) ActiveOn(date time.Time) bool {
	if b.CheckedOut {
		return false
	}
	d := calendarDay(date)
	return !d.Before(calendarDay(b.CheckInDate)) && d.Before(calendarDay(b.CheckOutDate))
}

// RecalculateBalance refreshes the balance from total and advance, deriving
// the payment status from the outcome.
func (b *Booking) RecalculateBalance() {
	b.Balance = b.Total - b.Advance
	switch {
	case b.Balance <= 0:
		b.PaymentStatus = PaymentPaid
	case b.Advance > 0:
		b.PaymentStatus = PaymentPartial
	default:
		b.PaymentStatus = PaymentPending
	}
}
