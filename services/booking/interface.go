package booking

import (
	"context"
	"time"

	"github.com/Dramaboy123/dramabot9531/config"
	bookingRepo "github.com/Dramaboy123/dramabot9531/database/repository/booking"
	expenseRepo "github.com/Dramaboy123/dramabot9531/database/repository/expense"
	feedbackRepo "github.com/Dramaboy123/dramabot9531/database/repository/feedback"
	roomRepo "github.com/Dramaboy123/dramabot9531/database/repository/room"
	"github.com/Dramaboy123/dramabot9531/models"
)

// CreateBookingInput captures what the front desk enters for a new booking.
type CreateBookingInput struct {
	GuestName       string    `json:"guest_name"`
	GuestPhone      string    `json:"guest_phone"`
	GuestIDNumber   string    `json:"guest_id_number"`
	Category        string    `json:"category"`
	RoomNumber      string    `json:"room_number"`
	CheckInDate     time.Time `json:"check_in_date"`
	CheckOutDate    time.Time `json:"check_out_date"`
	NumberOfGuests  int       `json:"number_of_guests"`
	Rate            float64   `json:"rate"` // zero means the category rate applies
	Advance         float64   `json:"advance"`
	Source          string    `json:"source"`
	SpecialRequests string    `json:"special_requests"`
}

// RecordExpenseInput captures a new expense entry.
type RecordExpenseInput struct {
	Date          time.Time `json:"date"`
	Category      string    `json:"category"`
	Description   string    `json:"description"`
	Amount        float64   `json:"amount"`
	PaidTo        string    `json:"paid_to"`
	PaymentMethod string    `json:"payment_method"`
	ReceiptNumber string    `json:"receipt_number"`
	Notes         string    `json:"notes"`
}

// RecordFeedbackInput captures a new guest review.
type RecordFeedbackInput struct {
	BookingID string    `json:"booking_id"`
	GuestName string    `json:"guest_name"`
	Rating    int       `json:"rating"`
	Review    string    `json:"review"`
	Source    string    `json:"source"`
	Date      time.Time `json:"date"`
	Public    bool      `json:"public"`
}

// Rates holds the configured nightly rates per guest category.
type Rates struct {
	Local    float64
	Standard float64
	WalkIn   float64
}

// RatesFromConfig lifts the rate table out of the app configuration.
func RatesFromConfig(cfg config.Config) Rates {
	return Rates{Local: cfg.LocalRate, Standard: cfg.StandardRate, WalkIn: cfg.WalkInRate}
}

// For returns the nightly rate for a guest category. Repeat guests get the
// local rate; everything unrecognised falls back to the standard rate.
func (r Rates) For(category models.GuestCategory) float64 {
	switch category {
	case models.CategoryLocal, models.CategoryRepeat:
		return r.Local
	case models.CategoryWalkIn:
		return r.WalkIn
	default:
		return r.Standard
	}
}

// Service manages bookings, room assignments, and the expense and feedback
// registers.
type Service interface {
	CreateBooking(ctx context.Context, input CreateBookingInput) (*models.Booking, error)
	CheckInGuest(ctx context.Context, bookingID string) error
	CheckOutGuest(ctx context.Context, bookingID string) error
	AvailableRooms(ctx context.Context, date time.Time) ([]models.Room, error)
	RecordExpense(ctx context.Context, input RecordExpenseInput) (*models.Expense, error)
	RecordFeedback(ctx context.Context, input RecordFeedbackInput) (*models.Feedback, error)
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Bookings bookingRepo.Repository
	Rooms    roomRepo.Repository
	Expenses expenseRepo.Repository
	Feedback feedbackRepo.Repository
	Rates    Rates
}
