package bookingRepo

import (
	"context"
	"time"

	"github.com/Dramaboy123/dramabot9531/models"
)

// Repository manages booking records in the register spreadsheet.
type Repository interface {
	Add(ctx context.Context, booking models.Booking) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	GetAll(ctx context.Context) ([]models.Booking, error)
	// GetActive returns bookings whose stay interval contains the given date
	// and which have not been checked out.
	GetActive(ctx context.Context, date time.Time) ([]models.Booking, error)
	TodaysCheckIns(ctx context.Context) ([]models.Booking, error)
	TodaysCheckOuts(ctx context.Context) ([]models.Booking, error)
	SetCheckedIn(ctx context.Context, id string) error
	SetCheckedOut(ctx context.Context, id string) error
}

type sheetsBookingRepo struct{}

// NewSheetsBookingRepo returns a Repository backed by the Bookings worksheet.
func NewSheetsBookingRepo() Repository {
	return &sheetsBookingRepo{}
}
