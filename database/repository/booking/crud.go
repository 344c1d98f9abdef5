package bookingRepo

import (
	"context"
	"fmt"

	"github.com/Dramaboy123/dramabot9531/database"
	"github.com/Dramaboy123/dramabot9531/models"
	"github.com/Dramaboy123/dramabot9531/utils"
)

// Add appends a new booking row to the Bookings worksheet.
func (r *sheetsBookingRepo) Add(ctx context.Context, booking models.Booking) error {
	if err := database.AppendRow(ctx, database.BookingsSheet, bookingToRow(booking)); err != nil {
		return utils.NewSourceError("bookings.add", err)
	}
	return nil
}

// SetCheckedIn marks the booking's checked-in flag.
func (r *sheetsBookingRepo) SetCheckedIn(ctx context.Context, id string) error {
	return r.setFlag(ctx, id, checkedInColumn)
}

// SetCheckedOut marks the booking's checked-out flag.
func (r *sheetsBookingRepo) SetCheckedOut(ctx context.Context, id string) error {
	return r.setFlag(ctx, id, checkedOutColumn)
}

func (r *sheetsBookingRepo) setFlag(ctx context.Context, id, column string) error {
	rowIndex, err := r.findRowIndex(ctx, id)
	if err != nil {
		return err
	}
	if err := database.UpdateCell(ctx, database.BookingsSheet, column, rowIndex, true); err != nil {
		return utils.NewSourceError("bookings.update", err)
	}
	return nil
}

// findRowIndex locates the zero-based data row holding the given booking ID.
func (r *sheetsBookingRepo) findRowIndex(ctx context.Context, id string) (int, error) {
	rows, err := database.ReadRows(ctx, database.BookingsSheet)
	if err != nil {
		return 0, utils.NewSourceError("bookings.find", err)
	}
	for i, row := range rows {
		if database.CellString(row, colID) == id {
			return i, nil
		}
	}
	return 0, fmt.Errorf("booking %s not found", id)
}
