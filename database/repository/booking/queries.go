package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/Dramaboy123/dramabot9531/database"
	"github.com/Dramaboy123/dramabot9531/models"
	"github.com/Dramaboy123/dramabot9531/utils"
)

// GetAll returns every booking in the register, in sheet order.
func (r *sheetsBookingRepo) GetAll(ctx context.Context) ([]models.Booking, error) {
	rows, err := database.ReadRows(ctx, database.BookingsSheet)
	if err != nil {
		return nil, utils.NewSourceError("bookings.all", err)
	}

	bookings := make([]models.Booking, 0, len(rows))
	for _, row := range rows {
		b, err := rowToBooking(row)
		if err != nil {
			return nil, utils.NewSourceError("bookings.all", err)
		}
		bookings = append(bookings, b)
	}
	return bookings, nil
}

// GetByID returns a single booking by its identifier.
func (r *sheetsBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	bookings, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range bookings {
		if bookings[i].ID == id {
			return &bookings[i], nil
		}
	}
	return nil, fmt.Errorf("booking %s not found", id)
}

// GetActive returns bookings occupying a room on the given date.
func (r *sheetsBookingRepo) GetActive(ctx context.Context, date time.Time) ([]models.Booking, error) {
	bookings, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	var active []models.Booking
	for _, b := range bookings {
		if b.ActiveOn(utils.Midnight(date)) {
			active = append(active, b)
		}
	}
	return active, nil
}

// TodaysCheckIns returns bookings scheduled to arrive today that have not yet
// checked in.
func (r *sheetsBookingRepo) TodaysCheckIns(ctx context.Context) ([]models.Booking, error) {
	bookings, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	today := utils.Today()
	var arrivals []models.Booking
	for _, b := range bookings {
		if utils.SameDate(b.CheckInDate, today) && !b.CheckedIn {
			arrivals = append(arrivals, b)
		}
	}
	return arrivals, nil
}

// TodaysCheckOuts returns bookings scheduled to depart today that have not yet
// checked out.
func (r *sheetsBookingRepo) TodaysCheckOuts(ctx context.Context) ([]models.Booking, error) {
	bookings, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	today := utils.Today()
	var departures []models.Booking
	for _, b := range bookings {
		if utils.SameDate(b.CheckOutDate, today) && !b.CheckedOut {
			departures = append(departures, b)
		}
	}
	return departures, nil
}
