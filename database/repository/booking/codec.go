package bookingRepo

import (
	"fmt"
	"time"

	"github.com/Dramaboy123/dramabot9531/database"
	"github.com/Dramaboy123/dramabot9531/models"
	"github.com/Dramaboy123/dramabot9531/utils"
)

// Bookings worksheet column order.
const (
	colID = iota
	colGuestName
	colPhone
	colIDNumber
	colCategory
	colRoomNumber
	colCheckIn
	colCheckOut
	colNights
	colGuests
	colRate
	colTotal
	colAdvance
	colBalance
	colPaymentStatus
	colSource
	colSpecialRequests
	colCheckedIn
	colCheckedOut
	colCreatedAt
)

// Column letters for the flag cells updated on check-in and check-out.
const (
	checkedInColumn  = "R"
	checkedOutColumn = "S"
)

func rowToBooking(row []interface{}) (models.Booking, error) {
	id := database.CellString(row, colID)
	if id == "" {
		return models.Booking{}, fmt.Errorf("row has no booking ID")
	}

	checkIn, err := utils.ParseDate(database.CellString(row, colCheckIn))
	if err != nil {
		return models.Booking{}, fmt.Errorf("booking %s: bad check-in date: %w", id, err)
	}
	checkOut, err := utils.ParseDate(database.CellString(row, colCheckOut))
	if err != nil {
		return models.Booking{}, fmt.Errorf("booking %s: bad check-out date: %w", id, err)
	}

	guests, err := database.CellInt(row, colGuests)
	if err != nil {
		return models.Booking{}, fmt.Errorf("booking %s: %w", id, err)
	}
	rate, err := database.CellFloat(row, colRate)
	if err != nil {
		return models.Booking{}, fmt.Errorf("booking %s: %w", id, err)
	}
	total, err := database.CellFloat(row, colTotal)
	if err != nil {
		return models.Booking{}, fmt.Errorf("booking %s: %w", id, err)
	}
	advance, err := database.CellFloat(row, colAdvance)
	if err != nil {
		return models.Booking{}, fmt.Errorf("booking %s: %w", id, err)
	}
	balance, err := database.CellFloat(row, colBalance)
	if err != nil {
		return models.Booking{}, fmt.Errorf("booking %s: %w", id, err)
	}

	createdAt, _ := time.Parse(time.RFC3339, database.CellString(row, colCreatedAt))

	return models.Booking{
		ID:              id,
		GuestName:       database.CellString(row, colGuestName),
		GuestPhone:      database.CellString(row, colPhone),
		GuestIDNumber:   database.CellString(row, colIDNumber),
		Category:        models.ParseGuestCategory(database.CellString(row, colCategory)),
		RoomNumber:      database.CellString(row, colRoomNumber),
		CheckInDate:     checkIn,
		CheckOutDate:    checkOut,
		NumberOfGuests:  guests,
		Rate:            rate,
		Total:           total,
		Advance:         advance,
		Balance:         balance,
		PaymentStatus:   models.ParsePaymentStatus(database.CellString(row, colPaymentStatus)),
		Source:          database.CellString(row, colSource),
		SpecialRequests: database.CellString(row, colSpecialRequests),
		CheckedIn:       database.CellBool(row, colCheckedIn),
		CheckedOut:      database.CellBool(row, colCheckedOut),
		CreatedAt:       createdAt,
	}, nil
}

func bookingToRow(b models.Booking) []interface{} {
	return []interface{}{
		b.ID,
		b.GuestName,
		b.GuestPhone,
		b.GuestIDNumber,
		string(b.Category),
		b.RoomNumber,
		b.CheckInDate.Format(utils.DateLayout),
		b.CheckOutDate.Format(utils.DateLayout),
		b.Nights(),
		b.NumberOfGuests,
		b.Rate,
		b.Total,
		b.Advance,
		b.Balance,
		string(b.PaymentStatus),
		b.Source,
		b.SpecialRequests,
		b.CheckedIn,
		b.CheckedOut,
		b.CreatedAt.Format(time.RFC3339),
	}
}
