package booking

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Dramaboy123/dramabot9531/models"
	"github.com/Dramaboy123/dramabot9531/utils"
)

// CreateBooking validates the input, derives the financial fields, appends the
// booking to the register, and reserves the room.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, input CreateBookingInput) (*models.Booking, error) {
	if input.GuestName == "" {
		return nil, fmt.Errorf("guest name is required")
	}
	if input.RoomNumber == "" {
		return nil, fmt.Errorf("room number is required")
	}

	checkIn := utils.Midnight(input.CheckInDate)
	checkOut := utils.Midnight(input.CheckOutDate)
	if !checkOut.After(checkIn) {
		return nil, fmt.Errorf("check-out date must be after check-in date")
	}

	category := models.ParseGuestCategory(input.Category)
	rate := input.Rate
	if rate == 0 {
		rate = s.Rates.For(category)
	}
	guests := input.NumberOfGuests
	if guests <= 0 {
		guests = 1
	}

	booking := models.Booking{
		ID:              utils.GenerateBookingID(),
		GuestName:       input.GuestName,
		GuestPhone:      input.GuestPhone,
		GuestIDNumber:   input.GuestIDNumber,
		Category:        category,
		RoomNumber:      input.RoomNumber,
		CheckInDate:     checkIn,
		CheckOutDate:    checkOut,
		NumberOfGuests:  guests,
		Rate:            rate,
		Advance:         input.Advance,
		Source:          input.Source,
		SpecialRequests: input.SpecialRequests,
		CreatedAt:       time.Now(),
	}
	booking.Total = rate * float64(booking.Nights())
	booking.RecalculateBalance()

	if err := s.Bookings.Add(ctx, booking); err != nil {
		return nil, fmt.Errorf("creating booking: %w", err)
	}

	// Room reservation is best effort: the booking row is already the source
	// of truth for occupancy.
	if err := s.Rooms.UpdateStatus(ctx, booking.RoomNumber, models.RoomReserved); err != nil {
		utils.GetLogger().Warn("could not mark room reserved",
			zap.String("room", booking.RoomNumber), zap.Error(err))
	}

	utils.GetLogger().Info("booking created",
		zap.String("booking_id", booking.ID), zap.String("room", booking.RoomNumber))
	return &booking, nil
}

// CheckInGuest flags the booking as checked in and marks the room occupied.
func (s *DefaultBookingService) CheckInGuest(ctx context.Context, bookingID string) error {
	b, err := s.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		return fmt.Errorf("check-in %s: %w", bookingID, err)
	}
	if b.CheckedIn {
		return fmt.Errorf("booking %s is already checked in", bookingID)
	}

	if err := s.Bookings.SetCheckedIn(ctx, bookingID); err != nil {
		return fmt.Errorf("check-in %s: %w", bookingID, err)
	}
	if err := s.Rooms.UpdateStatus(ctx, b.RoomNumber, models.RoomOccupied); err != nil {
		utils.GetLogger().Warn("could not mark room occupied",
			zap.String("room", b.RoomNumber), zap.Error(err))
	}
	return nil
}

// CheckOutGuest flags the booking as checked out and sends the room to
// cleaning.
func (s *DefaultBookingService) CheckOutGuest(ctx context.Context, bookingID string) error {
	b, err := s.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		return fmt.Errorf("check-out %s: %w", bookingID, err)
	}
	if b.CheckedOut {
		return fmt.Errorf("booking %s is already checked out", bookingID)
	}

	if err := s.Bookings.SetCheckedOut(ctx, bookingID); err != nil {
		return fmt.Errorf("check-out %s: %w", bookingID, err)
	}
	if err := s.Rooms.UpdateStatus(ctx, b.RoomNumber, models.RoomCleaning); err != nil {
		utils.GetLogger().Warn("could not mark room for cleaning",
			zap.String("room", b.RoomNumber), zap.Error(err))
	}
	return nil
}

// AvailableRooms lists rooms that are marked available and not occupied by a
// booking active on the given date.
func (s *DefaultBookingService) AvailableRooms(ctx context.Context, date time.Time) ([]models.Room, error) {
	rooms, err := s.Rooms.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("available rooms: %w", err)
	}
	active, err := s.Bookings.GetActive(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("available rooms: %w", err)
	}

	occupied := make(map[string]bool, len(active))
	for _, b := range active {
		occupied[b.RoomNumber] = true
	}

	var available []models.Room
	for _, room := range rooms {
		if room.Status == models.RoomAvailable && !occupied[room.Number] {
			available = append(available, room)
		}
	}
	return available, nil
}
