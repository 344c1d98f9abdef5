package models

import "time"

// Feedback represents a guest review linked to a booking.
type Feedback struct {
	ID        string    `json:"id"`
	BookingID string    `json:"booking_id"`
	GuestName string    `json:"guest_name"`
	Rating    int       `json:"rating"` // 1-5 stars
	Review    string    `json:"review"`
	Source    string    `json:"source"` // Direct, Google, Instagram, WhatsApp
	Date      time.Time `json:"date"`
	Responded bool      `json:"responded"`
	Response  string    `json:"response,omitempty"`
	Public    bool      `json:"public"`
}
