package models

import "time"

// RoomStatus describes the current housekeeping state of a room.
type RoomStatus string

const (
	RoomAvailable   RoomStatus = "AVAILABLE"
	RoomOccupied    RoomStatus = "OCCUPIED"
	RoomCleaning    RoomStatus = "CLEANING"
	RoomMaintenance RoomStatus = "MAINTENANCE"
	RoomReserved    RoomStatus = "RESERVED"
	RoomUnknown     RoomStatus = "UNKNOWN"
)

// ParseRoomStatus maps a raw spreadsheet value to a room status.
// Unrecognised values become RoomUnknown.
func ParseRoomStatus(raw string) RoomStatus {
	switch RoomStatus(raw) {
	case RoomAvailable, RoomOccupied, RoomCleaning, RoomMaintenance, RoomReserved:
		return RoomStatus(raw)
	default:
		return RoomUnknown
	}
}

// Room represents a physical room at the hotel.
type Room struct {
	Number       string     `json:"number"`
	Status       RoomStatus `json:"status"`
	Floor        int        `json:"floor"`
	Type         string     `json:"type"` // Standard, Deluxe, Suite
	MaxOccupancy int        `json:"max_occupancy"`
	LastCleaned  time.Time  `json:"last_cleaned,omitempty"`
	Notes        string     `json:"notes,omitempty"`
}
