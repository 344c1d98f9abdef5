package roomRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/Dramaboy123/dramabot9531/database"
	"github.com/Dramaboy123/dramabot9531/models"
	"github.com/Dramaboy123/dramabot9531/utils"
)

// Rooms worksheet column order.
const (
	colNumber = iota
	colStatus
	colFloor
	colType
	colMaxOccupancy
	colLastCleaned
	colNotes
)

// statusColumn is the cell updated by UpdateStatus.
const statusColumn = "B"

// Repository manages room records in the register spreadsheet.
type Repository interface {
	GetAll(ctx context.Context) ([]models.Room, error)
	UpdateStatus(ctx context.Context, roomNumber string, status models.RoomStatus) error
}

type sheetsRoomRepo struct{}

// NewSheetsRoomRepo returns a Repository backed by the Rooms worksheet.
func NewSheetsRoomRepo() Repository {
	return &sheetsRoomRepo{}
}

// GetAll returns every room in the register, in sheet order.
func (r *sheetsRoomRepo) GetAll(ctx context.Context) ([]models.Room, error) {
	rows, err := database.ReadRows(ctx, database.RoomsSheet)
	if err != nil {
		return nil, utils.NewSourceError("rooms.all", err)
	}

	rooms := make([]models.Room, 0, len(rows))
	for _, row := range rows {
		room, err := rowToRoom(row)
		if err != nil {
			return nil, utils.NewSourceError("rooms.all", err)
		}
		rooms = append(rooms, room)
	}
	return rooms, nil
}

// UpdateStatus sets the housekeeping status of one room.
func (r *sheetsRoomRepo) UpdateStatus(ctx context.Context, roomNumber string, status models.RoomStatus) error {
	rows, err := database.ReadRows(ctx, database.RoomsSheet)
	if err != nil {
		return utils.NewSourceError("rooms.update", err)
	}

	for i, row := range rows {
		if database.CellString(row, colNumber) == roomNumber {
			if err := database.UpdateCell(ctx, database.RoomsSheet, statusColumn, i, string(status)); err != nil {
				return utils.NewSourceError("rooms.update", err)
			}
			return nil
		}
	}
	return fmt.Errorf("room %s not found", roomNumber)
}

func rowToRoom(row []interface{}) (models.Room, error) {
	number := database.CellString(row, colNumber)
	if number == "" {
		return models.Room{}, fmt.Errorf("row has no room number")
	}

	floor, err := database.CellInt(row, colFloor)
	if err != nil {
		return models.Room{}, fmt.Errorf("room %s: %w", number, err)
	}
	maxOccupancy, err := database.CellInt(row, colMaxOccupancy)
	if err != nil {
		return models.Room{}, fmt.Errorf("room %s: %w", number, err)
	}

	lastCleaned, _ := time.Parse(time.RFC3339, database.CellString(row, colLastCleaned))

	return models.Room{
		Number:       number,
		Status:       models.ParseRoomStatus(database.CellString(row, colStatus)),
		Floor:        floor,
		Type:         database.CellString(row, colType),
		MaxOccupancy: maxOccupancy,
		LastCleaned:  lastCleaned,
		Notes:        database.CellString(row, colNotes),
	}, nil
}
