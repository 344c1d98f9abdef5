package feedbackRepo

import (
	"context"
	"fmt"
	"sort"

	"github.com/Dramaboy123/dramabot9531/database"
	"github.com/Dramaboy123/dramabot9531/models"
	"github.com/Dramaboy123/dramabot9531/utils"
)

// Feedback worksheet column order.
const (
	colID = iota
	colBookingID
	colGuestName
	colRating
	colReview
	colSource
	colDate
	colResponded
	colResponse
	colPublic
)

// Repository manages guest feedback records in the register spreadsheet.
type Repository interface {
	Add(ctx context.Context, feedback models.Feedback) error
	// Recent returns up to limit feedback entries, most recent first.
	Recent(ctx context.Context, limit int) ([]models.Feedback, error)
}

type sheetsFeedbackRepo struct{}

// NewSheetsFeedbackRepo returns a Repository backed by the Feedback worksheet.
func NewSheetsFeedbackRepo() Repository {
	return &sheetsFeedbackRepo{}
}

// Add appends a new feedback row.
func (r *sheetsFeedbackRepo) Add(ctx context.Context, feedback models.Feedback) error {
	row := []interface{}{
		feedback.ID,
		feedback.BookingID,
		feedback.GuestName,
		feedback.Rating,
		feedback.Review,
		feedback.Source,
		feedback.Date.Format(utils.DateLayout),
		feedback.Responded,
		feedback.Response,
		feedback.Public,
	}
	if err := database.AppendRow(ctx, database.FeedbackSheet, row); err != nil {
		return utils.NewSourceError("feedback.add", err)
	}
	return nil
}

// Recent returns up to limit feedback entries sorted most recent first.
func (r *sheetsFeedbackRepo) Recent(ctx context.Context, limit int) ([]models.Feedback, error) {
	rows, err := database.ReadRows(ctx, database.FeedbackSheet)
	if err != nil {
		return nil, utils.NewSourceError("feedback.recent", err)
	}

	feedback := make([]models.Feedback, 0, len(rows))
	for _, row := range rows {
		f, err := rowToFeedback(row)
		if err != nil {
			return nil, utils.NewSourceError("feedback.recent", err)
		}
		feedback = append(feedback, f)
	}

	sort.SliceStable(feedback, func(i, j int) bool {
		return feedback[i].Date.After(feedback[j].Date)
	})

	if limit > 0 && len(feedback) > limit {
		feedback = feedback[:limit]
	}
	return feedback, nil
}

func rowToFeedback(row []interface{}) (models.Feedback, error) {
	id := database.CellString(row, colID)
	if id == "" {
		return models.Feedback{}, fmt.Errorf("row has no feedback ID")
	}

	date, err := utils.ParseDate(database.CellString(row, colDate))
	if err != nil {
		return models.Feedback{}, fmt.Errorf("feedback %s: bad date: %w", id, err)
	}
	rating, err := database.CellInt(row, colRating)
	if err != nil {
		return models.Feedback{}, fmt.Errorf("feedback %s: %w", id, err)
	}

	return models.Feedback{
		ID:        id,
		BookingID: database.CellString(row, colBookingID),
		GuestName: database.CellString(row, colGuestName),
		Rating:    rating,
		Review:    database.CellString(row, colReview),
		Source:    database.CellString(row, colSource),
		Date:      date,
		Responded: database.CellBool(row, colResponded),
		Response:  database.CellString(row, colResponse),
		Public:    database.CellBool(row, colPublic),
	}, nil
}
