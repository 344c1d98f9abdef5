package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/Dramaboy123/dramabot9531/config"
)

// Worksheet titles inside the register spreadsheet.
const (
	BookingsSheet = "Bookings"
	RoomsSheet    = "Rooms"
	ExpensesSheet = "Expenses"
	FeedbackSheet = "Feedback"
)

var sheetHeaders = map[string][]interface{}{
	BookingsSheet: {
		"Booking ID", "Guest Name", "Phone", "ID Number", "Category",
		"Room Number", "Check-in", "Check-out", "Nights", "Guests",
		"Rate", "Total", "Advance", "Balance", "Payment Status",
		"Source", "Special Requests", "Checked In", "Checked Out", "Created At",
	},
	RoomsSheet: {
		"Room Number", "Status", "Floor", "Type", "Max Occupancy",
		"Last Cleaned", "Notes",
	},
	ExpensesSheet: {
		"Expense ID", "Date", "Category", "Description", "Amount",
		"Paid To", "Payment Method", "Receipt Number", "Notes", "Created At",
	},
	FeedbackSheet: {
		"Feedback ID", "Booking ID", "Guest Name", "Rating", "Review",
		"Source", "Date", "Responded", "Response", "Public",
	},
}

// SheetsService is the global Google Sheets client instance.
var SheetsService *sheets.Service

// SpreadsheetID is the register spreadsheet all repositories read and write.
var SpreadsheetID string

// InitSheets initializes the Google Sheets connection and makes sure every
// worksheet exists with its header row.
func InitSheets() {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	svc, err := sheets.NewService(ctx,
		option.WithCredentialsFile(config.AppConfig.SheetsCredentialsFile),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		log.Fatalf("failed to create Google Sheets client: %v", err)
	}

	SheetsService = svc
	SpreadsheetID = config.AppConfig.SpreadsheetID

	if err := ensureWorksheets(ctx); err != nil {
		log.Fatalf("failed to initialize worksheets: %v", err)
	}
	log.Println("Connected to Google Sheets successfully!")
}

// Probe issues a cheap metadata read, used by the health monitor.
func Probe(ctx context.Context) error {
	_, err := SheetsService.Spreadsheets.Get(SpreadsheetID).Fields("spreadsheetId").Context(ctx).Do()
	return err
}

// ensureWorksheets creates any missing worksheet tabs and writes their headers.
func ensureWorksheets(ctx context.Context) error {
	meta, err := SheetsService.Spreadsheets.Get(SpreadsheetID).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("fetching spreadsheet metadata: %w", err)
	}

	existing := make(map[string]bool, len(meta.Sheets))
	for _, s := range meta.Sheets {
		existing[s.Properties.Title] = true
	}

	for title, headers := range sheetHeaders {
		if existing[title] {
			continue
		}

		req := &sheets.BatchUpdateSpreadsheetRequest{
			Requests: []*sheets.Request{{
				AddSheet: &sheets.AddSheetRequest{
					Properties: &sheets.SheetProperties{Title: title},
				},
			}},
		}
		if _, err := SheetsService.Spreadsheets.BatchUpdate(SpreadsheetID, req).Context(ctx).Do(); err != nil {
			return fmt.Errorf("creating worksheet %s: %w", title, err)
		}

		headerRange := fmt.Sprintf("%s!A1", title)
		vr := &sheets.ValueRange{Values: [][]interface{}{headers}}
		if _, err := SheetsService.Spreadsheets.Values.Update(SpreadsheetID, headerRange, vr).
			ValueInputOption("RAW").Context(ctx).Do(); err != nil {
			return fmt.Errorf("writing headers for %s: %w", title, err)
		}
	}

	return nil
}

// ReadRows returns all data rows of a worksheet (everything below the header).
func ReadRows(ctx context.Context, sheet string) ([][]interface{}, error) {
	readRange := fmt.Sprintf("%s!A2:Z", sheet)
	resp, err := SheetsService.Spreadsheets.Values.Get(SpreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("reading %s rows: %w", sheet, err)
	}
	return resp.Values, nil
}

// AppendRow appends one row to the bottom of a worksheet.
func AppendRow(ctx context.Context, sheet string, row []interface{}) error {
	vr := &sheets.ValueRange{Values: [][]interface{}{row}}
	_, err := SheetsService.Spreadsheets.Values.Append(SpreadsheetID, sheet+"!A1", vr).
		ValueInputOption("USER_ENTERED").InsertDataOption("INSERT_ROWS").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("appending to %s: %w", sheet, err)
	}
	return nil
}

// UpdateCell overwrites a single cell. rowIndex is zero-based over data rows,
// so data row 0 lands on spreadsheet row 2 (row 1 holds the header).
func UpdateCell(ctx context.Context, sheet, column string, rowIndex int, value interface{}) error {
	cell := fmt.Sprintf("%s!%s%d", sheet, column, rowIndex+2)
	vr := &sheets.ValueRange{Values: [][]interface{}{{value}}}
	_, err := SheetsService.Spreadsheets.Values.Update(SpreadsheetID, cell, vr).
		ValueInputOption("USER_ENTERED").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("updating %s cell %s: %w", sheet, cell, err)
	}
	return nil
}
