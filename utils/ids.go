package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// newID builds a short identifier of the form PREFIX-YYYYMMDD-XXXX. The
// four-character suffix comes from a fresh UUID, which keeps collisions
// implausible at this hotel's volume while staying readable in a spreadsheet.
func newID(prefix string) string {
	suffix := strings.ToUpper(uuid.New().String()[:4])
	return fmt.Sprintf("%s-%s-%s", prefix, time.Now().Format("20060102"), suffix)
}

// GenerateBookingID returns a new booking identifier, e.g. BK-20251028-A1B2.
func GenerateBookingID() string {
	return newID("BK")
}

// GenerateExpenseID returns a new expense identifier.
func GenerateExpenseID() string {
	return newID("EX")
}

// GenerateFeedbackID returns a new feedback identifier.
func GenerateFeedbackID() string {
	return newID("FB")
}
