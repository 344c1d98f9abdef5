package database

import (
	"fmt"
	"strconv"
	"strings"
)

// Cell accessors for rows returned by the Sheets API. Cells arrive as
// interface{} values, usually strings, and short rows simply omit trailing
// cells, so every accessor tolerates a missing index.

// CellString returns the cell at idx as a trimmed string, or "" when absent.
func CellString(row []interface{}, idx int) string {
	if idx >= len(row) || row[idx] == nil {
		return ""
	}
	return strings.TrimSpace(fmt.Sprintf("%v", row[idx]))
}

// CellFloat parses the cell at idx as a float. An empty cell counts as zero;
// a non-numeric value is an error.
func CellFloat(row []interface{}, idx int) (float64, error) {
	s := CellString(row, idx)
	if s == "" {
		return 0, nil
	}
	// Values entered by hand sometimes carry currency formatting.
	s = strings.ReplaceAll(strings.TrimPrefix(s, "₹"), ",", "")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("cell %d: %q is not a number", idx, s)
	}
	return v, nil
}

// CellInt parses the cell at idx as an integer, tolerating an empty cell.
func CellInt(row []interface{}, idx int) (int, error) {
	f, err := CellFloat(row, idx)
	if err != nil {
		return 0, err
	}
	return int(f), nil
}

// CellBool parses the cell at idx as a boolean. Sheets checkbox columns read
// back as "TRUE"/"FALSE"; anything else falsy maps to false.
func CellBool(row []interface{}, idx int) bool {
	switch strings.ToUpper(CellString(row, idx)) {
	case "TRUE", "YES", "1":
		return true
	default:
		return false
	}
}
