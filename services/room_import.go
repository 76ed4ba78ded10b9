package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// Column headers recognised in a room schedule upload.
var (
	roomNameHeaders = []string{"room", "room name", "name"}
	roomAreaHeaders = []string{"carpet area", "carpet area (sq.ft.)", "area", "area (sq.ft.)"}
)

// ValidationError represents a single field-level error on one row.
type ValidationError struct {
	Row     int    `json:"row"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

// RoomScheduleResult is returned after parsing an uploaded room schedule.
// Rooms are in the wizard's shape so they can be dropped into its per-room step.
type RoomScheduleResult struct {
	FileName string            `json:"fileName"`
	Rooms    []WizardRoom      `json:"rooms"`
	Errors   []ValidationError `json:"errors"`
}

// ParseRoomSchedule reads a .csv or .xlsx room schedule with a header row
// containing a room name column and a carpet area column. Invalid rows are
// reported and skipped.
func ParseRoomSchedule(file io.Reader, fileName string) (*RoomScheduleResult, error) {
	var headers []string
	var dataRows [][]string
	var err error

	lowerName := strings.ToLower(fileName)
	switch {
	case strings.HasSuffix(lowerName, ".csv"):
		headers, dataRows, err = parseCSV(file)
	case strings.HasSuffix(lowerName, ".xlsx"):
		headers, dataRows, err = parseExcel(file)
	default:
		return nil, fmt.Errorf("unsupported file format: must be .csv or .xlsx")
	}
	if err != nil {
		return nil, err
	}

	nameCol := findColumn(headers, roomNameHeaders)
	areaCol := findColumn(headers, roomAreaHeaders)
	if nameCol < 0 || areaCol < 0 {
		return nil, fmt.Errorf("file must have a Room column and a Carpet Area column")
	}

	result := &RoomScheduleResult{
		FileName: fileName,
		Rooms:    make([]WizardRoom, 0, len(dataRows)),
		Errors:   []ValidationError{},
	}

	for i, row := range dataRows {
		rowNum := i + 2 // 1-indexed, +1 for header row
		name := cellAt(row, nameCol)
		area := cellAt(row, areaCol)

		if name == "" && area == "" {
			continue
		}
		if name == "" {
			result.Errors = append(result.Errors, ValidationError{Row: rowNum, Field: "Room", Message: "Room is required"})
			continue
		}
		d, err := decimal.NewFromString(area)
		if err != nil {
			result.Errors = append(result.Errors, ValidationError{
				Row:     rowNum,
				Field:   "Carpet Area",
				Message: fmt.Sprintf("Carpet Area %q is not a number", area),
			})
			continue
		}
		if d.IsNegative() {
			result.Errors = append(result.Errors, ValidationError{
				Row:     rowNum,
				Field:   "Carpet Area",
				Message: "Carpet Area cannot be negative",
			})
			continue
		}

		result.Rooms = append(result.Rooms, WizardRoom{
			ID:         fmt.Sprintf("room-%d", len(result.Rooms)+1),
			Name:       name,
			CarpetArea: d.String(),
		})
	}

	return result, nil
}

// parseCSV reads a CSV file and returns headers + data rows.
func parseCSV(file io.Reader) ([]string, [][]string, error) {
	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	allRows, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(allRows) < 2 {
		return nil, nil, fmt.Errorf("file must contain a header row and at least one data row")
	}

	return allRows[0], allRows[1:], nil
}

// parseExcel reads an xlsx file and returns headers + data rows from the first sheet.
func parseExcel(file io.Reader) ([]string, [][]string, error) {
	f, err := excelize.OpenReader(file)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read sheet: %w", err)
	}
	if len(rows) < 2 {
		return nil, nil, fmt.Errorf("file must contain a header row and at least one data row")
	}

	return rows[0], rows[1:], nil
}

// findColumn returns the index of the first header matching one of the
// accepted names, ignoring case, spacing and a trailing " *".
func findColumn(headers []string, accepted []string) int {
	for i, h := range headers {
		norm := strings.ToLower(strings.TrimSpace(h))
		norm = strings.TrimSpace(strings.TrimSuffix(norm, " *"))
		for _, a := range accepted {
			if norm == a {
				return i
			}
		}
	}
	return -1
}

func cellAt(row []string, idx int) string {
	if idx < len(row) {
		return strings.TrimSpace(row[idx])
	}
	return ""
}
