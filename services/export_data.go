package services

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ExportItem is a formatted line item row.
type ExportItem struct {
	Description string
	Quantity    string
	Unit        string
	Amount      string
}

// ExportRoom is a formatted room block.
type ExportRoom struct {
	Name  string
	Area  string
	Items []ExportItem
	Total string
}

// ExportCharge is a formatted execution charge row.
type ExportCharge struct {
	Description string
	Amount      string
}

// ExportData holds everything the summary view, the print view and the
// document exports need, already formatted for display.
type ExportData struct {
	Letterhead    Letterhead
	Title         string
	Date          string
	Category      string // upper-cased, as printed in the metadata block
	CategoryLabel string // "Premium Category"
	FinishLabel   string
	ClientName    string
	ProjectName   string
	TotalArea     string
	Rooms         []ExportRoom
	Charges       []ExportCharge
	Subtotal      string
	GSTLabel      string
	GST           string
	GrandTotal    string
	AmountInWords string
	Notes         []string
}

// BuildExportData formats an estimate document for the renderers.
func BuildExportData(doc EstimateDocument) ExportData {
	rooms := make([]ExportRoom, 0, len(doc.Rooms))
	for i, r := range doc.Rooms {
		items := make([]ExportItem, 0, len(r.Items))
		for _, it := range r.Items {
			items = append(items, ExportItem{
				Description: it.Description,
				Quantity:    fmt.Sprintf("%d", it.Quantity),
				Unit:        it.Unit,
				Amount:      FormatINR(it.Amount),
			})
		}
		rooms = append(rooms, ExportRoom{
			Name:  DisplayRoomName(r.Name, i),
			Area:  FormatArea(r.AreaSqFt),
			Items: items,
			Total: FormatINR(r.Amount),
		})
	}

	charges := make([]ExportCharge, 0, len(doc.Charges))
	for _, c := range doc.Charges {
		charges = append(charges, ExportCharge{Description: c.Description, Amount: FormatINR(c.Amount)})
	}

	projectName := doc.ProjectName
	if projectName == "" {
		projectName = ProjectTypeLabel(doc.LayoutType)
	}

	return ExportData{
		Letterhead:    CompanyLetterhead,
		Title:         "Detailed Estimate",
		Date:          doc.Date,
		Category:      strings.ToUpper(doc.Category),
		CategoryLabel: capitalize(doc.Category) + " Category",
		FinishLabel:   FinishLabel(doc.Category),
		ClientName:    doc.ClientName,
		ProjectName:   projectName,
		TotalArea:     FormatArea(doc.TotalAreaSqFt),
		Rooms:         rooms,
		Charges:       charges,
		Subtotal:      FormatINR(doc.Subtotal),
		GSTLabel:      fmt.Sprintf("GST (%d%%)", GSTPercent),
		GST:           FormatINR(doc.Tax),
		GrandTotal:    FormatINR(doc.GrandTotal),
		AmountInWords: RupeesInWords(doc.GrandTotal),
		Notes:         EstimateNotes,
	}
}

// DisplayRoomName relabels non-master bedrooms as "Bedroom <index>", where
// index is the room's position in the whole room list, not a bedroom count.
func DisplayRoomName(name string, index int) string {
	if ClassifyRoom(name) == RoomTypeBedroom {
		return fmt.Sprintf("Bedroom %d", index)
	}
	return name
}

// ProjectTypeLabel names the project after its layout ("3BHK Project").
func ProjectTypeLabel(layoutType string) string {
	if layoutType == "" {
		return "Custom Project"
	}
	return strings.ToUpper(layoutType) + " Project"
}

// FinishLabel is the finish note shown under the client block.
func FinishLabel(category string) string {
	if category == string(CategoryStandard) {
		return "ESTIMATION IN LAMINATE FINISH"
	}
	return "ESTIMATION"
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
