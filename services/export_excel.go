package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

const estimateSheetName = "Detailed Estimate"

// excelStyles holds the style IDs used by the estimate workbook.
type excelStyles struct {
	title, meta, roomHeader, tableHeader, body, amount, totalLabel, totalValue, note int
}

// GenerateExcel creates an Excel workbook of the estimate and returns the
// file contents as a byte slice.
func GenerateExcel(data ExportData) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := estimateSheetName
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	widths := map[string]float64{"A": 48, "B": 8, "C": 10, "D": 18}
	for c, w := range widths {
		if err := f.SetColWidth(sheet, c, c, w); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", c, err)
		}
	}

	st, err := newExcelStyles(f)
	if err != nil {
		return nil, err
	}

	w := &sheetWriter{f: f, sheet: sheet, row: 1}

	// ── Title and metadata ──────────────────────────────────────────────

	if err := w.merged(sanitizeExcelCell(data.Letterhead.CompanyName), st.title); err != nil {
		return nil, err
	}
	if err := w.merged(data.Title, st.title); err != nil {
		return nil, err
	}
	w.row++

	meta := []string{
		"Date: " + data.Date,
		"Category: " + data.Category,
		"Client Name: " + sanitizeExcelCell(data.ClientName),
		"Project Name: " + sanitizeExcelCell(data.ProjectName),
		fmt.Sprintf("Total Carpet Area: %s sq.ft.", data.TotalArea),
		"Email: " + data.Letterhead.Email,
		"Phone: " + data.Letterhead.Phone,
	}
	for _, line := range meta {
		if err := w.merged(line, st.meta); err != nil {
			return nil, err
		}
	}
	w.row++

	// ── Rooms ───────────────────────────────────────────────────────────

	for _, room := range data.Rooms {
		if err := w.merged(sanitizeExcelCell(room.Name), st.roomHeader); err != nil {
			return nil, err
		}
		w.values(st.tableHeader, "Description", "Qty", "Unit", "Amount (₹)")
		for _, it := range room.Items {
			w.values(st.body, sanitizeExcelCell(it.Description), it.Quantity, it.Unit, it.Amount)
			f.SetCellStyle(sheet, w.cell("D", -1), w.cell("D", -1), st.amount)
		}
		w.values(st.totalLabel, "Room Total", "", "", room.Total)
		w.row++
	}

	// ── Charges and totals ──────────────────────────────────────────────

	w.values(st.tableHeader, "Execution Charges", "", "", "Amount (₹)")
	for _, c := range data.Charges {
		w.values(st.body, c.Description, "", "", c.Amount)
		f.SetCellStyle(sheet, w.cell("D", -1), w.cell("D", -1), st.amount)
	}
	w.row++

	totals := [][2]string{
		{"Subtotal", data.Subtotal},
		{data.GSTLabel, data.GST},
		{"Grand Total", data.GrandTotal},
	}
	for _, t := range totals {
		f.SetCellValue(sheet, w.cell("A", 0), t[0])
		f.SetCellStyle(sheet, w.cell("A", 0), w.cell("C", 0), st.totalLabel)
		f.SetCellValue(sheet, w.cell("D", 0), t[1])
		f.SetCellStyle(sheet, w.cell("D", 0), w.cell("D", 0), st.totalValue)
		w.row++
	}
	if err := w.merged("Amount in Words: "+data.AmountInWords, st.note); err != nil {
		return nil, err
	}
	w.row++

	// ── Notes ───────────────────────────────────────────────────────────

	if err := w.merged("Notes:", st.totalLabel); err != nil {
		return nil, err
	}
	for i, note := range data.Notes {
		if err := w.merged(fmt.Sprintf("%d. %s", i+1, note), st.note); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}

	return buf.Bytes(), nil
}

// sheetWriter appends rows to a sheet, tracking the current row.
type sheetWriter struct {
	f     *excelize.File
	sheet string
	row   int
}

// cell returns the reference of column c at the current row plus offset.
func (w *sheetWriter) cell(c string, offset int) string {
	return fmt.Sprintf("%s%d", c, w.row+offset)
}

// merged writes value across columns A to D and advances one row.
func (w *sheetWriter) merged(value string, style int) error {
	from, to := w.cell("A", 0), w.cell("D", 0)
	if err := w.f.MergeCell(w.sheet, from, to); err != nil {
		return fmt.Errorf("merge %s:%s: %w", from, to, err)
	}
	w.f.SetCellValue(w.sheet, from, value)
	w.f.SetCellStyle(w.sheet, from, to, style)
	w.row++
	return nil
}

// values writes up to four values into columns A to D and advances one row.
func (w *sheetWriter) values(style int, values ...string) {
	columns := []string{"A", "B", "C", "D"}
	for i, v := range values {
		w.f.SetCellValue(w.sheet, w.cell(columns[i], 0), v)
	}
	w.f.SetCellStyle(w.sheet, w.cell("A", 0), w.cell("D", 0), style)
	w.row++
}

func newExcelStyles(f *excelize.File) (excelStyles, error) {
	var st excelStyles
	defs := []struct {
		id    *int
		name  string
		style *excelize.Style
	}{
		{&st.title, "title", &excelize.Style{
			Font:      &excelize.Font{Bold: true, Size: 16},
			Alignment: &excelize.Alignment{Horizontal: "center"},
		}},
		{&st.meta, "meta", &excelize.Style{Font: &excelize.Font{Size: 11}}},
		{&st.roomHeader, "room header", &excelize.Style{
			Font: &excelize.Font{Bold: true, Size: 12},
			Fill: excelize.Fill{Type: "pattern", Color: []string{"#F0F0F0"}, Pattern: 1},
		}},
		{&st.tableHeader, "table header", &excelize.Style{
			Font:   &excelize.Font{Bold: true, Size: 10},
			Fill:   excelize.Fill{Type: "pattern", Color: []string{"#C8C8C8"}, Pattern: 1},
			Border: thinBorders(),
		}},
		{&st.body, "body", &excelize.Style{Font: &excelize.Font{Size: 10}, Border: thinBorders()}},
		{&st.amount, "amount", &excelize.Style{
			Font:      &excelize.Font{Size: 10},
			Alignment: &excelize.Alignment{Horizontal: "right"},
			Border:    thinBorders(),
		}},
		{&st.totalLabel, "total label", &excelize.Style{Font: &excelize.Font{Bold: true, Size: 11}}},
		{&st.totalValue, "total value", &excelize.Style{
			Font:      &excelize.Font{Bold: true, Size: 11},
			Alignment: &excelize.Alignment{Horizontal: "right"},
		}},
		{&st.note, "note", &excelize.Style{
			Font:      &excelize.Font{Size: 9},
			Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"},
		}},
	}

	for _, d := range defs {
		id, err := f.NewStyle(d.style)
		if err != nil {
			return st, fmt.Errorf("create %s style: %w", d.name, err)
		}
		*d.id = id
	}
	return st, nil
}

// sanitizeExcelCell prevents formula injection by prefixing dangerous leading
// characters with a single quote.
func sanitizeExcelCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

// thinBorders returns thin borders on all four sides.
func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{
			Type:  side,
			Color: "#000000",
			Style: 1,
		}
	}
	return borders
}
