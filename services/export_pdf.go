package services

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

var (
	roomHeaderBg  = &props.Color{Red: 240, Green: 240, Blue: 240}
	tableHeaderBg = &props.Color{Red: 200, Green: 200, Blue: 200}
	mutedText     = &props.Color{Red: 80, Green: 80, Blue: 80}
)

// GeneratePDF creates the detailed estimate PDF using maroto/v2. Rows that do
// not fit above the bottom margin move to a new page.
func GeneratePDF(data ExportData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addTitle(m, data)
	addMetadata(m, data)
	for _, room := range data.Rooms {
		addRoom(m, room)
	}
	addCharges(m, data)
	addTotals(m, data)
	addNotes(m, data)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	return doc.GetBytes(), nil
}

// addTitle adds the centered company name and document title.
func addTitle(m core.Maroto, data ExportData) {
	m.AddRows(
		row.New(12).Add(
			col.New(12).Add(
				text.New(data.Letterhead.CompanyName, props.Text{
					Size:  20,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
		row.New(10).Add(
			col.New(12).Add(
				text.New(data.Title, props.Text{
					Size:  16,
					Align: align.Center,
				}),
			),
		),
	)
	m.AddRows(row.New(4))
}

// addMetadata adds date, category, contact details, client, project and area.
func addMetadata(m core.Maroto, data ExportData) {
	left := props.Text{Size: 11, Align: align.Left}
	right := props.Text{Size: 11, Align: align.Right, Color: mutedText}

	m.AddRows(
		row.New(7).Add(
			col.New(6).Add(text.New("Date: "+data.Date, left)),
			col.New(6).Add(text.New("Email: "+data.Letterhead.Email, right)),
		),
		row.New(7).Add(
			col.New(6).Add(text.New("Category: "+data.Category, left)),
			col.New(6).Add(text.New("Phone: "+data.Letterhead.Phone, right)),
		),
		row.New(7).Add(col.New(12).Add(text.New("Client Name: "+data.ClientName, left))),
		row.New(7).Add(col.New(12).Add(text.New("Project Name: "+data.ProjectName, left))),
		row.New(7).Add(col.New(12).Add(text.New(fmt.Sprintf("Total Carpet Area: %s sq.ft.", data.TotalArea), left))),
	)
	m.AddRows(row.New(8))
}

// addRoom adds the shaded room heading followed by its item table.
func addRoom(m core.Maroto, room ExportRoom) {
	m.AddRows(
		row.New(8).Add(
			col.New(12).Add(
				text.New(room.Name, props.Text{
					Size:  11,
					Style: fontstyle.Bold,
					Align: align.Left,
					Left:  3,
					Top:   1.5,
				}),
			).WithStyle(&props.Cell{BackgroundColor: roomHeaderBg}),
		),
	)
	m.AddRows(row.New(3))

	addTableHeader(m, "Description", "Qty", "Unit", "Amount (₹)")

	body := props.Text{Size: 9, Align: align.Left, Top: 1}
	bodyCenter := props.Text{Size: 9, Align: align.Center, Top: 1}
	bodyRight := props.Text{Size: 9, Align: align.Right, Top: 1}

	for _, it := range room.Items {
		m.AddRows(
			row.New(7).Add(
				col.New(6).Add(text.New(it.Description, body)),
				col.New(2).Add(text.New(it.Quantity, bodyCenter)),
				col.New(2).Add(text.New(it.Unit, bodyCenter)),
				col.New(2).Add(text.New(it.Amount, bodyRight)),
			),
		)
	}
	m.AddRows(row.New(8))
}

// addTableHeader adds a grey header row. The first column is wide; up to three
// narrower columns follow.
func addTableHeader(m core.Maroto, first string, rest ...string) {
	headerCell := &props.Cell{BackgroundColor: tableHeaderBg}
	headerText := props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Left, Top: 1.5}

	firstWidth := 12 - 2*len(rest)
	cols := []core.Col{col.New(firstWidth).Add(text.New(first, headerText)).WithStyle(headerCell)}
	for i, h := range rest {
		t := headerText
		t.Align = align.Center
		if i == len(rest)-1 {
			t.Align = align.Right
		}
		cols = append(cols, col.New(2).Add(text.New(h, t)).WithStyle(headerCell))
	}

	m.AddRows(row.New(8).Add(cols...))
}

// addCharges adds the execution charges table.
func addCharges(m core.Maroto, data ExportData) {
	addTableHeader(m, "Execution Charges", "Amount (₹)")

	for _, c := range data.Charges {
		m.AddRows(
			row.New(7).Add(
				col.New(10).Add(text.New(c.Description, props.Text{Size: 9, Align: align.Left, Top: 1})),
				col.New(2).Add(text.New(c.Amount, props.Text{Size: 9, Align: align.Right, Top: 1})),
			),
		)
	}
	m.AddRows(row.New(8))
}

// addTotals adds subtotal, GST, grand total and the amount in words.
func addTotals(m core.Maroto, data ExportData) {
	label := props.Text{Size: 10, Style: fontstyle.Bold, Align: align.Left}
	value := props.Text{Size: 10, Style: fontstyle.Bold, Align: align.Right}

	m.AddRows(
		row.New(7).Add(col.New(10).Add(text.New("Subtotal", label)), col.New(2).Add(text.New(data.Subtotal, value))),
		row.New(7).Add(col.New(10).Add(text.New(data.GSTLabel, label)), col.New(2).Add(text.New(data.GST, value))),
		row.New(7).Add(col.New(10).Add(text.New("Grand Total", label)), col.New(2).Add(text.New(data.GrandTotal, value))),
	)

	if data.AmountInWords != "" {
		m.AddRows(
			row.New(7).Add(
				col.New(12).Add(
					text.New("Amount in Words: "+data.AmountInWords, props.Text{
						Size:  8,
						Style: fontstyle.Italic,
						Align: align.Left,
					}),
				),
			),
		)
	}
	m.AddRows(row.New(10))
}

// addNotes adds the numbered disclaimer list.
func addNotes(m core.Maroto, data ExportData) {
	m.AddRows(
		row.New(7).Add(
			col.New(12).Add(text.New("Notes:", props.Text{Size: 10, Style: fontstyle.Bold, Align: align.Left})),
		),
	)
	for i, note := range data.Notes {
		m.AddRows(
			row.New(9).Add(
				col.New(12).Add(text.New(fmt.Sprintf("%d. %s", i+1, note), props.Text{Size: 8, Align: align.Left})),
			),
		)
	}
}
