package templates

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"choicedge/services"
)

// EstimatePageData is the view model for the summary and print pages.
type EstimatePageData struct {
	services.ExportData
	// EstimateJSON is the computed document, posted back by the print and
	// download buttons so they render the same figures.
	EstimateJSON string
}

func pageTitle(data EstimatePageData) string {
	return data.Title + " - " + data.Letterhead.CompanyName
}

// EstimateSummaryPage renders the on-screen estimate with print and download actions.
func EstimateSummaryPage(data EstimatePageData) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.render(ctx, estimateBody(data, estimateActions(data.EstimateJSON)))
		h.render(ctx, letterheadFooter(data.Letterhead))
		return h.err
	})
	return layout(pageTitle(data), body)
}

// EstimatePrintPage renders the printer-friendly estimate.
func EstimatePrintPage(data EstimatePageData) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.render(ctx, estimateBody(data, nil))
		h.raw(`<div style="text-align:center" class="muted">`,
			`<p>This is a computer-generated estimate.</p>`,
			`<p>© Choicedge | All Rights Reserved</p></div>`,
			`<script>window.addEventListener("load", function () { window.print(); });</script>`)
		return h.err
	})
	return layout(pageTitle(data), body)
}

// estimateBody renders the header, room cards, charges, totals and notes.
// actions, when set, is rendered at the end of the main block.
func estimateBody(data EstimatePageData, actions templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}

		h.raw(`<header style="padding:1.5rem"><div style="text-align:right" class="muted">`)
		h.text(data.Date)
		h.raw(`</div><div style="display:flex;justify-content:space-between;border-top:1px solid #e5e7eb;border-bottom:1px solid #e5e7eb;padding:1rem 0">`,
			`<div><div class="muted">CLIENT NAME</div><div>`)
		h.text(data.ClientName)
		h.raw(`</div></div><div style="text-align:right"><div class="muted">PROJECT NAME</div><div>`)
		h.text(data.ProjectName)
		h.raw(`</div><div class="muted">`)
		h.text(data.FinishLabel)
		h.raw(`</div></div></div><div style="text-align:right" class="muted">Total Carpet Area: `)
		h.text(data.TotalArea)
		h.raw(` sq.ft.</div></header>`)

		h.raw(`<main><div style="text-align:center;margin-bottom:3rem"><h1>`)
		h.text(data.Title)
		h.raw(`</h1><p class="muted">`)
		h.text(data.CategoryLabel)
		h.raw(`</p></div>`)

		for _, room := range data.Rooms {
			h.raw(`<section class="card room"><h2>`)
			h.text(room.Name)
			h.raw(`</h2><table><thead><tr><th>Description</th><th class="num">Quantity</th>`,
				`<th class="num">Unit</th><th class="num">Amount (₹)</th></tr></thead><tbody>`)
			for _, it := range room.Items {
				h.raw(`<tr><td>`)
				h.text(it.Description)
				h.raw(`</td><td class="num">`)
				h.text(it.Quantity)
				h.raw(`</td><td class="num">`)
				h.text(it.Unit)
				h.raw(`</td><td class="num">`)
				h.text(it.Amount)
				h.raw(`</td></tr>`)
			}
			h.raw(`<tr><th colspan="3">Room Total:</th><th class="num">`)
			h.text(room.Total)
			h.raw(`</th></tr></tbody></table></section>`)
		}

		h.raw(`<section class="card"><h2>Execution Charges</h2><table><tbody>`)
		for _, c := range data.Charges {
			h.raw(`<tr><td>`)
			h.text(c.Description)
			h.raw(`</td><td class="num">`)
			h.text(c.Amount)
			h.raw(`</td></tr>`)
		}
		h.raw(`</tbody></table></section>`)

		h.raw(`<section class="card"><table><tbody><tr><td>Subtotal</td><td class="num">`)
		h.text(data.Subtotal)
		h.raw(`</td></tr><tr><td>`)
		h.text(data.GSTLabel)
		h.raw(`</td><td class="num">`)
		h.text(data.GST)
		h.raw(`</td></tr><tr><th>Grand Total</th><th class="num">`)
		h.text(data.GrandTotal)
		h.raw(`</th></tr><tr><td colspan="2" class="muted">`)
		h.text(data.AmountInWords)
		h.raw(`</td></tr></tbody></table></section>`)

		h.raw(`<section class="card" style="padding:1.5rem"><h3>NOTE:</h3><ul style="list-style:none;padding:0" class="muted">`)
		for i, note := range data.Notes {
			h.raw(`<li>`, strconv.Itoa(i+1), `. `)
			h.text(note)
			h.raw(`</li>`)
		}
		h.raw(`</ul></section>`)

		if actions != nil {
			h.render(ctx, actions)
		}
		h.raw(`</main>`)
		return h.err
	})
}

var estimateActionForms = []struct {
	action, label, target string
}{
	{"/estimate/print", "Print Estimate", "_blank"},
	{"/estimate/export/pdf", "Download PDF", ""},
	{"/estimate/export/excel", "Download Excel", ""},
}

// estimateActions posts the computed estimate back to the print and download routes.
func estimateActions(estimateJSON string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<div class="actions no-print">`)
		for _, f := range estimateActionForms {
			h.raw(`<form method="post" action="`, f.action, `"`)
			if f.target != "" {
				h.raw(` target="`, f.target, `"`)
			}
			h.raw(`><input type="hidden" name="estimate" value="`)
			h.text(estimateJSON)
			h.raw(`"><button type="submit">`, f.label, `</button></form>`)
		}
		h.raw(`</div>`)
		return h.err
	})
}

func letterheadFooter(lh services.Letterhead) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<footer style="border-top:1px solid #e5e7eb;padding:2rem 1rem;text-align:center"><h3>`)
		h.text(lh.CompanyName)
		h.raw(`</h3><div class="muted"><p>`)
		h.text(lh.BranchLabel)
		h.raw(`</p>`)
		for _, line := range lh.AddressLines {
			h.raw(`<p>`)
			h.text(line)
			h.raw(`</p>`)
		}
		h.raw(`<p>`)
		h.text(lh.Phone)
		h.raw(` &middot; `)
		h.text(lh.Website)
		h.raw(` &middot; `)
		h.text(lh.Email)
		h.raw(`</p></div><p class="muted" style="font-size:.75rem">`)
		h.text(lh.Copyright)
		h.raw(`</p></footer>`)
		return h.err
	})
}
