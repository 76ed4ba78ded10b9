package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"choicedge/services"
)

// HomePage is the entry point the summary redirects to when no wizard state is present.
func HomePage() templ.Component {
	lh := services.CompanyLetterhead
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<main style="text-align:center"><h1>`)
		h.text(lh.CompanyName)
		h.raw(`</h1><p class="muted">Start a new estimate to see its detailed summary.</p></main>`)
		return h.err
	})
	return layout(lh.CompanyName, body)
}
