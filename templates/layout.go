// Package templates holds the page components rendered by the handlers.
package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// htmlWriter writes markup and keeps the first write error.
type htmlWriter struct {
	w   io.Writer
	err error
}

func (h *htmlWriter) raw(parts ...string) {
	for _, s := range parts {
		if h.err != nil {
			return
		}
		_, h.err = io.WriteString(h.w, s)
	}
}

// text writes s with HTML escaping.
func (h *htmlWriter) text(s string) {
	h.raw(templ.EscapeString(s))
}

func (h *htmlWriter) render(ctx context.Context, c templ.Component) {
	if h.err != nil {
		return
	}
	h.err = c.Render(ctx, h.w)
}

const pageStyles = `body { font-family: system-ui, sans-serif; color: #1f2937; margin: 0; }
main { max-width: 64rem; margin: 0 auto; padding: 3rem 1rem; }
table { width: 100%; border-collapse: collapse; }
th, td { padding: .75rem 1.5rem; font-size: .875rem; text-align: left; }
th.num, td.num { text-align: right; }
.card { background: #fff; border-radius: .75rem; box-shadow: 0 4px 12px rgba(0,0,0,.08); margin-bottom: 2rem; overflow: hidden; }
.card h2 { background: #f9fafb; margin: 0; padding: 1rem 1.5rem; font-size: 1.25rem; }
.muted { color: #6b7280; font-size: .875rem; }
.actions { display: flex; justify-content: center; gap: 1rem; }
@media print { .no-print { display: none; } }`

// layout wraps body in the HTML document shell.
func layout(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`,
			`<meta name="viewport" content="width=device-width, initial-scale=1"><title>`)
		h.text(title)
		h.raw(`</title><style>`, pageStyles, `</style></head><body>`)
		h.render(ctx, body)
		h.raw(`</body></html>`)
		return h.err
	})
}
