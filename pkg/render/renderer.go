// Package render turns documentation reports into output bytes. Renderers
// register by name in a Registry; the built-in set covers machine-readable
// JSON plus template-driven markdown and HTML.
package render

import (
	"context"

	"github.com/thalesmg/hocon/pkg/doc"
)

// Renderer converts a report into a byte representation (JSON, markdown,
// HTML, ...).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, report doc.Report, options Options) ([]byte, error)
}

// Options carry per-render data renderers may use without touching the
// report itself.
type Options struct {
	// Title heads template-driven output. Empty falls back to the
	// renderer's default heading.
	Title string
	// Compact switches the JSON renderer to unindented output.
	Compact bool
}

const defaultTitle = "Configuration Reference"

// reportContext shapes the template context shared by the markdown and HTML
// renderers. Keys mirror the report's JSON field names.
func reportContext(report doc.Report, options Options) map[string]any {
	title := options.Title
	if title == "" {
		title = defaultTitle
	}
	return map[string]any{
		"title":   title,
		"structs": report,
	}
}
