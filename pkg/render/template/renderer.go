// Package template holds the template-engine seam used by the markdown and
// HTML renderers, plus the pongo2-backed default implementation.
package template

import "io"

// FilterFunc transforms a template value. The param argument carries the
// filter parameter, if the template supplied one.
type FilterFunc func(input any, param any) (any, error)

// Renderer is the engine contract report renderers depend on. Render accepts
// either a template name or inline template content and writes the result to
// any supplied writers in addition to returning it.
type Renderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	RegisterFilter(name string, fn FilterFunc) error
	GlobalContext(data any) error
}
