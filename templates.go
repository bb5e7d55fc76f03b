package hocon

import (
	"io/fs"

	"github.com/thalesmg/hocon/pkg/render"
)

// EmbeddedTemplates exposes the built-in report templates so callers can
// reuse or extend them without importing the render package directly.
func EmbeddedTemplates() fs.FS {
	return render.TemplatesFS()
}
