package render

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	"github.com/thalesmg/hocon/pkg/doc"
	"github.com/thalesmg/hocon/pkg/render/template"
)

const htmlTemplate = "report.html"

// HTMLOption configures the HTML renderer.
type HTMLOption func(*htmlConfig)

type htmlConfig struct {
	templateFS   fs.FS
	templateName string
	engine       template.Renderer
}

// WithHTMLTemplatesFS supplies an alternate template bundle via fs.FS.
func WithHTMLTemplatesFS(files fs.FS) HTMLOption {
	return func(cfg *htmlConfig) {
		cfg.templateFS = files
	}
}

// WithHTMLTemplatesDir loads templates from a directory on disk.
func WithHTMLTemplatesDir(path string) HTMLOption {
	return func(cfg *htmlConfig) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithHTMLTemplate selects a template other than the bundled report.html.
func WithHTMLTemplate(name string) HTMLOption {
	return func(cfg *htmlConfig) {
		if name != "" {
			cfg.templateName = name
		}
	}
}

// WithHTMLEngine injects a custom template engine implementation.
func WithHTMLEngine(engine template.Renderer) HTMLOption {
	return func(cfg *htmlConfig) {
		if engine != nil {
			cfg.engine = engine
		}
	}
}

// HTMLRenderer renders the report as a standalone HTML page.
type HTMLRenderer struct {
	templates    template.Renderer
	templateName string
}

// NewHTML constructs the HTML renderer applying any provided options.
func NewHTML(options ...HTMLOption) (*HTMLRenderer, error) {
	cfg := htmlConfig{
		templateFS:   TemplatesFS(),
		templateName: htmlTemplate,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	engine := cfg.engine
	if engine == nil {
		built, err := template.New(
			template.WithFS(cfg.templateFS),
			template.WithFilters(builtinFilters()),
		)
		if err != nil {
			return nil, fmt.Errorf("html renderer: configure template engine: %w", err)
		}
		engine = built
	}

	return &HTMLRenderer{templates: engine, templateName: cfg.templateName}, nil
}

func (r *HTMLRenderer) Name() string {
	return "html"
}

func (r *HTMLRenderer) ContentType() string {
	return "text/html; charset=utf-8"
}

func (r *HTMLRenderer) Render(_ context.Context, report doc.Report, options Options) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("html renderer: template engine is nil")
	}

	result, err := r.templates.RenderTemplate(r.templateName, reportContext(report, options))
	if err != nil {
		return nil, fmt.Errorf("html renderer: render template: %w", err)
	}
	return []byte(result), nil
}
