package render

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	"github.com/thalesmg/hocon/pkg/doc"
	"github.com/thalesmg/hocon/pkg/render/template"
)

const markdownTemplate = "report.md"

// MarkdownOption configures the markdown renderer.
type MarkdownOption func(*markdownConfig)

type markdownConfig struct {
	templateFS   fs.FS
	templateName string
	engine       template.Renderer
}

// WithMarkdownTemplatesFS supplies an alternate template bundle via fs.FS.
func WithMarkdownTemplatesFS(files fs.FS) MarkdownOption {
	return func(cfg *markdownConfig) {
		cfg.templateFS = files
	}
}

// WithMarkdownTemplatesDir loads templates from a directory on disk.
func WithMarkdownTemplatesDir(path string) MarkdownOption {
	return func(cfg *markdownConfig) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithMarkdownTemplate selects a template other than the bundled report.md.
func WithMarkdownTemplate(name string) MarkdownOption {
	return func(cfg *markdownConfig) {
		if name != "" {
			cfg.templateName = name
		}
	}
}

// WithMarkdownEngine injects a custom template engine implementation.
func WithMarkdownEngine(engine template.Renderer) MarkdownOption {
	return func(cfg *markdownConfig) {
		if engine != nil {
			cfg.engine = engine
		}
	}
}

// MarkdownRenderer renders the report through the bundled markdown template.
type MarkdownRenderer struct {
	templates    template.Renderer
	templateName string
}

// NewMarkdown constructs the markdown renderer applying any provided options.
func NewMarkdown(options ...MarkdownOption) (*MarkdownRenderer, error) {
	cfg := markdownConfig{
		templateFS:   TemplatesFS(),
		templateName: markdownTemplate,
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
			return nil, fmt.Errorf("markdown renderer: configure template engine: %w", err)
		}
		engine = built
	}

	return &MarkdownRenderer{templates: engine, templateName: cfg.templateName}, nil
}

func (r *MarkdownRenderer) Name() string {
	return "markdown"
}

func (r *MarkdownRenderer) ContentType() string {
	return "text/markdown; charset=utf-8"
}

func (r *MarkdownRenderer) Render(_ context.Context, report doc.Report, options Options) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("markdown renderer: template engine is nil")
	}

	result, err := r.templates.RenderTemplate(r.templateName, reportContext(report, options))
	if err != nil {
		return nil, fmt.Errorf("markdown renderer: render template: %w", err)
	}
	return []byte(result), nil
}
