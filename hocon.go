package hocon

import (
	"context"

	internalLoader "github.com/thalesmg/hocon/internal/loader"
	"github.com/thalesmg/hocon/pkg/doc"
	"github.com/thalesmg/hocon/pkg/render"
	"github.com/thalesmg/hocon/pkg/schema"
)

// Report is the generated documentation model; alias exported via the root
// package for convenience.
type Report = doc.Report

// StructDoc is one struct record within a Report.
type StructDoc = doc.StructDoc

// FieldDoc is one rendered field entry within a struct record.
type FieldDoc = doc.FieldDoc

// Schema is the polymorphic schema accessor renderers and generators consume.
type Schema = schema.Schema

// NewLoader constructs a document loader using the internal implementation
// while keeping the concrete type hidden from consumers.
func NewLoader(options ...schema.LoaderOption) schema.Loader {
	cfg := schema.NewLoaderOptions(options...)
	return internalLoader.New(cfg)
}

// LoadMapSchema fetches a schema document from the given source and parses it
// into a data-defined schema.
func LoadMapSchema(ctx context.Context, source schema.Source, options ...schema.LoaderOption) (*schema.MapSchema, error) {
	loader := NewLoader(options...)
	document, err := loader.Load(ctx, source)
	if err != nil {
		return nil, err
	}
	return schema.ParseMapSchemaDocument(document)
}

// Generate builds the documentation report for a schema. It is a shorthand
// for doc.Generate.
func Generate(src schema.Schema, options ...doc.Option) (doc.Report, error) {
	return doc.Generate(src, options...)
}

// GenerateDocs builds the report for a schema and renders it with the named
// built-in renderer. It is the simplest entry point for callers that just
// want output bytes.
func GenerateDocs(ctx context.Context, src schema.Schema, rendererName string, renderOptions render.Options, options ...doc.Option) ([]byte, error) {
	report, err := doc.Generate(src, options...)
	if err != nil {
		return nil, err
	}

	registry, err := render.NewDefaultRegistry()
	if err != nil {
		return nil, err
	}
	renderer, err := registry.Get(rendererName)
	if err != nil {
		return nil, err
	}
	return renderer.Render(ctx, report, renderOptions)
}
