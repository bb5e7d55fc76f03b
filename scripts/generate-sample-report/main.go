package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/thalesmg/hocon"
	"github.com/thalesmg/hocon/pkg/doc"
	"github.com/thalesmg/hocon/pkg/render"
	"github.com/thalesmg/hocon/pkg/schema"
)

// Regenerates the rendered reports for the data-schema example so the files
// can be compared against the current generator output after schema edits.
func main() {
	var (
		schemaPath  = flag.String("schema", "examples/data-schema/schema.yaml", "schema document path")
		descPath    = flag.String("desc-file", "examples/data-schema/descriptions.yaml", "description file path")
		lang        = flag.String("lang", "en", "description language")
		jsonOut     = flag.String("json", "examples/data-schema/report.json", "output path for the JSON report")
		markdownOut = flag.String("markdown", "examples/data-schema/report.md", "output path for the markdown report")
		title       = flag.String("title", "Gateway Configuration", "report title")
	)
	flag.Parse()

	ctx := context.Background()

	ms, err := hocon.LoadMapSchema(ctx, schema.SourceFromFile(*schemaPath))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load schema: %v\n", err)
		os.Exit(1)
	}

	opts := []doc.Option{doc.WithLang(*lang)}
	if *descPath != "" {
		opts = append(opts, doc.WithDescFile(*descPath))
	}

	outputs := map[string]string{
		"json":     *jsonOut,
		"markdown": *markdownOut,
	}
	for name, path := range outputs {
		if path == "" {
			continue
		}
		data, err := hocon.GenerateDocs(ctx, ms, name, render.Options{Title: *title}, opts...)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to render %s report: %v\n", name, err)
			os.Exit(1)
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "failed to write %s: %v\n", path, err)
			os.Exit(1)
		}
		fmt.Printf("✓ Wrote %s report to %s\n", name, path)
	}
}
