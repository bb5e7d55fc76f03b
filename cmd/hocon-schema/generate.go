package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thalesmg/hocon/pkg/doc"
	"github.com/thalesmg/hocon/pkg/render"
	"github.com/thalesmg/hocon/pkg/schema"
	"github.com/thalesmg/hocon/pkg/watcher"
)

func newGenerateCmd() *cobra.Command {
	var (
		schemaPath string
		format     string
		output     string
		descFile   string
		lang       string
		title      string
		compact    bool
		check      bool
		watch      bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a documentation report from a schema document",
		Long: `Loads a JSON or YAML schema document, walks every struct reachable from
its roots, and renders the resulting report.

Examples:
  hocon-schema generate --schema schema.yaml                      # JSON report on stdout
  hocon-schema generate --schema schema.yaml --format markdown
  hocon-schema generate --schema schema.yaml --check              # validate only
  hocon-schema generate --schema schema.yaml --watch -o docs.md --format markdown`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if schemaPath == "" {
				return errors.New("--schema is required")
			}
			ctx := cmd.Context()

			registry, err := render.NewDefaultRegistry()
			if err != nil {
				return err
			}
			renderer, err := registry.Get(format)
			if err != nil {
				return fmt.Errorf("unknown format %q (available: %s)", format, strings.Join(registry.List(), ", "))
			}

			run := func() error {
				return runGenerate(ctx, cmd, generateParams{
					schemaPath: schemaPath,
					descFile:   descFile,
					lang:       lang,
					title:      title,
					output:     output,
					compact:    compact,
					check:      check,
					renderer:   renderer,
				})
			}

			if !watch {
				return run()
			}

			src, err := parseSource(schemaPath)
			if err != nil {
				return err
			}
			if src.Kind() == schema.SourceKindURL {
				return errors.New("--watch requires a local schema file")
			}
			if err := run(); err != nil {
				log.Errorf("generate: %v", err)
			}

			paths := []string{schemaPath}
			if descFile != "" {
				paths = append(paths, descFile)
			}
			w, err := watcher.New(paths)
			if err != nil {
				return err
			}
			defer w.Close()

			log.Infof("watching %s", strings.Join(paths, ", "))
			err = w.Run(ctx, func(path string) {
				log.Infof("change detected: %s", path)
				if err := run(); err != nil {
					log.Errorf("generate: %v", err)
				}
			})
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}

	cmd.Flags().StringVarP(&schemaPath, "schema", "s", "", "schema document path or URL (required)")
	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format: json, markdown, or html")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().StringVar(&descFile, "desc-file", "", "description file resolving desc keys")
	cmd.Flags().StringVar(&lang, "lang", "", "description language (default \"en\")")
	cmd.Flags().StringVar(&title, "title", "", "document title for markdown/html output")
	cmd.Flags().BoolVar(&compact, "compact", false, "emit unindented JSON")
	cmd.Flags().BoolVar(&check, "check", false, "validate the schema without emitting a report")
	cmd.Flags().BoolVar(&watch, "watch", false, "regenerate whenever the schema or description file changes")

	return cmd
}

type generateParams struct {
	schemaPath string
	descFile   string
	lang       string
	title      string
	output     string
	compact    bool
	check      bool
	renderer   render.Renderer
}

func runGenerate(ctx context.Context, cmd *cobra.Command, p generateParams) error {
	src, err := loadSchema(ctx, p.schemaPath)
	if err != nil {
		return err
	}

	var options []doc.Option
	if p.descFile != "" {
		options = append(options, doc.WithDescFile(p.descFile))
	}
	if p.lang != "" {
		options = append(options, doc.WithLang(p.lang))
	}

	report, err := doc.Generate(src, options...)
	if err != nil {
		return err
	}
	log.Debugf("generated %d struct records", len(report))

	if p.check {
		fmt.Fprintf(cmd.OutOrStdout(), "schema OK: %d struct records\n", len(report))
		return nil
	}

	out, err := p.renderer.Render(ctx, report, render.Options{Title: p.title, Compact: p.compact})
	if err != nil {
		return err
	}
	return writeOutput(cmd, p.output, out)
}
