package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thalesmg/hocon/pkg/doc"
	"github.com/thalesmg/hocon/pkg/export"
)

func newExportCmd() *cobra.Command {
	var (
		schemaPath string
		format     string
		output     string
		descFile   string
		lang       string
		title      string
		apiVersion string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export schema-derived interchange documents",
		Long: `Exports either an OpenAPI 3 components document built from a schema, or
the JSON Schema describing the report layout itself.

Examples:
  hocon-schema export --schema schema.yaml --format openapi
  hocon-schema export --format report-schema`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			switch format {
			case "report-schema":
				out, err := export.ReportSchema()
				if err != nil {
					return err
				}
				return writeOutput(cmd, output, out)

			case "openapi":
				if schemaPath == "" {
					return errors.New("--schema is required for openapi export")
				}
				src, err := loadSchema(ctx, schemaPath)
				if err != nil {
					return err
				}

				var options []doc.Option
				if descFile != "" {
					options = append(options, doc.WithDescFile(descFile))
				}
				if lang != "" {
					options = append(options, doc.WithLang(lang))
				}
				report, err := doc.Generate(src, options...)
				if err != nil {
					return err
				}

				spec, err := export.OpenAPI(ctx, src, report, export.OpenAPIOptions{
					Title:   title,
					Version: apiVersion,
				})
				if err != nil {
					return err
				}
				raw, err := json.MarshalIndent(spec, "", "  ")
				if err != nil {
					return fmt.Errorf("marshal openapi document: %w", err)
				}
				return writeOutput(cmd, output, append(raw, '\n'))

			default:
				return fmt.Errorf("unknown export format %q (available: openapi, report-schema)", format)
			}
		},
	}

	cmd.Flags().StringVarP(&schemaPath, "schema", "s", "", "schema document path or URL")
	cmd.Flags().StringVarP(&format, "format", "f", "openapi", "export format: openapi or report-schema")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().StringVar(&descFile, "desc-file", "", "description file resolving desc keys")
	cmd.Flags().StringVar(&lang, "lang", "", "description language (default \"en\")")
	cmd.Flags().StringVar(&title, "title", "", "info.title for the OpenAPI document")
	cmd.Flags().StringVar(&apiVersion, "api-version", "", "info.version for the OpenAPI document")

	return cmd
}
