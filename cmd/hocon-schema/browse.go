package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/spf13/cobra"

	"github.com/thalesmg/hocon/pkg/doc"
)

const browseQuit = "(quit)"

func newBrowseCmd() *cobra.Command {
	var (
		schemaPath string
		descFile   string
		lang       string
	)

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Interactively inspect struct records from a schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			if schemaPath == "" {
				return errors.New("--schema is required")
			}
			ctx := cmd.Context()

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

			return browseReport(ctx, cmd.OutOrStdout(), report)
		},
	}

	cmd.Flags().StringVarP(&schemaPath, "schema", "s", "", "schema document path or URL (required)")
	cmd.Flags().StringVar(&descFile, "desc-file", "", "description file resolving desc keys")
	cmd.Flags().StringVar(&lang, "lang", "", "description language (default \"en\")")

	return cmd
}

func browseReport(ctx context.Context, out io.Writer, report doc.Report) error {
	options := append(report.StructNames(), browseQuit)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		var choice string
		prompt := &survey.Select{
			Message:  "Struct records:",
			Options:  options,
			PageSize: 15,
		}
		if err := survey.AskOne(prompt, &choice); err != nil {
			if errors.Is(err, terminal.InterruptErr) {
				return nil
			}
			return err
		}
		if choice == browseQuit {
			return nil
		}

		record, ok := report.Struct(choice)
		if !ok {
			continue
		}
		printStructDoc(out, record)
	}
}

func printStructDoc(w io.Writer, record doc.StructDoc) {
	fmt.Fprintf(w, "\n%s\n", record.FullName)
	if record.Desc != "" {
		fmt.Fprintf(w, "  %s\n", record.Desc)
	}
	if len(record.Paths) > 0 {
		fmt.Fprintf(w, "  paths: %s\n", strings.Join(record.Paths, ", "))
	}
	if len(record.Tags) > 0 {
		fmt.Fprintf(w, "  tags: %s\n", strings.Join(record.Tags, ", "))
	}
	for _, field := range record.Fields {
		fmt.Fprintf(w, "  - %s: %s\n", field.Name, field.Type)
		if len(field.Aliases) > 0 {
			fmt.Fprintf(w, "      aliases: %s\n", strings.Join(field.Aliases, ", "))
		}
		if field.Default != nil {
			lines := strings.Split(field.Default.Text, "\n")
			fmt.Fprintf(w, "      default: %s\n", lines[0])
			for _, line := range lines[1:] {
				fmt.Fprintf(w, "               %s\n", line)
			}
		}
		if field.Desc != "" {
			fmt.Fprintf(w, "      %s\n", field.Desc)
		}
	}
	fmt.Fprintln(w)
}
