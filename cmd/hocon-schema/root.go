package main

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	hocon "github.com/thalesmg/hocon"
	"github.com/thalesmg/hocon/pkg/schema"
)

const remoteFetchTimeout = 30 * time.Second

var log = logrus.New()

func newRootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:           "hocon-schema",
		Short:         "Generate documentation from HOCON config schemas",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetOutput(cmd.ErrOrStderr())
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			}
		},
	}
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(newGenerateCmd())
	cmd.AddCommand(newExportCmd())
	cmd.AddCommand(newBrowseCmd())
	cmd.AddCommand(newVersionCmd())
	return cmd
}

func execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return newRootCmd().ExecuteContext(ctx)
}

// parseSource maps a CLI path argument onto a schema source. URLs load over
// HTTP, everything else from disk.
func parseSource(raw string) (schema.Source, error) {
	path := strings.TrimSpace(raw)
	if path == "" {
		return nil, errors.New("schema path is required")
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		if _, err := url.ParseRequestURI(path); err != nil {
			return nil, fmt.Errorf("invalid schema URL %q: %w", path, err)
		}
		return schema.SourceFromURL(path), nil
	}
	return schema.SourceFromFile(path), nil
}

func loadSchema(ctx context.Context, path string) (*schema.MapSchema, error) {
	src, err := parseSource(path)
	if err != nil {
		return nil, err
	}
	log.Debugf("loading schema from %s", src.Location())
	return hocon.LoadMapSchema(ctx, src, schema.WithHTTPFallback(remoteFetchTimeout))
}

func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if path == "" || path == "-" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	log.Infof("wrote %s", path)
	return nil
}
