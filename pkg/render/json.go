package render

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/thalesmg/hocon/pkg/doc"
)

// JSONRenderer emits the report as JSON, indented by default.
type JSONRenderer struct{}

// NewJSON constructs the JSON renderer.
func NewJSON() *JSONRenderer {
	return &JSONRenderer{}
}

func (r *JSONRenderer) Name() string {
	return "json"
}

func (r *JSONRenderer) ContentType() string {
	return "application/json"
}

func (r *JSONRenderer) Render(_ context.Context, report doc.Report, options Options) ([]byte, error) {
	var (
		raw []byte
		err error
	)
	if options.Compact {
		raw, err = json.Marshal(report)
	} else {
		raw, err = json.MarshalIndent(report, "", "  ")
	}
	if err != nil {
		return nil, fmt.Errorf("json renderer: marshal report: %w", err)
	}
	return append(raw, '\n'), nil
}
