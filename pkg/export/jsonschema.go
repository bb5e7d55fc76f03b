package export

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"

	"github.com/thalesmg/hocon/pkg/doc"
)

// ReportSchema reflects the report's JSON layout into a JSON Schema document
// so downstream pipelines can validate generated reports.
func ReportSchema() ([]byte, error) {
	reflector := &jsonschema.Reflector{
		AllowAdditionalProperties: true,
	}

	s := reflector.Reflect(&doc.Report{})
	s.Title = "Schema Documentation Report"
	s.Description = "Layout of the documentation report emitted by the json renderer."

	raw, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("export: marshal report schema: %w", err)
	}
	return append(raw, '\n'), nil
}
