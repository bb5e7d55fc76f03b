// Package export converts generated reports into interchange formats:
// an OpenAPI 3 components document for API tooling and a JSON Schema
// describing the report layout itself.
package export
