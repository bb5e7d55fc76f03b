package render

import (
	"encoding/json"
	"fmt"

	"github.com/thalesmg/hocon/pkg/render/template"
)

// builtinFilters returns the filter set shared by the bundled templates.
func builtinFilters() map[string]template.FilterFunc {
	return map[string]template.FilterFunc{
		"plain":    plainFilter,
		"rich":     richFilter,
		"anchor":   anchorFilter,
		"titleize": titleizeFilter,
		"pretty":   prettyFilter,
	}
}

func plainFilter(input any, _ any) (any, error) {
	return PlainText(asText(input)), nil
}

func richFilter(input any, _ any) (any, error) {
	return richText(asText(input)), nil
}

func anchorFilter(input any, _ any) (any, error) {
	return Anchor(asText(input)), nil
}

func titleizeFilter(input any, _ any) (any, error) {
	return Titleize(asText(input)), nil
}

// prettyFilter renders non-string values as compact JSON, which reads better
// than Go's %v formatting for the maps and lists that reach templates.
func prettyFilter(input any, _ any) (any, error) {
	switch v := input.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	default:
		raw, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v), nil
		}
		return string(raw), nil
	}
}

func asText(input any) string {
	switch v := input.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
