package doc

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/thalesmg/hocon/pkg/desc"
	"github.com/thalesmg/hocon/pkg/schema"
)

// FieldContext carries the collaborators a field formatter needs: the schema
// namespace for reference qualification, the target language, the
// description store, and the default-value printer.
type FieldContext struct {
	Namespace string
	Lang      string
	Descs     *desc.Store
	Printer   Printer
}

// FieldFormatter renders a single field. Returning ok=false suppresses the
// field from the visible list; any error aborts the whole report.
type FieldFormatter func(fc FieldContext, f schema.Field) (fd FieldDoc, ok bool, err error)

// DefaultFieldFormatter is the built-in field renderer. Hidden fields are
// suppressed outright. Deprecated fields short-circuit to a minimal record
// whose description is exactly "Deprecated since {version}."; default, raw
// default, examples, and extra metadata are withheld. Live fields render the
// full record, omitting attributes the schema never declared.
func DefaultFieldFormatter(fc FieldContext, f schema.Field) (FieldDoc, bool, error) {
	fs := f.Schema
	if fs.Hidden {
		return FieldDoc{}, false, nil
	}
	if fs.Type == nil {
		return FieldDoc{}, false, fmt.Errorf("doc: field %q has no type", f.Name)
	}

	fd := FieldDoc{
		Name:    f.Name,
		Aliases: append([]string(nil), fs.Aliases...),
		Type:    schema.Format(fs.Type, fc.Namespace),
	}

	if fs.Deprecated != "" {
		fd.Desc = fmt.Sprintf("Deprecated since %s.", fs.Deprecated)
		return fd, true, nil
	}

	if fs.Default != nil {
		text, err := printDefault(fc.Printer, fs.Default)
		if err != nil {
			return FieldDoc{}, false, fmt.Errorf("doc: format default of field %q: %w", f.Name, err)
		}
		fd.Default = &text
		fd.RawDefault = rawDefault(fs.Default)
	}
	if examples := normalizeExamples(fs.Examples); len(examples) > 0 {
		fd.Examples = examples
	}
	if text, ok := fc.Descs.Resolve(fs.Desc, fc.Lang); ok {
		fd.Desc = text
	}
	if len(fs.Extra) > 0 {
		fd.Extra = cloneExtra(fs.Extra)
	}
	return fd, true, nil
}

// renderFields runs the formatter across an ordered field list, dropping
// suppressed fields.
func renderFields(fc FieldContext, format FieldFormatter, fields []schema.Field) ([]FieldDoc, error) {
	out := make([]FieldDoc, 0, len(fields))
	for _, f := range fields {
		fd, ok, err := format(fc, f)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		out = append(out, fd)
	}
	return out, nil
}

// checkDuplicates validates that field names and aliases are pairwise
// distinct across the full field list, hidden fields included. It runs once
// per struct, before any field renders.
func checkDuplicates(fullName string, fields []schema.Field) error {
	counts := make(map[string]int, len(fields))
	for _, f := range fields {
		counts[f.Name]++
		for _, alias := range f.Schema.Aliases {
			counts[alias]++
		}
	}

	var duplicated []string
	for name, n := range counts {
		if n > 1 {
			duplicated = append(duplicated, name)
		}
	}
	if len(duplicated) == 0 {
		return nil
	}
	sort.Strings(duplicated)
	return &DuplicateFieldNamesError{Path: fullName, Duplicated: duplicated}
}

func printDefault(p Printer, value any) (Text, error) {
	lines, err := p.Print(value)
	if err != nil {
		return Text{}, err
	}
	if len(lines) == 0 {
		return Text{}, fmt.Errorf("printer returned no output")
	}
	if len(lines) == 1 {
		return Text{Oneliner: true, Text: lines[0]}, nil
	}
	return Text{Oneliner: false, Text: strings.Join(lines, "\n")}, nil
}

// rawDefault preserves the declared default for the raw_default attribute.
// The explicit-null sentinel becomes a JSON null; anything else passes
// through untouched.
func rawDefault(value any) any {
	if _, ok := value.(schema.Null); ok {
		return json.RawMessage("null")
	}
	return value
}

// normalizeExamples accepts either a list of examples or a single scalar
// example, wrapping the scalar into a one-element list.
func normalizeExamples(value any) []any {
	switch v := value.(type) {
	case nil:
		return nil
	case []any:
		if len(v) == 0 {
			return nil
		}
		return append([]any(nil), v...)
	default:
		return []any{v}
	}
}

func cloneExtra(extra map[string]any) map[string]any {
	out := make(map[string]any, len(extra))
	for k, v := range extra {
		out[k] = v
	}
	return out
}
