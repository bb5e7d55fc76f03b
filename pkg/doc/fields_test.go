package doc_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/thalesmg/hocon/pkg/desc"
	"github.com/thalesmg/hocon/pkg/doc"
	"github.com/thalesmg/hocon/pkg/schema"
)

func fieldContext() doc.FieldContext {
	return doc.FieldContext{
		Namespace: "ns",
		Lang:      desc.DefaultLang,
		Descs:     desc.Empty(),
		Printer:   doc.DefaultPrinter(),
	}
}

func TestDefaultFieldFormatterHidden(t *testing.T) {
	f := schema.Field{Name: "secret", Schema: schema.FieldSchema{
		Type:   schema.P("string"),
		Hidden: true,
	}}
	_, ok, err := doc.DefaultFieldFormatter(fieldContext(), f)
	if err != nil {
		t.Fatalf("formatter: %v", err)
	}
	if ok {
		t.Fatalf("hidden field was not suppressed")
	}
}

func TestDefaultFieldFormatterMissingType(t *testing.T) {
	f := schema.Field{Name: "broken"}
	_, _, err := doc.DefaultFieldFormatter(fieldContext(), f)
	if err == nil || !strings.Contains(err.Error(), `field "broken" has no type`) {
		t.Fatalf("error = %v", err)
	}
}

func TestDefaultFieldFormatterDeprecated(t *testing.T) {
	f := schema.Field{Name: "old", Schema: schema.FieldSchema{
		Type:       schema.P("integer"),
		Default:    3,
		Examples:   []any{1, 2},
		Extra:      map[string]any{"importance": "low"},
		Desc:       "An old knob.",
		Deprecated: "4.4.0",
	}}
	fd, ok, err := doc.DefaultFieldFormatter(fieldContext(), f)
	if err != nil || !ok {
		t.Fatalf("formatter: ok=%v err=%v", ok, err)
	}

	// Deprecation short-circuits: the record keeps only name, type, aliases,
	// and the fixed deprecation notice.
	want := doc.FieldDoc{Name: "old", Type: "integer", Desc: "Deprecated since 4.4.0."}
	if diff := cmp.Diff(want, fd); diff != "" {
		t.Fatalf("field doc (-want +got):\n%s", diff)
	}
}

func TestDefaultFieldFormatterExplicitNullDefault(t *testing.T) {
	f := schema.Field{Name: "shutdown_timeout", Schema: schema.FieldSchema{
		Type:    schema.P("duration"),
		Default: schema.NullValue,
	}}
	fd, ok, err := doc.DefaultFieldFormatter(fieldContext(), f)
	if err != nil || !ok {
		t.Fatalf("formatter: ok=%v err=%v", ok, err)
	}
	if fd.Default == nil || !fd.Default.Oneliner || fd.Default.Text != "null" {
		t.Fatalf("default = %+v", fd.Default)
	}
	raw, isRaw := fd.RawDefault.(json.RawMessage)
	if !isRaw || string(raw) != "null" {
		t.Fatalf("raw default = %#v", fd.RawDefault)
	}
}

func TestDefaultFieldFormatterScalarExample(t *testing.T) {
	f := schema.Field{Name: "rate", Schema: schema.FieldSchema{
		Type:     schema.P("integer"),
		Examples: 100,
	}}
	fd, _, err := doc.DefaultFieldFormatter(fieldContext(), f)
	if err != nil {
		t.Fatalf("formatter: %v", err)
	}
	if diff := cmp.Diff([]any{100}, fd.Examples); diff != "" {
		t.Fatalf("examples (-want +got):\n%s", diff)
	}
}

func TestDefaultFieldFormatterCopiesMetadata(t *testing.T) {
	aliases := []string{"old_name"}
	extra := map[string]any{"importance": "high"}
	f := schema.Field{Name: "key", Schema: schema.FieldSchema{
		Type:    schema.P("string"),
		Aliases: aliases,
		Extra:   extra,
	}}
	fd, _, err := doc.DefaultFieldFormatter(fieldContext(), f)
	if err != nil {
		t.Fatalf("formatter: %v", err)
	}

	aliases[0] = "mutated"
	extra["importance"] = "mutated"
	if fd.Aliases[0] != "old_name" {
		t.Fatalf("aliases share backing array: %v", fd.Aliases)
	}
	if fd.Extra["importance"] != "high" {
		t.Fatalf("extra shares map: %v", fd.Extra)
	}
}

func TestDefaultFieldFormatterDescKey(t *testing.T) {
	st, err := desc.Parse([]byte(`{"k.node": {"en": "Node settings."}}`), "inline.json")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	defer st.Close()

	fc := fieldContext()
	fc.Descs = st

	f := schema.Field{Name: "node", Schema: schema.FieldSchema{
		Type: schema.P("string"),
		Desc: desc.Key{ID: "k.node"},
	}}
	fd, _, err := doc.DefaultFieldFormatter(fc, f)
	if err != nil {
		t.Fatalf("formatter: %v", err)
	}
	if fd.Desc != "Node settings." {
		t.Fatalf("desc = %q", fd.Desc)
	}

	// A key the store does not hold leaves the description empty.
	f.Schema.Desc = desc.Key{ID: "k.gone"}
	fd, _, err = doc.DefaultFieldFormatter(fc, f)
	if err != nil {
		t.Fatalf("formatter: %v", err)
	}
	if fd.Desc != "" {
		t.Fatalf("unresolved key produced desc %q", fd.Desc)
	}
}

func TestDefaultFieldFormatterReferenceTypes(t *testing.T) {
	f := schema.Field{Name: "selector", Schema: schema.FieldSchema{
		Type: schema.UnionOf(schema.RefTo("bar"), schema.RefTo("kak")),
	}}
	fd, _, err := doc.DefaultFieldFormatter(fieldContext(), f)
	if err != nil {
		t.Fatalf("formatter: %v", err)
	}
	if fd.Type != "ns:bar | ns:kak" {
		t.Fatalf("type = %q", fd.Type)
	}
}
