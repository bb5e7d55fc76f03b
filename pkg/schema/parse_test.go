package schema_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/thalesmg/hocon/pkg/schema"
)

func TestParseType(t *testing.T) {
	cases := []struct {
		input string
		want  schema.Type
	}{
		{"string", schema.P("string")},
		{"non_neg_integer", schema.P("non_neg_integer")},
		{"[string]", schema.ArrayOf(schema.P("string"))},
		{"array(string)", schema.ArrayOf(schema.P("string"))},
		{"[[integer]]", schema.ArrayOf(schema.ArrayOf(schema.P("integer")))},
		{"ref(bar)", schema.RefTo("bar")},
		{"ref( bar )", schema.RefTo("bar")},
		{"union(ref(bar), ref(kak))", schema.UnionOf(schema.RefTo("bar"), schema.RefTo("kak"))},
		{"union(integer,[float],ref(x))", schema.UnionOf(schema.P("integer"), schema.ArrayOf(schema.P("float")), schema.RefTo("x"))},
		{"[ref(listener)]", schema.ArrayOf(schema.RefTo("listener"))},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.input, func(t *testing.T) {
			got, err := schema.ParseType(tc.input)
			if err != nil {
				t.Fatalf("ParseType(%q): %v", tc.input, err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("type mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseTypeLazy(t *testing.T) {
	got, err := schema.ParseType("lazy(ref(node))")
	if err != nil {
		t.Fatalf("ParseType: %v", err)
	}
	lazy, ok := got.(schema.Lazy)
	if !ok {
		t.Fatalf("expected Lazy, got %T", got)
	}
	if expr := schema.TypeExpr(lazy); expr != "lazy(ref(node))" {
		t.Fatalf("TypeExpr = %q", expr)
	}
	if formatted := schema.Format(lazy, ""); formatted != "node" {
		t.Fatalf("Format = %q", formatted)
	}
}

func TestParseTypeErrors(t *testing.T) {
	cases := []struct {
		input   string
		wantSub string
	}{
		{"", "unexpected end"},
		{"[string", "expected \"]\""},
		{"ref()", "ref requires a struct name"},
		{"union(a", "unterminated union"},
		{"frob(x)", "unknown type constructor"},
		{"string extra", "trailing input"},
		{"union(a,)", "unexpected"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.input, func(t *testing.T) {
			_, err := schema.ParseType(tc.input)
			if err == nil {
				t.Fatalf("expected error for %q", tc.input)
			}
			if !strings.Contains(err.Error(), tc.wantSub) {
				t.Fatalf("error %q does not mention %q", err, tc.wantSub)
			}
		})
	}
}

func TestTypeExprRoundTrips(t *testing.T) {
	inputs := []string{
		"string",
		"[string]",
		"ref(bar)",
		"union(ref(bar), ref(kak))",
		"[ref(listener)]",
	}
	for _, input := range inputs {
		parsed := schema.MustParseType(input)
		expr := schema.TypeExpr(parsed)
		reparsed, err := schema.ParseType(expr)
		if err != nil {
			t.Fatalf("reparse %q: %v", expr, err)
		}
		if diff := cmp.Diff(parsed, reparsed); diff != "" {
			t.Fatalf("round trip of %q mismatch (-want +got):\n%s", input, diff)
		}
	}
}

func TestMustParseTypePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	schema.MustParseType("frob(")
}
