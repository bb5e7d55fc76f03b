package schema_test

import (
	"strings"
	"testing"

	"github.com/thalesmg/hocon/pkg/schema"
)

func TestSourceKinds(t *testing.T) {
	cases := []struct {
		name     string
		src      schema.Source
		kind     schema.SourceKind
		location string
	}{
		{"file", schema.SourceFromFile("conf/schema.yaml"), schema.SourceKindFile, "conf/schema.yaml"},
		{"file cleaned", schema.SourceFromFile("conf//./schema.yaml"), schema.SourceKindFile, "conf/schema.yaml"},
		{"fs", schema.SourceFromFS("schemas/broker.json"), schema.SourceKindFS, "schemas/broker.json"},
		{"url", schema.SourceFromURL("https://example.com/schema.json"), schema.SourceKindURL, "https://example.com/schema.json"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.src.Kind(); got != tc.kind {
				t.Fatalf("kind = %q, want %q", got, tc.kind)
			}
			if got := tc.src.Location(); got != tc.location {
				t.Fatalf("location = %q, want %q", got, tc.location)
			}
		})
	}
}

func TestSourceFromURLPanicsOnInvalid(t *testing.T) {
	for _, raw := range []string{"", "not a url"} {
		raw := raw
		t.Run(raw, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatalf("expected panic for %q", raw)
				}
			}()
			schema.SourceFromURL(raw)
		})
	}
}

func TestNewDocument(t *testing.T) {
	src := schema.SourceFromFS("x.yaml")
	doc, err := schema.NewDocument(src, []byte("roots: []"))
	if err != nil {
		t.Fatalf("NewDocument: %v", err)
	}
	if doc.Source() != src {
		t.Fatalf("source not preserved")
	}
	if doc.Location() != "x.yaml" {
		t.Fatalf("location = %q", doc.Location())
	}
	if string(doc.Raw()) != "roots: []" {
		t.Fatalf("raw = %q", doc.Raw())
	}
}

func TestNewDocumentErrors(t *testing.T) {
	if _, err := schema.NewDocument(nil, []byte("x")); err == nil || !strings.Contains(err.Error(), "source is required") {
		t.Fatalf("nil source error = %v", err)
	}
	if _, err := schema.NewDocument(schema.SourceFromFS("x"), nil); err == nil || !strings.Contains(err.Error(), "raw document is empty") {
		t.Fatalf("empty raw error = %v", err)
	}
}

func TestDocumentCopiesPayload(t *testing.T) {
	raw := []byte("namespace: a")
	doc := schema.MustNewDocument(schema.SourceFromFS("x"), raw)

	raw[0] = 'Z'
	if got := string(doc.Raw()); got != "namespace: a" {
		t.Fatalf("document shares caller buffer: %q", got)
	}

	out := doc.Raw()
	out[0] = 'Z'
	if got := string(doc.Raw()); got != "namespace: a" {
		t.Fatalf("Raw does not copy: %q", got)
	}
}

func TestMustNewDocumentPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	schema.MustNewDocument(nil, nil)
}

func TestZeroDocumentLocation(t *testing.T) {
	var doc schema.Document
	if got := doc.Location(); got != "" {
		t.Fatalf("zero document location = %q", got)
	}
}
