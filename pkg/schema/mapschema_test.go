package schema_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/thalesmg/hocon/pkg/desc"
	"github.com/thalesmg/hocon/pkg/schema"
)

const gatewayYAML = `
namespace: gw
roots:
  - name: server
    type: ref(server)
    desc_key: gw.server
    tags: [api]
  - name: pools
    type: "[pool]"
    desc: Connection pools.
fields:
  server:
    desc: Server front end.
    tags: [front]
    fields:
      - name: listen
        type: string
        default: "0.0.0.0:8080"
      - name: pool
        type: pool
      - name: debug
        type: boolean
        default: false
        hidden: true
  pool:
    - name: size
      type: integer
      default: 8
      aliases: [workers]
    - name: checkout_timeout
      type: duration
      default: 5s
      deprecated: "1.4.0"
    - name: strategy
      type: string
      examples: fifo
      extra:
        importance: low
`

func TestParseMapSchemaYAML(t *testing.T) {
	ms, err := schema.ParseMapSchema([]byte(gatewayYAML), "gateway.yaml")
	if err != nil {
		t.Fatalf("ParseMapSchema: %v", err)
	}

	if got := ms.Namespace(); got != "gw" {
		t.Fatalf("namespace = %q", got)
	}

	roots := ms.Roots()
	if len(roots) != 2 {
		t.Fatalf("expected 2 roots, got %d", len(roots))
	}
	if roots[0].Name != "server" || roots[1].Name != "pools" {
		t.Fatalf("root order mismatch: %q, %q", roots[0].Name, roots[1].Name)
	}

	if diff := cmp.Diff(schema.RefTo("server"), roots[0].Schema.Type); diff != "" {
		t.Fatalf("server root type (-want +got):\n%s", diff)
	}
	if key, ok := roots[0].Schema.Desc.(desc.Key); !ok || key.ID != "gw.server" {
		t.Fatalf("desc_key not captured: %#v", roots[0].Schema.Desc)
	}
	if diff := cmp.Diff([]string{"api"}, roots[0].Schema.Tags); diff != "" {
		t.Fatalf("root tags (-want +got):\n%s", diff)
	}

	// Bare names naming declared structs resolve as references.
	if diff := cmp.Diff(schema.ArrayOf(schema.RefTo("pool")), roots[1].Schema.Type); diff != "" {
		t.Fatalf("pools root type (-want +got):\n%s", diff)
	}

	server, ok := ms.Struct("server")
	if !ok {
		t.Fatalf("struct server not found")
	}
	if server.Desc != "Server front end." {
		t.Fatalf("server desc = %#v", server.Desc)
	}
	if diff := cmp.Diff([]string{"front"}, server.Tags); diff != "" {
		t.Fatalf("server tags (-want +got):\n%s", diff)
	}
	if len(server.Fields) != 3 {
		t.Fatalf("server fields = %d", len(server.Fields))
	}
	if diff := cmp.Diff(schema.RefTo("pool"), server.Fields[1].Schema.Type); diff != "" {
		t.Fatalf("server.pool type (-want +got):\n%s", diff)
	}
	if !server.Fields[2].Schema.Hidden {
		t.Fatalf("server.debug should be hidden")
	}

	pool, ok := ms.Struct("pool")
	if !ok {
		t.Fatalf("struct pool not found")
	}
	if pool.Desc != nil {
		t.Fatalf("bare-list struct should have no desc, got %#v", pool.Desc)
	}
	size := pool.Fields[0]
	if diff := cmp.Diff([]string{"workers"}, size.Schema.Aliases); diff != "" {
		t.Fatalf("size aliases (-want +got):\n%s", diff)
	}
	if size.Schema.Default != 8 {
		t.Fatalf("size default = %#v", size.Schema.Default)
	}
	if pool.Fields[1].Schema.Deprecated != "1.4.0" {
		t.Fatalf("checkout_timeout deprecated = %q", pool.Fields[1].Schema.Deprecated)
	}
	if pool.Fields[2].Schema.Examples != "fifo" {
		t.Fatalf("strategy examples = %#v", pool.Fields[2].Schema.Examples)
	}
	if pool.Fields[2].Schema.Extra["importance"] != "low" {
		t.Fatalf("strategy extra = %#v", pool.Fields[2].Schema.Extra)
	}

	if diff := cmp.Diff([]string{"pool", "server"}, ms.StructNames()); diff != "" {
		t.Fatalf("struct names (-want +got):\n%s", diff)
	}
}

func TestParseMapSchemaJSON(t *testing.T) {
	raw := []byte(`{
		"namespace": "j",
		"roots": [{"name": "top", "type": "ref(box)"}],
		"fields": {
			"box": [{"name": "value", "type": "string"}]
		}
	}`)

	ms, err := schema.ParseMapSchema(raw, "doc.json")
	if err != nil {
		t.Fatalf("ParseMapSchema: %v", err)
	}
	if ms.Namespace() != "j" {
		t.Fatalf("namespace = %q", ms.Namespace())
	}
	box, ok := ms.Struct("box")
	if !ok || len(box.Fields) != 1 {
		t.Fatalf("box not parsed: %#v", box)
	}
}

func TestParseMapSchemaErrors(t *testing.T) {
	cases := []struct {
		name    string
		raw     string
		wantSub string
	}{
		{"empty document", "", "is empty"},
		{"whitespace document", "   \n\t", "is empty"},
		{"no roots", "namespace: x\nfields: {}\n", "declares no roots"},
		{"struct without fields", "roots:\n  - name: a\n    type: ref(b)\nfields:\n  b: []\n", "declares no fields"},
		{"bad type", "roots:\n  - name: a\n    type: frob(x)\n", "unknown type constructor"},
		{"field missing type", "roots:\n  - name: a\n", "missing a type"},
		{"field missing name", "roots:\n  - type: string\n", "empty name"},
		{"not a schema", "just a scalar", "invalid JSON or YAML"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := schema.ParseMapSchema([]byte(tc.raw), "bad.yaml")
			if err == nil {
				t.Fatalf("expected error")
			}
			if !strings.Contains(err.Error(), tc.wantSub) {
				t.Fatalf("error %q does not mention %q", err, tc.wantSub)
			}
		})
	}
}
