package render_test

import (
	"testing"

	"github.com/thalesmg/hocon/pkg/render"
)

func TestPlainText(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"whitespace", "  \n ", ""},
		{"plain", "just text", "just text"},
		{"padded", "  padded  ", "padded"},
		{"markup stripped", "<b>bold</b> move", "bold move"},
		{"links flattened", `see <a href="https://example.com">the docs</a>`, "see the docs"},
		{"script dropped with body", "before <script>alert(1)</script>after", "before after"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			if got := render.PlainText(tc.in); got != tc.want {
				t.Fatalf("PlainText(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
