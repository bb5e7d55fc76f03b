package doc

import (
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/thalesmg/hocon/pkg/schema"
)

// Printer renders a raw default value as configuration text. A single
// returned line marks the value as a oneliner; multiple lines are joined
// with newlines by the field renderer.
type Printer interface {
	Print(value any) ([]string, error)
}

// PrinterFunc adapts a plain function to the Printer interface.
type PrinterFunc func(value any) ([]string, error)

// Print calls f.
func (f PrinterFunc) Print(value any) ([]string, error) {
	return f(value)
}

// oneLineLimit is the widest value the built-in printer keeps on one line.
const oneLineLimit = 80

// DefaultPrinter returns the built-in printer. It renders values as HOCON
// text: bare words where quoting is unnecessary, sorted keys inside objects,
// and a multi-line layout once the one-line form grows past a screen width.
func DefaultPrinter() Printer {
	return hoconPrinter{}
}

type hoconPrinter struct{}

func (p hoconPrinter) Print(value any) ([]string, error) {
	line, err := p.render(value)
	if err != nil {
		return nil, err
	}
	if len(line) <= oneLineLimit {
		return []string{line}, nil
	}
	if lines, ok := p.renderBlock(value); ok {
		return lines, nil
	}
	return []string{line}, nil
}

func (p hoconPrinter) render(value any) (string, error) {
	switch v := value.(type) {
	case nil, schema.Null:
		return "null", nil
	case bool:
		return strconv.FormatBool(v), nil
	case string:
		return maybeQuote(v), nil
	case int:
		return strconv.Itoa(v), nil
	case int32:
		return strconv.FormatInt(int64(v), 10), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case uint:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint64:
		return strconv.FormatUint(v, 10), nil
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 64), nil
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), nil
	case json.Number:
		return v.String(), nil
	case []string:
		items := make([]any, len(v))
		for i, s := range v {
			items[i] = s
		}
		return p.renderList(items)
	case []any:
		return p.renderList(v)
	case map[string]string:
		items := make(map[string]any, len(v))
		for k, s := range v {
			items[k] = s
		}
		return p.renderObject(items)
	case map[string]any:
		return p.renderObject(v)
	default:
		raw, err := json.Marshal(v)
		if err != nil {
			return "", fmt.Errorf("unsupported default value %T: %w", value, err)
		}
		return string(raw), nil
	}
}

func (p hoconPrinter) renderList(items []any) (string, error) {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		rendered, err := p.render(item)
		if err != nil {
			return "", err
		}
		parts = append(parts, rendered)
	}
	return "[" + strings.Join(parts, ", ") + "]", nil
}

func (p hoconPrinter) renderObject(obj map[string]any) (string, error) {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		rendered, err := p.render(obj[k])
		if err != nil {
			return "", err
		}
		parts = append(parts, maybeQuote(k)+" = "+rendered)
	}
	return "{" + strings.Join(parts, ", ") + "}", nil
}

// renderBlock splits a top-level container across lines, one entry per line.
// Nested values keep their one-line form. Non-containers report ok=false.
func (p hoconPrinter) renderBlock(value any) ([]string, bool) {
	switch v := value.(type) {
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		lines := []string{"{"}
		for _, k := range keys {
			rendered, err := p.render(v[k])
			if err != nil {
				return nil, false
			}
			lines = append(lines, "  "+maybeQuote(k)+" = "+rendered)
		}
		return append(lines, "}"), true
	case []any:
		lines := []string{"["}
		for _, item := range v {
			rendered, err := p.render(item)
			if err != nil {
				return nil, false
			}
			lines = append(lines, "  "+rendered)
		}
		return append(lines, "]"), true
	default:
		return nil, false
	}
}

var bareWord = regexp.MustCompile(`^[A-Za-z0-9_][A-Za-z0-9_.-]*$`)

func maybeQuote(s string) string {
	if bareWord.MatchString(s) {
		return s
	}
	return strconv.Quote(s)
}
